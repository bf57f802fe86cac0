package mongo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/tourdesk/tour-service/internal/core/domain"
	"github.com/tourdesk/tour-service/internal/core/ports"
)

func float(v float64) *float64 { return &v }

func TestTourFilter_Empty(t *testing.T) {
	assert.Empty(t, tourFilter(domain.TourFilter{}))
}

func TestTourFilter_SearchIsEscapedAndCaseInsensitive(t *testing.T) {
	f := tourFilter(domain.TourFilter{SearchTerm: "a.b(c"})

	or, ok := f["$or"].(bson.A)
	require.True(t, ok)
	require.Len(t, or, 2)

	name := or[0].(bson.M)["name"].(primitive.Regex)
	assert.Equal(t, `a\.b\(c`, name.Pattern)
	assert.Equal(t, "i", name.Options)

	desc := or[1].(bson.M)["description"].(primitive.Regex)
	assert.Equal(t, name, desc)
}

func TestTourFilter_PriceBounds(t *testing.T) {
	both := tourFilter(domain.TourFilter{MinPrice: float(10), MaxPrice: float(20)})
	assert.Equal(t, bson.M{"$gte": 10.0, "$lte": 20.0}, both["price"])

	minOnly := tourFilter(domain.TourFilter{MinPrice: float(10)})
	assert.Equal(t, bson.M{"$gte": 10.0}, minOnly["price"])

	maxOnly := tourFilter(domain.TourFilter{MaxPrice: float(20)})
	assert.Equal(t, bson.M{"$lte": 20.0}, maxOnly["price"])
}

func TestTourSort(t *testing.T) {
	assert.Equal(t, bson.D{{Key: "_id", Value: 1}}, tourSort(ports.TourSort{Field: "_id"}))
	assert.Equal(t,
		bson.D{{Key: "price", Value: -1}, {Key: "_id", Value: 1}},
		tourSort(ports.TourSort{Field: "price", Desc: true}))
}

func TestTourUpdate_OnlyProvidedFields(t *testing.T) {
	name := "Walk"
	active := false
	u := tourUpdate(domain.TourChanges{Name: &name, IsActive: &active})

	assert.Equal(t, bson.M{"$set": bson.M{"name": "Walk", "isActive": false}}, u)
}

func TestSampleTours(t *testing.T) {
	tours := SampleTours(primitive.NewObjectID().Timestamp())
	require.Len(t, tours, 10)
	for _, tour := range tours {
		assert.NoError(t, tour.Validate())
		assert.True(t, tour.IsActive)
	}
}
