package mongo

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/tourdesk/tour-service/internal/core/domain"
	"github.com/tourdesk/tour-service/internal/core/ports"
)

const collectionTours = "tours"

type TourRepository struct {
	col *mongo.Collection
}

func NewTourRepository(db *mongo.Database) *TourRepository {
	return &TourRepository{col: db.Collection(collectionTours)}
}

type mongoTour struct {
	ID            primitive.ObjectID `bson:"_id,omitempty"`
	Name          string             `bson:"name"`
	Price         float64            `bson:"price"`
	Description   string             `bson:"description"`
	ImageFilename *string            `bson:"imageFilename"`
	CreatedAt     time.Time          `bson:"createdAt"`
	IsActive      bool               `bson:"isActive"`
}

func (m *mongoTour) toDomain() *domain.Tour {
	return &domain.Tour{
		ID:            m.ID.Hex(),
		Name:          m.Name,
		Price:         m.Price,
		Description:   m.Description,
		ImageFilename: m.ImageFilename,
		CreatedAt:     m.CreatedAt.UTC(),
		IsActive:      m.IsActive,
	}
}

// tourFilter translates the listing criteria into a query document.
func tourFilter(f domain.TourFilter) bson.M {
	filter := bson.M{}
	if f.SearchTerm != "" {
		re := primitive.Regex{Pattern: regexp.QuoteMeta(f.SearchTerm), Options: "i"}
		filter["$or"] = bson.A{
			bson.M{"name": re},
			bson.M{"description": re},
		}
	}
	price := bson.M{}
	if f.MinPrice != nil {
		price["$gte"] = *f.MinPrice
	}
	if f.MaxPrice != nil {
		price["$lte"] = *f.MaxPrice
	}
	if len(price) > 0 {
		filter["price"] = price
	}
	return filter
}

// tourSort returns the sort document; _id always breaks ties.
func tourSort(s ports.TourSort) bson.D {
	dir := 1
	if s.Desc {
		dir = -1
	}
	if s.Field == "" || s.Field == "_id" {
		return bson.D{{Key: "_id", Value: dir}}
	}
	return bson.D{{Key: s.Field, Value: dir}, {Key: "_id", Value: 1}}
}

// tourUpdate builds the $set document of a partial update.
func tourUpdate(c domain.TourChanges) bson.M {
	set := bson.M{}
	if c.Name != nil {
		set["name"] = *c.Name
	}
	if c.Price != nil {
		set["price"] = *c.Price
	}
	if c.Description != nil {
		set["description"] = *c.Description
	}
	if c.IsActive != nil {
		set["isActive"] = *c.IsActive
	}
	if c.ImageFilename != nil {
		set["imageFilename"] = *c.ImageFilename
	}
	return bson.M{"$set": set}
}

func (r *TourRepository) FindAll(ctx context.Context, f domain.TourFilter) ([]*domain.Tour, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.col.Find(ctx, tourFilter(f), options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("find tours: %w", err)
	}
	return decodeTours(ctx, cur)
}

func (r *TourRepository) FindPage(ctx context.Context, f domain.TourFilter, s ports.TourSort, skip, limit int) ([]*domain.Tour, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().
		SetSort(tourSort(s)).
		SetSkip(int64(skip)).
		SetLimit(int64(limit))

	cur, err := r.col.Find(ctx, tourFilter(f), opts)
	if err != nil {
		return nil, fmt.Errorf("find tours page: %w", err)
	}
	return decodeTours(ctx, cur)
}

func (r *TourRepository) Count(ctx context.Context, f domain.TourFilter) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	n, err := r.col.CountDocuments(ctx, tourFilter(f))
	if err != nil {
		return 0, fmt.Errorf("count tours: %w", err)
	}
	return n, nil
}

func (r *TourRepository) FindByID(ctx context.Context, id string) (*domain.Tour, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrTourNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var m mongoTour
	if err := r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&m); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrTourNotFound
		}
		return nil, fmt.Errorf("find tour: %w", err)
	}
	return m.toDomain(), nil
}

// Create inserts a new tour document and returns it with its generated id.
func (r *TourRepository) Create(ctx context.Context, t *domain.Tour) (*domain.Tour, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := mongoTour{
		ID:            primitive.NewObjectID(),
		Name:          t.Name,
		Price:         t.Price,
		Description:   t.Description,
		ImageFilename: t.ImageFilename,
		CreatedAt:     t.CreatedAt,
		IsActive:      t.IsActive,
	}
	if _, err := r.col.InsertOne(ctx, doc); err != nil {
		return nil, fmt.Errorf("insert tour: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *TourRepository) Update(ctx context.Context, id string, c domain.TourChanges) (*domain.Tour, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrTourNotFound
	}
	if c.Empty() {
		return r.FindByID(ctx, id)
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var m mongoTour
	if err := r.col.FindOneAndUpdate(ctx, bson.M{"_id": oid}, tourUpdate(c), opts).Decode(&m); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrTourNotFound
		}
		return nil, fmt.Errorf("update tour: %w", err)
	}
	return m.toDomain(), nil
}

func (r *TourRepository) Delete(ctx context.Context, id string) (bool, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return false, nil
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return false, fmt.Errorf("delete tour: %w", err)
	}
	return res.DeletedCount > 0, nil
}

// Reset removes every tour document.
func (r *TourRepository) Reset(ctx context.Context) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteMany(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("clear tours: %w", err)
	}
	return res.DeletedCount, nil
}

// EnsureIndexes creates the indexes backing price filtering and sorting.
func (r *TourRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "price", Value: 1}, {Key: "_id", Value: 1}}},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}

func decodeTours(ctx context.Context, cur *mongo.Cursor) ([]*domain.Tour, error) {
	defer cur.Close(ctx)

	tours := make([]*domain.Tour, 0)
	for cur.Next(ctx) {
		var m mongoTour
		if err := cur.Decode(&m); err != nil {
			return nil, fmt.Errorf("decode tour: %w", err)
		}
		tours = append(tours, m.toDomain())
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("iterate tours: %w", err)
	}
	return tours, nil
}
