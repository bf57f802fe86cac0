package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/tourdesk/tour-service/internal/core/domain"
)

var sampleTours = []struct {
	name        string
	price       float64
	description string
}{
	{"Chợ đêm", 30000, "Bắt đầu lúc 7:30 tối, kết thúc 12:00. Đi bộ."},
	{"Tour du lịch tâm linh", 100000, "Tham quan các ngôi chùa nổi tiếng trong khu vực"},
	{"Tour du lịch canh nông", 200000, "Tham quan vườn rau thủy canh"},
	{"Đạp xe đạp ngoại ô", 300000, "Bắt đầu lúc"},
	{"Xe buýt đêm dạo quanh thành phố", 60000, "Đón tại khách sạn"},
	{"Cắm trại dã ngoại", 400000, "Chỉ cung cấp vật dụng cắm trại cơ bản như lều, dây, cọc lều."},
	{"Chèo thuyền sup ngoại ô", 299000, "Đón tại khách sạn"},
	{"Trekking ngoại ô", 350000, "Đi và về trong ngày"},
	{"Tour quanh thành phố 1 ngày", 200000, "Khám phá các địa điểm nổi tiếng vào ban ngày"},
	{"Tham quan nông trại cừu", 100000, "Bắt đầu lúc 13:00 chiều."},
}

// SampleTours returns the demo catalogue, all created at now.
func SampleTours(now time.Time) []*domain.Tour {
	tours := make([]*domain.Tour, 0, len(sampleTours))
	for _, s := range sampleTours {
		tours = append(tours, &domain.Tour{
			Name:        s.name,
			Price:       s.price,
			Description: s.description,
			CreatedAt:   now.UTC(),
			IsActive:    true,
		})
	}
	return tours
}

// Seed inserts tours in order. With reset the collection is emptied first.
func (r *TourRepository) Seed(ctx context.Context, tours []*domain.Tour, reset bool) (int, error) {
	if reset {
		if _, err := r.Reset(ctx); err != nil {
			return 0, err
		}
	}

	docs := make([]interface{}, 0, len(tours))
	for _, t := range tours {
		if err := t.Validate(); err != nil {
			return 0, fmt.Errorf("seed tour %q: %w", t.Name, err)
		}
		docs = append(docs, mongoTour{
			ID:            primitive.NewObjectID(),
			Name:          t.Name,
			Price:         t.Price,
			Description:   t.Description,
			ImageFilename: t.ImageFilename,
			CreatedAt:     t.CreatedAt,
			IsActive:      t.IsActive,
		})
	}
	if len(docs) == 0 {
		return 0, nil
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.InsertMany(ctx, docs)
	if err != nil {
		return 0, fmt.Errorf("seed tours: %w", err)
	}
	return len(res.InsertedIDs), nil
}
