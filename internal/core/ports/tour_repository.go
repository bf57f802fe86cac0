package ports

import (
	"context"

	"github.com/tourdesk/tour-service/internal/core/domain"
)

// TourSort is a store-native ordering. Field is "_id" or "price".
type TourSort struct {
	Field string
	Desc  bool
}

// TourRepository is the tour store.
type TourRepository interface {
	// FindAll returns every tour matching filter in insertion order.
	FindAll(ctx context.Context, filter domain.TourFilter) ([]*domain.Tour, error)
	// FindPage returns at most limit tours after skip, ordered by sort.
	FindPage(ctx context.Context, filter domain.TourFilter, sort TourSort, skip, limit int) ([]*domain.Tour, error)
	Count(ctx context.Context, filter domain.TourFilter) (int64, error)
	// FindByID returns domain.ErrTourNotFound for unknown or malformed ids.
	FindByID(ctx context.Context, id string) (*domain.Tour, error)
	Create(ctx context.Context, t *domain.Tour) (*domain.Tour, error)
	Update(ctx context.Context, id string, changes domain.TourChanges) (*domain.Tour, error)
	// Delete reports whether a tour was removed.
	Delete(ctx context.Context, id string) (bool, error)
}
