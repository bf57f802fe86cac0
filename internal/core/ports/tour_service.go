package ports

import (
	"context"

	"github.com/tourdesk/tour-service/internal/core/domain"
)

// CreateTourInput carries the fields of a new tour.
type CreateTourInput struct {
	Name          string
	Price         float64
	Description   string
	IsActive      *bool
	ImageFilename *string
}

// TourPage is one page of a listing plus the number of matches overall.
type TourPage struct {
	Tours      []*domain.Tour
	TotalCount int64
	Page       int
	Limit      int
}

// TourService defines the use-case operations on tours.
type TourService interface {
	ListTours(ctx context.Context, q domain.TourQuery) (*TourPage, error)
	GetTour(ctx context.Context, id string) (*domain.Tour, error)
	CreateTour(ctx context.Context, in CreateTourInput) (*domain.Tour, error)
	UpdateTour(ctx context.Context, id string, changes domain.TourChanges) (*domain.Tour, error)
	DeleteTour(ctx context.Context, id string) (bool, error)
}
