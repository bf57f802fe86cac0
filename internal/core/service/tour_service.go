package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/text/language"

	"github.com/tourdesk/tour-service/internal/core/domain"
	"github.com/tourdesk/tour-service/internal/core/ports"
)

type TourService struct {
	repo   ports.TourRepository
	locale language.Tag
	now    func() time.Time
	logger zerolog.Logger
}

// NewTourService builds a TourService whose name ordering follows the
// collation rules of locale.
func NewTourService(repo ports.TourRepository, locale language.Tag, logger zerolog.Logger) *TourService {
	return &TourService{repo: repo, locale: locale, now: time.Now, logger: logger}
}

// ListTours returns one page of tours matching q and the total match count.
//
// Name ordering is collation-aware, which the store cannot do, so that path
// loads the whole filtered set and pages in memory. Price and insertion order
// are pushed down to the store.
func (s *TourService) ListTours(ctx context.Context, q domain.TourQuery) (*ports.TourPage, error) {
	q = q.Normalize()
	filter := q.Filter()

	var (
		tours []*domain.Tour
		total int64
		err   error
	)
	if q.SortBy == domain.SortName {
		tours, total, err = s.listByName(ctx, filter, q)
	} else {
		tours, total, err = s.listNative(ctx, filter, q)
	}
	if err != nil {
		s.logger.Error().Err(err).
			Str("sort_by", q.SortBy.String()).
			Int("page", q.Page).
			Int("limit", q.Limit).
			Msg("error retrieving tours")
		return nil, domain.ErrToursUnavailable
	}

	return &ports.TourPage{Tours: tours, TotalCount: total, Page: q.Page, Limit: q.Limit}, nil
}

func (s *TourService) listByName(ctx context.Context, filter domain.TourFilter, q domain.TourQuery) ([]*domain.Tour, int64, error) {
	all, err := s.repo.FindAll(ctx, filter)
	if err != nil {
		return nil, 0, err
	}
	SortByName(all, s.locale, q.SortOrder)
	return paginate(all, q.Skip(), q.Limit), int64(len(all)), nil
}

func (s *TourService) listNative(ctx context.Context, filter domain.TourFilter, q domain.TourQuery) ([]*domain.Tour, int64, error) {
	sort := ports.TourSort{Field: "_id"}
	if q.SortBy == domain.SortPrice {
		sort = ports.TourSort{Field: "price", Desc: q.SortOrder == domain.SortDesc}
	}

	tours, err := s.repo.FindPage(ctx, filter, sort, q.Skip(), q.Limit)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		return nil, 0, err
	}
	return tours, total, nil
}

func paginate(tours []*domain.Tour, skip, limit int) []*domain.Tour {
	if skip >= len(tours) {
		return []*domain.Tour{}
	}
	end := skip + limit
	if end > len(tours) {
		end = len(tours)
	}
	return tours[skip:end]
}

// GetTour returns the tour with id, or nil when there is none.
func (s *TourService) GetTour(ctx context.Context, id string) (*domain.Tour, error) {
	t, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrTourNotFound) {
			return nil, nil
		}
		s.logger.Error().Err(err).Str("tour_id", id).Msg("error retrieving tour")
		return nil, domain.ErrToursUnavailable
	}
	return t, nil
}

// CreateTour validates and stores a new tour. createdAt is fixed here and
// never rewritten afterwards.
func (s *TourService) CreateTour(ctx context.Context, in ports.CreateTourInput) (*domain.Tour, error) {
	active := true
	if in.IsActive != nil {
		active = *in.IsActive
	}
	tour := &domain.Tour{
		Name:          in.Name,
		Price:         in.Price,
		Description:   in.Description,
		ImageFilename: in.ImageFilename,
		CreatedAt:     s.now().UTC(),
		IsActive:      active,
	}
	if err := tour.Validate(); err != nil {
		return nil, err
	}

	created, err := s.repo.Create(ctx, tour)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to create tour")
		return nil, domain.ErrTourWriteFailed
	}

	s.logger.Info().Str("tour_id", created.ID).Str("name", created.Name).Msg("tour created")
	return created, nil
}

// UpdateTour applies a partial update. A replaced image file is left on disk.
func (s *TourService) UpdateTour(ctx context.Context, id string, changes domain.TourChanges) (*domain.Tour, error) {
	if err := changes.Validate(); err != nil {
		return nil, err
	}

	if changes.ImageFilename != nil {
		if prev, err := s.repo.FindByID(ctx, id); err == nil && prev.ImageFilename != nil && *prev.ImageFilename != *changes.ImageFilename {
			s.logger.Debug().Str("tour_id", id).Str("image", *prev.ImageFilename).Msg("previous image left in place")
		}
	}

	updated, err := s.repo.Update(ctx, id, changes)
	if err != nil {
		if errors.Is(err, domain.ErrTourNotFound) {
			return nil, domain.ErrTourNotFound
		}
		s.logger.Error().Err(err).Str("tour_id", id).Msg("failed to update tour")
		return nil, domain.ErrTourWriteFailed
	}

	s.logger.Info().Str("tour_id", id).Msg("tour updated")
	return updated, nil
}

// DeleteTour removes a tour and reports whether it existed.
func (s *TourService) DeleteTour(ctx context.Context, id string) (bool, error) {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		s.logger.Error().Err(err).Str("tour_id", id).Msg("failed to delete tour")
		return false, domain.ErrTourWriteFailed
	}
	if deleted {
		s.logger.Info().Str("tour_id", id).Msg("tour deleted")
	}
	return deleted, nil
}
