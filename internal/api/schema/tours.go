package schema

import (
	"errors"
	"time"

	"github.com/graphql-go/graphql"

	"github.com/tourdesk/tour-service/internal/api/metrics"
	"github.com/tourdesk/tour-service/internal/core/domain"
	"github.com/tourdesk/tour-service/internal/core/ports"
)

// tourQuery maps the listing arguments onto a TourQuery. Supplied page and
// limit values below 1 are raised to 1; omitted ones take the defaults.
func tourQuery(args map[string]interface{}) domain.TourQuery {
	var q domain.TourQuery
	if v, ok := args["page"].(int); ok {
		q.Page = max(v, 1)
	}
	if v, ok := args["limit"].(int); ok {
		q.Limit = max(v, 1)
	}
	if v, ok := args["sortBy"].(domain.SortKey); ok {
		q.SortBy = v
	}
	if v, ok := args["sortOrder"].(domain.SortOrder); ok {
		q.SortOrder = v
	}
	if v, ok := args["minPrice"].(float64); ok {
		q.MinPrice = &v
	}
	if v, ok := args["maxPrice"].(float64); ok {
		q.MaxPrice = &v
	}
	q.SearchTerm, _ = args["searchTerm"].(string)
	return q
}

func (r *resolver) listTours(p graphql.ResolveParams) (interface{}, error) {
	q := tourQuery(p.Args)
	sortBy := q.SortBy.String()

	start := time.Now()
	page, err := r.tours.ListTours(p.Context, q)
	metrics.TourQueryDuration.WithLabelValues(sortBy).Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.TourQueriesTotal.WithLabelValues(sortBy, "error").Inc()
		return nil, err
	}
	metrics.TourQueriesTotal.WithLabelValues(sortBy, "ok").Inc()
	return page, nil
}

func (r *resolver) getTour(p graphql.ResolveParams) (interface{}, error) {
	id, _ := p.Args["id"].(string)
	t, err := r.tours.GetTour(p.Context, id)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, nil
	}
	return t, nil
}

func (r *resolver) createTour(p graphql.ResolveParams) (interface{}, error) {
	raw, _ := p.Args["tourInput"].(map[string]interface{})
	in := decodeTourInput(raw)
	if err := r.validate.Struct(in); err != nil {
		return nil, err
	}

	return r.tours.CreateTour(p.Context, ports.CreateTourInput{
		Name:          in.Name,
		Price:         in.Price,
		Description:   in.Description,
		IsActive:      in.IsActive,
		ImageFilename: in.ImageFilename,
	})
}

func (r *resolver) updateTour(p graphql.ResolveParams) (interface{}, error) {
	id, _ := p.Args["id"].(string)
	raw, _ := p.Args["tourInput"].(map[string]interface{})
	in := decodeTourUpdateInput(raw)
	if err := r.validate.Struct(in); err != nil {
		return nil, err
	}

	return r.tours.UpdateTour(p.Context, id, domain.TourChanges{
		Name:          in.Name,
		Price:         in.Price,
		Description:   in.Description,
		IsActive:      in.IsActive,
		ImageFilename: in.ImageFilename,
	})
}

func (r *resolver) deleteTour(p graphql.ResolveParams) (interface{}, error) {
	id, _ := p.Args["id"].(string)
	return r.tours.DeleteTour(p.Context, id)
}

func (r *resolver) recordMutation(operation string, next graphql.FieldResolveFn) graphql.FieldResolveFn {
	return func(p graphql.ResolveParams) (interface{}, error) {
		res, err := next(p)
		metrics.TourMutationsTotal.WithLabelValues(operation, mutationResult(err)).Inc()
		return res, err
	}
}

func mutationResult(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, domain.ErrUnauthenticated), errors.Is(err, domain.ErrForbidden):
		return "forbidden"
	case errors.Is(err, domain.ErrValidation):
		return "invalid"
	case errors.Is(err, domain.ErrTourNotFound):
		return "not_found"
	default:
		return "error"
	}
}
