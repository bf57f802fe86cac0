package domain

import "strings"

const (
	DefaultPage  = 1
	DefaultLimit = 10
)

// SortKey selects the ordering of a tour listing.
type SortKey int

const (
	// SortName is the zero value so an omitted sort key orders by name.
	SortName SortKey = iota
	SortNone
	SortPrice
)

func (k SortKey) String() string {
	switch k {
	case SortNone:
		return "none"
	case SortPrice:
		return "price"
	default:
		return "name"
	}
}

// SortOrder is the direction of a sort.
type SortOrder int

const (
	SortAsc SortOrder = iota
	SortDesc
)

func (o SortOrder) String() string {
	if o == SortDesc {
		return "desc"
	}
	return "asc"
}

// TourQuery describes one page of a filtered, sorted tour listing.
// Page and Limit are 1-based; zero means "not supplied".
type TourQuery struct {
	Page       int
	Limit      int
	SortBy     SortKey
	SortOrder  SortOrder
	MinPrice   *float64
	MaxPrice   *float64
	SearchTerm string
}

// Normalize fills defaults and raises page and limit to at least 1.
// Larger limits are kept as given so Skip matches the client's paging.
func (q TourQuery) Normalize() TourQuery {
	if q.Page == 0 {
		q.Page = DefaultPage
	} else if q.Page < 1 {
		q.Page = 1
	}
	if q.Limit == 0 {
		q.Limit = DefaultLimit
	} else if q.Limit < 1 {
		q.Limit = 1
	}
	q.SearchTerm = strings.TrimSpace(q.SearchTerm)
	return q
}

// Skip is the number of matches before the requested page.
func (q TourQuery) Skip() int {
	return (q.Page - 1) * q.Limit
}

// Filter returns the criteria part of the query, without paging or sorting.
func (q TourQuery) Filter() TourFilter {
	return TourFilter{
		SearchTerm: strings.TrimSpace(q.SearchTerm),
		MinPrice:   q.MinPrice,
		MaxPrice:   q.MaxPrice,
	}
}

// TourFilter holds the conjunctive match criteria of a listing.
type TourFilter struct {
	SearchTerm string
	MinPrice   *float64
	MaxPrice   *float64
}

// Matches applies the filter to a single tour. Stores that cannot push the
// filter down use it; it is also the reference for the store queries.
func (f TourFilter) Matches(t *Tour) bool {
	if f.SearchTerm != "" {
		term := strings.ToLower(f.SearchTerm)
		if !strings.Contains(strings.ToLower(t.Name), term) &&
			!strings.Contains(strings.ToLower(t.Description), term) {
			return false
		}
	}
	if f.MinPrice != nil && t.Price < *f.MinPrice {
		return false
	}
	if f.MaxPrice != nil && t.Price > *f.MaxPrice {
		return false
	}
	return true
}
