package domain

import "testing"

func TestTourQueryNormalize(t *testing.T) {
	cases := []struct {
		name      string
		in        TourQuery
		page, lim int
	}{
		{"defaults", TourQuery{}, DefaultPage, DefaultLimit},
		{"negative", TourQuery{Page: -2, Limit: -5}, 1, 1},
		{"large limit kept", TourQuery{Page: 3, Limit: 1000}, 3, 1000},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			q := tc.in.Normalize()
			if q.Page != tc.page || q.Limit != tc.lim {
				t.Fatalf("got page=%d limit=%d, want %d/%d", q.Page, q.Limit, tc.page, tc.lim)
			}
		})
	}

	q := TourQuery{Page: 3, Limit: 20}.Normalize()
	if q.Skip() != 40 {
		t.Fatalf("skip = %d, want 40", q.Skip())
	}
	if big := (TourQuery{Page: 2, Limit: 200}).Normalize(); big.Skip() != 200 {
		t.Fatalf("skip = %d, want 200", big.Skip())
	}
	if q.SortBy != SortName || q.SortOrder != SortAsc {
		t.Fatalf("default ordering must be name asc, got %s %s", q.SortBy, q.SortOrder)
	}
}

func TestTourFilterMatches(t *testing.T) {
	lo, hi := 100.0, 200.0
	tour := &Tour{Name: "Chợ Đêm", Description: "Đi bộ quanh phố", Price: 150}

	cases := []struct {
		name   string
		filter TourFilter
		want   bool
	}{
		{"empty", TourFilter{}, true},
		{"name case-insensitive", TourFilter{SearchTerm: "chợ"}, true},
		{"description", TourFilter{SearchTerm: "đi bộ"}, true},
		{"no match", TourFilter{SearchTerm: "kayak"}, false},
		{"inclusive bounds", TourFilter{MinPrice: &lo, MaxPrice: &hi}, true},
		{"below min", TourFilter{MinPrice: &hi}, false},
		{"above max", TourFilter{MaxPrice: &lo}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.filter.Matches(tour); got != tc.want {
				t.Fatalf("Matches = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestTourValidate(t *testing.T) {
	valid := &Tour{Name: "Walk", Price: 1, Description: "x"}
	if err := valid.Validate(); err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	for _, price := range []float64{0, -10} {
		bad := &Tour{Name: "Walk", Price: price, Description: "x"}
		if err := bad.Validate(); err == nil {
			t.Fatalf("price %v accepted", price)
		}
	}

	zero := 0.0
	if err := (TourChanges{Price: &zero}).Validate(); err == nil {
		t.Fatal("zero price update accepted")
	}
	if err := (TourChanges{}).Validate(); err != nil {
		t.Fatalf("empty update rejected: %v", err)
	}
}
