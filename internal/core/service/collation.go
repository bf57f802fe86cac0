package service

import (
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/tourdesk/tour-service/internal/core/domain"
)

// SortByName orders tours by name using the collation of locale. Equal names
// keep insertion order (ids are ObjectID hex, which sorts chronologically).
//
// A collate.Collator keeps internal buffers, so one is built per call.
func SortByName(tours []*domain.Tour, locale language.Tag, order domain.SortOrder) {
	c := collate.New(locale)
	sort.SliceStable(tours, func(i, j int) bool {
		cmp := c.CompareString(tours[i].Name, tours[j].Name)
		if order == domain.SortDesc {
			cmp = -cmp
		}
		if cmp != 0 {
			return cmp < 0
		}
		return tours[i].ID < tours[j].ID
	})
}
