package domain

import (
	"strings"
	"time"
)

// Tour is a bookable activity listing.
type Tour struct {
	ID            string
	Name          string
	Price         float64
	Description   string
	ImageFilename *string
	CreatedAt     time.Time
	IsActive      bool
}

// TourChanges carries the fields of a partial tour update. Nil means
// "leave unchanged".
type TourChanges struct {
	Name          *string
	Price         *float64
	Description   *string
	IsActive      *bool
	ImageFilename *string
}

// Empty reports whether no field is set.
func (c TourChanges) Empty() bool {
	return c.Name == nil && c.Price == nil && c.Description == nil &&
		c.IsActive == nil && c.ImageFilename == nil
}

// Validate checks the invariants every stored tour must satisfy.
func (t *Tour) Validate() error {
	var problems []string
	if strings.TrimSpace(t.Name) == "" {
		problems = append(problems, "name is required")
	}
	if !(t.Price > 0) {
		problems = append(problems, "price must be a positive number")
	}
	if strings.TrimSpace(t.Description) == "" {
		problems = append(problems, "description is required")
	}
	if len(problems) > 0 {
		return &ValidationError{Problems: problems}
	}
	return nil
}

// Validate checks only the fields present in the update.
func (c TourChanges) Validate() error {
	var problems []string
	if c.Name != nil && strings.TrimSpace(*c.Name) == "" {
		problems = append(problems, "name must not be empty")
	}
	if c.Price != nil && !(*c.Price > 0) {
		problems = append(problems, "price must be a positive number")
	}
	if c.Description != nil && strings.TrimSpace(*c.Description) == "" {
		problems = append(problems, "description must not be empty")
	}
	if len(problems) > 0 {
		return &ValidationError{Problems: problems}
	}
	return nil
}
