package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/rs/zerolog"

	"github.com/tourdesk/tour-service/internal/core/domain"
	"github.com/tourdesk/tour-service/internal/core/ports"
)

var discardLogger = zerolog.Nop()

// ---------------------------------------------------------------------------
// In-memory stub tour repository
// ---------------------------------------------------------------------------

type stubTourRepo struct {
	tours   []*domain.Tour
	seq     int
	err     error // if set, every call returns this error
	creates int
	calls   []string
}

func newStubTourRepo() *stubTourRepo {
	return &stubTourRepo{}
}

func (r *stubTourRepo) add(name string, price float64, description string) *domain.Tour {
	r.seq++
	t := &domain.Tour{
		ID:          fmt.Sprintf("%024x", r.seq),
		Name:        name,
		Price:       price,
		Description: description,
		CreatedAt:   time.Now().UTC(),
		IsActive:    true,
	}
	r.tours = append(r.tours, t)
	return t
}

func (r *stubTourRepo) matching(f domain.TourFilter) []*domain.Tour {
	var out []*domain.Tour
	for _, t := range r.tours {
		if f.Matches(t) {
			clone := *t
			out = append(out, &clone)
		}
	}
	return out
}

func (r *stubTourRepo) FindAll(_ context.Context, f domain.TourFilter) ([]*domain.Tour, error) {
	r.calls = append(r.calls, "FindAll")
	if r.err != nil {
		return nil, r.err
	}
	return r.matching(f), nil
}

func (r *stubTourRepo) FindPage(_ context.Context, f domain.TourFilter, s ports.TourSort, skip, limit int) ([]*domain.Tour, error) {
	r.calls = append(r.calls, "FindPage")
	if r.err != nil {
		return nil, r.err
	}
	matched := r.matching(f)
	if s.Field == "price" {
		sort.SliceStable(matched, func(i, j int) bool {
			if s.Desc {
				return matched[i].Price > matched[j].Price
			}
			return matched[i].Price < matched[j].Price
		})
	}
	return paginate(matched, skip, limit), nil
}

func (r *stubTourRepo) Count(_ context.Context, f domain.TourFilter) (int64, error) {
	r.calls = append(r.calls, "Count")
	if r.err != nil {
		return 0, r.err
	}
	return int64(len(r.matching(f))), nil
}

func (r *stubTourRepo) FindByID(_ context.Context, id string) (*domain.Tour, error) {
	if r.err != nil {
		return nil, r.err
	}
	for _, t := range r.tours {
		if t.ID == id {
			clone := *t
			return &clone, nil
		}
	}
	return nil, domain.ErrTourNotFound
}

func (r *stubTourRepo) Create(_ context.Context, t *domain.Tour) (*domain.Tour, error) {
	r.creates++
	if r.err != nil {
		return nil, r.err
	}
	r.seq++
	clone := *t
	clone.ID = fmt.Sprintf("%024x", r.seq)
	r.tours = append(r.tours, &clone)
	out := clone
	return &out, nil
}

func (r *stubTourRepo) Update(_ context.Context, id string, c domain.TourChanges) (*domain.Tour, error) {
	if r.err != nil {
		return nil, r.err
	}
	for _, t := range r.tours {
		if t.ID != id {
			continue
		}
		if c.Name != nil {
			t.Name = *c.Name
		}
		if c.Price != nil {
			t.Price = *c.Price
		}
		if c.Description != nil {
			t.Description = *c.Description
		}
		if c.IsActive != nil {
			t.IsActive = *c.IsActive
		}
		if c.ImageFilename != nil {
			img := *c.ImageFilename
			t.ImageFilename = &img
		}
		clone := *t
		return &clone, nil
	}
	return nil, domain.ErrTourNotFound
}

func (r *stubTourRepo) Delete(_ context.Context, id string) (bool, error) {
	if r.err != nil {
		return false, r.err
	}
	for i, t := range r.tours {
		if t.ID == id {
			r.tours = append(r.tours[:i], r.tours[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

// ---------------------------------------------------------------------------
// In-memory stub credential store
// ---------------------------------------------------------------------------

type stubAuthRepo struct {
	users   map[string]*domain.User
	findErr error
}

func newStubAuthRepo() *stubAuthRepo {
	return &stubAuthRepo{users: make(map[string]*domain.User)}
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clone := *u
	return &clone
}

func (r *stubAuthRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	if _, exists := r.users[user.Username]; exists {
		return nil, domain.ErrUserExists
	}
	c := cloneUser(user)
	if c.ID == "" {
		c.ID = user.Username
	}
	r.users[c.Username] = cloneUser(c)
	return cloneUser(c), nil
}

func (r *stubAuthRepo) FindByUsername(_ context.Context, username string) (*domain.User, error) {
	if r.findErr != nil {
		return nil, r.findErr
	}
	u, ok := r.users[username]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return cloneUser(u), nil
}

type stubLimiter struct {
	blocked  bool
	checkErr error
	failures map[string]int
	resets   []string
}

func newStubLimiter() *stubLimiter {
	return &stubLimiter{failures: make(map[string]int)}
}

func (l *stubLimiter) Blocked(_ context.Context, username string) (bool, error) {
	return l.blocked, l.checkErr
}

func (l *stubLimiter) RecordFailure(_ context.Context, username string) error {
	l.failures[username]++
	return nil
}

func (l *stubLimiter) Reset(_ context.Context, username string) error {
	l.resets = append(l.resets, username)
	return nil
}
