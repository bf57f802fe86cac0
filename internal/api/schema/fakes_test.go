package schema

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"sort"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tourdesk/tour-service/internal/core/domain"
	"github.com/tourdesk/tour-service/internal/core/ports"
)

// memTourRepo is an in-memory ports.TourRepository.
type memTourRepo struct {
	mu      sync.Mutex
	tours   []*domain.Tour
	seq     int
	creates int
}

func (r *memTourRepo) matching(f domain.TourFilter) []*domain.Tour {
	out := make([]*domain.Tour, 0)
	for _, t := range r.tours {
		if f.Matches(t) {
			c := *t
			out = append(out, &c)
		}
	}
	return out
}

func (r *memTourRepo) FindAll(_ context.Context, f domain.TourFilter) ([]*domain.Tour, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.matching(f), nil
}

func (r *memTourRepo) FindPage(_ context.Context, f domain.TourFilter, s ports.TourSort, skip, limit int) ([]*domain.Tour, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	all := r.matching(f)
	if s.Field == "price" {
		sort.SliceStable(all, func(i, j int) bool {
			if s.Desc {
				return all[i].Price > all[j].Price
			}
			return all[i].Price < all[j].Price
		})
	}
	if skip >= len(all) {
		return []*domain.Tour{}, nil
	}
	end := min(skip+limit, len(all))
	return all[skip:end], nil
}

func (r *memTourRepo) Count(_ context.Context, f domain.TourFilter) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return int64(len(r.matching(f))), nil
}

func (r *memTourRepo) FindByID(_ context.Context, id string) (*domain.Tour, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, t := range r.tours {
		if t.ID == id {
			c := *t
			return &c, nil
		}
	}
	return nil, domain.ErrTourNotFound
}

func (r *memTourRepo) Create(_ context.Context, t *domain.Tour) (*domain.Tour, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.creates++
	r.seq++
	c := *t
	c.ID = fmt.Sprintf("%024x", r.seq)
	r.tours = append(r.tours, &c)
	out := c
	return &out, nil
}

func (r *memTourRepo) Update(_ context.Context, id string, ch domain.TourChanges) (*domain.Tour, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, t := range r.tours {
		if t.ID != id {
			continue
		}
		if ch.Name != nil {
			t.Name = *ch.Name
		}
		if ch.Price != nil {
			t.Price = *ch.Price
		}
		if ch.Description != nil {
			t.Description = *ch.Description
		}
		if ch.IsActive != nil {
			t.IsActive = *ch.IsActive
		}
		if ch.ImageFilename != nil {
			v := *ch.ImageFilename
			t.ImageFilename = &v
		}
		c := *t
		return &c, nil
	}
	return nil, domain.ErrTourNotFound
}

func (r *memTourRepo) Delete(_ context.Context, id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, t := range r.tours {
		if t.ID == id {
			r.tours = append(r.tours[:i], r.tours[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

// memUserRepo is an in-memory ports.AuthRepository.
type memUserRepo struct {
	mu    sync.Mutex
	users map[string]*domain.User
}

func (r *memUserRepo) FindByUsername(_ context.Context, username string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[username]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	c := *u
	return &c, nil
}

func (r *memUserRepo) Create(_ context.Context, u *domain.User) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.users[u.Username]; exists {
		return nil, domain.ErrUserExists
	}
	c := *u
	c.ID = fmt.Sprintf("u-%d", len(r.users)+1)
	r.users[c.Username] = &c
	out := c
	return &out, nil
}

// memUploads records uploads instead of writing files.
type memUploads struct {
	saved map[string][]byte
}

func (u *memUploads) Upload(_ context.Context, originalName string, r io.Reader) (string, bool) {
	b, err := io.ReadAll(r)
	if err != nil || len(b) == 0 {
		return "", false
	}
	if u.saved == nil {
		u.saved = make(map[string][]byte)
	}
	name := "stored-" + originalName
	u.saved[name] = b
	return name, true
}

// fileHeader builds a real multipart.FileHeader whose content can be opened.
func fileHeader(t *testing.T, filename string, content []byte) *multipart.FileHeader {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	fw, err := w.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = fw.Write(content)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	form, err := multipart.NewReader(&buf, w.Boundary()).ReadForm(1 << 20)
	require.NoError(t, err)
	t.Cleanup(func() { _ = form.RemoveAll() })
	return form.File["file"][0]
}
