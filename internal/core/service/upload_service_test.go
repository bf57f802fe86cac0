package service

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"
)

type stubImageStore struct {
	saved map[string]string
	err   error
}

func (s *stubImageStore) Save(_ context.Context, originalName string, r io.Reader) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	b, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}
	if s.saved == nil {
		s.saved = make(map[string]string)
	}
	name := "generated-" + originalName
	s.saved[name] = string(b)
	return name, nil
}

func TestUploadService_Upload(t *testing.T) {
	store := &stubImageStore{}
	svc := NewUploadService(store, discardLogger)

	name, ok := svc.Upload(context.Background(), "beach.png", strings.NewReader("png-bytes"))
	if !ok {
		t.Fatalf("expected upload to succeed")
	}
	if name != "generated-beach.png" {
		t.Fatalf("unexpected filename %q", name)
	}
	if store.saved[name] != "png-bytes" {
		t.Fatalf("content not stored")
	}
}

func TestUploadService_Upload_Failures(t *testing.T) {
	cases := []struct {
		name     string
		store    *stubImageStore
		original string
		r        io.Reader
	}{
		{"empty name", &stubImageStore{}, " ", strings.NewReader("x")},
		{"no content", &stubImageStore{}, "a.png", nil},
		{"store error", &stubImageStore{err: errors.New("disk full")}, "a.png", strings.NewReader("x")},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc := NewUploadService(tc.store, discardLogger)
			name, ok := svc.Upload(context.Background(), tc.original, tc.r)
			if ok || name != "" {
				t.Fatalf("expected failure, got %q %v", name, ok)
			}
			if len(tc.store.saved) != 0 {
				t.Fatalf("nothing should be stored")
			}
		})
	}
}
