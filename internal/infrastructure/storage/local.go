package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/google/uuid"
)

var extPattern = regexp.MustCompile(`^\.[A-Za-z0-9]{1,10}$`)

// DiskImageStore writes uploaded images into a single directory under
// generated names.
type DiskImageStore struct {
	dir string
}

func NewDiskImageStore(dir string) *DiskImageStore {
	return &DiskImageStore{dir: dir}
}

// Dir is the directory served as /img.
func (s *DiskImageStore) Dir() string { return s.dir }

// Save streams r to <uuid><ext>. The extension comes from originalName and is
// dropped when it does not look like one.
func (s *DiskImageStore) Save(ctx context.Context, originalName string, r io.Reader) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", fmt.Errorf("create image dir: %w", err)
	}

	name := uuid.NewString() + extension(originalName)
	path := filepath.Join(s.dir, name)

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return "", fmt.Errorf("create image file: %w", err)
	}

	_, copyErr := io.Copy(f, &ctxReader{ctx: ctx, r: r})
	closeErr := f.Close()
	if err := errors.Join(copyErr, closeErr); err != nil {
		_ = os.Remove(path)
		return "", fmt.Errorf("write image file: %w", err)
	}
	return name, nil
}

func extension(originalName string) string {
	base := filepath.Base(strings.ReplaceAll(originalName, `\`, "/"))
	ext := filepath.Ext(base)
	if !extPattern.MatchString(ext) {
		return ""
	}
	return strings.ToLower(ext)
}

// ctxReader stops a copy once the request is cancelled.
type ctxReader struct {
	ctx context.Context
	r   io.Reader
}

func (c *ctxReader) Read(p []byte) (int, error) {
	if err := c.ctx.Err(); err != nil {
		return 0, err
	}
	return c.r.Read(p)
}
