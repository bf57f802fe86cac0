package ports

import (
	"context"
	"io"
)

// ImageStore persists uploaded tour images and returns the generated name.
type ImageStore interface {
	Save(ctx context.Context, originalName string, r io.Reader) (string, error)
}

// UploadService accepts a tour image and returns its stored name.
// ok is false when nothing was stored.
type UploadService interface {
	Upload(ctx context.Context, originalName string, r io.Reader) (filename string, ok bool)
}
