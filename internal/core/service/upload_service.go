package service

import (
	"context"
	"io"
	"strings"

	"github.com/rs/zerolog"

	"github.com/tourdesk/tour-service/internal/core/ports"
)

type UploadService struct {
	store ports.ImageStore
	log   zerolog.Logger
}

func NewUploadService(store ports.ImageStore, log zerolog.Logger) *UploadService {
	return &UploadService{store: store, log: log}
}

// Upload stores an image and returns its generated name. Any failure is
// logged and reported as ok=false; the caller must not touch the tour then.
func (s *UploadService) Upload(ctx context.Context, originalName string, r io.Reader) (string, bool) {
	if strings.TrimSpace(originalName) == "" || r == nil {
		s.log.Warn().Str("original_name", originalName).Msg("invalid file received for upload")
		return "", false
	}

	name, err := s.store.Save(ctx, originalName, r)
	if err != nil {
		s.log.Error().Err(err).Str("original_name", originalName).Msg("cannot save uploaded file")
		return "", false
	}

	s.log.Info().Str("original_name", originalName).Str("filename", name).Msg("file saved")
	return name, true
}
