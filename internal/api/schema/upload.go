package schema

import (
	"errors"
	"mime/multipart"

	"github.com/graphql-go/graphql"

	"github.com/tourdesk/tour-service/internal/api/metrics"
	"github.com/tourdesk/tour-service/internal/core/domain"
)

// upload stores the file and returns its generated name, or null when
// nothing was stored.
func (r *resolver) upload(p graphql.ResolveParams) (interface{}, error) {
	fh, ok := p.Args["file"].(*multipart.FileHeader)
	if !ok || fh == nil {
		r.log.Warn().Msg("upload called without a file part")
		return nil, nil
	}

	f, err := fh.Open()
	if err != nil {
		r.log.Error().Err(err).Str("original_name", fh.Filename).Msg("cannot open uploaded file")
		return nil, nil
	}
	defer f.Close()

	name, ok := r.uploads.Upload(p.Context, fh.Filename, f)
	if !ok {
		return nil, nil
	}
	return name, nil
}

func (r *resolver) recordUpload(next graphql.FieldResolveFn) graphql.FieldResolveFn {
	return func(p graphql.ResolveParams) (interface{}, error) {
		res, err := next(p)
		switch {
		case errors.Is(err, domain.ErrUnauthenticated), errors.Is(err, domain.ErrForbidden):
			metrics.UploadsTotal.WithLabelValues("forbidden").Inc()
		case err != nil, res == nil:
			metrics.UploadsTotal.WithLabelValues("error").Inc()
		default:
			metrics.UploadsTotal.WithLabelValues("ok").Inc()
		}
		return res, err
	}
}
