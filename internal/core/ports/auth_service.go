package ports

import (
	"context"

	"github.com/tourdesk/tour-service/internal/core/domain"
)

type AuthService interface {
	Register(ctx context.Context, username, password, role string) (*domain.User, error)
	Login(ctx context.Context, username, password string) (string, *domain.User, error)
	// Authenticate resolves a bearer token to its user. It never fails:
	// an invalid token or unknown user yields nil.
	Authenticate(ctx context.Context, token string) *domain.User
}
