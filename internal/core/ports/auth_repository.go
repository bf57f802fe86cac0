package ports

import (
	"context"

	"github.com/tourdesk/tour-service/internal/core/domain"
)

// AuthRepository is the credential store.
type AuthRepository interface {
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
}

// LoginLimiter throttles repeated failed logins per username.
type LoginLimiter interface {
	Blocked(ctx context.Context, username string) (bool, error)
	RecordFailure(ctx context.Context, username string) error
	Reset(ctx context.Context, username string) error
}
