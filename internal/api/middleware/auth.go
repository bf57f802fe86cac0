package middleware

import (
	"context"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/tourdesk/tour-service/internal/api/metrics"
	"github.com/tourdesk/tour-service/internal/core/domain"
)

type userKey struct{}

// Authenticator resolves a raw bearer token to a user, or nil.
type Authenticator interface {
	Authenticate(ctx context.Context, token string) *domain.User
}

// Auth resolves the bearer token of every request and stores the user in the
// request context. It never rejects: a missing or bad token leaves the request
// anonymous and the resolvers decide.
func Auth(authn Authenticator) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token := bearerToken(c.Request().Header.Get(echo.HeaderAuthorization))
			if token == "" {
				metrics.AuthResolutionsTotal.WithLabelValues("anonymous").Inc()
				return next(c)
			}

			req := c.Request()
			user := authn.Authenticate(req.Context(), token)
			if user == nil {
				metrics.AuthResolutionsTotal.WithLabelValues("rejected").Inc()
				return next(c)
			}

			metrics.AuthResolutionsTotal.WithLabelValues("authenticated").Inc()
			c.Set("username", user.Username)
			c.Set("role", user.Role.String())
			c.SetRequest(req.WithContext(WithUser(req.Context(), user)))
			return next(c)
		}
	}
}

// bearerToken extracts the token of an "Authorization: Bearer <token>" header.
func bearerToken(header string) string {
	parts := strings.SplitN(strings.TrimSpace(header), " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

// WithUser returns a copy of ctx carrying u.
func WithUser(ctx context.Context, u *domain.User) context.Context {
	return context.WithValue(ctx, userKey{}, u)
}

// UserFromContext returns the user stored by Auth, or nil.
func UserFromContext(ctx context.Context) *domain.User {
	u, _ := ctx.Value(userKey{}).(*domain.User)
	return u
}
