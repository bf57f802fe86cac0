package middleware

import (
	"github.com/graphql-go/graphql"

	"github.com/tourdesk/tour-service/internal/core/domain"
)

// RequireAuthenticated wraps a resolver so it only runs for a resolved user.
func RequireAuthenticated(next graphql.FieldResolveFn) graphql.FieldResolveFn {
	return func(p graphql.ResolveParams) (interface{}, error) {
		if err := domain.CheckAuthenticated(UserFromContext(p.Context)); err != nil {
			return nil, err
		}
		return next(p)
	}
}

// RequireRole wraps a resolver so it only runs for a user whose role allows
// role. It checks for a user itself, so it can be used without
// RequireAuthenticated.
func RequireRole(role domain.Role) func(graphql.FieldResolveFn) graphql.FieldResolveFn {
	return func(next graphql.FieldResolveFn) graphql.FieldResolveFn {
		return func(p graphql.ResolveParams) (interface{}, error) {
			if err := domain.CheckRole(UserFromContext(p.Context), role); err != nil {
				return nil, err
			}
			return next(p)
		}
	}
}
