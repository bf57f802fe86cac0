package schema

import (
	"errors"

	"github.com/graphql-go/graphql"

	"github.com/tourdesk/tour-service/internal/api/metrics"
	"github.com/tourdesk/tour-service/internal/api/middleware"
	"github.com/tourdesk/tour-service/internal/core/domain"
)

// login never fails the operation for bad credentials; the client reads
// success and message instead.
func (r *resolver) login(p graphql.ResolveParams) (interface{}, error) {
	input, _ := p.Args["input"].(map[string]interface{})
	username, _ := input["username"].(string)
	password, _ := input["password"].(string)

	token, user, err := r.auth.Login(p.Context, username, password)
	switch {
	case err == nil:
		metrics.LoginsTotal.WithLabelValues("ok").Inc()
		r.log.Info().Str("username", user.Username).Str("role", user.Role.String()).Msg("user logged in")
		return map[string]interface{}{
			"success": true,
			"message": "Login successful",
			"data": map[string]interface{}{
				"jwt":  token,
				"user": user,
			},
		}, nil
	case errors.Is(err, domain.ErrInvalidCredentials):
		metrics.LoginsTotal.WithLabelValues("invalid_credentials").Inc()
		return loginFailure(err.Error()), nil
	case errors.Is(err, domain.ErrTooManyAttempts):
		metrics.LoginsTotal.WithLabelValues("throttled").Inc()
		return loginFailure(err.Error()), nil
	default:
		metrics.LoginsTotal.WithLabelValues("error").Inc()
		r.log.Error().Err(err).Str("username", username).Msg("login failed")
		return loginFailure("login failed"), nil
	}
}

func loginFailure(message string) map[string]interface{} {
	return map[string]interface{}{
		"success": false,
		"message": message,
		"data":    nil,
	}
}

func (r *resolver) me(p graphql.ResolveParams) (interface{}, error) {
	if u := middleware.UserFromContext(p.Context); u != nil {
		return u, nil
	}
	return nil, nil
}
