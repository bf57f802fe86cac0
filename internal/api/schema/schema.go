// Package schema builds the GraphQL schema of the tour API and its resolvers.
package schema

import (
	"errors"

	"github.com/graphql-go/graphql"
	"github.com/rs/zerolog"

	"github.com/tourdesk/tour-service/internal/api/middleware"
	"github.com/tourdesk/tour-service/internal/core/domain"
	"github.com/tourdesk/tour-service/internal/core/ports"
)

var errInternal = errors.New("internal server error")

// Deps are the services the resolvers call.
type Deps struct {
	Tours   ports.TourService
	Auth    ports.AuthService
	Uploads ports.UploadService
	Log     zerolog.Logger
}

type resolver struct {
	tours    ports.TourService
	auth     ports.AuthService
	uploads  ports.UploadService
	validate *inputValidator
	log      zerolog.Logger
}

// New builds the executable schema.
func New(d Deps) (graphql.Schema, error) {
	r := &resolver{
		tours:    d.Tours,
		auth:     d.Auth,
		uploads:  d.Uploads,
		validate: newInputValidator(),
		log:      d.Log,
	}

	managerOnly := middleware.RequireRole(domain.RoleManager)

	query := graphql.NewObject(graphql.ObjectConfig{
		Name: "Query",
		Fields: graphql.Fields{
			"tours": &graphql.Field{
				Type: graphql.NewNonNull(tourPageType),
				Args: graphql.FieldConfigArgument{
					"page":       &graphql.ArgumentConfig{Type: graphql.Int},
					"limit":      &graphql.ArgumentConfig{Type: graphql.Int},
					"sortBy":     &graphql.ArgumentConfig{Type: sortByEnum},
					"sortOrder":  &graphql.ArgumentConfig{Type: sortOrderEnum},
					"minPrice":   &graphql.ArgumentConfig{Type: graphql.Float},
					"maxPrice":   &graphql.ArgumentConfig{Type: graphql.Float},
					"searchTerm": &graphql.ArgumentConfig{Type: graphql.String},
				},
				Resolve: r.guard("tours", r.listTours),
			},
			"tour": &graphql.Field{
				Type: tourType,
				Args: graphql.FieldConfigArgument{
					"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
				},
				Resolve: r.guard("tour", r.getTour),
			},
			"me": &graphql.Field{
				Type:    userType,
				Resolve: r.guard("me", r.me),
			},
		},
	})

	mutation := graphql.NewObject(graphql.ObjectConfig{
		Name: "Mutation",
		Fields: graphql.Fields{
			"createTour": &graphql.Field{
				Type: graphql.NewNonNull(tourType),
				Args: graphql.FieldConfigArgument{
					"tourInput": &graphql.ArgumentConfig{Type: graphql.NewNonNull(tourInputType)},
				},
				Resolve: r.guard("createTour", r.recordMutation("create", managerOnly(r.createTour))),
			},
			"updateTour": &graphql.Field{
				Type: graphql.NewNonNull(tourType),
				Args: graphql.FieldConfigArgument{
					"id":        &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
					"tourInput": &graphql.ArgumentConfig{Type: graphql.NewNonNull(tourUpdateInputType)},
				},
				Resolve: r.guard("updateTour", r.recordMutation("update", managerOnly(r.updateTour))),
			},
			"deleteTour": &graphql.Field{
				Type: graphql.NewNonNull(graphql.Boolean),
				Args: graphql.FieldConfigArgument{
					"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
				},
				Resolve: r.guard("deleteTour", r.recordMutation("delete", managerOnly(r.deleteTour))),
			},
			"login": &graphql.Field{
				Type: graphql.NewNonNull(loginResponseType),
				Args: graphql.FieldConfigArgument{
					"input": &graphql.ArgumentConfig{Type: graphql.NewNonNull(loginInputType)},
				},
				Resolve: r.guard("login", r.login),
			},
			"upload": &graphql.Field{
				Type: graphql.String,
				Args: graphql.FieldConfigArgument{
					"file": &graphql.ArgumentConfig{Type: graphql.NewNonNull(fileScalar)},
				},
				Resolve: r.guard("upload", r.recordUpload(managerOnly(r.upload))),
			},
		},
	})

	return graphql.NewSchema(graphql.SchemaConfig{
		Query:    query,
		Mutation: mutation,
	})
}

// guard is the last stop for resolver errors: known domain errors reach the
// client verbatim, anything else is logged and replaced.
func (r *resolver) guard(field string, next graphql.FieldResolveFn) graphql.FieldResolveFn {
	return func(p graphql.ResolveParams) (interface{}, error) {
		res, err := next(p)
		if err == nil {
			return res, nil
		}
		if public(err) {
			return nil, err
		}
		r.log.Error().Err(err).Str("field", field).Msg("resolver failed")
		return nil, errInternal
	}
}

func public(err error) bool {
	for _, target := range []error{
		domain.ErrUnauthenticated,
		domain.ErrForbidden,
		domain.ErrValidation,
		domain.ErrTourNotFound,
		domain.ErrToursUnavailable,
		domain.ErrTourWriteFailed,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
