package schema

import (
	"mime/multipart"
	"time"

	"github.com/graphql-go/graphql"
	"github.com/graphql-go/graphql/language/ast"

	"github.com/tourdesk/tour-service/internal/core/domain"
	"github.com/tourdesk/tour-service/internal/core/ports"
)

// createdAtLayout matches the ISO strings the web client already parses.
const createdAtLayout = "2006-01-02T15:04:05.000Z"

// fileScalar carries a multipart file part. Values only arrive through
// variables filled in by the HTTP transport; literals are rejected.
var fileScalar = graphql.NewScalar(graphql.ScalarConfig{
	Name:        "File",
	Description: "A file sent as a part of a multipart GraphQL request.",
	Serialize: func(value interface{}) interface{} {
		return nil
	},
	ParseValue: func(value interface{}) interface{} {
		if fh, ok := value.(*multipart.FileHeader); ok && fh != nil {
			return fh
		}
		return nil
	},
	ParseLiteral: func(valueAST ast.Value) interface{} {
		return nil
	},
})

var sortByEnum = graphql.NewEnum(graphql.EnumConfig{
	Name: "TourSortBy",
	Values: graphql.EnumValueConfigMap{
		"none":  &graphql.EnumValueConfig{Value: domain.SortNone, Description: "Insertion order."},
		"name":  &graphql.EnumValueConfig{Value: domain.SortName, Description: "Locale-aware name order."},
		"price": &graphql.EnumValueConfig{Value: domain.SortPrice},
	},
})

var sortOrderEnum = graphql.NewEnum(graphql.EnumConfig{
	Name: "SortOrder",
	Values: graphql.EnumValueConfigMap{
		"asc":  &graphql.EnumValueConfig{Value: domain.SortAsc},
		"desc": &graphql.EnumValueConfig{Value: domain.SortDesc},
	},
})

func tourField(fn func(t *domain.Tour) interface{}) graphql.FieldResolveFn {
	return func(p graphql.ResolveParams) (interface{}, error) {
		t, ok := p.Source.(*domain.Tour)
		if !ok || t == nil {
			return nil, nil
		}
		return fn(t), nil
	}
}

var tourType = graphql.NewObject(graphql.ObjectConfig{
	Name: "Tour",
	Fields: graphql.Fields{
		"id": &graphql.Field{
			Type:    graphql.NewNonNull(graphql.ID),
			Resolve: tourField(func(t *domain.Tour) interface{} { return t.ID }),
		},
		"name": &graphql.Field{
			Type:    graphql.NewNonNull(graphql.String),
			Resolve: tourField(func(t *domain.Tour) interface{} { return t.Name }),
		},
		"price": &graphql.Field{
			Type:    graphql.NewNonNull(graphql.Float),
			Resolve: tourField(func(t *domain.Tour) interface{} { return t.Price }),
		},
		"description": &graphql.Field{
			Type:    graphql.NewNonNull(graphql.String),
			Resolve: tourField(func(t *domain.Tour) interface{} { return t.Description }),
		},
		"imageFilename": &graphql.Field{
			Type: graphql.String,
			Resolve: tourField(func(t *domain.Tour) interface{} {
				if t.ImageFilename == nil {
					return nil
				}
				return *t.ImageFilename
			}),
		},
		"createdAt": &graphql.Field{
			Type: graphql.NewNonNull(graphql.String),
			Resolve: tourField(func(t *domain.Tour) interface{} {
				return formatTime(t.CreatedAt)
			}),
		},
		"isActive": &graphql.Field{
			Type:    graphql.NewNonNull(graphql.Boolean),
			Resolve: tourField(func(t *domain.Tour) interface{} { return t.IsActive }),
		},
	},
})

var tourPageType = graphql.NewObject(graphql.ObjectConfig{
	Name: "TourPage",
	Fields: graphql.Fields{
		"tours": &graphql.Field{
			Type: graphql.NewNonNull(graphql.NewList(graphql.NewNonNull(tourType))),
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				page, _ := p.Source.(*ports.TourPage)
				if page == nil {
					return []*domain.Tour{}, nil
				}
				return page.Tours, nil
			},
		},
		"totalCount": &graphql.Field{
			Type: graphql.NewNonNull(graphql.Int),
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				page, _ := p.Source.(*ports.TourPage)
				if page == nil {
					return 0, nil
				}
				return int(page.TotalCount), nil
			},
		},
	},
})

func userField(fn func(u *domain.User) interface{}) graphql.FieldResolveFn {
	return func(p graphql.ResolveParams) (interface{}, error) {
		u, ok := p.Source.(*domain.User)
		if !ok || u == nil {
			return nil, nil
		}
		return fn(u), nil
	}
}

var userType = graphql.NewObject(graphql.ObjectConfig{
	Name: "User",
	Fields: graphql.Fields{
		"id": &graphql.Field{
			Type:    graphql.NewNonNull(graphql.ID),
			Resolve: userField(func(u *domain.User) interface{} { return u.ID }),
		},
		"username": &graphql.Field{
			Type:    graphql.NewNonNull(graphql.String),
			Resolve: userField(func(u *domain.User) interface{} { return u.Username }),
		},
		"role": &graphql.Field{
			Type:    graphql.NewNonNull(graphql.String),
			Resolve: userField(func(u *domain.User) interface{} { return u.Role.String() }),
		},
	},
})

var loginDataType = graphql.NewObject(graphql.ObjectConfig{
	Name: "LoginData",
	Fields: graphql.Fields{
		"jwt":  &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		"user": &graphql.Field{Type: graphql.NewNonNull(userType)},
	},
})

var loginResponseType = graphql.NewObject(graphql.ObjectConfig{
	Name: "LoginResponse",
	Fields: graphql.Fields{
		"success": &graphql.Field{Type: graphql.NewNonNull(graphql.Boolean)},
		"message": &graphql.Field{Type: graphql.String},
		"data":    &graphql.Field{Type: loginDataType},
	},
})

var tourInputType = graphql.NewInputObject(graphql.InputObjectConfig{
	Name: "TourInput",
	Fields: graphql.InputObjectConfigFieldMap{
		"name":          &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
		"price":         &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.Float)},
		"description":   &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
		"isActive":      &graphql.InputObjectFieldConfig{Type: graphql.Boolean},
		"imageFilename": &graphql.InputObjectFieldConfig{Type: graphql.String},
	},
})

var tourUpdateInputType = graphql.NewInputObject(graphql.InputObjectConfig{
	Name: "TourUpdateInput",
	Fields: graphql.InputObjectConfigFieldMap{
		"name":          &graphql.InputObjectFieldConfig{Type: graphql.String},
		"price":         &graphql.InputObjectFieldConfig{Type: graphql.Float},
		"description":   &graphql.InputObjectFieldConfig{Type: graphql.String},
		"isActive":      &graphql.InputObjectFieldConfig{Type: graphql.Boolean},
		"imageFilename": &graphql.InputObjectFieldConfig{Type: graphql.String},
	},
})

var loginInputType = graphql.NewInputObject(graphql.InputObjectConfig{
	Name: "LoginInput",
	Fields: graphql.InputObjectConfigFieldMap{
		"username": &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
		"password": &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
	},
})

func formatTime(t time.Time) string {
	return t.UTC().Format(createdAtLayout)
}
