package api

import (
	"net/http"

	"github.com/graphql-go/graphql"
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "github.com/tourdesk/tour-service/docs"
	"github.com/tourdesk/tour-service/internal/api/handler"
	"github.com/tourdesk/tour-service/internal/api/middleware"
)

const bodyLimit = "20M"

// RouterDeps are the collaborators of the HTTP surface.
type RouterDeps struct {
	Schema         graphql.Schema
	Authenticator  middleware.Authenticator
	Health         map[string]handler.Pinger
	ImageDir       string
	AllowedOrigins []string
	Log            zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(d RouterDeps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = NewHTTPErrorHandler(d.Log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(middleware.RequestLogger(d.Log))
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins:     d.AllowedOrigins,
		AllowCredentials: true,
		AllowHeaders:     []string{echo.HeaderContentType, echo.HeaderAuthorization, "Apollo-Require-Preflight"},
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodOptions},
	}))
	e.Use(echomiddleware.BodyLimit(bodyLimit))
	e.Use(echoprometheus.NewMiddleware("tours"))

	// --- GraphQL ---
	gql := handler.NewGraphQLHandler(d.Schema, d.Log)
	auth := middleware.Auth(d.Authenticator)
	e.GET("/graphql", gql.Serve, auth)
	e.POST("/graphql", gql.Serve, auth)
	e.GET("/", func(c echo.Context) error {
		return c.Redirect(http.StatusFound, "/graphql")
	})

	// --- Uploaded images ---
	e.Static("/img", d.ImageDir)

	// --- Health probes (no auth required) ---
	health := handler.NewHealthHandler(d.Health)
	e.GET("/health", health.Liveness)
	e.GET("/health/ready", health.Readiness)

	// --- Operations ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}
