package main

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/tourdesk/tour-service/internal/api"
	"github.com/tourdesk/tour-service/internal/api/handler"
	"github.com/tourdesk/tour-service/internal/api/schema"
	"github.com/tourdesk/tour-service/internal/core/service"
	"github.com/tourdesk/tour-service/internal/infrastructure/db/mongo"
	"github.com/tourdesk/tour-service/internal/infrastructure/db/redis"
	"github.com/tourdesk/tour-service/internal/infrastructure/storage"
)

const shutdownTimeout = 10 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the GraphQL API server",
	Args:  cobra.NoArgs,
	RunE:  runServe,
}

func runServe(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	locale, err := cfg.Locale()
	if err != nil {
		return err
	}

	mongoClient, tourRepo, userRepo, err := openMongo(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = mongoClient.Disconnect(context.Background()) }()

	health := map[string]handler.Pinger{"mongodb": mongo.NewPinger(mongoClient)}

	redisClient, limiter, err := openRedis(ctx)
	if err != nil {
		return err
	}
	if redisClient != nil {
		defer func() { _ = redisClient.Close() }()
		health["redis"] = redis.NewPinger(redisClient)
	}

	authSvc := service.NewAuthService(userRepo, limiter, cfg.Auth.JWTSecret, cfg.Auth.TokenTTL, log)
	tourSvc := service.NewTourService(tourRepo, locale, log)
	uploadSvc := service.NewUploadService(storage.NewDiskImageStore(cfg.ImageDir), log)

	s, err := schema.New(schema.Deps{
		Tours:   tourSvc,
		Auth:    authSvc,
		Uploads: uploadSvc,
		Log:     log,
	})
	if err != nil {
		return err
	}

	e := api.NewRouter(api.RouterDeps{
		Schema:         s,
		Authenticator:  authSvc,
		Health:         health,
		ImageDir:       cfg.ImageDir,
		AllowedOrigins: cfg.CORSAllowedOrigins,
		Log:            log,
	})

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("port", cfg.Port).Msg("server listening at /graphql")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return e.Shutdown(shutdownCtx)
}
