package main

import (
	"context"
	"errors"

	goredis "github.com/redis/go-redis/v9"
	mongodrv "go.mongodb.org/mongo-driver/mongo"

	"github.com/tourdesk/tour-service/internal/core/ports"
	"github.com/tourdesk/tour-service/internal/infrastructure/db/mongo"
	"github.com/tourdesk/tour-service/internal/infrastructure/db/redis"
)

// openMongo connects to the document store and makes sure the indexes exist.
func openMongo(ctx context.Context) (*mongodrv.Client, *mongo.TourRepository, *mongo.AuthRepository, error) {
	client, db, err := mongo.Connect(ctx, mongo.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		return nil, nil, nil, err
	}

	tours := mongo.NewTourRepository(db)
	users := mongo.NewAuthRepository(db)
	if err := tours.EnsureIndexes(ctx); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, nil, nil, err
	}
	if err := users.EnsureIndexes(ctx); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, nil, nil, err
	}

	log.Info().Str("database", cfg.Mongo.Database).Msg("connected to mongodb")
	return client, tours, users, nil
}

// openRedis returns a nil client and limiter when Redis is not configured.
func openRedis(ctx context.Context) (*goredis.Client, ports.LoginLimiter, error) {
	client, err := redis.Connect(ctx, redis.Config{Addr: cfg.Redis.Addr, DB: cfg.Redis.DB})
	if errors.Is(err, redis.ErrDisabled) {
		log.Info().Msg("redis not configured, login throttling disabled")
		return nil, nil, nil
	}
	if err != nil {
		return nil, nil, err
	}

	log.Info().Str("addr", cfg.Redis.Addr).Msg("connected to redis")
	return client, redis.NewLoginLimiter(client, cfg.Auth.LoginMaxAttempts, cfg.Auth.LoginLockout), nil
}
