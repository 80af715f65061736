package redisdb

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/ryabkov/cbrcourse/internal/core/logger"
	"github.com/ryabkov/cbrcourse/pkg/config"
)

type Database struct {
	log logger.Logger
	*redis.Client
}

func NewRedisDB(cfg config.RedisConfig, log logger.Logger) (*Database, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("error connecting to redis: %w", err)
	}

	return &Database{log: log, Client: client}, nil
}

func (db *Database) Close() error {
	db.log.Info("Closing redis connection")
	return db.Client.Close()
}
