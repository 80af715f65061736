// Package cache содержит кеширующие обертки над репозиториями валют и курсов
package cache

import (
	"context"
	"errors"
	"time"
)

// ErrInvalidTTL - время жизни кеша должно быть числом >= 0
var ErrInvalidTTL = errors.New("cache TTL must be >= 0 seconds")

// Store - хранилище кеша. Значения хранятся сериализованными,
// истечение TTL - забота самого хранилища.
type Store interface {
	Has(ctx context.Context, key string) (bool, error)
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
}
