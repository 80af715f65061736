package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"
)

// fetchThrough - общий cache-aside протокол для всех оберток:
// проверка наличия по ключу, на попадании - значение из кеша как есть,
// на промахе - загрузка из обернутого репозитория и запись в кеш с TTL.
// Любая ошибка самого хранилища прерывает операцию без похода в источник.
func fetchThrough[T any](ctx context.Context, store Store, key string, ttl time.Duration, load func(context.Context) (T, error)) (T, error) {
	var zero T

	exists, err := store.Has(ctx, key)
	if err != nil {
		return zero, fmt.Errorf("cache has %q: %w", key, err)
	}

	if exists {
		raw, err := store.Get(ctx, key)
		if err != nil {
			return zero, fmt.Errorf("cache get %q: %w", key, err)
		}

		var cached T
		if err := json.Unmarshal(raw, &cached); err != nil {
			return zero, fmt.Errorf("cache decode %q: %w", key, err)
		}

		return cached, nil
	}

	value, err := load(ctx)
	if err != nil {
		return zero, err
	}

	raw, err := json.Marshal(value)
	if err != nil {
		return zero, fmt.Errorf("cache encode %q: %w", key, err)
	}

	if err := store.Set(ctx, key, raw, ttl); err != nil {
		return zero, fmt.Errorf("cache set %q: %w", key, err)
	}

	return value, nil
}

func ttlFromSeconds(ttlSeconds int) (time.Duration, error) {
	if ttlSeconds < 0 {
		return 0, ErrInvalidTTL
	}

	return time.Duration(ttlSeconds) * time.Second, nil
}
