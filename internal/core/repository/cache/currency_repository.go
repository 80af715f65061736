package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/ryabkov/cbrcourse/internal/core/models"
	"github.com/ryabkov/cbrcourse/internal/core/repository"
)

const (
	currencyCollectionKey = "currency-collection"
	currencyConcreteKey   = "currency-concrete"
)

type currencyRepository struct {
	wrapped repository.CurrencyRepository
	store   Store
	ttl     time.Duration
}

// NewCurrencyRepository оборачивает библиотеку валют кешем.
// TTL задается в секундах и не может быть отрицательным.
func NewCurrencyRepository(wrapped repository.CurrencyRepository, store Store, ttlSeconds int) (repository.CurrencyRepository, error) {
	ttl, err := ttlFromSeconds(ttlSeconds)
	if err != nil {
		return nil, err
	}

	return &currencyRepository{wrapped: wrapped, store: store, ttl: ttl}, nil
}

func (r *currencyRepository) GetCurrencies(ctx context.Context) ([]models.Currency, error) {
	return fetchThrough(ctx, r.store, currencyCollectionKey, r.ttl, r.wrapped.GetCurrencies)
}

func (r *currencyRepository) GetCurrencyByID(ctx context.Context, id string) (models.Currency, error) {
	key := fmt.Sprintf("%s-%s", currencyConcreteKey, id)
	return fetchThrough(ctx, r.store, key, r.ttl, func(ctx context.Context) (models.Currency, error) {
		return r.wrapped.GetCurrencyByID(ctx, id)
	})
}
