package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/samandar-s/exchange_office_app/internal/core/domain"
	portsrepo "github.com/samandar-s/exchange_office_app/internal/core/ports/repositories"
)

const latestRateKeyPrefix = "exo:rate:latest:"

// CachedExchangeRateRepository is a read-through cache over the exchange rate
// repository. Rates change rarely (they are entered manually) but are read on
// every conversion, so even a short TTL removes most of the database traffic.
type CachedExchangeRateRepository struct {
	inner portsrepo.ExchangeRateRepositoryFacade
	rdb   *redis.Client
	ttl   time.Duration
}

// NewCachedExchangeRateRepository wraps the given repository with a redis
// cache using the given TTL.
func NewCachedExchangeRateRepository(inner portsrepo.ExchangeRateRepositoryFacade, rdb *redis.Client, ttl time.Duration) *CachedExchangeRateRepository {
	return &CachedExchangeRateRepository{inner: inner, rdb: rdb, ttl: ttl}
}

var _ portsrepo.ExchangeRateRepositoryFacade = (*CachedExchangeRateRepository)(nil)

func pairKey(baseCurrencyID, quoteCurrencyID string) string {
	return latestRateKeyPrefix + baseCurrencyID + ":" + quoteCurrencyID
}

// FindLatestRate serves the pair from cache when possible, falling back to
// the underlying repository on a miss or any cache error.
func (c *CachedExchangeRateRepository) FindLatestRate(ctx context.Context, baseCurrencyID, quoteCurrencyID string) (*domain.ExchangeRate, error) {
	key := pairKey(baseCurrencyID, quoteCurrencyID)

	cached, err := c.rdb.Get(ctx, key).Bytes()
	if err == nil {
		var rate domain.ExchangeRate
		if json.Unmarshal(cached, &rate) == nil {
			return &rate, nil
		}
	}

	rate, err := c.inner.FindLatestRate(ctx, baseCurrencyID, quoteCurrencyID)
	if err != nil {
		return nil, err
	}

	if payload, err := json.Marshal(rate); err == nil {
		// Cache failures are not fatal; the next read hits the database again.
		_ = c.rdb.Set(ctx, key, payload, c.ttl).Err()
	}

	return rate, nil
}

// ListExchangeRates is not cached; the paginated history is an admin view.
func (c *CachedExchangeRateRepository) ListExchangeRates(ctx context.Context, page, pageSize int) ([]domain.ExchangeRate, int, error) {
	return c.inner.ListExchangeRates(ctx, page, pageSize)
}

// SaveExchangeRate writes through and invalidates the affected entries.
func (c *CachedExchangeRateRepository) SaveExchangeRate(ctx context.Context, rate domain.ExchangeRate) error {
	if err := c.inner.SaveExchangeRate(ctx, rate); err != nil {
		return err
	}

	// Drop both directions: resolvers derive the inverse from this pair.
	_ = c.rdb.Del(ctx,
		pairKey(rate.BaseCurrencyID, rate.QuoteCurrencyID),
		pairKey(rate.QuoteCurrencyID, rate.BaseCurrencyID),
	).Err()

	return nil
}
