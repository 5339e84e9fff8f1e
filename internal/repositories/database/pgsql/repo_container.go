package pgsql

import (
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	portsrepo "github.com/samandar-s/exchange_office_app/internal/core/ports/repositories"
	"github.com/samandar-s/exchange_office_app/internal/repositories/cache"
)

// NewRepositoryProvider wires up the concrete repositories. When a redis
// client is provided the exchange rate repository is wrapped with a
// read-through cache.
func NewRepositoryProvider(dbPool *pgxpool.Pool, redisClient *redis.Client, rateCacheTTL time.Duration) portsrepo.RepositoryProvider {
	currencyRepo := NewPgxCurrencyRepository(dbPool)
	userRepo := NewPgxUserRepository(dbPool)
	branchRepo := NewPgxBranchRepository(dbPool)
	conversionRepo := NewPgxConversionRepository(dbPool)
	balanceRepo := NewPgxBalanceRepository(dbPool)

	var exchangeRateRepo portsrepo.ExchangeRateRepositoryFacade = NewPgxExchangeRateRepository(dbPool)
	if redisClient != nil {
		exchangeRateRepo = cache.NewCachedExchangeRateRepository(exchangeRateRepo, redisClient, rateCacheTTL)
	}

	return portsrepo.RepositoryProvider{
		CurrencyRepo:     currencyRepo,
		ExchangeRateRepo: exchangeRateRepo,
		ConversionRepo:   conversionRepo,
		BalanceRepo:      balanceRepo,
		BranchRepo:       branchRepo,
		UserRepo:         userRepo,
	}
}
