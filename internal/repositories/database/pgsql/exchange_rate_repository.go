package pgsql

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/samandar-s/exchange_office_app/internal/apperrors"
	"github.com/samandar-s/exchange_office_app/internal/core/domain"
	portsrepo "github.com/samandar-s/exchange_office_app/internal/core/ports/repositories"
	"github.com/samandar-s/exchange_office_app/internal/models"
	"github.com/samandar-s/exchange_office_app/internal/utils/mapping"
)

// PgxExchangeRateRepository implements the exchange rate repository ports using pgxpool.
type PgxExchangeRateRepository struct {
	BaseRepository
}

// NewPgxExchangeRateRepository creates a new PgxExchangeRateRepository.
func NewPgxExchangeRateRepository(db *pgxpool.Pool) *PgxExchangeRateRepository {
	return &PgxExchangeRateRepository{
		BaseRepository: BaseRepository{Pool: db},
	}
}

var _ portsrepo.ExchangeRateRepositoryFacade = (*PgxExchangeRateRepository)(nil)

const exchangeRateColumns = `exchange_rate_id, base_currency_id, quote_currency_id, rate, created_at, created_by, last_updated_at, last_updated_by`

func scanExchangeRate(row pgx.Row) (models.ExchangeRate, error) {
	var m models.ExchangeRate
	err := row.Scan(
		&m.ExchangeRateID, &m.BaseCurrencyID, &m.QuoteCurrencyID, &m.Rate,
		&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
	)
	return m, err
}

// SaveExchangeRate inserts a new exchange rate. Rates are never updated in
// place; each entry is a new row and reads pick the most recent.
func (r *PgxExchangeRateRepository) SaveExchangeRate(ctx context.Context, rate domain.ExchangeRate) error {
	if rate.BaseCurrencyID == rate.QuoteCurrencyID {
		return apperrors.NewValidationError("base and quote currencies cannot be the same")
	}

	m := mapping.ToModelExchangeRate(rate)

	_, err := r.Pool.Exec(ctx, `
		INSERT INTO exchange_rates (
			exchange_rate_id, base_currency_id, quote_currency_id, rate,
			created_at, created_by, last_updated_at, last_updated_by
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		m.ExchangeRateID, m.BaseCurrencyID, m.QuoteCurrencyID, m.Rate,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to save exchange rate", err)
	}
	return nil
}

// FindLatestRate retrieves the most recent rate stored for the exact
// direction given. Inverse derivation is the resolver's job, not the
// repository's.
func (r *PgxExchangeRateRepository) FindLatestRate(ctx context.Context, baseCurrencyID, quoteCurrencyID string) (*domain.ExchangeRate, error) {
	query := `
		SELECT ` + exchangeRateColumns + `
		FROM exchange_rates
		WHERE base_currency_id = $1 AND quote_currency_id = $2
		ORDER BY created_at DESC
		LIMIT 1;
	`

	m, err := scanExchangeRate(r.Pool.QueryRow(ctx, query, baseCurrencyID, quoteCurrencyID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrRateNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find exchange rate", err)
	}

	d := mapping.ToDomainExchangeRate(m)
	return &d, nil
}

// ListExchangeRates retrieves stored rates, newest first, paginated.
func (r *PgxExchangeRateRepository) ListExchangeRates(ctx context.Context, page, pageSize int) ([]domain.ExchangeRate, int, error) {
	var total int
	if err := r.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM exchange_rates`).Scan(&total); err != nil {
		return nil, 0, apperrors.NewAppError(500, "failed to count exchange rates", err)
	}

	if total == 0 {
		return []domain.ExchangeRate{}, 0, nil
	}

	query := `
		SELECT ` + exchangeRateColumns + `
		FROM exchange_rates
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2;
	`
	offset := (page - 1) * pageSize

	rows, err := r.Pool.Query(ctx, query, pageSize, offset)
	if err != nil {
		return nil, 0, apperrors.NewAppError(500, "failed to list exchange rates", err)
	}
	defer rows.Close()

	var rates []domain.ExchangeRate
	for rows.Next() {
		m, err := scanExchangeRate(rows)
		if err != nil {
			return nil, 0, apperrors.NewAppError(500, "failed to scan exchange rate", err)
		}
		rates = append(rates, mapping.ToDomainExchangeRate(m))
	}

	if err := rows.Err(); err != nil {
		return nil, 0, apperrors.NewAppError(500, "error iterating exchange rates", err)
	}

	return rates, total, nil
}
