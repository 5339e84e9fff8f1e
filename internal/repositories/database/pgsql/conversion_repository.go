package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/samandar-s/exchange_office_app/internal/apperrors"
	"github.com/samandar-s/exchange_office_app/internal/core/domain"
	portsrepo "github.com/samandar-s/exchange_office_app/internal/core/ports/repositories"
	"github.com/samandar-s/exchange_office_app/internal/models"
	"github.com/samandar-s/exchange_office_app/internal/utils/mapping"
)

// PgxConversionRepository implements the conversion repository ports using pgxpool.
type PgxConversionRepository struct {
	BaseRepository
}

// NewPgxConversionRepository creates a new PgxConversionRepository.
func NewPgxConversionRepository(db *pgxpool.Pool) *PgxConversionRepository {
	return &PgxConversionRepository{
		BaseRepository: BaseRepository{Pool: db},
	}
}

var _ portsrepo.ConversionRepositoryFacade = (*PgxConversionRepository)(nil)

const conversionColumns = `conversion_id, from_currency_id, to_currency_id, from_amount, to_amount, rate_used, user_id, branch_id, created_at, created_by, last_updated_at, last_updated_by`

func scanConversion(row pgx.Row) (models.Conversion, error) {
	var m models.Conversion
	err := row.Scan(
		&m.ConversionID, &m.FromCurrencyID, &m.ToCurrencyID,
		&m.FromAmount, &m.ToAmount, &m.RateUsed, &m.UserID, &m.BranchID,
		&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
	)
	return m, err
}

// SaveConversion persists the conversion and its paired ledger entries in a
// single transaction, so a recorded exchange and its balance effects never
// diverge.
func (r *PgxConversionRepository) SaveConversion(ctx context.Context, conversion domain.Conversion, ledgerEntries []domain.BalanceTransaction) error {
	m := mapping.ToModelConversion(conversion)

	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}

	_, err = tx.Exec(ctx, `
		INSERT INTO conversions (
			conversion_id, from_currency_id, to_currency_id, from_amount, to_amount,
			rate_used, user_id, branch_id,
			created_at, created_by, last_updated_at, last_updated_by
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`,
		m.ConversionID, m.FromCurrencyID, m.ToCurrencyID, m.FromAmount, m.ToAmount,
		m.RateUsed, m.UserID, m.BranchID,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		_ = r.Rollback(ctx, tx)
		return apperrors.NewAppError(500, "failed to save conversion", err)
	}

	for _, entry := range ledgerEntries {
		me := mapping.ToModelBalanceTransaction(entry)
		_, err = tx.Exec(ctx, `
			INSERT INTO balance_transactions (
				transaction_id, type, currency_id, amount, description,
				user_id, branch_id, created_at
			) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
			me.TransactionID, me.Type, me.CurrencyID, me.Amount, me.Description,
			me.UserID, me.BranchID, me.CreatedAt,
		)
		if err != nil {
			_ = r.Rollback(ctx, tx)
			return apperrors.NewAppError(500, fmt.Sprintf("failed to save %s ledger entry", entry.Type), err)
		}
	}

	return r.Commit(ctx, tx)
}

// FindConversionByID retrieves a specific conversion.
func (r *PgxConversionRepository) FindConversionByID(ctx context.Context, conversionID string) (*domain.Conversion, error) {
	query := `SELECT ` + conversionColumns + ` FROM conversions WHERE conversion_id = $1;`

	m, err := scanConversion(r.Pool.QueryRow(ctx, query, conversionID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("conversion with ID " + conversionID + " not found")
		}
		return nil, apperrors.NewAppError(500, "failed to get conversion by ID", err)
	}

	d := mapping.ToDomainConversion(m)
	return &d, nil
}

// ListConversions retrieves conversions newest first, optionally filtered by
// branch, paginated.
func (r *PgxConversionRepository) ListConversions(ctx context.Context, branchID *string, page, pageSize int) ([]domain.Conversion, int, error) {
	baseQuery := `FROM conversions WHERE 1=1`
	args := []interface{}{}
	argNum := 1

	if branchID != nil {
		baseQuery += fmt.Sprintf(" AND branch_id = $%d", argNum)
		args = append(args, *branchID)
		argNum++
	}

	var total int
	if err := r.Pool.QueryRow(ctx, "SELECT COUNT(*) "+baseQuery, args...).Scan(&total); err != nil {
		return nil, 0, apperrors.NewAppError(500, "failed to count conversions", err)
	}

	if total == 0 {
		return []domain.Conversion{}, 0, nil
	}

	baseQuery += " ORDER BY created_at DESC"
	offset := (page - 1) * pageSize
	baseQuery += fmt.Sprintf(" LIMIT $%d OFFSET $%d", argNum, argNum+1)
	args = append(args, pageSize, offset)

	rows, err := r.Pool.Query(ctx, "SELECT "+conversionColumns+" "+baseQuery, args...)
	if err != nil {
		return nil, 0, apperrors.NewAppError(500, "failed to list conversions", err)
	}
	defer rows.Close()

	var conversions []domain.Conversion
	for rows.Next() {
		m, err := scanConversion(rows)
		if err != nil {
			return nil, 0, apperrors.NewAppError(500, "failed to scan conversion", err)
		}
		conversions = append(conversions, mapping.ToDomainConversion(m))
	}

	if err := rows.Err(); err != nil {
		return nil, 0, apperrors.NewAppError(500, "error iterating conversions", err)
	}

	return conversions, total, nil
}
