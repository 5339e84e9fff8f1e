package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/samandar-s/exchange_office_app/internal/apperrors"
	"github.com/samandar-s/exchange_office_app/internal/core/domain"
	portsrepo "github.com/samandar-s/exchange_office_app/internal/core/ports/repositories"
	"github.com/samandar-s/exchange_office_app/internal/models"
	"github.com/samandar-s/exchange_office_app/internal/utils/mapping"
	"github.com/shopspring/decimal"
)

// PgxBalanceRepository implements the balance repository ports using pgxpool.
type PgxBalanceRepository struct {
	BaseRepository
}

// NewPgxBalanceRepository creates a new PgxBalanceRepository.
func NewPgxBalanceRepository(db *pgxpool.Pool) *PgxBalanceRepository {
	return &PgxBalanceRepository{
		BaseRepository: BaseRepository{Pool: db},
	}
}

var _ portsrepo.BalanceRepositoryFacade = (*PgxBalanceRepository)(nil)

const balanceTxnColumns = `transaction_id, type, currency_id, amount, description, user_id, branch_id, created_at`

func scanBalanceTransaction(row pgx.Row) (models.BalanceTransaction, error) {
	var m models.BalanceTransaction
	err := row.Scan(
		&m.TransactionID, &m.Type, &m.CurrencyID, &m.Amount,
		&m.Description, &m.UserID, &m.BranchID, &m.CreatedAt,
	)
	return m, err
}

// SaveBalanceTransaction appends one ledger entry. There is deliberately no
// update or delete counterpart.
func (r *PgxBalanceRepository) SaveBalanceTransaction(ctx context.Context, txn domain.BalanceTransaction) error {
	m := mapping.ToModelBalanceTransaction(txn)

	_, err := r.Pool.Exec(ctx, `
		INSERT INTO balance_transactions (
			transaction_id, type, currency_id, amount, description,
			user_id, branch_id, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		m.TransactionID, m.Type, m.CurrencyID, m.Amount, m.Description,
		m.UserID, m.BranchID, m.CreatedAt,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to save balance transaction", err)
	}
	return nil
}

// ListBalanceTransactions retrieves ledger entries newest first, optionally
// filtered by currency and branch, paginated.
func (r *PgxBalanceRepository) ListBalanceTransactions(ctx context.Context, currencyID, branchID *string, page, pageSize int) ([]domain.BalanceTransaction, int, error) {
	baseQuery := `FROM balance_transactions WHERE 1=1`
	args := []interface{}{}
	argNum := 1

	if currencyID != nil {
		baseQuery += fmt.Sprintf(" AND currency_id = $%d", argNum)
		args = append(args, *currencyID)
		argNum++
	}

	if branchID != nil {
		baseQuery += fmt.Sprintf(" AND branch_id = $%d", argNum)
		args = append(args, *branchID)
		argNum++
	}

	var total int
	if err := r.Pool.QueryRow(ctx, "SELECT COUNT(*) "+baseQuery, args...).Scan(&total); err != nil {
		return nil, 0, apperrors.NewAppError(500, "failed to count balance transactions", err)
	}

	if total == 0 {
		return []domain.BalanceTransaction{}, 0, nil
	}

	baseQuery += " ORDER BY created_at DESC"
	offset := (page - 1) * pageSize
	baseQuery += fmt.Sprintf(" LIMIT $%d OFFSET $%d", argNum, argNum+1)
	args = append(args, pageSize, offset)

	rows, err := r.Pool.Query(ctx, "SELECT "+balanceTxnColumns+" "+baseQuery, args...)
	if err != nil {
		return nil, 0, apperrors.NewAppError(500, "failed to list balance transactions", err)
	}
	defer rows.Close()

	var txns []domain.BalanceTransaction
	for rows.Next() {
		m, err := scanBalanceTransaction(rows)
		if err != nil {
			return nil, 0, apperrors.NewAppError(500, "failed to scan balance transaction", err)
		}
		txns = append(txns, mapping.ToDomainBalanceTransaction(m))
	}

	if err := rows.Err(); err != nil {
		return nil, 0, apperrors.NewAppError(500, "error iterating balance transactions", err)
	}

	return txns, total, nil
}

// ListDailyBalances retrieves snapshots for all currencies within [from, to],
// optionally filtered by branch.
func (r *PgxBalanceRepository) ListDailyBalances(ctx context.Context, branchID *string, from, to time.Time) ([]domain.DailyBalance, error) {
	query := `
		SELECT date, currency_id, branch_id, balance
		FROM daily_balances
		WHERE date >= $1 AND date <= $2`
	args := []interface{}{from, to}

	if branchID != nil {
		query += " AND branch_id = $3"
		args = append(args, *branchID)
	}
	query += " ORDER BY date, currency_id, branch_id;"

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to list daily balances", err)
	}
	defer rows.Close()

	var balances []domain.DailyBalance
	for rows.Next() {
		var m models.DailyBalance
		if err := rows.Scan(&m.Date, &m.CurrencyID, &m.BranchID, &m.Balance); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan daily balance", err)
		}
		balances = append(balances, mapping.ToDomainDailyBalance(m))
	}

	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating daily balances", err)
	}

	return balances, nil
}

// GetCurrentBalance computes the present balance for a currency at a branch:
// the latest snapshot plus the signed sum of ledger entries recorded after
// it. A branch with no history yields zero.
func (r *PgxBalanceRepository) GetCurrentBalance(ctx context.Context, currencyID, branchID string) (decimal.Decimal, error) {
	var snapshotBalance decimal.Decimal
	var snapshotDate time.Time
	hasSnapshot := true

	err := r.Pool.QueryRow(ctx, `
		SELECT balance, date
		FROM daily_balances
		WHERE currency_id = $1 AND branch_id = $2
		ORDER BY date DESC
		LIMIT 1`,
		currencyID, branchID,
	).Scan(&snapshotBalance, &snapshotDate)
	if err != nil {
		if !errors.Is(err, pgx.ErrNoRows) {
			return decimal.Zero, apperrors.NewAppError(500, "failed to get latest daily balance", err)
		}
		hasSnapshot = false
		snapshotBalance = decimal.Zero
	}

	query := `
		SELECT COALESCE(SUM(
			CASE WHEN type IN ('ADD', 'CONVERSION_IN') THEN amount ELSE -amount END
		), 0)
		FROM balance_transactions
		WHERE currency_id = $1 AND branch_id = $2`
	args := []interface{}{currencyID, branchID}
	if hasSnapshot {
		query += " AND created_at > $3"
		args = append(args, snapshotDate)
	}

	var ledgerSum decimal.Decimal
	if err := r.Pool.QueryRow(ctx, query, args...).Scan(&ledgerSum); err != nil {
		return decimal.Zero, apperrors.NewAppError(500, "failed to sum balance transactions", err)
	}

	return snapshotBalance.Add(ledgerSum), nil
}
