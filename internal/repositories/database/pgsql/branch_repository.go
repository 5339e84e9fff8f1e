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

// PgxBranchRepository implements the branch repository ports using pgxpool.
type PgxBranchRepository struct {
	BaseRepository
}

// NewPgxBranchRepository creates a new PgxBranchRepository.
func NewPgxBranchRepository(db *pgxpool.Pool) *PgxBranchRepository {
	return &PgxBranchRepository{
		BaseRepository: BaseRepository{Pool: db},
	}
}

var _ portsrepo.BranchRepositoryFacade = (*PgxBranchRepository)(nil)

const branchColumns = `branch_id, name, location, created_at, created_by, last_updated_at, last_updated_by`

func scanBranch(row pgx.Row) (models.Branch, error) {
	var m models.Branch
	err := row.Scan(
		&m.BranchID, &m.Name, &m.Location,
		&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
	)
	return m, err
}

// SaveBranch inserts a new branch.
func (r *PgxBranchRepository) SaveBranch(ctx context.Context, branch domain.Branch) error {
	m := mapping.ToModelBranch(branch)

	_, err := r.Pool.Exec(ctx, `
		INSERT INTO branches (
			branch_id, name, location,
			created_at, created_by, last_updated_at, last_updated_by
		) VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		m.BranchID, m.Name, m.Location,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to save branch", err)
	}
	return nil
}

// UpdateBranch updates an existing branch.
func (r *PgxBranchRepository) UpdateBranch(ctx context.Context, branch domain.Branch) error {
	m := mapping.ToModelBranch(branch)

	tag, err := r.Pool.Exec(ctx, `
		UPDATE branches
		SET name = $1, location = $2, last_updated_at = $3, last_updated_by = $4
		WHERE branch_id = $5`,
		m.Name, m.Location, m.LastUpdatedAt, m.LastUpdatedBy, m.BranchID,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update branch", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("branch with ID " + m.BranchID + " not found")
	}
	return nil
}

// DeleteBranch removes a branch.
func (r *PgxBranchRepository) DeleteBranch(ctx context.Context, branchID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM branches WHERE branch_id = $1`, branchID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to delete branch", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("branch with ID " + branchID + " not found")
	}
	return nil
}

// FindBranchByID retrieves a specific branch.
func (r *PgxBranchRepository) FindBranchByID(ctx context.Context, branchID string) (*domain.Branch, error) {
	query := `SELECT ` + branchColumns + ` FROM branches WHERE branch_id = $1;`

	m, err := scanBranch(r.Pool.QueryRow(ctx, query, branchID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("branch with ID " + branchID + " not found")
		}
		return nil, apperrors.NewAppError(500, "failed to get branch by ID", err)
	}

	d := mapping.ToDomainBranch(m)
	return &d, nil
}

// ListBranches retrieves all branches.
func (r *PgxBranchRepository) ListBranches(ctx context.Context) ([]domain.Branch, error) {
	query := `SELECT ` + branchColumns + ` FROM branches ORDER BY name;`

	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to list branches", err)
	}
	defer rows.Close()

	var branches []domain.Branch
	for rows.Next() {
		m, err := scanBranch(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan branch", err)
		}
		branches = append(branches, mapping.ToDomainBranch(m))
	}

	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating branches", err)
	}

	return branches, nil
}
