package pgsql

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/samandar-s/exchange_office_app/internal/apperrors"
	"github.com/samandar-s/exchange_office_app/internal/core/domain"
	portsrepo "github.com/samandar-s/exchange_office_app/internal/core/ports/repositories"
	"github.com/samandar-s/exchange_office_app/internal/models"
	"github.com/samandar-s/exchange_office_app/internal/utils/mapping"
)

// PgxUserRepository implements the user repository ports using pgxpool.
type PgxUserRepository struct {
	BaseRepository
}

// NewPgxUserRepository creates a new PgxUserRepository.
func NewPgxUserRepository(db *pgxpool.Pool) *PgxUserRepository {
	return &PgxUserRepository{
		BaseRepository: BaseRepository{Pool: db},
	}
}

var _ portsrepo.UserRepositoryFacade = (*PgxUserRepository)(nil)

const userColumns = `user_id, name, email, phone, role, password_hash, refresh_token_hash, refresh_token_expiry_time, deleted_at, created_at, created_by, last_updated_at, last_updated_by`

func scanUser(row pgx.Row) (models.User, error) {
	var m models.User
	var refreshTokenHash *string
	err := row.Scan(
		&m.UserID, &m.Name, &m.Email, &m.Phone, &m.Role,
		&m.PasswordHash, &refreshTokenHash, &m.RefreshTokenExpiryTime, &m.DeletedAt,
		&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
	)
	if refreshTokenHash != nil {
		m.RefreshTokenHash = *refreshTokenHash
	}
	return m, err
}

// SaveUser inserts a new user.
func (r *PgxUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	m := mapping.ToModelUser(user)
	m.Email = strings.ToLower(m.Email)

	_, err := r.Pool.Exec(ctx, `
		INSERT INTO users (
			user_id, name, email, phone, role, password_hash,
			created_at, created_by, last_updated_at, last_updated_by
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		m.UserID, m.Name, m.Email, m.Phone, m.Role, m.PasswordHash,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return apperrors.NewAppError(409, "user with email "+m.Email+" already exists", apperrors.ErrDuplicate)
		}
		return apperrors.NewAppError(500, "failed to save user", err)
	}
	return nil
}

// UpdateUser updates mutable user fields.
func (r *PgxUserRepository) UpdateUser(ctx context.Context, user domain.User) error {
	m := mapping.ToModelUser(user)

	tag, err := r.Pool.Exec(ctx, `
		UPDATE users
		SET name = $1, phone = $2, role = $3, last_updated_at = $4, last_updated_by = $5
		WHERE user_id = $6 AND deleted_at IS NULL`,
		m.Name, m.Phone, m.Role, m.LastUpdatedAt, m.LastUpdatedBy, m.UserID,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update user", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("user with ID " + m.UserID + " not found")
	}
	return nil
}

// MarkUserDeleted soft-deletes a user.
func (r *PgxUserRepository) MarkUserDeleted(ctx context.Context, userID string, deletedBy string, deletedAt time.Time) error {
	tag, err := r.Pool.Exec(ctx, `
		UPDATE users
		SET deleted_at = $1, last_updated_at = $1, last_updated_by = $2
		WHERE user_id = $3 AND deleted_at IS NULL`,
		deletedAt, deletedBy, userID,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to mark user deleted", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("user with ID " + userID + " not found")
	}
	return nil
}

// SetUserBranches replaces the user's branch assignments with the given set.
func (r *PgxUserRepository) SetUserBranches(ctx context.Context, userID string, branchIDs []string) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}

	_, err = tx.Exec(ctx, `DELETE FROM user_branches WHERE user_id = $1`, userID)
	if err != nil {
		_ = r.Rollback(ctx, tx)
		return apperrors.NewAppError(500, "failed to clear user branches", err)
	}

	for _, branchID := range branchIDs {
		_, err = tx.Exec(ctx, `INSERT INTO user_branches (user_id, branch_id) VALUES ($1, $2)`, userID, branchID)
		if err != nil {
			_ = r.Rollback(ctx, tx)
			return apperrors.NewAppError(500, "failed to assign branch "+branchID, err)
		}
	}

	return r.Commit(ctx, tx)
}

// UpdateRefreshToken stores the hash and expiry of the user's refresh token;
// nil values clear it.
func (r *PgxUserRepository) UpdateRefreshToken(ctx context.Context, userID string, tokenHash *string, expiresAt *time.Time) error {
	tag, err := r.Pool.Exec(ctx, `
		UPDATE users
		SET refresh_token_hash = $1, refresh_token_expiry_time = $2
		WHERE user_id = $3 AND deleted_at IS NULL`,
		tokenHash, expiresAt, userID,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update refresh token", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("user with ID " + userID + " not found")
	}
	return nil
}

// FindUserByID retrieves a user with their assigned branch ids.
func (r *PgxUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE user_id = $1 AND deleted_at IS NULL;`

	m, err := scanUser(r.Pool.QueryRow(ctx, query, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("user with ID " + userID + " not found")
		}
		return nil, apperrors.NewAppError(500, "failed to get user by ID", err)
	}

	d := mapping.ToDomainUser(m)
	if d.BranchIDs, err = r.findUserBranchIDs(ctx, d.UserID); err != nil {
		return nil, err
	}
	return &d, nil
}

// FindUserByEmail retrieves a user by login email.
func (r *PgxUserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1 AND deleted_at IS NULL;`

	m, err := scanUser(r.Pool.QueryRow(ctx, query, strings.ToLower(email)))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("user with email " + email + " not found")
		}
		return nil, apperrors.NewAppError(500, "failed to get user by email", err)
	}

	d := mapping.ToDomainUser(m)
	if d.BranchIDs, err = r.findUserBranchIDs(ctx, d.UserID); err != nil {
		return nil, err
	}
	return &d, nil
}

// ListUsers retrieves all non-deleted users with their branch assignments.
func (r *PgxUserRepository) ListUsers(ctx context.Context) ([]domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE deleted_at IS NULL ORDER BY name;`

	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to list users", err)
	}
	defer rows.Close()

	var users []domain.User
	for rows.Next() {
		m, err := scanUser(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan user", err)
		}
		users = append(users, mapping.ToDomainUser(m))
	}

	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating users", err)
	}

	for i := range users {
		if users[i].BranchIDs, err = r.findUserBranchIDs(ctx, users[i].UserID); err != nil {
			return nil, err
		}
	}

	return users, nil
}

// findUserBranchIDs loads the branch ids assigned to a user.
func (r *PgxUserRepository) findUserBranchIDs(ctx context.Context, userID string) ([]string, error) {
	rows, err := r.Pool.Query(ctx, `SELECT branch_id FROM user_branches WHERE user_id = $1 ORDER BY branch_id`, userID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to list user branches", err)
	}
	defer rows.Close()

	var branchIDs []string
	for rows.Next() {
		var branchID string
		if err := rows.Scan(&branchID); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan user branch", err)
		}
		branchIDs = append(branchIDs, branchID)
	}

	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating user branches", err)
	}

	return branchIDs, nil
}
