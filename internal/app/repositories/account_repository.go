package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/courator/courator/internal/app/models"
	"github.com/courator/courator/internal/pkg/apperrors"
	"github.com/courator/courator/internal/pkg/dberrors"
)

// AccountRepository handles database operations for accounts
type AccountRepository struct {
	db *pgxpool.Pool
}

// NewAccountRepository creates a new account repository
func NewAccountRepository(db *pgxpool.Pool) *AccountRepository {
	return &AccountRepository{
		db: db,
	}
}

// Create inserts a new account. The email carries a unique constraint; a
// duplicate surfaces as ErrEmailAlreadyExists.
func (r *AccountRepository) Create(ctx context.Context, account *models.Account) error {
	query := `
		INSERT INTO accounts (name, email, password_hash, about, permissions)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query,
		account.Name, account.Email, account.PasswordHash, account.About, account.Permissions,
	).Scan(&account.ID)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.ErrEmailAlreadyExists
		}
		return fmt.Errorf("error creating account: %w", err)
	}

	return nil
}

// GetByID retrieves an account by ID
func (r *AccountRepository) GetByID(ctx context.Context, id int64) (*models.Account, error) {
	query := `
		SELECT id, name, email, password_hash, about, permissions
		FROM accounts
		WHERE id = $1
	`

	var account models.Account
	err := r.db.QueryRow(ctx, query, id).Scan(
		&account.ID,
		&account.Name,
		&account.Email,
		&account.PasswordHash,
		&account.About,
		&account.Permissions,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrAccountNotFound
		}
		return nil, fmt.Errorf("error retrieving account: %w", err)
	}

	return &account, nil
}

// GetByEmail retrieves an account by its unique email
func (r *AccountRepository) GetByEmail(ctx context.Context, email string) (*models.Account, error) {
	query := `
		SELECT id, name, email, password_hash, about, permissions
		FROM accounts
		WHERE email = $1
	`

	var account models.Account
	err := r.db.QueryRow(ctx, query, email).Scan(
		&account.ID,
		&account.Name,
		&account.Email,
		&account.PasswordHash,
		&account.About,
		&account.Permissions,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrAccountNotFound
		}
		return nil, fmt.Errorf("error retrieving account by email: %w", err)
	}

	return &account, nil
}

// UpdateAbout updates an account's about text
func (r *AccountRepository) UpdateAbout(ctx context.Context, id int64, about string) error {
	cmdTag, err := r.db.Exec(ctx, `UPDATE accounts SET about = $1 WHERE id = $2`, about, id)
	if err != nil {
		return fmt.Errorf("error updating account: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrAccountNotFound
	}

	return nil
}
