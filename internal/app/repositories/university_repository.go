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

// UniversityRepository handles database operations for universities
type UniversityRepository struct {
	db *pgxpool.Pool
}

// NewUniversityRepository creates a new university repository
func NewUniversityRepository(db *pgxpool.Pool) *UniversityRepository {
	return &UniversityRepository{
		db: db,
	}
}

// Create inserts a new university. The code carries a unique constraint.
func (r *UniversityRepository) Create(ctx context.Context, university *models.University) error {
	query := `
		INSERT INTO universities (code, name, description, website)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query,
		university.Code, university.Name, university.Description, university.Website,
	).Scan(&university.ID)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.ErrUniversityAlreadyExists
		}
		return fmt.Errorf("error creating university: %w", err)
	}

	return nil
}

// GetByID retrieves a university by ID
func (r *UniversityRepository) GetByID(ctx context.Context, id int64) (*models.University, error) {
	query := `
		SELECT id, code, name, description, website
		FROM universities
		WHERE id = $1
	`

	var university models.University
	err := r.db.QueryRow(ctx, query, id).Scan(
		&university.ID,
		&university.Code,
		&university.Name,
		&university.Description,
		&university.Website,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrUniversityNotFound
		}
		return nil, fmt.Errorf("error retrieving university: %w", err)
	}

	return &university, nil
}

// GetByCode retrieves a university by its unique short code
func (r *UniversityRepository) GetByCode(ctx context.Context, code string) (*models.University, error) {
	query := `
		SELECT id, code, name, description, website
		FROM universities
		WHERE code = $1
	`

	var university models.University
	err := r.db.QueryRow(ctx, query, code).Scan(
		&university.ID,
		&university.Code,
		&university.Name,
		&university.Description,
		&university.Website,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrUniversityNotFound
		}
		return nil, fmt.Errorf("error retrieving university by code: %w", err)
	}

	return &university, nil
}

// GetAll retrieves a page of universities ordered by code
func (r *UniversityRepository) GetAll(ctx context.Context, offset uint64, limit int) ([]*models.University, error) {
	query := `
		SELECT id, code, name, description, website
		FROM universities
		ORDER BY code
		OFFSET $1 LIMIT $2
	`

	rows, err := r.db.Query(ctx, query, offset, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var universities []*models.University
	for rows.Next() {
		var university models.University
		if err := rows.Scan(
			&university.ID,
			&university.Code,
			&university.Name,
			&university.Description,
			&university.Website,
		); err != nil {
			return nil, err
		}
		universities = append(universities, &university)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return universities, nil
}

// Count returns the total number of universities
func (r *UniversityRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM universities`).Scan(&count); err != nil {
		return 0, fmt.Errorf("error counting universities: %w", err)
	}
	return count, nil
}

// Update updates an existing university addressed by code
func (r *UniversityRepository) Update(ctx context.Context, university *models.University) error {
	query := `
		UPDATE universities
		SET name = $1, description = $2, website = $3
		WHERE code = $4
	`

	cmdTag, err := r.db.Exec(ctx, query,
		university.Name, university.Description, university.Website, university.Code)
	if err != nil {
		return fmt.Errorf("error updating university: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrUniversityNotFound
	}

	return nil
}

// Delete deletes a university by code
func (r *UniversityRepository) Delete(ctx context.Context, code string) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM universities WHERE code = $1`, code)
	if err != nil {
		return fmt.Errorf("error deleting university: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrUniversityNotFound
	}

	return nil
}
