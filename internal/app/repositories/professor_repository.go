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

// ProfessorRepository handles database operations for professors
type ProfessorRepository struct {
	db *pgxpool.Pool
}

// NewProfessorRepository creates a new professor repository
func NewProfessorRepository(db *pgxpool.Pool) *ProfessorRepository {
	return &ProfessorRepository{
		db: db,
	}
}

// Create inserts a new professor
func (r *ProfessorRepository) Create(ctx context.Context, professor *models.Professor) error {
	query := `
		INSERT INTO professors (name, email, university_id)
		VALUES ($1, $2, $3)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query,
		professor.Name, professor.Email, professor.UniversityID,
	).Scan(&professor.ID)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.NewConflictError("professor with this email already exists")
		}
		return fmt.Errorf("error creating professor: %w", err)
	}

	return nil
}

// GetByID retrieves a professor by ID
func (r *ProfessorRepository) GetByID(ctx context.Context, id int64) (*models.Professor, error) {
	query := `
		SELECT id, name, email, university_id
		FROM professors
		WHERE id = $1
	`

	var professor models.Professor
	err := r.db.QueryRow(ctx, query, id).Scan(
		&professor.ID,
		&professor.Name,
		&professor.Email,
		&professor.UniversityID,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrProfessorNotFound
		}
		return nil, fmt.Errorf("error retrieving professor: %w", err)
	}

	return &professor, nil
}

// GetAllByUniversity retrieves all professors at a university
func (r *ProfessorRepository) GetAllByUniversity(ctx context.Context, universityID int64) ([]*models.Professor, error) {
	query := `
		SELECT id, name, email, university_id
		FROM professors
		WHERE university_id = $1
		ORDER BY name
	`

	rows, err := r.db.Query(ctx, query, universityID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var professors []*models.Professor
	for rows.Next() {
		var professor models.Professor
		if err := rows.Scan(
			&professor.ID,
			&professor.Name,
			&professor.Email,
			&professor.UniversityID,
		); err != nil {
			return nil, err
		}
		professors = append(professors, &professor)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return professors, nil
}
