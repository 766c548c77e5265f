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

// TARepository handles database operations for teaching assistants
type TARepository struct {
	db *pgxpool.Pool
}

// NewTARepository creates a new teaching assistant repository
func NewTARepository(db *pgxpool.Pool) *TARepository {
	return &TARepository{
		db: db,
	}
}

// Create inserts a new teaching assistant
func (r *TARepository) Create(ctx context.Context, ta *models.TeachingAssistant) error {
	query := `
		INSERT INTO teaching_assistants (name, email, university_id)
		VALUES ($1, $2, $3)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query, ta.Name, ta.Email, ta.UniversityID).Scan(&ta.ID)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.NewConflictError("teaching assistant with this email already exists")
		}
		return fmt.Errorf("error creating teaching assistant: %w", err)
	}

	return nil
}

// GetByID retrieves a teaching assistant by ID
func (r *TARepository) GetByID(ctx context.Context, id int64) (*models.TeachingAssistant, error) {
	query := `
		SELECT id, name, email, university_id
		FROM teaching_assistants
		WHERE id = $1
	`

	var ta models.TeachingAssistant
	err := r.db.QueryRow(ctx, query, id).Scan(&ta.ID, &ta.Name, &ta.Email, &ta.UniversityID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrTANotFound
		}
		return nil, fmt.Errorf("error retrieving teaching assistant: %w", err)
	}

	return &ta, nil
}

// GetAllByUniversity retrieves all teaching assistants at a university
func (r *TARepository) GetAllByUniversity(ctx context.Context, universityID int64) ([]*models.TeachingAssistant, error) {
	query := `
		SELECT id, name, email, university_id
		FROM teaching_assistants
		WHERE university_id = $1
		ORDER BY name
	`

	rows, err := r.db.Query(ctx, query, universityID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tas []*models.TeachingAssistant
	for rows.Next() {
		var ta models.TeachingAssistant
		if err := rows.Scan(&ta.ID, &ta.Name, &ta.Email, &ta.UniversityID); err != nil {
			return nil, err
		}
		tas = append(tas, &ta)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return tas, nil
}
