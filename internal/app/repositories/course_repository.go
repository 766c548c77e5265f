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

// CourseRepository handles database operations for courses. Courses are
// addressed by the composite key (university_id, code).
type CourseRepository struct {
	db *pgxpool.Pool
}

// NewCourseRepository creates a new course repository
func NewCourseRepository(db *pgxpool.Pool) *CourseRepository {
	return &CourseRepository{
		db: db,
	}
}

// Create inserts a new course. The composite primary key makes a duplicate
// (university, code) pair surface as ErrCourseAlreadyExists.
func (r *CourseRepository) Create(ctx context.Context, course *models.Course) error {
	query := `
		INSERT INTO courses (university_id, code, title, description, website, department_code, professor_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := r.db.Exec(ctx, query,
		course.UniversityID,
		course.Code,
		course.Title,
		course.Description,
		course.Website,
		course.DepartmentCode,
		course.ProfessorID,
	)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.ErrCourseAlreadyExists
		}
		return fmt.Errorf("error creating course: %w", err)
	}

	return nil
}

// GetByKey retrieves a course by its composite (universityID, code) key
func (r *CourseRepository) GetByKey(ctx context.Context, universityID int64, code string) (*models.Course, error) {
	query := `
		SELECT university_id, code, title, description, website, department_code, professor_id
		FROM courses
		WHERE university_id = $1 AND code = $2
	`

	var course models.Course
	err := r.db.QueryRow(ctx, query, universityID, code).Scan(
		&course.UniversityID,
		&course.Code,
		&course.Title,
		&course.Description,
		&course.Website,
		&course.DepartmentCode,
		&course.ProfessorID,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrCourseNotFound
		}
		return nil, fmt.Errorf("error retrieving course: %w", err)
	}

	return &course, nil
}

// Exists reports whether a course exists for the composite key
func (r *CourseRepository) Exists(ctx context.Context, universityID int64, code string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM courses WHERE university_id = $1 AND code = $2)`,
		universityID, code).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking course existence: %w", err)
	}

	return exists, nil
}

// GetAllByUniversity retrieves a page of a university's courses ordered by code
func (r *CourseRepository) GetAllByUniversity(ctx context.Context, universityID int64, offset uint64, limit int) ([]*models.Course, error) {
	query := `
		SELECT university_id, code, title, description, website, department_code, professor_id
		FROM courses
		WHERE university_id = $1
		ORDER BY code
		OFFSET $2 LIMIT $3
	`

	rows, err := r.db.Query(ctx, query, universityID, offset, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var courses []*models.Course
	for rows.Next() {
		var course models.Course
		if err := rows.Scan(
			&course.UniversityID,
			&course.Code,
			&course.Title,
			&course.Description,
			&course.Website,
			&course.DepartmentCode,
			&course.ProfessorID,
		); err != nil {
			return nil, err
		}
		courses = append(courses, &course)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return courses, nil
}

// CountByUniversity returns the number of courses at a university
func (r *CourseRepository) CountByUniversity(ctx context.Context, universityID int64) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM courses WHERE university_id = $1`, universityID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error counting courses: %w", err)
	}
	return count, nil
}

// Update updates an existing course's metadata
func (r *CourseRepository) Update(ctx context.Context, course *models.Course) error {
	query := `
		UPDATE courses
		SET title = $1, description = $2, website = $3, professor_id = $4
		WHERE university_id = $5 AND code = $6
	`

	cmdTag, err := r.db.Exec(ctx, query,
		course.Title, course.Description, course.Website, course.ProfessorID,
		course.UniversityID, course.Code)
	if err != nil {
		return fmt.Errorf("error updating course: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrCourseNotFound
	}

	return nil
}

// Delete deletes a course by its composite key
func (r *CourseRepository) Delete(ctx context.Context, universityID int64, code string) error {
	cmdTag, err := r.db.Exec(ctx,
		`DELETE FROM courses WHERE university_id = $1 AND code = $2`, universityID, code)
	if err != nil {
		return fmt.Errorf("error deleting course: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrCourseNotFound
	}

	return nil
}
