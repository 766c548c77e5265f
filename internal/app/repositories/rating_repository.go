package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/courator/courator/internal/app/models"
	"github.com/courator/courator/internal/pkg/apperrors"
	"github.com/courator/courator/internal/pkg/dberrors"
)

// RatingRepository handles database operations for rating submissions and
// their attribute values. A submission writes one course_ratings header row
// plus one course_rating_values row per attribute (the reserved overall
// attribute included) inside a single transaction: a failure partway leaves
// nothing visible.
type RatingRepository struct {
	db *pgxpool.Pool
}

// NewRatingRepository creates a new rating repository
func NewRatingRepository(db *pgxpool.Pool) *RatingRepository {
	return &RatingRepository{
		db: db,
	}
}

// ExistsForAccountCourse reports whether the account already submitted a
// rating for the course.
func (r *RatingRepository) ExistsForAccountCourse(ctx context.Context, accountID, universityID int64, courseCode string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS(
			SELECT 1 FROM course_ratings
			WHERE account_id = $1 AND university_id = $2 AND course_code = $3
		)`,
		accountID, universityID, courseCode).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking rating existence: %w", err)
	}

	return exists, nil
}

// InsertSubmission atomically writes a submission header and its value rows.
// values must already contain the overall attribute's row. A duplicate
// submission for the same (account, university, course) triple surfaces as
// ErrDuplicateRating via the unique constraint even under concurrency.
func (r *RatingRepository) InsertSubmission(ctx context.Context, rating *models.CourseRating, values []models.CourseRatingValue) (int64, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	err = tx.QueryRow(ctx, `
		INSERT INTO course_ratings (description, date, account_id, university_id, course_code)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`,
		rating.Description, rating.Date, rating.AccountID, rating.UniversityID, rating.CourseCode,
	).Scan(&rating.ID)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return 0, apperrors.ErrDuplicateRating
		}
		return 0, fmt.Errorf("error inserting rating: %w", err)
	}

	for i := range values {
		values[i].RatingID = rating.ID
		_, err = tx.Exec(ctx, `
			INSERT INTO course_rating_values (course_rating_id, attribute_id, value)
			VALUES ($1, $2, $3)`,
			rating.ID, values[i].AttributeID, values[i].Value)
		if err != nil {
			return 0, fmt.Errorf("error inserting rating value: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return rating.ID, nil
}

// History returns every attribute value the account ever submitted, across
// all courses, the reserved overall attribute included. Entries are ordered
// by submission id for stability; the correlation engine is the only
// consumer.
func (r *RatingRepository) History(ctx context.Context, accountID int64) ([]models.AttributeObservation, error) {
	query := `
		SELECT v.attribute_id, v.value, v.course_rating_id
		FROM course_rating_values v
		JOIN course_ratings cr ON cr.id = v.course_rating_id
		WHERE cr.account_id = $1
		ORDER BY v.course_rating_id, v.attribute_id
	`

	rows, err := r.db.Query(ctx, query, accountID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var history []models.AttributeObservation
	for rows.Next() {
		var obs models.AttributeObservation
		if err := rows.Scan(&obs.AttributeID, &obs.Value, &obs.RatingID); err != nil {
			return nil, err
		}
		history = append(history, obs)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return history, nil
}

// ValuesForCourse returns every rating value for a course joined with its
// submission header, attribute name and the submitting account, ordered by
// submission date then id. The inner join on accounts drops rows belonging
// to deleted accounts rather than emitting null-filled reviews.
func (r *RatingRepository) ValuesForCourse(ctx context.Context, universityID int64, courseCode string) ([]models.CourseValueRow, error) {
	query := `
		SELECT v.course_rating_id, v.attribute_id, a.name, v.value,
		       cr.description, cr.date,
		       acc.id, acc.name, acc.email, acc.about, acc.permissions
		FROM course_rating_values v
		JOIN course_ratings cr ON cr.id = v.course_rating_id
		JOIN course_rating_attributes a ON a.id = v.attribute_id
		JOIN accounts acc ON acc.id = cr.account_id
		WHERE cr.university_id = $1 AND cr.course_code = $2
		ORDER BY cr.date, cr.id, v.attribute_id
	`

	rows, err := r.db.Query(ctx, query, universityID, courseCode)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []models.CourseValueRow
	for rows.Next() {
		var row models.CourseValueRow
		var date time.Time
		if err := rows.Scan(
			&row.RatingID,
			&row.AttributeID,
			&row.AttributeName,
			&row.Value,
			&row.Description,
			&date,
			&row.Account.ID,
			&row.Account.Name,
			&row.Account.Email,
			&row.Account.About,
			&row.Account.Permissions,
		); err != nil {
			return nil, err
		}
		row.Date = date
		result = append(result, row)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return result, nil
}
