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

// AttributeRepository handles database operations for rating attributes.
// Attribute names are unique; concurrent first-use of the same name is
// resolved by the unique index, with the loser reusing the winner's row.
type AttributeRepository struct {
	db *pgxpool.Pool
}

// NewAttributeRepository creates a new rating attribute repository
func NewAttributeRepository(db *pgxpool.Pool) *AttributeRepository {
	return &AttributeRepository{
		db: db,
	}
}

// GetByID retrieves a rating attribute by ID
func (r *AttributeRepository) GetByID(ctx context.Context, id int64) (*models.RatingAttribute, error) {
	query := `
		SELECT id, name, description
		FROM course_rating_attributes
		WHERE id = $1
	`

	var attribute models.RatingAttribute
	err := r.db.QueryRow(ctx, query, id).Scan(
		&attribute.ID,
		&attribute.Name,
		&attribute.Description,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrAttributeNotFound
		}
		return nil, fmt.Errorf("error retrieving rating attribute: %w", err)
	}

	return &attribute, nil
}

// GetByName retrieves a rating attribute by its case-sensitive name
func (r *AttributeRepository) GetByName(ctx context.Context, name string) (*models.RatingAttribute, error) {
	query := `
		SELECT id, name, description
		FROM course_rating_attributes
		WHERE name = $1
	`

	var attribute models.RatingAttribute
	err := r.db.QueryRow(ctx, query, name).Scan(
		&attribute.ID,
		&attribute.Name,
		&attribute.Description,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrAttributeNotFound
		}
		return nil, fmt.Errorf("error retrieving rating attribute by name: %w", err)
	}

	return &attribute, nil
}

// ResolveOrCreate returns the id of the attribute with the given name,
// inserting a new row when no case-sensitive match exists. A concurrent
// insert of the same name loses the race on the unique index and re-reads
// the winner's row instead of erroring.
func (r *AttributeRepository) ResolveOrCreate(ctx context.Context, name, description string) (int64, error) {
	existing, err := r.GetByName(ctx, name)
	if err == nil {
		return existing.ID, nil
	}
	if !errors.Is(err, apperrors.ErrAttributeNotFound) {
		return 0, err
	}

	var id int64
	err = r.db.QueryRow(ctx,
		`INSERT INTO course_rating_attributes (name, description) VALUES ($1, $2) RETURNING id`,
		name, description).Scan(&id)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			// Lost the creation race; the winner's row is the attribute.
			winner, errGet := r.GetByName(ctx, name)
			if errGet != nil {
				return 0, errGet
			}
			return winner.ID, nil
		}
		return 0, fmt.Errorf("error creating rating attribute: %w", err)
	}

	return id, nil
}

// Create inserts a new rating attribute, failing on a duplicate name.
// Used by the explicit registration endpoint, where a duplicate is an error
// rather than a resolve.
func (r *AttributeRepository) Create(ctx context.Context, attribute *models.RatingAttribute) error {
	err := r.db.QueryRow(ctx,
		`INSERT INTO course_rating_attributes (name, description) VALUES ($1, $2) RETURNING id`,
		attribute.Name, attribute.Description).Scan(&attribute.ID)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.ErrAttributeAlreadyExists
		}
		return fmt.Errorf("error creating rating attribute: %w", err)
	}

	return nil
}

// OverallAttributeID resolves the reserved overall attribute, creating it on
// first access.
func (r *AttributeRepository) OverallAttributeID(ctx context.Context) (int64, error) {
	return r.ResolveOrCreate(ctx, models.OverallAttributeName, "Overall course satisfaction")
}

// UsageCounts lists all attributes with the number of rating values
// referencing each, most used first.
func (r *AttributeRepository) UsageCounts(ctx context.Context) ([]models.AttributeUsage, error) {
	query := `
		SELECT a.id, a.name, a.description, COUNT(v.id) AS usage_count
		FROM course_rating_attributes a
		LEFT JOIN course_rating_values v ON v.attribute_id = a.id
		GROUP BY a.id, a.name, a.description
		ORDER BY usage_count DESC, a.name
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var usages []models.AttributeUsage
	for rows.Next() {
		var usage models.AttributeUsage
		if err := rows.Scan(
			&usage.AttributeID,
			&usage.Name,
			&usage.Description,
			&usage.UsageCount,
		); err != nil {
			return nil, err
		}
		usages = append(usages, usage)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return usages, nil
}

// NamesByID returns the names of the given attributes keyed by id
func (r *AttributeRepository) NamesByID(ctx context.Context, ids []int64) (map[int64]string, error) {
	if len(ids) == 0 {
		return map[int64]string{}, nil
	}

	rows, err := r.db.Query(ctx,
		`SELECT id, name FROM course_rating_attributes WHERE id = ANY($1)`, ids)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	names := make(map[int64]string, len(ids))
	for rows.Next() {
		var id int64
		var name string
		if err := rows.Scan(&id, &name); err != nil {
			return nil, err
		}
		names[id] = name
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return names, nil
}
