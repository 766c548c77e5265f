package services

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/courator/courator/internal/app/models"
	"github.com/courator/courator/internal/app/models/dto"
	"github.com/courator/courator/internal/pkg/apperrors"
	"github.com/courator/courator/internal/pkg/validation"
)

// ratingStore is the persistence surface the rating service writes and reads
type ratingStore interface {
	ExistsForAccountCourse(ctx context.Context, accountID, universityID int64, courseCode string) (bool, error)
	InsertSubmission(ctx context.Context, rating *models.CourseRating, values []models.CourseRatingValue) (int64, error)
	ValuesForCourse(ctx context.Context, universityID int64, courseCode string) ([]models.CourseValueRow, error)
}

// attributeRegistry resolves rating attribute names and ids
type attributeRegistry interface {
	ResolveOrCreate(ctx context.Context, name, description string) (int64, error)
	GetByID(ctx context.Context, id int64) (*models.RatingAttribute, error)
	OverallAttributeID(ctx context.Context) (int64, error)
}

// universityDirectory resolves university codes
type universityDirectory interface {
	GetByCode(ctx context.Context, code string) (*models.University, error)
}

// courseDirectory answers course existence for an already-resolved university
type courseDirectory interface {
	Exists(ctx context.Context, universityID int64, code string) (bool, error)
}

// RatingService defines the interface for rating submission and per-course
// aggregation
type RatingService interface {
	SubmitRating(ctx context.Context, accountID int64, universityCode, courseCode string, req *dto.SubmitRatingRequest) (int64, error)
	CourseRatingSummary(ctx context.Context, universityCode, courseCode string) (*models.CourseRatingSummary, error)
}

// ratingServiceImpl implements the RatingService interface
type ratingServiceImpl struct {
	ratings      ratingStore
	attributes   attributeRegistry
	universities universityDirectory
	courses      courseDirectory
	logger       zerolog.Logger
}

// NewRatingService creates a new rating service instance
func NewRatingService(
	ratings ratingStore,
	attributes attributeRegistry,
	universities universityDirectory,
	courses courseDirectory,
	logger zerolog.Logger,
) RatingService {
	return &ratingServiceImpl{
		ratings:      ratings,
		attributes:   attributes,
		universities: universities,
		courses:      courses,
		logger:       logger,
	}
}

// resolveCourse normalizes the codes and verifies the course exists
func (s *ratingServiceImpl) resolveCourse(ctx context.Context, universityCode, courseCode string) (universityID int64, canonicalCode string, err error) {
	code, _, err := validation.NormalizeCourseCode(courseCode)
	if err != nil {
		return 0, "", fmt.Errorf("%w: %q", apperrors.ErrInvalidCourseCode, courseCode)
	}

	university, err := s.universities.GetByCode(ctx, strings.ToUpper(strings.TrimSpace(universityCode)))
	if err != nil {
		if errors.Is(err, apperrors.ErrUniversityNotFound) {
			return 0, "", apperrors.ErrUniversityNotFound
		}
		return 0, "", fmt.Errorf("%w: %v", apperrors.ErrStoreUnavailable, err)
	}

	exists, err := s.courses.Exists(ctx, university.ID, code)
	if err != nil {
		return 0, "", fmt.Errorf("%w: %v", apperrors.ErrStoreUnavailable, err)
	}
	if !exists {
		return 0, "", apperrors.ErrCourseNotFound
	}

	return university.ID, code, nil
}

// SubmitRating validates and atomically persists one account's rating
// submission: a header row, one value row per touched attribute and one row
// for the reserved overall attribute. Values arrive on the 1..5 input scale
// and are stored divided by 5. All validation happens before any write, and
// a duplicate submission for the same (account, university, course) fails
// with a conflict without touching the first submission's rows.
func (s *ratingServiceImpl) SubmitRating(ctx context.Context, accountID int64, universityCode, courseCode string, req *dto.SubmitRatingRequest) (int64, error) {
	if req == nil {
		return 0, fmt.Errorf("%w: empty submission", apperrors.ErrValidationFailed)
	}

	if !validation.RatingValueInRange(req.Overall) {
		return 0, fmt.Errorf("%w: overall value %d not in 1..5", apperrors.ErrInvalidRatingValue, req.Overall)
	}
	for _, v := range req.Values {
		if !validation.RatingValueInRange(v.Value) {
			return 0, fmt.Errorf("%w: value %d not in 1..5", apperrors.ErrInvalidRatingValue, v.Value)
		}
		if v.AttributeID == 0 && strings.TrimSpace(v.Name) == "" {
			return 0, fmt.Errorf("%w: rating value references no attribute", apperrors.ErrValidationFailed)
		}
	}

	universityID, code, err := s.resolveCourse(ctx, universityCode, courseCode)
	if err != nil {
		return 0, err
	}

	exists, err := s.ratings.ExistsForAccountCourse(ctx, accountID, universityID, code)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", apperrors.ErrStoreUnavailable, err)
	}
	if exists {
		return 0, apperrors.ErrDuplicateRating
	}

	overallID, err := s.attributes.OverallAttributeID(ctx)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", apperrors.ErrStoreUnavailable, err)
	}

	// Register every brand-new attribute definition before resolving
	// values. Definitions are registered whether or not a value in this
	// submission references them.
	for _, na := range req.NewAttributes {
		if na.Name == models.OverallAttributeName {
			return 0, fmt.Errorf("%w: attribute name %q is reserved", apperrors.ErrValidationFailed, na.Name)
		}
	}
	registered := make(map[string]int64, len(req.NewAttributes))
	for _, na := range req.NewAttributes {
		id, err := s.attributes.ResolveOrCreate(ctx, na.Name, na.Description)
		if err != nil {
			return 0, fmt.Errorf("%w: %v", apperrors.ErrStoreUnavailable, err)
		}
		registered[na.Name] = id
	}

	values := make([]models.CourseRatingValue, 0, len(req.Values)+1)
	seen := make(map[int64]bool, len(req.Values)+1)
	for _, v := range req.Values {
		var attributeID int64
		if v.AttributeID != 0 {
			attribute, err := s.attributes.GetByID(ctx, v.AttributeID)
			if err != nil {
				if errors.Is(err, apperrors.ErrAttributeNotFound) {
					return 0, fmt.Errorf("%w: attribute id %d does not resolve", apperrors.ErrValidationFailed, v.AttributeID)
				}
				return 0, fmt.Errorf("%w: %v", apperrors.ErrStoreUnavailable, err)
			}
			if attribute.Name == models.OverallAttributeName {
				return 0, fmt.Errorf("%w: the overall attribute is set via the overall field", apperrors.ErrValidationFailed)
			}
			attributeID = attribute.ID
		} else {
			name := strings.TrimSpace(v.Name)
			if name == models.OverallAttributeName {
				return 0, fmt.Errorf("%w: the overall attribute is set via the overall field", apperrors.ErrValidationFailed)
			}
			if id, ok := registered[name]; ok {
				attributeID = id
			} else {
				attributeID, err = s.attributes.ResolveOrCreate(ctx, name, "")
				if err != nil {
					return 0, fmt.Errorf("%w: %v", apperrors.ErrStoreUnavailable, err)
				}
			}
		}

		if seen[attributeID] {
			return 0, fmt.Errorf("%w: attribute %d rated twice in one submission", apperrors.ErrValidationFailed, attributeID)
		}
		seen[attributeID] = true

		values = append(values, models.CourseRatingValue{
			AttributeID: attributeID,
			Value:       validation.NormalizeRatingValue(v.Value),
		})
	}

	values = append(values, models.CourseRatingValue{
		AttributeID: overallID,
		Value:       validation.NormalizeRatingValue(req.Overall),
	})

	rating := &models.CourseRating{
		Description:  req.Description,
		Date:         time.Now().UTC(),
		AccountID:    accountID,
		UniversityID: universityID,
		CourseCode:   code,
	}

	ratingID, err := s.ratings.InsertSubmission(ctx, rating, values)
	if err != nil {
		if errors.Is(err, apperrors.ErrDuplicateRating) {
			return 0, apperrors.ErrDuplicateRating
		}
		return 0, fmt.Errorf("%w: %v", apperrors.ErrStoreUnavailable, err)
	}

	s.logger.Info().
		Int64("accountId", accountID).
		Int64("universityId", universityID).
		Str("courseCode", code).
		Int("attributes", len(values)).
		Msg("Rating submitted")

	return ratingID, nil
}

// CourseRatingSummary aggregates a course's ratings into per-attribute
// averages and an ordered review listing
func (s *ratingServiceImpl) CourseRatingSummary(ctx context.Context, universityCode, courseCode string) (*models.CourseRatingSummary, error) {
	universityID, code, err := s.resolveCourse(ctx, universityCode, courseCode)
	if err != nil {
		return nil, err
	}

	rows, err := s.ratings.ValuesForCourse(ctx, universityID, code)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrStoreUnavailable, err)
	}

	return summarizeCourseValues(rows), nil
}

// summarizeCourseValues folds joined value rows into the course summary.
// Rows arrive ordered by submission date then submission id; reviews keep
// that order. Averages are streaming means per attribute: every attribute
// present has at least one value, so no empty-group handling is needed.
func summarizeCourseValues(rows []models.CourseValueRow) *models.CourseRatingSummary {
	type aggregate struct {
		name  string
		sum   float64
		count int64
	}
	aggregates := make(map[int64]*aggregate)

	var reviews []models.CourseReview
	reviewIndex := make(map[int64]int)

	for _, row := range rows {
		agg, ok := aggregates[row.AttributeID]
		if !ok {
			agg = &aggregate{name: row.AttributeName}
			aggregates[row.AttributeID] = agg
		}
		agg.sum += row.Value
		agg.count++

		idx, ok := reviewIndex[row.RatingID]
		if !ok {
			account := row.Account
			reviews = append(reviews, models.CourseReview{
				RatingID:    row.RatingID,
				Account:     &account,
				Description: row.Description,
				Date:        row.Date,
			})
			idx = len(reviews) - 1
			reviewIndex[row.RatingID] = idx
		}
		reviews[idx].Values = append(reviews[idx].Values, models.CourseReviewValue{
			AttributeID: row.AttributeID,
			Name:        row.AttributeName,
			Value:       row.Value,
		})
	}

	averages := make([]models.CourseAttributeAverage, 0, len(aggregates))
	for attributeID, agg := range aggregates {
		averages = append(averages, models.CourseAttributeAverage{
			AttributeID: attributeID,
			Name:        agg.name,
			Average:     agg.sum / float64(agg.count),
			Count:       agg.count,
		})
	}
	sort.Slice(averages, func(i, j int) bool { return averages[i].AttributeID < averages[j].AttributeID })

	if reviews == nil {
		reviews = []models.CourseReview{}
	}

	return &models.CourseRatingSummary{
		Averages: averages,
		Reviews:  reviews,
	}
}
