package services

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/courator/courator/internal/app/models"
	"github.com/courator/courator/internal/app/models/dto"
	"github.com/courator/courator/internal/pkg/apperrors"
)

type fakeRatingStore struct {
	exists         bool
	insertedRating *models.CourseRating
	insertedValues []models.CourseRatingValue
	insertErr      error
	rows           []models.CourseValueRow
}

func (f *fakeRatingStore) ExistsForAccountCourse(_ context.Context, _, _ int64, _ string) (bool, error) {
	return f.exists, nil
}

func (f *fakeRatingStore) InsertSubmission(_ context.Context, rating *models.CourseRating, values []models.CourseRatingValue) (int64, error) {
	if f.insertErr != nil {
		return 0, f.insertErr
	}
	f.insertedRating = rating
	f.insertedValues = values
	return 99, nil
}

func (f *fakeRatingStore) ValuesForCourse(_ context.Context, _ int64, _ string) ([]models.CourseValueRow, error) {
	return f.rows, nil
}

type fakeRegistry struct {
	overallID  int64
	nextID     int64
	attributes map[int64]*models.RatingAttribute
	byName     map[string]int64
}

func newFakeRegistry() *fakeRegistry {
	overall := &models.RatingAttribute{ID: 1, Name: models.OverallAttributeName}
	return &fakeRegistry{
		overallID:  1,
		nextID:     2,
		attributes: map[int64]*models.RatingAttribute{1: overall},
		byName:     map[string]int64{models.OverallAttributeName: 1},
	}
}

func (f *fakeRegistry) ResolveOrCreate(_ context.Context, name, description string) (int64, error) {
	if id, ok := f.byName[name]; ok {
		return id, nil
	}
	id := f.nextID
	f.nextID++
	f.attributes[id] = &models.RatingAttribute{ID: id, Name: name, Description: description}
	f.byName[name] = id
	return id, nil
}

func (f *fakeRegistry) GetByID(_ context.Context, id int64) (*models.RatingAttribute, error) {
	attribute, ok := f.attributes[id]
	if !ok {
		return nil, apperrors.ErrAttributeNotFound
	}
	return attribute, nil
}

func (f *fakeRegistry) OverallAttributeID(_ context.Context) (int64, error) {
	return f.overallID, nil
}

type fakeUniversityDir struct {
	university *models.University
}

func (f *fakeUniversityDir) GetByCode(_ context.Context, code string) (*models.University, error) {
	if f.university == nil || f.university.Code != code {
		return nil, apperrors.ErrUniversityNotFound
	}
	return f.university, nil
}

type fakeCourseDir struct {
	exists bool
}

func (f *fakeCourseDir) Exists(_ context.Context, _ int64, _ string) (bool, error) {
	return f.exists, nil
}

func newRatingServiceForTest(store *fakeRatingStore, registry *fakeRegistry) RatingService {
	return NewRatingService(
		store,
		registry,
		&fakeUniversityDir{university: &models.University{ID: 5, Code: "MIT", Name: "MIT"}},
		&fakeCourseDir{exists: true},
		zerolog.Nop(),
	)
}

func TestSubmitRating_NormalizesAndAppendsOverall(t *testing.T) {
	store := &fakeRatingStore{}
	registry := newFakeRegistry()
	difficultyID, _ := registry.ResolveOrCreate(context.Background(), "Difficulty", "")
	service := newRatingServiceForTest(store, registry)

	ratingID, err := service.SubmitRating(context.Background(), 7, "mit", "cs 100", &dto.SubmitRatingRequest{
		Description: "solid intro",
		Overall:     4,
		Values: []dto.RatingValueInput{
			{AttributeID: difficultyID, Value: 3},
		},
	})

	require.NoError(t, err)
	assert.Equal(t, int64(99), ratingID)
	require.NotNil(t, store.insertedRating)
	assert.Equal(t, int64(7), store.insertedRating.AccountID)
	assert.Equal(t, int64(5), store.insertedRating.UniversityID)
	assert.Equal(t, "CS100", store.insertedRating.CourseCode)

	require.Len(t, store.insertedValues, 2)
	assert.Equal(t, difficultyID, store.insertedValues[0].AttributeID)
	assert.InDelta(t, 0.6, store.insertedValues[0].Value, 1e-12)
	assert.Equal(t, registry.overallID, store.insertedValues[1].AttributeID)
	assert.InDelta(t, 0.8, store.insertedValues[1].Value, 1e-12)
}

func TestSubmitRating_CreatesAttributesByName(t *testing.T) {
	store := &fakeRatingStore{}
	registry := newFakeRegistry()
	service := newRatingServiceForTest(store, registry)

	_, err := service.SubmitRating(context.Background(), 7, "MIT", "CS100", &dto.SubmitRatingRequest{
		Overall: 5,
		Values: []dto.RatingValueInput{
			{Name: "Workload", Value: 2},
		},
		NewAttributes: []dto.NewAttributeInput{
			{Name: "Workload", Description: "Weekly hours demanded"},
		},
	})

	require.NoError(t, err)
	id, ok := registry.byName["Workload"]
	require.True(t, ok)
	assert.Equal(t, "Weekly hours demanded", registry.attributes[id].Description)
}

func TestSubmitRating_RegistersUnreferencedAttributes(t *testing.T) {
	// A definition with no value in the same submission is still
	// registered for later use.
	store := &fakeRatingStore{}
	registry := newFakeRegistry()
	service := newRatingServiceForTest(store, registry)

	_, err := service.SubmitRating(context.Background(), 7, "MIT", "CS100", &dto.SubmitRatingRequest{
		Overall: 3,
		Values: []dto.RatingValueInput{
			{Name: "Workload", Value: 2},
		},
		NewAttributes: []dto.NewAttributeInput{
			{Name: "Workload", Description: "Weekly hours demanded"},
			{Name: "Pace", Description: "How fast the material moves"},
		},
	})

	require.NoError(t, err)
	id, ok := registry.byName["Pace"]
	require.True(t, ok)
	assert.Equal(t, "How fast the material moves", registry.attributes[id].Description)

	// The unreferenced attribute gets no value row; only the rated
	// attribute and the overall row are written.
	require.Len(t, store.insertedValues, 2)
	for _, value := range store.insertedValues {
		assert.NotEqual(t, id, value.AttributeID)
	}
}

func TestSubmitRating_RejectsOutOfRangeValues(t *testing.T) {
	service := newRatingServiceForTest(&fakeRatingStore{}, newFakeRegistry())

	_, err := service.SubmitRating(context.Background(), 7, "MIT", "CS100", &dto.SubmitRatingRequest{
		Overall: 6,
	})
	assert.ErrorIs(t, err, apperrors.ErrInvalidRatingValue)

	_, err = service.SubmitRating(context.Background(), 7, "MIT", "CS100", &dto.SubmitRatingRequest{
		Overall: 4,
		Values:  []dto.RatingValueInput{{Name: "Difficulty", Value: 0}},
	})
	assert.ErrorIs(t, err, apperrors.ErrInvalidRatingValue)
}

func TestSubmitRating_RejectsUnknownAttributeID(t *testing.T) {
	service := newRatingServiceForTest(&fakeRatingStore{}, newFakeRegistry())

	_, err := service.SubmitRating(context.Background(), 7, "MIT", "CS100", &dto.SubmitRatingRequest{
		Overall: 4,
		Values:  []dto.RatingValueInput{{AttributeID: 404, Value: 3}},
	})
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func TestSubmitRating_RejectsDirectOverallValue(t *testing.T) {
	service := newRatingServiceForTest(&fakeRatingStore{}, newFakeRegistry())

	_, err := service.SubmitRating(context.Background(), 7, "MIT", "CS100", &dto.SubmitRatingRequest{
		Overall: 4,
		Values:  []dto.RatingValueInput{{Name: models.OverallAttributeName, Value: 3}},
	})
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func TestSubmitRating_RejectsDuplicateSubmission(t *testing.T) {
	service := newRatingServiceForTest(&fakeRatingStore{exists: true}, newFakeRegistry())

	_, err := service.SubmitRating(context.Background(), 7, "MIT", "CS100", &dto.SubmitRatingRequest{
		Overall: 4,
	})
	assert.ErrorIs(t, err, apperrors.ErrDuplicateRating)
}

func TestSubmitRating_RejectsRepeatedAttribute(t *testing.T) {
	registry := newFakeRegistry()
	difficultyID, _ := registry.ResolveOrCreate(context.Background(), "Difficulty", "")
	service := newRatingServiceForTest(&fakeRatingStore{}, registry)

	_, err := service.SubmitRating(context.Background(), 7, "MIT", "CS100", &dto.SubmitRatingRequest{
		Overall: 4,
		Values: []dto.RatingValueInput{
			{AttributeID: difficultyID, Value: 3},
			{Name: "Difficulty", Value: 5},
		},
	})
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func TestSubmitRating_UnknownCourse(t *testing.T) {
	service := NewRatingService(
		&fakeRatingStore{},
		newFakeRegistry(),
		&fakeUniversityDir{university: &models.University{ID: 5, Code: "MIT"}},
		&fakeCourseDir{exists: false},
		zerolog.Nop(),
	)

	_, err := service.SubmitRating(context.Background(), 7, "MIT", "CS999", &dto.SubmitRatingRequest{Overall: 4})
	assert.ErrorIs(t, err, apperrors.ErrCourseNotFound)
}

func TestSummarizeCourseValues_AveragesAndReviews(t *testing.T) {
	earlier := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	later := time.Date(2026, 4, 2, 12, 0, 0, 0, time.UTC)
	alice := models.Account{ID: 1, Name: "Alice"}
	bob := models.Account{ID: 2, Name: "Bob"}

	rows := []models.CourseValueRow{
		{RatingID: 10, AttributeID: 2, AttributeName: "Difficulty", Value: 0.6, Description: "tough but fair", Date: earlier, Account: alice},
		{RatingID: 10, AttributeID: 1, AttributeName: models.OverallAttributeName, Value: 0.8, Description: "tough but fair", Date: earlier, Account: alice},
		{RatingID: 11, AttributeID: 2, AttributeName: "Difficulty", Value: 0.8, Description: "", Date: later, Account: bob},
		{RatingID: 11, AttributeID: 1, AttributeName: models.OverallAttributeName, Value: 0.4, Description: "", Date: later, Account: bob},
	}

	summary := summarizeCourseValues(rows)

	require.Len(t, summary.Averages, 2)
	assert.Equal(t, models.OverallAttributeName, summary.Averages[0].Name)
	assert.InDelta(t, 0.6, summary.Averages[0].Average, 1e-12)
	assert.Equal(t, int64(2), summary.Averages[0].Count)
	assert.Equal(t, "Difficulty", summary.Averages[1].Name)
	assert.InDelta(t, 0.7, summary.Averages[1].Average, 1e-12)

	require.Len(t, summary.Reviews, 2)
	assert.Equal(t, int64(10), summary.Reviews[0].RatingID)
	assert.Equal(t, "Alice", summary.Reviews[0].Account.Name)
	assert.Len(t, summary.Reviews[0].Values, 2)
	assert.Equal(t, int64(11), summary.Reviews[1].RatingID)
}

func TestSummarizeCourseValues_Empty(t *testing.T) {
	summary := summarizeCourseValues(nil)
	assert.Empty(t, summary.Averages)
	assert.NotNil(t, summary.Reviews)
	assert.Empty(t, summary.Reviews)
}
