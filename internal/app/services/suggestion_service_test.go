package services

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/courator/courator/internal/app/models"
)

const testOverallID int64 = 1

// obs builds one history row on the normalized [0,1] scale
func obs(attributeID, ratingID int64, raw int) models.AttributeObservation {
	return models.AttributeObservation{
		AttributeID: attributeID,
		RatingID:    ratingID,
		Value:       float64(raw) / 5.0,
	}
}

func TestCorrelateAgainstOverall_PerfectInverse(t *testing.T) {
	// Attribute 2 moves exactly opposite to the overall score. The single
	// late division keeps this case at -1.0 exactly, not one ulp off.
	history := []models.AttributeObservation{
		obs(testOverallID, 10, 5),
		obs(2, 10, 1),
		obs(testOverallID, 11, 1),
		obs(2, 11, 5),
	}

	correlations := correlateAgainstOverall(history, testOverallID)

	require.Len(t, correlations, 1)
	assert.Equal(t, int64(2), correlations[0].AttributeID)
	assert.Equal(t, -1.0, correlations[0].Correlation)
}

func TestCorrelateAgainstOverall_PerfectMatch(t *testing.T) {
	history := []models.AttributeObservation{
		obs(testOverallID, 10, 2),
		obs(2, 10, 2),
		obs(testOverallID, 11, 4),
		obs(2, 11, 4),
		obs(testOverallID, 12, 5),
		obs(2, 12, 5),
	}

	correlations := correlateAgainstOverall(history, testOverallID)

	require.Len(t, correlations, 1)
	assert.InDelta(t, 1.0, correlations[0].Correlation, 1e-12)
}

func TestCorrelateAgainstOverall_ConstantAttributeIsZero(t *testing.T) {
	// Attribute 2 never varies, so its variance is zero and its
	// correlation is defined as zero regardless of the overall series.
	history := []models.AttributeObservation{
		obs(testOverallID, 10, 1),
		obs(2, 10, 3),
		obs(testOverallID, 11, 5),
		obs(2, 11, 3),
	}

	correlations := correlateAgainstOverall(history, testOverallID)

	require.Len(t, correlations, 1)
	assert.Zero(t, correlations[0].Correlation)
}

func TestCorrelateAgainstOverall_ConstantOverallIsZero(t *testing.T) {
	history := []models.AttributeObservation{
		obs(testOverallID, 10, 4),
		obs(2, 10, 1),
		obs(testOverallID, 11, 4),
		obs(2, 11, 5),
	}

	correlations := correlateAgainstOverall(history, testOverallID)

	require.Len(t, correlations, 1)
	assert.Zero(t, correlations[0].Correlation)
}

func TestCorrelateAgainstOverall_PartialCoverage(t *testing.T) {
	// Attribute 2 was only rated in two of the three submissions. Both
	// series keep their full-series statistics, but the product mean only
	// runs over the submissions the two series share.
	history := []models.AttributeObservation{
		obs(testOverallID, 10, 5),
		obs(2, 10, 5),
		obs(testOverallID, 11, 1),
		obs(2, 11, 1),
		obs(testOverallID, 12, 3),
	}

	correlations := correlateAgainstOverall(history, testOverallID)

	require.Len(t, correlations, 1)
	assert.Equal(t, int64(2), correlations[0].AttributeID)
	assert.Greater(t, correlations[0].Correlation, 0.0)
}

func TestCorrelateAgainstOverall_OrderedByAttributeID(t *testing.T) {
	history := []models.AttributeObservation{
		obs(testOverallID, 10, 5),
		obs(7, 10, 4),
		obs(3, 10, 2),
		obs(testOverallID, 11, 1),
		obs(7, 11, 1),
		obs(3, 11, 5),
	}

	correlations := correlateAgainstOverall(history, testOverallID)

	require.Len(t, correlations, 2)
	assert.Equal(t, int64(3), correlations[0].AttributeID)
	assert.Equal(t, int64(7), correlations[1].AttributeID)
}

func TestCorrelateAgainstOverall_OverallExcludedFromOutput(t *testing.T) {
	history := []models.AttributeObservation{
		obs(testOverallID, 10, 5),
		obs(testOverallID, 11, 1),
	}

	correlations := correlateAgainstOverall(history, testOverallID)
	assert.Empty(t, correlations)
}

type fakeHistoryStore struct {
	observations []models.AttributeObservation
	err          error
}

func (f *fakeHistoryStore) History(_ context.Context, _ int64) ([]models.AttributeObservation, error) {
	return f.observations, f.err
}

type fakeAttributeNamer struct {
	overallID int64
	names     map[int64]string
}

func (f *fakeAttributeNamer) OverallAttributeID(_ context.Context) (int64, error) {
	return f.overallID, nil
}

func (f *fakeAttributeNamer) NamesByID(_ context.Context, ids []int64) (map[int64]string, error) {
	out := make(map[int64]string, len(ids))
	for _, id := range ids {
		out[id] = f.names[id]
	}
	return out, nil
}

func TestSuggestionService_EmptyHistory(t *testing.T) {
	service := NewSuggestionService(
		&fakeHistoryStore{},
		&fakeAttributeNamer{overallID: testOverallID},
		zerolog.Nop(),
	)

	correlations, err := service.AttributeCorrelations(context.Background(), 42)
	require.NoError(t, err)
	assert.NotNil(t, correlations)
	assert.Empty(t, correlations)
}

func TestSuggestionService_NamesResolved(t *testing.T) {
	service := NewSuggestionService(
		&fakeHistoryStore{observations: []models.AttributeObservation{
			obs(testOverallID, 10, 5),
			obs(2, 10, 1),
			obs(testOverallID, 11, 1),
			obs(2, 11, 5),
		}},
		&fakeAttributeNamer{
			overallID: testOverallID,
			names:     map[int64]string{2: "Difficulty"},
		},
		zerolog.Nop(),
	)

	correlations, err := service.AttributeCorrelations(context.Background(), 42)
	require.NoError(t, err)
	require.Len(t, correlations, 1)
	assert.Equal(t, "Difficulty", correlations[0].Name)
	assert.Equal(t, -1.0, correlations[0].Correlation)
}
