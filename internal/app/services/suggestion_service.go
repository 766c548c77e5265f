package services

import (
	"context"
	"fmt"
	"math"
	"sort"

	"github.com/rs/zerolog"

	"github.com/courator/courator/internal/app/models"
	"github.com/courator/courator/internal/pkg/apperrors"
)

// historyStore reads one account's full rating history
type historyStore interface {
	History(ctx context.Context, accountID int64) ([]models.AttributeObservation, error)
}

// attributeNamer resolves attribute ids to names and locates the reserved
// overall attribute
type attributeNamer interface {
	OverallAttributeID(ctx context.Context) (int64, error)
	NamesByID(ctx context.Context, ids []int64) (map[int64]string, error)
}

// SuggestionService computes, per account, how strongly each rating
// attribute tracks that account's overall scores
type SuggestionService interface {
	AttributeCorrelations(ctx context.Context, accountID int64) ([]models.AttributeCorrelation, error)
}

// suggestionServiceImpl implements the SuggestionService interface
type suggestionServiceImpl struct {
	history    historyStore
	attributes attributeNamer
	logger     zerolog.Logger
}

// NewSuggestionService creates a new suggestion service instance
func NewSuggestionService(history historyStore, attributes attributeNamer, logger zerolog.Logger) SuggestionService {
	return &suggestionServiceImpl{
		history:    history,
		attributes: attributes,
		logger:     logger,
	}
}

// AttributeCorrelations loads the account's rating history and correlates
// each attribute's value series against the overall series. Accounts with no
// submissions get an empty result.
func (s *suggestionServiceImpl) AttributeCorrelations(ctx context.Context, accountID int64) ([]models.AttributeCorrelation, error) {
	observations, err := s.history.History(ctx, accountID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrStoreUnavailable, err)
	}
	if len(observations) == 0 {
		return []models.AttributeCorrelation{}, nil
	}

	overallID, err := s.attributes.OverallAttributeID(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrStoreUnavailable, err)
	}

	correlations := correlateAgainstOverall(observations, overallID)

	ids := make([]int64, len(correlations))
	for i, c := range correlations {
		ids[i] = c.AttributeID
	}
	names, err := s.attributes.NamesByID(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrStoreUnavailable, err)
	}
	for i := range correlations {
		correlations[i].Name = names[correlations[i].AttributeID]
	}

	s.logger.Debug().
		Int64("accountId", accountID).
		Int("attributes", len(correlations)).
		Msg("Computed attribute correlations")

	return correlations, nil
}

// series is one attribute's values keyed by the submission they came from
type series map[int64]float64

// correlateAgainstOverall partitions the observations by attribute, then for
// each non-overall attribute correlates its series against the overall
// series using population statistics. Each series is centered on its own
// full mean; the correlation is the mean of the centered products over the
// submissions where both series have a value, divided by the square root of
// the product of the two full-series variances. The division happens once,
// after summation, so a perfectly anti-correlated pair lands on -1.0 with no
// accumulated per-term rounding. A series with zero variance on either side
// yields a correlation of zero. Results are ordered by attribute id.
func correlateAgainstOverall(observations []models.AttributeObservation, overallID int64) []models.AttributeCorrelation {
	byAttribute := make(map[int64]series)
	for _, o := range observations {
		s, ok := byAttribute[o.AttributeID]
		if !ok {
			s = make(series)
			byAttribute[o.AttributeID] = s
		}
		s[o.RatingID] = o.Value
	}

	overall, ok := byAttribute[overallID]
	if !ok {
		return []models.AttributeCorrelation{}
	}
	overallMean, overallVariance := meanVariance(overall)

	correlations := make([]models.AttributeCorrelation, 0, len(byAttribute)-1)
	for attributeID, values := range byAttribute {
		if attributeID == overallID {
			continue
		}

		mean, variance := meanVariance(values)
		correlation := 0.0
		if variance != 0 && overallVariance != 0 {
			var sum float64
			var n int
			for ratingID, value := range values {
				overallValue, ok := overall[ratingID]
				if !ok {
					continue
				}
				sum += (value - mean) * (overallValue - overallMean)
				n++
			}
			if n > 0 {
				correlation = (sum / float64(n)) / math.Sqrt(variance*overallVariance)
			}
		}

		correlations = append(correlations, models.AttributeCorrelation{
			AttributeID: attributeID,
			Correlation: correlation,
		})
	}

	sort.Slice(correlations, func(i, j int) bool { return correlations[i].AttributeID < correlations[j].AttributeID })
	return correlations
}

// meanVariance returns the population mean and variance of a series
func meanVariance(s series) (mean, variance float64) {
	n := float64(len(s))
	for _, v := range s {
		mean += v
	}
	mean /= n

	for _, v := range s {
		d := v - mean
		variance += d * d
	}
	variance /= n
	return mean, variance
}
