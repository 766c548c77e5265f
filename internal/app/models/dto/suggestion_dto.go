package dto

import "github.com/courator/courator/internal/app/models"

// SuggestionResponse carries the per-attribute correlation vector computed
// from an account's rating history. Consumers rank attributes by correlation
// descending to weight course suggestions.
type SuggestionResponse struct {
	AccountID    int64                         `json:"accountId"`
	Correlations []models.AttributeCorrelation `json:"correlations"`
}
