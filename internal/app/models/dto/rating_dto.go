package dto

// RatingValueInput is one attribute value inside a rating submission. The
// attribute is referenced either by id or by name; names that do not resolve
// yet are registered on the fly (optionally described via NewAttributes).
// Raw values use the 1..5 input scale.
type RatingValueInput struct {
	AttributeID int64  `json:"attributeId,omitempty"`
	Name        string `json:"name,omitempty"`
	Value       int    `json:"value" binding:"required"`
}

// NewAttributeInput defines a brand-new rating attribute registered as part
// of a submission
type NewAttributeInput struct {
	Name        string `json:"name" binding:"required,max=40"`
	Description string `json:"description" binding:"max=200"`
}

// SubmitRatingRequest represents one account's rating submission for a course
type SubmitRatingRequest struct {
	Description   string              `json:"description"`
	Overall       int                 `json:"overall" binding:"required"`
	Values        []RatingValueInput  `json:"values"`
	NewAttributes []NewAttributeInput `json:"newAttributes,omitempty"`
}

// CreateAttributeRequest registers a rating attribute ahead of use
type CreateAttributeRequest struct {
	Name        string `json:"name" binding:"required,max=40"`
	Description string `json:"description" binding:"max=200"`
}

