package dto

// CreateUniversityRequest represents university creation data
type CreateUniversityRequest struct {
	Code        string  `json:"code" binding:"required,max=20"`
	Name        string  `json:"name" binding:"required,max=80"`
	Description string  `json:"description"`
	Website     *string `json:"website,omitempty"`
}

// UpdateUniversityRequest represents university update data; empty fields are
// left unchanged
type UpdateUniversityRequest struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Website     *string `json:"website,omitempty"`
}

// UniversityResponse represents basic university information
type UniversityResponse struct {
	ID          int64   `json:"id"`
	Code        string  `json:"code"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Website     *string `json:"website,omitempty"`
}
