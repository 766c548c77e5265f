package dto

// CreateProfessorRequest represents professor creation data
type CreateProfessorRequest struct {
	Name  string  `json:"name" binding:"required,max=40"`
	Email *string `json:"email,omitempty" binding:"omitempty,email"`
}

// CreateTARequest represents teaching assistant creation data
type CreateTARequest struct {
	Name  string  `json:"name" binding:"required,max=40"`
	Email *string `json:"email,omitempty" binding:"omitempty,email"`
}
