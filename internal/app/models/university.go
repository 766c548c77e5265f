package models

// University represents a university that courses belong to
type University struct {
	ID          int64   `json:"id" db:"id" example:"1"`
	Code        string  `json:"code" db:"code" example:"MIT"`                           // Unique short code
	Name        string  `json:"name" db:"name" example:"Massachusetts Institute of Technology"`
	Description string  `json:"description" db:"description"`
	Website     *string `json:"website,omitempty" db:"website"` // Nullable
}
