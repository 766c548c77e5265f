package models

// Professor represents a course professor at a university
type Professor struct {
	ID           int64   `json:"id" db:"id"`
	Name         string  `json:"name" db:"name"`
	Email        *string `json:"email,omitempty" db:"email"` // Nullable, unique when present
	UniversityID int64   `json:"universityId" db:"university_id"`
}

// TeachingAssistant represents a TA at a university
type TeachingAssistant struct {
	ID           int64   `json:"id" db:"id"`
	Name         string  `json:"name" db:"name"`
	Email        *string `json:"email,omitempty" db:"email"` // Nullable, unique when present
	UniversityID int64   `json:"universityId" db:"university_id"`
}
