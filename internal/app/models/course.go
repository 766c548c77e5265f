package models

// Course represents a course offered by a university.
// Courses are identified by the composite key (universityID, code); the code
// is stored in canonical DEPARTMENT+NUMBER uppercase form (e.g. "CS100").
type Course struct {
	UniversityID   int64  `json:"universityId" db:"university_id"`
	Code           string `json:"code" db:"code" example:"CS100"`
	Title          string `json:"title" db:"title"`
	Description    string `json:"description" db:"description"`
	Website        string `json:"website" db:"website"`
	DepartmentCode string `json:"departmentCode" db:"department_code" example:"CS"`
	ProfessorID    *int64 `json:"professorId,omitempty" db:"professor_id"` // Nullable

	// Relations (populated when needed)
	University *University `json:"university,omitempty"`
	Professor  *Professor  `json:"professor,omitempty"`
}
