package dto

// CreateCourseRequest represents course creation data. The code is accepted
// in loose form ("cs 100") and normalized on write.
type CreateCourseRequest struct {
	Code        string `json:"code" binding:"required,max=20"`
	Title       string `json:"title" binding:"required,max=120"`
	Description string `json:"description"`
	Website     string `json:"website"`
	ProfessorID *int64 `json:"professorId,omitempty"`
}

// UpdateCourseRequest represents course update data
type UpdateCourseRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Website     string `json:"website"`
	ProfessorID *int64 `json:"professorId,omitempty"`
}

// CourseResponse represents basic course information
type CourseResponse struct {
	UniversityID   int64  `json:"universityId"`
	Code           string `json:"code"`
	Title          string `json:"title"`
	Description    string `json:"description"`
	Website        string `json:"website"`
	DepartmentCode string `json:"departmentCode"`
	ProfessorID    *int64 `json:"professorId,omitempty"`
}
