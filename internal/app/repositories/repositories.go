package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repositories holds all the repository instances
type Repositories struct {
	AccountRepository    *AccountRepository
	UniversityRepository *UniversityRepository
	CourseRepository     *CourseRepository
	ProfessorRepository  *ProfessorRepository
	TARepository         *TARepository
	AttributeRepository  *AttributeRepository
	RatingRepository     *RatingRepository
}

// NewRepositories initializes all repositories
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		AccountRepository:    NewAccountRepository(db),
		UniversityRepository: NewUniversityRepository(db),
		CourseRepository:     NewCourseRepository(db),
		ProfessorRepository:  NewProfessorRepository(db),
		TARepository:         NewTARepository(db),
		AttributeRepository:  NewAttributeRepository(db),
		RatingRepository:     NewRatingRepository(db),
	}
}
