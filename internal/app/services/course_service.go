package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/courator/courator/internal/app/models"
	"github.com/courator/courator/internal/app/repositories"
	"github.com/courator/courator/internal/pkg/apperrors"
	"github.com/courator/courator/internal/pkg/validation"
)

// CourseService defines the interface for course directory operations.
// Course codes are normalized to DEPARTMENT+NUMBER uppercase form on every
// write and lookup, so "cs 100" and "CS100" address the same course.
type CourseService interface {
	CreateCourse(ctx context.Context, universityCode string, course *models.Course) error
	GetCourse(ctx context.Context, universityCode, courseCode string) (*models.Course, error)
	GetCoursesByUniversity(ctx context.Context, universityCode string, offset uint64, limit int) ([]*models.Course, int64, error)
	UpdateCourse(ctx context.Context, universityCode, courseCode string, course *models.Course) error
	DeleteCourse(ctx context.Context, universityCode, courseCode string) error
}

// courseServiceImpl implements the CourseService interface
type courseServiceImpl struct {
	courseRepo     *repositories.CourseRepository
	universityRepo *repositories.UniversityRepository
	professorRepo  *repositories.ProfessorRepository
}

// NewCourseService creates a new course service instance
func NewCourseService(
	courseRepo *repositories.CourseRepository,
	universityRepo *repositories.UniversityRepository,
	professorRepo *repositories.ProfessorRepository,
) CourseService {
	return &courseServiceImpl{
		courseRepo:     courseRepo,
		universityRepo: universityRepo,
		professorRepo:  professorRepo,
	}
}

// resolveUniversity resolves a university code to its row
func (s *courseServiceImpl) resolveUniversity(ctx context.Context, universityCode string) (*models.University, error) {
	universityCode = strings.ToUpper(strings.TrimSpace(universityCode))
	if universityCode == "" {
		return nil, fmt.Errorf("%w: university code cannot be empty", apperrors.ErrValidationFailed)
	}

	university, err := s.universityRepo.GetByCode(ctx, universityCode)
	if err != nil {
		if errors.Is(err, apperrors.ErrUniversityNotFound) {
			return nil, apperrors.ErrUniversityNotFound
		}
		return nil, fmt.Errorf("error resolving university: %w", err)
	}

	return university, nil
}

// CreateCourse creates a new course under a university
func (s *courseServiceImpl) CreateCourse(ctx context.Context, universityCode string, course *models.Course) error {
	if course == nil {
		return fmt.Errorf("%w: course is nil", apperrors.ErrValidationFailed)
	}
	if strings.TrimSpace(course.Title) == "" {
		return fmt.Errorf("%w: title cannot be empty", apperrors.ErrValidationFailed)
	}

	code, departmentCode, err := validation.NormalizeCourseCode(course.Code)
	if err != nil {
		return fmt.Errorf("%w: %q", apperrors.ErrInvalidCourseCode, course.Code)
	}
	course.Code = code
	course.DepartmentCode = departmentCode

	university, err := s.resolveUniversity(ctx, universityCode)
	if err != nil {
		return err
	}
	course.UniversityID = university.ID

	if course.ProfessorID != nil {
		professor, err := s.professorRepo.GetByID(ctx, *course.ProfessorID)
		if err != nil {
			if errors.Is(err, apperrors.ErrProfessorNotFound) {
				return apperrors.ErrProfessorNotFound
			}
			return fmt.Errorf("error checking professor: %w", err)
		}
		if professor.UniversityID != university.ID {
			return fmt.Errorf("%w: professor belongs to another university", apperrors.ErrValidationFailed)
		}
	}

	err = s.courseRepo.Create(ctx, course)
	if err != nil {
		if errors.Is(err, apperrors.ErrCourseAlreadyExists) {
			return apperrors.ErrCourseAlreadyExists
		}
		return fmt.Errorf("error creating course: %w", err)
	}
	return nil
}

// GetCourse retrieves one course by university code and course code
func (s *courseServiceImpl) GetCourse(ctx context.Context, universityCode, courseCode string) (*models.Course, error) {
	code, _, err := validation.NormalizeCourseCode(courseCode)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", apperrors.ErrInvalidCourseCode, courseCode)
	}

	university, err := s.resolveUniversity(ctx, universityCode)
	if err != nil {
		return nil, err
	}

	course, err := s.courseRepo.GetByKey(ctx, university.ID, code)
	if err != nil {
		if errors.Is(err, apperrors.ErrCourseNotFound) {
			return nil, apperrors.ErrCourseNotFound
		}
		return nil, fmt.Errorf("error retrieving course: %w", err)
	}

	course.University = university
	return course, nil
}

// GetCoursesByUniversity retrieves a page of a university's courses
func (s *courseServiceImpl) GetCoursesByUniversity(ctx context.Context, universityCode string, offset uint64, limit int) ([]*models.Course, int64, error) {
	university, err := s.resolveUniversity(ctx, universityCode)
	if err != nil {
		return nil, 0, err
	}

	courses, err := s.courseRepo.GetAllByUniversity(ctx, university.ID, offset, limit)
	if err != nil {
		return nil, 0, fmt.Errorf("error retrieving courses: %w", err)
	}

	total, err := s.courseRepo.CountByUniversity(ctx, university.ID)
	if err != nil {
		return nil, 0, fmt.Errorf("error counting courses: %w", err)
	}

	return courses, total, nil
}

// UpdateCourse updates an existing course's metadata
func (s *courseServiceImpl) UpdateCourse(ctx context.Context, universityCode, courseCode string, course *models.Course) error {
	code, _, err := validation.NormalizeCourseCode(courseCode)
	if err != nil {
		return fmt.Errorf("%w: %q", apperrors.ErrInvalidCourseCode, courseCode)
	}

	university, err := s.resolveUniversity(ctx, universityCode)
	if err != nil {
		return err
	}

	course.UniversityID = university.ID
	course.Code = code

	err = s.courseRepo.Update(ctx, course)
	if err != nil {
		if errors.Is(err, apperrors.ErrCourseNotFound) {
			return apperrors.ErrCourseNotFound
		}
		return fmt.Errorf("error updating course: %w", err)
	}
	return nil
}

// DeleteCourse deletes a course by its composite key
func (s *courseServiceImpl) DeleteCourse(ctx context.Context, universityCode, courseCode string) error {
	code, _, err := validation.NormalizeCourseCode(courseCode)
	if err != nil {
		return fmt.Errorf("%w: %q", apperrors.ErrInvalidCourseCode, courseCode)
	}

	university, err := s.resolveUniversity(ctx, universityCode)
	if err != nil {
		return err
	}

	err = s.courseRepo.Delete(ctx, university.ID, code)
	if err != nil {
		if errors.Is(err, apperrors.ErrCourseNotFound) {
			return apperrors.ErrCourseNotFound
		}
		return fmt.Errorf("error deleting course: %w", err)
	}
	return nil
}

