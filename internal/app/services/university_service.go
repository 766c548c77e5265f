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

// UniversityService defines the interface for university directory operations
type UniversityService interface {
	CreateUniversity(ctx context.Context, university *models.University) error
	GetUniversityByCode(ctx context.Context, code string) (*models.University, error)
	GetAllUniversities(ctx context.Context, offset uint64, limit int) ([]*models.University, int64, error)
	UpdateUniversity(ctx context.Context, university *models.University) error
	DeleteUniversity(ctx context.Context, code string) error
}

// universityServiceImpl implements the UniversityService interface
type universityServiceImpl struct {
	universityRepo *repositories.UniversityRepository
}

// NewUniversityService creates a new university service instance
func NewUniversityService(universityRepo *repositories.UniversityRepository) UniversityService {
	return &universityServiceImpl{
		universityRepo: universityRepo,
	}
}

// validateUniversity validates university data before database operations
func (s *universityServiceImpl) validateUniversity(university *models.University) error {
	if university == nil {
		return fmt.Errorf("%w: university is nil", apperrors.ErrValidationFailed)
	}

	if strings.TrimSpace(university.Name) == "" {
		return fmt.Errorf("%w: name cannot be empty", apperrors.ErrValidationFailed)
	}

	university.Code = strings.ToUpper(strings.TrimSpace(university.Code))
	if !validation.CompiledPatterns.UniversityCode.MatchString(university.Code) {
		return fmt.Errorf("%w: code must be a short uppercase alphanumeric identifier", apperrors.ErrValidationFailed)
	}

	return nil
}

// CreateUniversity creates a new university
func (s *universityServiceImpl) CreateUniversity(ctx context.Context, university *models.University) error {
	if err := s.validateUniversity(university); err != nil {
		return err
	}

	err := s.universityRepo.Create(ctx, university)
	if err != nil {
		if errors.Is(err, apperrors.ErrUniversityAlreadyExists) {
			return apperrors.ErrUniversityAlreadyExists
		}
		return fmt.Errorf("error creating university: %w", err)
	}
	return nil
}

// GetUniversityByCode retrieves a university by its unique code
func (s *universityServiceImpl) GetUniversityByCode(ctx context.Context, code string) (*models.University, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "" {
		return nil, fmt.Errorf("%w: university code cannot be empty", apperrors.ErrValidationFailed)
	}

	university, err := s.universityRepo.GetByCode(ctx, code)
	if err != nil {
		if errors.Is(err, apperrors.ErrUniversityNotFound) {
			return nil, apperrors.ErrUniversityNotFound
		}
		return nil, fmt.Errorf("error retrieving university: %w", err)
	}

	return university, nil
}

// GetAllUniversities retrieves a page of universities with the total count
func (s *universityServiceImpl) GetAllUniversities(ctx context.Context, offset uint64, limit int) ([]*models.University, int64, error) {
	universities, err := s.universityRepo.GetAll(ctx, offset, limit)
	if err != nil {
		return nil, 0, fmt.Errorf("error retrieving universities: %w", err)
	}

	total, err := s.universityRepo.Count(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("error counting universities: %w", err)
	}

	return universities, total, nil
}

// UpdateUniversity updates an existing university addressed by code
func (s *universityServiceImpl) UpdateUniversity(ctx context.Context, university *models.University) error {
	if err := s.validateUniversity(university); err != nil {
		return err
	}

	err := s.universityRepo.Update(ctx, university)
	if err != nil {
		if errors.Is(err, apperrors.ErrUniversityNotFound) {
			return apperrors.ErrUniversityNotFound
		}
		return fmt.Errorf("error updating university: %w", err)
	}
	return nil
}

// DeleteUniversity deletes a university by code
func (s *universityServiceImpl) DeleteUniversity(ctx context.Context, code string) error {
	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "" {
		return fmt.Errorf("%w: university code cannot be empty", apperrors.ErrValidationFailed)
	}

	err := s.universityRepo.Delete(ctx, code)
	if err != nil {
		if errors.Is(err, apperrors.ErrUniversityNotFound) {
			return apperrors.ErrUniversityNotFound
		}
		return fmt.Errorf("error deleting university: %w", err)
	}
	return nil
}
