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

// TAService defines the interface for teaching assistant directory operations
type TAService interface {
	CreateTA(ctx context.Context, universityCode string, ta *models.TeachingAssistant) error
	GetTAsByUniversity(ctx context.Context, universityCode string) ([]*models.TeachingAssistant, error)
}

// taServiceImpl implements the TAService interface
type taServiceImpl struct {
	taRepo         *repositories.TARepository
	universityRepo *repositories.UniversityRepository
}

// NewTAService creates a new teaching assistant service instance
func NewTAService(taRepo *repositories.TARepository, universityRepo *repositories.UniversityRepository) TAService {
	return &taServiceImpl{
		taRepo:         taRepo,
		universityRepo: universityRepo,
	}
}

// CreateTA creates a new teaching assistant at a university
func (s *taServiceImpl) CreateTA(ctx context.Context, universityCode string, ta *models.TeachingAssistant) error {
	if ta == nil || strings.TrimSpace(ta.Name) == "" {
		return fmt.Errorf("%w: name cannot be empty", apperrors.ErrValidationFailed)
	}
	if ta.Email != nil && !validation.NewStringValidation(*ta.Email).WithPattern(validation.CompiledPatterns.Email).Validate() {
		return fmt.Errorf("%w: %q", apperrors.ErrInvalidEmail, *ta.Email)
	}

	university, err := s.universityRepo.GetByCode(ctx, strings.ToUpper(strings.TrimSpace(universityCode)))
	if err != nil {
		if errors.Is(err, apperrors.ErrUniversityNotFound) {
			return apperrors.ErrUniversityNotFound
		}
		return fmt.Errorf("error resolving university: %w", err)
	}
	ta.UniversityID = university.ID

	if err := s.taRepo.Create(ctx, ta); err != nil {
		if errors.Is(err, apperrors.ErrConflict) {
			return err
		}
		return fmt.Errorf("error creating teaching assistant: %w", err)
	}
	return nil
}

// GetTAsByUniversity retrieves all teaching assistants at a university
func (s *taServiceImpl) GetTAsByUniversity(ctx context.Context, universityCode string) ([]*models.TeachingAssistant, error) {
	university, err := s.universityRepo.GetByCode(ctx, strings.ToUpper(strings.TrimSpace(universityCode)))
	if err != nil {
		if errors.Is(err, apperrors.ErrUniversityNotFound) {
			return nil, apperrors.ErrUniversityNotFound
		}
		return nil, fmt.Errorf("error resolving university: %w", err)
	}

	tas, err := s.taRepo.GetAllByUniversity(ctx, university.ID)
	if err != nil {
		return nil, fmt.Errorf("error retrieving teaching assistants: %w", err)
	}

	return tas, nil
}
