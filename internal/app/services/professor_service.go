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

// ProfessorService defines the interface for professor directory operations
type ProfessorService interface {
	CreateProfessor(ctx context.Context, universityCode string, professor *models.Professor) error
	GetProfessorsByUniversity(ctx context.Context, universityCode string) ([]*models.Professor, error)
}

// professorServiceImpl implements the ProfessorService interface
type professorServiceImpl struct {
	professorRepo  *repositories.ProfessorRepository
	universityRepo *repositories.UniversityRepository
}

// NewProfessorService creates a new professor service instance
func NewProfessorService(professorRepo *repositories.ProfessorRepository, universityRepo *repositories.UniversityRepository) ProfessorService {
	return &professorServiceImpl{
		professorRepo:  professorRepo,
		universityRepo: universityRepo,
	}
}

// CreateProfessor creates a new professor at a university
func (s *professorServiceImpl) CreateProfessor(ctx context.Context, universityCode string, professor *models.Professor) error {
	if professor == nil || strings.TrimSpace(professor.Name) == "" {
		return fmt.Errorf("%w: name cannot be empty", apperrors.ErrValidationFailed)
	}
	if professor.Email != nil && !validation.NewStringValidation(*professor.Email).WithPattern(validation.CompiledPatterns.Email).Validate() {
		return fmt.Errorf("%w: %q", apperrors.ErrInvalidEmail, *professor.Email)
	}

	university, err := s.universityRepo.GetByCode(ctx, strings.ToUpper(strings.TrimSpace(universityCode)))
	if err != nil {
		if errors.Is(err, apperrors.ErrUniversityNotFound) {
			return apperrors.ErrUniversityNotFound
		}
		return fmt.Errorf("error resolving university: %w", err)
	}
	professor.UniversityID = university.ID

	if err := s.professorRepo.Create(ctx, professor); err != nil {
		if errors.Is(err, apperrors.ErrConflict) {
			return err
		}
		return fmt.Errorf("error creating professor: %w", err)
	}
	return nil
}

// GetProfessorsByUniversity retrieves all professors at a university
func (s *professorServiceImpl) GetProfessorsByUniversity(ctx context.Context, universityCode string) ([]*models.Professor, error) {
	university, err := s.universityRepo.GetByCode(ctx, strings.ToUpper(strings.TrimSpace(universityCode)))
	if err != nil {
		if errors.Is(err, apperrors.ErrUniversityNotFound) {
			return nil, apperrors.ErrUniversityNotFound
		}
		return nil, fmt.Errorf("error resolving university: %w", err)
	}

	professors, err := s.professorRepo.GetAllByUniversity(ctx, university.ID)
	if err != nil {
		return nil, fmt.Errorf("error retrieving professors: %w", err)
	}

	return professors, nil
}
