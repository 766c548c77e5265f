package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/courator/courator/internal/app/models"
	"github.com/courator/courator/internal/app/repositories"
	"github.com/courator/courator/internal/pkg/apperrors"
)

// AttributeService defines the interface for rating attribute administration
type AttributeService interface {
	RegisterAttribute(ctx context.Context, attribute *models.RatingAttribute) error
	ListAttributeUsage(ctx context.Context) ([]models.AttributeUsage, error)
}

// attributeServiceImpl implements the AttributeService interface
type attributeServiceImpl struct {
	attributeRepo *repositories.AttributeRepository
}

// NewAttributeService creates a new attribute service instance
func NewAttributeService(attributeRepo *repositories.AttributeRepository) AttributeService {
	return &attributeServiceImpl{
		attributeRepo: attributeRepo,
	}
}

// RegisterAttribute registers a rating attribute ahead of use. The reserved
// overall attribute cannot be registered explicitly.
func (s *attributeServiceImpl) RegisterAttribute(ctx context.Context, attribute *models.RatingAttribute) error {
	if attribute == nil || strings.TrimSpace(attribute.Name) == "" {
		return fmt.Errorf("%w: attribute name cannot be empty", apperrors.ErrValidationFailed)
	}
	if attribute.Name == models.OverallAttributeName {
		return fmt.Errorf("%w: attribute name %q is reserved", apperrors.ErrValidationFailed, attribute.Name)
	}

	err := s.attributeRepo.Create(ctx, attribute)
	if err != nil {
		if errors.Is(err, apperrors.ErrAttributeAlreadyExists) {
			return apperrors.ErrAttributeAlreadyExists
		}
		return fmt.Errorf("error creating rating attribute: %w", err)
	}
	return nil
}

// ListAttributeUsage lists all attributes with usage counts, most used first
func (s *attributeServiceImpl) ListAttributeUsage(ctx context.Context) ([]models.AttributeUsage, error) {
	usages, err := s.attributeRepo.UsageCounts(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving attribute usage: %w", err)
	}
	return usages, nil
}
