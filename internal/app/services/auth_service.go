package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/rs/zerolog"

	"github.com/courator/courator/internal/app/models"
	"github.com/courator/courator/internal/app/models/dto"
	"github.com/courator/courator/internal/app/repositories"
	"github.com/courator/courator/internal/pkg/apperrors"
	"github.com/courator/courator/internal/pkg/auth"
	"github.com/courator/courator/internal/pkg/validation"
)

// AuthService defines the interface for authentication operations
type AuthService interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (*dto.AuthResponse, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error)
	GetAccount(ctx context.Context, accountID int64) (*models.Account, error)
	UpdateAbout(ctx context.Context, accountID int64, about string) error
}

// authServiceImpl implements the AuthService interface
type authServiceImpl struct {
	accountRepo *repositories.AccountRepository
	jwtService  *auth.JWTService
	logger      zerolog.Logger
}

// NewAuthService creates a new AuthService
func NewAuthService(accountRepo *repositories.AccountRepository, jwtService *auth.JWTService, logger zerolog.Logger) AuthService {
	return &authServiceImpl{
		accountRepo: accountRepo,
		jwtService:  jwtService,
		logger:      logger,
	}
}

// validateEmail validates an email address
func (s *authServiceImpl) validateEmail(email string) error {
	if strings.TrimSpace(email) == "" {
		return fmt.Errorf("%w: email cannot be empty", apperrors.ErrValidationFailed)
	}

	if !validation.CompiledPatterns.Email.MatchString(strings.ToLower(email)) {
		return apperrors.ErrInvalidEmail
	}

	return nil
}

// validatePassword checks if password meets requirements
func (s *authServiceImpl) validatePassword(password string) error {
	if password == "" {
		return fmt.Errorf("%w: password cannot be empty", apperrors.ErrValidationFailed)
	}

	if len(password) < validation.PasswordMinLength {
		return fmt.Errorf("%w: password must be at least %d characters long",
			apperrors.ErrInvalidPassword, validation.PasswordMinLength)
	}

	hasLetter := false
	hasDigit := false
	for _, char := range password {
		if unicode.IsLetter(char) {
			hasLetter = true
		}
		if unicode.IsDigit(char) {
			hasDigit = true
		}
	}
	if !hasLetter {
		return fmt.Errorf("%w: password must contain at least one letter", apperrors.ErrInvalidPassword)
	}
	if !hasDigit {
		return fmt.Errorf("%w: password must contain at least one digit", apperrors.ErrInvalidPassword)
	}

	return nil
}

// Register creates a new account with the user permission bit and returns a
// signed token for it
func (s *authServiceImpl) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.AuthResponse, error) {
	if err := s.validateEmail(req.Email); err != nil {
		return nil, err
	}
	if err := s.validatePassword(req.Password); err != nil {
		return nil, err
	}
	if strings.TrimSpace(req.Name) == "" {
		return nil, fmt.Errorf("%w: name cannot be empty", apperrors.ErrValidationFailed)
	}

	passwordHash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	account := &models.Account{
		Name:         req.Name,
		Email:        strings.ToLower(strings.TrimSpace(req.Email)),
		PasswordHash: passwordHash,
		About:        req.About,
		Permissions:  models.PermUser,
	}

	if err := s.accountRepo.Create(ctx, account); err != nil {
		if errors.Is(err, apperrors.ErrEmailAlreadyExists) {
			return nil, apperrors.ErrEmailAlreadyExists
		}
		return nil, fmt.Errorf("error creating account: %w", err)
	}

	s.logger.Info().Int64("accountId", account.ID).Str("email", account.Email).Msg("Account registered")

	return s.buildAuthResponse(account)
}

// Login verifies credentials and returns a signed token
func (s *authServiceImpl) Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error) {
	account, err := s.accountRepo.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(req.Email)))
	if err != nil {
		if errors.Is(err, apperrors.ErrAccountNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("error retrieving account: %w", err)
	}

	if !auth.CheckPassword(account.PasswordHash, req.Password) {
		return nil, apperrors.ErrInvalidCredentials
	}

	return s.buildAuthResponse(account)
}

// GetAccount retrieves an account by ID
func (s *authServiceImpl) GetAccount(ctx context.Context, accountID int64) (*models.Account, error) {
	if accountID <= 0 {
		return nil, fmt.Errorf("%w: invalid account ID", apperrors.ErrValidationFailed)
	}

	account, err := s.accountRepo.GetByID(ctx, accountID)
	if err != nil {
		if errors.Is(err, apperrors.ErrAccountNotFound) {
			return nil, apperrors.ErrAccountNotFound
		}
		return nil, fmt.Errorf("error retrieving account: %w", err)
	}

	return account, nil
}

// UpdateAbout replaces the account's about text
func (s *authServiceImpl) UpdateAbout(ctx context.Context, accountID int64, about string) error {
	if accountID <= 0 {
		return fmt.Errorf("%w: invalid account ID", apperrors.ErrValidationFailed)
	}

	if err := s.accountRepo.UpdateAbout(ctx, accountID, about); err != nil {
		if errors.Is(err, apperrors.ErrAccountNotFound) {
			return apperrors.ErrAccountNotFound
		}
		return fmt.Errorf("error updating account: %w", err)
	}

	s.logger.Debug().Int64("accountId", accountID).Msg("Account profile updated")
	return nil
}

func (s *authServiceImpl) buildAuthResponse(account *models.Account) (*dto.AuthResponse, error) {
	accessToken, expiresIn, err := s.jwtService.GenerateToken(account)
	if err != nil {
		return nil, fmt.Errorf("error generating token: %w", err)
	}

	return &dto.AuthResponse{
		Token: dto.TokenResponse{
			AccessToken: accessToken,
			TokenType:   "Bearer",
			ExpiresIn:   expiresIn,
		},
		Account: dto.AccountResponse{
			ID:          account.ID,
			Name:        account.Name,
			Email:       account.Email,
			About:       account.About,
			Permissions: account.Permissions,
		},
	}, nil
}
