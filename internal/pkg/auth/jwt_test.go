package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/courator/courator/internal/app/models"
	"github.com/courator/courator/internal/pkg/apperrors"
)

func newTestJWTService(expiry time.Duration) *JWTService {
	return NewJWTService(JWTConfig{
		SecretKey:      "test-secret",
		AccessTokenExp: expiry,
		TokenIssuer:    "courator",
	})
}

func TestGenerateAndValidateToken(t *testing.T) {
	service := newTestJWTService(time.Hour)

	account := &models.Account{
		ID:          42,
		Email:       "student@example.com",
		Permissions: models.PermUser,
	}

	token, expiresIn, err := service.GenerateToken(account)
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, int(time.Hour.Seconds()), expiresIn)

	claims, err := service.ValidateAndExtractClaims(token)
	require.NoError(t, err)
	assert.Equal(t, int64(42), claims.AccountID)
	assert.Equal(t, "student@example.com", claims.Email)
	assert.Equal(t, models.PermUser, claims.Permissions)
	assert.Equal(t, "courator", claims.Issuer)
}

func TestValidateToken_Expired(t *testing.T) {
	service := newTestJWTService(-time.Minute)

	account := &models.Account{ID: 7, Email: "student@example.com", Permissions: models.PermUser}
	token, _, err := service.GenerateToken(account)
	require.NoError(t, err)

	_, err = service.ValidateAndExtractClaims(token)
	assert.ErrorIs(t, err, apperrors.ErrTokenExpired)
}

func TestValidateToken_WrongSecret(t *testing.T) {
	issuer := newTestJWTService(time.Hour)
	verifier := NewJWTService(JWTConfig{SecretKey: "other-secret", AccessTokenExp: time.Hour, TokenIssuer: "courator"})

	account := &models.Account{ID: 7, Email: "student@example.com", Permissions: models.PermUser}
	token, _, err := issuer.GenerateToken(account)
	require.NoError(t, err)

	_, err = verifier.ValidateAndExtractClaims(token)
	assert.Error(t, err)
}

func TestValidateAndExtractClaims_EmptyToken(t *testing.T) {
	service := newTestJWTService(time.Hour)

	_, err := service.ValidateAndExtractClaims("")
	assert.ErrorIs(t, err, apperrors.ErrTokenInvalid)
}

func TestExtractBearerToken(t *testing.T) {
	token, err := ExtractBearerToken("Bearer abc.def.ghi")
	require.NoError(t, err)
	assert.Equal(t, "abc.def.ghi", token)

	token, err = ExtractBearerToken("abc.def.ghi")
	require.NoError(t, err)
	assert.Equal(t, "abc.def.ghi", token)

	_, err = ExtractBearerToken("")
	assert.ErrorIs(t, err, apperrors.ErrInvalidFormat)
}
