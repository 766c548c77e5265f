package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/courator/courator/internal/app/models/dto"
	"github.com/courator/courator/internal/app/services"
	"github.com/courator/courator/internal/middleware"
)

// AccountController handles the authenticated account's own resources
type AccountController struct {
	authService       services.AuthService
	suggestionService services.SuggestionService
}

// NewAccountController creates a new AccountController
func NewAccountController(authService services.AuthService, suggestionService services.SuggestionService) *AccountController {
	return &AccountController{
		authService:       authService,
		suggestionService: suggestionService,
	}
}

// accountIDFromContext extracts the authenticated account id set by the auth
// middleware, writing the error response itself on failure
func accountIDFromContext(ctx *gin.Context) (int64, bool) {
	accountIDValue, exists := ctx.Get("accountID")
	if !exists {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")
		errorDetail = errorDetail.WithDetails("Account ID not found in request context")
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
		return 0, false
	}
	accountID, ok := accountIDValue.(int64)
	if !ok {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeInternalServer, "Invalid account ID format")
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(errorDetail))
		return 0, false
	}
	return accountID, true
}

// GetProfile retrieves the authenticated account
// @Summary Get own account
// @Description Retrieves the currently authenticated account's profile
// @Tags accounts
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.AccountResponse} "Account retrieved successfully"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Account not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /accounts/me [get]
func (c *AccountController) GetProfile(ctx *gin.Context) {
	accountID, ok := accountIDFromContext(ctx)
	if !ok {
		return
	}

	account, err := c.authService.GetAccount(ctx, accountID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.AccountResponse{
		ID:          account.ID,
		Name:        account.Name,
		Email:       account.Email,
		About:       account.About,
		Permissions: account.Permissions,
	}))
}

// UpdateProfile updates the authenticated account's profile text
// @Summary Update own account
// @Description Replaces the currently authenticated account's about text
// @Tags accounts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.UpdateProfileRequest true "Profile fields"
// @Success 200 {object} dto.APIResponse{data=dto.AccountResponse} "Account updated successfully"
// @Failure 400 {object} dto.ErrorResponse "Validation error"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Account not found"
// @Router /accounts/me [patch]
func (c *AccountController) UpdateProfile(ctx *gin.Context) {
	accountID, ok := accountIDFromContext(ctx)
	if !ok {
		return
	}

	var req dto.UpdateProfileRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid request format").WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	if err := c.authService.UpdateAbout(ctx, accountID, req.About); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	account, err := c.authService.GetAccount(ctx, accountID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.AccountResponse{
		ID:          account.ID,
		Name:        account.Name,
		Email:       account.Email,
		About:       account.About,
		Permissions: account.Permissions,
	}))
}

// GetSuggestions computes the account's attribute correlation vector
// @Summary Get attribute suggestions
// @Description Correlates each rating attribute in the account's history against the account's overall scores. Attributes with high correlation best predict what this account values in a course.
// @Tags accounts
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.SuggestionResponse} "Suggestions computed successfully"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 503 {object} dto.ErrorResponse "Rating store unavailable"
// @Router /accounts/me/suggestions [get]
func (c *AccountController) GetSuggestions(ctx *gin.Context) {
	accountID, ok := accountIDFromContext(ctx)
	if !ok {
		return
	}

	correlations, err := c.suggestionService.AttributeCorrelations(ctx, accountID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.SuggestionResponse{
		AccountID:    accountID,
		Correlations: correlations,
	}))
}
