package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/courator/courator/internal/app/models"
	"github.com/courator/courator/internal/app/models/dto"
	"github.com/courator/courator/internal/app/services"
	"github.com/courator/courator/internal/middleware"
	"github.com/courator/courator/internal/pkg/helpers"
)

// UniversityController handles university directory operations
type UniversityController struct {
	universityService services.UniversityService
}

// NewUniversityController creates a new UniversityController
func NewUniversityController(universityService services.UniversityService) *UniversityController {
	return &UniversityController{
		universityService: universityService,
	}
}

// CreateUniversity handles university creation
// @Summary Create a new university
// @Description Registers a new university with a unique short code
// @Tags universities
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateUniversityRequest true "University information"
// @Success 201 {object} dto.APIResponse{data=models.University} "University created successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 409 {object} dto.ErrorResponse "University code already registered"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /universities [post]
func (c *UniversityController) CreateUniversity(ctx *gin.Context) {
	var req dto.CreateUniversityRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid university data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	university := models.University{
		Code:        req.Code,
		Name:        req.Name,
		Description: req.Description,
		Website:     req.Website,
	}
	if err := c.universityService.CreateUniversity(ctx, &university); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(university))
}

// GetUniversity retrieves a university by code
// @Summary Get university
// @Description Retrieves a university by its short code
// @Tags universities
// @Produce json
// @Param universityCode path string true "University code"
// @Success 200 {object} dto.APIResponse{data=models.University} "University retrieved successfully"
// @Failure 404 {object} dto.ErrorResponse "University not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /universities/{universityCode} [get]
func (c *UniversityController) GetUniversity(ctx *gin.Context) {
	university, err := c.universityService.GetUniversityByCode(ctx, ctx.Param("universityCode"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(university))
}

// GetAllUniversities retrieves a page of universities
// @Summary List universities
// @Description Retrieves a paginated list of all registered universities
// @Tags universities
// @Produce json
// @Param page query int false "Page number (1-based)"
// @Param size query int false "Page size"
// @Success 200 {object} dto.PagedResponse "Universities retrieved successfully"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /universities [get]
func (c *UniversityController) GetAllUniversities(ctx *gin.Context) {
	page, size := helpers.ParsePaginationParams(ctx)
	offset, limit := helpers.CalculateOffsetLimit(page, size)

	universities, total, err := c.universityService.GetAllUniversities(ctx, offset, limit)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.PagedResponse{
		Items:      universities,
		Pagination: helpers.NewPaginationInfo(total, page, size),
	}))
}

// UpdateUniversity updates an existing university
// @Summary Update a university
// @Description Updates the university addressed by its short code
// @Tags universities
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param universityCode path string true "University code"
// @Param request body dto.UpdateUniversityRequest true "Updated university information"
// @Success 200 {object} dto.APIResponse{data=models.University} "University updated successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 404 {object} dto.ErrorResponse "University not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /universities/{universityCode} [put]
func (c *UniversityController) UpdateUniversity(ctx *gin.Context) {
	var req dto.UpdateUniversityRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid university data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	university := models.University{
		Code:        ctx.Param("universityCode"),
		Name:        req.Name,
		Description: req.Description,
		Website:     req.Website,
	}
	if err := c.universityService.UpdateUniversity(ctx, &university); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(university))
}

// DeleteUniversity deletes a university
// @Summary Delete a university
// @Description Deletes the university addressed by its short code
// @Tags universities
// @Produce json
// @Security BearerAuth
// @Param universityCode path string true "University code"
// @Success 204 "University deleted successfully"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 404 {object} dto.ErrorResponse "University not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /universities/{universityCode} [delete]
func (c *UniversityController) DeleteUniversity(ctx *gin.Context) {
	if err := c.universityService.DeleteUniversity(ctx, ctx.Param("universityCode")); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}
