package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/courator/courator/internal/app/models"
	"github.com/courator/courator/internal/app/models/dto"
	"github.com/courator/courator/internal/app/services"
	"github.com/courator/courator/internal/middleware"
)

// ProfessorController handles professor directory operations
type ProfessorController struct {
	professorService services.ProfessorService
}

// NewProfessorController creates a new ProfessorController
func NewProfessorController(professorService services.ProfessorService) *ProfessorController {
	return &ProfessorController{
		professorService: professorService,
	}
}

// CreateProfessor handles professor creation
// @Summary Create a new professor
// @Description Registers a professor under a university
// @Tags professors
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param universityCode path string true "University code"
// @Param request body dto.CreateProfessorRequest true "Professor information"
// @Success 201 {object} dto.APIResponse{data=models.Professor} "Professor created successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 404 {object} dto.ErrorResponse "University not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /universities/{universityCode}/professors [post]
func (c *ProfessorController) CreateProfessor(ctx *gin.Context) {
	var req dto.CreateProfessorRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid professor data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	professor := models.Professor{
		Name:  req.Name,
		Email: req.Email,
	}
	if err := c.professorService.CreateProfessor(ctx, ctx.Param("universityCode"), &professor); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(professor))
}

// GetProfessorsByUniversity retrieves a university's professors
// @Summary List university professors
// @Description Retrieves all professors registered under a university
// @Tags professors
// @Produce json
// @Param universityCode path string true "University code"
// @Success 200 {object} dto.APIResponse{data=[]models.Professor} "Professors retrieved successfully"
// @Failure 404 {object} dto.ErrorResponse "University not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /universities/{universityCode}/professors [get]
func (c *ProfessorController) GetProfessorsByUniversity(ctx *gin.Context) {
	professors, err := c.professorService.GetProfessorsByUniversity(ctx, ctx.Param("universityCode"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(professors))
}
