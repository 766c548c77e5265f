package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/courator/courator/internal/app/models"
	"github.com/courator/courator/internal/app/models/dto"
	"github.com/courator/courator/internal/app/services"
	"github.com/courator/courator/internal/middleware"
)

// TAController handles teaching assistant directory operations
type TAController struct {
	taService services.TAService
}

// NewTAController creates a new TAController
func NewTAController(taService services.TAService) *TAController {
	return &TAController{
		taService: taService,
	}
}

// CreateTA handles teaching assistant creation
// @Summary Create a new teaching assistant
// @Description Registers a teaching assistant under a university
// @Tags teaching-assistants
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param universityCode path string true "University code"
// @Param request body dto.CreateTARequest true "Teaching assistant information"
// @Success 201 {object} dto.APIResponse{data=models.TeachingAssistant} "Teaching assistant created successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 404 {object} dto.ErrorResponse "University not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /universities/{universityCode}/teaching-assistants [post]
func (c *TAController) CreateTA(ctx *gin.Context) {
	var req dto.CreateTARequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid teaching assistant data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	ta := models.TeachingAssistant{
		Name:  req.Name,
		Email: req.Email,
	}
	if err := c.taService.CreateTA(ctx, ctx.Param("universityCode"), &ta); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(ta))
}

// GetTAsByUniversity retrieves a university's teaching assistants
// @Summary List university teaching assistants
// @Description Retrieves all teaching assistants registered under a university
// @Tags teaching-assistants
// @Produce json
// @Param universityCode path string true "University code"
// @Success 200 {object} dto.APIResponse{data=[]models.TeachingAssistant} "Teaching assistants retrieved successfully"
// @Failure 404 {object} dto.ErrorResponse "University not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /universities/{universityCode}/teaching-assistants [get]
func (c *TAController) GetTAsByUniversity(ctx *gin.Context) {
	tas, err := c.taService.GetTAsByUniversity(ctx, ctx.Param("universityCode"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(tas))
}
