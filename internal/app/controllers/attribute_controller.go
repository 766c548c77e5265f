package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/courator/courator/internal/app/models"
	"github.com/courator/courator/internal/app/models/dto"
	"github.com/courator/courator/internal/app/services"
	"github.com/courator/courator/internal/middleware"
)

// AttributeController handles the rating attribute registry
type AttributeController struct {
	attributeService services.AttributeService
}

// NewAttributeController creates a new AttributeController
func NewAttributeController(attributeService services.AttributeService) *AttributeController {
	return &AttributeController{
		attributeService: attributeService,
	}
}

// CreateAttribute registers a rating attribute ahead of use
// @Summary Register a rating attribute
// @Description Registers a named rating attribute so submissions can reference it by id
// @Tags rating-attributes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateAttributeRequest true "Attribute information"
// @Success 201 {object} dto.APIResponse{data=models.RatingAttribute} "Attribute registered successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid attribute data or reserved name"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 409 {object} dto.ErrorResponse "Attribute name already registered"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /rating-attributes [post]
func (c *AttributeController) CreateAttribute(ctx *gin.Context) {
	var req dto.CreateAttributeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid attribute data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	attribute := models.RatingAttribute{
		Name:        req.Name,
		Description: req.Description,
	}
	if err := c.attributeService.RegisterAttribute(ctx, &attribute); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(attribute))
}

// GetAttributes lists all rating attributes with usage counts
// @Summary List rating attributes
// @Description Retrieves all registered rating attributes ordered by how many rating values reference them
// @Tags rating-attributes
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]models.AttributeUsage} "Attributes retrieved successfully"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /rating-attributes [get]
func (c *AttributeController) GetAttributes(ctx *gin.Context) {
	attributes, err := c.attributeService.ListAttributeUsage(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(attributes))
}
