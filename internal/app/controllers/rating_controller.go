package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/courator/courator/internal/app/models/dto"
	"github.com/courator/courator/internal/app/services"
	"github.com/courator/courator/internal/middleware"
)

// RatingController handles rating submission and per-course aggregation
type RatingController struct {
	ratingService services.RatingService
}

// NewRatingController creates a new RatingController
func NewRatingController(ratingService services.RatingService) *RatingController {
	return &RatingController{
		ratingService: ratingService,
	}
}

// SubmitRating handles a rating submission for a course
// @Summary Submit a course rating
// @Description Submits the authenticated account's rating for a course: an overall score plus any number of attribute values, all on the 1..5 scale. New attributes can be registered inline. Each account rates a course at most once.
// @Tags ratings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param universityCode path string true "University code"
// @Param courseCode path string true "Course code"
// @Param request body dto.SubmitRatingRequest true "Rating submission"
// @Success 201 {object} dto.APIResponse{data=map[string]int64} "Rating submitted successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid rating data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "University or course not found"
// @Failure 409 {object} dto.ErrorResponse "Course already rated by this account"
// @Failure 503 {object} dto.ErrorResponse "Rating store unavailable"
// @Router /universities/{universityCode}/courses/{courseCode}/ratings [post]
func (c *RatingController) SubmitRating(ctx *gin.Context) {
	accountID, ok := accountIDFromContext(ctx)
	if !ok {
		return
	}

	var req dto.SubmitRatingRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid rating data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	ratingID, err := c.ratingService.SubmitRating(ctx, accountID, ctx.Param("universityCode"), ctx.Param("courseCode"), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(gin.H{"ratingId": ratingID}))
}

// GetCourseRatings retrieves the aggregated ratings of a course
// @Summary Get course ratings
// @Description Retrieves per-attribute averages and the full review listing for a course. Averages are on the normalized [0,1] scale.
// @Tags ratings
// @Produce json
// @Param universityCode path string true "University code"
// @Param courseCode path string true "Course code"
// @Success 200 {object} dto.APIResponse{data=models.CourseRatingSummary} "Course ratings retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Malformed course code"
// @Failure 404 {object} dto.ErrorResponse "University or course not found"
// @Failure 503 {object} dto.ErrorResponse "Rating store unavailable"
// @Router /universities/{universityCode}/courses/{courseCode}/ratings [get]
func (c *RatingController) GetCourseRatings(ctx *gin.Context) {
	summary, err := c.ratingService.CourseRatingSummary(ctx, ctx.Param("universityCode"), ctx.Param("courseCode"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(summary))
}
