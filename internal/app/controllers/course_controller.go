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

// CourseController handles course directory operations. Courses are always
// addressed by university code plus course code.
type CourseController struct {
	courseService services.CourseService
}

// NewCourseController creates a new CourseController
func NewCourseController(courseService services.CourseService) *CourseController {
	return &CourseController{
		courseService: courseService,
	}
}

// CreateCourse handles course creation
// @Summary Create a new course
// @Description Registers a course under a university. The course code is normalized ("cs 100" becomes "CS100") and its leading letters become the department code.
// @Tags courses
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param universityCode path string true "University code"
// @Param request body dto.CreateCourseRequest true "Course information"
// @Success 201 {object} dto.APIResponse{data=models.Course} "Course created successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data or malformed course code"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 404 {object} dto.ErrorResponse "University not found"
// @Failure 409 {object} dto.ErrorResponse "Course already exists"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /universities/{universityCode}/courses [post]
func (c *CourseController) CreateCourse(ctx *gin.Context) {
	var req dto.CreateCourseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid course data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	course := models.Course{
		Code:        req.Code,
		Title:       req.Title,
		Description: req.Description,
		Website:     req.Website,
		ProfessorID: req.ProfessorID,
	}
	if err := c.courseService.CreateCourse(ctx, ctx.Param("universityCode"), &course); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(course))
}

// GetCourse retrieves a course
// @Summary Get course
// @Description Retrieves a course by university code and course code
// @Tags courses
// @Produce json
// @Param universityCode path string true "University code"
// @Param courseCode path string true "Course code"
// @Success 200 {object} dto.APIResponse{data=models.Course} "Course retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Malformed course code"
// @Failure 404 {object} dto.ErrorResponse "University or course not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /universities/{universityCode}/courses/{courseCode} [get]
func (c *CourseController) GetCourse(ctx *gin.Context) {
	course, err := c.courseService.GetCourse(ctx, ctx.Param("universityCode"), ctx.Param("courseCode"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(course))
}

// GetCoursesByUniversity retrieves a page of a university's courses
// @Summary List university courses
// @Description Retrieves a paginated list of a university's courses
// @Tags courses
// @Produce json
// @Param universityCode path string true "University code"
// @Param page query int false "Page number (1-based)"
// @Param size query int false "Page size"
// @Success 200 {object} dto.PagedResponse "Courses retrieved successfully"
// @Failure 404 {object} dto.ErrorResponse "University not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /universities/{universityCode}/courses [get]
func (c *CourseController) GetCoursesByUniversity(ctx *gin.Context) {
	page, size := helpers.ParsePaginationParams(ctx)
	offset, limit := helpers.CalculateOffsetLimit(page, size)

	courses, total, err := c.courseService.GetCoursesByUniversity(ctx, ctx.Param("universityCode"), offset, limit)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.PagedResponse{
		Items:      courses,
		Pagination: helpers.NewPaginationInfo(total, page, size),
	}))
}

// UpdateCourse updates an existing course
// @Summary Update a course
// @Description Updates the course addressed by university code and course code
// @Tags courses
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param universityCode path string true "University code"
// @Param courseCode path string true "Course code"
// @Param request body dto.UpdateCourseRequest true "Updated course information"
// @Success 200 {object} dto.APIResponse{data=models.Course} "Course updated successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 404 {object} dto.ErrorResponse "University or course not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /universities/{universityCode}/courses/{courseCode} [put]
func (c *CourseController) UpdateCourse(ctx *gin.Context) {
	var req dto.UpdateCourseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid course data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	course := models.Course{
		Title:       req.Title,
		Description: req.Description,
		Website:     req.Website,
		ProfessorID: req.ProfessorID,
	}
	if err := c.courseService.UpdateCourse(ctx, ctx.Param("universityCode"), ctx.Param("courseCode"), &course); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(course))
}

// DeleteCourse deletes a course
// @Summary Delete a course
// @Description Deletes the course addressed by university code and course code
// @Tags courses
// @Produce json
// @Security BearerAuth
// @Param universityCode path string true "University code"
// @Param courseCode path string true "Course code"
// @Success 204 "Course deleted successfully"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 404 {object} dto.ErrorResponse "University or course not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /universities/{universityCode}/courses/{courseCode} [delete]
func (c *CourseController) DeleteCourse(ctx *gin.Context) {
	if err := c.courseService.DeleteCourse(ctx, ctx.Param("universityCode"), ctx.Param("courseCode")); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}
