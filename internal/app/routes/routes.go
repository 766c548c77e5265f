package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/courator/courator/internal/app/controllers"
	"github.com/courator/courator/internal/app/models"
	"github.com/courator/courator/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	accountController *controllers.AccountController,
	universityController *controllers.UniversityController,
	courseController *controllers.CourseController,
	professorController *controllers.ProfessorController,
	taController *controllers.TAController,
	attributeController *controllers.AttributeController,
	ratingController *controllers.RatingController,
	authMiddleware *middleware.AuthMiddleware,
) {
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	v1 := router.Group("/api/v1")

	// --- Public Auth routes ---
	auth := v1.Group("/auth")
	{
		auth.POST("/register", authController.Register)
		auth.POST("/login", authController.Login)
	}

	// --- Public directory routes ---
	universities := v1.Group("/universities")
	{
		universities.GET("", universityController.GetAllUniversities)
		universities.GET("/:universityCode", universityController.GetUniversity)

		universities.GET("/:universityCode/courses", courseController.GetCoursesByUniversity)
		universities.GET("/:universityCode/courses/:courseCode", courseController.GetCourse)
		universities.GET("/:universityCode/professors", professorController.GetProfessorsByUniversity)
		universities.GET("/:universityCode/teaching-assistants", taController.GetTAsByUniversity)

		universities.GET("/:universityCode/courses/:courseCode/ratings", ratingController.GetCourseRatings)
	}

	// Attribute registry (public read)
	v1.GET("/rating-attributes", attributeController.GetAttributes)

	// --- Authenticated routes ---
	authenticated := v1.Group("")
	authenticated.Use(authMiddleware.JWTAuth())
	{
		accounts := authenticated.Group("/accounts")
		{
			accounts.GET("/me", accountController.GetProfile)
			accounts.PATCH("/me", accountController.UpdateProfile)
			accounts.GET("/me/suggestions", accountController.GetSuggestions)
		}

		authenticated.POST("/rating-attributes", attributeController.CreateAttribute)
		authenticated.POST("/universities/:universityCode/courses/:courseCode/ratings", ratingController.SubmitRating)

		// Directory writes require the admin permission bit
		adminProtected := authenticated.Group("")
		adminProtected.Use(authMiddleware.PermissionRequired(models.PermAdmin))
		{
			adminProtected.POST("/universities", universityController.CreateUniversity)
			adminProtected.PUT("/universities/:universityCode", universityController.UpdateUniversity)
			adminProtected.DELETE("/universities/:universityCode", universityController.DeleteUniversity)

			adminProtected.POST("/universities/:universityCode/courses", courseController.CreateCourse)
			adminProtected.PUT("/universities/:universityCode/courses/:courseCode", courseController.UpdateCourse)
			adminProtected.DELETE("/universities/:universityCode/courses/:courseCode", courseController.DeleteCourse)

			adminProtected.POST("/universities/:universityCode/professors", professorController.CreateProfessor)
			adminProtected.POST("/universities/:universityCode/teaching-assistants", taController.CreateTA)
		}
	}
}
