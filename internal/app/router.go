package app

import (
	"traininghub_backend/internal/config"
	"traininghub_backend/internal/middleware"
	"traininghub_backend/internal/model"
	"traininghub_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, repos *repositories, cfg *config.Config) {
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/metrics", monitoring.PrometheusHandler())

	// Public routes
	public := router.Group("/api")
	{
		public.GET("/health", c.health.HealthCheck)
		public.POST("/register", c.auth.Register)
		public.POST("/login", c.auth.Login)
	}

	// Authenticated employee routes
	authGroup := router.Group("/api")
	authGroup.Use(middleware.AuthMiddleware(cfg), middleware.ActivityMiddleware(repos.user))
	{
		authGroup.GET("/profile", c.auth.GetProfile)

		authGroup.GET("/assessments", c.assessment.ListForEmployee)
		authGroup.GET("/assessments/:id/questions", c.assessment.QuestionsForEmployee)
		authGroup.POST("/assessments/:id/submit", c.submission.Submit)
		authGroup.GET("/assessments/:id/result", c.submission.GetMyResult)
		authGroup.GET("/submissions/my", c.submission.ListMine)
	}

	// Business staff routes (admins pass the role gate too)
	business := router.Group("/api/business")
	business.Use(
		middleware.AuthMiddleware(cfg),
		middleware.ActivityMiddleware(repos.user),
		middleware.RoleMiddleware(model.Business, model.Instructor),
	)
	{
		business.POST("/assessment-types", c.assessmentType.Create)
		business.GET("/assessment-types", c.assessmentType.List)
		business.GET("/assessment-types/:id", c.assessmentType.Get)
		business.PUT("/assessment-types/:id", c.assessmentType.Update)
		business.DELETE("/assessment-types/:id", c.assessmentType.Delete)

		business.POST("/assessments", c.assessment.Create)
		business.GET("/assessments", c.assessment.List)
		business.GET("/assessments/:id", c.assessment.Get)
		business.PUT("/assessments/:id", c.assessment.Update)
		business.PATCH("/assessments/:id/deactivate", c.assessment.Deactivate)

		business.POST("/assessments/:id/questions", c.assessment.CreateQuestion)
		business.GET("/assessments/:id/questions", c.assessment.ListQuestions)
		business.PUT("/questions/:questionId", c.assessment.UpdateQuestion)
		business.DELETE("/questions/:questionId", c.assessment.DeleteQuestion)

		business.GET("/assessments/:id/submissions", c.submission.ListByAssessment)
		business.GET("/submissions/:submissionId", c.submission.GetDetail)

		business.GET("/statistics", c.statistics.CompanyStatistics)

		business.POST("/departments", c.company.CreateDepartment)
		business.GET("/departments", c.company.ListDepartments)
		business.DELETE("/departments/:id", c.company.DeleteDepartment)

		business.GET("/employees", c.company.ListEmployees)
		business.PATCH("/employees/:id", c.company.UpdateEmployee)
	}

	// Admin routes
	admin := router.Group("/api/admin")
	admin.Use(
		middleware.AuthMiddleware(cfg),
		middleware.ActivityMiddleware(repos.user),
		middleware.RoleMiddleware(model.Admin),
	)
	{
		admin.POST("/companies", c.company.Create)
		admin.GET("/companies", c.company.List)
		admin.GET("/companies/:id", c.company.Get)
		admin.PUT("/companies/:id", c.company.Update)
	}
}
