package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/tomascl/horarium/internal/app/controllers"
	"github.com/tomascl/horarium/internal/app/models"
	"github.com/tomascl/horarium/internal/app/models/dto"
	"github.com/tomascl/horarium/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	catalogController *controllers.CatalogController,
	scheduleController *controllers.ScheduleController,
	appealController *controllers.AppealController,
	authMiddleware *middleware.AuthMiddleware,
) {
	// API version group
	v1 := router.Group("/api/v1")

	// --- Public Auth routes ---
	auth := v1.Group("/auth")
	{
		auth.POST("/register", authController.Register)
		auth.POST("/login", authController.Login)
	}

	// --- Authenticated Routes Group ---
	authenticated := v1.Group("")
	authenticated.Use(authMiddleware.JWTAuth())
	{
		authenticated.GET("/auth/profile", authController.GetProfile)

		// Catalog routes (read-only)
		catalog := authenticated.Group("/catalog")
		{
			catalog.GET("/subjects", catalogController.GetAllSubjects)
			catalog.GET("/subjects/:sku", catalogController.GetSubjectBySku)
		}

		// Schedule routes (student editing workflow)
		schedule := authenticated.Group("/schedule")
		{
			schedule.GET("", scheduleController.GetSchedule)
			schedule.PUT("", scheduleController.SaveSchedule)
			schedule.POST("/check", scheduleController.CheckCandidate)
			schedule.POST("/state", scheduleController.DescribeWorking)
			schedule.POST("/grid", scheduleController.GetGrid)
		}

		// Appeal routes
		appeals := authenticated.Group("/appeals")
		{
			appeals.POST("/preview", appealController.PreviewAppeals)
			appeals.POST("", appealController.SubmitAppeals)
			appeals.GET("", appealController.GetOwnAppeals)

			// Advisor-only review routes
			appealsAdvisorProtected := appeals.Group("")
			appealsAdvisorProtected.Use(authMiddleware.RoleRequired(models.RoleAdvisor))
			{
				appealsAdvisorProtected.GET("/all", appealController.GetAllAppeals)
				appealsAdvisorProtected.PATCH("/:id/status", appealController.UpdateAppealStatus)
			}
		}
	}

	// Health check endpoint (public)
	v1.GET("/health", func(c *gin.Context) {
		c.JSON(200, dto.APIResponse{
			Data: gin.H{"status": "ok"},
		})
	})

	// Swagger routes are set up in bootstrap.go already
}
