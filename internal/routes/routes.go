package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tconnect_backend/internal/handlers"
)

// RegisterRoutes mounts every HTTP route under /api/v1.
func RegisterRoutes(ginRouter *gin.Engine, appHandlers *handlers.AppHandlers) {
	ginRouter.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := ginRouter.Group("/api/v1")
	{
		appHandlers.AuthHandler.RegisterRoutes(api)
		appHandlers.JobHandler.RegisterRoutes(api)
		appHandlers.InternshipHandler.RegisterRoutes(api)
		appHandlers.ApplicationHandler.RegisterRoutes(api)
		appHandlers.SavedHandler.RegisterRoutes(api)
		appHandlers.ProfileHandler.RegisterRoutes(api)
		appHandlers.FreelancerHandler.RegisterRoutes(api)
		appHandlers.CourseHandler.RegisterRoutes(api)
		appHandlers.InterviewHandler.RegisterRoutes(api)
	}
}
