package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"talentmatch_backend/internal/handlers"
)

// RegisterRoutes registers every HTTP route.
func RegisterRoutes(ginRouter *gin.Engine, appHandlers *handlers.AppHandlers) {
	ginRouter.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := ginRouter.Group("/api/v1")
	{
		appHandlers.Matching.RegisterRoutes(api)
		appHandlers.Search.RegisterRoutes(api)
	}
}
