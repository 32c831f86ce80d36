package analytics

import (
	"dharma/internal/shared/config"
	"dharma/internal/shared/middleware"

	"github.com/gin-gonic/gin"
)

// SetupAnalyticsRoutes registers all analytics routes
func SetupAnalyticsRoutes(rg *gin.RouterGroup, controller *Controller, cfg *config.Config) {
	admin := rg.Group("/admin/analytics")
	admin.Use(middleware.JWTAuthWithConfig(cfg), middleware.RequireAdmin())
	{
		admin.GET("", controller.GetGlobal)                    // GET /api/v1/admin/analytics
		admin.GET("/temples/:templeId", controller.GetByTemple) // GET /api/v1/admin/analytics/temples/:templeId
	}
}
