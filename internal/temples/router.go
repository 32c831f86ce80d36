package temples

import (
	"dharma/internal/shared/config"
	"dharma/internal/shared/middleware"

	"github.com/gin-gonic/gin"
)

// SetupTempleRoutes registers all temple routes
func SetupTempleRoutes(rg *gin.RouterGroup, controller *Controller, cfg *config.Config) {
	// Public browsing routes
	temples := rg.Group("/temples")
	{
		temples.GET("", controller.GetAll)      // GET /api/v1/temples
		temples.GET("/:id", controller.GetByID) // GET /api/v1/temples/:id
	}

	// Admin management routes
	admin := rg.Group("/admin/temples")
	admin.Use(middleware.JWTAuthWithConfig(cfg), middleware.RequireAdmin())
	{
		admin.POST("", controller.Create)       // POST /api/v1/admin/temples
		admin.PUT("/:id", controller.Update)    // PUT /api/v1/admin/temples/:id
		admin.DELETE("/:id", controller.Delete) // DELETE /api/v1/admin/temples/:id
	}
}
