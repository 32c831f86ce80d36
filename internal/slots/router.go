package slots

import (
	"dharma/internal/shared/config"
	"dharma/internal/shared/middleware"

	"github.com/gin-gonic/gin"
)

// SetupSlotRoutes registers all slot routes
func SetupSlotRoutes(rg *gin.RouterGroup, controller *Controller, cfg *config.Config) {
	// Public browsing routes
	slots := rg.Group("/slots")
	{
		slots.GET("", controller.List)        // GET /api/v1/slots?temple_id=&date=
		slots.GET("/:id", controller.GetByID) // GET /api/v1/slots/:id
	}

	// Admin management routes
	admin := rg.Group("/admin/slots")
	admin.Use(middleware.JWTAuthWithConfig(cfg), middleware.RequireAdmin())
	{
		admin.POST("", controller.Create)       // POST /api/v1/admin/slots
		admin.PUT("/:id", controller.Update)    // PUT /api/v1/admin/slots/:id
		admin.DELETE("/:id", controller.Delete) // DELETE /api/v1/admin/slots/:id
	}
}
