package tickets

import (
	"dharma/internal/shared/config"
	"dharma/internal/shared/middleware"

	"github.com/gin-gonic/gin"
)

// SetupTicketRoutes registers all ticket routes
func SetupTicketRoutes(rg *gin.RouterGroup, controller *Controller, cfg *config.Config) {
	tickets := rg.Group("/tickets")
	{
		// Public: opened by QR scan, guarded by the embedded token
		tickets.GET("/:id/view", controller.View) // GET /api/v1/tickets/:id/view?t=<token>
	}

	admin := rg.Group("/admin/tickets")
	admin.Use(middleware.JWTAuthWithConfig(cfg), middleware.RequireAdmin())
	{
		admin.GET("/:id", controller.GetByID)
	}
}
