package parking

import (
	"dharma/internal/shared/config"
	"dharma/internal/shared/middleware"

	"github.com/gin-gonic/gin"
)

// SetupParkingRoutes registers all parking routes
func SetupParkingRoutes(rg *gin.RouterGroup, controller *Controller, cfg *config.Config) {
	// Public availability routes
	parking := rg.Group("/parking")
	{
		parking.GET("/zones", controller.GetZones)                          // GET /api/v1/parking/zones?temple_id=1
		parking.GET("/zones/:id", controller.GetZoneByID)                   // GET /api/v1/parking/zones/:id
		parking.GET("/temples/:templeId/zones", controller.GetZonesByTemple) // GET /api/v1/parking/temples/:templeId/zones
		parking.GET("/zones/:id/slots", controller.GetSlotsByZone)
	}

	// Admin management routes
	admin := rg.Group("/admin/parking")
	admin.Use(middleware.JWTAuthWithConfig(cfg), middleware.RequireAdmin())
	{
		admin.POST("/zones", controller.CreateZone)
		admin.PUT("/zones/:id", controller.UpdateZone)
		admin.DELETE("/zones/:id", controller.DeleteZone)
		admin.POST("/slots", controller.CreateSlot)
		admin.PUT("/slots/:id", controller.UpdateSlot)
		admin.DELETE("/slots/:id", controller.DeleteSlot)
	}
}
