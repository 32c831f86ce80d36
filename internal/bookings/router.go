package bookings

import (
	"dharma/internal/shared/config"
	"dharma/internal/shared/middleware"

	"github.com/gin-gonic/gin"
)

// SetupBookingRoutes registers all booking routes
func SetupBookingRoutes(rg *gin.RouterGroup, controller *Controller, cfg *config.Config) {
	bookings := rg.Group("/bookings")
	bookings.Use(middleware.JWTAuthWithConfig(cfg))
	{
		bookings.POST("", controller.CreateOnline)           // POST /api/v1/bookings
		bookings.GET("/:id", controller.GetByID)             // GET /api/v1/bookings/:id
		bookings.GET("/user/:userId", controller.GetByUser)  // GET /api/v1/bookings/user/:userId
	}

	admin := rg.Group("/admin/bookings")
	admin.Use(middleware.JWTAuthWithConfig(cfg), middleware.RequireAdmin())
	{
		admin.GET("", controller.GetAll)         // GET /api/v1/admin/bookings
		admin.POST("/kiosk", controller.CreateKiosk)
		admin.PUT("/:id", controller.Update)     // PUT /api/v1/admin/bookings/:id
		admin.DELETE("/:id", controller.Delete)  // DELETE /api/v1/admin/bookings/:id
	}
}
