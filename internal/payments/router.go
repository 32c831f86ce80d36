package payments

import (
	"dharma/internal/shared/config"
	"dharma/internal/shared/middleware"

	"github.com/gin-gonic/gin"
)

// SetupPaymentRoutes registers all payment routes
func SetupPaymentRoutes(rg *gin.RouterGroup, controller *Controller, cfg *config.Config) {
	payments := rg.Group("/payments")
	{
		// Gateway callback stays unauthenticated
		payments.POST("/webhook", controller.Webhook)
	}

	protected := rg.Group("/payments")
	protected.Use(middleware.JWTAuthWithConfig(cfg))
	{
		protected.POST("", controller.Create)
		protected.GET("/:id", controller.GetByID)
		protected.GET("/booking/:bookingId", controller.GetByBooking)
	}
}
