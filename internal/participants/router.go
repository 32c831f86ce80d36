package participants

import (
	"dharma/internal/shared/config"
	"dharma/internal/shared/middleware"

	"github.com/gin-gonic/gin"
)

// SetupParticipantRoutes registers all participant routes
func SetupParticipantRoutes(rg *gin.RouterGroup, controller *Controller, cfg *config.Config) {
	participants := rg.Group("/participants")
	participants.Use(middleware.JWTAuthWithConfig(cfg))
	{
		participants.POST("", controller.Add)                              // POST /api/v1/participants
		participants.GET("/:id", controller.GetByID)                       // GET /api/v1/participants/:id
		participants.GET("/booking/:bookingId", controller.GetByBooking)   // GET /api/v1/participants/booking/:bookingId
		participants.DELETE("/:id", controller.Delete)                     // DELETE /api/v1/participants/:id
	}
}
