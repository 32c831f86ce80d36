// api/routes/router.go
package routes

import (
	"net/http"
	"time"

	"dharma/internal/analytics"
	"dharma/internal/auth"
	"dharma/internal/bookings"
	"dharma/internal/parking"
	"dharma/internal/participants"
	"dharma/internal/payments"
	"dharma/internal/shared/config"
	"dharma/internal/shared/database"
	"dharma/internal/slots"
	"dharma/internal/temples"
	"dharma/internal/tickets"

	"github.com/gin-gonic/gin"
)

// Router holds all route dependencies
type Router struct {
	config *config.Config
	db     *database.DB
	sms    bookings.SMSPublisher // nil when the Kafka pipeline is disabled
}

// NewRouter creates a new router instance
func NewRouter(cfg *config.Config, db *database.DB, sms bookings.SMSPublisher) *Router {
	return &Router{
		config: cfg,
		db:     db,
		sms:    sms,
	}
}

// SetupRoutes configures all application routes
func (r *Router) SetupRoutes(engine *gin.Engine) {
	r.setupHealthRoutes(engine)

	api := engine.Group(r.config.GetAPIBasePath())
	{
		r.setupAuthRoutes(api)
		r.setupTempleRoutes(api)
		r.setupSlotRoutes(api)
		r.setupBookingRoutes(api)
		r.setupParticipantRoutes(api)
		r.setupParkingRoutes(api)
		r.setupPaymentAndTicketRoutes(api)
		r.setupAnalyticsRoutes(api)
	}
}

// setupHealthRoutes sets up health check and system status routes
func (r *Router) setupHealthRoutes(engine *gin.Engine) {
	engine.GET("/health", func(c *gin.Context) {
		if err := r.db.HealthCheck(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":    "unhealthy",
				"error":     err.Error(),
				"timestamp": time.Now(),
				"service":   "dharma-backend",
			})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"status":    "healthy",
			"timestamp": time.Now(),
			"service":   "dharma-backend",
		})
	})

	engine.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
			"version": r.config.APIVersion,
		})
	})

	engine.GET("/status", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":      "operational",
			"api_version": r.config.APIVersion,
			"timestamp":   time.Now(),
		})
	})
}

func (r *Router) setupAuthRoutes(rg *gin.RouterGroup) {
	authRepo := auth.NewRepository(r.db.GetPostgreSQL())
	authService := auth.NewService(authRepo, r.config)
	authController := auth.NewController(authService)
	authRouter := auth.NewRouter(authController, r.config)

	authRouter.SetupRoutes(rg)
}

func (r *Router) setupTempleRoutes(rg *gin.RouterGroup) {
	templeRepo := temples.NewRepository(r.db.GetPostgreSQL())
	templeService := temples.NewService(templeRepo)
	templeController := temples.NewController(templeService)

	temples.SetupTempleRoutes(rg, templeController, r.config)
}

func (r *Router) setupSlotRoutes(rg *gin.RouterGroup) {
	slotRepo := slots.NewRepository(r.db.GetPostgreSQL())
	slotService := slots.NewService(slotRepo)
	slotController := slots.NewController(slotService)

	slots.SetupSlotRoutes(rg, slotController, r.config)
}

func (r *Router) setupBookingRoutes(rg *gin.RouterGroup) {
	bookingRepo := bookings.NewRepository(r.db.GetPostgreSQL())
	bookingService := bookings.NewService(bookingRepo, r.sms)
	bookingController := bookings.NewController(bookingService)

	bookings.SetupBookingRoutes(rg, bookingController, r.config)
}

func (r *Router) setupParticipantRoutes(rg *gin.RouterGroup) {
	participantRepo := participants.NewRepository(r.db.GetPostgreSQL())
	participantService := participants.NewService(participantRepo)
	participantController := participants.NewController(participantService)

	participants.SetupParticipantRoutes(rg, participantController, r.config)
}

func (r *Router) setupParkingRoutes(rg *gin.RouterGroup) {
	parkingRepo := parking.NewRepository(r.db.GetPostgreSQL())
	parkingService := parking.NewService(parkingRepo)
	parkingController := parking.NewController(parkingService)

	parking.SetupParkingRoutes(rg, parkingController, r.config)
}

// setupPaymentAndTicketRoutes wires tickets first so the payment
// webhook can issue them on confirmation.
func (r *Router) setupPaymentAndTicketRoutes(rg *gin.RouterGroup) {
	ticketRepo := tickets.NewRepository(r.db.GetPostgreSQL())
	ticketService := tickets.NewService(ticketRepo, r.config)
	ticketController := tickets.NewController(ticketService)

	tickets.SetupTicketRoutes(rg, ticketController, r.config)

	paymentRepo := payments.NewRepository(r.db.GetPostgreSQL())
	paymentService := payments.NewService(paymentRepo, ticketService, r.sms)
	paymentController := payments.NewController(paymentService)

	payments.SetupPaymentRoutes(rg, paymentController, r.config)
}

func (r *Router) setupAnalyticsRoutes(rg *gin.RouterGroup) {
	analyticsRepo := analytics.NewRepository(r.db.GetPostgreSQL())
	analyticsService := analytics.NewService(analyticsRepo)
	analyticsController := analytics.NewController(analyticsService)

	analytics.SetupAnalyticsRoutes(rg, analyticsController, r.config)
}
