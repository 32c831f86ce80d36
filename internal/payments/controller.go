package payments

import (
	"net/http"
	"strconv"

	"dharma/internal/shared/utils/response"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

type Controller struct {
	service   Service
	validator *validator.Validate
}

func NewController(service Service) *Controller {
	return &Controller{
		service:   service,
		validator: validator.New(),
	}
}

func (c *Controller) Create(ctx *gin.Context) {
	var req CreatePaymentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}

	if err := c.validator.Struct(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Validation failed", nil, err.Error())
		return
	}

	payment, err := c.service.Create(ctx.Request.Context(), req)
	if err != nil {
		switch err {
		case ErrBookingNotFound:
			response.RespondJSON(ctx, "error", http.StatusNotFound, "Booking not found", nil, nil)
		default:
			response.RespondJSON(ctx, "error", http.StatusInternalServerError, "Failed to create payment", nil, nil)
		}
		return
	}

	response.RespondJSON(ctx, "success", http.StatusCreated, "Payment created successfully", payment, nil)
}

// Webhook receives gateway callbacks. It is unauthenticated; the
// gateway identifies itself through the payment id and txn id pair.
func (c *Controller) Webhook(ctx *gin.Context) {
	var req WebhookRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}

	if err := c.validator.Struct(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Validation failed", nil, err.Error())
		return
	}

	result, err := c.service.HandleWebhook(ctx.Request.Context(), req)
	if err != nil {
		switch err {
		case ErrPaymentNotFound:
			response.RespondJSON(ctx, "error", http.StatusNotFound, "Payment record not found", nil, nil)
		default:
			response.RespondJSON(ctx, "error", http.StatusInternalServerError, "Failed to process webhook", nil, nil)
		}
		return
	}

	message := "Payment " + result.PaymentStatus
	if result.AlreadyConfirmed {
		message = "Already confirmed"
	}

	response.RespondJSON(ctx, "success", http.StatusOK, message, result, nil)
}

func (c *Controller) GetByID(ctx *gin.Context) {
	raw := ctx.Param("id")
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid payment ID", nil, nil)
		return
	}

	payment, err := c.service.GetByID(ctx.Request.Context(), uint(id))
	if err != nil {
		switch err {
		case ErrPaymentNotFound:
			response.RespondJSON(ctx, "error", http.StatusNotFound, "Payment not found", nil, nil)
		default:
			response.RespondJSON(ctx, "error", http.StatusInternalServerError, "Failed to retrieve payment", nil, nil)
		}
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Payment retrieved successfully", payment, nil)
}

func (c *Controller) GetByBooking(ctx *gin.Context) {
	raw := ctx.Param("bookingId")
	bookingID, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid booking ID", nil, nil)
		return
	}

	payments, err := c.service.GetByBooking(ctx.Request.Context(), uint(bookingID))
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusInternalServerError, "Failed to retrieve payments", nil, nil)
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Payments retrieved successfully", payments, nil)
}
