package bookings

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

func (c *Controller) CreateOnline(ctx *gin.Context) {
	var req CreateBookingRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}

	if err := c.validator.Struct(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Validation failed", nil, err.Error())
		return
	}

	booking, err := c.service.CreateOnline(ctx.Request.Context(), req)
	if err != nil {
		c.respondError(ctx, err, "Failed to create booking")
		return
	}

	response.RespondJSON(ctx, "success", http.StatusCreated, "Booking created successfully", booking, nil)
}

func (c *Controller) CreateKiosk(ctx *gin.Context) {
	var req KioskBookingRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}

	if err := c.validator.Struct(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Validation failed", nil, err.Error())
		return
	}

	booking, err := c.service.CreateKiosk(ctx.Request.Context(), req)
	if err != nil {
		c.respondError(ctx, err, "Failed to create kiosk booking")
		return
	}

	response.RespondJSON(ctx, "success", http.StatusCreated, "Kiosk booking created successfully", booking, nil)
}

func (c *Controller) GetByID(ctx *gin.Context) {
	id, err := parseIDParam(ctx, "id")
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid booking ID", nil, nil)
		return
	}

	booking, err := c.service.GetByID(ctx.Request.Context(), id)
	if err != nil {
		c.respondError(ctx, err, "Failed to retrieve booking")
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Booking retrieved successfully", booking, nil)
}

func (c *Controller) GetAll(ctx *gin.Context) {
	bookings, err := c.service.GetAll(ctx.Request.Context())
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusInternalServerError, "Failed to retrieve bookings", nil, nil)
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Bookings retrieved successfully", bookings, nil)
}

func (c *Controller) GetByUser(ctx *gin.Context) {
	userID := ctx.Param("userId")

	bookings, err := c.service.GetByUser(ctx.Request.Context(), userID)
	if err != nil {
		c.respondError(ctx, err, "Failed to retrieve bookings")
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Bookings retrieved successfully", bookings, nil)
}

func (c *Controller) Update(ctx *gin.Context) {
	id, err := parseIDParam(ctx, "id")
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid booking ID", nil, nil)
		return
	}

	var req UpdateBookingRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}

	if err := c.validator.Struct(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Validation failed", nil, err.Error())
		return
	}

	booking, err := c.service.Update(ctx.Request.Context(), id, req)
	if err != nil {
		c.respondError(ctx, err, "Failed to update booking")
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Booking updated successfully", booking, nil)
}

func (c *Controller) Delete(ctx *gin.Context) {
	id, err := parseIDParam(ctx, "id")
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid booking ID", nil, nil)
		return
	}

	if err := c.service.Delete(ctx.Request.Context(), id); err != nil {
		c.respondError(ctx, err, "Failed to delete booking")
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Booking deleted (cancelled) successfully", nil, nil)
}

func (c *Controller) respondError(ctx *gin.Context, err error, fallback string) {
	switch err {
	case ErrBookingNotFound:
		response.RespondJSON(ctx, "error", http.StatusNotFound, "Booking not found", nil, nil)
	case ErrUserNotFound:
		response.RespondJSON(ctx, "error", http.StatusNotFound, "User not found", nil, nil)
	case ErrTempleNotFound:
		response.RespondJSON(ctx, "error", http.StatusNotFound, "Temple not found", nil, nil)
	case ErrSlotNotFound:
		response.RespondJSON(ctx, "error", http.StatusNotFound, "Slot not found", nil, nil)
	case ErrSlotTempleMismatch:
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Slot does not belong to the given temple", nil, nil)
	default:
		response.RespondJSON(ctx, "error", http.StatusInternalServerError, fallback, nil, nil)
	}
}

func parseIDParam(ctx *gin.Context, name string) (uint, error) {
	raw := ctx.Param(name)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}
