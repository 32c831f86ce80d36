package participants

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

func (c *Controller) Add(ctx *gin.Context) {
	var req AddParticipantRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}

	if err := c.validator.Struct(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Validation failed", nil, err.Error())
		return
	}

	participant, err := c.service.Add(ctx.Request.Context(), req)
	if err != nil {
		switch err {
		case ErrBookingNotFound:
			response.RespondJSON(ctx, "error", http.StatusNotFound, "Booking not found", nil, nil)
		default:
			response.RespondJSON(ctx, "error", http.StatusInternalServerError, "Failed to add participant", nil, nil)
		}
		return
	}

	response.RespondJSON(ctx, "success", http.StatusCreated, "Participant added successfully", participant, nil)
}

func (c *Controller) GetByID(ctx *gin.Context) {
	id, err := parseIDParam(ctx, "id")
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid participant ID", nil, nil)
		return
	}

	participant, err := c.service.GetByID(ctx.Request.Context(), id)
	if err != nil {
		switch err {
		case ErrParticipantNotFound:
			response.RespondJSON(ctx, "error", http.StatusNotFound, "Participant not found", nil, nil)
		default:
			response.RespondJSON(ctx, "error", http.StatusInternalServerError, "Failed to retrieve participant", nil, nil)
		}
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Participant retrieved successfully", participant, nil)
}

func (c *Controller) GetByBooking(ctx *gin.Context) {
	bookingID, err := parseIDParam(ctx, "bookingId")
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid booking ID", nil, nil)
		return
	}

	participants, err := c.service.GetByBooking(ctx.Request.Context(), bookingID)
	if err != nil {
		switch err {
		case ErrBookingNotFound:
			response.RespondJSON(ctx, "error", http.StatusNotFound, "Booking not found", nil, nil)
		default:
			response.RespondJSON(ctx, "error", http.StatusInternalServerError, "Failed to retrieve participants", nil, nil)
		}
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Participants retrieved successfully", participants, nil)
}

func (c *Controller) Delete(ctx *gin.Context) {
	id, err := parseIDParam(ctx, "id")
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid participant ID", nil, nil)
		return
	}

	if err := c.service.Delete(ctx.Request.Context(), id); err != nil {
		switch err {
		case ErrParticipantNotFound:
			response.RespondJSON(ctx, "error", http.StatusNotFound, "Participant not found", nil, nil)
		default:
			response.RespondJSON(ctx, "error", http.StatusInternalServerError, "Failed to delete participant", nil, nil)
		}
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Participant deleted successfully", nil, nil)
}

func parseIDParam(ctx *gin.Context, name string) (uint, error) {
	raw := ctx.Param(name)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}
