package slots

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
	var req CreateSlotRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}

	if err := c.validator.Struct(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Validation failed", nil, err.Error())
		return
	}

	slot, err := c.service.Create(ctx.Request.Context(), req)
	if err != nil {
		c.respondError(ctx, err, "Failed to create slot")
		return
	}

	response.RespondJSON(ctx, "success", http.StatusCreated, "Slot created successfully", slot.ToResponse(), nil)
}

func (c *Controller) GetByID(ctx *gin.Context) {
	id, err := parseIDParam(ctx, "id")
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid slot ID", nil, nil)
		return
	}

	slot, err := c.service.GetByID(ctx.Request.Context(), id)
	if err != nil {
		c.respondError(ctx, err, "Failed to retrieve slot")
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Slot retrieved successfully", slot.ToResponse(), nil)
}

func (c *Controller) List(ctx *gin.Context) {
	var filters ListFilters

	if raw := ctx.Query("temple_id"); raw != "" {
		parsed, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid temple_id", nil, nil)
			return
		}
		templeID := uint(parsed)
		filters.TempleID = &templeID
	}

	if raw := ctx.Query("date"); raw != "" {
		date := raw
		filters.Date = &date
	}

	slots, err := c.service.List(ctx.Request.Context(), filters)
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusInternalServerError, "Failed to retrieve slots", nil, nil)
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Slots retrieved successfully", ToResponses(slots), nil)
}

func (c *Controller) Update(ctx *gin.Context) {
	id, err := parseIDParam(ctx, "id")
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid slot ID", nil, nil)
		return
	}

	var req UpdateSlotRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}

	if err := c.validator.Struct(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Validation failed", nil, err.Error())
		return
	}

	slot, err := c.service.Update(ctx.Request.Context(), id, req)
	if err != nil {
		c.respondError(ctx, err, "Failed to update slot")
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Slot updated successfully", slot.ToResponse(), nil)
}

func (c *Controller) Delete(ctx *gin.Context) {
	id, err := parseIDParam(ctx, "id")
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid slot ID", nil, nil)
		return
	}

	if err := c.service.Delete(ctx.Request.Context(), id); err != nil {
		c.respondError(ctx, err, "Failed to delete slot")
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Slot deleted successfully", nil, nil)
}

func (c *Controller) respondError(ctx *gin.Context, err error, fallback string) {
	switch err {
	case ErrTempleNotFound:
		response.RespondJSON(ctx, "error", http.StatusNotFound, "Temple not found", nil, nil)
	case ErrSlotNotFound:
		response.RespondJSON(ctx, "error", http.StatusNotFound, "Slot not found", nil, nil)
	case ErrInvalidRange, ErrOverlap, ErrInvalidReservation, ErrInvalidRemaining, ErrInvalidCapacity:
		response.RespondJSON(ctx, "error", http.StatusBadRequest, err.Error(), nil, nil)
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
