package parking

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

func (c *Controller) CreateZone(ctx *gin.Context) {
	var req CreateZoneRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}

	if err := c.validator.Struct(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Validation failed", nil, err.Error())
		return
	}

	zone, err := c.service.CreateZone(ctx.Request.Context(), req)
	if err != nil {
		switch err {
		case ErrTempleNotFound:
			response.RespondJSON(ctx, "error", http.StatusNotFound, "Temple not found", nil, nil)
		default:
			response.RespondJSON(ctx, "error", http.StatusInternalServerError, "Failed to create parking zone", nil, nil)
		}
		return
	}

	response.RespondJSON(ctx, "success", http.StatusCreated, "Parking zone created successfully", zone, nil)
}

func (c *Controller) GetZoneByID(ctx *gin.Context) {
	id, err := parseIDParam(ctx, "id")
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid parking zone ID", nil, nil)
		return
	}

	zone, err := c.service.GetZoneByID(ctx.Request.Context(), id)
	if err != nil {
		switch err {
		case ErrZoneNotFound:
			response.RespondJSON(ctx, "error", http.StatusNotFound, "Parking zone not found", nil, nil)
		default:
			response.RespondJSON(ctx, "error", http.StatusInternalServerError, "Failed to retrieve parking zone", nil, nil)
		}
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Parking zone retrieved successfully", zone, nil)
}

func (c *Controller) GetZones(ctx *gin.Context) {
	if raw := ctx.Query("temple_id"); raw != "" {
		templeID, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid temple_id filter", nil, nil)
			return
		}

		zones, err := c.service.GetZonesByTemple(ctx.Request.Context(), uint(templeID))
		if err != nil {
			response.RespondJSON(ctx, "error", http.StatusInternalServerError, "Failed to retrieve parking zones", nil, nil)
			return
		}

		response.RespondJSON(ctx, "success", http.StatusOK, "Parking zones retrieved successfully", zones, nil)
		return
	}

	zones, err := c.service.GetZones(ctx.Request.Context())
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusInternalServerError, "Failed to retrieve parking zones", nil, nil)
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Parking zones retrieved successfully", zones, nil)
}

func (c *Controller) GetZonesByTemple(ctx *gin.Context) {
	templeID, err := parseIDParam(ctx, "templeId")
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid temple ID", nil, nil)
		return
	}

	zones, err := c.service.GetZonesByTemple(ctx.Request.Context(), templeID)
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusInternalServerError, "Failed to retrieve parking zones", nil, nil)
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Parking zones retrieved successfully", zones, nil)
}

func (c *Controller) UpdateZone(ctx *gin.Context) {
	id, err := parseIDParam(ctx, "id")
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid parking zone ID", nil, nil)
		return
	}

	var req UpdateZoneRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}

	if err := c.validator.Struct(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Validation failed", nil, err.Error())
		return
	}

	zone, err := c.service.UpdateZone(ctx.Request.Context(), id, req)
	if err != nil {
		switch err {
		case ErrZoneNotFound:
			response.RespondJSON(ctx, "error", http.StatusNotFound, "Parking zone not found", nil, nil)
		default:
			response.RespondJSON(ctx, "error", http.StatusInternalServerError, "Failed to update parking zone", nil, nil)
		}
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Parking zone updated successfully", zone, nil)
}

func (c *Controller) DeleteZone(ctx *gin.Context) {
	id, err := parseIDParam(ctx, "id")
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid parking zone ID", nil, nil)
		return
	}

	if err := c.service.DeleteZone(ctx.Request.Context(), id); err != nil {
		switch err {
		case ErrZoneNotFound:
			response.RespondJSON(ctx, "error", http.StatusNotFound, "Parking zone not found", nil, nil)
		default:
			response.RespondJSON(ctx, "error", http.StatusInternalServerError, "Failed to delete parking zone", nil, nil)
		}
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Parking zone deleted successfully", nil, nil)
}

func (c *Controller) CreateSlot(ctx *gin.Context) {
	var req CreateParkingSlotRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}

	if err := c.validator.Struct(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Validation failed", nil, err.Error())
		return
	}

	slot, err := c.service.CreateSlot(ctx.Request.Context(), req)
	if err != nil {
		switch err {
		case ErrZoneNotFound:
			response.RespondJSON(ctx, "error", http.StatusNotFound, "Parking zone not found", nil, nil)
		default:
			response.RespondJSON(ctx, "error", http.StatusInternalServerError, "Failed to create parking slot", nil, nil)
		}
		return
	}

	response.RespondJSON(ctx, "success", http.StatusCreated, "Parking slot created successfully", slot, nil)
}

func (c *Controller) GetSlotsByZone(ctx *gin.Context) {
	zoneID, err := parseIDParam(ctx, "id")
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid parking zone ID", nil, nil)
		return
	}

	slots, err := c.service.GetSlotsByZone(ctx.Request.Context(), zoneID)
	if err != nil {
		switch err {
		case ErrZoneNotFound:
			response.RespondJSON(ctx, "error", http.StatusNotFound, "Parking zone not found", nil, nil)
		default:
			response.RespondJSON(ctx, "error", http.StatusInternalServerError, "Failed to retrieve parking slots", nil, nil)
		}
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Parking slots retrieved successfully", slots, nil)
}

func (c *Controller) UpdateSlot(ctx *gin.Context) {
	id, err := parseIDParam(ctx, "id")
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid parking slot ID", nil, nil)
		return
	}

	var req UpdateParkingSlotRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}

	if err := c.validator.Struct(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Validation failed", nil, err.Error())
		return
	}

	slot, err := c.service.UpdateSlot(ctx.Request.Context(), id, req)
	if err != nil {
		switch err {
		case ErrParkingSlotNotFound:
			response.RespondJSON(ctx, "error", http.StatusNotFound, "Parking slot not found", nil, nil)
		default:
			response.RespondJSON(ctx, "error", http.StatusInternalServerError, "Failed to update parking slot", nil, nil)
		}
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Parking slot updated successfully", slot, nil)
}

func (c *Controller) DeleteSlot(ctx *gin.Context) {
	id, err := parseIDParam(ctx, "id")
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid parking slot ID", nil, nil)
		return
	}

	if err := c.service.DeleteSlot(ctx.Request.Context(), id); err != nil {
		switch err {
		case ErrParkingSlotNotFound:
			response.RespondJSON(ctx, "error", http.StatusNotFound, "Parking slot not found", nil, nil)
		default:
			response.RespondJSON(ctx, "error", http.StatusInternalServerError, "Failed to delete parking slot", nil, nil)
		}
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Parking slot deleted successfully", nil, nil)
}

func parseIDParam(ctx *gin.Context, name string) (uint, error) {
	raw := ctx.Param(name)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}
