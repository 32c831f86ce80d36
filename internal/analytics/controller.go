package analytics

import (
	"net/http"
	"strconv"

	"dharma/internal/shared/utils/response"

	"github.com/gin-gonic/gin"
)

type Controller struct {
	service Service
}

func NewController(service Service) *Controller {
	return &Controller{service: service}
}

func (c *Controller) GetGlobal(ctx *gin.Context) {
	analytics, err := c.service.GetGlobalAnalytics(ctx.Request.Context())
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusInternalServerError, "Failed to retrieve analytics", nil, nil)
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Analytics retrieved successfully", analytics, nil)
}

func (c *Controller) GetByTemple(ctx *gin.Context) {
	raw := ctx.Param("templeId")
	templeID, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid temple ID", nil, nil)
		return
	}

	analytics, err := c.service.GetTempleAnalytics(ctx.Request.Context(), uint(templeID))
	if err != nil {
		switch err {
		case ErrTempleNotFound:
			response.RespondJSON(ctx, "error", http.StatusNotFound, "Temple not found", nil, nil)
		default:
			response.RespondJSON(ctx, "error", http.StatusInternalServerError, "Failed to retrieve analytics", nil, nil)
		}
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Analytics retrieved successfully", analytics, nil)
}
