package tickets

import (
	"net/http"

	"dharma/internal/shared/utils/response"

	"github.com/gin-gonic/gin"
)

type Controller struct {
	service Service
}

func NewController(service Service) *Controller {
	return &Controller{service: service}
}

// View serves the scanner/frontend payload. The token travels as the
// `t` query parameter, matching the QR payload URL.
func (c *Controller) View(ctx *gin.Context) {
	id := ctx.Param("id")
	token := ctx.Query("t")

	view, err := c.service.View(ctx.Request.Context(), id, token)
	if err != nil {
		switch err {
		case ErrTicketNotFound:
			response.RespondJSON(ctx, "error", http.StatusNotFound, "Ticket not found", nil, nil)
		case ErrInvalidToken:
			response.RespondJSON(ctx, "error", http.StatusForbidden, "Invalid token", nil, nil)
		default:
			response.RespondJSON(ctx, "error", http.StatusInternalServerError, "Failed to retrieve ticket", nil, nil)
		}
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Ticket retrieved successfully", view, nil)
}

func (c *Controller) GetByID(ctx *gin.Context) {
	ticket, err := c.service.GetByID(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		switch err {
		case ErrTicketNotFound:
			response.RespondJSON(ctx, "error", http.StatusNotFound, "Ticket not found", nil, nil)
		default:
			response.RespondJSON(ctx, "error", http.StatusInternalServerError, "Failed to retrieve ticket", nil, nil)
		}
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Ticket retrieved successfully", ticket, nil)
}
