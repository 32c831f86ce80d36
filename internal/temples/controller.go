package temples

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
	var req CreateTempleRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}

	if err := c.validator.Struct(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Validation failed", nil, err.Error())
		return
	}

	temple, err := c.service.Create(ctx.Request.Context(), req)
	if err != nil {
		switch err {
		case ErrTempleAlreadyExists:
			response.RespondJSON(ctx, "error", http.StatusConflict, "Temple with this name already exists", nil, nil)
		default:
			response.RespondJSON(ctx, "error", http.StatusInternalServerError, "Failed to create temple", nil, nil)
		}
		return
	}

	response.RespondJSON(ctx, "success", http.StatusCreated, "Temple created successfully", temple, nil)
}

func (c *Controller) GetByID(ctx *gin.Context) {
	id, err := parseIDParam(ctx, "id")
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid temple ID", nil, nil)
		return
	}

	temple, err := c.service.GetByID(ctx.Request.Context(), id)
	if err != nil {
		switch err {
		case ErrTempleNotFound:
			response.RespondJSON(ctx, "error", http.StatusNotFound, "Temple not found", nil, nil)
		default:
			response.RespondJSON(ctx, "error", http.StatusInternalServerError, "Failed to retrieve temple", nil, nil)
		}
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Temple retrieved successfully", temple, nil)
}

func (c *Controller) GetAll(ctx *gin.Context) {
	temples, err := c.service.GetAll(ctx.Request.Context())
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusInternalServerError, "Failed to retrieve temples", nil, nil)
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Temples retrieved successfully", temples, nil)
}

func (c *Controller) Update(ctx *gin.Context) {
	id, err := parseIDParam(ctx, "id")
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid temple ID", nil, nil)
		return
	}

	var req UpdateTempleRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}

	if err := c.validator.Struct(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Validation failed", nil, err.Error())
		return
	}

	temple, err := c.service.Update(ctx.Request.Context(), id, req)
	if err != nil {
		switch err {
		case ErrTempleNotFound:
			response.RespondJSON(ctx, "error", http.StatusNotFound, "Temple not found", nil, nil)
		case ErrTempleAlreadyExists:
			response.RespondJSON(ctx, "error", http.StatusConflict, "Temple with this name already exists", nil, nil)
		default:
			response.RespondJSON(ctx, "error", http.StatusInternalServerError, "Failed to update temple", nil, nil)
		}
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Temple updated successfully", temple, nil)
}

func (c *Controller) Delete(ctx *gin.Context) {
	id, err := parseIDParam(ctx, "id")
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid temple ID", nil, nil)
		return
	}

	if err := c.service.Delete(ctx.Request.Context(), id); err != nil {
		switch err {
		case ErrTempleNotFound:
			response.RespondJSON(ctx, "error", http.StatusNotFound, "Temple not found", nil, nil)
		default:
			response.RespondJSON(ctx, "error", http.StatusInternalServerError, "Failed to delete temple", nil, nil)
		}
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Temple deleted successfully", nil, nil)
}

func parseIDParam(ctx *gin.Context, name string) (uint, error) {
	raw := ctx.Param(name)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}
