package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"operations_backend/internal/operations/service"
	"operations_backend/internal/operations/transport"
	"operations_backend/platform/apperr"
	"operations_backend/platform/httpkit"
	"operations_backend/platform/validator"
)

// BasePath is the collection path for operations.
const BasePath = "/domain-request"

// Handler handles HTTP requests for operations.
type Handler struct {
	svc *service.Service
	val *validator.Validator
}

const (
	msgInvalidRequest   = "invalid request"
	msgValidationFailed = "validation failed"
	msgNotFound         = "operation not found"
)

// New creates a new operations handler.
func New(svc *service.Service, val *validator.Validator) *Handler {
	return &Handler{svc: svc, val: val}
}

// RegisterRoutes mounts the operation routes on rg.
func (h *Handler) RegisterRoutes(rg gin.IRoutes) {
	rg.GET(BasePath, h.List)
	rg.GET(BasePath+"/:id", h.GetByID)
	rg.POST(BasePath, h.Create)
	rg.DELETE(BasePath+"/:id", h.Delete)
}

// List returns every stored operation.
// GET /domain-request
func (h *Handler) List(c *gin.Context) {
	httpkit.OK(c, h.svc.List(c.Request.Context()))
}

// GetByID returns a single operation.
// GET /domain-request/:id
func (h *Handler) GetByID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	result, err := h.svc.GetByID(c.Request.Context(), id)
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, result)
}

// Create validates and stores a new operation.
// POST /domain-request
func (h *Handler) Create(c *gin.Context) {
	var req transport.CreateOperationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.HandleError(c, apperr.BadRequest(msgInvalidRequest).WithDetails(err.Error()))
		return
	}
	if err := h.val.Struct(req); err != nil {
		httpkit.HandleError(c, apperr.Validation(msgValidationFailed).WithDetails(validator.Fields(err)))
		return
	}

	result, err := h.svc.Create(c.Request.Context(), req)
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.Created(c, fmt.Sprintf("%s/%d", BasePath, result.ID), result)
}

// Delete removes every operation with the given ID.
// DELETE /domain-request/:id
func (h *Handler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if httpkit.HandleError(c, h.svc.Delete(c.Request.Context(), id)) {
		return
	}
	httpkit.NoContent(c, http.StatusOK)
}

// parseID reads the integer :id parameter. Non-integer IDs can never match a
// stored operation, so they are answered with 404.
func parseID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		httpkit.HandleError(c, apperr.NotFound(msgNotFound))
		return 0, false
	}
	return id, true
}
