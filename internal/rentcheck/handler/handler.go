// Package handler exposes the rent check over HTTP.
package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"rentcheck_backend/internal/rentcheck/service"
	"rentcheck_backend/internal/rentcheck/transport"
	"rentcheck_backend/platform/httpkit"
)

// Handler handles HTTP requests for rent assessments.
type Handler struct {
	svc *service.Service
}

const msgInvalidRequest = "invalid request"

// New creates a new rent check handler.
func New(svc *service.Service) *Handler {
	return &Handler{svc: svc}
}

// Assess scores one rental unit.
// POST /api/v1/rent-check/assess
func (h *Handler) Assess(c *gin.Context) {
	var req transport.AssessRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, err.Error())
		return
	}

	result, err := h.svc.Assess(c.Request.Context(), req)
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, result)
}

// AssessBatch scores several rental units.
// POST /api/v1/rent-check/batch
func (h *Handler) AssessBatch(c *gin.Context) {
	var req transport.BatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, err.Error())
		return
	}

	result, err := h.svc.AssessBatch(c.Request.Context(), req)
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, result)
}

// Rules describes the active rule set.
// GET /api/v1/rent-check/rules
func (h *Handler) Rules(c *gin.Context) {
	httpkit.OK(c, h.svc.Rules())
}
