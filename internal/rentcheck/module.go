// Package rentcheck provides the rent check bounded context module.
// It scores rental units against the points system and reports the maximum rent.
package rentcheck

import (
	"context"

	apphttp "rentcheck_backend/internal/http"
	"rentcheck_backend/internal/rentcheck/handler"
	"rentcheck_backend/internal/rentcheck/service"
	"rentcheck_backend/internal/wws"
	"rentcheck_backend/platform/apperr"
	"rentcheck_backend/platform/config"
	"rentcheck_backend/platform/logger"
	"rentcheck_backend/platform/validator"
)

// Module is the rent check bounded context module implementing http.Module.
type Module struct {
	handler *handler.Handler
	service *service.Service
	engine  *wws.Engine
}

// NewModule creates and initializes the rent check module.
func NewModule(engine *wws.Engine, val *validator.Validator, log *logger.Logger, cfg config.BatchConfig) *Module {
	svc := service.New(engine, val, log, cfg)
	return &Module{
		handler: handler.New(svc),
		service: svc,
		engine:  engine,
	}
}

// Name returns the module identifier.
func (m *Module) Name() string {
	return "rentcheck"
}

// Service returns the service layer for external use.
func (m *Module) Service() *service.Service {
	return m.service
}

// Ping reports whether the module can serve assessments.
func (m *Module) Ping(_ context.Context) error {
	if m == nil || m.engine == nil {
		return apperr.Unavailable("rent check engine not initialized")
	}
	return nil
}

// RegisterRoutes mounts the rent check routes. Scoring routes are rate limited.
func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	ctx.V1.GET("/rent-check/rules", m.handler.Rules)

	group := ctx.Limited.Group("/rent-check")
	group.POST("/assess", m.handler.Assess)
	group.POST("/batch", m.handler.AssessBatch)
}

// Compile-time checks
var (
	_ apphttp.Module        = (*Module)(nil)
	_ apphttp.HealthChecker = (*Module)(nil)
)
