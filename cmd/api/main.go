package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	apphttp "rentcheck_backend/internal/http"
	"rentcheck_backend/internal/http/router"
	"rentcheck_backend/internal/rentcheck"
	"rentcheck_backend/internal/wws"
	"rentcheck_backend/internal/wws/rules"
	"rentcheck_backend/platform/config"
	"rentcheck_backend/platform/logger"
	"rentcheck_backend/platform/validator"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	// Initialize structured logger
	log := logger.New(cfg.Env)
	log.Info("starting server", "env", cfg.Env, "addr", cfg.HTTPAddr)

	if !cfg.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// ========================================================================
	// Domain Layer
	// ========================================================================

	ruleSet, source, err := rules.Select(cfg.GetRulesYear(), cfg.GetRulesFile())
	if err != nil {
		log.Error("failed to load rule set", "error", err)
		panic("failed to load rule set: " + err.Error())
	}
	engine, err := wws.NewEngine(ruleSet)
	if err != nil {
		log.Error("failed to build engine", "error", err)
		panic("failed to build engine: " + err.Error())
	}
	log.RulesLoaded(ruleSet.Year, source)

	// Shared validator instance for dependency injection
	val := validator.New()

	rentcheckModule := rentcheck.NewModule(engine, val, log, cfg)

	// ========================================================================
	// HTTP Layer
	// ========================================================================

	app := &apphttp.App{
		Config: cfg,
		Logger: log,
		Health: rentcheckModule,
		Modules: []apphttp.Module{
			rentcheckModule,
		},
	}

	srv := &http.Server{
		Addr:              cfg.GetHTTPAddr(),
		Handler:           router.New(app),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	srvErr := make(chan error, 1)
	go func() {
		log.Info("server listening", "addr", srv.Addr)
		srvErr <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		log.Info("shutdown signal received, gracefully shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.GetShutdownTimeout())
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Error("graceful shutdown failed", "error", err)
			return
		}
		log.Info("server stopped")
	case err := <-srvErr:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server error", "error", err)
			panic("server error: " + err.Error())
		}
	}
}
