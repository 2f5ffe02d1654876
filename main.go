package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"bizdesk-server/internal/bootstrap"
	"bizdesk-server/internal/config"
	"bizdesk-server/internal/observability"

	"github.com/gin-gonic/gin"
)

func main() {
	logger := observability.NewLogger()

	// Cancelled on SIGINT / SIGTERM
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal(ctx, "failed to load config", err)
	}

	deps, err := bootstrap.Initialize(ctx, cfg, logger)
	if err != nil {
		logger.Fatal(ctx, "failed to initialize dependencies", err)
	}
	defer deps.Cleanup()

	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(observability.Middleware(logger))
	r.GET("/health", func(c *gin.Context) {
		pingCtx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()
		if err := deps.Store.DB().PingContext(pingCtx); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable", "error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: r,
	}
	// Run the server in a goroutine so that it doesn't block
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal(ctx, "health server failed", err)
		}
	}()

	schedulerDone := make(chan struct{})
	go func() {
		defer close(schedulerDone)
		if err := deps.Scheduler.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
			logger.Error(ctx, "scheduler stopped unexpectedly", err)
		}
	}()

	logger.Info(ctx, fmt.Sprintf("Worker started, health endpoint on :%d", cfg.Server.Port))

	// Block until a signal is received
	<-ctx.Done()
	logger.Info(context.Background(), "Shutting down worker...")

	// The server has 5 seconds to finish the request it is currently handling
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error(shutdownCtx, "health server forced to shutdown", err)
	}

	// In-flight jobs finish before dependencies are closed
	<-schedulerDone
	logger.Info(context.Background(), "Worker exiting")
}
