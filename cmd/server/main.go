package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"nurikabe/internal/applog"
	"nurikabe/internal/puzzles"
	httpTransport "nurikabe/internal/transport/http"
	"nurikabe/pkg/config"
	"nurikabe/pkg/constants"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Configuration error: %v", err)
	}

	applog.Init(applog.Config{Level: cfg.LogLevel, File: cfg.LogFile})

	if err := puzzles.LoadGlobal(cfg.PuzzlesFile); err != nil {
		applog.Warn("could not load puzzle set, puzzle lookups will fail", "file", cfg.PuzzlesFile, "error", err)
	} else {
		applog.Info("loaded puzzle set", "count", puzzles.Global().Count())
	}

	r := gin.Default()

	httpTransport.RegisterRoutes(r, cfg)

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  constants.SolveTimeout + 2*time.Second,
		WriteTimeout: constants.SolveTimeout + 2*time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		applog.Info("shutting down")

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := server.Shutdown(ctx); err != nil {
			applog.Error("server shutdown error", "error", err)
		}
	}()

	applog.Info("starting server", "port", cfg.Port)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("failed to start server: %v", err)
	}
}
