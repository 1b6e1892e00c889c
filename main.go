package main

import (
	"context"
	"errors"
	stdlog "log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/username/sellerprofit/src/config"
	"github.com/username/sellerprofit/src/handlers"
	"github.com/username/sellerprofit/src/logger"
	"github.com/username/sellerprofit/src/services"
)

func main() {
	config.LoadConfig()
	logger.InitLogger(config.Cfg.LogLevel)
	logger.L.Info("Seller profit backend server starting...")

	logger.L.Info("Initializing session store...", "ttl", config.Cfg.SessionTTL, "cleanupInterval", config.Cfg.SessionCleanupInterval)
	sessionStore := services.NewSessionStore(config.Cfg.SessionTTL, config.Cfg.SessionCleanupInterval)

	logger.L.Info("Initializing services and handlers...")
	sessionService := services.NewSessionService(services.NewDefaultPipeline(), sessionStore, config.Cfg.SessionTTL)
	sessionHandler := handlers.NewSessionHandler(sessionService, config.Cfg.MaxUploadSizeBytes)

	logger.L.Info("Configuring routes...")
	router := handlers.NewRouter(config.Cfg, sessionHandler)

	serverAddr := ":" + config.Cfg.Port
	server := &http.Server{
		Addr:         serverAddr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		stop := make(chan os.Signal, 1)
		signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
		<-stop
		logger.L.Info("Shutdown signal received")
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(ctx); err != nil {
			logger.L.Error("Graceful shutdown failed", "error", err)
		}
	}()

	logger.L.Info("Server starting", "address", serverAddr)
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.L.Error("Failed to start server", "error", err)
		stdlog.Fatalf("Failed to start server: %v", err)
	}
	logger.L.Info("Server stopped gracefully.")
}
