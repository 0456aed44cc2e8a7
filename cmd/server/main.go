package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"nerine_frontend/internal/api"
	"nerine_frontend/internal/api/handler"
	"nerine_frontend/internal/app/service"
	"nerine_frontend/internal/platform/backend"
	"nerine_frontend/internal/platform/config"

	"go.uber.org/zap"
)

func main() {
	config.Load()

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Could not initialize logger: %v", err)
	}
	defer logger.Sync()

	client := backend.New(config.AppConfig.APIBase)
	sessions := service.NewSessionService(client)
	gate := service.NewGateService(client)

	pages := handler.NewPageHandler(client, sessions, gate)
	actions := handler.NewActionHandler(client)
	router := api.NewRouter(logger, pages, actions)

	server := &http.Server{
		Addr:         ":" + config.AppConfig.ListenPort,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		logger.Info("server starting",
			zap.String("port", config.AppConfig.ListenPort),
			zap.String("api_base", config.AppConfig.APIBase),
		)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("listen failed", zap.Error(err))
		}
	}()

	<-stop

	logger.Info("shutting down")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Fatal("shutdown failed", zap.Error(err))
	}
}
