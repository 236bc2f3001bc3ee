// File: holly-assistant/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/carlos-tribe/holly-assistant-hicv/config"
	"github.com/carlos-tribe/holly-assistant-hicv/cron"
	"github.com/carlos-tribe/holly-assistant-hicv/handlers"
	"github.com/carlos-tribe/holly-assistant-hicv/routes"
	"github.com/carlos-tribe/holly-assistant-hicv/services/assistant"
	"github.com/carlos-tribe/holly-assistant-hicv/utils"
)

func main() {
	config.LoadConfig()
	utils.InitializeLogger()
	logger := utils.GetLogger()

	utils.InitSessionCache()

	sessionTTL := time.Duration(config.AppConfig.SessionTTLMinutes) * time.Minute
	store := assistant.NewRedisSessionStore(utils.GetSessionCacheClient(), sessionTTL)
	scheduler := cron.NewAsynqScheduler()
	defer scheduler.Close()

	assistantService := assistant.NewAssistantService(store, scheduler)

	// Background worker for delayed session tasks (property-matching
	// auto-advance, staged destination reveals).
	cron.InitSessionWorker(assistantService)

	assistantHandler := handlers.NewAssistantHandler(assistantService)
	router := routes.SetupRouter(assistantHandler)

	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
