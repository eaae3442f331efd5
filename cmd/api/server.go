package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"urbannest-properties/pkg/logger"
)

func (a *App) InitializeServer() {
	a.Server = &http.Server{
		Addr:    fmt.Sprintf(":%d", a.Config.Server.Port),
		Handler: a.Router,
	}
}

// StartServer serves until SIGINT/SIGTERM, then drains in-flight requests.
func (a *App) StartServer() {
	go func() {
		logger.GlobalLogger.Printf("Listening on %s", a.Server.Addr)
		logger.GlobalLogger.Printf("Swagger UI: http://localhost%s/swagger/index.html", a.Server.Addr)

		if err := a.Server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.GlobalLogger.Errorf("Server failed: %v", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.GlobalLogger.Println("Shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := a.Server.Shutdown(ctx); err != nil {
		logger.GlobalLogger.Errorf("Forced shutdown: %v", err)
		os.Exit(1)
	}

	logger.GlobalLogger.Println("Server exited")
}
