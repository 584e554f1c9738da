//go:build !lambda
// +build !lambda

package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/asatex/kyuyokeisan-api/apps/api/server"
	_ "github.com/asatex/kyuyokeisan-api/docs"
	"github.com/asatex/kyuyokeisan-api/libs/go/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// @title           Social Insurance Premium API
// @version         1.0
// @description     Employee and employer shares of monthly health, nursing-care and pension premiums.

// @host      localhost:8000
// @BasePath  /

func main() {
	server.InitializeHandlers()
	defer logger.Sync()

	r := gin.New()
	r.Use(gin.Recovery())
	server.InitializeRoutes(r)

	srv := &http.Server{
		Addr:              ":" + server.Port(),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("Server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("Error starting server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Server forced to shutdown", zap.Error(err))
	}
	server.Shutdown()
	logger.Info("Server exited")
}
