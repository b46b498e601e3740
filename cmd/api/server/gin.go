package server

import (
	"net/http"
	"time"

	"go.uber.org/zap"

	ginhandler "ecommerce-auth-service/internal/adapter/gin/handler"
	ginrouter "ecommerce-auth-service/internal/adapter/gin/router"
)

// SetupGinServer creates and configures the REST API server
func SetupGinServer(
	authHandler *ginhandler.AuthHandler,
	allowedOrigins []string,
	addr string,
	l *zap.Logger,
) *http.Server {
	router := ginrouter.SetupRouter(authHandler, allowedOrigins, l)

	l.Info("REST API configured", zap.String("address", addr))

	return &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 2 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      10 * time.Second,
		IdleTimeout:       120 * time.Second,
	}
}
