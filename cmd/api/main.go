package main

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"microgrid-sim/internal/api/handlers"
	"microgrid-sim/internal/api/middleware"
	"microgrid-sim/internal/api/models"

	"github.com/gin-gonic/gin"
	"github.com/lmittmann/tint"
)

func main() {
	logger := slog.New(tint.NewHandler(os.Stdout, &tint.Options{
		TimeFormat: time.RFC3339,
	}))
	slog.SetDefault(logger)

	port := os.Getenv("API_PORT")
	if port == "" {
		port = "8000"
	}

	if os.Getenv("API_ENV") == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Logger())
	router.Use(middleware.CORS())
	router.Use(middleware.ErrorHandler())

	simulateHandler := handlers.NewSimulateHandler()

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, models.HealthResponse{
			Status:  "online",
			Service: "microgrid-sim",
		})
	})

	api := router.Group("/api/v1")
	{
		api.POST("/simulate", simulateHandler.Run)
		api.GET("/simulate/default", simulateHandler.RunDefault)
		api.GET("/config/defaults", simulateHandler.Defaults)
	}

	addr := fmt.Sprintf(":%s", port)
	logger.Info("starting API server", slog.String("addr", addr))
	if err := router.Run(addr); err != nil {
		logger.Error("server exited", slog.Any("error", err))
		os.Exit(1)
	}
}
