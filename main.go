package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/NgoVanPhien1997tb/yacchi-mcp/config"
	"github.com/NgoVanPhien1997tb/yacchi-mcp/handlers"
	"github.com/NgoVanPhien1997tb/yacchi-mcp/logger"
	"github.com/NgoVanPhien1997tb/yacchi-mcp/middleware"
	"github.com/NgoVanPhien1997tb/yacchi-mcp/tools"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	if err := logger.Setup(logger.LogConfig{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
		Output: "stdout",
	}); err != nil {
		log.Fatal().Err(err).Msg("failed to set up logger")
	}

	// Initialize database
	db, err := config.InitDB(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}

	// Setup router
	router := gin.New()
	router.Use(gin.Recovery(), middleware.RequestLogger())

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"service": "yacchi-mcp",
		})
	})

	// Tool catalog
	registry := tools.NewRegistry()
	handlers.NewBillHandler(db).Register(registry)
	handlers.NewCustomerHandler(db).Register(registry)
	handlers.NewProjectHandler(db).Register(registry)
	registry.Mount(router.Group("/tools"))

	// Start server
	port := cfg.Port
	if port == "" {
		port = "8080"
	}

	log.Info().Str("port", port).Int("tools", len(registry.Tools())).Msg("starting yacchi-mcp tool server")
	if err := router.Run(":" + port); err != nil {
		log.Fatal().Err(err).Msg("server exited")
	}
}
