package main

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/Rahul04022004/wellbeing/backend/internal/config"
	"github.com/Rahul04022004/wellbeing/backend/internal/handlers"
	"github.com/Rahul04022004/wellbeing/backend/internal/logger"
	"github.com/Rahul04022004/wellbeing/backend/internal/middleware"
	"github.com/Rahul04022004/wellbeing/backend/internal/repository"
	"github.com/Rahul04022004/wellbeing/backend/internal/service"
	"github.com/Rahul04022004/wellbeing/backend/pkg/postgrest"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the API server",
	Long:  `Start the HTTP API server and listen for requests.`,
	RunE:  runServe,
}

var port string

func init() {
	serveCmd.Flags().StringVarP(&port, "port", "p", "", "Port to listen on (overrides config)")
}

func runServe(cmd *cobra.Command, args []string) error {
	// Load .env if present; real environment wins over file values.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	if port != "" {
		cfg.Server.Port = port
	}

	log := logger.NewSlogLogger(logger.Config{
		Level:  logger.ParseLevel(cfg.Log.Level),
		Format: cfg.Log.Format,
	})
	logger.SetDefault(log)

	log.Info("starting wellbeing API server",
		logger.String("env", cfg.Server.Env),
		logger.String("store", cfg.Supabase.URL),
	)

	// Initialize the log store client
	storeClient := postgrest.NewClient(cfg.Supabase.URL, cfg.Supabase.ServiceKey)

	// Initialize repositories
	userRepo := repository.NewUserRepository(storeClient)
	logRepo := repository.NewHealthLogRepository(storeClient)

	// Initialize services
	analysisService := service.NewAnalysisService(userRepo, logRepo)
	logService := service.NewHealthLogService(userRepo, logRepo)
	adminService := service.NewAdminService(userRepo, logRepo)

	// Initialize handlers
	analysisHandler := handlers.NewAnalysisHandler(analysisService)
	logHandler := handlers.NewHealthLogHandler(logService)
	adminHandler := handlers.NewAdminHandler(adminService)

	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.CORS())
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status": "ok",
			"env":    cfg.Server.Env,
		})
	})

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		v1.POST("/logs", logHandler.Create)
		v1.GET("/analyses/:name", analysisHandler.Run)

		admin := v1.Group("/admin")
		{
			admin.GET("/users", adminHandler.AllUserData)
			admin.GET("/user-stats", adminHandler.UserStats)
		}
	}

	log.Info("server listening", logger.String("port", cfg.Server.Port))
	if err := router.Run(":" + cfg.Server.Port); err != nil {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}
