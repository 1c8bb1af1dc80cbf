package routes

import (
	"log"

	"kora-backend/internal/api/handlers"
	"kora-backend/internal/api/middleware"
	"kora-backend/internal/auth"
	"kora-backend/internal/config"
	"kora-backend/internal/repository"
	"kora-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// SetupRoutes configures all the routes for the application
func SetupRoutes(db *gorm.DB, cfg *config.Config) *gin.Engine {
	// Create router
	router := gin.New()

	// Add middleware
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS(cfg))

	// Initialize validator
	validator := validator.New()

	// Initialize repositories
	coachRepo := repository.NewCoachRepository(db)
	teamRepo := repository.NewTeamRepository(db)
	playerRepo := repository.NewPlayerRepository(db)
	trainingRepo := repository.NewTrainingRepository(db)
	attendanceRepo := repository.NewAttendanceRepository(db)
	historyRepo := repository.NewImportHistoryRepository(db)

	// Initialize services
	teamService := service.NewTeamService(teamRepo, coachRepo, validator)
	playerService := service.NewPlayerService(playerRepo, teamRepo, coachRepo, validator)
	bulkService := service.NewBulkService(playerRepo, teamRepo, historyRepo, validator)
	trainingService := service.NewTrainingService(trainingRepo, teamRepo, validator)
	attendanceService := service.NewAttendanceService(attendanceRepo, playerRepo, trainingRepo, teamRepo, validator)
	exportService := service.NewExportService(playerRepo, teamRepo)
	assistantService := service.NewAssistantService(playerRepo, trainingRepo, teamRepo, cfg, validator)

	// Initialize auth configuration and services
	authConfig, err := auth.LoadAuthConfig("config/auth.yaml")
	if err != nil {
		log.Printf("Warning: Failed to load auth config: %v", err)
		// Fall back to the shared JWT secret with no OAuth providers
		authConfig = &auth.AuthConfig{JWTSecret: cfg.JWTSecret}
	}

	authService, err := auth.NewAuthService(authConfig, coachRepo)
	if err != nil {
		log.Fatalf("Failed to initialize auth service: %v", err)
	}
	authHandler := auth.NewAuthHandler(authService)
	authMiddleware := auth.NewAuthMiddleware(authService)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db)
	teamHandler := handlers.NewTeamHandler(teamService)
	playerHandler := handlers.NewPlayerHandler(playerService, attendanceService)
	bulkHandler := handlers.NewBulkHandler(bulkService)
	trainingHandler := handlers.NewTrainingHandler(trainingService)
	attendanceHandler := handlers.NewAttendanceHandler(attendanceService)
	exportHandler := handlers.NewExportHandler(exportService)
	assistantHandler := handlers.NewAssistantHandler(assistantService)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	// Swagger documentation route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Auth routes
	authGroup := router.Group("/api/v1/auth")
	{
		authGroup.POST("/register", authHandler.Register)
		authGroup.POST("/login", authHandler.Login)
		authGroup.POST("/refresh", authHandler.Refresh)
		authGroup.POST("/logout", authHandler.Logout)
		authGroup.POST("/validate", authHandler.ValidateToken)

		providerGroup := authGroup.Group("/:provider")
		{
			providerGroup.GET("/start", authHandler.Start)
			providerGroup.GET("/callback", authHandler.Callback)
		}
	}

	// API v1 routes - all endpoints require authentication
	v1 := router.Group("/api/v1")
	v1.Use(authMiddleware.RequireAuth())
	{
		teams := v1.Group("/teams")
		{
			teams.GET("", teamHandler.ListTeams)
			teams.POST("", teamHandler.CreateTeam)
			teams.GET("/:teamId", teamHandler.GetTeam)
			teams.PUT("/:teamId", teamHandler.UpdateTeam)
			teams.DELETE("/:teamId", teamHandler.DeleteTeam)

			// Roster
			teams.GET("/:teamId/players", playerHandler.ListPlayers)
			teams.POST("/:teamId/players", playerHandler.CreatePlayer)
			teams.PUT("/:teamId/players/:playerId", playerHandler.UpdatePlayer)
			teams.DELETE("/:teamId/players/:playerId", playerHandler.ArchivePlayer)
			teams.GET("/:teamId/players/:playerId/stats", playerHandler.GetPlayerStats)

			// Bulk roster operations
			teams.POST("/:teamId/players/bulk", bulkHandler.ApplyBulkAction)
			teams.GET("/:teamId/players/bulk/history", bulkHandler.GetBulkHistory)
			teams.POST("/:teamId/players/bulk/:historyId/undo", bulkHandler.UndoBulkAction)

			// Trainings
			teams.GET("/:teamId/trainings", trainingHandler.ListTrainings)
			teams.POST("/:teamId/trainings", trainingHandler.CreateTraining)
			teams.GET("/:teamId/trainings/:trainingId", trainingHandler.GetTraining)
			teams.PATCH("/:teamId/trainings/:trainingId/status", trainingHandler.UpdateTrainingStatus)
			teams.DELETE("/:teamId/trainings/:trainingId", trainingHandler.DeleteTraining)

			// Attendance
			teams.GET("/:teamId/trainings/:trainingId/attendance", attendanceHandler.GetBoard)
			teams.PUT("/:teamId/trainings/:trainingId/attendance/:playerId", attendanceHandler.SetStatus)
			teams.POST("/:teamId/trainings/:trainingId/attendance/justify", attendanceHandler.BulkJustify)

			// Export and assistant
			teams.GET("/:teamId/export", exportHandler.ExportRoster)
			teams.POST("/:teamId/assistant/chat", assistantHandler.Chat)
		}
	}

	// Catch-all route for undefined endpoints
	router.NoRoute(func(c *gin.Context) {
		c.JSON(404, gin.H{
			"error":      "Endpoint not found",
			"path":       c.Request.URL.Path,
			"method":     c.Request.Method,
			"request_id": c.GetString("request_id"),
		})
	})

	return router
}

// SetupHealthRoutes sets up only health check routes (useful for testing)
func SetupHealthRoutes(db *gorm.DB) *gin.Engine {
	router := gin.New()
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())

	healthHandler := handlers.NewHealthHandler(db)
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	return router
}
