// Package main is the entry point for the Daily Chronicle content service.
package main

import (
	"fmt"
	"log"

	"github.com/Harshalloke/The-Daily-Chronicle/internal/config"
	"github.com/Harshalloke/The-Daily-Chronicle/internal/database"
	"github.com/Harshalloke/The-Daily-Chronicle/internal/handlers"
	"github.com/Harshalloke/The-Daily-Chronicle/internal/repository"
	"github.com/Harshalloke/The-Daily-Chronicle/internal/routes"
	"github.com/Harshalloke/The-Daily-Chronicle/internal/service"
	"github.com/Harshalloke/The-Daily-Chronicle/internal/storage"
	"github.com/Harshalloke/The-Daily-Chronicle/pkg/redis"
	"github.com/gin-gonic/gin"
)

// @title Daily Chronicle API
// @version 1.0
// @description Content and authentication API for the Daily Chronicle newspaper site
// @BasePath /api
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	// Initialize database
	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	// Initialize Redis
	redisClient, err := redis.NewClient(cfg)
	if err != nil {
		log.Fatal("Failed to connect to Redis:", err)
	}

	// Initialize image storage
	imageStore, err := storage.NewImageStore(cfg.UploadDir)
	if err != nil {
		log.Fatal("Failed to initialize image storage:", err)
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	articleRepo := repository.NewArticleRepository(db)
	activityRepo := repository.NewActivityRepository(db)

	// Initialize services
	jwtService, err := service.NewJWTService(cfg.JWTSecret, cfg.JWTExpiry)
	if err != nil {
		log.Fatal("Failed to initialize JWT service:", err)
	}
	authService := service.NewAuthService(userRepo, activityRepo, jwtService)
	articleService := service.NewArticleService(articleRepo, activityRepo)
	userService := service.NewUserService(userRepo, articleRepo)
	adminService := service.NewAdminService(articleRepo, userRepo, activityRepo, redisClient)

	// Initialize handlers
	h := routes.Handlers{
		Auth:    handlers.NewAuthHandler(authService),
		Article: handlers.NewArticleHandler(articleService, userService),
		Admin:   handlers.NewAdminHandler(articleService, adminService, imageStore),
		User:    handlers.NewUserHandler(userService),
		Health:  handlers.NewHealthHandler(),
	}

	// Setup router
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.Default()

	// Setup routes
	routes.Setup(router, h, jwtService, cfg)

	// Start server
	log.Printf("Starting content service on port %s", cfg.Port)
	if err := router.Run(fmt.Sprintf(":%s", cfg.Port)); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
