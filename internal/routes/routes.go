// Package routes defines HTTP routes for the content service.
package routes

import (
	"github.com/Harshalloke/The-Daily-Chronicle/internal/config"
	"github.com/Harshalloke/The-Daily-Chronicle/internal/handlers"
	"github.com/Harshalloke/The-Daily-Chronicle/internal/metrics"
	"github.com/Harshalloke/The-Daily-Chronicle/internal/middleware"
	"github.com/Harshalloke/The-Daily-Chronicle/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Handlers bundles every handler the router needs.
type Handlers struct {
	Auth    *handlers.AuthHandler
	Article *handlers.ArticleHandler
	Admin   *handlers.AdminHandler
	User    *handlers.UserHandler
	Health  *handlers.HealthHandler
}

// Setup configures all HTTP routes for the application.
func Setup(router *gin.Engine, h Handlers, jwtService service.JWTService, cfg *config.Config) {
	router.Use(middleware.CORS(middleware.CORSConfig{
		AllowedOrigins: cfg.AllowedOrigins,
	}))
	router.Use(metrics.Instrument())

	// Health check
	router.GET("/health", h.Health.Check)
	// Metrics
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Uploaded featured images
	router.Static("/uploads", cfg.UploadDir)

	api := router.Group("/api")

	auth := api.Group("/auth")
	{
		auth.POST("/register", h.Auth.Register)
		auth.POST("/login", h.Auth.Login)
		auth.POST("/logout", middleware.RequireAuth(jwtService), h.Auth.Logout)
	}

	articles := api.Group("/articles")
	{
		articles.GET("", h.Article.List)
		articles.GET("/:id", middleware.OptionalAuth(jwtService), h.Article.Get)
	}

	users := api.Group("/users", middleware.RequireAuth(jwtService))
	{
		users.GET("/me", h.User.Me)
		users.PUT("/me/preferences", h.User.UpdatePreferences)
		users.GET("/me/bookmarks", h.User.ListBookmarks)
		users.POST("/me/bookmarks/:articleID", h.User.AddBookmark)
		users.DELETE("/me/bookmarks/:articleID", h.User.RemoveBookmark)
	}

	admin := api.Group("/admin", middleware.RequireAuth(jwtService), middleware.RequireContentManager())
	{
		admin.GET("/dashboard", h.Admin.Dashboard)
		admin.GET("/activity", h.Admin.Activity)
		admin.GET("/articles", h.Admin.List)
		admin.GET("/articles/:id", h.Admin.Get)
		admin.POST("/articles", h.Admin.Create)
		admin.PUT("/articles/:id", h.Admin.Update)
		admin.DELETE("/articles/:id", h.Admin.Delete)
		admin.PATCH("/articles/:id/publish", h.Admin.Publish)
		admin.PATCH("/articles/:id/unpublish", h.Admin.Unpublish)
	}
}
