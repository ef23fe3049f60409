package main

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"photoshare-backend/internal/shared/middleware"
	"photoshare-backend/internal/shared/response"
	"photoshare-backend/pkg/container"
)

func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()

	// Global middlewares
	router.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
		middleware.CORS(),
	)

	v1 := router.Group("/api/v1")
	{
		// Health check
		v1.GET("/health", healthCheckHandler(c))

		setupAuthRoutes(v1, c)
		setupUserRoutes(v1, c)
		setupMediaRoutes(v1, c)
	}

	return router
}

// ========================================
// AUTH ROUTES
// ========================================
func setupAuthRoutes(v1 *gin.RouterGroup, c *container.Container) {
	auth := v1.Group("/auth")
	{
		auth.POST("/login", c.IdentityHandler.Login)
		auth.POST("/logout", middleware.RequireSession(c.Sessions), c.IdentityHandler.Logout)
		auth.GET("/session", c.IdentityHandler.Session)
	}
}

// ========================================
// USER ROUTES
// ========================================
func setupUserRoutes(v1 *gin.RouterGroup, c *container.Container) {
	users := v1.Group("/users")
	{
		users.GET("", c.IdentityHandler.ListUsers)

		me := users.Group("/me")
		me.Use(middleware.RequireSession(c.Sessions))
		{
			me.GET("", c.IdentityHandler.GetProfile)
			me.PUT("", c.IdentityHandler.UpdateProfile)
			me.POST("/avatar", c.IdentityHandler.UploadAvatar)
		}

		users.GET("/:id", c.IdentityHandler.GetUser)
		users.GET("/:id/media", c.MediaHandler.ListByUser)
	}
}

// ========================================
// MEDIA ROUTES
// ========================================
func setupMediaRoutes(v1 *gin.RouterGroup, c *container.Container) {
	mediaGroup := v1.Group("/media")
	{
		// Reads - không cần session
		mediaGroup.GET("", c.MediaHandler.List)
		mediaGroup.GET("/search", c.MediaHandler.Search)
		mediaGroup.GET("/:id", c.MediaHandler.Get)
		mediaGroup.GET("/:id/comments", c.MediaHandler.ListComments)

		// Mutations - cần active session (service re-check phía dưới)
		authed := mediaGroup.Group("")
		authed.Use(middleware.RequireSession(c.Sessions))
		{
			authed.POST("", c.MediaHandler.Create)
			authed.DELETE("/:id", c.MediaHandler.Delete)
			authed.POST("/:id/like", c.MediaHandler.ToggleLike)
			authed.POST("/:id/comments", c.MediaHandler.AddComment)
			authed.DELETE("/:id/comments/:commentId", c.MediaHandler.DeleteComment)
		}
	}
}

// healthCheckHandler báo trạng thái app và session state hiện tại.
func healthCheckHandler(c *container.Container) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		response.Success(ctx, http.StatusOK, gin.H{
			"status":      "ok",
			"app":         c.Config.App.Name,
			"version":     c.Config.App.Version,
			"environment": c.Config.App.Environment,
			"demo_mode":   c.Config.App.DemoMode,
			"session":     c.Sessions.State(),
		})
	}
}
