package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"agency-cms.backend/internal/interfaces/http/handlers"
	"agency-cms.backend/internal/interfaces/http/middleware"
)

type routeDeps struct {
	authHandler    *handlers.AuthHandler
	contentHandler *handlers.ContentHandler
	publicHandler  *handlers.PublicHandler
	uploadHandler  *handlers.UploadHandler
	authMiddleware gin.HandlerFunc
}

func registerAPIV1Routes(r *gin.Engine, d routeDeps) {
	v1 := r.Group("/api/v1")
	{
		// Auth routes
		auth := v1.Group("/auth")
		{
			auth.POST("/login", d.authHandler.Login)
			auth.POST("/refresh", d.authHandler.Refresh)
			auth.GET("/me", d.authMiddleware, d.authHandler.Me)
			auth.POST("/change-password", d.authMiddleware, d.authHandler.ChangePassword)
		}

		// Public marketing site routes
		content := v1.Group("/content")
		{
			content.GET("/:entity", d.publicHandler.List)
			content.GET("/:entity/:slug", d.publicHandler.GetBySlug)
		}
		v1.POST("/newsletter/subscribe", d.publicHandler.Subscribe)
		v1.POST("/contact", d.publicHandler.Contact)

		// Admin dashboard routes. The whole group needs editor or
		// admin; a viewer token is rejected before any handler runs.
		// Deletes additionally need admin.
		admin := v1.Group("/admin")
		admin.Use(d.authMiddleware, middleware.RequireEditor())
		{
			admin.GET("/:entity", d.contentHandler.List)
			admin.GET("/:entity/slug-check", d.contentHandler.SlugCheck)
			admin.GET("/:entity/:id", d.contentHandler.Get)

			admin.POST("/:entity", d.contentHandler.Create)
			admin.POST("/:entity/upload", d.uploadHandler.Upload)
			admin.PUT("/:entity/:id", d.contentHandler.Update)
			admin.PATCH("/:entity/:id/toggle", d.contentHandler.Toggle)

			admin.DELETE("/:entity/:id", middleware.RequireAdmin(), d.contentHandler.Delete)
		}
	}
}

func applyCORSMiddleware(r *gin.Engine) {
	r.Use(func(c *gin.Context) {
		origin := c.GetHeader("Origin")
		if origin != "" {
			c.Header("Access-Control-Allow-Origin", origin)
			c.Header("Access-Control-Allow-Credentials", "true")
			c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
			c.Header("Access-Control-Allow-Headers", "Authorization, Content-Type, X-Request-ID")
		}

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	})
}

func registerHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"service": "agency-cms-backend",
			"version": "0.1.0",
		})
	})

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
}
