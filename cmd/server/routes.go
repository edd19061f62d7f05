package main

import (
	"github.com/gin-gonic/gin"

	"github.com/tasknest/tasknest/internal/handlers"
	"github.com/tasknest/tasknest/internal/middleware"
	"github.com/tasknest/tasknest/pkg/logger"
)

// registerRoutes sets up all HTTP routes on the given Gin engine.
func registerRoutes(r *gin.Engine, svc *appServices) {
	// Middleware
	r.Use(logger.GinLogger(), logger.GinRecovery())
	r.RedirectTrailingSlash = false
	r.RedirectFixedPath = false
	r.Use(middleware.RequestID())
	r.Use(middleware.CORS())
	if svc.metrics != nil {
		r.Use(svc.metrics.GinMiddleware())
	}

	// Rate limiter for credential endpoints
	authLimiter := middleware.NewRateLimiter(5, 10)

	// Health check
	r.GET("/health", handlers.Health)

	if svc.metrics != nil {
		r.GET("/metrics", svc.metrics.Handler())
	}

	// API routes
	api := r.Group("/api")
	{
		// Auth routes (public, rate limited)
		auth := api.Group("/auth", authLimiter.Middleware())
		{
			auth.POST("/register", svc.authHandler.Register)
			auth.POST("/verify-email", svc.authHandler.VerifyEmail)
			auth.POST("/login", svc.authHandler.Login)
			auth.POST("/refresh", svc.authHandler.Refresh)
			auth.POST("/logout", svc.authHandler.Logout)
			auth.POST("/password-reset/request", svc.authHandler.RequestPasswordReset)
			auth.POST("/password-reset/confirm", svc.authHandler.ResetPassword)
			auth.POST("/resend-verification", svc.authHandler.ResendVerificationEmail)
		}

		// Protected routes
		protected := api.Group("")
		protected.Use(middleware.AuthRequired())
		{
			// Account & sessions
			protected.GET("/auth/me", svc.authHandler.GetCurrentUser)
			protected.GET("/auth/sessions", svc.authHandler.ListSessions)
			protected.DELETE("/auth/sessions/:id", svc.authHandler.RevokeSession)
			protected.POST("/auth/sessions/revoke-others", svc.authHandler.RevokeOtherSessions)

			// Todos
			protected.GET("/todos", svc.todoHandler.List)
			protected.GET("/todos/:id", svc.todoHandler.GetByID)
			protected.POST("/todos", svc.todoHandler.Create)
			protected.PUT("/todos/:id", svc.todoHandler.Update)
			protected.DELETE("/todos/:id", svc.todoHandler.Delete)
			protected.POST("/todos/:id/complete", svc.todoHandler.Complete)

			// Tags
			protected.GET("/tags", svc.tagHandler.List)
			protected.POST("/tags", svc.tagHandler.Create)
			protected.DELETE("/tags/:id", svc.tagHandler.Delete)
		}
	}
}
