package router

import (
	"github.com/fikrirozi147/halal-checker-backend/internal/auth"
	"github.com/fikrirozi147/halal-checker-backend/internal/catalogue"
	"github.com/fikrirozi147/halal-checker-backend/internal/middleware"
	"github.com/fikrirozi147/halal-checker-backend/internal/scan"

	"github.com/gin-gonic/gin"
)

// New wires every route onto the given engine. The scan endpoint is
// public; catalogue management sits behind admin auth.
func New(
	r *gin.Engine,
	scanHandler *scan.Handler,
	catalogueHandler *catalogue.Handler,
	authHandler *auth.Handler,
) {
	// ───────────────────────── PUBLIC ─────────────────────────
	r.POST("/check-ingredients", scanHandler.Check)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// ───────────────────────── AUTH ─────────────────────────
	r.POST("/auth/login", authHandler.Login)

	// ───────────────────────── ADMIN ─────────────────────────
	admin := r.Group("/admin")
	admin.Use(middleware.AuthMiddleware())
	{
		admin.GET("/catalogue", catalogueHandler.Get)
		admin.POST("/catalogue/reload", catalogueHandler.Reload)
	}
}
