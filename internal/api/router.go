package api

import (
	"net/http"
	"time"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/client-service-manager/internal/config"
	"github.com/client-service-manager/internal/models"
	"github.com/client-service-manager/internal/repository"
	"github.com/client-service-manager/internal/service"
)

// NewRouter creates and configures the Gin router
func NewRouter(services *service.Services, repos *repository.Repositories, cfg *config.Config, log zerolog.Logger) *gin.Engine {
	// Set Gin mode
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()

	// Middleware
	router.Use(recoveryMiddleware(log))
	router.Use(loggingMiddleware(log))
	router.Use(sessions.Sessions(cfg.Session.Name, cookie.NewStore([]byte(cfg.Session.Secret))))

	// Handlers
	authHandler := NewAuthHandler(services, log)
	clientHandler := NewClientHandler(repos, log)
	addressHandler := NewAddressHandler(repos, log)
	serviceHandler := NewServiceHandler(repos, log)

	// Health check
	router.GET("/health", healthCheck)

	// Login
	router.GET("/", authHandler.ShowLogin)
	router.POST("/", authHandler.Login)

	// Session-gated routes
	authed := router.Group("/", LoginRequired())
	{
		authed.GET("/logout", authHandler.Logout)
		authed.GET("/clientes", clientHandler.List)
		authed.GET("/clientes/detalle/:id", clientHandler.Detail)
		authed.GET("/direcciones/detalle/:id", addressHandler.Detail)
		authed.GET("/servicios/detalle/:id", serviceHandler.Detail)
		authed.GET("/agenda", serviceHandler.Agenda)
	}

	// Admin-only routes
	admin := authed.Group("/", RoleRequired(models.RoleAdmin))
	{
		admin.GET("/clientes/nuevo", clientHandler.NewForm)
		admin.POST("/clientes/nuevo", clientHandler.Create)
		admin.GET("/clientes/editar/:id", clientHandler.EditForm)
		admin.POST("/clientes/editar/:id", clientHandler.Edit)
		admin.POST("/clientes/borrar/:id", clientHandler.Delete)

		admin.GET("/direcciones/nueva/:client_id", addressHandler.NewForm)
		admin.POST("/direcciones/nueva/:client_id", addressHandler.Create)
		admin.GET("/direcciones/editar/:id", addressHandler.EditForm)
		admin.POST("/direcciones/editar/:id", addressHandler.Edit)
		admin.POST("/direcciones/borrar/:id", addressHandler.Delete)

		admin.GET("/servicios/nuevo/:client_id", serviceHandler.NewForm)
		admin.POST("/servicios/nuevo/:client_id", serviceHandler.Create)
		admin.GET("/servicios/editar/:id", serviceHandler.EditForm)
		admin.POST("/servicios/editar/:id", serviceHandler.Edit)
		admin.POST("/servicios/borrar/:id", serviceHandler.Delete)
	}

	return router
}

// healthCheck returns the health status
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"timestamp": time.Now().Format(time.RFC3339),
		"service":   "client-service-manager",
	})
}

// recoveryMiddleware handles panics
func recoveryMiddleware(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				log.Error().Interface("error", err).Msg("Panic recovered")
				c.JSON(http.StatusInternalServerError, gin.H{
					"error": "Internal server error",
				})
				c.Abort()
			}
		}()
		c.Next()
	}
}

// loggingMiddleware logs requests
func loggingMiddleware(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path

		c.Next()

		duration := time.Since(start)
		statusCode := c.Writer.Status()

		event := log.Info()
		if statusCode >= 400 {
			event = log.Warn()
		}
		if statusCode >= 500 {
			event = log.Error()
		}

		event.
			Str("method", c.Request.Method).
			Str("path", path).
			Int("status", statusCode).
			Dur("duration", duration).
			Str("client_ip", c.ClientIP()).
			Msg("Request completed")
	}
}
