package api

import (
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/client-service-manager/internal/service"
)

// AuthHandler handles login and logout
type AuthHandler struct {
	services *service.Services
	log      zerolog.Logger
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(services *service.Services, log zerolog.Logger) *AuthHandler {
	return &AuthHandler{
		services: services,
		log:      log.With().Str("handler", "auth").Logger(),
	}
}

// ShowLogin handles GET /
func (h *AuthHandler) ShowLogin(c *gin.Context) {
	sess := sessions.Default(c)
	if loggedIn, _ := sess.Get(sessionKeyLoggedIn).(bool); loggedIn {
		c.Redirect(http.StatusFound, "/clientes")
		return
	}
	c.JSON(http.StatusOK, gin.H{"authenticated": false})
}

// Login handles POST /
func (h *AuthHandler) Login(c *gin.Context) {
	username := c.PostForm("username")
	password := c.PostForm("password")
	if username == "" || password == "" {
		mutationFail(c, http.StatusBadRequest, "usuario y contraseña son requeridos")
		return
	}

	ok, role := h.services.Auth.Authenticate(c.Request.Context(), username, password)
	if !ok {
		h.log.Warn().Str("username", username).Msg("Login rejected")
		mutationFail(c, http.StatusUnauthorized, "credenciales inválidas")
		return
	}

	sess := sessions.Default(c)
	sess.Set(sessionKeyLoggedIn, true)
	sess.Set(sessionKeyUsername, username)
	sess.Set(sessionKeyRole, role)
	if err := sess.Save(); err != nil {
		h.log.Error().Err(err).Msg("Failed to save session")
		mutationFail(c, http.StatusInternalServerError, "no se pudo iniciar la sesión")
		return
	}

	h.log.Info().Str("username", username).Str("role", role).Msg("Login succeeded")
	c.Redirect(http.StatusFound, "/clientes")
}

// Logout handles GET /logout
func (h *AuthHandler) Logout(c *gin.Context) {
	sess := sessions.Default(c)
	sess.Clear()
	if err := sess.Save(); err != nil {
		h.log.Error().Err(err).Msg("Failed to clear session")
	}
	c.Redirect(http.StatusFound, "/")
}
