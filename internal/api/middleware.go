package api

import (
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

// Session keys. The session carries identity and role only; everything
// else is looked up per request.
const (
	sessionKeyLoggedIn = "logged_in"
	sessionKeyUsername = "username"
	sessionKeyRole     = "role"
)

// Context keys under which the gates expose the request identity to
// handlers.
const (
	ctxKeyUsername = "username"
	ctxKeyRole     = "role"
)

// LoginRequired blocks unauthenticated requests by redirecting to the
// login route. Authenticated requests get their identity and role set
// on the request context.
func LoginRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := sessions.Default(c)
		loggedIn, _ := sess.Get(sessionKeyLoggedIn).(bool)
		if !loggedIn {
			c.Redirect(http.StatusFound, "/")
			c.Abort()
			return
		}

		username, _ := sess.Get(sessionKeyUsername).(string)
		role, _ := sess.Get(sessionKeyRole).(string)
		c.Set(ctxKeyUsername, username)
		c.Set(ctxKeyRole, role)
		c.Next()
	}
}

// RoleRequired blocks sessions whose role is not exactly the required
// string. Roles are flat; there is no hierarchy, so "admin" does not
// imply anything else and vice versa.
func RoleRequired(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		current, _ := c.Get(ctxKeyRole)
		if current != role {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "unauthorized"})
			return
		}
		c.Next()
	}
}
