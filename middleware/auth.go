package middleware

import (
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

// Session keys. user_id and email are set together at login and cleared
// together at logout, never independently.
const (
	SessionKeyUserID = "user_id"
	SessionKeyEmail  = "email"
	SessionKeyTheme  = "theme"
)

// LoginRequired redirects to the login page when the session carries no
// authenticated email. This is the only authorization mechanism: presence
// of a session, not per-resource ownership.
func LoginRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		session := sessions.Default(c)
		email, _ := session.Get(SessionKeyEmail).(string)
		if email == "" {
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}
		c.Next()
	}
}
