package controllers

import (
	"net/http"
	"strings"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"

	"github.com/ritchadh/watchlist/middleware"
)

// ToggleTheme flips the session theme and sends the browser back to the
// page it came from. Reachable without authentication.
func ToggleTheme(ctx *gin.Context) {
	session := sessions.Default(ctx)

	theme, _ := session.Get(middleware.SessionKeyTheme).(string)
	if theme == "dark" {
		session.Set(middleware.SessionKeyTheme, "light")
	} else {
		session.Set(middleware.SessionKeyTheme, "dark")
	}
	_ = session.Save()

	ctx.Redirect(http.StatusFound, safeRedirectTarget(ctx.Query("current_page")))
}

// safeRedirectTarget only accepts same-origin relative paths; absolute
// URLs and protocol-relative targets fall back to the index.
func safeRedirectTarget(target string) string {
	if strings.HasPrefix(target, "/") &&
		!strings.HasPrefix(target, "//") &&
		!strings.HasPrefix(target, "/\\") {
		return target
	}
	return "/"
}
