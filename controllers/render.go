package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/ritchadh/watchlist/middleware"
)

type flash struct {
	Category string
	Message  string
}

func addFlash(c *gin.Context, category, message string) {
	session := sessions.Default(c)
	session.AddFlash(message, category)
	_ = session.Save()
}

// takeFlashes drains the pending flash messages. Saving the session here
// is what removes them, so each message shows exactly once.
func takeFlashes(c *gin.Context) []flash {
	session := sessions.Default(c)
	var flashes []flash
	for _, category := range []string{"success", "danger"} {
		for _, v := range session.Flashes(category) {
			if msg, ok := v.(string); ok {
				flashes = append(flashes, flash{Category: category, Message: msg})
			}
		}
	}
	_ = session.Save()
	return flashes
}

// render wraps c.HTML, merging the page data with what every template
// needs: theme, logged-in email, flashes and the current path for the
// theme-toggle link.
func render(c *gin.Context, status int, name, title string, data gin.H) {
	session := sessions.Default(c)
	email, _ := session.Get(middleware.SessionKeyEmail).(string)
	theme, _ := session.Get(middleware.SessionKeyTheme).(string)

	payload := gin.H{
		"Title":       title,
		"Email":       email,
		"Theme":       theme,
		"CurrentPath": c.Request.URL.RequestURI(),
		"Flashes":     takeFlashes(c),
	}
	for k, v := range data {
		payload[k] = v
	}
	c.HTML(status, name, payload)
}

func renderNotFound(c *gin.Context) {
	render(c, http.StatusNotFound, "404.html", "Movies Watchlist - Not Found", gin.H{})
}

func isAuthenticated(c *gin.Context) bool {
	email, _ := sessions.Default(c).Get(middleware.SessionKeyEmail).(string)
	return email != ""
}

func currentUserID(c *gin.Context) string {
	id, _ := sessions.Default(c).Get(middleware.SessionKeyUserID).(string)
	return id
}

// formErrors converts a binding error into a field -> message map for
// inline display next to the offending inputs.
func formErrors(err error) map[string]string {
	errs := map[string]string{}

	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		errs["form"] = "Invalid input data"
		return errs
	}

	for _, e := range ve {
		switch e.Field() {
		case "Email":
			errs["email"] = "Please provide a valid email address"
		case "Password":
			if e.Tag() == "min" || e.Tag() == "max" {
				errs["password"] = "Your password must be between 4 and 20 characters long"
			} else {
				errs["password"] = "Password is required"
			}
		case "ConfirmPassword":
			if e.Tag() == "eqfield" {
				errs["confirm_password"] = "The passwords do not match"
			} else {
				errs["confirm_password"] = "Please confirm your password"
			}
		case "Title":
			errs["title"] = "Title is required"
		case "Director":
			errs["director"] = "Director is required"
		case "Year":
			errs["year"] = "Please enter a year between 1878 and 2023"
		default:
			errs["form"] = "Invalid input data"
		}
	}
	return errs
}
