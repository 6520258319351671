package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"

	"github.com/ritchadh/watchlist/middleware"
	"github.com/ritchadh/watchlist/models"
	"github.com/ritchadh/watchlist/services"
)

type AuthController struct {
	authService *services.AuthService
}

func NewAuthController(authService *services.AuthService) *AuthController {
	return &AuthController{
		authService: authService,
	}
}

func (c *AuthController) ShowRegister(ctx *gin.Context) {
	if isAuthenticated(ctx) {
		ctx.Redirect(http.StatusFound, "/")
		return
	}
	render(ctx, http.StatusOK, "register.html", "Movies Watchlist - Register", gin.H{
		"Form":   models.RegisterForm{},
		"Errors": map[string]string{},
	})
}

func (c *AuthController) Register(ctx *gin.Context) {
	if isAuthenticated(ctx) {
		ctx.Redirect(http.StatusFound, "/")
		return
	}

	var form models.RegisterForm
	if err := ctx.ShouldBind(&form); err != nil {
		render(ctx, http.StatusOK, "register.html", "Movies Watchlist - Register", gin.H{
			"Form":   form,
			"Errors": formErrors(err),
		})
		return
	}

	_, err := c.authService.Register(ctx.Request.Context(), form.Email, form.Password)
	if errors.Is(err, services.ErrEmailTaken) {
		render(ctx, http.StatusOK, "register.html", "Movies Watchlist - Register", gin.H{
			"Form":   form,
			"Errors": map[string]string{"email": "A user with this email already exists"},
		})
		return
	}
	if err != nil {
		ctx.String(http.StatusInternalServerError, "something went wrong")
		return
	}

	addFlash(ctx, "success", "User registered successfully")
	ctx.Redirect(http.StatusFound, "/login")
}

func (c *AuthController) ShowLogin(ctx *gin.Context) {
	if isAuthenticated(ctx) {
		ctx.Redirect(http.StatusFound, "/")
		return
	}
	render(ctx, http.StatusOK, "login.html", "Movies Watchlist - Login", gin.H{
		"Form":   models.LoginForm{},
		"Errors": map[string]string{},
	})
}

func (c *AuthController) Login(ctx *gin.Context) {
	if isAuthenticated(ctx) {
		ctx.Redirect(http.StatusFound, "/")
		return
	}

	var form models.LoginForm
	if err := ctx.ShouldBind(&form); err != nil {
		render(ctx, http.StatusOK, "login.html", "Movies Watchlist - Login", gin.H{
			"Form":   form,
			"Errors": formErrors(err),
		})
		return
	}

	user, err := c.authService.Login(ctx.Request.Context(), form.Email, form.Password)
	switch {
	case errors.Is(err, services.ErrUnknownEmail):
		// Same generic message as a wrong password; never reveal which
		// field was wrong.
		addFlash(ctx, "danger", "Login credentials not correct")
		ctx.Redirect(http.StatusFound, "/login")
		return
	case errors.Is(err, services.ErrWrongPassword):
		addFlash(ctx, "danger", "Login credentials not correct")
		render(ctx, http.StatusOK, "login.html", "Movies Watchlist - Login", gin.H{
			"Form":   form,
			"Errors": map[string]string{},
		})
		return
	case err != nil:
		ctx.String(http.StatusInternalServerError, "something went wrong")
		return
	}

	session := sessions.Default(ctx)
	session.Set(middleware.SessionKeyUserID, user.ID)
	session.Set(middleware.SessionKeyEmail, user.Email)
	session.AddFlash("User logged in successfully", "success")
	if err := session.Save(); err != nil {
		ctx.String(http.StatusInternalServerError, "something went wrong")
		return
	}

	ctx.Redirect(http.StatusFound, "/")
}

// Logout drops the whole session, theme preference included.
func (c *AuthController) Logout(ctx *gin.Context) {
	session := sessions.Default(ctx)
	session.Clear()
	_ = session.Save()
	ctx.Redirect(http.StatusFound, "/login")
}
