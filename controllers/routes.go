package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/ritchadh/watchlist/middleware"
)

// RegisterRoutes mounts every handler on the engine. Shared between main
// and the handler tests so both exercise the same routing table.
func RegisterRoutes(r *gin.Engine, auth *AuthController, movies *MovieController) {
	r.GET("/login", auth.ShowLogin)
	r.POST("/login", auth.Login)
	r.GET("/register", auth.ShowRegister)
	r.POST("/register", auth.Register)
	r.GET("/logout", auth.Logout)

	r.GET("/theme-toggle", ToggleTheme)
	r.GET("/movie/:movieId", movies.View)

	protected := r.Group("", middleware.LoginRequired())
	{
		protected.GET("/", movies.Index)
		protected.GET("/add", movies.ShowAdd)
		protected.POST("/add", movies.Add)
		protected.GET("/edit/:movieId", movies.ShowEdit)
		protected.POST("/edit/:movieId", movies.Edit)
		protected.GET("/movie/:movieId/rate", movies.Rate)
		protected.GET("/movie/:movieId/lastWatched", movies.LastWatched)
	}
}
