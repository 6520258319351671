package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/ritchadh/watchlist/helper"
	"github.com/ritchadh/watchlist/models"
	"github.com/ritchadh/watchlist/services"
)

type MovieController struct {
	watchlistService *services.WatchlistService
}

func NewMovieController(watchlistService *services.WatchlistService) *MovieController {
	return &MovieController{
		watchlistService: watchlistService,
	}
}

// Index renders the logged-in user's watchlist.
func (c *MovieController) Index(ctx *gin.Context) {
	movies, err := c.watchlistService.OwnedMovies(ctx.Request.Context(), currentUserID(ctx))
	if err != nil {
		ctx.String(http.StatusInternalServerError, "something went wrong")
		return
	}
	render(ctx, http.StatusOK, "index.html", "Movies Watchlist", gin.H{
		"Movies": movies,
	})
}

func (c *MovieController) ShowAdd(ctx *gin.Context) {
	render(ctx, http.StatusOK, "new_movie.html", "Movies Watchlist - Add Movie", gin.H{
		"Form":   models.MovieForm{},
		"Errors": map[string]string{},
	})
}

func (c *MovieController) Add(ctx *gin.Context) {
	var form models.MovieForm
	if err := ctx.ShouldBind(&form); err != nil {
		render(ctx, http.StatusOK, "new_movie.html", "Movies Watchlist - Add Movie", gin.H{
			"Form":   form,
			"Errors": formErrors(err),
		})
		return
	}

	_, err := c.watchlistService.AddMovie(ctx.Request.Context(), currentUserID(ctx), form.Title, form.Director, form.Year)
	if err != nil {
		ctx.String(http.StatusInternalServerError, "something went wrong")
		return
	}

	ctx.Redirect(http.StatusFound, "/")
}

func (c *MovieController) ShowEdit(ctx *gin.Context) {
	movieID := ctx.Param("movieId")
	movie, err := c.watchlistService.GetMovie(ctx.Request.Context(), movieID)
	if errors.Is(err, services.ErrMovieNotFound) {
		renderNotFound(ctx)
		return
	}
	if err != nil {
		ctx.String(http.StatusInternalServerError, "something went wrong")
		return
	}

	render(ctx, http.StatusOK, "edit_movie.html", "Movies Watchlist - Edit Movie", gin.H{
		"Movie": movie,
		"Form": models.ExtendedMovieForm{
			Cast:        helper.JoinLines(movie.Cast),
			Series:      helper.JoinLines(movie.Series),
			Tags:        helper.JoinLines(movie.Tags),
			Description: movie.Description,
			VideoLink:   movie.VideoLink,
		},
	})
}

// Edit overwrites the extended fields only; title, director, year, rating
// and last-watched stay as stored. Any authenticated user may edit any
// movie, ownership is not checked.
func (c *MovieController) Edit(ctx *gin.Context) {
	movieID := ctx.Param("movieId")

	var form models.ExtendedMovieForm
	if err := ctx.ShouldBind(&form); err != nil {
		ctx.String(http.StatusBadRequest, "invalid form data")
		return
	}

	details := models.MovieDetails{
		Cast:        helper.SplitLines(form.Cast),
		Series:      helper.SplitLines(form.Series),
		Tags:        helper.SplitLines(form.Tags),
		Description: form.Description,
		VideoLink:   form.VideoLink,
	}

	_, err := c.watchlistService.UpdateDetails(ctx.Request.Context(), movieID, details)
	if errors.Is(err, services.ErrMovieNotFound) {
		renderNotFound(ctx)
		return
	}
	if err != nil {
		ctx.String(http.StatusInternalServerError, "something went wrong")
		return
	}

	ctx.Redirect(http.StatusFound, "/movie/"+movieID)
}

// View is reachable without authentication.
func (c *MovieController) View(ctx *gin.Context) {
	movieID := ctx.Param("movieId")
	movie, err := c.watchlistService.GetMovie(ctx.Request.Context(), movieID)
	if errors.Is(err, services.ErrMovieNotFound) {
		renderNotFound(ctx)
		return
	}
	if err != nil {
		ctx.String(http.StatusInternalServerError, "something went wrong")
		return
	}

	render(ctx, http.StatusOK, "view_movie.html", "Movies Watchlist - "+movie.Title, gin.H{
		"Movie": movie,
	})
}

func (c *MovieController) Rate(ctx *gin.Context) {
	movieID := ctx.Param("movieId")

	rating, err := strconv.Atoi(ctx.Query("rating"))
	if err != nil {
		ctx.String(http.StatusBadRequest, "rating must be a number")
		return
	}

	err = c.watchlistService.Rate(ctx.Request.Context(), movieID, rating)
	if errors.Is(err, services.ErrMovieNotFound) {
		renderNotFound(ctx)
		return
	}
	if err != nil {
		ctx.String(http.StatusInternalServerError, "something went wrong")
		return
	}

	ctx.Redirect(http.StatusFound, "/movie/"+movieID)
}

func (c *MovieController) LastWatched(ctx *gin.Context) {
	movieID := ctx.Param("movieId")

	err := c.watchlistService.MarkWatched(ctx.Request.Context(), movieID)
	if errors.Is(err, services.ErrMovieNotFound) {
		renderNotFound(ctx)
		return
	}
	if err != nil {
		ctx.String(http.StatusInternalServerError, "something went wrong")
		return
	}

	ctx.Redirect(http.StatusFound, "/movie/"+movieID)
}
