package services

import (
	"context"
	"errors"
	"time"

	"github.com/ritchadh/watchlist/models"
)

var ErrMovieNotFound = errors.New("movie not found")

type WatchlistService struct {
	movieRepo MovieStore
	userRepo  UserStore

	// now is swapped out in tests
	now func() time.Time
}

func NewWatchlistService(movieRepo MovieStore, userRepo UserStore) *WatchlistService {
	return &WatchlistService{
		movieRepo: movieRepo,
		userRepo:  userRepo,
		now:       time.Now,
	}
}

// AddMovie creates a movie with the basic fields and appends its id to the
// owner's watchlist. The two writes are not transactional; when the append
// fails the inserted movie is deleted so no orphan is left behind.
func (s *WatchlistService) AddMovie(ctx context.Context, userID, title, director string, year int) (*models.Movie, error) {
	movie := &models.Movie{
		ID:       newID(),
		Title:    title,
		Director: director,
		Year:     year,
		Cast:     []string{},
		Series:   []string{},
		Tags:     []string{},
	}

	if err := s.movieRepo.Insert(ctx, movie); err != nil {
		return nil, err
	}

	if err := s.userRepo.AppendMovie(ctx, userID, movie.ID); err != nil {
		// Best-effort cleanup; if the delete also fails the movie
		// stays orphaned, unreferenced by any user.
		_ = s.movieRepo.Delete(ctx, movie.ID)
		return nil, err
	}

	return movie, nil
}

// OwnedMovies returns the movies on the user's watchlist. Ids that no
// longer resolve to a document are omitted without error.
func (s *WatchlistService) OwnedMovies(ctx context.Context, userID string) ([]models.Movie, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return []models.Movie{}, nil
	}
	return s.movieRepo.FindByIDs(ctx, user.Movies)
}

func (s *WatchlistService) GetMovie(ctx context.Context, id string) (*models.Movie, error) {
	movie, err := s.movieRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if movie == nil {
		return nil, ErrMovieNotFound
	}
	return movie, nil
}

// UpdateDetails overwrites the extended fields on the stored movie and
// replaces the full document. Title, director, year, rating and
// last_watched ride along unchanged from the fetched record.
func (s *WatchlistService) UpdateDetails(ctx context.Context, id string, details models.MovieDetails) (*models.Movie, error) {
	movie, err := s.GetMovie(ctx, id)
	if err != nil {
		return nil, err
	}

	movie.Cast = details.Cast
	movie.Series = details.Series
	movie.Tags = details.Tags
	movie.Description = details.Description
	movie.VideoLink = details.VideoLink

	if err := s.movieRepo.Replace(ctx, movie); err != nil {
		return nil, err
	}
	return movie, nil
}

// Rate sets the rating field on the stored movie.
func (s *WatchlistService) Rate(ctx context.Context, id string, rating int) error {
	matched, err := s.movieRepo.SetRating(ctx, id, rating)
	if err != nil {
		return err
	}
	if !matched {
		return ErrMovieNotFound
	}
	return nil
}

// MarkWatched stamps the movie with the current time. Repeated calls keep
// overwriting with a newer timestamp.
func (s *WatchlistService) MarkWatched(ctx context.Context, id string) error {
	matched, err := s.movieRepo.SetLastWatched(ctx, id, s.now())
	if err != nil {
		return err
	}
	if !matched {
		return ErrMovieNotFound
	}
	return nil
}
