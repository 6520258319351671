package services

import (
	"context"
	"time"

	"github.com/ritchadh/watchlist/models"
)

// Store interfaces implemented by data_access and by the in-memory fakes
// used in tests. Finders return (nil, nil) when nothing matches.

type UserStore interface {
	Create(ctx context.Context, user *models.User) error
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByID(ctx context.Context, id string) (*models.User, error)
	AppendMovie(ctx context.Context, userID, movieID string) error
}

type MovieStore interface {
	Insert(ctx context.Context, movie *models.Movie) error
	FindByID(ctx context.Context, id string) (*models.Movie, error)
	FindByIDs(ctx context.Context, ids []string) ([]models.Movie, error)
	Replace(ctx context.Context, movie *models.Movie) error
	SetRating(ctx context.Context, id string, rating int) (bool, error)
	SetLastWatched(ctx context.Context, id string, when time.Time) (bool, error)
	Delete(ctx context.Context, id string) error
}
