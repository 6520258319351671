package services

import (
	"context"
	"sync"
	"time"

	"github.com/ritchadh/watchlist/models"
)

// FakeUserStore is a test-only fake implementing UserStore. It keeps users
// in a map and exposes error fields for behavior injection.
type FakeUserStore struct {
	mu        sync.RWMutex
	users     map[string]*models.User
	createErr error
	appendErr error
}

func NewFakeUserStore() *FakeUserStore {
	return &FakeUserStore{users: make(map[string]*models.User)}
}

func (f *FakeUserStore) Create(ctx context.Context, user *models.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.createErr != nil {
		return f.createErr
	}
	clone := *user
	f.users[user.ID] = &clone
	return nil
}

func (f *FakeUserStore) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	for _, u := range f.users {
		if u.Email == email {
			clone := *u
			return &clone, nil
		}
	}
	return nil, nil
}

func (f *FakeUserStore) FindByID(ctx context.Context, id string) (*models.User, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	u, ok := f.users[id]
	if !ok {
		return nil, nil
	}
	clone := *u
	return &clone, nil
}

func (f *FakeUserStore) AppendMovie(ctx context.Context, userID, movieID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.appendErr != nil {
		return f.appendErr
	}
	if u, ok := f.users[userID]; ok {
		u.Movies = append(u.Movies, movieID)
	}
	return nil
}

// FakeMovieStore is a test-only fake implementing MovieStore.
type FakeMovieStore struct {
	mu        sync.RWMutex
	movies    map[string]*models.Movie
	insertErr error
}

func NewFakeMovieStore() *FakeMovieStore {
	return &FakeMovieStore{movies: make(map[string]*models.Movie)}
}

func (f *FakeMovieStore) Insert(ctx context.Context, movie *models.Movie) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.insertErr != nil {
		return f.insertErr
	}
	clone := *movie
	f.movies[movie.ID] = &clone
	return nil
}

func (f *FakeMovieStore) FindByID(ctx context.Context, id string) (*models.Movie, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	m, ok := f.movies[id]
	if !ok {
		return nil, nil
	}
	clone := *m
	return &clone, nil
}

func (f *FakeMovieStore) FindByIDs(ctx context.Context, ids []string) ([]models.Movie, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	result := []models.Movie{}
	for _, id := range ids {
		if m, ok := f.movies[id]; ok {
			result = append(result, *m)
		}
	}
	return result, nil
}

func (f *FakeMovieStore) Replace(ctx context.Context, movie *models.Movie) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	clone := *movie
	f.movies[movie.ID] = &clone
	return nil
}

func (f *FakeMovieStore) SetRating(ctx context.Context, id string, rating int) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	m, ok := f.movies[id]
	if !ok {
		return false, nil
	}
	m.Rating = rating
	return true, nil
}

func (f *FakeMovieStore) SetLastWatched(ctx context.Context, id string, when time.Time) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	m, ok := f.movies[id]
	if !ok {
		return false, nil
	}
	m.LastWatched = when
	return true, nil
}

func (f *FakeMovieStore) Delete(ctx context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.movies, id)
	return nil
}
