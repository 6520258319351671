package services

import (
	"context"
	"encoding/hex"
	"errors"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/ritchadh/watchlist/models"
)

var (
	ErrEmailTaken = errors.New("a user with this email already exists")

	// ErrUnknownEmail and ErrWrongPassword are distinguished so the login
	// controller can pick the right flow, but both must surface to the
	// user as the same generic message.
	ErrUnknownEmail  = errors.New("unknown email")
	ErrWrongPassword = errors.New("wrong password")
)

type AuthService struct {
	userRepo UserStore
}

func NewAuthService(userRepo UserStore) *AuthService {
	return &AuthService{userRepo: userRepo}
}

// Register creates a new user with an empty watchlist. The email pre-check
// rejects duplicates; it is not a storage-level guarantee, but it closes
// the common path.
func (s *AuthService) Register(ctx context.Context, email, password string) (*models.User, error) {
	existing, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrEmailTaken
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		ID:        newID(),
		Email:     email,
		Password:  string(hashed),
		CreatedAt: time.Now(),
		Movies:    []string{},
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Login checks the credentials and returns the matching user.
func (s *AuthService) Login(ctx context.Context, email, password string) (*models.User, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUnknownEmail
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, ErrWrongPassword
	}
	return user, nil
}

// newID returns an opaque uuid hex string used as a document _id.
func newID() string {
	u := uuid.New()
	return hex.EncodeToString(u[:])
}
