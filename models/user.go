package models

import (
	"time"
)

type User struct {
	// User information
	ID        string    `bson:"_id"`
	Email     string    `bson:"email"`
	Password  string    `bson:"password"` // bcrypt hash, never the raw password
	CreatedAt time.Time `bson:"created_at"`

	// Ids of the movies on this user's watchlist, in the order they were added
	Movies []string `bson:"movies"`
}
