package models

import (
	"time"
)

type Movie struct {
	ID          string    `bson:"_id"`
	Title       string    `bson:"title"`
	Director    string    `bson:"director"`
	Year        int       `bson:"year"`
	Cast        []string  `bson:"cast"`
	Series      []string  `bson:"series"`
	Tags        []string  `bson:"tags"`
	Description string    `bson:"description"`
	VideoLink   string    `bson:"video_link"`
	Rating      int       `bson:"rating"`       // 0 means not rated yet
	LastWatched time.Time `bson:"last_watched"` // zero value means never watched
}

// MovieDetails carries the extended fields editable after creation.
// Title, director and year are set once at creation and never touched
// by the edit flow.
type MovieDetails struct {
	Cast        []string
	Series      []string
	Tags        []string
	Description string
	VideoLink   string
}
