// Copyright (c) 2026 CineHub. All rights reserved.

package schema

// MoviesTable represents the 'movies' table
type MoviesTable struct {
	Table       string
	ID          string
	Title       string
	Director    string
	Actors      string
	Genres      string
	Runtime     string
	ReleaseYear string
	PosterURL   string
	CreatedAt   string
	UpdatedAt   string
}

// Movies is the schema definition for movies
var Movies = MoviesTable{
	Table:       "movies",
	ID:          "id",
	Title:       "title",
	Director:    "director",
	Actors:      "actors",
	Genres:      "genres",
	Runtime:     "runtime",
	ReleaseYear: "release_year",
	PosterURL:   "poster_url",
	CreatedAt:   "created_at",
	UpdatedAt:   "updated_at",
}
