// Copyright (c) 2026 CineHub. All rights reserved.

// Package catalog implements the movie catalog: browsing with dynamic
// filters, stable pagination, aggregate ratings, and the admin-only
// mutations that maintain the catalog.
//
// # Architecture
//
// Entities in this file are the domain "Truth" of the catalog subsystem.
// They have no dependencies on outer layers (databases, HTTP, caches).
package catalog

import "time"

// Movie represents a single catalog entry.
//
// # Rules
//   - Runtime is strictly positive (minutes).
//   - Rating is derived: the arithmetic mean of all review ratings for this
//     movie. A movie with zero reviews carries a nil Rating — the "no rating"
//     sentinel — never 0.
//   - Mutated exclusively through admin-privileged operations.
type Movie struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Director    string    `json:"director"`
	Actors      []string  `json:"actors"`
	Genres      []string  `json:"genres"`
	Runtime     int       `json:"runtime"`
	ReleaseYear int       `json:"release_year"`
	PosterURL   string    `json:"poster_url,omitempty"`
	Rating      *float64  `json:"rating"`
	ReviewCount int       `json:"review_count"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Filter describes the optional, independently combinable predicates of a
// catalog query. All present fields are AND-combined; an all-absent filter
// matches every movie.
//
// String predicates are case-insensitive substring containment. Runtime
// bounds are inclusive; when only one bound is set the other is unbounded.
type Filter struct {
	Title      string
	Director   string
	Actor      string
	Genre      string
	MinRuntime *int
	MaxRuntime *int
}

// IsZero reports whether no predicate is present.
func (f Filter) IsZero() bool {
	return f.Title == "" && f.Director == "" && f.Actor == "" && f.Genre == "" &&
		f.MinRuntime == nil && f.MaxRuntime == nil
}

// # Sort Whitelist

// Enumerated sort fields accepted for movie listings. Anything outside this
// whitelist is rejected as a validation error — never silently replaced.
const (
	SortByRating      = "RATING"
	SortByReleaseYear = "RELEASEYEAR"
	SortByRuntime     = "RUNTIME"
)

// SortFields lists every accepted movie sort field, in whitelist order.
var SortFields = []string{SortByRating, SortByReleaseYear, SortByRuntime}
