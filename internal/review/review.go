// Copyright (c) 2026 CineHub. All rights reserved.

// Package review implements movie reviews: creation with the one-review-per-
// user-per-movie rule, owner-or-admin deletion, paged listings, and the
// bounded "most recent with content" feed.
package review

import "time"

// Review represents one user's verdict on one movie.
//
// # Rules
//   - Rating is bounded to the fixed 1–10 scale.
//   - At most one review per (user, movie) pair, enforced by a storage-layer
//     unique constraint.
//   - Reviews are never edited in place: delete and recreate.
//   - CreatedAt is server-assigned at insert.
type Review struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	MovieID   string    `json:"movie_id"`
	Rating    int       `json:"rating"`
	Content   string    `json:"content,omitempty"`
	CreatedAt time.Time `json:"created_at"`

	// Display fields hydrated by listing queries, not stored on the row.
	AuthorNickname string `json:"author_nickname,omitempty"`
	MovieTitle     string `json:"movie_title,omitempty"`
}

// # Sort Whitelist

// Enumerated sort fields accepted for review listings.
const (
	SortByTimestamp = "TIMESTAMP"
	SortByRating    = "RATING"
)

// SortFields lists every accepted review sort field, in whitelist order.
var SortFields = []string{SortByTimestamp, SortByRating}
