// Copyright (c) 2026 CineHub. All rights reserved.

package schema

// ReviewsTable represents the 'reviews' table
type ReviewsTable struct {
	Table     string
	ID        string
	UserID    string
	MovieID   string
	Rating    string
	Content   string
	CreatedAt string
}

// Reviews is the schema definition for reviews.
//
// The (user_id, movie_id) pair carries a UNIQUE constraint: at most one
// review per user per movie, enforced by the storage layer.
var Reviews = ReviewsTable{
	Table:     "reviews",
	ID:        "id",
	UserID:    "user_id",
	MovieID:   "movie_id",
	Rating:    "rating",
	Content:   "content",
	CreatedAt: "created_at",
}
