// Copyright (c) 2026 CineHub. All rights reserved.

// Package user implements public member profiles and the personal
// watch-later list.
package user

import "time"

// Profile is the public view of a member: no email, no role, no secrets.
type Profile struct {
	ID          string    `json:"id"`
	Nickname    string    `json:"nickname"`
	ReviewCount int       `json:"review_count"`
	MemberSince time.Time `json:"member_since"`

	// WatchLater is hydrated for profile reads; authored reviews are served
	// by the review listing endpoints instead of being embedded here.
	WatchLater []*WatchLaterItem `json:"watch_later"`
}

// WatchLaterItem is one saved movie on a member's watch-later list.
type WatchLaterItem struct {
	MovieID   string    `json:"movie_id"`
	Title     string    `json:"title"`
	PosterURL string    `json:"poster_url,omitempty"`
	AddedAt   time.Time `json:"added_at"`
}
