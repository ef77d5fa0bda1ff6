// Copyright (c) 2026 CineHub. All rights reserved.

package user

import "context"

// # Profile Data Access

// ProfileRepository defines the storage contract for public profiles and
// watch-later lists.
type ProfileRepository interface {
	// FindProfileByID returns the public profile row (without the watch-later
	// list), or NOT_FOUND if absent.
	FindProfileByID(ctx context.Context, id string) (*Profile, error)

	// FindProfileByNickname resolves a profile by its display nickname,
	// case-insensitively, or NOT_FOUND if absent.
	FindProfileByNickname(ctx context.Context, nickname string) (*Profile, error)

	// ListWatchLater returns a member's saved movies, newest first.
	ListWatchLater(ctx context.Context, userID string) ([]*WatchLaterItem, error)

	// AddWatchLater saves a movie on the member's list. Saving an
	// already-saved movie is a no-op, not an error.
	AddWatchLater(ctx context.Context, userID, movieID string) error

	// RemoveWatchLater drops a movie from the member's list. Removing an
	// absent entry is a no-op, not an error.
	RemoveWatchLater(ctx context.Context, userID, movieID string) error

	// MovieExists reports whether the target movie is present.
	MovieExists(ctx context.Context, movieID string) (bool, error)
}
