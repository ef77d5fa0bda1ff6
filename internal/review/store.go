// Copyright (c) 2026 CineHub. All rights reserved.

package review

import "context"

// # Review Data Access

// ReviewRepository defines the storage contract the review service depends on.
type ReviewRepository interface {
	// ListByMovie returns one page of a movie's reviews plus the total count,
	// ordered by the given whitelisted field with a stable ID tie-break.
	ListByMovie(ctx context.Context, movieID, orderBy string, ascending bool, limit, offset int) ([]*Review, int, error)

	// ListByUser returns one page of a user's authored reviews plus the
	// total count.
	ListByUser(ctx context.Context, userID, orderBy string, ascending bool, limit, offset int) ([]*Review, int, error)

	// RecentWithContent returns up to limit reviews that carry non-empty
	// content, newest first. This is a bounded top-N, not a page: there is no
	// page index and no total count.
	RecentWithContent(ctx context.Context, limit int) ([]*Review, error)

	// FindByID returns the review row, or NOT_FOUND if absent.
	FindByID(ctx context.Context, id string) (*Review, error)

	// Create persists a new review. A second review by the same user for the
	// same movie is rejected by the storage layer's unique constraint and
	// surfaces as a CONFLICT error.
	Create(ctx context.Context, review *Review) error

	// Delete removes a review row, or NOT_FOUND if absent.
	Delete(ctx context.Context, id string) error

	// MovieExists reports whether the target movie is present. Kept on this
	// repository so the review service does not depend on the catalog package.
	MovieExists(ctx context.Context, movieID string) (bool, error)
}
