// Copyright (c) 2026 CineHub. All rights reserved.

package catalog

import "context"

// # Catalog Data Access

// MovieRepository defines the storage contract the catalog service depends
// on. The concrete backing store is an infrastructure concern.
type MovieRepository interface {
	// List returns one page of movies matching the filter, ordered by the
	// given column expression and direction with a stable tie-break on the
	// movie ID, plus the total number of matching rows. Each returned movie
	// carries its derived aggregate rating.
	List(ctx context.Context, filter Filter, orderBy string, ascending bool, limit, offset int) ([]*Movie, int, error)

	// FindByID returns the movie row, or NOT_FOUND if absent. The aggregate
	// rating is NOT hydrated here — single-movie reads go through the rating
	// cache in the service layer.
	FindByID(ctx context.Context, id string) (*Movie, error)

	// AggregateRating computes the arithmetic mean of all review ratings for
	// the movie. A nil result means the movie has zero reviews.
	AggregateRating(ctx context.Context, movieID string) (*float64, error)

	// Create persists a new movie row.
	Create(ctx context.Context, movie *Movie) error

	// Update replaces the mutable fields of an existing movie,
	// or NOT_FOUND if absent.
	Update(ctx context.Context, movie *Movie) error

	// Delete removes a movie and (via storage-level cascade) its reviews and
	// watch-later references, or NOT_FOUND if absent.
	Delete(ctx context.Context, id string) error
}
