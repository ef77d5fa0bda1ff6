// Copyright (c) 2026 CineHub. All rights reserved.

package catalog

import (
	"context"
	"errors"
	"log/slog"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/cinehub/api/internal/platform/constants"
	"github.com/cinehub/api/internal/platform/ctxutil"
)

// ratingCacheTTL bounds cache staleness when an invalidation is lost
// (e.g. Redis restart between a review write and its DEL).
const ratingCacheTTL = 15 * time.Minute

// noRatingSentinel encodes "zero reviews" in the cache. Caching the absence
// is deliberate: unreviewed movies would otherwise hit the aggregate query
// on every read.
const noRatingSentinel = "none"

// RatingLoader computes the authoritative aggregate rating for a movie.
// A nil result means the movie has no reviews.
type RatingLoader func(ctx context.Context) (*float64, error)

// RatingCache is a Redis read-through cache for derived aggregate ratings.
//
// # Correctness
//
// The cache is a performance optimization only. Every error path degrades to
// the loader, so a broken Redis never breaks catalog reads — it just makes
// them slower. Review inserts and deletes invalidate the affected key.
type RatingCache struct {
	client *redis.Client
}

// NewRatingCache constructs a rating cache on the shared Redis client.
func NewRatingCache(client *redis.Client) *RatingCache {
	return &RatingCache{client: client}
}

// Get returns the cached aggregate rating for a movie, falling back to (and
// then populating from) the loader on a miss.
func (cache *RatingCache) Get(ctx context.Context, movieID string, load RatingLoader) (*float64, error) {
	key := constants.RedisPrefixMovieRating + movieID

	cached, err := cache.client.Get(ctx, key).Result()
	switch {
	case err == nil:
		if cached == noRatingSentinel {
			return nil, nil
		}
		if rating, parseErr := strconv.ParseFloat(cached, 64); parseErr == nil {
			return &rating, nil
		}
		// Unparseable entry: treat as a miss and let the Set below repair it.

	case !errors.Is(err, redis.Nil):
		// Connectivity problems must not fail the read path.
		ctxutil.GetLogger(ctx).WarnContext(ctx, "rating_cache_read_failed",
			slog.String("movie_id", movieID),
			slog.String("error", err.Error()),
		)
	}

	rating, err := load(ctx)
	if err != nil {
		return nil, err
	}

	value := noRatingSentinel
	if rating != nil {
		value = strconv.FormatFloat(*rating, 'f', -1, 64)
	}

	if err := cache.client.Set(ctx, key, value, ratingCacheTTL).Err(); err != nil {
		ctxutil.GetLogger(ctx).WarnContext(ctx, "rating_cache_write_failed",
			slog.String("movie_id", movieID),
			slog.String("error", err.Error()),
		)
	}

	return rating, nil
}

// Invalidate drops the cached rating for a movie. Called after every review
// insert or delete that affects it.
func (cache *RatingCache) Invalidate(ctx context.Context, movieID string) {
	key := constants.RedisPrefixMovieRating + movieID

	if err := cache.client.Del(ctx, key).Err(); err != nil {
		// The TTL caps how long the stale value can survive.
		ctxutil.GetLogger(ctx).WarnContext(ctx, "rating_cache_invalidate_failed",
			slog.String("movie_id", movieID),
			slog.String("error", err.Error()),
		)
	}
}
