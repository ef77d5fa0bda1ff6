// Copyright (c) 2026 CineHub. All rights reserved.

package catalog

import (
	"context"
	"log/slog"

	"github.com/cinehub/api/internal/platform/constants"
	"github.com/cinehub/api/internal/platform/ctxutil"
	"github.com/cinehub/api/internal/platform/validate"
	"github.com/cinehub/api/pkg/pagination"
	"github.com/cinehub/api/pkg/uuidv7"
)

// RatingSource supplies derived aggregate ratings. The production
// implementation is the Redis-backed [RatingCache]; tests substitute an
// in-memory fake.
type RatingSource interface {
	Get(ctx context.Context, movieID string, load RatingLoader) (*float64, error)
	Invalidate(ctx context.Context, movieID string)
}

// Service implements the catalog browsing and administration use cases.
type Service struct {
	movieRepository MovieRepository
	ratings         RatingSource
}

// NewService constructs a catalog [Service] with its dependencies.
func NewService(movieRepo MovieRepository, ratings RatingSource) *Service {
	return &Service{
		movieRepository: movieRepo,
		ratings:         ratings,
	}
}

// List executes one paged catalog query.
//
// # Algorithm
//  1. Validate the sort field against the movie whitelist and the page index
//     against zero — both fail loudly, never fall back.
//  2. Compile only the present filter predicates into the fetch.
//  3. Fetch exactly one page, ordered by the sort field with an ID tie-break.
//  4. Return the items plus a page envelope. An out-of-range page yields an
//     empty item list with IsLast set, not an error.
func (service *Service) List(ctx context.Context, filter Filter, sort pagination.Sort) ([]*Movie, pagination.Meta, error) {
	if err := validateSort(sort, SortFields); err != nil {
		return nil, pagination.Meta{}, err
	}

	movies, total, err := service.movieRepository.List(ctx, filter, sort.OrderBy, sort.Ascending, pagination.PageSize, sort.Offset())
	if err != nil {
		return nil, pagination.Meta{}, err
	}

	if movies == nil {
		movies = []*Movie{}
	}

	return movies, pagination.NewMeta(sort.Page, total), nil
}

// Shorts lists short films: the general query with a pre-filled runtime
// ceiling below the feature-length threshold.
func (service *Service) Shorts(ctx context.Context, sort pagination.Sort) ([]*Movie, pagination.Meta, error) {
	maxRuntime := constants.ShortsMaxRuntime - 1
	return service.List(ctx, Filter{MaxRuntime: &maxRuntime}, sort)
}

// FullLength lists feature-length films: runtime at or above the threshold.
func (service *Service) FullLength(ctx context.Context, sort pagination.Sort) ([]*Movie, pagination.Meta, error) {
	minRuntime := constants.ShortsMaxRuntime
	return service.List(ctx, Filter{MinRuntime: &minRuntime}, sort)
}

// Get returns one movie with its aggregate rating hydrated through the
// read-through cache.
func (service *Service) Get(ctx context.Context, id string) (*Movie, error) {
	v := &validate.Validator{}
	if err := v.UUID("id", id).Err(); err != nil {
		return nil, err
	}

	movie, err := service.movieRepository.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	rating, err := service.ratings.Get(ctx, movie.ID, func(loadCtx context.Context) (*float64, error) {
		return service.movieRepository.AggregateRating(loadCtx, movie.ID)
	})
	if err != nil {
		return nil, err
	}
	movie.Rating = rating

	return movie, nil
}

// MovieInput carries the client-supplied fields of a catalog entry. The same
// shape serves create and update: catalog edits are full replacements.
type MovieInput struct {
	Title       string   `json:"title"`
	Director    string   `json:"director"`
	Actors      []string `json:"actors"`
	Genres      []string `json:"genres"`
	Runtime     int      `json:"runtime"`
	ReleaseYear int      `json:"release_year"`
	PosterURL   string   `json:"poster_url"`
}

// validateMovieInput applies the catalog entry business rules.
func validateMovieInput(input MovieInput) error {
	v := &validate.Validator{}
	return v.
		Required("title", input.Title).
		MaxLen("title", input.Title, 255).
		Required("director", input.Director).
		MaxLen("director", input.Director, 255).
		Positive("runtime", input.Runtime).
		Range("release_year", input.ReleaseYear, 1888, 2100).
		Err()
}

// Create adds a new catalog entry. Admin only — enforced by the route guard,
// not re-checked here.
func (service *Service) Create(ctx context.Context, input MovieInput) (*Movie, error) {
	if err := validateMovieInput(input); err != nil {
		return nil, err
	}

	movie := &Movie{
		ID:          uuidv7.New(),
		Title:       input.Title,
		Director:    input.Director,
		Actors:      normalizeList(input.Actors),
		Genres:      normalizeList(input.Genres),
		Runtime:     input.Runtime,
		ReleaseYear: input.ReleaseYear,
		PosterURL:   input.PosterURL,
	}

	if err := service.movieRepository.Create(ctx, movie); err != nil {
		return nil, err
	}

	ctxutil.GetLogger(ctx).InfoContext(ctx, "movie_created",
		slog.String("movie_id", movie.ID),
		slog.String("title", movie.Title),
	)

	return movie, nil
}

// Update replaces the mutable fields of an existing catalog entry.
func (service *Service) Update(ctx context.Context, id string, input MovieInput) (*Movie, error) {
	v := &validate.Validator{}
	if err := v.UUID("id", id).Err(); err != nil {
		return nil, err
	}
	if err := validateMovieInput(input); err != nil {
		return nil, err
	}

	movie := &Movie{
		ID:          id,
		Title:       input.Title,
		Director:    input.Director,
		Actors:      normalizeList(input.Actors),
		Genres:      normalizeList(input.Genres),
		Runtime:     input.Runtime,
		ReleaseYear: input.ReleaseYear,
		PosterURL:   input.PosterURL,
	}

	if err := service.movieRepository.Update(ctx, movie); err != nil {
		return nil, err
	}

	ctxutil.GetLogger(ctx).InfoContext(ctx, "movie_updated",
		slog.String("movie_id", movie.ID),
	)

	return movie, nil
}

// Delete removes a catalog entry. Its reviews cascade at the storage layer,
// so the cached aggregate rating is dropped too.
func (service *Service) Delete(ctx context.Context, id string) error {
	v := &validate.Validator{}
	if err := v.UUID("id", id).Err(); err != nil {
		return err
	}

	if err := service.movieRepository.Delete(ctx, id); err != nil {
		return err
	}

	service.ratings.Invalidate(ctx, id)

	ctxutil.GetLogger(ctx).InfoContext(ctx, "movie_deleted",
		slog.String("movie_id", id),
	)

	return nil
}

// validateSort rejects out-of-whitelist sort fields and negative page
// indexes. Shared with the review listing, which carries its own whitelist.
func validateSort(sort pagination.Sort, allowed []string) error {
	v := &validate.Validator{}
	return v.
		Custom("page", sort.Page < 0, "Page index must be zero or greater").
		OneOf("orderBy", sort.OrderBy, allowed...).
		Err()
}

// normalizeList guarantees a non-nil slice so JSON renders [] instead of null.
func normalizeList(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}
