// Copyright (c) 2026 CineHub. All rights reserved.

package catalog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cinehub/api/internal/platform/apperr"
	"github.com/cinehub/api/pkg/pagination"
)

// fakeMovieRepository records the query it receives and returns canned data.
type fakeMovieRepository struct {
	movies []*Movie
	total  int
	rating *float64

	lastFilter    Filter
	lastOrderBy   string
	lastAscending bool
	lastLimit     int
	lastOffset    int
	listCalls     int

	deletedID string
}

func (f *fakeMovieRepository) List(_ context.Context, filter Filter, orderBy string, ascending bool, limit, offset int) ([]*Movie, int, error) {
	f.lastFilter = filter
	f.lastOrderBy = orderBy
	f.lastAscending = ascending
	f.lastLimit = limit
	f.lastOffset = offset
	f.listCalls++
	return f.movies, f.total, nil
}

func (f *fakeMovieRepository) FindByID(_ context.Context, id string) (*Movie, error) {
	for _, movie := range f.movies {
		if movie.ID == id {
			copied := *movie
			return &copied, nil
		}
	}
	return nil, apperr.NotFound("Movie")
}

func (f *fakeMovieRepository) AggregateRating(_ context.Context, _ string) (*float64, error) {
	return f.rating, nil
}

func (f *fakeMovieRepository) Create(_ context.Context, movie *Movie) error {
	f.movies = append(f.movies, movie)
	return nil
}

func (f *fakeMovieRepository) Update(_ context.Context, _ *Movie) error { return nil }

func (f *fakeMovieRepository) Delete(_ context.Context, id string) error {
	f.deletedID = id
	return nil
}

// passthroughRatings skips caching entirely and records invalidations.
type passthroughRatings struct {
	invalidated []string
}

func (p *passthroughRatings) Get(ctx context.Context, _ string, load RatingLoader) (*float64, error) {
	return load(ctx)
}

func (p *passthroughRatings) Invalidate(_ context.Context, movieID string) {
	p.invalidated = append(p.invalidated, movieID)
}

const testMovieID = "0192aaaa-bbbb-7ccc-8ddd-eeeeffff0001"

func newTestService(repo *fakeMovieRepository) (*Service, *passthroughRatings) {
	ratings := &passthroughRatings{}
	return NewService(repo, ratings), ratings
}

func TestService_List(t *testing.T) {
	t.Parallel()

	t.Run("rejects sort fields outside the whitelist", func(t *testing.T) {
		t.Parallel()

		repo := &fakeMovieRepository{}
		service, _ := newTestService(repo)

		_, _, err := service.List(context.Background(), Filter{}, pagination.Sort{OrderBy: "TITLE"})
		appErr := apperr.As(err)
		require.NotNil(t, appErr)
		assert.Equal(t, "VALIDATION_ERROR", appErr.Code)
		assert.Zero(t, repo.listCalls, "an invalid sort must never reach the store")
	})

	t.Run("rejects negative page index", func(t *testing.T) {
		t.Parallel()

		repo := &fakeMovieRepository{}
		service, _ := newTestService(repo)

		_, _, err := service.List(context.Background(), Filter{}, pagination.Sort{Page: -1, OrderBy: SortByRating})
		appErr := apperr.As(err)
		require.NotNil(t, appErr)
		assert.Equal(t, "VALIDATION_ERROR", appErr.Code)
		assert.Zero(t, repo.listCalls)
	})

	t.Run("passes the filter and page window through unchanged", func(t *testing.T) {
		t.Parallel()

		repo := &fakeMovieRepository{total: 23}
		service, _ := newTestService(repo)

		minRuntime := 90
		filter := Filter{Genre: "drama", MinRuntime: &minRuntime}
		sort := pagination.Sort{Page: 2, OrderBy: SortByRating, Ascending: false}

		_, _, err := service.List(context.Background(), filter, sort)
		require.NoError(t, err)

		assert.Equal(t, filter, repo.lastFilter)
		assert.Equal(t, SortByRating, repo.lastOrderBy)
		assert.False(t, repo.lastAscending)
		assert.Equal(t, pagination.PageSize, repo.lastLimit)
		assert.Equal(t, 20, repo.lastOffset)
	})

	t.Run("builds the page envelope for 23 matches", func(t *testing.T) {
		t.Parallel()

		repo := &fakeMovieRepository{
			movies: make([]*Movie, pagination.PageSize),
			total:  23,
		}
		service, _ := newTestService(repo)

		items, meta, err := service.List(context.Background(), Filter{}, pagination.Sort{OrderBy: SortByRating})
		require.NoError(t, err)

		assert.Len(t, items, pagination.PageSize)
		assert.Equal(t, 23, meta.TotalElements)
		assert.Equal(t, 3, meta.TotalPages)
		assert.False(t, meta.IsLast)
	})

	t.Run("out-of-range page yields an empty list with IsLast", func(t *testing.T) {
		t.Parallel()

		repo := &fakeMovieRepository{movies: nil, total: 23}
		service, _ := newTestService(repo)

		items, meta, err := service.List(context.Background(), Filter{}, pagination.Sort{Page: 7, OrderBy: SortByRuntime})
		require.NoError(t, err)

		assert.Empty(t, items)
		assert.NotNil(t, items, "an empty page is [], never null")
		assert.True(t, meta.IsLast)
		assert.Equal(t, 3, meta.TotalPages)
	})
}

func TestService_RuntimePresets(t *testing.T) {
	t.Parallel()

	t.Run("shorts pre-fill an inclusive runtime ceiling", func(t *testing.T) {
		t.Parallel()

		repo := &fakeMovieRepository{}
		service, _ := newTestService(repo)

		_, _, err := service.Shorts(context.Background(), pagination.Sort{OrderBy: SortByRating})
		require.NoError(t, err)

		require.NotNil(t, repo.lastFilter.MaxRuntime)
		assert.Equal(t, 59, *repo.lastFilter.MaxRuntime)
		assert.Nil(t, repo.lastFilter.MinRuntime)
	})

	t.Run("full length pre-fills the runtime floor", func(t *testing.T) {
		t.Parallel()

		repo := &fakeMovieRepository{}
		service, _ := newTestService(repo)

		_, _, err := service.FullLength(context.Background(), pagination.Sort{OrderBy: SortByRating})
		require.NoError(t, err)

		require.NotNil(t, repo.lastFilter.MinRuntime)
		assert.Equal(t, 60, *repo.lastFilter.MinRuntime)
		assert.Nil(t, repo.lastFilter.MaxRuntime)
	})
}

func TestService_Get(t *testing.T) {
	t.Parallel()

	movie := &Movie{ID: testMovieID, Title: "Stalker", Runtime: 162}

	t.Run("hydrates the mean rating", func(t *testing.T) {
		t.Parallel()

		// Reviews rated [6, 8, 10] average to 8.0.
		mean := 8.0
		repo := &fakeMovieRepository{movies: []*Movie{movie}, rating: &mean}
		service, _ := newTestService(repo)

		got, err := service.Get(context.Background(), testMovieID)
		require.NoError(t, err)
		require.NotNil(t, got.Rating)
		assert.InDelta(t, 8.0, *got.Rating, 1e-9)
	})

	t.Run("zero reviews expose the nil sentinel, not 0", func(t *testing.T) {
		t.Parallel()

		repo := &fakeMovieRepository{movies: []*Movie{movie}, rating: nil}
		service, _ := newTestService(repo)

		got, err := service.Get(context.Background(), testMovieID)
		require.NoError(t, err)
		assert.Nil(t, got.Rating)
	})

	t.Run("unknown movie is NOT_FOUND", func(t *testing.T) {
		t.Parallel()

		repo := &fakeMovieRepository{}
		service, _ := newTestService(repo)

		_, err := service.Get(context.Background(), "0192aaaa-bbbb-7ccc-8ddd-eeeeffff0099")
		appErr := apperr.As(err)
		require.NotNil(t, appErr)
		assert.Equal(t, "NOT_FOUND", appErr.Code)
	})
}

func TestService_Mutations(t *testing.T) {
	t.Parallel()

	validInput := MovieInput{
		Title:       "La Jetée",
		Director:    "Chris Marker",
		Actors:      []string{"Hélène Châtelain"},
		Genres:      []string{"sci-fi"},
		Runtime:     28,
		ReleaseYear: 1962,
	}

	t.Run("create assigns an ID and normalizes nil lists", func(t *testing.T) {
		t.Parallel()

		repo := &fakeMovieRepository{}
		service, _ := newTestService(repo)

		input := validInput
		input.Actors = nil

		movie, err := service.Create(context.Background(), input)
		require.NoError(t, err)
		assert.NotEmpty(t, movie.ID)
		assert.NotNil(t, movie.Actors)
		assert.Empty(t, movie.Actors)
	})

	t.Run("create enforces entry rules", func(t *testing.T) {
		t.Parallel()

		testCases := []struct {
			name   string
			mutate func(*MovieInput)
		}{
			{"missing title", func(m *MovieInput) { m.Title = "" }},
			{"missing director", func(m *MovieInput) { m.Director = "" }},
			{"non-positive runtime", func(m *MovieInput) { m.Runtime = 0 }},
			{"release year before cinema", func(m *MovieInput) { m.ReleaseYear = 1800 }},
		}

		for _, testCase := range testCases {
			t.Run(testCase.name, func(t *testing.T) {
				repo := &fakeMovieRepository{}
				service, _ := newTestService(repo)

				input := validInput
				testCase.mutate(&input)

				_, err := service.Create(context.Background(), input)
				appErr := apperr.As(err)
				require.NotNil(t, appErr)
				assert.Equal(t, "VALIDATION_ERROR", appErr.Code)
			})
		}
	})

	t.Run("delete drops the cached rating", func(t *testing.T) {
		t.Parallel()

		repo := &fakeMovieRepository{}
		service, ratings := newTestService(repo)

		require.NoError(t, service.Delete(context.Background(), testMovieID))
		assert.Equal(t, testMovieID, repo.deletedID)
		assert.Equal(t, []string{testMovieID}, ratings.invalidated)
	})
}
