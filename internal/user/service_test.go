// Copyright (c) 2026 CineHub. All rights reserved.

package user

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cinehub/api/internal/platform/apperr"
	"github.com/cinehub/api/internal/platform/sec"
)

const (
	testProfileID = "0192aaaa-bbbb-7ccc-8ddd-eeeeffff4001"
	testMovieID   = "0192aaaa-bbbb-7ccc-8ddd-eeeeffff4002"
)

// fakeProfileRepository is an in-memory [ProfileRepository].
type fakeProfileRepository struct {
	profiles    map[string]*Profile
	watchLater  map[string][]string // userID -> movieIDs
	knownMovies map[string]bool
}

func newFakeProfileRepository() *fakeProfileRepository {
	return &fakeProfileRepository{
		profiles: map[string]*Profile{
			testProfileID: {ID: testProfileID, Nickname: "moviebuff"},
		},
		watchLater:  map[string][]string{},
		knownMovies: map[string]bool{testMovieID: true},
	}
}

func (f *fakeProfileRepository) FindProfileByID(_ context.Context, id string) (*Profile, error) {
	profile, ok := f.profiles[id]
	if !ok {
		return nil, apperr.NotFound("User")
	}
	copied := *profile
	return &copied, nil
}

func (f *fakeProfileRepository) FindProfileByNickname(_ context.Context, nickname string) (*Profile, error) {
	for _, profile := range f.profiles {
		if profile.Nickname == nickname {
			copied := *profile
			return &copied, nil
		}
	}
	return nil, apperr.NotFound("User")
}

func (f *fakeProfileRepository) ListWatchLater(_ context.Context, userID string) ([]*WatchLaterItem, error) {
	var items []*WatchLaterItem
	for _, movieID := range f.watchLater[userID] {
		items = append(items, &WatchLaterItem{MovieID: movieID})
	}
	return items, nil
}

func (f *fakeProfileRepository) AddWatchLater(_ context.Context, userID, movieID string) error {
	for _, existing := range f.watchLater[userID] {
		if existing == movieID {
			return nil // idempotent
		}
	}
	f.watchLater[userID] = append(f.watchLater[userID], movieID)
	return nil
}

func (f *fakeProfileRepository) RemoveWatchLater(_ context.Context, userID, movieID string) error {
	kept := f.watchLater[userID][:0]
	for _, existing := range f.watchLater[userID] {
		if existing != movieID {
			kept = append(kept, existing)
		}
	}
	f.watchLater[userID] = kept
	return nil
}

func (f *fakeProfileRepository) MovieExists(_ context.Context, movieID string) (bool, error) {
	return f.knownMovies[movieID], nil
}

func identity() *sec.AuthClaims {
	return &sec.AuthClaims{UserID: testProfileID, Nickname: "moviebuff", Role: string(sec.RoleUser)}
}

func TestService_Profiles(t *testing.T) {
	t.Parallel()

	t.Run("profile by ID hydrates watch-later as empty, never null", func(t *testing.T) {
		t.Parallel()

		repo := newFakeProfileRepository()
		service := NewService(repo)

		profile, err := service.ProfileByID(context.Background(), testProfileID)
		require.NoError(t, err)
		assert.Equal(t, "moviebuff", profile.Nickname)
		assert.NotNil(t, profile.WatchLater)
		assert.Empty(t, profile.WatchLater)
	})

	t.Run("profile by nickname resolves", func(t *testing.T) {
		t.Parallel()

		repo := newFakeProfileRepository()
		service := NewService(repo)

		profile, err := service.ProfileByNickname(context.Background(), "moviebuff")
		require.NoError(t, err)
		assert.Equal(t, testProfileID, profile.ID)
	})

	t.Run("unknown member is NOT_FOUND", func(t *testing.T) {
		t.Parallel()

		repo := newFakeProfileRepository()
		service := NewService(repo)

		_, err := service.ProfileByNickname(context.Background(), "nobody")
		appErr := apperr.As(err)
		require.NotNil(t, appErr)
		assert.Equal(t, "NOT_FOUND", appErr.Code)
	})
}

func TestService_WatchLater(t *testing.T) {
	t.Parallel()

	t.Run("save then list then drop", func(t *testing.T) {
		t.Parallel()

		repo := newFakeProfileRepository()
		service := NewService(repo)

		require.NoError(t, service.SaveWatchLater(context.Background(), identity(), testMovieID))

		items, err := service.WatchLater(context.Background(), identity())
		require.NoError(t, err)
		require.Len(t, items, 1)
		assert.Equal(t, testMovieID, items[0].MovieID)

		require.NoError(t, service.DropWatchLater(context.Background(), identity(), testMovieID))

		items, err = service.WatchLater(context.Background(), identity())
		require.NoError(t, err)
		assert.Empty(t, items)
		assert.NotNil(t, items)
	})

	t.Run("saving twice is a no-op, not an error", func(t *testing.T) {
		t.Parallel()

		repo := newFakeProfileRepository()
		service := NewService(repo)

		require.NoError(t, service.SaveWatchLater(context.Background(), identity(), testMovieID))
		require.NoError(t, service.SaveWatchLater(context.Background(), identity(), testMovieID))

		items, err := service.WatchLater(context.Background(), identity())
		require.NoError(t, err)
		assert.Len(t, items, 1)
	})

	t.Run("saving an unknown movie is NOT_FOUND", func(t *testing.T) {
		t.Parallel()

		repo := newFakeProfileRepository()
		service := NewService(repo)

		err := service.SaveWatchLater(context.Background(), identity(), "0192aaaa-bbbb-7ccc-8ddd-eeeeffff4099")
		appErr := apperr.As(err)
		require.NotNil(t, appErr)
		assert.Equal(t, "NOT_FOUND", appErr.Code)
	})

	t.Run("dropping an absent entry succeeds silently", func(t *testing.T) {
		t.Parallel()

		repo := newFakeProfileRepository()
		service := NewService(repo)

		assert.NoError(t, service.DropWatchLater(context.Background(), identity(), testMovieID))
	})
}
