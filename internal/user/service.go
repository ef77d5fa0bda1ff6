// Copyright (c) 2026 CineHub. All rights reserved.

package user

import (
	"context"
	"log/slog"

	"github.com/cinehub/api/internal/platform/apperr"
	"github.com/cinehub/api/internal/platform/ctxutil"
	"github.com/cinehub/api/internal/platform/sec"
	"github.com/cinehub/api/internal/platform/validate"
)

// Service implements the profile and watch-later use cases.
type Service struct {
	profileRepository ProfileRepository
}

// NewService constructs a profile [Service] with its dependency.
func NewService(profileRepo ProfileRepository) *Service {
	return &Service{profileRepository: profileRepo}
}

// ProfileByID returns a public profile with its watch-later list hydrated.
func (service *Service) ProfileByID(ctx context.Context, id string) (*Profile, error) {
	v := &validate.Validator{}
	if err := v.UUID("id", id).Err(); err != nil {
		return nil, err
	}

	profile, err := service.profileRepository.FindProfileByID(ctx, id)
	if err != nil {
		return nil, err
	}

	return service.hydrateWatchLater(ctx, profile)
}

// ProfileByNickname resolves a public profile by display nickname.
func (service *Service) ProfileByNickname(ctx context.Context, nickname string) (*Profile, error) {
	v := &validate.Validator{}
	if err := v.Required("nickname", nickname).Err(); err != nil {
		return nil, err
	}

	profile, err := service.profileRepository.FindProfileByNickname(ctx, nickname)
	if err != nil {
		return nil, err
	}

	return service.hydrateWatchLater(ctx, profile)
}

// WatchLater returns the authenticated member's saved movies.
func (service *Service) WatchLater(ctx context.Context, identity *sec.AuthClaims) ([]*WatchLaterItem, error) {
	items, err := service.profileRepository.ListWatchLater(ctx, identity.UserID)
	if err != nil {
		return nil, err
	}

	if items == nil {
		items = []*WatchLaterItem{}
	}

	return items, nil
}

// SaveWatchLater adds a movie to the member's watch-later list. Saving an
// already-saved movie succeeds without effect.
func (service *Service) SaveWatchLater(ctx context.Context, identity *sec.AuthClaims, movieID string) error {
	v := &validate.Validator{}
	if err := v.UUID("movie_id", movieID).Err(); err != nil {
		return err
	}

	exists, err := service.profileRepository.MovieExists(ctx, movieID)
	if err != nil {
		return err
	}
	if !exists {
		return apperr.NotFound("Movie")
	}

	if err := service.profileRepository.AddWatchLater(ctx, identity.UserID, movieID); err != nil {
		return err
	}

	ctxutil.GetLogger(ctx).InfoContext(ctx, "watch_later_saved",
		slog.String("user_id", identity.UserID),
		slog.String("movie_id", movieID),
	)

	return nil
}

// DropWatchLater removes a movie from the member's watch-later list.
// Removing an absent entry succeeds without effect.
func (service *Service) DropWatchLater(ctx context.Context, identity *sec.AuthClaims, movieID string) error {
	v := &validate.Validator{}
	if err := v.UUID("movie_id", movieID).Err(); err != nil {
		return err
	}

	return service.profileRepository.RemoveWatchLater(ctx, identity.UserID, movieID)
}

// hydrateWatchLater attaches the saved-movie list to a profile.
func (service *Service) hydrateWatchLater(ctx context.Context, profile *Profile) (*Profile, error) {
	items, err := service.profileRepository.ListWatchLater(ctx, profile.ID)
	if err != nil {
		return nil, err
	}

	if items == nil {
		items = []*WatchLaterItem{}
	}
	profile.WatchLater = items

	return profile, nil
}
