// Copyright (c) 2026 CineHub. All rights reserved.

package review

import (
	"context"
	"log/slog"

	"github.com/cinehub/api/internal/platform/apperr"
	"github.com/cinehub/api/internal/platform/constants"
	"github.com/cinehub/api/internal/platform/ctxutil"
	"github.com/cinehub/api/internal/platform/sec"
	"github.com/cinehub/api/internal/platform/validate"
	"github.com/cinehub/api/pkg/pagination"
	"github.com/cinehub/api/pkg/uuidv7"
)

// RatingInvalidator drops a movie's cached aggregate rating. Satisfied by
// the catalog's Redis rating cache; reviews only ever invalidate, never read.
type RatingInvalidator interface {
	Invalidate(ctx context.Context, movieID string)
}

// Service implements the review use cases.
type Service struct {
	reviewRepository ReviewRepository
	ratings          RatingInvalidator
}

// NewService constructs a review [Service] with its dependencies.
func NewService(reviewRepo ReviewRepository, ratings RatingInvalidator) *Service {
	return &Service{
		reviewRepository: reviewRepo,
		ratings:          ratings,
	}
}

// AddInput carries the client-supplied fields of a new review.
type AddInput struct {
	MovieID string `json:"movie_id"`
	Rating  int    `json:"rating"`
	Content string `json:"content"`
}

// Add posts a review on behalf of the authenticated user.
//
// # Returns
//   - [apperr.NotFound] when the target movie is absent.
//   - A validation error when the rating falls outside the fixed scale.
//   - [apperr.Conflict] when the user has already reviewed this movie —
//     regardless of rating or content differences.
//
// The creation timestamp is server-assigned. A successful insert invalidates
// the movie's cached aggregate rating.
func (service *Service) Add(ctx context.Context, identity *sec.AuthClaims, input AddInput) (*Review, error) {
	// ── 1. Input Validation ───────────────────────────────────────────────

	v := &validate.Validator{}
	err := v.
		UUID("movie_id", input.MovieID).
		Range("rating", input.Rating, constants.ReviewRatingMin, constants.ReviewRatingMax).
		MaxLen("content", input.Content, 4000).
		Err()
	if err != nil {
		return nil, err
	}

	// ── 2. Target Existence ───────────────────────────────────────────────

	exists, err := service.reviewRepository.MovieExists(ctx, input.MovieID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, apperr.NotFound("Movie")
	}

	// ── 3. Persistence ────────────────────────────────────────────────────

	// The unique (user, movie) constraint is the authority on duplicates;
	// a concurrent double-submit loses at the storage layer, not here.
	review := &Review{
		ID:      uuidv7.New(),
		UserID:  identity.UserID,
		MovieID: input.MovieID,
		Rating:  input.Rating,
		Content: input.Content,
	}

	if err := service.reviewRepository.Create(ctx, review); err != nil {
		return nil, err
	}

	// ── 4. Cache Invalidation ─────────────────────────────────────────────

	service.ratings.Invalidate(ctx, input.MovieID)

	ctxutil.GetLogger(ctx).InfoContext(ctx, "review_added",
		slog.String("review_id", review.ID),
		slog.String("movie_id", review.MovieID),
		slog.String("user_id", review.UserID),
	)

	return review, nil
}

// Delete removes a review.
//
// Only the owner may delete their review — except admins, who may delete any
// review (explicit moderation policy). The movie's cached rating is dropped
// on success.
func (service *Service) Delete(ctx context.Context, identity *sec.AuthClaims, reviewID string) error {
	v := &validate.Validator{}
	if err := v.UUID("review_id", reviewID).Err(); err != nil {
		return err
	}

	review, err := service.reviewRepository.FindByID(ctx, reviewID)
	if err != nil {
		return err
	}

	if review.UserID != identity.UserID && !sec.UserRole(identity.Role).AtLeast(sec.RoleAdmin) {
		return apperr.Forbidden("You can only delete your own reviews")
	}

	if err := service.reviewRepository.Delete(ctx, reviewID); err != nil {
		return err
	}

	service.ratings.Invalidate(ctx, review.MovieID)

	ctxutil.GetLogger(ctx).InfoContext(ctx, "review_deleted",
		slog.String("review_id", reviewID),
		slog.String("movie_id", review.MovieID),
		slog.String("deleted_by", identity.UserID),
	)

	return nil
}

// ByMovie returns one page of a movie's reviews.
func (service *Service) ByMovie(ctx context.Context, movieID string, sort pagination.Sort) ([]*Review, pagination.Meta, error) {
	v := &validate.Validator{}
	if err := v.UUID("movie_id", movieID).Err(); err != nil {
		return nil, pagination.Meta{}, err
	}
	if err := validateSort(sort); err != nil {
		return nil, pagination.Meta{}, err
	}

	exists, err := service.reviewRepository.MovieExists(ctx, movieID)
	if err != nil {
		return nil, pagination.Meta{}, err
	}
	if !exists {
		return nil, pagination.Meta{}, apperr.NotFound("Movie")
	}

	reviews, total, err := service.reviewRepository.ListByMovie(ctx, movieID, sort.OrderBy, sort.Ascending, pagination.PageSize, sort.Offset())
	if err != nil {
		return nil, pagination.Meta{}, err
	}

	if reviews == nil {
		reviews = []*Review{}
	}

	return reviews, pagination.NewMeta(sort.Page, total), nil
}

// ByUser returns one page of a user's authored reviews.
func (service *Service) ByUser(ctx context.Context, userID string, sort pagination.Sort) ([]*Review, pagination.Meta, error) {
	v := &validate.Validator{}
	if err := v.UUID("user_id", userID).Err(); err != nil {
		return nil, pagination.Meta{}, err
	}
	if err := validateSort(sort); err != nil {
		return nil, pagination.Meta{}, err
	}

	reviews, total, err := service.reviewRepository.ListByUser(ctx, userID, sort.OrderBy, sort.Ascending, pagination.PageSize, sort.Offset())
	if err != nil {
		return nil, pagination.Meta{}, err
	}

	if reviews == nil {
		reviews = []*Review{}
	}

	return reviews, pagination.NewMeta(sort.Page, total), nil
}

// Recent returns the newest reviews with non-empty content, capped to the
// fixed feed size. Not pageable: a bounded top-N with no envelope.
func (service *Service) Recent(ctx context.Context) ([]*Review, error) {
	reviews, err := service.reviewRepository.RecentWithContent(ctx, constants.RecentReviewLimit)
	if err != nil {
		return nil, err
	}

	if reviews == nil {
		reviews = []*Review{}
	}

	return reviews, nil
}

// validateSort rejects out-of-whitelist sort fields and negative page indexes.
func validateSort(sort pagination.Sort) error {
	v := &validate.Validator{}
	return v.
		Custom("page", sort.Page < 0, "Page index must be zero or greater").
		OneOf("orderBy", sort.OrderBy, SortFields...).
		Err()
}
