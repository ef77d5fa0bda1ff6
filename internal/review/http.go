// Copyright (c) 2026 CineHub. All rights reserved.

package review

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/cinehub/api/internal/platform/request"
	"github.com/cinehub/api/internal/platform/respond"
	"github.com/cinehub/api/pkg/pagination"
)

// Handler implements the review HTTP endpoints.
type Handler struct {
	reviewService *Service
}

// NewHandler constructs a new [Handler] with its service dependency.
func NewHandler(service *Service) *Handler {
	return &Handler{reviewService: service}
}

// Routes returns a [chi.Router] configured with review routes.
//
// # Endpoints
//   - GET    /recent           : Newest reviews with content (bounded feed).
//   - GET    /movie/{movieID}  : Paged reviews for one movie.
//   - GET    /user/{userID}    : Paged reviews authored by one user.
//   - POST   /                 : Post a review (authenticated).
//   - DELETE /{reviewID}       : Delete a review (owner or admin).
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/recent", handler.recent)
	router.Get("/movie/{movieID}", handler.byMovie)
	router.Get("/user/{userID}", handler.byUser)

	router.Post("/", handler.add)
	router.Delete("/{reviewID}", handler.remove)

	return router
}

// recent handles GET /reviews/recent. The result is a bounded top-N feed —
// no page envelope.
func (handler *Handler) recent(writer http.ResponseWriter, request *http.Request) {
	reviews, err := handler.reviewService.Recent(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, reviews)
}

// byMovie handles GET /reviews/movie/{movieID}.
func (handler *Handler) byMovie(writer http.ResponseWriter, request *http.Request) {
	sort := pagination.SortFromRequest(request, SortByTimestamp)

	reviews, meta, err := handler.reviewService.ByMovie(request.Context(), requestutil.ID(request, "movieID"), sort)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, reviews, meta)
}

// byUser handles GET /reviews/user/{userID}.
func (handler *Handler) byUser(writer http.ResponseWriter, request *http.Request) {
	sort := pagination.SortFromRequest(request, SortByTimestamp)

	reviews, meta, err := handler.reviewService.ByUser(request.Context(), requestutil.ID(request, "userID"), sort)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, reviews, meta)
}

// add handles POST /reviews.
func (handler *Handler) add(writer http.ResponseWriter, request *http.Request) {
	identity, err := requestutil.RequiredClaims(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input AddInput
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	review, err := handler.reviewService.Add(request.Context(), identity, input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, review)
}

// remove handles DELETE /reviews/{reviewID}.
func (handler *Handler) remove(writer http.ResponseWriter, request *http.Request) {
	identity, err := requestutil.RequiredClaims(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.reviewService.Delete(request.Context(), identity, requestutil.ID(request, "reviewID")); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.NoContent(writer)
}
