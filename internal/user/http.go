// Copyright (c) 2026 CineHub. All rights reserved.

package user

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/cinehub/api/internal/platform/request"
	"github.com/cinehub/api/internal/platform/respond"
)

// Handler implements the profile and watch-later HTTP endpoints.
type Handler struct {
	userService *Service
}

// NewHandler constructs a new [Handler] with its service dependency.
func NewHandler(service *Service) *Handler {
	return &Handler{userService: service}
}

// Routes returns a [chi.Router] configured with user routes.
//
// # Endpoints
//   - GET    /{userID}                  : Public profile by ID.
//   - GET    /nickname/{nickname}       : Public profile by nickname.
//   - GET    /me/watch-later            : Own watch-later list (authenticated).
//   - PUT    /me/watch-later/{movieID}  : Save a movie (idempotent).
//   - DELETE /me/watch-later/{movieID}  : Remove a movie (idempotent).
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/me/watch-later", handler.watchLater)
	router.Put("/me/watch-later/{movieID}", handler.saveWatchLater)
	router.Delete("/me/watch-later/{movieID}", handler.dropWatchLater)

	router.Get("/nickname/{nickname}", handler.profileByNickname)
	router.Get("/{userID}", handler.profileByID)

	return router
}

// profileByID handles GET /users/{userID}.
func (handler *Handler) profileByID(writer http.ResponseWriter, request *http.Request) {
	profile, err := handler.userService.ProfileByID(request.Context(), requestutil.ID(request, "userID"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, profile)
}

// profileByNickname handles GET /users/nickname/{nickname}.
func (handler *Handler) profileByNickname(writer http.ResponseWriter, request *http.Request) {
	profile, err := handler.userService.ProfileByNickname(request.Context(), requestutil.ID(request, "nickname"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, profile)
}

// watchLater handles GET /users/me/watch-later.
func (handler *Handler) watchLater(writer http.ResponseWriter, request *http.Request) {
	identity, err := requestutil.RequiredClaims(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	items, err := handler.userService.WatchLater(request.Context(), identity)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, items)
}

// saveWatchLater handles PUT /users/me/watch-later/{movieID}.
func (handler *Handler) saveWatchLater(writer http.ResponseWriter, request *http.Request) {
	identity, err := requestutil.RequiredClaims(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.userService.SaveWatchLater(request.Context(), identity, requestutil.ID(request, "movieID")); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.NoContent(writer)
}

// dropWatchLater handles DELETE /users/me/watch-later/{movieID}.
func (handler *Handler) dropWatchLater(writer http.ResponseWriter, request *http.Request) {
	identity, err := requestutil.RequiredClaims(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.userService.DropWatchLater(request.Context(), identity, requestutil.ID(request, "movieID")); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.NoContent(writer)
}
