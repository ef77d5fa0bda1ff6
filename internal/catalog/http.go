// Copyright (c) 2026 CineHub. All rights reserved.

package catalog

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/cinehub/api/internal/platform/request"
	"github.com/cinehub/api/internal/platform/respond"
	"github.com/cinehub/api/internal/platform/validate"
	"github.com/cinehub/api/pkg/pagination"
)

// Handler implements the catalog HTTP endpoints.
type Handler struct {
	catalogService *Service
}

// NewHandler constructs a new [Handler] with its service dependency.
func NewHandler(service *Service) *Handler {
	return &Handler{catalogService: service}
}

// Routes returns a [chi.Router] configured with catalog routes.
//
// # Endpoints
//   - GET    /            : Paged, filterable, sortable catalog listing.
//   - GET    /shorts      : Short films (runtime below the feature threshold).
//   - GET    /full-length : Feature-length films.
//   - GET    /{movieID}   : One movie with its aggregate rating.
//   - POST   /            : Add a catalog entry (admin).
//   - PUT    /{movieID}   : Replace a catalog entry (admin).
//   - DELETE /{movieID}   : Remove a catalog entry (admin).
//
// Browsing is public; the admin mutations are gated by the route guard's
// policy table, not by checks in this handler.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/", handler.list)
	router.Get("/shorts", handler.listShorts)
	router.Get("/full-length", handler.listFullLength)
	router.Get("/{movieID}", handler.get)

	router.Post("/", handler.create)
	router.Put("/{movieID}", handler.update)
	router.Delete("/{movieID}", handler.remove)

	return router
}

// list handles GET /movies with optional filter and sort query parameters:
// title, director, actor, genre, minRuntime, maxRuntime, page, orderBy,
// ascending.
func (handler *Handler) list(writer http.ResponseWriter, request *http.Request) {
	filter, err := filterFromRequest(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	sort := pagination.SortFromRequest(request, SortByRating)

	movies, meta, err := handler.catalogService.List(request.Context(), filter, sort)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, movies, meta)
}

// listShorts handles GET /movies/shorts.
func (handler *Handler) listShorts(writer http.ResponseWriter, request *http.Request) {
	sort := pagination.SortFromRequest(request, SortByRating)

	movies, meta, err := handler.catalogService.Shorts(request.Context(), sort)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, movies, meta)
}

// listFullLength handles GET /movies/full-length.
func (handler *Handler) listFullLength(writer http.ResponseWriter, request *http.Request) {
	sort := pagination.SortFromRequest(request, SortByRating)

	movies, meta, err := handler.catalogService.FullLength(request.Context(), sort)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, movies, meta)
}

// get handles GET /movies/{movieID}.
func (handler *Handler) get(writer http.ResponseWriter, request *http.Request) {
	movie, err := handler.catalogService.Get(request.Context(), requestutil.ID(request, "movieID"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, movie)
}

// create handles POST /movies (admin).
func (handler *Handler) create(writer http.ResponseWriter, request *http.Request) {
	var input MovieInput
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	movie, err := handler.catalogService.Create(request.Context(), input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, movie)
}

// update handles PUT /movies/{movieID} (admin).
func (handler *Handler) update(writer http.ResponseWriter, request *http.Request) {
	var input MovieInput
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	movie, err := handler.catalogService.Update(request.Context(), requestutil.ID(request, "movieID"), input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, movie)
}

// remove handles DELETE /movies/{movieID} (admin).
func (handler *Handler) remove(writer http.ResponseWriter, request *http.Request) {
	if err := handler.catalogService.Delete(request.Context(), requestutil.ID(request, "movieID")); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.NoContent(writer)
}

// filterFromRequest parses the optional filter query parameters. A malformed
// runtime bound is a validation error, not a silently ignored parameter.
func filterFromRequest(request *http.Request) (Filter, error) {
	query := request.URL.Query()

	filter := Filter{
		Title:    query.Get("title"),
		Director: query.Get("director"),
		Actor:    query.Get("actor"),
		Genre:    query.Get("genre"),
	}

	for _, bound := range []struct {
		param  string
		target **int
	}{
		{"minRuntime", &filter.MinRuntime},
		{"maxRuntime", &filter.MaxRuntime},
	} {
		raw := query.Get(bound.param)
		if raw == "" {
			continue
		}
		value, err := strconv.Atoi(raw)
		if err != nil {
			return Filter{}, validate.RequiredError(bound.param, "Must be an integer")
		}
		*bound.target = &value
	}

	return filter, nil
}
