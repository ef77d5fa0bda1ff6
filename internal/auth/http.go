// Copyright (c) 2026 CineHub. All rights reserved.

package auth

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/cinehub/api/internal/platform/constants"
	requestutil "github.com/cinehub/api/internal/platform/request"
	"github.com/cinehub/api/internal/platform/respond"
)

// Handler implements authentication-related HTTP endpoints.
//
// # Scope
//
// This handler manages the user lifecycle entry points (registration and
// login). It contains NO business logic or database queries.
type Handler struct {
	authService *Service
}

// NewHandler constructs a new [Handler] with its service dependency.
func NewHandler(service *Service) *Handler {
	return &Handler{authService: service}
}

// Routes returns a [chi.Router] configured with authentication-specific routes.
//
// # Endpoints
//   - POST /register     : Creates a new account and issues a session token.
//   - POST /authenticate : Validates credentials and issues a session token.
//   - POST /logout       : Clears the session cookie (client-side discard —
//     the token itself stays valid until its TTL elapses).
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Post("/register", handler.register)
	router.Post("/authenticate", handler.authenticate)
	router.Post("/logout", handler.logout)

	return router
}

// registerRequest represents the JSON payload expected for account creation.
type registerRequest struct {
	Nickname string `json:"nickname"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// register handles POST /auth/register requests.
//
// # Returns
//   - Writes HTTP 201 Created with {token, nickname, role} on success.
//   - Writes HTTP 400 Bad Request if validation rules fail.
//   - Writes HTTP 409 Conflict if the email is taken.
func (handler *Handler) register(writer http.ResponseWriter, request *http.Request) {
	var input registerRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	session, err := handler.authService.Register(request.Context(), RegisterInput{
		Nickname: input.Nickname,
		Email:    input.Email,
		Password: input.Password,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	setSessionCookie(writer, session.Token)
	respond.Created(writer, session)
}

// loginRequest represents the JSON payload expected for authentication.
type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// authenticate handles POST /auth/authenticate requests.
//
// # Returns
//   - Writes HTTP 200 OK with {token, nickname, role} on success.
//   - Writes HTTP 401 Unauthorized for bad credentials (unknown email and
//     wrong password are indistinguishable by design).
func (handler *Handler) authenticate(writer http.ResponseWriter, request *http.Request) {
	var input loginRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	session, err := handler.authService.Authenticate(request.Context(), LoginInput{
		Email:    input.Email,
		Password: input.Password,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	setSessionCookie(writer, session.Token)
	respond.OK(writer, session)
}

// logout handles POST /auth/logout requests.
//
// Sessions are stateless, so logout only clears the cookie. A copied token
// remains valid until expiry — a documented limitation of the design.
func (handler *Handler) logout(writer http.ResponseWriter, request *http.Request) {
	http.SetCookie(writer, &http.Cookie{
		Name:     constants.AuthCookieName,
		Value:    "",
		Path:     constants.AuthCookiePath,
		MaxAge:   -1,
		Secure:   true,
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
	})

	respond.NoContent(writer)
}

// setSessionCookie attaches the signed session token to the response.
func setSessionCookie(writer http.ResponseWriter, token string) {
	http.SetCookie(writer, &http.Cookie{
		Name:     constants.AuthCookieName,
		Value:    token,
		Path:     constants.AuthCookiePath,
		Expires:  time.Now().Add(constants.TokenTTL),
		Secure:   true,
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
	})
}
