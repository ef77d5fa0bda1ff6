// Copyright (c) 2026 CineHub. All rights reserved.

package middleware

import (
	"net/http"
	"path"
	"strings"

	"github.com/cinehub/api/internal/platform/apperr"
	"github.com/cinehub/api/internal/platform/constants"
	"github.com/cinehub/api/internal/platform/ctxutil"
	"github.com/cinehub/api/internal/platform/respond"
	"github.com/cinehub/api/internal/platform/sec"
)

// TokenVerifier defines the interface needed to verify tokens in middleware.
//
// # Why an interface?
//
// Defining TokenVerifier here decouples the guard from the [sec.TokenService]
// implementation, allowing us to easily inject mocks during unit testing.
type TokenVerifier interface {
	VerifyToken(tokenStr string) (*sec.AuthClaims, error)
}

// Guard enforces the route access policy for every request.
//
// # Flow
//
//  1. Extract the session token from the 'jwt' cookie or the
//     'Authorization: Bearer' header.
//  2. Canonicalize the request path and look up the admission state in the
//     policy [Table]. The decision and the router dispatch must evaluate the
//     same path: a raw path with dot-dot or doubled-slash segments would
//     otherwise slip past the table and still route to a guarded handler.
//  3. Public routes admit unconditionally — a valid token still attaches
//     identity for downstream use, an invalid one is simply ignored.
//  4. Authenticated routes reject with 401 when the token is missing,
//     malformed, or expired. The three cases are deliberately
//     indistinguishable to the client.
//  5. Role-restricted routes additionally compare role precedence and
//     reject with 403 when insufficient.
//  6. Admitted requests carry the decoded [*sec.AuthClaims] in the request
//     context (used downstream, e.g. for review ownership checks).
func Guard(verifier TokenVerifier, table Table) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {

			// ── 1. Credential Extraction ──────────────────────────────────────
			tokenStr := extractToken(request)

			// ── 2. Verification ───────────────────────────────────────────────
			var claims *sec.AuthClaims
			if tokenStr != "" {
				verified, err := verifier.VerifyToken(tokenStr)
				if err == nil {
					claims = verified
				}
			}

			// ── 3. Policy Decision ────────────────────────────────────────────
			rule := table.Decide(request.Method, path.Clean(request.URL.Path))

			switch rule.Access {
			case AccessPublic:
				// Admit unconditionally; identity is optional.

			case AccessAuthenticated:
				if claims == nil {
					respond.Error(writer, request, apperr.Unauthorized("Authentication required"))
					return
				}

			case AccessRole:
				if claims == nil {
					respond.Error(writer, request, apperr.Unauthorized("Authentication required"))
					return
				}
				if !sec.UserRole(claims.Role).AtLeast(rule.Role) {
					respond.Error(writer, request, apperr.Forbidden("Insufficient permissions"))
					return
				}
			}

			// ── 4. Context Injection ──────────────────────────────────────────
			if claims != nil {
				request = request.WithContext(ctxutil.WithAuthUser(request.Context(), claims))
			}

			next.ServeHTTP(writer, request)
		})
	}
}

// extractToken pulls the session token from the auth cookie, falling back to
// the Authorization header. An absent credential returns the empty string —
// downstream it is indistinguishable from an invalid one.
func extractToken(request *http.Request) string {
	if cookie, err := request.Cookie(constants.AuthCookieName); err == nil && cookie.Value != "" {
		return cookie.Value
	}

	authHeader := request.Header.Get("Authorization")
	if authHeader == "" {
		return ""
	}

	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return ""
	}

	return parts[1]
}
