// Copyright (c) 2026 CineHub. All rights reserved.

/*
Package constants provides centralized, immutable values for the entire platform.

It defines default timeouts, rate limits, and cross-cutting keys that are shared
between different layers of the system.

Categories:

  - Server Timing: Read/Write/Idle timeouts for the HTTP server.
  - Catalog: Runtime thresholds and review bounds.
  - Security: JWT issuer, token TTL, and cookie configuration.

Using this package ensures Magic Strings and Magic Numbers are eliminated
from the business logic.
*/
package constants

import "time"

// # Metadata

const (
	AppName    = "cinehub-api"
	AppVersion = "0.1.0-dev"
)

// # Server Timing

const (
	// DefaultReadTimeout is the maximum duration for reading the entire request.
	DefaultReadTimeout = 5 * time.Second

	// DefaultWriteTimeout is the maximum duration before timing out writes of the response.
	DefaultWriteTimeout = 10 * time.Second

	// DefaultIdleTimeout is the maximum amount of time to wait for the next request.
	DefaultIdleTimeout = 120 * time.Second

	// DefaultReadHeaderTimeout is the amount of time allowed to read request headers.
	DefaultReadHeaderTimeout = 2 * time.Second

	// GlobalRequestTimeout is the deadline for the entire request lifecycle.
	GlobalRequestTimeout = 30 * time.Second

	// ShutdownTimeout is how long we wait for in-flight requests to complete during shutdown.
	ShutdownTimeout = 30 * time.Second
)

// # Catalog & Reviews

// The fixed page size lives in pkg/pagination, next to the offset and
// envelope math that depends on it.
const (
	// ShortsMaxRuntime is the runtime threshold (minutes) separating short films
	// from full-length features. Movies with runtime < ShortsMaxRuntime are
	// "shorts"; runtime >= ShortsMaxRuntime is "full length".
	ShortsMaxRuntime = 60

	// ReviewRatingMin and ReviewRatingMax bound the review rating scale.
	ReviewRatingMin = 1
	ReviewRatingMax = 10

	// RecentReviewLimit caps the "most recent reviews with content" query.
	// This query is a bounded top-N, not a page.
	RecentReviewLimit = 5
)

// # Rate Limiting

const (
	// DefaultRateLimitRPS is the requests per second allowed per IP.
	DefaultRateLimitRPS = 100.0

	// DefaultRateLimitBurst is the maximum burst allowed for the rate limiter.
	DefaultRateLimitBurst = 150

	// RateLimitCleanupInterval is how often old IP entries are removed from memory.
	RateLimitCleanupInterval = 1 * time.Minute

	// RateLimitClientTTL is how long a client must be idle before its entry is deleted.
	RateLimitClientTTL = 3 * time.Minute
)

// # Authentication

const (
	// AuthIssuer is the standard 'iss' claim in JWTs.
	AuthIssuer = "cinehub.app"

	// TokenTTL is the fixed lifetime of a session token. There is no refresh
	// mechanism: expiry forces re-authentication.
	TokenTTL = 24 * time.Hour

	// AuthCookieName is the cookie that carries the signed session token.
	AuthCookieName = "jwt"

	// AuthCookiePath scopes the session cookie to the whole API.
	AuthCookiePath = "/"
)

// # HTTP Headers

const (
	HeaderXRequestID    = "X-Request-ID"
	HeaderXRealIP       = "X-Real-IP"
	HeaderXForwardedFor = "X-Forwarded-For"
	HeaderOrigin        = "Origin"
)

// # JSON Field Identifiers

const (
	FieldData    = "data"
	FieldMeta    = "meta"
	FieldError   = "error"
	FieldCode    = "code"
	FieldDetails = "details"
	FieldItems   = "items"
	FieldStatus  = "status"
	FieldApp     = "app"
	FieldVersion = "version"
	FieldChecks  = "checks"
)

// # Redis Prefixes (Cache Taxonomy)

const (
	// RedisPrefixMovieRating keys the cached aggregate rating per movie.
	RedisPrefixMovieRating = "catalog:rating:"
)
