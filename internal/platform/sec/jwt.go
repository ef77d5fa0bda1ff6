// Copyright (c) 2026 CineHub. All rights reserved.

// Package sec provides cryptographic primitives and token management.
//
// # Architecture
//
// This package isolates security-sensitive code (Hashing, JWT Signing) from
// the domain logic. It acts as an Infrastructure service injected into the
// Application layer via small interfaces ([auth.TokenProvider],
// [middleware.TokenVerifier]).
//
// # Statelessness
//
// Session tokens are never persisted: validity is purely a function of
// signature and expiry, so the server holds no session state. There is no
// revocation list — logout is client-side discard, and a compromised token
// remains valid until its TTL elapses. This is a documented trade-off, not
// an oversight.
package sec

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Sentinel verification failures. Callers map both to the same generic
// rejection — the split exists for logging and tests, not for clients.
var (
	// ErrTokenExpired is returned when the token is well-formed and correctly
	// signed but past its TTL.
	ErrTokenExpired = errors.New("sec: token expired")

	// ErrTokenMalformed is returned when the signature does not verify or the
	// token structure is invalid.
	ErrTokenMalformed = errors.New("sec: token malformed")
)

// AuthClaims represents the payload embedded inside a JWT Access Token.
//
// # Why custom claims?
//
// By embedding the UserID, Nickname, and Role directly inside the JWT,
// the authorization guard can reconstruct the active user context
// WITHOUT querying the database on every single API request.
type AuthClaims struct {
	jwt.RegisteredClaims

	// Custom application claims are abbreviated to keep the JWT payload small.
	UserID   string `json:"uid"`
	Nickname string `json:"nick"`
	Role     string `json:"rol"`
}

// TokenService handles generation and verification of JWT tokens using HS256.
//
// The symmetric signing key is process-wide configuration, loaded once at
// startup and never logged.
type TokenService struct {
	secret     []byte
	issuer     string
	timeToLive time.Duration
}

// NewTokenService creates a new TokenService with a fixed token TTL.
func NewTokenService(secret, issuer string, timeToLive time.Duration) (*TokenService, error) {
	if secret == "" {
		return nil, errors.New("sec: signing secret must not be empty")
	}
	return &TokenService{
		secret:     []byte(secret),
		issuer:     issuer,
		timeToLive: timeToLive,
	}, nil
}

// GenerateAccessToken creates a new signed session token for a user.
func (service *TokenService) GenerateAccessToken(userID, nickname, role string) (string, error) {
	currentTime := time.Now()
	claims := AuthClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			Issuer:    service.issuer,
			IssuedAt:  jwt.NewNumericDate(currentTime),
			ExpiresAt: jwt.NewNumericDate(currentTime.Add(service.timeToLive)),
		},
		UserID:   userID,
		Nickname: nickname,
		Role:     role,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signedToken, err := token.SignedString(service.secret)
	if err != nil {
		return "", fmt.Errorf("sec: failed to sign token: %w", err)
	}

	return signedToken, nil
}

// VerifyToken checks the signature and validity of a JWT string.
//
// # Returns
//   - [ErrTokenExpired] when the token is past its TTL (even if otherwise valid).
//   - [ErrTokenMalformed] for any other structural or signature failure.
func (service *TokenService) VerifyToken(tokenString string) (*AuthClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &AuthClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("sec: unexpected signing method: %v", token.Header["alg"])
		}
		return service.secret, nil
	})

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrTokenMalformed
	}

	claims, ok := token.Claims.(*AuthClaims)
	if !ok || !token.Valid {
		return nil, ErrTokenMalformed
	}

	return claims, nil
}
