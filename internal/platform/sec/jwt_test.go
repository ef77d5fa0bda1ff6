// Copyright (c) 2026 CineHub. All rights reserved.

package sec_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cinehub/api/internal/platform/sec"
)

const testSecret = "unit-test-signing-secret-0123456789"

func newTokenService(t *testing.T, ttl time.Duration) *sec.TokenService {
	t.Helper()
	service, err := sec.NewTokenService(testSecret, "cinehub.app", ttl)
	require.NoError(t, err)
	return service
}

/*
TestTokenService_RoundTrip verifies that a freshly issued token carries the
identity claims back through verification.
*/
func TestTokenService_RoundTrip(t *testing.T) {
	service := newTokenService(t, time.Hour)

	token, err := service.GenerateAccessToken("user-123", "moviebuff", "user")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := service.VerifyToken(token)
	require.NoError(t, err)

	assert.Equal(t, "user-123", claims.UserID)
	assert.Equal(t, "moviebuff", claims.Nickname)
	assert.Equal(t, "user", claims.Role)
	assert.Equal(t, "cinehub.app", claims.Issuer)
}

/*
TestTokenService_Expired verifies that a token past its TTL fails with the
expiry sentinel, even though it is otherwise well-formed.
*/
func TestTokenService_Expired(t *testing.T) {
	service := newTokenService(t, -time.Minute) // Already expired at issuance.

	token, err := service.GenerateAccessToken("user-123", "moviebuff", "user")
	require.NoError(t, err)

	_, err = service.VerifyToken(token)
	assert.ErrorIs(t, err, sec.ErrTokenExpired)
}

/*
TestTokenService_Tampered verifies that signature tampering is Malformed, not
Expired — the two sentinels exist for logging, never for clients.
*/
func TestTokenService_Tampered(t *testing.T) {
	service := newTokenService(t, time.Hour)

	token, err := service.GenerateAccessToken("user-123", "moviebuff", "user")
	require.NoError(t, err)

	// Flip the last signature byte.
	tampered := token[:len(token)-1]
	if token[len(token)-1] == 'A' {
		tampered += "B"
	} else {
		tampered += "A"
	}

	_, err = service.VerifyToken(tampered)
	assert.ErrorIs(t, err, sec.ErrTokenMalformed)
}

/*
TestTokenService_WrongKey verifies that a token signed under a different
secret never verifies.
*/
func TestTokenService_WrongKey(t *testing.T) {
	issuing := newTokenService(t, time.Hour)
	verifying, err := sec.NewTokenService("a-completely-different-secret-key", "cinehub.app", time.Hour)
	require.NoError(t, err)

	token, err := issuing.GenerateAccessToken("user-123", "moviebuff", "user")
	require.NoError(t, err)

	_, err = verifying.VerifyToken(token)
	assert.ErrorIs(t, err, sec.ErrTokenMalformed)
}

/*
TestTokenService_Garbage verifies structural failures map to Malformed.
*/
func TestTokenService_Garbage(t *testing.T) {
	service := newTokenService(t, time.Hour)

	for _, input := range []string{"", "not-a-jwt", "a.b.c"} {
		_, err := service.VerifyToken(input)
		assert.ErrorIs(t, err, sec.ErrTokenMalformed, "input %q", input)
	}
}

/*
TestNewTokenService_EmptySecret verifies that the service refuses to start
without a signing key.
*/
func TestNewTokenService_EmptySecret(t *testing.T) {
	_, err := sec.NewTokenService("", "cinehub.app", time.Hour)
	assert.Error(t, err)
}
