// Copyright (c) 2026 CineHub. All rights reserved.

// Package dberr provides a bridge between low-level database errors and
// higher-level application errors.
//
// Uniqueness guarantees (one account per email, one review per
// user/movie pair) rely on storage-layer unique constraints rather than
// application-side check-then-insert. This package is where the resulting
// SQLSTATE 23505 conflicts become domain-visible [apperr.Conflict] errors.
package dberr

import (
	"context"
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/cinehub/api/internal/platform/apperr"
)

// Wrap inspects a database error and wraps it into a meaningful [apperr.AppError].
// It hides internal database details from the client while classifying the error type.
//
// # Parameters
//   - err: The raw error returned by pgx.
//   - resource: The resource name used for NOT_FOUND messages (e.g. "Movie").
//   - conflictMsg: The client-safe message used for unique-constraint conflicts.
func Wrap(err error, resource, conflictMsg string) error {
	if err == nil {
		return nil
	}

	// 1. Not Found mapping
	if errors.Is(err, pgx.ErrNoRows) {
		return apperr.NotFound(resource)
	}

	// 2. Unique-constraint conflicts. A concurrent conflicting insert is
	// rejected by the storage layer and surfaces here.
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
		return apperr.Conflict(conflictMsg)
	}

	// 3. Timeouts and cancellations are transient: surface them as retryable
	// rather than swallowing them or masquerading as internal bugs.
	if errors.Is(err, context.DeadlineExceeded) || pgconn.Timeout(err) {
		return apperr.Unavailable(err)
	}

	// 4. Unknown query errors become Internal Server Errors.
	return apperr.Internal(err)
}

// IsUniqueViolation reports whether err is a Postgres unique-constraint violation.
func IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation
}
