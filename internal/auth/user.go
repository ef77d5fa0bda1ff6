// Copyright (c) 2026 CineHub. All rights reserved.

// Package auth implements registration, login, and the identity entities of
// the CineHub platform.
//
// # Architecture
//
// Entities in this file represent the "Truth" of the identity subsystem.
// They have no dependencies on outer layers (databases, HTTP, libraries).
package auth

import (
	"time"

	"github.com/cinehub/api/internal/platform/sec"
)

// User represents a registered principal of the CineHub platform.
//
// # Rules
//   - Email is globally unique (enforced by a storage-layer constraint).
//   - PasswordHash is generated via bcrypt exclusively by [Service]; the
//     plaintext secret is never stored or logged.
//   - Role defaults to [sec.RoleUser] at registration.
type User struct {
	ID           string       `json:"id"`
	Nickname     string       `json:"nickname"`
	Email        string       `json:"email"`
	PasswordHash string       `json:"-"` // Explicitly omitted from JSON for security.
	Role         sec.UserRole `json:"role"`
	CreatedAt    time.Time    `json:"created_at"`
	UpdatedAt    time.Time    `json:"updated_at"`
}

// Role is the seeded reference data backing the authorization hierarchy.
//
// Precedence is a total order compared numerically (admin > user); it is not
// modeled as inheritance between role variants, so adding an intermediate
// role is a data change, not a type change.
type Role struct {
	Name       string `json:"name"`
	Precedence int    `json:"precedence"`
}
