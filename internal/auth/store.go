// Copyright (c) 2026 CineHub. All rights reserved.

package auth

import "context"

// # Identity Data Access

// UserRepository defines the credential-store contract the auth service
// depends on. The concrete backing store is an infrastructure concern.
type UserRepository interface {
	// FindByEmail returns the user with the given unique email,
	// or NOT_FOUND if absent.
	FindByEmail(ctx context.Context, email string) (*User, error)

	// FindByID returns the user with the given ID, or NOT_FOUND if absent.
	FindByID(ctx context.Context, id string) (*User, error)

	// Create persists a new user. A concurrent insert with the same email is
	// rejected by the storage layer's unique constraint and surfaces as a
	// CONFLICT error.
	Create(ctx context.Context, user *User) error
}

// RoleRepository provides access to the seeded role reference data.
type RoleRepository interface {
	// FindRoleByName returns the role reference row, or NOT_FOUND when the
	// reference data has not been seeded (a fatal configuration error).
	FindRoleByName(ctx context.Context, name string) (*Role, error)
}
