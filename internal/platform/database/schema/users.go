// Copyright (c) 2026 CineHub. All rights reserved.

// Package schema declares table and column identifiers used by the SQL
// repositories. Centralizing the names keeps dynamic query builders free of
// scattered string literals.
package schema

// UsersTable represents the 'users' table
type UsersTable struct {
	Table     string
	ID        string
	Nickname  string
	Email     string
	Password  string
	Role      string
	CreatedAt string
	UpdatedAt string
}

// Users is the schema definition for users
var Users = UsersTable{
	Table:     "users",
	ID:        "id",
	Nickname:  "nickname",
	Email:     "email",
	Password:  "password_hash",
	Role:      "role",
	CreatedAt: "created_at",
	UpdatedAt: "updated_at",
}

// RolesTable represents the 'roles' reference table
type RolesTable struct {
	Table      string
	Name       string
	Precedence string
}

// Roles is the schema definition for roles. Seeded once by migrations;
// the application treats missing rows as a fatal configuration error.
var Roles = RolesTable{
	Table:      "roles",
	Name:       "name",
	Precedence: "precedence",
}

// WatchLaterTable represents the 'watch_later' join table
type WatchLaterTable struct {
	Table   string
	UserID  string
	MovieID string
	AddedAt string
}

// WatchLater is the schema definition for watch_later
var WatchLater = WatchLaterTable{
	Table:   "watch_later",
	UserID:  "user_id",
	MovieID: "movie_id",
	AddedAt: "added_at",
}
