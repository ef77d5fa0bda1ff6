// Copyright (c) 2026 CineHub. All rights reserved.

package middleware

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cinehub/api/internal/platform/sec"
)

func testTable() Table {
	return Table{
		{Methods: []string{http.MethodPost}, Pattern: "/api/v1/movies", Access: AccessRole, Role: sec.RoleAdmin},
		{Methods: []string{http.MethodPut, http.MethodDelete}, Pattern: "/api/v1/movies/*", Access: AccessRole, Role: sec.RoleAdmin},
		{Methods: []string{http.MethodPost}, Pattern: "/api/v1/reviews", Access: AccessAuthenticated},
		{Pattern: "/api/v1/users/me/**", Access: AccessAuthenticated},
	}
}

/*
TestTable_Decide verifies first-match-wins evaluation and the Public default.
*/
func TestTable_Decide(t *testing.T) {
	table := testTable()

	tests := []struct {
		name     string
		method   string
		path     string
		expected Access
	}{
		{"admin_create_movie", http.MethodPost, "/api/v1/movies", AccessRole},
		{"admin_delete_movie", http.MethodDelete, "/api/v1/movies/some-id", AccessRole},
		{"admin_update_movie", http.MethodPut, "/api/v1/movies/some-id", AccessRole},
		{"public_browse_movies", http.MethodGet, "/api/v1/movies", AccessPublic},
		{"public_movie_detail", http.MethodGet, "/api/v1/movies/some-id", AccessPublic},
		{"auth_post_review", http.MethodPost, "/api/v1/reviews", AccessAuthenticated},
		{"public_review_feed", http.MethodGet, "/api/v1/reviews/recent", AccessPublic},
		{"auth_watch_later_root", http.MethodGet, "/api/v1/users/me/watch-later", AccessAuthenticated},
		{"auth_watch_later_item", http.MethodPut, "/api/v1/users/me/watch-later/some-id", AccessAuthenticated},
		{"public_profile", http.MethodGet, "/api/v1/users/some-id", AccessPublic},
		{"public_unknown_path", http.MethodGet, "/totally/elsewhere", AccessPublic},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rule := table.Decide(tt.method, tt.path)
			assert.Equal(t, tt.expected, rule.Access)
		})
	}
}

/*
TestMatchPattern covers the three pattern forms: literal, single-segment
wildcard, and terminal rest-of-path wildcard.
*/
func TestMatchPattern(t *testing.T) {
	tests := []struct {
		pattern string
		path    string
		matches bool
	}{
		{"/movies", "/movies", true},
		{"/movies", "/movies/", true}, // trailing slash normalizes away
		{"/movies", "/movies/id", false},
		{"/movies/*", "/movies/id", true},
		{"/movies/*", "/movies", false},
		{"/movies/*", "/movies/id/extra", false},
		{"/users/me/**", "/users/me", true}, // terminal ** matches nothing too
		{"/users/me/**", "/users/me/watch-later", true},
		{"/users/me/**", "/users/me/watch-later/id", true},
		{"/users/me/**", "/users/other", false},
	}

	for _, tt := range tests {
		t.Run(tt.pattern+"_vs_"+tt.path, func(t *testing.T) {
			assert.Equal(t, tt.matches, matchPattern(tt.pattern, tt.path))
		})
	}
}
