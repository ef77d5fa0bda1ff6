// Copyright (c) 2026 CineHub. All rights reserved.

package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

/*
TestMovieFilterClause verifies the dynamic predicate compilation: only the
filters actually present appear, and the positional arguments number up
contiguously from $1 in predicate order.
*/
func TestMovieFilterClause(t *testing.T) {
	t.Run("empty filter compiles to nothing", func(t *testing.T) {
		clause, args := movieFilterClause(Filter{})

		assert.Empty(t, clause)
		assert.Empty(t, args)
	})

	t.Run("single filter starts at $1", func(t *testing.T) {
		clause, args := movieFilterClause(Filter{Genre: "Horror"})

		assert.Contains(t, clause, "$1")
		assert.Contains(t, clause, "unnest(m.genres)")
		assert.NotContains(t, clause, "$2")
		require.Len(t, args, 1)
		assert.Equal(t, "Horror", args[0])
	})

	t.Run("full filter numbers all six arguments", func(t *testing.T) {
		minRuntime, maxRuntime := 60, 120
		clause, args := movieFilterClause(Filter{
			Title:      "Alien",
			Director:   "Scott",
			Actor:      "Weaver",
			Genre:      "Sci-Fi",
			MinRuntime: &minRuntime,
			MaxRuntime: &maxRuntime,
		})

		require.Len(t, args, 6)
		assert.Equal(t, []any{"Alien", "Scott", "Weaver", "Sci-Fi", 60, 120}, args)
		assert.Contains(t, clause, "m.title ILIKE '%' || $1 || '%'")
		assert.Contains(t, clause, "m.director ILIKE '%' || $2 || '%'")
		assert.Contains(t, clause, "m.runtime >= $5")
		assert.Contains(t, clause, "m.runtime <= $6")
	})
}

/*
TestMovieCountQuery verifies the fallback recount uses the exact predicates
the page query applies, so an out-of-range page still reports true totals.
*/
func TestMovieCountQuery(t *testing.T) {
	minRuntime := 60
	query, args := movieCountQuery(Filter{Director: "Scott", MinRuntime: &minRuntime})

	assert.Contains(t, query, "SELECT COUNT(*) FROM movies m WHERE TRUE")
	assert.Contains(t, query, "m.director ILIKE '%' || $1 || '%'")
	assert.Contains(t, query, "m.runtime >= $2")
	assert.Equal(t, []any{"Scott", 60}, args)
}
