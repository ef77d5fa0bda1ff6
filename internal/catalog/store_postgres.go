// Copyright (c) 2026 CineHub. All rights reserved.

/*
Catalog PostgreSQL repository.

It utilizes advanced Postgres features to deliver the discovery experience:
  - Window Functions: COUNT(*) OVER() retrieves total result counts without
    a second round-trip.
  - Array Operators: actor and genre containment is evaluated with unnest()
    over native text[] columns.
  - Dynamic Composition: only the filter predicates actually present are
    compiled into the WHERE clause, with positional arguments throughout.
*/
package catalog

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/cinehub/api/internal/platform/apperr"
	"github.com/cinehub/api/internal/platform/database/schema"
	"github.com/cinehub/api/internal/platform/dberr"
)

// # PostgreSQL Repositories

// movieRepository implements [MovieRepository] using pgx.
type movieRepository struct {
	pool *pgxpool.Pool
}

// NewMovieRepository constructs a PostgreSQL backed catalog store.
func NewMovieRepository(pool *pgxpool.Pool) MovieRepository {
	return &movieRepository{pool: pool}
}

// sortColumns maps whitelisted sort fields to their ORDER BY expressions.
// The rating expression sorts the derived aggregate; NULLS LAST keeps
// unreviewed movies at the tail regardless of direction.
var sortColumns = map[string]string{
	SortByRating:      "rating",
	SortByReleaseYear: "m." + schema.Movies.ReleaseYear,
	SortByRuntime:     "m." + schema.Movies.Runtime,
}

// movieFilterClause compiles the present filter predicates into a WHERE
// fragment with positional arguments starting at $1. The page query and the
// fallback recount share it, so both always agree on what matches.
func movieFilterClause(filter Filter) (string, []any) {
	var clause strings.Builder
	var args []any
	argID := 1

	if filter.Title != "" {
		clause.WriteString(fmt.Sprintf(" AND m.%s ILIKE '%%' || $%d || '%%'", schema.Movies.Title, argID))
		args = append(args, filter.Title)
		argID++
	}

	// Director substring match
	if filter.Director != "" {
		clause.WriteString(fmt.Sprintf(" AND m.%s ILIKE '%%' || $%d || '%%'", schema.Movies.Director, argID))
		args = append(args, filter.Director)
		argID++
	}

	// Actor containment over the text[] column
	if filter.Actor != "" {
		clause.WriteString(fmt.Sprintf(
			" AND EXISTS (SELECT 1 FROM unnest(m.%s) AS actor WHERE actor ILIKE '%%' || $%d || '%%')",
			schema.Movies.Actors, argID,
		))
		args = append(args, filter.Actor)
		argID++
	}

	// Genre containment over the text[] column
	if filter.Genre != "" {
		clause.WriteString(fmt.Sprintf(
			" AND EXISTS (SELECT 1 FROM unnest(m.%s) AS genre WHERE genre ILIKE '%%' || $%d || '%%')",
			schema.Movies.Genres, argID,
		))
		args = append(args, filter.Genre)
		argID++
	}

	// Runtime bounds (inclusive; a missing bound imposes no constraint)
	if filter.MinRuntime != nil {
		clause.WriteString(fmt.Sprintf(" AND m.%s >= $%d", schema.Movies.Runtime, argID))
		args = append(args, *filter.MinRuntime)
		argID++
	}
	if filter.MaxRuntime != nil {
		clause.WriteString(fmt.Sprintf(" AND m.%s <= $%d", schema.Movies.Runtime, argID))
		args = append(args, *filter.MaxRuntime)
		argID++
	}

	return clause.String(), args
}

// movieCountQuery counts the movies matching a filter, with the exact
// predicates List applies.
func movieCountQuery(filter Filter) (string, []any) {
	clause, args := movieFilterClause(filter)
	return fmt.Sprintf("SELECT COUNT(*) FROM %s m WHERE TRUE", schema.Movies.Table) + clause, args
}

// List returns a filtered, paginated slice of movies and the total count.
//
// The aggregate rating is computed inline with a LEFT JOIN on reviews so a
// single query serves both the page items and the rating-ordered sort. The
// window count runs after grouping, so it counts matching movies, not
// joined review rows.
func (repository *movieRepository) List(ctx context.Context, filter Filter, orderBy string, ascending bool, limit, offset int) ([]*Movie, int, error) {

	clause, args := movieFilterClause(filter)

	var queryBuilder strings.Builder
	queryBuilder.WriteString(fmt.Sprintf(`
		SELECT
			m.%s, m.%s, m.%s, m.%s, m.%s,
			m.%s, m.%s, m.%s, m.%s, m.%s,
			AVG(r.%s)::float8 AS rating,
			COUNT(r.%s)::int AS review_count,
			COUNT(*) OVER() AS total_count
		FROM %s m
		LEFT JOIN %s r ON r.%s = m.%s
		WHERE TRUE
	`,
		schema.Movies.ID,
		schema.Movies.Title,
		schema.Movies.Director,
		schema.Movies.Actors,
		schema.Movies.Genres,
		schema.Movies.Runtime,
		schema.Movies.ReleaseYear,
		schema.Movies.PosterURL,
		schema.Movies.CreatedAt,
		schema.Movies.UpdatedAt,
		schema.Reviews.Rating,
		schema.Reviews.ID,
		schema.Movies.Table,
		schema.Reviews.Table,
		schema.Reviews.MovieID, schema.Movies.ID,
	))
	queryBuilder.WriteString(clause)

	queryBuilder.WriteString(fmt.Sprintf(" GROUP BY m.%s", schema.Movies.ID))

	// Apply Sorting. The service validated orderBy against the whitelist, so
	// an unknown key here is a programming error, not client input.
	sortExpr, ok := sortColumns[orderBy]
	if !ok {
		return nil, 0, fmt.Errorf("postgres: unmapped sort field %q", orderBy)
	}

	sortDir := "DESC"
	if ascending {
		sortDir = "ASC"
	}

	// Stable tie-break on the primary key: equal sort values must produce an
	// identical ordering across repeated calls.
	queryBuilder.WriteString(fmt.Sprintf(" ORDER BY %s %s NULLS LAST, m.%s ASC", sortExpr, sortDir, schema.Movies.ID))

	// Pagination injection
	queryBuilder.WriteString(fmt.Sprintf(" LIMIT $%d OFFSET $%d", len(args)+1, len(args)+2))
	args = append(args, limit, offset)

	// Query Execution
	rows, err := repository.pool.Query(ctx, queryBuilder.String(), args...)
	if err != nil {
		return nil, 0, dberr.Wrap(fmt.Errorf("postgres: failed to list movies: %w", err), "Movie", "")
	}
	defer rows.Close()

	var movies []*Movie
	var totalCount int

	for rows.Next() {
		movie := &Movie{}
		err := rows.Scan(
			&movie.ID,
			&movie.Title,
			&movie.Director,
			&movie.Actors,
			&movie.Genres,
			&movie.Runtime,
			&movie.ReleaseYear,
			&movie.PosterURL,
			&movie.CreatedAt,
			&movie.UpdatedAt,
			&movie.Rating,
			&movie.ReviewCount,
			&totalCount,
		)
		if err != nil {
			return nil, 0, fmt.Errorf("postgres: failed to scan movie: %w", err)
		}

		movies = append(movies, movie)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, dberr.Wrap(err, "Movie", "")
	}

	// A page past the end yields zero rows and takes the window total with
	// it. Recount with the same predicates so the envelope totals stay true.
	if len(movies) == 0 && offset > 0 {
		countQuery, countArgs := movieCountQuery(filter)
		if err := repository.pool.QueryRow(ctx, countQuery, countArgs...).Scan(&totalCount); err != nil {
			return nil, 0, dberr.Wrap(err, "Movie", "")
		}
	}

	return movies, totalCount, nil
}

// FindByID retrieves a movie row by its primary key.
//
// The derived rating is intentionally left nil: single-movie reads hydrate
// it through the service's read-through cache instead of recomputing the
// aggregate on every fetch.
func (repository *movieRepository) FindByID(ctx context.Context, id string) (*Movie, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s, %s, %s, %s, %s, %s
		FROM %s
		WHERE %s = $1
	`,
		schema.Movies.ID,
		schema.Movies.Title,
		schema.Movies.Director,
		schema.Movies.Actors,
		schema.Movies.Genres,
		schema.Movies.Runtime,
		schema.Movies.ReleaseYear,
		schema.Movies.PosterURL,
		schema.Movies.CreatedAt,
		schema.Movies.UpdatedAt,
		schema.Movies.Table,
		schema.Movies.ID,
	)

	movie := &Movie{}
	err := repository.pool.QueryRow(ctx, query, id).Scan(
		&movie.ID,
		&movie.Title,
		&movie.Director,
		&movie.Actors,
		&movie.Genres,
		&movie.Runtime,
		&movie.ReleaseYear,
		&movie.PosterURL,
		&movie.CreatedAt,
		&movie.UpdatedAt,
	)
	if err != nil {
		return nil, dberr.Wrap(err, "Movie", "")
	}

	return movie, nil
}

// AggregateRating computes the mean review rating for one movie.
//
// AVG over zero rows yields SQL NULL, which scans into a nil *float64 — the
// "no rating" sentinel flows straight from the database to the domain.
func (repository *movieRepository) AggregateRating(ctx context.Context, movieID string) (*float64, error) {
	query := fmt.Sprintf(`
		SELECT AVG(%s)::float8
		FROM %s
		WHERE %s = $1
	`,
		schema.Reviews.Rating,
		schema.Reviews.Table,
		schema.Reviews.MovieID,
	)

	var rating *float64
	if err := repository.pool.QueryRow(ctx, query, movieID).Scan(&rating); err != nil {
		return nil, dberr.Wrap(err, "Movie", "")
	}

	return rating, nil
}

// Create persists a new movie row.
func (repository *movieRepository) Create(ctx context.Context, movie *Movie) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING %s, %s
	`,
		schema.Movies.Table,
		schema.Movies.ID,
		schema.Movies.Title,
		schema.Movies.Director,
		schema.Movies.Actors,
		schema.Movies.Genres,
		schema.Movies.Runtime,
		schema.Movies.ReleaseYear,
		schema.Movies.PosterURL,
		schema.Movies.CreatedAt,
		schema.Movies.UpdatedAt,
	)

	err := repository.pool.QueryRow(ctx, query,
		movie.ID, movie.Title, movie.Director, movie.Actors, movie.Genres,
		movie.Runtime, movie.ReleaseYear, movie.PosterURL,
	).Scan(&movie.CreatedAt, &movie.UpdatedAt)
	if err != nil {
		return dberr.Wrap(err, "Movie", "")
	}

	return nil
}

// Update replaces every mutable column of an existing movie row.
//
// Catalog edits are full replacements, not patches: the admin form submits
// the complete entry, so absent values are deletions, not "keep as is".
func (repository *movieRepository) Update(ctx context.Context, movie *Movie) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = $1, %s = $2, %s = $3, %s = $4, %s = $5, %s = $6, %s = $7, %s = NOW()
		WHERE %s = $8
		RETURNING %s
	`,
		schema.Movies.Table,
		schema.Movies.Title,
		schema.Movies.Director,
		schema.Movies.Actors,
		schema.Movies.Genres,
		schema.Movies.Runtime,
		schema.Movies.ReleaseYear,
		schema.Movies.PosterURL,
		schema.Movies.UpdatedAt,
		schema.Movies.ID,
		schema.Movies.UpdatedAt,
	)

	err := repository.pool.QueryRow(ctx, query,
		movie.Title, movie.Director, movie.Actors, movie.Genres,
		movie.Runtime, movie.ReleaseYear, movie.PosterURL, movie.ID,
	).Scan(&movie.UpdatedAt)
	if err != nil {
		return dberr.Wrap(err, "Movie", "")
	}

	return nil
}

// Delete removes a movie row. Reviews and watch-later references cascade at
// the schema level.
func (repository *movieRepository) Delete(ctx context.Context, id string) error {
	query := fmt.Sprintf("DELETE FROM %s WHERE %s = $1", schema.Movies.Table, schema.Movies.ID)

	result, err := repository.pool.Exec(ctx, query, id)
	if err != nil {
		return dberr.Wrap(err, "Movie", "")
	}
	if result.RowsAffected() == 0 {
		return apperr.NotFound("Movie")
	}

	return nil
}
