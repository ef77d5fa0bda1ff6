// Copyright (c) 2026 CineHub. All rights reserved.

package review

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/cinehub/api/internal/platform/database/schema"
	"github.com/cinehub/api/internal/platform/dberr"
)

// # PostgreSQL Repositories

// reviewRepository implements [ReviewRepository] using pgx.
type reviewRepository struct {
	pool *pgxpool.Pool
}

// NewReviewRepository constructs a PostgreSQL backed review store.
func NewReviewRepository(pool *pgxpool.Pool) ReviewRepository {
	return &reviewRepository{pool: pool}
}

// sortColumns maps whitelisted sort fields to their ORDER BY expressions.
var sortColumns = map[string]string{
	SortByTimestamp: "r." + schema.Reviews.CreatedAt,
	SortByRating:    "r." + schema.Reviews.Rating,
}

// listSelect is the shared projection for review listings: the review row
// plus the author nickname and movie title joined in for display, and the
// window total for the page envelope.
func listSelect() string {
	return fmt.Sprintf(`
		SELECT
			r.%s, r.%s, r.%s, r.%s, r.%s, r.%s,
			u.%s AS author_nickname,
			m.%s AS movie_title,
			COUNT(*) OVER() AS total_count
		FROM %s r
		JOIN %s u ON u.%s = r.%s
		JOIN %s m ON m.%s = r.%s
	`,
		schema.Reviews.ID,
		schema.Reviews.UserID,
		schema.Reviews.MovieID,
		schema.Reviews.Rating,
		schema.Reviews.Content,
		schema.Reviews.CreatedAt,
		schema.Users.Nickname,
		schema.Movies.Title,
		schema.Reviews.Table,
		schema.Users.Table, schema.Users.ID, schema.Reviews.UserID,
		schema.Movies.Table, schema.Movies.ID, schema.Reviews.MovieID,
	)
}

// ListByMovie returns one page of a movie's reviews and the total count.
func (repository *reviewRepository) ListByMovie(ctx context.Context, movieID, orderBy string, ascending bool, limit, offset int) ([]*Review, int, error) {
	return repository.listPage(ctx,
		fmt.Sprintf(" WHERE r.%s = $1", schema.Reviews.MovieID),
		movieID, orderBy, ascending, limit, offset,
	)
}

// ListByUser returns one page of a user's authored reviews and the total count.
func (repository *reviewRepository) ListByUser(ctx context.Context, userID, orderBy string, ascending bool, limit, offset int) ([]*Review, int, error) {
	return repository.listPage(ctx,
		fmt.Sprintf(" WHERE r.%s = $1", schema.Reviews.UserID),
		userID, orderBy, ascending, limit, offset,
	)
}

// listPage executes one paged review query with the shared projection.
func (repository *reviewRepository) listPage(ctx context.Context, where, arg, orderBy string, ascending bool, limit, offset int) ([]*Review, int, error) {
	sortExpr, ok := sortColumns[orderBy]
	if !ok {
		return nil, 0, fmt.Errorf("postgres: unmapped sort field %q", orderBy)
	}

	sortDir := "DESC"
	if ascending {
		sortDir = "ASC"
	}

	// Stable tie-break on the primary key keeps equal-rating pages
	// reproducible across repeated calls.
	query := listSelect() + where + fmt.Sprintf(
		" ORDER BY %s %s, r.%s ASC LIMIT $2 OFFSET $3",
		sortExpr, sortDir, schema.Reviews.ID,
	)

	rows, err := repository.pool.Query(ctx, query, arg, limit, offset)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "Review", "")
	}
	defer rows.Close()

	reviews, totalCount, err := scanReviews(rows)
	if err != nil {
		return nil, 0, err
	}

	// A page past the end yields zero rows and takes the window total with
	// it. Recount with the same predicate so the envelope totals stay true.
	if len(reviews) == 0 && offset > 0 {
		countQuery := fmt.Sprintf("SELECT COUNT(*) FROM %s r", schema.Reviews.Table) + where
		if err := repository.pool.QueryRow(ctx, countQuery, arg).Scan(&totalCount); err != nil {
			return nil, 0, dberr.Wrap(err, "Review", "")
		}
	}

	return reviews, totalCount, nil
}

// RecentWithContent returns the newest reviews carrying non-empty content,
// capped to limit. Distinct contract from the paged listings: bounded top-N,
// no page index, no total.
func (repository *reviewRepository) RecentWithContent(ctx context.Context, limit int) ([]*Review, error) {
	query := listSelect() + fmt.Sprintf(
		" WHERE r.%s <> '' ORDER BY r.%s DESC, r.%s ASC LIMIT $1",
		schema.Reviews.Content,
		schema.Reviews.CreatedAt,
		schema.Reviews.ID,
	)

	rows, err := repository.pool.Query(ctx, query, limit)
	if err != nil {
		return nil, dberr.Wrap(err, "Review", "")
	}
	defer rows.Close()

	reviews, _, err := scanReviews(rows)
	if err != nil {
		return nil, err
	}

	return reviews, nil
}

// FindByID returns the bare review row (no display joins — callers use it
// for ownership checks, not rendering).
func (repository *reviewRepository) FindByID(ctx context.Context, id string) (*Review, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s, %s
		FROM %s
		WHERE %s = $1
	`,
		schema.Reviews.ID,
		schema.Reviews.UserID,
		schema.Reviews.MovieID,
		schema.Reviews.Rating,
		schema.Reviews.Content,
		schema.Reviews.CreatedAt,
		schema.Reviews.Table,
		schema.Reviews.ID,
	)

	review := &Review{}
	err := repository.pool.QueryRow(ctx, query, id).Scan(
		&review.ID,
		&review.UserID,
		&review.MovieID,
		&review.Rating,
		&review.Content,
		&review.CreatedAt,
	)
	if err != nil {
		return nil, dberr.Wrap(err, "Review", "")
	}

	return review, nil
}

// Create persists a new review row.
//
// The UNIQUE (user_id, movie_id) constraint rejects a conflicting concurrent
// insert; the resulting SQLSTATE 23505 becomes the duplicate-review CONFLICT
// here, making the uniqueness rule race-free without application locking.
func (repository *reviewRepository) Create(ctx context.Context, review *Review) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING %s
	`,
		schema.Reviews.Table,
		schema.Reviews.ID,
		schema.Reviews.UserID,
		schema.Reviews.MovieID,
		schema.Reviews.Rating,
		schema.Reviews.Content,
		schema.Reviews.CreatedAt,
	)

	err := repository.pool.QueryRow(ctx, query,
		review.ID, review.UserID, review.MovieID, review.Rating, review.Content,
	).Scan(&review.CreatedAt)
	if err != nil {
		return dberr.Wrap(err, "Review", "You have already reviewed this movie")
	}

	return nil
}

// Delete removes a review row.
func (repository *reviewRepository) Delete(ctx context.Context, id string) error {
	query := fmt.Sprintf("DELETE FROM %s WHERE %s = $1", schema.Reviews.Table, schema.Reviews.ID)

	result, err := repository.pool.Exec(ctx, query, id)
	if err != nil {
		return dberr.Wrap(err, "Review", "")
	}
	if result.RowsAffected() == 0 {
		return dberr.Wrap(pgx.ErrNoRows, "Review", "")
	}

	return nil
}

// MovieExists reports whether the target movie row is present.
func (repository *reviewRepository) MovieExists(ctx context.Context, movieID string) (bool, error) {
	query := fmt.Sprintf("SELECT EXISTS (SELECT 1 FROM %s WHERE %s = $1)", schema.Movies.Table, schema.Movies.ID)

	var exists bool
	if err := repository.pool.QueryRow(ctx, query, movieID).Scan(&exists); err != nil {
		return false, dberr.Wrap(err, "Movie", "")
	}

	return exists, nil
}

// scanReviews drains a listing result set into entities plus the window total.
func scanReviews(rows pgx.Rows) ([]*Review, int, error) {
	var reviews []*Review
	var totalCount int

	for rows.Next() {
		review := &Review{}
		err := rows.Scan(
			&review.ID,
			&review.UserID,
			&review.MovieID,
			&review.Rating,
			&review.Content,
			&review.CreatedAt,
			&review.AuthorNickname,
			&review.MovieTitle,
			&totalCount,
		)
		if err != nil {
			return nil, 0, fmt.Errorf("postgres: failed to scan review: %w", err)
		}

		reviews = append(reviews, review)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, dberr.Wrap(err, "Review", "")
	}

	return reviews, totalCount, nil
}
