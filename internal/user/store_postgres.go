// Copyright (c) 2026 CineHub. All rights reserved.

package user

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/cinehub/api/internal/platform/database/schema"
	"github.com/cinehub/api/internal/platform/dberr"
)

// # PostgreSQL Repositories

// profileRepository implements [ProfileRepository] using pgx.
type profileRepository struct {
	pool *pgxpool.Pool
}

// NewProfileRepository constructs a PostgreSQL backed profile store.
func NewProfileRepository(pool *pgxpool.Pool) ProfileRepository {
	return &profileRepository{pool: pool}
}

// profileSelect is the shared projection for profile lookups: the public
// user fields plus the authored review count in a single round-trip. The
// WHERE predicate is supplied per lookup because the two differ in kind:
// the id column is a uuid and compares directly, only the nickname lookup
// folds case.
func profileSelect(wherePredicate string) string {
	return fmt.Sprintf(`
		SELECT
			u.%s, u.%s, u.%s,
			(SELECT COUNT(*) FROM %s r WHERE r.%s = u.%s)::int AS review_count
		FROM %s u
		WHERE %s
	`,
		schema.Users.ID,
		schema.Users.Nickname,
		schema.Users.CreatedAt,
		schema.Reviews.Table, schema.Reviews.UserID, schema.Users.ID,
		schema.Users.Table,
		wherePredicate,
	)
}

// profileByIDQuery looks a profile up by primary key.
func profileByIDQuery() string {
	return profileSelect(fmt.Sprintf("u.%s = $1", schema.Users.ID))
}

// profileByNicknameQuery looks a profile up by display nickname,
// case-insensitively.
func profileByNicknameQuery() string {
	return profileSelect(fmt.Sprintf("LOWER(u.%s) = LOWER($1)", schema.Users.Nickname))
}

// FindProfileByID returns the public profile row by primary key.
func (repository *profileRepository) FindProfileByID(ctx context.Context, id string) (*Profile, error) {
	return repository.scanProfile(ctx, profileByIDQuery(), id)
}

// FindProfileByNickname resolves a profile by display nickname.
func (repository *profileRepository) FindProfileByNickname(ctx context.Context, nickname string) (*Profile, error) {
	return repository.scanProfile(ctx, profileByNicknameQuery(), nickname)
}

// ListWatchLater returns a member's saved movies with catalog display
// fields joined in, newest saves first.
func (repository *profileRepository) ListWatchLater(ctx context.Context, userID string) ([]*WatchLaterItem, error) {
	query := fmt.Sprintf(`
		SELECT w.%s, m.%s, m.%s, w.%s
		FROM %s w
		JOIN %s m ON m.%s = w.%s
		WHERE w.%s = $1
		ORDER BY w.%s DESC, w.%s ASC
	`,
		schema.WatchLater.MovieID,
		schema.Movies.Title,
		schema.Movies.PosterURL,
		schema.WatchLater.AddedAt,
		schema.WatchLater.Table,
		schema.Movies.Table, schema.Movies.ID, schema.WatchLater.MovieID,
		schema.WatchLater.UserID,
		schema.WatchLater.AddedAt, schema.WatchLater.MovieID,
	)

	rows, err := repository.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, dberr.Wrap(err, "User", "")
	}
	defer rows.Close()

	var items []*WatchLaterItem
	for rows.Next() {
		item := &WatchLaterItem{}
		if err := rows.Scan(&item.MovieID, &item.Title, &item.PosterURL, &item.AddedAt); err != nil {
			return nil, fmt.Errorf("postgres: failed to scan watch-later item: %w", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, dberr.Wrap(err, "User", "")
	}

	return items, nil
}

// AddWatchLater saves a movie on the member's list. ON CONFLICT DO NOTHING
// makes repeated saves idempotent at the storage layer.
func (repository *profileRepository) AddWatchLater(ctx context.Context, userID, movieID string) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s)
		VALUES ($1, $2)
		ON CONFLICT (%s, %s) DO NOTHING
	`,
		schema.WatchLater.Table,
		schema.WatchLater.UserID,
		schema.WatchLater.MovieID,
		schema.WatchLater.UserID,
		schema.WatchLater.MovieID,
	)

	if _, err := repository.pool.Exec(ctx, query, userID, movieID); err != nil {
		return dberr.Wrap(err, "Movie", "")
	}

	return nil
}

// RemoveWatchLater drops a movie from the member's list. Removing an absent
// entry succeeds silently — the end state is what the client asked for.
func (repository *profileRepository) RemoveWatchLater(ctx context.Context, userID, movieID string) error {
	query := fmt.Sprintf(
		"DELETE FROM %s WHERE %s = $1 AND %s = $2",
		schema.WatchLater.Table,
		schema.WatchLater.UserID,
		schema.WatchLater.MovieID,
	)

	if _, err := repository.pool.Exec(ctx, query, userID, movieID); err != nil {
		return dberr.Wrap(err, "Movie", "")
	}

	return nil
}

// MovieExists reports whether the target movie row is present.
func (repository *profileRepository) MovieExists(ctx context.Context, movieID string) (bool, error) {
	query := fmt.Sprintf("SELECT EXISTS (SELECT 1 FROM %s WHERE %s = $1)", schema.Movies.Table, schema.Movies.ID)

	var exists bool
	if err := repository.pool.QueryRow(ctx, query, movieID).Scan(&exists); err != nil {
		return false, dberr.Wrap(err, "Movie", "")
	}

	return exists, nil
}

// scanProfile executes a single-row profile query and hydrates the entity.
func (repository *profileRepository) scanProfile(ctx context.Context, query string, arg any) (*Profile, error) {
	profile := &Profile{}
	err := repository.pool.QueryRow(ctx, query, arg).Scan(
		&profile.ID,
		&profile.Nickname,
		&profile.MemberSince,
		&profile.ReviewCount,
	)
	if err != nil {
		return nil, dberr.Wrap(err, "User", "")
	}

	return profile, nil
}
