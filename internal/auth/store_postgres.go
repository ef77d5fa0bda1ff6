// Copyright (c) 2026 CineHub. All rights reserved.

package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/cinehub/api/internal/platform/apperr"
	"github.com/cinehub/api/internal/platform/database/schema"
	"github.com/cinehub/api/internal/platform/dberr"
)

// # PostgreSQL Repositories

// userRepository implements [UserRepository] and [RoleRepository] using pgx.
type userRepository struct {
	pool *pgxpool.Pool
}

// NewUserRepository constructs a PostgreSQL backed identity store.
func NewUserRepository(pool *pgxpool.Pool) *userRepository {
	return &userRepository{pool: pool}
}

// FindByEmail returns the user with the given unique email.
//
// The lookup is case-insensitive: emails are compared folded, matching the
// unique index on LOWER(email).
func (repository *userRepository) FindByEmail(ctx context.Context, email string) (*User, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s, %s, %s
		FROM %s
		WHERE LOWER(%s) = LOWER($1)
	`,
		schema.Users.ID,
		schema.Users.Nickname,
		schema.Users.Email,
		schema.Users.Password,
		schema.Users.Role,
		schema.Users.CreatedAt,
		schema.Users.UpdatedAt,
		schema.Users.Table,
		schema.Users.Email,
	)

	return repository.scanUser(ctx, query, email)
}

// FindByID returns the user with the given primary key.
func (repository *userRepository) FindByID(ctx context.Context, id string) (*User, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s, %s, %s
		FROM %s
		WHERE %s = $1
	`,
		schema.Users.ID,
		schema.Users.Nickname,
		schema.Users.Email,
		schema.Users.Password,
		schema.Users.Role,
		schema.Users.CreatedAt,
		schema.Users.UpdatedAt,
		schema.Users.Table,
		schema.Users.ID,
	)

	return repository.scanUser(ctx, query, id)
}

// Create persists a new user row.
//
// The unique index on email rejects conflicting concurrent inserts; the
// resulting SQLSTATE 23505 is translated into a CONFLICT domain error here
// rather than being handled by a racy application-side pre-check alone.
func (repository *userRepository) Create(ctx context.Context, user *User) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING %s, %s
	`,
		schema.Users.Table,
		schema.Users.ID,
		schema.Users.Nickname,
		schema.Users.Email,
		schema.Users.Password,
		schema.Users.Role,
		schema.Users.CreatedAt,
		schema.Users.UpdatedAt,
	)

	err := repository.pool.QueryRow(ctx, query,
		user.ID, user.Nickname, user.Email, user.PasswordHash, string(user.Role),
	).Scan(&user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		// Both email and nickname carry unique indexes; tell the client which
		// one collided.
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation &&
			strings.Contains(pgErr.ConstraintName, "nickname") {
			return apperr.Conflict("Nickname is already taken")
		}
		return dberr.Wrap(err, "User", "Email is already registered")
	}

	return nil
}

// FindRoleByName returns the seeded role reference row.
func (repository *userRepository) FindRoleByName(ctx context.Context, name string) (*Role, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s
		FROM %s
		WHERE %s = $1
	`,
		schema.Roles.Name,
		schema.Roles.Precedence,
		schema.Roles.Table,
		schema.Roles.Name,
	)

	role := &Role{}
	err := repository.pool.QueryRow(ctx, query, name).Scan(&role.Name, &role.Precedence)
	if err != nil {
		return nil, dberr.Wrap(err, "Role", "")
	}

	return role, nil
}

// scanUser executes a single-row user query and hydrates the entity.
func (repository *userRepository) scanUser(ctx context.Context, query string, arg any) (*User, error) {
	user := &User{}
	err := repository.pool.QueryRow(ctx, query, arg).Scan(
		&user.ID,
		&user.Nickname,
		&user.Email,
		&user.PasswordHash,
		&user.Role,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		return nil, dberr.Wrap(err, "User", "")
	}

	return user, nil
}
