// Copyright (c) 2026 CineHub. All rights reserved.

package auth

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/cinehub/api/internal/platform/apperr"
	"github.com/cinehub/api/internal/platform/ctxutil"
	"github.com/cinehub/api/internal/platform/sec"
	"github.com/cinehub/api/internal/platform/validate"
	"github.com/cinehub/api/pkg/uuidv7"
)

// TokenProvider defines the contract for generating session tokens.
type TokenProvider interface {
	// GenerateAccessToken creates a signed JWT string for the given user.
	// The TTL is fixed by the provider; there is no refresh mechanism.
	GenerateAccessToken(userID, nickname, role string) (string, error)
}

// Service implements the registration and login use cases.
//
// # Review Process
//
// This service is critical for security. Any changes to hashing, registration,
// or login logic must be reviewed carefully.
type Service struct {
	userRepository UserRepository
	roleRepository RoleRepository
	tokenProvider  TokenProvider
}

// NewService constructs a new auth [Service] with necessary dependencies.
func NewService(userRepo UserRepository, roleRepo RoleRepository, tokenProv TokenProvider) *Service {
	return &Service{
		userRepository: userRepo,
		roleRepository: roleRepo,
		tokenProvider:  tokenProv,
	}
}

// Session is the result of a successful registration or login: the signed
// session token plus the public identity it carries.
type Session struct {
	Token    string `json:"token"`
	Nickname string `json:"nickname"`
	Role     string `json:"role"`
}

// RegisterInput holds the data required to enroll a new member.
type RegisterInput struct {
	Nickname string
	Email    string
	Password string
}

// Register validates, hashes, and persists a brand new user account, then
// issues a session token.
//
// # Returns
//   - [apperr.Conflict] when the email is already registered.
//   - An internal error when the seeded 'user' role reference data is
//     absent — a fatal configuration problem, not a user-facing retry.
//
// # Business Rules
//   - Emails are globally unique.
//   - The default role is always 'user'.
//   - The secret is hashed at creation and never stored in plaintext.
func (service *Service) Register(ctx context.Context, input RegisterInput) (*Session, error) {
	// ── 1. Input Validation ───────────────────────────────────────────────

	v := &validate.Validator{}
	err := v.
		Required("nickname", input.Nickname).
		MinLen("nickname", input.Nickname, 3).
		MaxLen("nickname", input.Nickname, 32).
		Email("email", input.Email).
		MinLen("password", input.Password, 8).
		Err()
	if err != nil {
		return nil, err
	}

	// ── 2. Uniqueness Check ───────────────────────────────────────────────

	// Fast-path rejection with a client-safe Conflict error. The storage
	// unique constraint remains the authority under concurrent registration.
	if _, err := service.userRepository.FindByEmail(ctx, input.Email); err == nil {
		return nil, apperr.Conflict("Email is already registered")
	}

	// ── 3. Role Reference Data ────────────────────────────────────────────

	role, err := service.roleRepository.FindRoleByName(ctx, string(sec.RoleUser))
	if err != nil {
		return nil, apperr.Internal(fmt.Errorf("auth: default role reference data missing: %w", err))
	}

	// ── 4. Security ───────────────────────────────────────────────────────

	hashedPassword, err := sec.HashPassword(input.Password)
	if err != nil {
		return nil, fmt.Errorf("auth_service_hash_failed: %w", err)
	}

	// ── 5. Persistence ────────────────────────────────────────────────────

	user := &User{
		ID:           uuidv7.New(), // Time-sortable ID to prevent PG index fragmentation.
		Nickname:     input.Nickname,
		Email:        input.Email,
		PasswordHash: hashedPassword,
		Role:         sec.UserRole(role.Name),
	}

	if err := service.userRepository.Create(ctx, user); err != nil {
		return nil, err
	}

	// ── 6. Token Issuance ─────────────────────────────────────────────────

	token, err := service.tokenProvider.GenerateAccessToken(user.ID, user.Nickname, string(user.Role))
	if err != nil {
		return nil, fmt.Errorf("auth_service_token_generation_failed: %w", err)
	}

	// Audit line: identity and timestamp only, never secret material.
	ctxutil.GetLogger(ctx).InfoContext(ctx, "user_registered",
		slog.String("user_id", user.ID),
		slog.String("nickname", user.Nickname),
		slog.Time("at", time.Now()),
	)

	return &Session{Token: token, Nickname: user.Nickname, Role: string(user.Role)}, nil
}

// LoginInput defines credentials for an authentication attempt.
type LoginInput struct {
	Email    string
	Password string
}

// Authenticate validates user credentials and issues a session token.
//
// An unknown email and a wrong password produce the identical UNAUTHORIZED
// error: the split must never leak, or the endpoint becomes an account
// enumeration oracle.
func (service *Service) Authenticate(ctx context.Context, input LoginInput) (*Session, error) {
	// ── 1. Fetch User Profile ─────────────────────────────────────────────

	user, err := service.userRepository.FindByEmail(ctx, input.Email)
	if err != nil {
		return nil, apperr.Unauthorized("Invalid login credentials")
	}

	// ── 2. Security Verification ──────────────────────────────────────────

	// bcrypt compares in constant time, mitigating timing attacks.
	if !sec.CheckPasswordHash(input.Password, user.PasswordHash) {
		return nil, apperr.Unauthorized("Invalid login credentials")
	}

	// ── 3. Token Issuance ─────────────────────────────────────────────────

	token, err := service.tokenProvider.GenerateAccessToken(user.ID, user.Nickname, string(user.Role))
	if err != nil {
		return nil, fmt.Errorf("auth_service_token_generation_failed: %w", err)
	}

	ctxutil.GetLogger(ctx).InfoContext(ctx, "user_authenticated",
		slog.String("user_id", user.ID),
		slog.String("nickname", user.Nickname),
		slog.Time("at", time.Now()),
	)

	return &Session{Token: token, Nickname: user.Nickname, Role: string(user.Role)}, nil
}

// EnsureRoles verifies at startup that the role reference data is seeded.
//
// A missing role aborts initialization: degrading silently would turn every
// later registration into a 500.
func (service *Service) EnsureRoles(ctx context.Context) error {
	for _, name := range []sec.UserRole{sec.RoleAdmin, sec.RoleUser} {
		if _, err := service.roleRepository.FindRoleByName(ctx, string(name)); err != nil {
			return fmt.Errorf("auth: role reference data missing for %q: %w", name, err)
		}
	}
	return nil
}
