// Copyright (c) 2026 CineHub. All rights reserved.

package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cinehub/api/internal/platform/apperr"
	"github.com/cinehub/api/internal/platform/sec"
)

// fakeUserRepository is an in-memory [UserRepository] and [RoleRepository].
type fakeUserRepository struct {
	usersByEmail map[string]*User
	roles        map[string]*Role
	createErr    error
}

func newFakeUserRepository() *fakeUserRepository {
	return &fakeUserRepository{
		usersByEmail: map[string]*User{},
		roles: map[string]*Role{
			string(sec.RoleAdmin): {Name: string(sec.RoleAdmin), Precedence: 20},
			string(sec.RoleUser):  {Name: string(sec.RoleUser), Precedence: 10},
		},
	}
}

func (f *fakeUserRepository) FindByEmail(_ context.Context, email string) (*User, error) {
	user, ok := f.usersByEmail[email]
	if !ok {
		return nil, apperr.NotFound("User")
	}
	return user, nil
}

func (f *fakeUserRepository) FindByID(_ context.Context, id string) (*User, error) {
	for _, user := range f.usersByEmail {
		if user.ID == id {
			return user, nil
		}
	}
	return nil, apperr.NotFound("User")
}

func (f *fakeUserRepository) Create(_ context.Context, user *User) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.usersByEmail[user.Email] = user
	return nil
}

func (f *fakeUserRepository) FindRoleByName(_ context.Context, name string) (*Role, error) {
	role, ok := f.roles[name]
	if !ok {
		return nil, apperr.NotFound("Role")
	}
	return role, nil
}

// fakeTokenProvider returns a deterministic token for assertions.
type fakeTokenProvider struct{}

func (fakeTokenProvider) GenerateAccessToken(userID, _, _ string) (string, error) {
	return "token-for-" + userID, nil
}

func TestService_Register(t *testing.T) {
	t.Parallel()

	validInput := RegisterInput{
		Nickname: "moviebuff",
		Email:    "buff@example.com",
		Password: "hunter2hunter2",
	}

	t.Run("creates user with default role and issues session", func(t *testing.T) {
		t.Parallel()

		repo := newFakeUserRepository()
		service := NewService(repo, repo, fakeTokenProvider{})

		session, err := service.Register(context.Background(), validInput)
		require.NoError(t, err)

		assert.Equal(t, "moviebuff", session.Nickname)
		assert.Equal(t, string(sec.RoleUser), session.Role)
		assert.NotEmpty(t, session.Token)

		stored := repo.usersByEmail["buff@example.com"]
		require.NotNil(t, stored)
		assert.Equal(t, sec.RoleUser, stored.Role)
		assert.NotEqual(t, validInput.Password, stored.PasswordHash,
			"plaintext secret must never be persisted")
		assert.True(t, sec.CheckPasswordHash(validInput.Password, stored.PasswordHash))
	})

	t.Run("rejects duplicate email with conflict", func(t *testing.T) {
		t.Parallel()

		repo := newFakeUserRepository()
		service := NewService(repo, repo, fakeTokenProvider{})

		_, err := service.Register(context.Background(), validInput)
		require.NoError(t, err)

		_, err = service.Register(context.Background(), validInput)
		appErr := apperr.As(err)
		require.NotNil(t, appErr)
		assert.Equal(t, "CONFLICT", appErr.Code)
	})

	t.Run("fails when role reference data is missing", func(t *testing.T) {
		t.Parallel()

		repo := newFakeUserRepository()
		delete(repo.roles, string(sec.RoleUser))
		service := NewService(repo, repo, fakeTokenProvider{})

		_, err := service.Register(context.Background(), validInput)
		appErr := apperr.As(err)
		require.NotNil(t, appErr)
		assert.Equal(t, "INTERNAL_ERROR", appErr.Code)
	})

	t.Run("validates input before touching the store", func(t *testing.T) {
		t.Parallel()

		testCases := []struct {
			name  string
			input RegisterInput
		}{
			{"nickname too short", RegisterInput{Nickname: "ab", Email: "a@b.com", Password: "hunter2hunter2"}},
			{"malformed email", RegisterInput{Nickname: "moviebuff", Email: "not-an-email", Password: "hunter2hunter2"}},
			{"password too short", RegisterInput{Nickname: "moviebuff", Email: "a@b.com", Password: "short"}},
		}

		for _, testCase := range testCases {
			t.Run(testCase.name, func(t *testing.T) {
				repo := newFakeUserRepository()
				service := NewService(repo, repo, fakeTokenProvider{})

				_, err := service.Register(context.Background(), testCase.input)
				appErr := apperr.As(err)
				require.NotNil(t, appErr)
				assert.Equal(t, "VALIDATION_ERROR", appErr.Code)
				assert.Empty(t, repo.usersByEmail)
			})
		}
	})
}

func TestService_Authenticate(t *testing.T) {
	t.Parallel()

	setup := func(t *testing.T) (*Service, *fakeUserRepository) {
		t.Helper()
		repo := newFakeUserRepository()
		service := NewService(repo, repo, fakeTokenProvider{})
		_, err := service.Register(context.Background(), RegisterInput{
			Nickname: "moviebuff",
			Email:    "buff@example.com",
			Password: "hunter2hunter2",
		})
		require.NoError(t, err)
		return service, repo
	}

	t.Run("valid credentials issue a session", func(t *testing.T) {
		t.Parallel()

		service, _ := setup(t)
		session, err := service.Authenticate(context.Background(), LoginInput{
			Email:    "buff@example.com",
			Password: "hunter2hunter2",
		})
		require.NoError(t, err)
		assert.Equal(t, "moviebuff", session.Nickname)
		assert.Equal(t, string(sec.RoleUser), session.Role)
		assert.NotEmpty(t, session.Token)
	})

	t.Run("unknown email and wrong password are indistinguishable", func(t *testing.T) {
		t.Parallel()

		service, _ := setup(t)

		_, unknownErr := service.Authenticate(context.Background(), LoginInput{
			Email:    "nobody@example.com",
			Password: "hunter2hunter2",
		})
		_, wrongErr := service.Authenticate(context.Background(), LoginInput{
			Email:    "buff@example.com",
			Password: "wrong-password",
		})

		unknownApp := apperr.As(unknownErr)
		require.NotNil(t, unknownApp)
		wrongApp := apperr.As(wrongErr)
		require.NotNil(t, wrongApp)

		assert.Equal(t, "UNAUTHORIZED", unknownApp.Code)
		assert.Equal(t, unknownApp.Message, wrongApp.Message)
	})
}

func TestService_EnsureRoles(t *testing.T) {
	t.Parallel()

	t.Run("passes when both roles are seeded", func(t *testing.T) {
		t.Parallel()

		repo := newFakeUserRepository()
		service := NewService(repo, repo, fakeTokenProvider{})
		assert.NoError(t, service.EnsureRoles(context.Background()))
	})

	t.Run("fails when a role is missing", func(t *testing.T) {
		t.Parallel()

		repo := newFakeUserRepository()
		delete(repo.roles, string(sec.RoleAdmin))
		service := NewService(repo, repo, fakeTokenProvider{})
		assert.Error(t, service.EnsureRoles(context.Background()))
	})
}
