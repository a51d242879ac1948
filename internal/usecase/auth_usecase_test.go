package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"pactle_quotations/internal/domain/entities"
	"pactle_quotations/internal/usecase/interfaces"
)

type userStoreStub struct {
	users map[string]interfaces.StoredUser
}

func newUserStoreStub() *userStoreStub {
	return &userStoreStub{users: make(map[string]interfaces.StoredUser)}
}

func (s *userStoreStub) CreateUser(_ context.Context, user interfaces.StoredUser) error {
	s.users[user.Email] = user
	return nil
}

func (s *userStoreStub) GetUserByEmail(_ context.Context, email string) (interfaces.StoredUser, error) {
	return s.users[email], nil
}

func (s *userStoreStub) UpdateUserRole(_ context.Context, email string, role entities.Role) (interfaces.StoredUser, error) {
	u, ok := s.users[email]
	if !ok {
		return interfaces.StoredUser{}, nil
	}
	u.Role = role
	s.users[email] = u
	return u, nil
}

type sessionStoreStub struct {
	sessions map[string]entities.User
}

func newSessionStoreStub() *sessionStoreStub {
	return &sessionStoreStub{sessions: make(map[string]entities.User)}
}

func (s *sessionStoreStub) SaveSession(_ context.Context, token string, user entities.User, _ time.Duration) error {
	s.sessions[token] = user
	return nil
}

func (s *sessionStoreStub) GetSession(_ context.Context, token string) (entities.User, error) {
	return s.sessions[token], nil
}

func (s *sessionStoreStub) DeleteSession(_ context.Context, token string) error {
	delete(s.sessions, token)
	return nil
}

func newAuthFixture() (*AuthUseCase, *userStoreStub, *sessionStoreStub) {
	users := newUserStoreStub()
	sessions := newSessionStoreStub()
	return NewAuthUseCase(users, sessions, "test-secret"), users, sessions
}

func TestAuthUseCase_SignUp(t *testing.T) {
	ctx := context.Background()

	t.Run("weak password", func(t *testing.T) {
		uc, _, _ := newAuthFixture()
		_, _, err := uc.SignUp(ctx, "Jane", "jane@pactle.test", "short", entities.RoleManager)
		if !errors.Is(err, ErrWeakPassword) {
			t.Fatalf("expected ErrWeakPassword, got %v", err)
		}
	})

	t.Run("invalid role", func(t *testing.T) {
		uc, _, _ := newAuthFixture()
		_, _, err := uc.SignUp(ctx, "Jane", "jane@pactle.test", "password123", entities.Role("admin"))
		if !errors.Is(err, ErrInvalidRole) {
			t.Fatalf("expected ErrInvalidRole, got %v", err)
		}
	})

	t.Run("duplicate email", func(t *testing.T) {
		uc, _, _ := newAuthFixture()
		if _, _, err := uc.SignUp(ctx, "Jane", "jane@pactle.test", "password123", entities.RoleManager); err != nil {
			t.Fatalf("first signup failed: %v", err)
		}
		_, _, err := uc.SignUp(ctx, "Jane Again", "Jane@Pactle.test", "password123", entities.RoleManager)
		if !errors.Is(err, ErrUserAlreadyExists) {
			t.Fatalf("expected ErrUserAlreadyExists, got %v", err)
		}
	})

	t.Run("defaults role to viewer and opens a session", func(t *testing.T) {
		uc, users, sessions := newAuthFixture()
		user, token, err := uc.SignUp(ctx, " Jane ", " JANE@pactle.test ", "password123", "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if user.Role != entities.RoleViewer {
			t.Fatalf("expected viewer default, got %s", user.Role)
		}
		if user.Email != "jane@pactle.test" || user.Name != "Jane" {
			t.Fatalf("inputs not normalized: %+v", user)
		}
		if token == "" {
			t.Fatalf("expected a session token")
		}
		if sessions.sessions[token].ID != user.ID {
			t.Fatalf("session not saved for token")
		}
		stored := users.users[user.Email]
		if stored.PasswordHash == "" || stored.PasswordHash == "password123" {
			t.Fatalf("password must be stored hashed")
		}
	})
}

func TestAuthUseCase_SignIn(t *testing.T) {
	ctx := context.Background()

	t.Run("unknown email", func(t *testing.T) {
		uc, _, _ := newAuthFixture()
		_, _, err := uc.SignIn(ctx, "ghost@pactle.test", "password123")
		if !errors.Is(err, ErrInvalidCredentials) {
			t.Fatalf("expected ErrInvalidCredentials, got %v", err)
		}
	})

	t.Run("wrong password", func(t *testing.T) {
		uc, _, _ := newAuthFixture()
		if _, _, err := uc.SignUp(ctx, "Jane", "jane@pactle.test", "password123", entities.RoleManager); err != nil {
			t.Fatalf("signup failed: %v", err)
		}
		_, _, err := uc.SignIn(ctx, "jane@pactle.test", "wrong-password")
		if !errors.Is(err, ErrInvalidCredentials) {
			t.Fatalf("expected ErrInvalidCredentials, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		uc, _, sessions := newAuthFixture()
		if _, _, err := uc.SignUp(ctx, "Jane", "jane@pactle.test", "password123", entities.RoleManager); err != nil {
			t.Fatalf("signup failed: %v", err)
		}
		user, token, err := uc.SignIn(ctx, " Jane@pactle.test ", "password123")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if user.Role != entities.RoleManager {
			t.Fatalf("unexpected user: %+v", user)
		}
		if sessions.sessions[token].Email != "jane@pactle.test" {
			t.Fatalf("session missing after signin")
		}
	})
}

func TestAuthUseCase_SessionLifecycle(t *testing.T) {
	ctx := context.Background()
	uc, _, sessions := newAuthFixture()
	_, token, err := uc.SignUp(ctx, "Jane", "jane@pactle.test", "password123", entities.RoleManager)
	if err != nil {
		t.Fatalf("signup failed: %v", err)
	}

	t.Run("current user resolves the session", func(t *testing.T) {
		user, err := uc.CurrentUser(ctx, token)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if user.Email != "jane@pactle.test" {
			t.Fatalf("unexpected user: %+v", user)
		}
	})

	t.Run("unknown token", func(t *testing.T) {
		_, err := uc.CurrentUser(ctx, "bogus")
		if !errors.Is(err, ErrSessionNotFound) {
			t.Fatalf("expected ErrSessionNotFound, got %v", err)
		}
	})

	t.Run("sign out drops the session", func(t *testing.T) {
		if err := uc.SignOut(ctx, token); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, ok := sessions.sessions[token]; ok {
			t.Fatalf("session survived sign out")
		}
	})
}

func TestAuthUseCase_SwitchRole(t *testing.T) {
	ctx := context.Background()

	t.Run("invalid role", func(t *testing.T) {
		uc, _, _ := newAuthFixture()
		_, err := uc.SwitchRole(ctx, "token", entities.Role("root"))
		if !errors.Is(err, ErrInvalidRole) {
			t.Fatalf("expected ErrInvalidRole, got %v", err)
		}
	})

	t.Run("unknown session", func(t *testing.T) {
		uc, _, _ := newAuthFixture()
		_, err := uc.SwitchRole(ctx, "bogus", entities.RoleManager)
		if !errors.Is(err, ErrSessionNotFound) {
			t.Fatalf("expected ErrSessionNotFound, got %v", err)
		}
	})

	t.Run("updates account and live session", func(t *testing.T) {
		uc, users, sessions := newAuthFixture()
		_, token, err := uc.SignUp(ctx, "Jane", "jane@pactle.test", "password123", entities.RoleSalesRep)
		if err != nil {
			t.Fatalf("signup failed: %v", err)
		}

		user, err := uc.SwitchRole(ctx, token, entities.RoleManager)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if user.Role != entities.RoleManager {
			t.Fatalf("expected manager, got %s", user.Role)
		}
		if users.users["jane@pactle.test"].Role != entities.RoleManager {
			t.Fatalf("durable record not updated")
		}
		if sessions.sessions[token].Role != entities.RoleManager {
			t.Fatalf("live session not updated")
		}
	})
}

func TestAuthUseCase_ForgotPassword(t *testing.T) {
	ctx := context.Background()
	uc, _, _ := newAuthFixture()
	if _, _, err := uc.SignUp(ctx, "Jane", "jane@pactle.test", "password123", entities.RoleManager); err != nil {
		t.Fatalf("signup failed: %v", err)
	}

	if err := uc.ForgotPassword(ctx, "jane@pactle.test"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := uc.ForgotPassword(ctx, "ghost@pactle.test"); !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}
