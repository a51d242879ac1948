package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"pactle_quotations/internal/domain/entities"
	"pactle_quotations/internal/usecase/interfaces"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUserAlreadyExists  = errors.New("user already exists")
	ErrUserNotFound       = errors.New("user not found")
	ErrWeakPassword       = errors.New("password must be at least 8 characters")
	ErrInvalidRole        = errors.New("invalid role")
	ErrSessionNotFound    = errors.New("session not found")
)

const sessionTTL = 24 * time.Hour

// IAuthUseCase handles account and session operations. The role on the
// session is the sole authorization signal downstream; switching it at
// runtime is a supported scenario.

type IAuthUseCase interface {
	SignUp(ctx context.Context, name, email, password string, role entities.Role) (entities.User, string, error)
	SignIn(ctx context.Context, email, password string) (entities.User, string, error)
	SignOut(ctx context.Context, token string) error
	ForgotPassword(ctx context.Context, email string) error
	SwitchRole(ctx context.Context, token string, role entities.Role) (entities.User, error)
	CurrentUser(ctx context.Context, token string) (entities.User, error)
}

type AuthUseCase struct {
	users     interfaces.IUserStore
	sessions  interfaces.ISessionStore
	jwtSecret []byte
}

var _ IAuthUseCase = (*AuthUseCase)(nil)

func NewAuthUseCase(users interfaces.IUserStore, sessions interfaces.ISessionStore, jwtSecret string) *AuthUseCase {
	return &AuthUseCase{users: users, sessions: sessions, jwtSecret: []byte(jwtSecret)}
}

func (u *AuthUseCase) SignUp(ctx context.Context, name, email, password string, role entities.Role) (entities.User, string, error) {
	name = strings.TrimSpace(name)
	email = strings.ToLower(strings.TrimSpace(email))
	if name == "" || email == "" {
		return entities.User{}, "", ErrInvalidCredentials
	}
	if len(password) < 8 {
		return entities.User{}, "", ErrWeakPassword
	}
	if role == "" {
		role = entities.RoleViewer
	}
	if !role.IsValid() {
		return entities.User{}, "", ErrInvalidRole
	}

	existing, err := u.users.GetUserByEmail(ctx, email)
	if err != nil {
		return entities.User{}, "", err
	}
	if existing.ID != "" {
		return entities.User{}, "", ErrUserAlreadyExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return entities.User{}, "", err
	}

	user := entities.User{
		ID:    uuid.NewString(),
		Name:  name,
		Email: email,
		Role:  role,
	}
	if err := u.users.CreateUser(ctx, interfaces.StoredUser{User: user, PasswordHash: string(hash)}); err != nil {
		return entities.User{}, "", err
	}

	token, err := u.issueSession(ctx, user)
	if err != nil {
		return entities.User{}, "", err
	}
	return user, token, nil
}

func (u *AuthUseCase) SignIn(ctx context.Context, email, password string) (entities.User, string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	stored, err := u.users.GetUserByEmail(ctx, email)
	if err != nil {
		return entities.User{}, "", err
	}
	if stored.ID == "" {
		return entities.User{}, "", ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte(password)) != nil {
		return entities.User{}, "", ErrInvalidCredentials
	}

	token, err := u.issueSession(ctx, stored.User)
	if err != nil {
		return entities.User{}, "", err
	}
	return stored.User, token, nil
}

func (u *AuthUseCase) SignOut(ctx context.Context, token string) error {
	return u.sessions.DeleteSession(ctx, token)
}

// ForgotPassword only verifies the account exists; delivery of the reset
// mail is outside this service.
func (u *AuthUseCase) ForgotPassword(ctx context.Context, email string) error {
	email = strings.ToLower(strings.TrimSpace(email))
	stored, err := u.users.GetUserByEmail(ctx, email)
	if err != nil {
		return err
	}
	if stored.ID == "" {
		return ErrUserNotFound
	}
	return nil
}

// SwitchRole changes the role on both the durable user record and the live
// session.
func (u *AuthUseCase) SwitchRole(ctx context.Context, token string, role entities.Role) (entities.User, error) {
	if !role.IsValid() {
		return entities.User{}, ErrInvalidRole
	}

	user, err := u.sessions.GetSession(ctx, token)
	if err != nil {
		return entities.User{}, err
	}
	if user.ID == "" {
		return entities.User{}, ErrSessionNotFound
	}

	updated, err := u.users.UpdateUserRole(ctx, user.Email, role)
	if err != nil {
		return entities.User{}, err
	}
	if updated.ID == "" {
		return entities.User{}, ErrUserNotFound
	}

	if err := u.sessions.SaveSession(ctx, token, updated.User, sessionTTL); err != nil {
		return entities.User{}, err
	}
	return updated.User, nil
}

func (u *AuthUseCase) CurrentUser(ctx context.Context, token string) (entities.User, error) {
	user, err := u.sessions.GetSession(ctx, token)
	if err != nil {
		return entities.User{}, err
	}
	if user.ID == "" {
		return entities.User{}, ErrSessionNotFound
	}
	return user, nil
}

func (u *AuthUseCase) issueSession(ctx context.Context, user entities.User) (string, error) {
	claims := jwt.MapClaims{
		"sub":  user.ID,
		"role": string(user.Role),
		"exp":  time.Now().Add(sessionTTL).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(u.jwtSecret)
	if err != nil {
		return "", err
	}
	if err := u.sessions.SaveSession(ctx, token, user, sessionTTL); err != nil {
		return "", err
	}
	return token, nil
}
