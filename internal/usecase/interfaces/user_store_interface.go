package interfaces

import (
	"context"

	"pactle_quotations/internal/domain/entities"
)

// StoredUser is a user record plus its credential hash. The hash never leaves
// the auth usecase.
type StoredUser struct {
	entities.User
	PasswordHash string `json:"password_hash"`
}

// IUserStore abstracts the opaque key-value store holding user accounts.
// Missing users come back as zero-value records.

type IUserStore interface {
	CreateUser(ctx context.Context, u StoredUser) error
	GetUserByEmail(ctx context.Context, email string) (StoredUser, error)
	UpdateUserRole(ctx context.Context, email string, role entities.Role) (StoredUser, error)
}
