package interfaces

import (
	"context"
	"time"

	"pactle_quotations/internal/domain/entities"
)

// ISessionStore maps issued auth tokens to the signed-in user, keyed by
// namespaced token keys in the opaque key-value store.

type ISessionStore interface {
	SaveSession(ctx context.Context, token string, user entities.User, ttl time.Duration) error
	GetSession(ctx context.Context, token string) (entities.User, error)
	DeleteSession(ctx context.Context, token string) error
}
