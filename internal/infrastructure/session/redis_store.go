package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"pactle_quotations/internal/domain/entities"
	"pactle_quotations/internal/usecase/interfaces"

	"github.com/redis/go-redis/v9"
)

// NewClient builds a redis client for the opaque key-value store backing
// sessions, user accounts and comment drafts.
func NewClient(addr string) *redis.Client {
	return redis.NewClient(&redis.Options{Addr: addr})
}

// RedisStore implements the user, session and draft store ports over one
// redis connection. Missing keys come back as zero values, matching the
// repository convention.
type RedisStore struct {
	rdb *redis.Client
}

var (
	_ interfaces.IUserStore    = (*RedisStore)(nil)
	_ interfaces.ISessionStore = (*RedisStore)(nil)
	_ interfaces.IDraftStore   = (*RedisStore)(nil)
)

func NewRedisStore(rdb *redis.Client) *RedisStore {
	return &RedisStore{rdb: rdb}
}

func (s *RedisStore) CreateUser(ctx context.Context, u interfaces.StoredUser) error {
	b, err := json.Marshal(u)
	if err != nil {
		return err
	}
	ok, err := s.rdb.SetNX(ctx, fmt.Sprintf(keyUser, u.Email), b, 0).Result()
	if err != nil {
		return fmt.Errorf("session: create user: %w", err)
	}
	if !ok {
		return fmt.Errorf("session: user %s already stored", u.Email)
	}
	return nil
}

func (s *RedisStore) GetUserByEmail(ctx context.Context, email string) (interfaces.StoredUser, error) {
	raw, err := s.rdb.Get(ctx, fmt.Sprintf(keyUser, email)).Bytes()
	if errors.Is(err, redis.Nil) {
		return interfaces.StoredUser{}, nil
	}
	if err != nil {
		return interfaces.StoredUser{}, fmt.Errorf("session: get user: %w", err)
	}
	var u interfaces.StoredUser
	if err := json.Unmarshal(raw, &u); err != nil {
		return interfaces.StoredUser{}, err
	}
	return u, nil
}

func (s *RedisStore) UpdateUserRole(ctx context.Context, email string, role entities.Role) (interfaces.StoredUser, error) {
	u, err := s.GetUserByEmail(ctx, email)
	if err != nil {
		return interfaces.StoredUser{}, err
	}
	if u.ID == "" {
		return interfaces.StoredUser{}, nil
	}
	u.Role = role
	b, err := json.Marshal(u)
	if err != nil {
		return interfaces.StoredUser{}, err
	}
	if err := s.rdb.Set(ctx, fmt.Sprintf(keyUser, email), b, 0).Err(); err != nil {
		return interfaces.StoredUser{}, fmt.Errorf("session: update user role: %w", err)
	}
	return u, nil
}

func (s *RedisStore) SaveSession(ctx context.Context, token string, user entities.User, ttl time.Duration) error {
	b, err := json.Marshal(user)
	if err != nil {
		return err
	}
	if err := s.rdb.Set(ctx, fmt.Sprintf(keyAuthToken, token), b, ttl).Err(); err != nil {
		return fmt.Errorf("session: save session: %w", err)
	}
	return nil
}

func (s *RedisStore) GetSession(ctx context.Context, token string) (entities.User, error) {
	raw, err := s.rdb.Get(ctx, fmt.Sprintf(keyAuthToken, token)).Bytes()
	if errors.Is(err, redis.Nil) {
		return entities.User{}, nil
	}
	if err != nil {
		return entities.User{}, fmt.Errorf("session: get session: %w", err)
	}
	var u entities.User
	if err := json.Unmarshal(raw, &u); err != nil {
		return entities.User{}, err
	}
	return u, nil
}

func (s *RedisStore) DeleteSession(ctx context.Context, token string) error {
	if err := s.rdb.Del(ctx, fmt.Sprintf(keyAuthToken, token)).Err(); err != nil {
		return fmt.Errorf("session: delete session: %w", err)
	}
	return nil
}

func (s *RedisStore) GetDraft(ctx context.Context, quotationID string) (interfaces.CommentDraft, error) {
	raw, err := s.rdb.Get(ctx, fmt.Sprintf(keyCommentDraft, quotationID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return interfaces.CommentDraft{}, nil
	}
	if err != nil {
		return interfaces.CommentDraft{}, fmt.Errorf("session: get draft: %w", err)
	}
	var d interfaces.CommentDraft
	if err := json.Unmarshal(raw, &d); err != nil {
		return interfaces.CommentDraft{}, err
	}
	return d, nil
}

func (s *RedisStore) SetDraft(ctx context.Context, quotationID string, draft interfaces.CommentDraft) error {
	b, err := json.Marshal(draft)
	if err != nil {
		return err
	}
	if err := s.rdb.Set(ctx, fmt.Sprintf(keyCommentDraft, quotationID), b, TTLDraft).Err(); err != nil {
		return fmt.Errorf("session: set draft: %w", err)
	}
	return nil
}

func (s *RedisStore) ClearDraft(ctx context.Context, quotationID string) error {
	if err := s.rdb.Del(ctx, fmt.Sprintf(keyCommentDraft, quotationID)).Err(); err != nil {
		return fmt.Errorf("session: clear draft: %w", err)
	}
	return nil
}
