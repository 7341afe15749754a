package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/wiliafri0-dotcom/sayursegar02/models"
)

var (
	// ErrIdentityExists is returned by SaveIdentity when the session already has one.
	ErrIdentityExists = errors.New("session identity already stored")
	// ErrCorruptCart is returned by LoadCart when the stored ledger cannot be decoded.
	ErrCorruptCart = errors.New("stored cart is unreadable")
)

// SessionStore holds the session-scoped state: the identity (written once)
// and the cart ledger.
type SessionStore interface {
	// LoadIdentity returns the raw stored identity, or nil when none is stored.
	LoadIdentity(ctx context.Context, sessionID string) ([]byte, error)
	// SaveIdentity stores data only if the session has no identity yet.
	SaveIdentity(ctx context.Context, sessionID string, data []byte) error
	// AcquireSubmission takes the session's identity-form lock. It returns
	// false when another submission holds it.
	AcquireSubmission(ctx context.Context, sessionID string) (bool, error)
	ReleaseSubmission(ctx context.Context, sessionID string) error
	// LoadCart returns the stored ledger, or an empty one.
	LoadCart(ctx context.Context, sessionID string) (models.Ledger, error)
	SaveCart(ctx context.Context, sessionID string, ledger models.Ledger) error
}

// RedisSessionStore keeps session state in Redis under session:<id>:*, every
// key expiring with the session.
type RedisSessionStore struct {
	client    *redis.Client
	ttl       time.Duration
	submitTTL time.Duration
}

func NewRedisSessionStore(client *redis.Client, ttl time.Duration) *RedisSessionStore {
	return &RedisSessionStore{
		client:    client,
		ttl:       ttl,
		submitTTL: 30 * time.Second,
	}
}

func (r *RedisSessionStore) key(sessionID, part string) string {
	return fmt.Sprintf("session:%s:%s", sessionID, part)
}

func (r *RedisSessionStore) LoadIdentity(ctx context.Context, sessionID string) ([]byte, error) {
	data, err := r.client.Get(ctx, r.key(sessionID, "identity")).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return data, nil
}

func (r *RedisSessionStore) SaveIdentity(ctx context.Context, sessionID string, data []byte) error {
	ok, err := r.client.SetNX(ctx, r.key(sessionID, "identity"), data, r.ttl).Result()
	if err != nil {
		return err
	}
	if !ok {
		return ErrIdentityExists
	}
	return nil
}

func (r *RedisSessionStore) AcquireSubmission(ctx context.Context, sessionID string) (bool, error) {
	return r.client.SetNX(ctx, r.key(sessionID, "submitting"), 1, r.submitTTL).Result()
}

func (r *RedisSessionStore) ReleaseSubmission(ctx context.Context, sessionID string) error {
	return r.client.Del(ctx, r.key(sessionID, "submitting")).Err()
}

func (r *RedisSessionStore) LoadCart(ctx context.Context, sessionID string) (models.Ledger, error) {
	data, err := r.client.Get(ctx, r.key(sessionID, "cart")).Bytes()
	if err == redis.Nil {
		return models.Ledger{}, nil
	}
	if err != nil {
		return models.Ledger{}, err
	}

	var ledger models.Ledger
	if err := ledger.UnmarshalJSON(data); err != nil {
		return models.Ledger{}, fmt.Errorf("%w: %v", ErrCorruptCart, err)
	}
	return ledger, nil
}

func (r *RedisSessionStore) SaveCart(ctx context.Context, sessionID string, ledger models.Ledger) error {
	data, err := ledger.MarshalJSON()
	if err != nil {
		return err
	}
	return r.client.Set(ctx, r.key(sessionID, "cart"), data, r.ttl).Err()
}
