package session

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/beingsaumyadeep/py-commerce/internal/config"
)

// TTL is how long a login session stays valid in the cache.
const TTL = 15 * 24 * time.Hour

var ErrUnauthenticated = errors.New("unauthenticated")

func NewClient(ctx context.Context, cfg *config.Config) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.REDIS_ADDR,
		Username: cfg.REDIS_USER,
		Password: cfg.REDIS_PASS,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		return nil, fmt.Errorf("redis ping: %w", err)
	}

	return client, nil
}

// Store maps opaque session tokens to user emails with a per-key expiry.
type Store struct {
	Client *redis.Client
}

func (s *Store) Create(ctx context.Context, email string) (string, error) {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("session token: %w", err)
	}
	token := hex.EncodeToString(buf)

	if err := s.Client.Set(ctx, key(token), email, TTL).Err(); err != nil {
		return "", fmt.Errorf("session store: %w", err)
	}
	return token, nil
}

func (s *Store) Resolve(ctx context.Context, token string) (string, error) {
	email, err := s.Client.Get(ctx, key(token)).Result()
	if errors.Is(err, redis.Nil) {
		return "", ErrUnauthenticated
	}
	if err != nil {
		return "", fmt.Errorf("session lookup: %w", err)
	}
	return email, nil
}

func key(token string) string {
	return "session:" + token
}
