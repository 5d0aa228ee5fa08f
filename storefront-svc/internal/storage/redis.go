package storage

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"otomo-storefront/storefront-svc/internal/cart"
)

// RedisCartStore keeps session carts in Redis under a TTL so abandoned
// carts expire on their own.
type RedisCartStore struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewRedisCartStore(client *redis.Client, ttl time.Duration) *RedisCartStore {
	return &RedisCartStore{Client: client, TTL: ttl}
}

func (s *RedisCartStore) cartKey(sessionID string) string {
	return "cart:" + sessionID
}

func (s *RedisCartStore) GetCart(ctx context.Context, sessionID string) (cart.Cart, error) {
	payload, err := s.Client.Get(ctx, s.cartKey(sessionID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var c cart.Cart
	if err := json.Unmarshal(payload, &c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *RedisCartStore) SaveCart(ctx context.Context, sessionID string, c cart.Cart) error {
	payload, err := json.Marshal(c)
	if err != nil {
		return err
	}
	return s.Client.Set(ctx, s.cartKey(sessionID), payload, s.TTL).Err()
}

func (s *RedisCartStore) DeleteCart(ctx context.Context, sessionID string) error {
	return s.Client.Del(ctx, s.cartKey(sessionID)).Err()
}
