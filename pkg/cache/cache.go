package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// TTL constants
const (
	TTLFeed    = 30 * time.Second // approved feed (refreshed often)
	TTLStatus  = 10 * time.Second // venue status
	TTLDefault = 5 * time.Minute
)

// Cache key prefixes
const (
	PrefixFeed = "feed:"
	PrefixPost = "post:"

	keyApprovedFeed = PrefixFeed + "approved"
)

// ErrCacheMiss is returned when a key is absent
var ErrCacheMiss = errors.New("cache miss")

// Service Redis cache operations used by the feed read path
type Service interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	Delete(ctx context.Context, keys ...string) error

	// Approved feed cache
	GetFeed(ctx context.Context) ([]byte, error)
	SetFeed(ctx context.Context, data interface{}) error
	InvalidateFeed(ctx context.Context) error
}

type service struct {
	client *redis.Client
}

// NewService creates a cache service backed by the given Redis client
func NewService(client *redis.Client) Service {
	return &service{client: client}
}

func (s *service) Get(ctx context.Context, key string) ([]byte, error) {
	data, err := s.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrCacheMiss
		}
		return nil, err
	}
	return data, nil
}

func (s *service) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	if ttl <= 0 {
		ttl = TTLDefault
	}
	return s.client.Set(ctx, key, data, ttl).Err()
}

func (s *service) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	return s.client.Del(ctx, keys...).Err()
}

func (s *service) GetFeed(ctx context.Context) ([]byte, error) {
	return s.Get(ctx, keyApprovedFeed)
}

func (s *service) SetFeed(ctx context.Context, data interface{}) error {
	return s.Set(ctx, keyApprovedFeed, data, TTLFeed)
}

func (s *service) InvalidateFeed(ctx context.Context) error {
	return s.Delete(ctx, keyApprovedFeed)
}
