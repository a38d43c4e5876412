package document

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

const defaultKeyPrefix = "oraculo:"

// Config holds configuration for the Redis document repository
type Config struct {
	// Redis client
	RedisClient *redis.Client

	// KeyPrefix namespaces every document key. Defaults to "oraculo:".
	KeyPrefix string
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client    *redis.Client
	keyPrefix string
}

// NewRedis creates a new Redis-backed document repository
func NewRedis(cfg *Config) (*redisRepository, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.RedisClient == nil {
		return nil, errors.New("redis client cannot be nil")
	}

	if err := cfg.RedisClient.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	prefix := cfg.KeyPrefix
	if prefix == "" {
		prefix = defaultKeyPrefix
	}

	return &redisRepository{
		client:    cfg.RedisClient,
		keyPrefix: prefix,
	}, nil
}

// Load retrieves a document from Redis
func (r *redisRepository) Load(ctx context.Context, input *LoadInput) (*LoadOutput, error) {
	if input == nil || input.Key == "" {
		return nil, errors.New("input and key cannot be empty")
	}

	data, err := r.client.Get(ctx, r.keyPrefix+input.Key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to load %s: %w", input.Key, err)
	}

	return &LoadOutput{
		Data: data,
	}, nil
}

// Save writes a document to Redis, replacing any previous version
func (r *redisRepository) Save(ctx context.Context, input *SaveInput) error {
	if input == nil || input.Key == "" {
		return errors.New("input and key cannot be empty")
	}

	// No expiration: a session lives until the next one replaces it
	if err := r.client.Set(ctx, r.keyPrefix+input.Key, []byte(input.Data), 0).Err(); err != nil {
		return fmt.Errorf("failed to save %s: %w", input.Key, err)
	}

	return nil
}

// Delete removes a document from Redis. Deleting a missing key is not an error.
func (r *redisRepository) Delete(ctx context.Context, input *DeleteInput) error {
	if input == nil || input.Key == "" {
		return errors.New("input and key cannot be empty")
	}

	if err := r.client.Del(ctx, r.keyPrefix+input.Key).Err(); err != nil {
		return fmt.Errorf("failed to delete %s: %w", input.Key, err)
	}

	return nil
}
