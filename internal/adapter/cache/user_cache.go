package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	domain "ecommerce-auth-service/internal/domain/user"
)

// UserCache defines the interface for caching user rows by email. The
// cached row carries the credential hash, so a hit still goes through the
// normal password check.
type UserCache interface {
	// Get retrieves a user from cache by email.
	// Returns nil if the user is not cached.
	Get(ctx context.Context, email string) (*domain.User, error)

	// Set stores a user in cache with the configured TTL.
	Set(ctx context.Context, user *domain.User) error

	// Delete removes a user from cache by email.
	Delete(ctx context.Context, email string) error
}

// RedisUserCache implements UserCache using Redis as the backing store.
type RedisUserCache struct {
	client *redis.Client
	ttl    time.Duration
	log    *zap.Logger
}

// NewRedisUserCache creates a new Redis-backed user cache.
func NewRedisUserCache(client *redis.Client, ttl time.Duration, log *zap.Logger) UserCache {
	return &RedisUserCache{
		client: client,
		ttl:    ttl,
		log:    log,
	}
}

// cacheKey generates a Redis key for an email. The email is used verbatim:
// lookups are exact-match, the same as the persistent store, so a cached
// row can never answer an email the store would not.
func (c *RedisUserCache) cacheKey(email string) string {
	return fmt.Sprintf("user:email:%s", email)
}

// Get retrieves a user from Redis cache.
func (c *RedisUserCache) Get(ctx context.Context, email string) (*domain.User, error) {
	key := c.cacheKey(email)

	data, err := c.client.Get(ctx, key).Bytes()
	if err == redis.Nil {
		// Cache miss - not an error
		c.log.Debug("cache miss", zap.String("email", email))
		return nil, nil
	}
	if err != nil {
		c.log.Error("failed to get from cache", zap.String("email", email), zap.Error(err))
		return nil, err
	}

	var user domain.User
	if err := json.Unmarshal(data, &user); err != nil {
		c.log.Error("failed to unmarshal cached user", zap.String("email", email), zap.Error(err))
		return nil, err
	}

	c.log.Debug("cache hit", zap.String("email", email))
	return &user, nil
}

// Set stores a user in Redis cache with TTL.
func (c *RedisUserCache) Set(ctx context.Context, user *domain.User) error {
	if user == nil {
		return fmt.Errorf("cannot cache nil user")
	}

	key := c.cacheKey(user.Email)

	data, err := json.Marshal(user)
	if err != nil {
		c.log.Error("failed to marshal user for cache", zap.String("email", user.Email), zap.Error(err))
		return err
	}

	if err := c.client.Set(ctx, key, data, c.ttl).Err(); err != nil {
		c.log.Error("failed to set cache", zap.String("email", user.Email), zap.Error(err))
		return err
	}

	c.log.Debug("cached user", zap.String("email", user.Email), zap.Duration("ttl", c.ttl))
	return nil
}

// Delete removes a user from Redis cache.
func (c *RedisUserCache) Delete(ctx context.Context, email string) error {
	key := c.cacheKey(email)

	if err := c.client.Del(ctx, key).Err(); err != nil {
		c.log.Error("failed to delete from cache", zap.String("email", email), zap.Error(err))
		return err
	}

	c.log.Debug("deleted from cache", zap.String("email", email))
	return nil
}
