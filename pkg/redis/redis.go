package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// Config holds the connection settings for the credential-row cache.
// Timeouts are in seconds; zero means the go-redis default.
type Config struct {
	Host                string
	Port                string
	Password            string
	DB                  int
	MaxRetries          int
	PoolSize            int
	MinIdleConn         int
	DialTimeoutSeconds  int
	ReadTimeoutSeconds  int
	WriteTimeoutSeconds int
	PoolTimeoutSeconds  int
}

// Client wraps redis.Client so the container can close the cache backend
// with a log line, like every other resource it owns.
type Client struct {
	*redis.Client
	log *zap.Logger
}

// NewClient opens a connection pool for the cache backend and fails fast
// when the server is unreachable, so a misconfigured cache is caught at
// startup rather than on the first login.
func NewClient(cfg Config, log *zap.Logger) (*Client, error) {
	addr := fmt.Sprintf("%s:%s", cfg.Host, cfg.Port)

	rdb := redis.NewClient(&redis.Options{
		Addr:         addr,
		Password:     cfg.Password,
		DB:           cfg.DB,
		MaxRetries:   cfg.MaxRetries,
		PoolSize:     cfg.PoolSize,
		MinIdleConns: cfg.MinIdleConn,
		DialTimeout:  time.Duration(cfg.DialTimeoutSeconds) * time.Second,
		ReadTimeout:  time.Duration(cfg.ReadTimeoutSeconds) * time.Second,
		WriteTimeout: time.Duration(cfg.WriteTimeoutSeconds) * time.Second,
		PoolTimeout:  time.Duration(cfg.PoolTimeoutSeconds) * time.Second,
	})

	pingTimeout := time.Duration(cfg.DialTimeoutSeconds) * time.Second
	if pingTimeout <= 0 {
		pingTimeout = 5 * time.Second
	}
	ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis at %s: %w", addr, err)
	}

	log.Info("redis cache connected",
		zap.String("addr", addr),
		zap.Int("db", cfg.DB),
		zap.Int("pool_size", cfg.PoolSize),
	)

	return &Client{
		Client: rdb,
		log:    log,
	}, nil
}

// Close releases the connection pool.
func (c *Client) Close() error {
	c.log.Info("closing redis cache connection")
	return c.Client.Close()
}
