package di

import (
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"ecommerce-auth-service/cmd/api/infrastructure"
	"ecommerce-auth-service/internal/adapter/cache"
	"ecommerce-auth-service/internal/adapter/db/postgres"
	"ecommerce-auth-service/internal/adapter/gin/handler"
	"ecommerce-auth-service/internal/adapter/repository/cached"
	"ecommerce-auth-service/internal/config"
	"ecommerce-auth-service/internal/usecase/auth"
	redisclient "ecommerce-auth-service/pkg/redis"
	"ecommerce-auth-service/pkg/token"
)

// Container holds all application dependencies
type Container struct {
	Config      *config.Config
	Logger      *zap.Logger
	DB          *gorm.DB
	RedisClient *redisclient.Client
	AuthUC      auth.Usecase
	AuthHandler *handler.AuthHandler
}

// NewContainer creates and initializes all application dependencies.
// Dependencies are passed explicitly; there is no global registry.
func NewContainer(cfg *config.Config, l *zap.Logger) (*Container, error) {
	// Validate configuration before initializing any dependencies
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	// Initialize database
	db, err := infrastructure.NewDatabase(cfg, l)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	// Initialize repository, optionally wrapped with the Redis cache
	var repo auth.Repository = postgres.NewUserRepoPG(db, l)

	var rdb *redisclient.Client
	if cfg.Redis.Enabled {
		rdb, err = infrastructure.NewRedisClient(cfg, l)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize Redis: %w", err)
		}

		userCache := cache.NewRedisUserCache(
			rdb.Client,
			time.Duration(cfg.Redis.CacheTTL)*time.Second,
			l,
		)
		repo = cached.NewCachedUserRepository(repo, userCache, l)
	}

	// Initialize token issuer
	issuer := token.NewJWTIssuer(
		cfg.JWT.Secret,
		time.Duration(cfg.JWT.TTLMinutes)*time.Minute,
		cfg.JWT.Issuer,
	)

	// Initialize use case
	authUC := auth.New(repo, issuer, l)

	// Initialize handler
	authHandler := handler.NewAuthHandler(authUC, l)

	return &Container{
		Config:      cfg,
		Logger:      l,
		DB:          db,
		RedisClient: rdb,
		AuthUC:      authUC,
		AuthHandler: authHandler,
	}, nil
}

// Close closes all resources held by the container
func (c *Container) Close() error {
	var errs []error

	if c.RedisClient != nil {
		if err := c.RedisClient.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close Redis: %w", err))
		}
	}

	if c.DB != nil {
		if err := infrastructure.CloseDatabase(c.DB); err != nil {
			errs = append(errs, fmt.Errorf("failed to close database: %w", err))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("container close errors: %v", errs)
	}

	return nil
}
