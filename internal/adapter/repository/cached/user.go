package cached

import (
	"context"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"ecommerce-auth-service/internal/adapter/cache"
	domain "ecommerce-auth-service/internal/domain/user"
	"ecommerce-auth-service/internal/usecase/auth"
	"ecommerce-auth-service/pkg/security"
)

// CachedUserRepository implements auth.Repository with caching support.
// It wraps a persistent repository (DB) and a cache implementation. Only
// successful credential lookups populate the cache; the cached row carries
// the bcrypt hash, so a hit still verifies the supplied password.
type CachedUserRepository struct {
	dbRepo auth.Repository
	cache  cache.UserCache
	log    *zap.Logger
	group  singleflight.Group
}

// NewCachedUserRepository creates a new instance of CachedUserRepository.
func NewCachedUserRepository(dbRepo auth.Repository, cache cache.UserCache, log *zap.Logger) auth.Repository {
	return &CachedUserRepository{
		dbRepo: dbRepo,
		cache:  cache,
		log:    log,
	}
}

// AddUser delegates to the DB repository and invalidates any stale cache
// entry for the email.
func (r *CachedUserRepository) AddUser(ctx context.Context, u *domain.User) (*domain.User, error) {
	created, err := r.dbRepo.AddUser(ctx, u)
	if err != nil {
		return nil, err
	}

	if r.cache != nil && created != nil {
		if cerr := r.cache.Delete(ctx, created.Email); cerr != nil {
			r.log.Warn("failed to invalidate cache after register", zap.String("email", created.Email), zap.Error(cerr))
		}
	}

	return created, nil
}

// GetUserByCredentials resolves the credential pair using the Cache-Aside
// pattern. A cached row short-circuits the DB round trip; the password is
// still verified against the cached hash.
func (r *CachedUserRepository) GetUserByCredentials(ctx context.Context, email, password string) (*domain.User, error) {
	if r.cache != nil {
		cachedUser, err := r.cache.Get(ctx, email)
		if err != nil {
			r.log.Warn("cache get error, falling back to database", zap.String("email", email), zap.Error(err))
		} else if cachedUser != nil {
			if !security.CheckPassword(cachedUser.Password, password) {
				r.log.Debug("password mismatch against cached row", zap.String("email", email))
				return nil, nil
			}
			r.log.Debug("user retrieved from cache", zap.String("email", email))
			return cachedUser, nil
		}
	}

	// Cache miss or cache disabled - use single-flight to prevent a
	// stampede on the row. The key covers the full credential pair,
	// verbatim: concurrent attempts with different passwords never share
	// a result, and email casing stays as exact as the store's lookup.
	key := email + "\x00" + password
	result, err, _ := r.group.Do(key, func() (any, error) {
		u, err := r.dbRepo.GetUserByCredentials(ctx, email, password)
		if err != nil {
			return nil, err
		}

		// Only a successful login warms the cache; failed lookups yield
		// no row to store
		if r.cache != nil && u != nil {
			if cerr := r.cache.Set(ctx, u); cerr != nil {
				r.log.Warn("failed to cache user", zap.String("email", email), zap.Error(cerr))
			}
		}

		return u, nil
	})

	if err != nil {
		return nil, err
	}
	if result == nil {
		return nil, nil
	}
	u, ok := result.(*domain.User)
	if !ok || u == nil {
		return nil, nil
	}
	return u, nil
}
