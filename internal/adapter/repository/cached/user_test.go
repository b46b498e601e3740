package cached

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"ecommerce-auth-service/internal/adapter/cache"
	domain "ecommerce-auth-service/internal/domain/user"
	"ecommerce-auth-service/internal/usecase/auth"
	"ecommerce-auth-service/pkg/security"
)

// MockDBRepository mocks the underlying persistent repository
type MockDBRepository struct {
	mock.Mock
}

func (m *MockDBRepository) AddUser(ctx context.Context, u *domain.User) (*domain.User, error) {
	args := m.Called(ctx, u)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockDBRepository) GetUserByCredentials(ctx context.Context, email, password string) (*domain.User, error) {
	args := m.Called(ctx, email, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func setupCachedRepo(t *testing.T) (auth.Repository, *MockDBRepository, cache.UserCache) {
	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	logger := zaptest.NewLogger(t)
	userCache := cache.NewRedisUserCache(client, 5*time.Minute, logger)

	mockDB := new(MockDBRepository)
	repo := NewCachedUserRepository(mockDB, userCache, logger)
	return repo, mockDB, userCache
}

func storedUser(t *testing.T, plain string) *domain.User {
	hash, err := security.HashPassword(plain)
	require.NoError(t, err)
	return &domain.User{
		ID:       "id-1",
		Email:    "a@b.com",
		Name:     "Alice",
		Gender:   "Female",
		Password: hash,
	}
}

func TestCachedRepo_MissPopulatesCache(t *testing.T) {
	repo, mockDB, userCache := setupCachedRepo(t)
	ctx := context.Background()

	u := storedUser(t, "p1")
	mockDB.On("GetUserByCredentials", ctx, "a@b.com", "p1").Return(u, nil).Once()

	got, err := repo.GetUserByCredentials(ctx, "a@b.com", "p1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "id-1", got.ID)

	cachedRow, err := userCache.Get(ctx, "a@b.com")
	require.NoError(t, err)
	require.NotNil(t, cachedRow)
	assert.Equal(t, "id-1", cachedRow.ID)

	mockDB.AssertExpectations(t)
}

func TestCachedRepo_HitSkipsDatabase(t *testing.T) {
	repo, mockDB, userCache := setupCachedRepo(t)
	ctx := context.Background()

	require.NoError(t, userCache.Set(ctx, storedUser(t, "p1")))

	got, err := repo.GetUserByCredentials(ctx, "a@b.com", "p1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "id-1", got.ID)

	mockDB.AssertNotCalled(t, "GetUserByCredentials", mock.Anything, mock.Anything, mock.Anything)
}

func TestCachedRepo_HitStillChecksPassword(t *testing.T) {
	repo, mockDB, userCache := setupCachedRepo(t)
	ctx := context.Background()

	require.NoError(t, userCache.Set(ctx, storedUser(t, "p1")))

	// A wrong password against a cached row fails without a DB trip
	got, err := repo.GetUserByCredentials(ctx, "a@b.com", "wrong")
	assert.NoError(t, err)
	assert.Nil(t, got)

	mockDB.AssertNotCalled(t, "GetUserByCredentials", mock.Anything, mock.Anything, mock.Anything)
}

func TestCachedRepo_EmailCaseNeverWidensMatch(t *testing.T) {
	repo, mockDB, userCache := setupCachedRepo(t)
	ctx := context.Background()

	// A warm row for a@b.com must not answer A@B.COM: the store's lookup
	// is exact-match and the decorator has to agree with it.
	require.NoError(t, userCache.Set(ctx, storedUser(t, "p1")))
	mockDB.On("GetUserByCredentials", ctx, "A@B.COM", "p1").Return(nil, nil).Once()

	got, err := repo.GetUserByCredentials(ctx, "A@B.COM", "p1")
	assert.NoError(t, err)
	assert.Nil(t, got)

	mockDB.AssertExpectations(t)
}

func TestCachedRepo_FailedLookupNotCached(t *testing.T) {
	repo, mockDB, userCache := setupCachedRepo(t)
	ctx := context.Background()

	mockDB.On("GetUserByCredentials", ctx, "a@b.com", "wrong").Return(nil, nil).Once()

	got, err := repo.GetUserByCredentials(ctx, "a@b.com", "wrong")
	assert.NoError(t, err)
	assert.Nil(t, got)

	cachedRow, err := userCache.Get(ctx, "a@b.com")
	assert.NoError(t, err)
	assert.Nil(t, cachedRow)

	mockDB.AssertExpectations(t)
}

func TestCachedRepo_AddUserInvalidatesEmail(t *testing.T) {
	repo, mockDB, userCache := setupCachedRepo(t)
	ctx := context.Background()

	// Stale row for the email sits in the cache
	require.NoError(t, userCache.Set(ctx, storedUser(t, "p1")))

	created := storedUser(t, "p2")
	mockDB.On("AddUser", ctx, mock.Anything).Return(created, nil).Once()

	got, err := repo.AddUser(ctx, &domain.User{Email: "a@b.com", Name: "Alice", Gender: "Female", Password: created.Password})
	require.NoError(t, err)
	require.NotNil(t, got)

	cachedRow, err := userCache.Get(ctx, "a@b.com")
	assert.NoError(t, err)
	assert.Nil(t, cachedRow)

	mockDB.AssertExpectations(t)
}

func TestCachedRepo_AddUserRejectedPassesThrough(t *testing.T) {
	repo, mockDB, _ := setupCachedRepo(t)
	ctx := context.Background()

	mockDB.On("AddUser", ctx, mock.Anything).Return(nil, nil).Once()

	got, err := repo.AddUser(ctx, &domain.User{Email: "a@b.com"})
	assert.NoError(t, err)
	assert.Nil(t, got)

	mockDB.AssertExpectations(t)
}
