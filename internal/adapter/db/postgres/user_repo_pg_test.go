package postgres

import (
	"context"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
	"gorm.io/gorm"

	"ecommerce-auth-service/internal/domain/user"
	"ecommerce-auth-service/pkg/security"
)

func setupTestDB(t *testing.T) *gorm.DB {
	// TranslateError mirrors production wiring so a duplicate email
	// surfaces as gorm.ErrDuplicatedKey here too
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)

	err = db.AutoMigrate(&UserSchema{})
	require.NoError(t, err)

	return db
}

func setupTestRepo(t *testing.T) *UserRepoPG {
	return NewUserRepoPG(setupTestDB(t), zaptest.NewLogger(t))
}

func hashFor(t *testing.T, plain string) string {
	hash, err := security.HashPassword(plain)
	require.NoError(t, err)
	return hash
}

func TestUserRepoPG_AddUser_AssignsID(t *testing.T) {
	repo := setupTestRepo(t)
	ctx := context.Background()

	created, err := repo.AddUser(ctx, &user.User{
		Email:    "a@b.com",
		Name:     "Alice",
		Gender:   "Female",
		Password: hashFor(t, "p1"),
	})

	require.NoError(t, err)
	require.NotNil(t, created)
	assert.NotEmpty(t, created.ID)

	// The identifier is opaque but well-formed
	_, err = uuid.Parse(created.ID)
	assert.NoError(t, err)

	assert.Equal(t, "a@b.com", created.Email)
	assert.Equal(t, "Alice", created.Name)
	assert.Equal(t, "Female", created.Gender)
}

func TestUserRepoPG_AddUser_NilUser(t *testing.T) {
	repo := setupTestRepo(t)

	created, err := repo.AddUser(context.Background(), nil)

	assert.Error(t, err)
	assert.Nil(t, created)
}

func TestUserRepoPG_AddUser_DuplicateEmail(t *testing.T) {
	repo := setupTestRepo(t)
	ctx := context.Background()

	first, err := repo.AddUser(ctx, &user.User{
		Email:    "a@b.com",
		Name:     "Alice",
		Gender:   "Female",
		Password: hashFor(t, "p1"),
	})
	require.NoError(t, err)
	require.NotNil(t, first)

	// Same email again: the write is rejected, not failed
	second, err := repo.AddUser(ctx, &user.User{
		Email:    "a@b.com",
		Name:     "Someone Else",
		Gender:   "Male",
		Password: hashFor(t, "p2"),
	})

	assert.NoError(t, err)
	assert.Nil(t, second)
}

func TestUserRepoPG_AddUser_DistinctIDs(t *testing.T) {
	repo := setupTestRepo(t)
	ctx := context.Background()

	u1, err := repo.AddUser(ctx, &user.User{Email: "a@b.com", Name: "A", Gender: "Other", Password: hashFor(t, "p1")})
	require.NoError(t, err)
	u2, err := repo.AddUser(ctx, &user.User{Email: "c@d.com", Name: "C", Gender: "Other", Password: hashFor(t, "p2")})
	require.NoError(t, err)

	assert.NotEqual(t, u1.ID, u2.ID)
}

func TestUserRepoPG_GetUserByCredentials_Match(t *testing.T) {
	repo := setupTestRepo(t)
	ctx := context.Background()

	created, err := repo.AddUser(ctx, &user.User{
		Email:    "a@b.com",
		Name:     "Alice",
		Gender:   "Female",
		Password: hashFor(t, "p1"),
	})
	require.NoError(t, err)
	require.NotNil(t, created)

	found, err := repo.GetUserByCredentials(ctx, "a@b.com", "p1")

	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, created.ID, found.ID)
	assert.Equal(t, "Alice", found.Name)
	assert.Equal(t, "Female", found.Gender)
}

func TestUserRepoPG_GetUserByCredentials_WrongPassword(t *testing.T) {
	repo := setupTestRepo(t)
	ctx := context.Background()

	_, err := repo.AddUser(ctx, &user.User{
		Email:    "a@b.com",
		Name:     "Alice",
		Gender:   "Female",
		Password: hashFor(t, "p1"),
	})
	require.NoError(t, err)

	found, err := repo.GetUserByCredentials(ctx, "a@b.com", "wrong")

	assert.NoError(t, err)
	assert.Nil(t, found)
}

func TestUserRepoPG_GetUserByCredentials_UnknownEmail(t *testing.T) {
	repo := setupTestRepo(t)

	found, err := repo.GetUserByCredentials(context.Background(), "nobody@b.com", "p1")

	assert.NoError(t, err)
	assert.Nil(t, found)
}

func TestUserRepoPG_StoresHashNotPlaintext(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepoPG(db, zaptest.NewLogger(t))
	ctx := context.Background()

	_, err := repo.AddUser(ctx, &user.User{
		Email:    "a@b.com",
		Name:     "Alice",
		Gender:   "Female",
		Password: hashFor(t, "p1"),
	})
	require.NoError(t, err)

	var model UserSchema
	require.NoError(t, db.Where("email = ?", "a@b.com").First(&model).Error)

	assert.NotEqual(t, "p1", model.Password)
	assert.True(t, security.CheckPassword(model.Password, "p1"))
}
