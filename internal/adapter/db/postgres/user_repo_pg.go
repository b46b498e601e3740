package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"ecommerce-auth-service/internal/domain/user"
	"ecommerce-auth-service/pkg/security"
)

// UserRepoPG implements the auth.Repository contract using PostgreSQL and
// GORM. The connection must be opened with TranslateError enabled so a
// unique-index violation surfaces as gorm.ErrDuplicatedKey.
type UserRepoPG struct {
	db  *gorm.DB
	log *zap.Logger
}

// NewUserRepoPG creates a new instance of UserRepoPG.
func NewUserRepoPG(db *gorm.DB, log *zap.Logger) *UserRepoPG {
	return &UserRepoPG{db: db, log: log}
}

// UserSchema represents the database schema for the users table.
type UserSchema struct {
	ID       string `gorm:"primaryKey;size:36"` // Opaque identifier assigned at creation
	Email    string `gorm:"not null;uniqueIndex"`
	Name     string `gorm:"not null;size:50"`
	Gender   string `gorm:"not null"`
	Password string `gorm:"not null"` // bcrypt hash
}

// TableName specifies the table name for the UserSchema model.
func (UserSchema) TableName() string {
	return "users"
}

// AddUser inserts a new user and assigns its identifier. A rejected write,
// such as a duplicate email, yields a nil user rather than an error; only
// infrastructure faults are returned as errors.
func (r *UserRepoPG) AddUser(ctx context.Context, u *user.User) (*user.User, error) {
	if u == nil {
		return nil, errors.New("user cannot be nil")
	}

	model := UserSchema{
		ID:       uuid.NewString(),
		Email:    u.Email,
		Name:     u.Name,
		Gender:   u.Gender,
		Password: u.Password,
	}

	if err := r.db.WithContext(ctx).Create(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			r.log.Warn("duplicate email rejected", zap.String("email", u.Email))
			return nil, nil
		}
		r.log.Error("failed to add user in db", zap.Error(err), zap.String("email", u.Email))
		return nil, fmt.Errorf("failed to add user: %w", err)
	}

	r.log.Info("user created in db", zap.String("id", model.ID))
	return toDomain(&model), nil
}

// GetUserByCredentials resolves an email/password pair against the stored
// bcrypt hash. A missing row and a wrong password both yield a nil user,
// indistinguishable to the caller.
func (r *UserRepoPG) GetUserByCredentials(ctx context.Context, email, password string) (*user.User, error) {
	var model UserSchema
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			r.log.Debug("user not found by email", zap.String("email", email))
			return nil, nil
		}
		r.log.Error("failed to get user by credentials from db", zap.Error(err), zap.String("email", email))
		return nil, fmt.Errorf("failed to get user by credentials: %w", err)
	}

	if !security.CheckPassword(model.Password, password) {
		r.log.Debug("password mismatch", zap.String("email", email))
		return nil, nil
	}

	return toDomain(&model), nil
}

func toDomain(m *UserSchema) *user.User {
	return &user.User{
		ID:       m.ID,
		Email:    m.Email,
		Name:     m.Name,
		Gender:   m.Gender,
		Password: m.Password,
	}
}
