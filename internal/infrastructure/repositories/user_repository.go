package repositories

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/phuongndtech-dev/ECommerceApi/domain"
)

// UserRepositoryImpl implements domain.UserRepository using GORM
type UserRepositoryImpl struct {
	db *gorm.DB
}

// DBUser represents the database model for User (with GORM tags)
type DBUser struct {
	ID               uint       `gorm:"primaryKey"`
	Email            string     `gorm:"uniqueIndex;size:256"`
	PasswordHash     string     `gorm:"column:password_hash;size:255"`
	FirstName        string     `gorm:"size:100"`
	LastName         string     `gorm:"size:100"`
	Role             string     `gorm:"index;size:32"`
	IsEmailConfirmed bool
	IsActive         bool `gorm:"index"`
	LastLoginAt      *time.Time
	CreatedAt        time.Time `gorm:"index"`
	UpdatedAt        time.Time
}

// TableName returns the table name for GORM
func (DBUser) TableName() string {
	return "users"
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *gorm.DB) domain.UserRepository {
	return &UserRepositoryImpl{db: db}
}

// Create implements domain.UserRepository. A unique-index violation on the
// email column maps to domain.ErrUserAlreadyExists so concurrent
// registrations for the same address resolve to the same failure as the
// pre-insert existence check.
func (r *UserRepositoryImpl) Create(ctx context.Context, user *domain.User) error {
	dbUser := userToDB(user)
	if err := r.db.WithContext(ctx).Create(dbUser).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.ErrUserAlreadyExists
		}
		return err
	}
	user.ID = dbUser.ID
	user.CreatedAt = dbUser.CreatedAt
	user.UpdatedAt = dbUser.UpdatedAt
	return nil
}

// FindByEmail implements domain.UserRepository. The match is
// case-insensitive; emails are unique regardless of casing.
func (r *UserRepositoryImpl) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	var dbUser DBUser
	err := r.db.WithContext(ctx).Where("LOWER(email) = LOWER(?)", email).First(&dbUser).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return userToDomain(&dbUser), nil
}

// FindByID implements domain.UserRepository
func (r *UserRepositoryImpl) FindByID(ctx context.Context, id uint) (*domain.User, error) {
	var dbUser DBUser
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&dbUser).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return userToDomain(&dbUser), nil
}

// Update implements domain.UserRepository
func (r *UserRepositoryImpl) Update(ctx context.Context, user *domain.User) error {
	dbUser := userToDB(user)
	if err := r.db.WithContext(ctx).Save(dbUser).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.ErrUserAlreadyExists
		}
		return err
	}
	return nil
}

// UpdateLastLogin implements domain.UserRepository
func (r *UserRepositoryImpl) UpdateLastLogin(ctx context.Context, userID uint, at time.Time) error {
	return r.db.WithContext(ctx).
		Model(&DBUser{}).
		Where("id = ?", userID).
		Update("last_login_at", at).Error
}

// userToDB converts a domain user to the database model
func userToDB(user *domain.User) *DBUser {
	return &DBUser{
		ID:               user.ID,
		Email:            user.Email,
		PasswordHash:     user.PasswordHash,
		FirstName:        user.FirstName,
		LastName:         user.LastName,
		Role:             string(user.Role),
		IsEmailConfirmed: user.IsEmailConfirmed,
		IsActive:         user.IsActive,
		LastLoginAt:      user.LastLoginAt,
		CreatedAt:        user.CreatedAt,
		UpdatedAt:        user.UpdatedAt,
	}
}

// userToDomain converts a database user to the domain model
func userToDomain(dbUser *DBUser) *domain.User {
	return &domain.User{
		ID:               dbUser.ID,
		Email:            dbUser.Email,
		PasswordHash:     dbUser.PasswordHash,
		FirstName:        dbUser.FirstName,
		LastName:         dbUser.LastName,
		Role:             domain.Role(dbUser.Role),
		IsEmailConfirmed: dbUser.IsEmailConfirmed,
		IsActive:         dbUser.IsActive,
		LastLoginAt:      dbUser.LastLoginAt,
		CreatedAt:        dbUser.CreatedAt,
		UpdatedAt:        dbUser.UpdatedAt,
	}
}
