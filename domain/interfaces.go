package domain

import (
	"context"
	"time"
)

// UserRepository defines user data access operations
type UserRepository interface {
	Create(ctx context.Context, user *User) error
	// FindByEmail matches the email case-insensitively.
	FindByEmail(ctx context.Context, email string) (*User, error)
	FindByID(ctx context.Context, id uint) (*User, error)
	Update(ctx context.Context, user *User) error
	UpdateLastLogin(ctx context.Context, userID uint, at time.Time) error
}

// ProductRepository defines catalog data access operations
type ProductRepository interface {
	Create(ctx context.Context, product *Product) error
	FindByID(ctx context.Context, id uint) (*Product, error)
	FindBySKU(ctx context.Context, sku string) (*Product, error)
	Update(ctx context.Context, product *Product) error
	Delete(ctx context.Context, id uint) error
	Search(ctx context.Context, search ProductSearch) ([]Product, int64, error)
}

// ProductCache is a read-through cache in front of the catalog. Lookups
// report a miss on any cache failure; the caller falls back to the
// repository and never sees a cache error.
type ProductCache interface {
	GetByID(ctx context.Context, id uint) (*Product, bool)
	Set(ctx context.Context, product *Product)
	GetPage(ctx context.Context, search ProductSearch) (*ProductPage, bool)
	SetPage(ctx context.Context, search ProductSearch, page *ProductPage)
	Invalidate(ctx context.Context)
}

// AuthService defines authentication business logic
type AuthService interface {
	Register(ctx context.Context, email, password, firstName, lastName string) (*User, error)
	Login(ctx context.Context, email, password string) (*AuthResult, error)
	Logout(ctx context.Context, userID uint) error
	GetUserProfile(ctx context.Context, userID uint) (*User, error)
}

// ProductService defines catalog business logic
type ProductService interface {
	Create(ctx context.Context, input ProductInput, createdByUserID uint) (*Product, error)
	Update(ctx context.Context, id uint, input ProductInput) (*Product, error)
	Delete(ctx context.Context, id uint) error
	GetByID(ctx context.Context, id uint) (*Product, error)
	Search(ctx context.Context, search ProductSearch) (*ProductPage, error)
}

// PasswordService defines password hashing operations
type PasswordService interface {
	Hash(password string) (string, error)
	// Verify reports whether password matches hashedPassword. A malformed
	// hash yields false, never an error.
	Verify(hashedPassword, password string) bool
}

// TokenService defines token issuance and validation
type TokenService interface {
	Generate(user *User) (token string, expiresAt time.Time, err error)
	// Validate returns ErrTokenInvalid on any integrity failure.
	Validate(token string) (*TokenClaims, error)
	// UserIDFromToken and EmailFromToken are convenience projections over
	// Validate; they report absence instead of an error.
	UserIDFromToken(token string) (uint, bool)
	EmailFromToken(token string) (string, bool)
}
