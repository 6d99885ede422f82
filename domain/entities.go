package domain

import (
	"fmt"
	"strings"
	"time"
)

// User represents a registered account with credentials and role
type User struct {
	ID               uint
	Email            string
	PasswordHash     string
	FirstName        string
	LastName         string
	Role             Role
	IsEmailConfirmed bool
	IsActive         bool
	LastLoginAt      *time.Time
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// FullName returns the display name of the user
func (u *User) FullName() string {
	return strings.TrimSpace(u.FirstName + " " + u.LastName)
}

// Product represents a catalog item
type Product struct {
	ID              uint
	Name            string
	Description     string
	ImageURL        string
	Price           float64
	Stock           int
	Category        string
	IsActive        bool
	SKU             string
	CreatedByUserID uint
	CreatedBy       *User
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// InStock reports whether the product can currently be sold
func (p *Product) InStock() bool {
	return p.Stock > 0 && p.IsActive
}

// CanPurchase reports whether quantity units can be purchased
func (p *Product) CanPurchase(quantity int) bool {
	return p.InStock() && p.Stock >= quantity
}

// TotalPrice returns the price of quantity units
func (p *Product) TotalPrice(quantity int) float64 {
	return p.Price * float64(quantity)
}

// UpdateStock replaces the stock level; negative levels are rejected
func (p *Product) UpdateStock(newStock int) error {
	if newStock < 0 {
		return fmt.Errorf("stock cannot be negative")
	}
	p.Stock = newStock
	return nil
}

// DeductStock removes quantity units from stock
func (p *Product) DeductStock(quantity int) error {
	if !p.CanPurchase(quantity) {
		return fmt.Errorf("cannot deduct %d items, available stock: %d", quantity, p.Stock)
	}
	p.Stock -= quantity
	return nil
}

// AuthResult represents a successful login outcome
type AuthResult struct {
	User      *User
	Token     string
	ExpiresAt time.Time
}

// TokenClaims represents the identity asserted by a validated JWT
type TokenClaims struct {
	UserID    uint
	Email     string
	FirstName string
	LastName  string
	Role      Role
	TokenID   string
	IssuedAt  int64
	ExpiresAt int64
}

// ProductInput carries the writable fields of a product
type ProductInput struct {
	Name        string
	Description string
	ImageURL    string
	Price       float64
	Stock       int
	Category    string
	SKU         string
}

// Search/sort/pagination bounds for the catalog
const (
	DefaultPage     = 1
	DefaultPageSize = 10
	MaxPageSize     = 100
	DefaultSortBy   = "name"
)

// ProductSearch describes a paginated catalog query
type ProductSearch struct {
	Search   string
	Category string
	MinPrice *float64
	MaxPrice *float64
	InStock  *bool
	Page     int
	PageSize int
	SortBy   string
	SortDesc bool
}

// Normalize applies defaults and clamps pagination to its bounds
func (s *ProductSearch) Normalize() {
	if s.Page < 1 {
		s.Page = DefaultPage
	}
	if s.PageSize < 1 {
		s.PageSize = DefaultPageSize
	}
	if s.PageSize > MaxPageSize {
		s.PageSize = MaxPageSize
	}
	switch strings.ToLower(s.SortBy) {
	case "name", "price", "createdat", "stock":
		s.SortBy = strings.ToLower(s.SortBy)
	default:
		s.SortBy = DefaultSortBy
	}
}

// ProductPage is one page of catalog search results
type ProductPage struct {
	Items      []Product
	TotalCount int64
	Page       int
	PageSize   int
	TotalPages int
}

// NewProductPage computes page metadata for a result set
func NewProductPage(items []Product, total int64, page, pageSize int) *ProductPage {
	totalPages := int((total + int64(pageSize) - 1) / int64(pageSize))
	return &ProductPage{
		Items:      items,
		TotalCount: total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages,
	}
}
