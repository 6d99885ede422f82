package handlers

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/phuongndtech-dev/ECommerceApi/domain"
)

// Binding tags catch the structural rules (required, email, ranges); the
// checks below cover the character-class rules Gin's validator has no tag for.
var (
	nameRe = regexp.MustCompile(`^[a-zA-Z\s]+$`)
	skuRe  = regexp.MustCompile(`^[A-Z0-9]+$`)

	hasLower = regexp.MustCompile(`[a-z]`)
	hasUpper = regexp.MustCompile(`[A-Z]`)
	hasDigit = regexp.MustCompile(`\d`)
)

// RegisterRequest represents a registration request
type RegisterRequest struct {
	Email     string `json:"email" binding:"required,email,max=256"`
	Password  string `json:"password" binding:"required,min=6,max=100"`
	FirstName string `json:"firstName" binding:"required,max=100"`
	LastName  string `json:"lastName" binding:"required,max=100"`
}

// Validate applies the character-class rules
func (r *RegisterRequest) Validate() []string {
	var details []string
	if !hasLower.MatchString(r.Password) || !hasUpper.MatchString(r.Password) || !hasDigit.MatchString(r.Password) {
		details = append(details, "Password must contain at least one uppercase letter, one lowercase letter, and one number")
	}
	if !nameRe.MatchString(r.FirstName) {
		details = append(details, "First name can only contain letters and spaces")
	}
	if !nameRe.MatchString(r.LastName) {
		details = append(details, "Last name can only contain letters and spaces")
	}
	return details
}

// LoginRequest represents a login request
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// ProductRequest carries the writable product fields for create and update
type ProductRequest struct {
	Name        string  `json:"name" binding:"required,max=200"`
	Description string  `json:"description" binding:"required,max=2000"`
	ImageURL    string  `json:"imageUrl" binding:"omitempty,url,max=500"`
	Price       float64 `json:"price" binding:"required,gt=0,lte=999999.99"`
	Stock       int     `json:"stock" binding:"min=0,max=999999"`
	Category    string  `json:"category" binding:"required,max=100"`
	SKU         string  `json:"sku" binding:"required,max=50"`
}

// Validate applies the character-class rules
func (r *ProductRequest) Validate() []string {
	var details []string
	if !skuRe.MatchString(r.SKU) {
		details = append(details, "SKU can only contain uppercase letters and numbers")
	}
	return details
}

// Input converts the request into the service-layer shape
func (r *ProductRequest) Input() domain.ProductInput {
	return domain.ProductInput{
		Name:        strings.TrimSpace(r.Name),
		Description: strings.TrimSpace(r.Description),
		ImageURL:    strings.TrimSpace(r.ImageURL),
		Price:       r.Price,
		Stock:       r.Stock,
		Category:    strings.TrimSpace(r.Category),
		SKU:         strings.TrimSpace(r.SKU),
	}
}

// ProductSearchRequest binds the catalog query parameters
type ProductSearchRequest struct {
	Search         string   `form:"search"`
	Category       string   `form:"category"`
	MinPrice       *float64 `form:"minPrice" binding:"omitempty,gte=0"`
	MaxPrice       *float64 `form:"maxPrice" binding:"omitempty,gte=0"`
	InStock        *bool    `form:"inStock"`
	SortBy         string   `form:"sortBy"`
	SortDescending bool     `form:"sortDescending"`
	Page           int      `form:"page" binding:"omitempty,gt=0"`
	PageSize       int      `form:"pageSize" binding:"omitempty,gt=0,lte=100"`
}

// Validate applies the cross-field rules
func (r *ProductSearchRequest) Validate() []string {
	var details []string
	if r.MinPrice != nil && r.MaxPrice != nil && *r.MaxPrice < *r.MinPrice {
		details = append(details, fmt.Sprintf("Maximum price must be greater than or equal to minimum price (%.2f)", *r.MinPrice))
	}
	return details
}

// Query converts the request into the service-layer query
func (r *ProductSearchRequest) Query() domain.ProductSearch {
	return domain.ProductSearch{
		Search:   strings.TrimSpace(r.Search),
		Category: strings.TrimSpace(r.Category),
		MinPrice: r.MinPrice,
		MaxPrice: r.MaxPrice,
		InStock:  r.InStock,
		SortBy:   r.SortBy,
		SortDesc: r.SortDescending,
		Page:     r.Page,
		PageSize: r.PageSize,
	}
}
