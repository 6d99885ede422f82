package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/phuongndtech-dev/ECommerceApi/domain"
)

// UserResponse is the public projection of a user. The password hash never
// leaves the repository layer.
type UserResponse struct {
	ID          uint       `json:"id"`
	Email       string     `json:"email"`
	FirstName   string     `json:"firstName"`
	LastName    string     `json:"lastName"`
	FullName    string     `json:"fullName"`
	Role        string     `json:"role"`
	IsActive    bool       `json:"isActive"`
	CreatedAt   time.Time  `json:"createdAt"`
	LastLoginAt *time.Time `json:"lastLoginAt,omitempty"`
}

// AuthResponse is returned on a successful login.
type AuthResponse struct {
	Token     string       `json:"token"`
	ExpiresAt time.Time    `json:"expiresAt"`
	User      UserResponse `json:"user"`
}

// ProductResponse is the public projection of a catalog product.
type ProductResponse struct {
	ID            uint      `json:"id"`
	Name          string    `json:"name"`
	Description   string    `json:"description"`
	ImageURL      string    `json:"imageUrl,omitempty"`
	Price         float64   `json:"price"`
	Stock         int       `json:"stock"`
	Category      string    `json:"category"`
	IsActive      bool      `json:"isActive"`
	SKU           string    `json:"sku"`
	InStock       bool      `json:"inStock"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
	CreatedByName string    `json:"createdByName,omitempty"`
}

// ProductPageResponse wraps a page of products with pagination metadata.
type ProductPageResponse struct {
	Items      []ProductResponse `json:"items"`
	Page       int               `json:"page"`
	PageSize   int               `json:"pageSize"`
	TotalItems int64             `json:"totalItems"`
	TotalPages int               `json:"totalPages"`
}

func toUserResponse(user *domain.User) UserResponse {
	return UserResponse{
		ID:          user.ID,
		Email:       user.Email,
		FirstName:   user.FirstName,
		LastName:    user.LastName,
		FullName:    user.FullName(),
		Role:        string(user.Role),
		IsActive:    user.IsActive,
		CreatedAt:   user.CreatedAt,
		LastLoginAt: user.LastLoginAt,
	}
}

func toProductResponse(product *domain.Product) ProductResponse {
	resp := ProductResponse{
		ID:          product.ID,
		Name:        product.Name,
		Description: product.Description,
		ImageURL:    product.ImageURL,
		Price:       product.Price,
		Stock:       product.Stock,
		Category:    product.Category,
		IsActive:    product.IsActive,
		SKU:         product.SKU,
		InStock:     product.InStock(),
		CreatedAt:   product.CreatedAt,
		UpdatedAt:   product.UpdatedAt,
	}
	if product.CreatedBy != nil {
		resp.CreatedByName = product.CreatedBy.FullName()
	}
	return resp
}

func toProductPageResponse(page *domain.ProductPage) ProductPageResponse {
	items := make([]ProductResponse, 0, len(page.Items))
	for i := range page.Items {
		items = append(items, toProductResponse(&page.Items[i]))
	}
	return ProductPageResponse{
		Items:      items,
		Page:       page.Page,
		PageSize:   page.PageSize,
		TotalItems: page.TotalCount,
		TotalPages: page.TotalPages,
	}
}

func respondSuccess(c *gin.Context, status int, data any, message string) {
	c.JSON(status, domain.SuccessResponse(data, message))
}

func respondFailure(c *gin.Context, status int, message string, details ...string) {
	c.JSON(status, domain.FailureResponse(message, details...))
}

// respondInternal hides the underlying cause from the client; the handler is
// expected to have logged it already.
func respondInternal(c *gin.Context) {
	respondFailure(c, http.StatusInternalServerError, "An error occurred while processing your request")
}
