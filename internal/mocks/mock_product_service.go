package mocks

import (
	"context"

	"github.com/phuongndtech-dev/ECommerceApi/domain"
)

// MockProductService implements domain.ProductService for testing
type MockProductService struct {
	CreateFunc  func(ctx context.Context, input domain.ProductInput, createdByUserID uint) (*domain.Product, error)
	UpdateFunc  func(ctx context.Context, id uint, input domain.ProductInput) (*domain.Product, error)
	DeleteFunc  func(ctx context.Context, id uint) error
	GetByIDFunc func(ctx context.Context, id uint) (*domain.Product, error)
	SearchFunc  func(ctx context.Context, search domain.ProductSearch) (*domain.ProductPage, error)
}

// NewMockProductService creates a new MockProductService with default behaviors
func NewMockProductService() *MockProductService {
	return &MockProductService{}
}

// Create creates a product
func (m *MockProductService) Create(ctx context.Context, input domain.ProductInput, createdByUserID uint) (*domain.Product, error) {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, input, createdByUserID)
	}
	return nil, domain.ErrSKUAlreadyExists
}

// Update updates a product
func (m *MockProductService) Update(ctx context.Context, id uint, input domain.ProductInput) (*domain.Product, error) {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, id, input)
	}
	return nil, domain.ErrProductNotFound
}

// Delete removes a product
func (m *MockProductService) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

// GetByID fetches a product
func (m *MockProductService) GetByID(ctx context.Context, id uint) (*domain.Product, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, domain.ErrProductNotFound
}

// Search runs a catalog query
func (m *MockProductService) Search(ctx context.Context, search domain.ProductSearch) (*domain.ProductPage, error) {
	if m.SearchFunc != nil {
		return m.SearchFunc(ctx, search)
	}
	return domain.NewProductPage(nil, 0, 1, domain.DefaultPageSize), nil
}

// Compile-time interface compliance verification
var _ domain.ProductService = (*MockProductService)(nil)
