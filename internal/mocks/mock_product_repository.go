package mocks

import (
	"context"

	"github.com/phuongndtech-dev/ECommerceApi/domain"
)

// MockProductRepository implements domain.ProductRepository for testing
type MockProductRepository struct {
	CreateFunc    func(ctx context.Context, product *domain.Product) error
	FindByIDFunc  func(ctx context.Context, id uint) (*domain.Product, error)
	FindBySKUFunc func(ctx context.Context, sku string) (*domain.Product, error)
	UpdateFunc    func(ctx context.Context, product *domain.Product) error
	DeleteFunc    func(ctx context.Context, id uint) error
	SearchFunc    func(ctx context.Context, search domain.ProductSearch) ([]domain.Product, int64, error)
}

// NewMockProductRepository creates a new MockProductRepository with default behaviors
func NewMockProductRepository() *MockProductRepository {
	return &MockProductRepository{}
}

// Create creates a new product
func (m *MockProductRepository) Create(ctx context.Context, product *domain.Product) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, product)
	}
	return nil
}

// FindByID finds a product by ID
func (m *MockProductRepository) FindByID(ctx context.Context, id uint) (*domain.Product, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, domain.ErrProductNotFound
}

// FindBySKU finds a product by SKU
func (m *MockProductRepository) FindBySKU(ctx context.Context, sku string) (*domain.Product, error) {
	if m.FindBySKUFunc != nil {
		return m.FindBySKUFunc(ctx, sku)
	}
	return nil, domain.ErrProductNotFound
}

// Update updates an existing product
func (m *MockProductRepository) Update(ctx context.Context, product *domain.Product) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, product)
	}
	return nil
}

// Delete removes a product
func (m *MockProductRepository) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

// Search runs a catalog query
func (m *MockProductRepository) Search(ctx context.Context, search domain.ProductSearch) ([]domain.Product, int64, error) {
	if m.SearchFunc != nil {
		return m.SearchFunc(ctx, search)
	}
	return nil, 0, nil
}

// Compile-time interface compliance verification
var _ domain.ProductRepository = (*MockProductRepository)(nil)
