package mocks

import (
	"context"

	"github.com/phuongndtech-dev/ECommerceApi/domain"
)

// MockProductCache implements domain.ProductCache for testing. The default
// behavior is a cache that always misses; Invalidations counts calls.
type MockProductCache struct {
	GetByIDFunc    func(ctx context.Context, id uint) (*domain.Product, bool)
	SetFunc        func(ctx context.Context, product *domain.Product)
	GetPageFunc    func(ctx context.Context, search domain.ProductSearch) (*domain.ProductPage, bool)
	SetPageFunc    func(ctx context.Context, search domain.ProductSearch, page *domain.ProductPage)
	InvalidateFunc func(ctx context.Context)

	Invalidations int
}

// NewMockProductCache creates a new MockProductCache with default behaviors
func NewMockProductCache() *MockProductCache {
	return &MockProductCache{}
}

// GetByID looks up a cached product
func (m *MockProductCache) GetByID(ctx context.Context, id uint) (*domain.Product, bool) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, false
}

// Set stores a product
func (m *MockProductCache) Set(ctx context.Context, product *domain.Product) {
	if m.SetFunc != nil {
		m.SetFunc(ctx, product)
	}
}

// GetPage looks up a cached search page
func (m *MockProductCache) GetPage(ctx context.Context, search domain.ProductSearch) (*domain.ProductPage, bool) {
	if m.GetPageFunc != nil {
		return m.GetPageFunc(ctx, search)
	}
	return nil, false
}

// SetPage stores a search page
func (m *MockProductCache) SetPage(ctx context.Context, search domain.ProductSearch, page *domain.ProductPage) {
	if m.SetPageFunc != nil {
		m.SetPageFunc(ctx, search, page)
	}
}

// Invalidate drops all cached entries
func (m *MockProductCache) Invalidate(ctx context.Context) {
	m.Invalidations++
	if m.InvalidateFunc != nil {
		m.InvalidateFunc(ctx)
	}
}

// Compile-time interface compliance verification
var _ domain.ProductCache = (*MockProductCache)(nil)
