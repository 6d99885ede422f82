package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/phuongndtech-dev/ECommerceApi/domain"
)

// ProductServiceImpl implements domain.ProductService
type ProductServiceImpl struct {
	productRepo domain.ProductRepository
	cache       domain.ProductCache
}

// NewProductService creates a new product service
func NewProductService(productRepo domain.ProductRepository, cache domain.ProductCache) domain.ProductService {
	return &ProductServiceImpl{
		productRepo: productRepo,
		cache:       cache,
	}
}

// Create implements domain.ProductService
func (s *ProductServiceImpl) Create(ctx context.Context, input domain.ProductInput, createdByUserID uint) (*domain.Product, error) {
	existing, err := s.productRepo.FindBySKU(ctx, input.SKU)
	if err != nil && !errors.Is(err, domain.ErrProductNotFound) {
		return nil, fmt.Errorf("failed to check for existing SKU: %w", err)
	}
	if existing != nil {
		return nil, domain.ErrSKUAlreadyExists
	}

	product := &domain.Product{
		Name:            input.Name,
		Description:     input.Description,
		ImageURL:        input.ImageURL,
		Price:           input.Price,
		Stock:           input.Stock,
		Category:        input.Category,
		IsActive:        true,
		SKU:             input.SKU,
		CreatedByUserID: createdByUserID,
	}

	if err := s.productRepo.Create(ctx, product); err != nil {
		if errors.Is(err, domain.ErrSKUAlreadyExists) {
			return nil, domain.ErrSKUAlreadyExists
		}
		return nil, fmt.Errorf("failed to create product: %w", err)
	}

	s.cache.Invalidate(ctx)

	// Reload so the creator is attached to the returned product.
	created, err := s.productRepo.FindByID(ctx, product.ID)
	if err != nil {
		return product, nil
	}
	return created, nil
}

// Update implements domain.ProductService
func (s *ProductServiceImpl) Update(ctx context.Context, id uint, input domain.ProductInput) (*domain.Product, error) {
	product, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrProductNotFound) {
			return nil, domain.ErrProductNotFound
		}
		return nil, fmt.Errorf("failed to load product: %w", err)
	}

	if product.SKU != input.SKU {
		conflict, err := s.productRepo.FindBySKU(ctx, input.SKU)
		if err != nil && !errors.Is(err, domain.ErrProductNotFound) {
			return nil, fmt.Errorf("failed to check for existing SKU: %w", err)
		}
		if conflict != nil && conflict.ID != id {
			return nil, domain.ErrSKUAlreadyExists
		}
	}

	product.Name = input.Name
	product.Description = input.Description
	product.ImageURL = input.ImageURL
	product.Price = input.Price
	product.Stock = input.Stock
	product.Category = input.Category
	product.SKU = input.SKU

	if err := s.productRepo.Update(ctx, product); err != nil {
		if errors.Is(err, domain.ErrSKUAlreadyExists) {
			return nil, domain.ErrSKUAlreadyExists
		}
		return nil, fmt.Errorf("failed to update product: %w", err)
	}

	s.cache.Invalidate(ctx)
	return product, nil
}

// Delete implements domain.ProductService
func (s *ProductServiceImpl) Delete(ctx context.Context, id uint) error {
	if err := s.productRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, domain.ErrProductNotFound) {
			return domain.ErrProductNotFound
		}
		return fmt.Errorf("failed to delete product: %w", err)
	}

	s.cache.Invalidate(ctx)
	return nil
}

// GetByID implements domain.ProductService with a read-through cache
func (s *ProductServiceImpl) GetByID(ctx context.Context, id uint) (*domain.Product, error) {
	if cached, hit := s.cache.GetByID(ctx, id); hit {
		return cached, nil
	}

	product, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	s.cache.Set(ctx, product)
	return product, nil
}

// Search implements domain.ProductService with a read-through cache over
// normalized queries
func (s *ProductServiceImpl) Search(ctx context.Context, search domain.ProductSearch) (*domain.ProductPage, error) {
	search.Normalize()

	if cached, hit := s.cache.GetPage(ctx, search); hit {
		return cached, nil
	}

	items, total, err := s.productRepo.Search(ctx, search)
	if err != nil {
		return nil, fmt.Errorf("failed to search products: %w", err)
	}

	page := domain.NewProductPage(items, total, search.Page, search.PageSize)
	s.cache.SetPage(ctx, search, page)
	return page, nil
}
