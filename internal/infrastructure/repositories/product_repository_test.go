package repositories

import (
	"context"
	"errors"
	"testing"

	"gorm.io/gorm"

	"github.com/phuongndtech-dev/ECommerceApi/domain"
)

func seedCatalog(t *testing.T, db *gorm.DB) uint {
	t.Helper()

	admin := &DBUser{Email: "admin@example.com", PasswordHash: "x", FirstName: "Admin", LastName: "User", Role: "Admin", IsActive: true}
	if err := db.Create(admin).Error; err != nil {
		t.Fatalf("failed to seed admin: %v", err)
	}

	products := []DBProduct{
		{Name: "iPhone 15 Pro", Description: "Latest iPhone", Price: 999.99, Stock: 50, Category: "Electronics", IsActive: true, SKU: "IPH15PRO001", CreatedByUserID: admin.ID},
		{Name: "MacBook Pro M3", Description: "14-inch laptop", Price: 1999.99, Stock: 25, Category: "Electronics", IsActive: true, SKU: "MBP14M3001", CreatedByUserID: admin.ID},
		{Name: "AirPods Pro 2", Description: "Wireless earbuds", Price: 249.99, Stock: 0, Category: "Electronics", IsActive: true, SKU: "APRO2001", CreatedByUserID: admin.ID},
		{Name: "Nike Air Max 270", Description: "Running shoes with phone pocket", Price: 149.99, Stock: 75, Category: "Fashion", IsActive: true, SKU: "NIKAM270001", CreatedByUserID: admin.ID},
		{Name: "Retired Lamp", Description: "Discontinued", Price: 19.99, Stock: 10, Category: "Home", IsActive: false, SKU: "LAMP001", CreatedByUserID: admin.ID},
	}
	for i := range products {
		if err := db.Create(&products[i]).Error; err != nil {
			t.Fatalf("failed to seed product: %v", err)
		}
	}
	return admin.ID
}

func normalized(s domain.ProductSearch) domain.ProductSearch {
	s.Normalize()
	return s
}

func TestProductRepositoryImpl_Search(t *testing.T) {
	db := setupTestDB(t)
	seedCatalog(t, db)
	repo := NewProductRepository(db)
	ctx := context.Background()

	minPrice := 200.0
	maxPrice := 1500.0
	inStock := true
	outOfStock := false

	tests := []struct {
		name          string
		search        domain.ProductSearch
		expectedTotal int64
		expectedFirst string
	}{
		{
			name:          "no filters sorts by name ascending",
			search:        normalized(domain.ProductSearch{}),
			expectedTotal: 5,
			expectedFirst: "AirPods Pro 2",
		},
		{
			name:          "name substring match is case-insensitive",
			search:        normalized(domain.ProductSearch{Search: "iphone"}),
			expectedTotal: 1,
			expectedFirst: "iPhone 15 Pro",
		},
		{
			name:          "description substring matches too",
			search:        normalized(domain.ProductSearch{Search: "phone"}),
			expectedTotal: 2,
			expectedFirst: "Nike Air Max 270",
		},
		{
			name:          "category filter",
			search:        normalized(domain.ProductSearch{Category: "Fashion"}),
			expectedTotal: 1,
			expectedFirst: "Nike Air Max 270",
		},
		{
			name:          "price range",
			search:        normalized(domain.ProductSearch{MinPrice: &minPrice, MaxPrice: &maxPrice}),
			expectedTotal: 2,
			expectedFirst: "AirPods Pro 2",
		},
		{
			name:          "in stock excludes empty and inactive",
			search:        normalized(domain.ProductSearch{InStock: &inStock}),
			expectedTotal: 3,
			expectedFirst: "MacBook Pro M3",
		},
		{
			name:          "out of stock includes inactive",
			search:        normalized(domain.ProductSearch{InStock: &outOfStock}),
			expectedTotal: 2,
			expectedFirst: "AirPods Pro 2",
		},
		{
			name:          "sort by price descending",
			search:        normalized(domain.ProductSearch{SortBy: "price", SortDesc: true}),
			expectedTotal: 5,
			expectedFirst: "MacBook Pro M3",
		},
		{
			name:          "sort by stock ascending",
			search:        normalized(domain.ProductSearch{SortBy: "stock"}),
			expectedTotal: 5,
			expectedFirst: "AirPods Pro 2",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			items, total, err := repo.Search(ctx, tt.search)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if total != tt.expectedTotal {
				t.Errorf("expected total %d, got %d", tt.expectedTotal, total)
			}
			if len(items) == 0 {
				t.Fatal("expected at least one item")
			}
			if items[0].Name != tt.expectedFirst {
				t.Errorf("expected first item %q, got %q", tt.expectedFirst, items[0].Name)
			}
		})
	}
}

func TestProductRepositoryImpl_SearchPagination(t *testing.T) {
	db := setupTestDB(t)
	seedCatalog(t, db)
	repo := NewProductRepository(db)
	ctx := context.Background()

	first, total, err := repo.Search(ctx, normalized(domain.ProductSearch{Page: 1, PageSize: 2}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if total != 5 {
		t.Errorf("expected total 5, got %d", total)
	}
	if len(first) != 2 {
		t.Errorf("expected 2 items on first page, got %d", len(first))
	}

	third, _, err := repo.Search(ctx, normalized(domain.ProductSearch{Page: 3, PageSize: 2}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(third) != 1 {
		t.Errorf("expected 1 item on last page, got %d", len(third))
	}

	beyond, _, err := repo.Search(ctx, normalized(domain.ProductSearch{Page: 4, PageSize: 2}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(beyond) != 0 {
		t.Errorf("expected empty page past the end, got %d items", len(beyond))
	}
}

func TestProductRepositoryImpl_SearchPreloadsCreator(t *testing.T) {
	db := setupTestDB(t)
	seedCatalog(t, db)
	repo := NewProductRepository(db)

	items, _, err := repo.Search(context.Background(), normalized(domain.ProductSearch{Search: "iphone"}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(items))
	}
	if items[0].CreatedBy == nil || items[0].CreatedBy.Email != "admin@example.com" {
		t.Error("expected creator to be preloaded")
	}
}

func TestProductRepositoryImpl_FindBySKU(t *testing.T) {
	db := setupTestDB(t)
	seedCatalog(t, db)
	repo := NewProductRepository(db)
	ctx := context.Background()

	product, err := repo.FindBySKU(ctx, "MBP14M3001")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if product.Name != "MacBook Pro M3" {
		t.Errorf("expected MacBook Pro M3, got %s", product.Name)
	}

	if _, err := repo.FindBySKU(ctx, "NOPE"); !errors.Is(err, domain.ErrProductNotFound) {
		t.Errorf("expected ErrProductNotFound, got %v", err)
	}
}

func TestProductRepositoryImpl_DuplicateSKU(t *testing.T) {
	db := setupTestDB(t)
	creatorID := seedCatalog(t, db)
	repo := NewProductRepository(db)

	err := repo.Create(context.Background(), &domain.Product{
		Name:            "Another iPhone",
		Description:     "Clone",
		Price:           1.0,
		Stock:           1,
		Category:        "Electronics",
		IsActive:        true,
		SKU:             "IPH15PRO001",
		CreatedByUserID: creatorID,
	})
	if !errors.Is(err, domain.ErrSKUAlreadyExists) {
		t.Errorf("expected ErrSKUAlreadyExists, got %v", err)
	}
}

func TestProductRepositoryImpl_Delete(t *testing.T) {
	db := setupTestDB(t)
	seedCatalog(t, db)
	repo := NewProductRepository(db)
	ctx := context.Background()

	product, err := repo.FindBySKU(ctx, "LAMP001")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := repo.Delete(ctx, product.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := repo.FindByID(ctx, product.ID); !errors.Is(err, domain.ErrProductNotFound) {
		t.Errorf("expected ErrProductNotFound after delete, got %v", err)
	}

	if err := repo.Delete(ctx, 9999); !errors.Is(err, domain.ErrProductNotFound) {
		t.Errorf("expected ErrProductNotFound for missing id, got %v", err)
	}
}

func TestProductRepositoryImpl_Update(t *testing.T) {
	db := setupTestDB(t)
	seedCatalog(t, db)
	repo := NewProductRepository(db)
	ctx := context.Background()

	product, err := repo.FindBySKU(ctx, "APRO2001")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	product.Stock = 30
	product.Price = 229.99
	if err := repo.Update(ctx, product); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	updated, err := repo.FindByID(ctx, product.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.Stock != 30 || updated.Price != 229.99 {
		t.Errorf("expected updated stock/price, got %d/%v", updated.Stock, updated.Price)
	}
}
