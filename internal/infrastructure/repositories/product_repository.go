package repositories

import (
	"context"
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/phuongndtech-dev/ECommerceApi/domain"
)

// ProductRepositoryImpl implements domain.ProductRepository using GORM
type ProductRepositoryImpl struct {
	db *gorm.DB
}

// DBProduct represents the database model for Product (with GORM tags)
type DBProduct struct {
	ID              uint      `gorm:"primaryKey"`
	Name            string    `gorm:"size:200;index"`
	Description     string    `gorm:"size:2000"`
	ImageURL        string    `gorm:"column:image_url;size:500"`
	Price           float64   `gorm:"type:decimal(10,2);index"`
	Stock           int       `gorm:"index"`
	Category        string    `gorm:"size:100;index"`
	IsActive        bool      `gorm:"index"`
	SKU             string    `gorm:"column:sku;uniqueIndex;size:50"`
	CreatedByUserID uint      `gorm:"index"`
	CreatedBy       *DBUser   `gorm:"foreignKey:CreatedByUserID"`
	CreatedAt       time.Time `gorm:"index"`
	UpdatedAt       time.Time
}

// TableName returns the table name for GORM
func (DBProduct) TableName() string {
	return "products"
}

// NewProductRepository creates a new product repository
func NewProductRepository(db *gorm.DB) domain.ProductRepository {
	return &ProductRepositoryImpl{db: db}
}

// Create implements domain.ProductRepository. A unique-index violation on
// the SKU column maps to domain.ErrSKUAlreadyExists.
func (r *ProductRepositoryImpl) Create(ctx context.Context, product *domain.Product) error {
	dbProduct := productToDB(product)
	if err := r.db.WithContext(ctx).Create(dbProduct).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.ErrSKUAlreadyExists
		}
		return err
	}
	product.ID = dbProduct.ID
	product.CreatedAt = dbProduct.CreatedAt
	product.UpdatedAt = dbProduct.UpdatedAt
	return nil
}

// FindByID implements domain.ProductRepository; the creator is preloaded.
func (r *ProductRepositoryImpl) FindByID(ctx context.Context, id uint) (*domain.Product, error) {
	var dbProduct DBProduct
	err := r.db.WithContext(ctx).Preload("CreatedBy").Where("id = ?", id).First(&dbProduct).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrProductNotFound
		}
		return nil, err
	}
	return productToDomain(&dbProduct), nil
}

// FindBySKU implements domain.ProductRepository
func (r *ProductRepositoryImpl) FindBySKU(ctx context.Context, sku string) (*domain.Product, error) {
	var dbProduct DBProduct
	err := r.db.WithContext(ctx).Where("sku = ?", sku).First(&dbProduct).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrProductNotFound
		}
		return nil, err
	}
	return productToDomain(&dbProduct), nil
}

// Update implements domain.ProductRepository
func (r *ProductRepositoryImpl) Update(ctx context.Context, product *domain.Product) error {
	dbProduct := productToDB(product)
	if err := r.db.WithContext(ctx).Save(dbProduct).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.ErrSKUAlreadyExists
		}
		return err
	}
	product.UpdatedAt = dbProduct.UpdatedAt
	return nil
}

// Delete implements domain.ProductRepository
func (r *ProductRepositoryImpl) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&DBProduct{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrProductNotFound
	}
	return nil
}

// Search implements domain.ProductRepository. Filters, sorting, and
// pagination are translated into a single SQL query; the total count is
// taken before the page window is applied.
func (r *ProductRepositoryImpl) Search(ctx context.Context, search domain.ProductSearch) ([]domain.Product, int64, error) {
	query := r.db.WithContext(ctx).Model(&DBProduct{})

	if search.Search != "" {
		term := "%" + strings.ToLower(search.Search) + "%"
		query = query.Where("LOWER(name) LIKE ? OR LOWER(description) LIKE ?", term, term)
	}
	if search.Category != "" {
		query = query.Where("category = ?", search.Category)
	}
	if search.MinPrice != nil {
		query = query.Where("price >= ?", *search.MinPrice)
	}
	if search.MaxPrice != nil {
		query = query.Where("price <= ?", *search.MaxPrice)
	}
	if search.InStock != nil {
		if *search.InStock {
			query = query.Where("stock > 0 AND is_active = ?", true)
		} else {
			query = query.Where("stock = 0 OR is_active = ?", false)
		}
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var column string
	switch search.SortBy {
	case "price":
		column = "price"
	case "createdat":
		column = "created_at"
	case "stock":
		column = "stock"
	default:
		column = "name"
	}
	direction := "ASC"
	if search.SortDesc {
		direction = "DESC"
	}

	var dbProducts []DBProduct
	err := query.
		Preload("CreatedBy").
		Order(column + " " + direction).
		Offset((search.Page - 1) * search.PageSize).
		Limit(search.PageSize).
		Find(&dbProducts).Error
	if err != nil {
		return nil, 0, err
	}

	products := make([]domain.Product, 0, len(dbProducts))
	for i := range dbProducts {
		products = append(products, *productToDomain(&dbProducts[i]))
	}
	return products, total, nil
}

// productToDB converts a domain product to the database model
func productToDB(product *domain.Product) *DBProduct {
	return &DBProduct{
		ID:              product.ID,
		Name:            product.Name,
		Description:     product.Description,
		ImageURL:        product.ImageURL,
		Price:           product.Price,
		Stock:           product.Stock,
		Category:        product.Category,
		IsActive:        product.IsActive,
		SKU:             product.SKU,
		CreatedByUserID: product.CreatedByUserID,
		CreatedAt:       product.CreatedAt,
		UpdatedAt:       product.UpdatedAt,
	}
}

// productToDomain converts a database product to the domain model
func productToDomain(dbProduct *DBProduct) *domain.Product {
	product := &domain.Product{
		ID:              dbProduct.ID,
		Name:            dbProduct.Name,
		Description:     dbProduct.Description,
		ImageURL:        dbProduct.ImageURL,
		Price:           dbProduct.Price,
		Stock:           dbProduct.Stock,
		Category:        dbProduct.Category,
		IsActive:        dbProduct.IsActive,
		SKU:             dbProduct.SKU,
		CreatedByUserID: dbProduct.CreatedByUserID,
		CreatedAt:       dbProduct.CreatedAt,
		UpdatedAt:       dbProduct.UpdatedAt,
	}
	if dbProduct.CreatedBy != nil {
		product.CreatedBy = userToDomain(dbProduct.CreatedBy)
	}
	return product
}
