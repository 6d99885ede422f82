package database

import (
	"fmt"
	"log"

	"gorm.io/gorm"

	"github.com/phuongndtech-dev/ECommerceApi/domain"
	"github.com/phuongndtech-dev/ECommerceApi/internal/infrastructure/repositories"
)

// Seed inserts a starter admin, customer, and catalog into an empty
// database. A database that already holds users is left untouched.
func Seed(db *gorm.DB, passwordSvc domain.PasswordService) error {
	var count int64
	if err := db.Model(&repositories.DBUser{}).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to check for existing users: %w", err)
	}
	if count > 0 {
		return nil
	}

	adminHash, err := passwordSvc.Hash("Admin123!")
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}
	customerHash, err := passwordSvc.Hash("Customer123!")
	if err != nil {
		return fmt.Errorf("failed to hash customer password: %w", err)
	}

	admin := &repositories.DBUser{
		Email:            "admin@ecommerce.com",
		PasswordHash:     adminHash,
		FirstName:        "Admin",
		LastName:         "User",
		Role:             string(domain.RoleAdmin),
		IsEmailConfirmed: true,
		IsActive:         true,
	}
	customer := &repositories.DBUser{
		Email:            "customer@example.com",
		PasswordHash:     customerHash,
		FirstName:        "John",
		LastName:         "Doe",
		Role:             string(domain.RoleCustomer),
		IsEmailConfirmed: true,
		IsActive:         true,
	}

	if err := db.Create(admin).Error; err != nil {
		return fmt.Errorf("failed to seed admin user: %w", err)
	}
	if err := db.Create(customer).Error; err != nil {
		return fmt.Errorf("failed to seed customer user: %w", err)
	}

	products := []repositories.DBProduct{
		{
			Name:            "iPhone 15 Pro",
			Description:     "Latest iPhone with A17 Pro chip and titanium design",
			ImageURL:        "https://images.unsplash.com/photo-1592750475338-74b7b21085ab",
			Price:           999.99,
			Stock:           50,
			Category:        "Electronics",
			IsActive:        true,
			SKU:             "IPH15PRO001",
			CreatedByUserID: admin.ID,
		},
		{
			Name:            "MacBook Pro M3",
			Description:     "14-inch MacBook Pro with M3 chip for professional workflows",
			ImageURL:        "https://images.unsplash.com/photo-1541807084-5c52b6b3adef",
			Price:           1999.99,
			Stock:           25,
			Category:        "Electronics",
			IsActive:        true,
			SKU:             "MBP14M3001",
			CreatedByUserID: admin.ID,
		},
		{
			Name:            "AirPods Pro 2",
			Description:     "Active Noise Cancellation wireless earbuds with spatial audio",
			ImageURL:        "https://images.unsplash.com/photo-1572569511254-d8f925fe2cbb",
			Price:           249.99,
			Stock:           100,
			Category:        "Electronics",
			IsActive:        true,
			SKU:             "APRO2001",
			CreatedByUserID: admin.ID,
		},
		{
			Name:            "Nike Air Max 270",
			Description:     "Comfortable running shoes with Air Max cushioning",
			ImageURL:        "https://images.unsplash.com/photo-1542291026-7eec264c27ff",
			Price:           149.99,
			Stock:           75,
			Category:        "Fashion",
			IsActive:        true,
			SKU:             "NIKAM270001",
			CreatedByUserID: admin.ID,
		},
		{
			Name:            "Samsung 65\" QLED TV",
			Description:     "4K Ultra HD Smart TV with Quantum Dot technology",
			ImageURL:        "https://images.unsplash.com/photo-1593359677879-a4bb92f829d1",
			Price:           1299.99,
			Stock:           15,
			Category:        "Electronics",
			IsActive:        true,
			SKU:             "SAM65QLED001",
			CreatedByUserID: admin.ID,
		},
	}

	if err := db.Create(&products).Error; err != nil {
		return fmt.Errorf("failed to seed products: %w", err)
	}

	log.Printf("database: seeded %d users and %d products", 2, len(products))
	return nil
}
