// Package cache provides a Redis-backed read-through cache for the catalog.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/phuongndtech-dev/ECommerceApi/domain"
)

// ProductCacheImpl implements domain.ProductCache. Failures are logged and
// reported as misses so the caller always falls back to the database.
type ProductCacheImpl struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
}

// NewProductCache creates a new product cache
func NewProductCache(client *redis.Client, ttl time.Duration) domain.ProductCache {
	return &ProductCacheImpl{
		client: client,
		prefix: "catalog:",
		ttl:    ttl,
	}
}

func (c *ProductCacheImpl) productKey(id uint) string {
	return fmt.Sprintf("%sproduct:%d", c.prefix, id)
}

// pageKey fingerprints a normalized search so identical queries share a
// cache entry.
func (c *ProductCacheImpl) pageKey(search domain.ProductSearch) string {
	minPrice, maxPrice := "", ""
	if search.MinPrice != nil {
		minPrice = fmt.Sprintf("%.2f", *search.MinPrice)
	}
	if search.MaxPrice != nil {
		maxPrice = fmt.Sprintf("%.2f", *search.MaxPrice)
	}
	inStock := ""
	if search.InStock != nil {
		inStock = fmt.Sprintf("%t", *search.InStock)
	}
	return fmt.Sprintf("%ssearch:%s|%s|%s|%s|%s|%d|%d|%s|%t",
		c.prefix, search.Search, search.Category, minPrice, maxPrice, inStock,
		search.Page, search.PageSize, search.SortBy, search.SortDesc)
}

// GetByID implements domain.ProductCache
func (c *ProductCacheImpl) GetByID(ctx context.Context, id uint) (*domain.Product, bool) {
	data, err := c.client.Get(ctx, c.productKey(id)).Bytes()
	if err != nil {
		if err != redis.Nil {
			log.Printf("cache: get product %d: %v", id, err)
		}
		return nil, false
	}

	var product domain.Product
	if err := json.Unmarshal(data, &product); err != nil {
		log.Printf("cache: unmarshal product %d: %v", id, err)
		return nil, false
	}
	return &product, true
}

// Set implements domain.ProductCache
func (c *ProductCacheImpl) Set(ctx context.Context, product *domain.Product) {
	data, err := json.Marshal(product)
	if err != nil {
		log.Printf("cache: marshal product %d: %v", product.ID, err)
		return
	}
	if err := c.client.Set(ctx, c.productKey(product.ID), data, c.ttl).Err(); err != nil {
		log.Printf("cache: set product %d: %v", product.ID, err)
	}
}

// GetPage implements domain.ProductCache
func (c *ProductCacheImpl) GetPage(ctx context.Context, search domain.ProductSearch) (*domain.ProductPage, bool) {
	data, err := c.client.Get(ctx, c.pageKey(search)).Bytes()
	if err != nil {
		if err != redis.Nil {
			log.Printf("cache: get search page: %v", err)
		}
		return nil, false
	}

	var page domain.ProductPage
	if err := json.Unmarshal(data, &page); err != nil {
		log.Printf("cache: unmarshal search page: %v", err)
		return nil, false
	}
	return &page, true
}

// SetPage implements domain.ProductCache
func (c *ProductCacheImpl) SetPage(ctx context.Context, search domain.ProductSearch, page *domain.ProductPage) {
	data, err := json.Marshal(page)
	if err != nil {
		log.Printf("cache: marshal search page: %v", err)
		return
	}
	if err := c.client.Set(ctx, c.pageKey(search), data, c.ttl).Err(); err != nil {
		log.Printf("cache: set search page: %v", err)
	}
}

// Invalidate implements domain.ProductCache. Every catalog write drops all
// cached products and search pages.
func (c *ProductCacheImpl) Invalidate(ctx context.Context) {
	pattern := c.prefix + "*"
	var cursor uint64
	for {
		keys, next, err := c.client.Scan(ctx, cursor, pattern, 100).Result()
		if err != nil {
			log.Printf("cache: scan %s: %v", pattern, err)
			return
		}
		if len(keys) > 0 {
			if err := c.client.Del(ctx, keys...).Err(); err != nil {
				log.Printf("cache: delete keys: %v", err)
				return
			}
		}
		cursor = next
		if cursor == 0 {
			return
		}
	}
}
