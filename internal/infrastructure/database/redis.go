package database

import (
	"github.com/redis/go-redis/v9"
)

// NewRedis creates a Redis client for the catalog cache
func NewRedis(addr, password string, db int) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
}
