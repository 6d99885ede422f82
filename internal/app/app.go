package app

import (
	"context"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/phuongndtech-dev/ECommerceApi/internal/config"
	httpx "github.com/phuongndtech-dev/ECommerceApi/internal/http"
	"github.com/phuongndtech-dev/ECommerceApi/internal/http/handlers"
	"github.com/phuongndtech-dev/ECommerceApi/internal/infrastructure/auth"
	"github.com/phuongndtech-dev/ECommerceApi/internal/infrastructure/cache"
	"github.com/phuongndtech-dev/ECommerceApi/internal/infrastructure/database"
	"github.com/phuongndtech-dev/ECommerceApi/internal/infrastructure/repositories"
	"github.com/phuongndtech-dev/ECommerceApi/internal/services"
)

// Run wires the service together and blocks serving HTTP.
func Run(cfg *config.Config) error {
	if cfg.GinMode != "" {
		gin.SetMode(cfg.GinMode)
	}

	gdb, err := database.Open(cfg.DSN)
	if err != nil {
		return err
	}
	if err := database.AutoMigrate(gdb); err != nil {
		return err
	}

	rdb := database.NewRedis(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	if err := rdb.Ping(context.Background()).Err(); err != nil {
		return err
	}

	passwordSvc := auth.NewPasswordService()
	tokenSvc := auth.NewJWTService(cfg.JWTSecret, cfg.JWTIssuer, cfg.JWTAudience, cfg.TokenTTL)

	if err := database.Seed(gdb, passwordSvc); err != nil {
		return err
	}

	userRepo := repositories.NewUserRepository(gdb)
	productRepo := repositories.NewProductRepository(gdb)
	productCache := cache.NewProductCache(rdb, cfg.CacheTTL)

	authSvc := services.NewAuthService(userRepo, passwordSvc, tokenSvc)
	productSvc := services.NewProductService(productRepo, productCache)

	authH := handlers.NewAuthHandlers(authSvc)
	productH := handlers.NewProductHandlers(productSvc)

	r := httpx.BuildRouter(authH, productH, tokenSvc)

	addr := ":" + cfg.Port
	log.Printf("listening on %s", addr)
	return http.ListenAndServe(addr, r)
}
