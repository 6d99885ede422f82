package httpx

import (
	"github.com/gin-gonic/gin"

	"github.com/phuongndtech-dev/ECommerceApi/domain"
	"github.com/phuongndtech-dev/ECommerceApi/internal/http/handlers"
	"github.com/phuongndtech-dev/ECommerceApi/internal/http/middleware"
)

// BuildRouter wires the HTTP surface. Catalog reads are public; catalog
// writes require an admin role, and account endpoints require a valid token.
func BuildRouter(ah *handlers.AuthHandlers, ph *handlers.ProductHandlers, tokenSvc domain.TokenService) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	api := r.Group("/api")

	auth := api.Group("/auth")
	auth.POST("/register", ah.Register)
	auth.POST("/login", ah.Login)

	authed := api.Group("/auth").Use(middleware.Authenticate(tokenSvc))
	authed.POST("/logout", ah.Logout)
	authed.GET("/profile", ah.Profile)

	products := api.Group("/products")
	products.GET("", ph.List)
	products.GET("/:id", ph.Get)

	admin := api.Group("/products").Use(
		middleware.Authenticate(tokenSvc),
		middleware.RequireRoles(domain.RoleAdmin, domain.RoleSuperAdmin),
	)
	admin.POST("", ph.Create)
	admin.PUT("/:id", ph.Update)
	admin.DELETE("/:id", ph.Delete)

	return r
}
