package handlers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/phuongndtech-dev/ECommerceApi/domain"
	"github.com/phuongndtech-dev/ECommerceApi/internal/http/middleware"
)

// ProductHandlers handles catalog HTTP requests
type ProductHandlers struct {
	productSvc domain.ProductService
}

// NewProductHandlers creates new product handlers
func NewProductHandlers(productSvc domain.ProductService) *ProductHandlers {
	return &ProductHandlers{productSvc: productSvc}
}

func productID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		respondFailure(c, http.StatusBadRequest, "Invalid product id")
		return 0, false
	}
	return uint(id), true
}

// List handles a paginated catalog search
func (h *ProductHandlers) List(c *gin.Context) {
	var req ProductSearchRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		respondFailure(c, http.StatusBadRequest, "Validation failed", err.Error())
		return
	}
	if details := req.Validate(); len(details) > 0 {
		respondFailure(c, http.StatusBadRequest, "Validation failed", details...)
		return
	}

	page, err := h.productSvc.Search(c.Request.Context(), req.Query())
	if err != nil {
		log.Printf("PRODUCT_SEARCH_FAILED: error=%v", err)
		respondInternal(c)
		return
	}

	respondSuccess(c, http.StatusOK, toProductPageResponse(page), "")
}

// Get handles fetching a single product
func (h *ProductHandlers) Get(c *gin.Context) {
	id, ok := productID(c)
	if !ok {
		return
	}

	product, err := h.productSvc.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrProductNotFound) {
			respondFailure(c, http.StatusNotFound, "Product not found")
			return
		}
		log.Printf("PRODUCT_GET_FAILED: id=%d error=%v", id, err)
		respondInternal(c)
		return
	}

	respondSuccess(c, http.StatusOK, toProductResponse(product), "")
}

// Create handles adding a product to the catalog
func (h *ProductHandlers) Create(c *gin.Context) {
	identity, ok := middleware.IdentityFrom(c)
	if !ok {
		respondFailure(c, http.StatusUnauthorized, "Authentication required")
		return
	}

	var req ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondFailure(c, http.StatusBadRequest, "Validation failed", err.Error())
		return
	}
	if details := req.Validate(); len(details) > 0 {
		respondFailure(c, http.StatusBadRequest, "Validation failed", details...)
		return
	}

	product, err := h.productSvc.Create(c.Request.Context(), req.Input(), identity.UserID)
	if err != nil {
		if errors.Is(err, domain.ErrSKUAlreadyExists) {
			respondFailure(c, http.StatusConflict, "Product with this SKU already exists")
			return
		}
		log.Printf("PRODUCT_CREATE_FAILED: sku=%s error=%v", req.SKU, err)
		respondInternal(c)
		return
	}

	respondSuccess(c, http.StatusCreated, toProductResponse(product), "Product created successfully")
}

// Update handles editing an existing product
func (h *ProductHandlers) Update(c *gin.Context) {
	id, ok := productID(c)
	if !ok {
		return
	}

	var req ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondFailure(c, http.StatusBadRequest, "Validation failed", err.Error())
		return
	}
	if details := req.Validate(); len(details) > 0 {
		respondFailure(c, http.StatusBadRequest, "Validation failed", details...)
		return
	}

	product, err := h.productSvc.Update(c.Request.Context(), id, req.Input())
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrProductNotFound):
			respondFailure(c, http.StatusNotFound, "Product not found")
		case errors.Is(err, domain.ErrSKUAlreadyExists):
			respondFailure(c, http.StatusConflict, "Product with this SKU already exists")
		default:
			log.Printf("PRODUCT_UPDATE_FAILED: id=%d error=%v", id, err)
			respondInternal(c)
		}
		return
	}

	respondSuccess(c, http.StatusOK, toProductResponse(product), "Product updated successfully")
}

// Delete handles removing a product from the catalog
func (h *ProductHandlers) Delete(c *gin.Context) {
	id, ok := productID(c)
	if !ok {
		return
	}

	if err := h.productSvc.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, domain.ErrProductNotFound) {
			respondFailure(c, http.StatusNotFound, "Product not found")
			return
		}
		log.Printf("PRODUCT_DELETE_FAILED: id=%d error=%v", id, err)
		respondInternal(c)
		return
	}

	respondSuccess(c, http.StatusOK, nil, "Product deleted successfully")
}
