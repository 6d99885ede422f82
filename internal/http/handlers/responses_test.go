package handlers

import (
	"context"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/phuongndtech-dev/ECommerceApi/domain"
	"github.com/phuongndtech-dev/ECommerceApi/internal/mocks"
)

func TestToProductPageResponse(t *testing.T) {
	page := domain.NewProductPage([]domain.Product{*catalogProduct()}, 11, 2, 5)

	resp := toProductPageResponse(page)

	if resp.TotalItems != 11 {
		t.Errorf("expected 11 total items, got %d", resp.TotalItems)
	}
	if resp.Page != 2 || resp.PageSize != 5 {
		t.Errorf("unexpected paging %d/%d", resp.Page, resp.PageSize)
	}
	if resp.TotalPages != 3 {
		t.Errorf("expected 3 total pages for 11 items of size 5, got %d", resp.TotalPages)
	}
	if len(resp.Items) != 1 || resp.Items[0].SKU != "IPH15PRO001" {
		t.Errorf("unexpected items %+v", resp.Items)
	}
}

func TestProductHandlers_List_PaginationMetadata(t *testing.T) {
	gin.SetMode(gin.TestMode)

	productSvc := mocks.NewMockProductService()
	productSvc.SearchFunc = func(ctx context.Context, search domain.ProductSearch) (*domain.ProductPage, error) {
		return domain.NewProductPage([]domain.Product{*catalogProduct()}, 42, 1, 10), nil
	}

	router := catalogRouter(productSvc)
	w := performJSON(t, router, http.MethodGet, "/api/products", nil, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	resp := decodeEnvelope(t, w)
	data, ok := resp.Data.(map[string]any)
	if !ok {
		t.Fatalf("expected object payload, got %T", resp.Data)
	}
	if data["totalItems"] != float64(42) {
		t.Errorf("expected totalItems 42, got %v", data["totalItems"])
	}
	if data["totalPages"] != float64(5) {
		t.Errorf("expected totalPages 5, got %v", data["totalPages"])
	}
}
