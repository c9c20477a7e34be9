package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/shopzone/storefront/internal/domain"
	"github.com/shopzone/storefront/internal/services"
)

type stubCatalogService struct {
	listFunc       func(ctx context.Context, query, categoryID string) (services.CatalogPage, error)
	categoriesFunc func(ctx context.Context) ([]domain.Category, error)
	getFunc        func(ctx context.Context, productID int64) (domain.Product, error)
	ready          bool
}

func (s *stubCatalogService) ListProducts(ctx context.Context, query, categoryID string) (services.CatalogPage, error) {
	return s.listFunc(ctx, query, categoryID)
}

func (s *stubCatalogService) ListCategories(ctx context.Context) ([]domain.Category, error) {
	return s.categoriesFunc(ctx)
}

func (s *stubCatalogService) GetProduct(ctx context.Context, productID int64) (domain.Product, error) {
	return s.getFunc(ctx, productID)
}

func (s *stubCatalogService) Ready(ctx context.Context) bool {
	return s.ready
}

func newCatalogRouter(service services.CatalogService) chi.Router {
	router := chi.NewRouter()
	router.Route("/catalog", NewCatalogHandlers(service).Routes)
	return router
}

func TestCatalogHandlersListProductsPassesFilters(t *testing.T) {
	var gotQuery, gotCategory string
	service := &stubCatalogService{
		listFunc: func(ctx context.Context, query, categoryID string) (services.CatalogPage, error) {
			gotQuery = query
			gotCategory = categoryID
			return services.CatalogPage{
				Products: []domain.Product{{ID: 1, Title: "Backpack", DisplayPrice: 835, DisplayOriginalPrice: 1002, DiscountPercent: 20}},
				Total:    1,
			}, nil
		},
	}
	router := newCatalogRouter(service)

	req := httptest.NewRequest(http.MethodGet, "/catalog/products?q=back&category=men%27s+clothing", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rr.Code)
	}
	if gotQuery != "back" || gotCategory != "men's clothing" {
		t.Fatalf("unexpected filters %q/%q", gotQuery, gotCategory)
	}

	var resp productListResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Total != 1 || len(resp.Products) != 1 {
		t.Fatalf("expected one product, got %#v", resp)
	}
	if resp.Products[0].PriceLabel == "" {
		t.Fatalf("expected a formatted price label")
	}
}

func TestCatalogHandlersGetProductNotFound(t *testing.T) {
	service := &stubCatalogService{
		getFunc: func(ctx context.Context, productID int64) (domain.Product, error) {
			return domain.Product{}, services.ErrProductNotFound
		},
	}
	router := newCatalogRouter(service)

	req := httptest.NewRequest(http.MethodGet, "/catalog/products/42", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", rr.Code)
	}
}

func TestCatalogHandlersGetProductBadID(t *testing.T) {
	router := newCatalogRouter(&stubCatalogService{})

	req := httptest.NewRequest(http.MethodGet, "/catalog/products/abc", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", rr.Code)
	}
}

func TestCatalogHandlersListCategories(t *testing.T) {
	service := &stubCatalogService{
		categoriesFunc: func(ctx context.Context) ([]domain.Category, error) {
			return []domain.Category{
				{ID: "all", DisplayName: "All Products"},
				{ID: "electronics", DisplayName: "Electronics"},
			}, nil
		},
	}
	router := newCatalogRouter(service)

	req := httptest.NewRequest(http.MethodGet, "/catalog/categories", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rr.Code)
	}

	var resp struct {
		Categories []categoryPayload `json:"categories"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(resp.Categories) != 2 || resp.Categories[0].ID != "all" {
		t.Fatalf("unexpected categories %#v", resp.Categories)
	}
}

func TestCatalogHandlersReportLoadState(t *testing.T) {
	emptyList := func(ctx context.Context, query, categoryID string) (services.CatalogPage, error) {
		return services.CatalogPage{Products: []domain.Product{}}, nil
	}
	noCategories := func(ctx context.Context) ([]domain.Category, error) {
		return []domain.Category{}, nil
	}

	for _, loaded := range []bool{false, true} {
		service := &stubCatalogService{listFunc: emptyList, categoriesFunc: noCategories, ready: loaded}
		router := newCatalogRouter(service)

		req := httptest.NewRequest(http.MethodGet, "/catalog/products", nil)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		var productsResp productListResponse
		if err := json.Unmarshal(rr.Body.Bytes(), &productsResp); err != nil {
			t.Fatalf("failed to decode response: %v", err)
		}
		if productsResp.Loaded != loaded {
			t.Fatalf("expected loaded=%v on products, got %v", loaded, productsResp.Loaded)
		}

		req = httptest.NewRequest(http.MethodGet, "/catalog/categories", nil)
		rr = httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		var categoriesResp categoryListResponse
		if err := json.Unmarshal(rr.Body.Bytes(), &categoriesResp); err != nil {
			t.Fatalf("failed to decode response: %v", err)
		}
		if categoriesResp.Loaded != loaded {
			t.Fatalf("expected loaded=%v on categories, got %v", loaded, categoriesResp.Loaded)
		}
	}
}

func TestCatalogHandlersServiceUnavailable(t *testing.T) {
	router := newCatalogRouter(nil)

	req := httptest.NewRequest(http.MethodGet, "/catalog/products", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	if rr.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected status 503, got %d", rr.Code)
	}
}
