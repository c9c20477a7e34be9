package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/shopzone/storefront/internal/domain"
	"github.com/shopzone/storefront/internal/services"
	"github.com/shopzone/storefront/internal/session"
)

type stubWishlistService struct {
	viewFunc   func(ctx context.Context, state *session.State) ([]domain.Product, error)
	toggleFunc func(ctx context.Context, state *session.State, productID int64) (services.WishlistToggleResult, error)
}

func (s *stubWishlistService) View(ctx context.Context, state *session.State) ([]domain.Product, error) {
	return s.viewFunc(ctx, state)
}

func (s *stubWishlistService) Toggle(ctx context.Context, state *session.State, productID int64) (services.WishlistToggleResult, error) {
	return s.toggleFunc(ctx, state, productID)
}

func newWishlistRouter(service services.WishlistService) chi.Router {
	router := chi.NewRouter()
	router.Route("/wishlist", NewWishlistHandlers(service).Routes)
	return router
}

func TestWishlistHandlersGetWishlist(t *testing.T) {
	service := &stubWishlistService{
		viewFunc: func(ctx context.Context, state *session.State) ([]domain.Product, error) {
			return []domain.Product{{ID: 1, Title: "Backpack", DisplayPrice: 835}}, nil
		},
	}
	router := newWishlistRouter(service)

	req := withSession(httptest.NewRequest(http.MethodGet, "/wishlist", nil), signedInState())
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rr.Code)
	}

	var resp wishlistResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Total != 1 || len(resp.Products) != 1 {
		t.Fatalf("unexpected wishlist %#v", resp)
	}
}

func TestWishlistHandlersRequireAuth(t *testing.T) {
	router := newWishlistRouter(&stubWishlistService{})

	req := withSession(httptest.NewRequest(http.MethodGet, "/wishlist", nil), session.NewState())
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("expected status 401, got %d", rr.Code)
	}
}

func TestWishlistHandlersToggle(t *testing.T) {
	service := &stubWishlistService{
		toggleFunc: func(ctx context.Context, state *session.State, productID int64) (services.WishlistToggleResult, error) {
			if productID != 7 {
				t.Fatalf("unexpected product id %d", productID)
			}
			return services.WishlistToggleResult{
				Products: []domain.Product{{ID: 7, Title: "Pendant"}},
				Added:    true,
			}, nil
		},
	}
	router := newWishlistRouter(service)

	req := withSession(httptest.NewRequest(http.MethodPost, "/wishlist/toggle", strings.NewReader(`{"product_id":7}`)), signedInState())
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", rr.Code, rr.Body.String())
	}

	var resp wishlistToggleResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if !resp.Added || resp.Total != 1 {
		t.Fatalf("unexpected toggle result %#v", resp)
	}
}

func TestWishlistHandlersToggleUnknownProduct(t *testing.T) {
	service := &stubWishlistService{
		toggleFunc: func(ctx context.Context, state *session.State, productID int64) (services.WishlistToggleResult, error) {
			return services.WishlistToggleResult{}, services.ErrWishlistProductNotFound
		},
	}
	router := newWishlistRouter(service)

	req := withSession(httptest.NewRequest(http.MethodPost, "/wishlist/toggle", strings.NewReader(`{"product_id":99}`)), signedInState())
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", rr.Code)
	}
}
