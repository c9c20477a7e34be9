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

type stubAdminService struct {
	dashboardFunc func(ctx context.Context) (services.DashboardStats, error)
	ordersFunc    func(ctx context.Context) ([]services.AdminOrder, error)
	productsFunc  func(ctx context.Context) ([]domain.Product, error)
}

func (s *stubAdminService) Dashboard(ctx context.Context) (services.DashboardStats, error) {
	return s.dashboardFunc(ctx)
}

func (s *stubAdminService) RecentOrders(ctx context.Context) ([]services.AdminOrder, error) {
	return s.ordersFunc(ctx)
}

func (s *stubAdminService) Products(ctx context.Context) ([]domain.Product, error) {
	return s.productsFunc(ctx)
}

func adminState() *session.State {
	state := session.NewState()
	state.SetIdentity(domain.Identity{Authenticated: true, Name: "Admin User", Email: "admin@shopzone.com", IsAdmin: true})
	return state
}

func newAdminRouter(service services.AdminService) chi.Router {
	router := chi.NewRouter()
	router.Route("/admin", NewAdminHandlers(service).Routes)
	return router
}

func TestAdminHandlersDashboard(t *testing.T) {
	service := &stubAdminService{
		dashboardFunc: func(ctx context.Context) (services.DashboardStats, error) {
			return services.DashboardStats{TotalProducts: 20, TotalOrders: 127, TotalUsers: 1234, Revenue: 234567}, nil
		},
	}
	router := newAdminRouter(service)

	req := withSession(httptest.NewRequest(http.MethodGet, "/admin/dashboard", nil), adminState())
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rr.Code)
	}

	var resp dashboardResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.TotalOrders != 127 || resp.TotalUsers != 1234 || resp.Revenue != 234567 {
		t.Fatalf("unexpected stats %#v", resp)
	}
	if resp.RevenueLabel != "₹2,34,567" {
		t.Fatalf("expected Indian digit grouping, got %q", resp.RevenueLabel)
	}
}

func TestAdminHandlersRejectAnonymous(t *testing.T) {
	router := newAdminRouter(&stubAdminService{})

	req := withSession(httptest.NewRequest(http.MethodGet, "/admin/dashboard", nil), session.NewState())
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("expected status 401, got %d", rr.Code)
	}
}

func TestAdminHandlersRejectNonAdmin(t *testing.T) {
	router := newAdminRouter(&stubAdminService{})

	req := withSession(httptest.NewRequest(http.MethodGet, "/admin/dashboard", nil), signedInState())
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	if rr.Code != http.StatusForbidden {
		t.Fatalf("expected status 403, got %d", rr.Code)
	}
	if !strings.Contains(rr.Body.String(), "forbidden") {
		t.Fatalf("expected forbidden error, got %s", rr.Body.String())
	}
}

func TestAdminHandlersOrders(t *testing.T) {
	service := &stubAdminService{
		ordersFunc: func(ctx context.Context) ([]services.AdminOrder, error) {
			return []services.AdminOrder{
				{ID: "#1000", Customer: "Customer 1", Date: "2024-01-15", Amount: 2499, Status: "Delivered"},
			}, nil
		},
	}
	router := newAdminRouter(service)

	req := withSession(httptest.NewRequest(http.MethodGet, "/admin/orders", nil), adminState())
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rr.Code)
	}

	var resp struct {
		Orders []adminOrderPayload `json:"orders"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(resp.Orders) != 1 || resp.Orders[0].ID != "#1000" {
		t.Fatalf("unexpected orders %#v", resp.Orders)
	}
}

func TestAdminHandlersProducts(t *testing.T) {
	service := &stubAdminService{
		productsFunc: func(ctx context.Context) ([]domain.Product, error) {
			return []domain.Product{{ID: 1, Title: "Backpack"}}, nil
		},
	}
	router := newAdminRouter(service)

	req := withSession(httptest.NewRequest(http.MethodGet, "/admin/products", nil), adminState())
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rr.Code)
	}
}
