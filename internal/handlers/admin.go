package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/shopzone/storefront/internal/platform/httpx"
	"github.com/shopzone/storefront/internal/services"
)

// AdminHandlers exposes the fabricated dashboard endpoints.
type AdminHandlers struct {
	admin services.AdminService
}

// NewAdminHandlers constructs handlers backed by the admin service.
func NewAdminHandlers(admin services.AdminService) *AdminHandlers {
	return &AdminHandlers{admin: admin}
}

// Routes wires the /admin endpoints onto the provided router.
func (h *AdminHandlers) Routes(r chi.Router) {
	if r == nil {
		return
	}
	r.Use(RequireAdmin)
	r.Get("/dashboard", h.dashboard)
	r.Get("/orders", h.orders)
	r.Get("/products", h.products)
}

type dashboardResponse struct {
	TotalProducts int    `json:"total_products"`
	TotalOrders   int    `json:"total_orders"`
	TotalUsers    int    `json:"total_users"`
	Revenue       int64  `json:"revenue"`
	RevenueLabel  string `json:"revenue_label"`
}

type adminOrderPayload struct {
	ID          string `json:"id"`
	Customer    string `json:"customer"`
	Date        string `json:"date"`
	Amount      int64  `json:"amount"`
	AmountLabel string `json:"amount_label"`
	Status      string `json:"status"`
}

func (h *AdminHandlers) dashboard(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if h.admin == nil {
		httpx.WriteError(ctx, w, httpx.NewError("admin_service_unavailable", "admin service is unavailable", http.StatusServiceUnavailable))
		return
	}

	stats, err := h.admin.Dashboard(ctx)
	if err != nil {
		h.writeAdminError(ctx, w, err)
		return
	}
	writeJSONResponse(w, http.StatusOK, dashboardResponse{
		TotalProducts: stats.TotalProducts,
		TotalOrders:   stats.TotalOrders,
		TotalUsers:    stats.TotalUsers,
		Revenue:       stats.Revenue,
		RevenueLabel:  priceLabel(stats.Revenue),
	})
}

func (h *AdminHandlers) orders(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if h.admin == nil {
		httpx.WriteError(ctx, w, httpx.NewError("admin_service_unavailable", "admin service is unavailable", http.StatusServiceUnavailable))
		return
	}

	orders, err := h.admin.RecentOrders(ctx)
	if err != nil {
		h.writeAdminError(ctx, w, err)
		return
	}
	payloads := make([]adminOrderPayload, 0, len(orders))
	for _, o := range orders {
		payloads = append(payloads, adminOrderPayload{
			ID:          o.ID,
			Customer:    o.Customer,
			Date:        o.Date,
			Amount:      o.Amount,
			AmountLabel: priceLabel(o.Amount),
			Status:      o.Status,
		})
	}
	writeJSONResponse(w, http.StatusOK, map[string]any{"orders": payloads})
}

func (h *AdminHandlers) products(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if h.admin == nil {
		httpx.WriteError(ctx, w, httpx.NewError("admin_service_unavailable", "admin service is unavailable", http.StatusServiceUnavailable))
		return
	}

	products, err := h.admin.Products(ctx)
	if err != nil {
		h.writeAdminError(ctx, w, err)
		return
	}
	writeJSONResponse(w, http.StatusOK, map[string]any{"products": buildProductPayloads(products)})
}

func (h *AdminHandlers) writeAdminError(ctx context.Context, w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, services.ErrAdminUnavailable):
		httpx.WriteError(ctx, w, httpx.NewError("admin_service_unavailable", "admin service is unavailable", http.StatusServiceUnavailable))
	default:
		httpx.WriteError(ctx, w, httpx.NewError("admin_error", "failed to read dashboard data", http.StatusInternalServerError))
	}
}
