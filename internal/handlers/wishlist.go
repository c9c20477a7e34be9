package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/shopzone/storefront/internal/platform/httpx"
	"github.com/shopzone/storefront/internal/services"
)

// WishlistHandlers exposes the authenticated wishlist endpoints.
type WishlistHandlers struct {
	wishlists services.WishlistService
}

const maxWishlistBodySize = 4 * 1024

// NewWishlistHandlers constructs handlers backed by the wishlist service.
func NewWishlistHandlers(wishlists services.WishlistService) *WishlistHandlers {
	return &WishlistHandlers{wishlists: wishlists}
}

// Routes wires the /wishlist endpoints onto the provided router.
func (h *WishlistHandlers) Routes(r chi.Router) {
	if r == nil {
		return
	}
	r.Use(RequireAuth)
	r.Get("/", h.getWishlist)
	r.Post("/toggle", h.toggle)
}

type wishlistResponse struct {
	Products []productPayload `json:"products"`
	Total    int              `json:"total"`
}

type wishlistToggleRequest struct {
	ProductID int64 `json:"product_id"`
}

type wishlistToggleResponse struct {
	Products []productPayload `json:"products"`
	Total    int              `json:"total"`
	Added    bool             `json:"added"`
}

func (h *WishlistHandlers) getWishlist(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if h.wishlists == nil {
		httpx.WriteError(ctx, w, httpx.NewError("wishlist_service_unavailable", "wishlist service is unavailable", http.StatusServiceUnavailable))
		return
	}
	state, ok := sessionState(w, r)
	if !ok {
		return
	}

	products, err := h.wishlists.View(ctx, state)
	if err != nil {
		h.writeWishlistError(ctx, w, err)
		return
	}
	writeJSONResponse(w, http.StatusOK, wishlistResponse{
		Products: buildProductPayloads(products),
		Total:    len(products),
	})
}

func (h *WishlistHandlers) toggle(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if h.wishlists == nil {
		httpx.WriteError(ctx, w, httpx.NewError("wishlist_service_unavailable", "wishlist service is unavailable", http.StatusServiceUnavailable))
		return
	}
	state, ok := sessionState(w, r)
	if !ok {
		return
	}

	body, err := readLimitedBody(r, maxWishlistBodySize)
	if err != nil {
		writeBodyError(w, r, err)
		return
	}
	var req wishlistToggleRequest
	if err := json.Unmarshal(body, &req); err != nil {
		httpx.WriteError(ctx, w, httpx.NewError("invalid_request", fmt.Sprintf("invalid JSON payload: %v", err), http.StatusBadRequest))
		return
	}

	result, err := h.wishlists.Toggle(ctx, state, req.ProductID)
	if err != nil {
		h.writeWishlistError(ctx, w, err)
		return
	}
	writeJSONResponse(w, http.StatusOK, wishlistToggleResponse{
		Products: buildProductPayloads(result.Products),
		Total:    len(result.Products),
		Added:    result.Added,
	})
}

func (h *WishlistHandlers) writeWishlistError(ctx context.Context, w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, services.ErrWishlistInvalidInput):
		httpx.WriteError(ctx, w, httpx.NewError("invalid_request", err.Error(), http.StatusBadRequest))
	case errors.Is(err, services.ErrWishlistProductNotFound):
		httpx.WriteError(ctx, w, httpx.NewError("product_not_found", "product not found", http.StatusNotFound))
	case errors.Is(err, services.ErrWishlistUnavailable):
		httpx.WriteError(ctx, w, httpx.NewError("wishlist_service_unavailable", "wishlist service is unavailable", http.StatusServiceUnavailable))
	default:
		httpx.WriteError(ctx, w, httpx.NewError("wishlist_error", "failed to update wishlist", http.StatusInternalServerError))
	}
}
