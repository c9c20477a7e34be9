package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/shopzone/storefront/internal/domain"
	"github.com/shopzone/storefront/internal/format"
	"github.com/shopzone/storefront/internal/platform/httpx"
	"github.com/shopzone/storefront/internal/session"
)

func priceLabel(amount int64) string {
	return format.INR(amount)
}

var (
	errBodyTooLarge = errors.New("request body too large")
	errEmptyBody    = errors.New("request body is empty")
)

const defaultBodyLimit = 16 * 1024

func readLimitedBody(r *http.Request, limit int64) ([]byte, error) {
	if r == nil || r.Body == nil {
		return nil, errEmptyBody
	}
	if limit <= 0 {
		limit = defaultBodyLimit
	}
	reader := io.LimitReader(r.Body, limit+1)
	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, err
	}
	if len(strings.TrimSpace(string(data))) == 0 {
		return nil, errEmptyBody
	}
	if int64(len(data)) > limit {
		return nil, errBodyTooLarge
	}
	return data, nil
}

func writeJSONResponse(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeBodyError(w http.ResponseWriter, r *http.Request, err error) {
	ctx := r.Context()
	switch {
	case errors.Is(err, errBodyTooLarge):
		httpx.WriteError(ctx, w, httpx.NewError("payload_too_large", "request body exceeds allowed size", http.StatusRequestEntityTooLarge))
	case errors.Is(err, errEmptyBody):
		httpx.WriteError(ctx, w, httpx.NewError("invalid_request", "request body is required", http.StatusBadRequest))
	default:
		httpx.WriteError(ctx, w, httpx.NewError("invalid_request", err.Error(), http.StatusBadRequest))
	}
}

func sessionState(w http.ResponseWriter, r *http.Request) (*session.State, bool) {
	state, ok := session.FromContext(r.Context())
	if !ok {
		httpx.WriteError(r.Context(), w, httpx.NewError("session_unavailable", "session is unavailable", http.StatusInternalServerError))
		return nil, false
	}
	return state, true
}

// RequireAuth rejects requests whose session has no signed-in identity.
func RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		state, ok := session.FromContext(r.Context())
		if !ok || !state.Identity().Authenticated {
			httpx.WriteError(r.Context(), w, httpx.NewError("unauthenticated", "authentication required", http.StatusUnauthorized))
			return
		}
		next.ServeHTTP(w, r)
	})
}

// RequireAdmin rejects requests whose session identity lacks the admin flag.
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		state, ok := session.FromContext(r.Context())
		if !ok || !state.Identity().Authenticated {
			httpx.WriteError(r.Context(), w, httpx.NewError("unauthenticated", "authentication required", http.StatusUnauthorized))
			return
		}
		if !state.Identity().IsAdmin {
			httpx.WriteError(r.Context(), w, httpx.NewError("forbidden", "admin access required", http.StatusForbidden))
			return
		}
		next.ServeHTTP(w, r)
	})
}

type productPayload struct {
	ID              int64   `json:"id"`
	Title           string  `json:"title"`
	Description     string  `json:"description,omitempty"`
	ImageURL        string  `json:"image_url,omitempty"`
	Category        string  `json:"category"`
	Price           int64   `json:"price"`
	OriginalPrice   int64   `json:"original_price"`
	PriceLabel      string  `json:"price_label"`
	DiscountPercent int     `json:"discount_percent"`
	InStock         bool    `json:"in_stock"`
	Rating          float64 `json:"rating"`
	RatingCount     int     `json:"rating_count"`
	ReviewCount     int     `json:"review_count"`
}

func buildProductPayload(p domain.Product) productPayload {
	return productPayload{
		ID:              p.ID,
		Title:           p.Title,
		Description:     p.Description,
		ImageURL:        p.ImageURL,
		Category:        p.Category,
		Price:           p.DisplayPrice,
		OriginalPrice:   p.DisplayOriginalPrice,
		PriceLabel:      priceLabel(p.DisplayPrice),
		DiscountPercent: p.DiscountPercent,
		InStock:         p.InStock,
		Rating:          p.Rating.Rate,
		RatingCount:     p.Rating.Count,
		ReviewCount:     p.ReviewCount,
	}
}

func buildProductPayloads(products []domain.Product) []productPayload {
	payloads := make([]productPayload, 0, len(products))
	for _, p := range products {
		payloads = append(payloads, buildProductPayload(p))
	}
	return payloads
}
