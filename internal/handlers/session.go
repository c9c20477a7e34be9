package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/shopzone/storefront/internal/domain"
	"github.com/shopzone/storefront/internal/platform/httpx"
)

// SessionHandlers exposes the page tracking endpoint.
type SessionHandlers struct{}

const maxSessionBodySize = 1024

// NewSessionHandlers constructs the session navigation handlers.
func NewSessionHandlers() *SessionHandlers {
	return &SessionHandlers{}
}

// Routes wires the /session endpoints onto the provided router.
func (h *SessionHandlers) Routes(r chi.Router) {
	if r == nil {
		return
	}
	r.Put("/page", h.setPage)
}

type setPageRequest struct {
	Page string `json:"page"`
}

func (h *SessionHandlers) setPage(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	state, ok := sessionState(w, r)
	if !ok {
		return
	}

	body, err := readLimitedBody(r, maxSessionBodySize)
	if err != nil {
		writeBodyError(w, r, err)
		return
	}
	var req setPageRequest
	if err := json.Unmarshal(body, &req); err != nil {
		httpx.WriteError(ctx, w, httpx.NewError("invalid_request", fmt.Sprintf("invalid JSON payload: %v", err), http.StatusBadRequest))
		return
	}

	page := domain.Page(req.Page)
	if !page.IsValid() {
		httpx.WriteError(ctx, w, httpx.NewError("invalid_request", fmt.Sprintf("unknown page %q", req.Page), http.StatusBadRequest))
		return
	}

	state.SetPage(page)
	writeJSONResponse(w, http.StatusOK, map[string]any{"page": string(page)})
}
