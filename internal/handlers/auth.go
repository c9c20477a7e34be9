package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/shopzone/storefront/internal/domain"
	"github.com/shopzone/storefront/internal/platform/httpx"
	"github.com/shopzone/storefront/internal/services"
)

// AuthHandlers exposes the mock sign-in endpoints.
type AuthHandlers struct {
	auth services.AuthService
}

const maxAuthBodySize = 8 * 1024

// NewAuthHandlers constructs handlers backed by the auth service.
func NewAuthHandlers(auth services.AuthService) *AuthHandlers {
	return &AuthHandlers{auth: auth}
}

// Routes wires the /auth endpoints onto the provided router.
func (h *AuthHandlers) Routes(r chi.Router) {
	if r == nil {
		return
	}
	r.Post("/login", h.login)
	r.Post("/register", h.register)
	r.Post("/logout", h.logout)
	r.Get("/session", h.session)
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type registerRequest struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm_password"`
}

type identityPayload struct {
	Authenticated bool   `json:"authenticated"`
	Name          string `json:"name,omitempty"`
	Email         string `json:"email,omitempty"`
	IsAdmin       bool   `json:"is_admin"`
}

type sessionResponse struct {
	Identity      identityPayload `json:"identity"`
	Page          string          `json:"page"`
	CartItems     int             `json:"cart_items"`
	WishlistItems int             `json:"wishlist_items"`
}

func (h *AuthHandlers) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if h.auth == nil {
		httpx.WriteError(ctx, w, httpx.NewError("auth_service_unavailable", "auth service is unavailable", http.StatusServiceUnavailable))
		return
	}
	state, ok := sessionState(w, r)
	if !ok {
		return
	}

	body, err := readLimitedBody(r, maxAuthBodySize)
	if err != nil {
		writeBodyError(w, r, err)
		return
	}
	var req loginRequest
	if err := json.Unmarshal(body, &req); err != nil {
		httpx.WriteError(ctx, w, httpx.NewError("invalid_request", fmt.Sprintf("invalid JSON payload: %v", err), http.StatusBadRequest))
		return
	}

	identity, err := h.auth.Login(ctx, state, req.Email, req.Password)
	if err != nil {
		h.writeAuthError(ctx, w, err)
		return
	}
	writeJSONResponse(w, http.StatusOK, map[string]any{"identity": buildIdentityPayload(identity)})
}

func (h *AuthHandlers) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if h.auth == nil {
		httpx.WriteError(ctx, w, httpx.NewError("auth_service_unavailable", "auth service is unavailable", http.StatusServiceUnavailable))
		return
	}
	state, ok := sessionState(w, r)
	if !ok {
		return
	}

	body, err := readLimitedBody(r, maxAuthBodySize)
	if err != nil {
		writeBodyError(w, r, err)
		return
	}
	var req registerRequest
	if err := json.Unmarshal(body, &req); err != nil {
		httpx.WriteError(ctx, w, httpx.NewError("invalid_request", fmt.Sprintf("invalid JSON payload: %v", err), http.StatusBadRequest))
		return
	}

	identity, err := h.auth.Register(ctx, state, services.RegisterInput{
		Name:            req.Name,
		Email:           req.Email,
		Password:        req.Password,
		ConfirmPassword: req.ConfirmPassword,
	})
	if err != nil {
		h.writeAuthError(ctx, w, err)
		return
	}
	writeJSONResponse(w, http.StatusCreated, map[string]any{"identity": buildIdentityPayload(identity)})
}

func (h *AuthHandlers) logout(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if h.auth == nil {
		httpx.WriteError(ctx, w, httpx.NewError("auth_service_unavailable", "auth service is unavailable", http.StatusServiceUnavailable))
		return
	}
	state, ok := sessionState(w, r)
	if !ok {
		return
	}

	if err := h.auth.Logout(ctx, state); err != nil {
		h.writeAuthError(ctx, w, err)
		return
	}
	writeJSONResponse(w, http.StatusOK, map[string]any{"identity": buildIdentityPayload(domain.Identity{})})
}

func (h *AuthHandlers) session(w http.ResponseWriter, r *http.Request) {
	state, ok := sessionState(w, r)
	if !ok {
		return
	}
	writeJSONResponse(w, http.StatusOK, sessionResponse{
		Identity:      buildIdentityPayload(state.Identity()),
		Page:          string(state.Page()),
		CartItems:     state.CartLen(),
		WishlistItems: len(state.WishlistProducts()),
	})
}

func (h *AuthHandlers) writeAuthError(ctx context.Context, w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, services.ErrPasswordMismatch):
		httpx.WriteError(ctx, w, httpx.NewError("password_mismatch", "passwords do not match", http.StatusBadRequest))
	case errors.Is(err, services.ErrAuthInvalidInput):
		httpx.WriteError(ctx, w, httpx.NewError("invalid_request", err.Error(), http.StatusBadRequest))
	case errors.Is(err, services.ErrAuthUnavailable):
		httpx.WriteError(ctx, w, httpx.NewError("auth_service_unavailable", "auth service is unavailable", http.StatusServiceUnavailable))
	default:
		httpx.WriteError(ctx, w, httpx.NewError("auth_error", "failed to update session identity", http.StatusInternalServerError))
	}
}

func buildIdentityPayload(identity domain.Identity) identityPayload {
	return identityPayload{
		Authenticated: identity.Authenticated,
		Name:          identity.Name,
		Email:         identity.Email,
		IsAdmin:       identity.IsAdmin,
	}
}
