package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/shopzone/storefront/internal/domain"
	"github.com/shopzone/storefront/internal/session"
)

func newSessionRouter() chi.Router {
	router := chi.NewRouter()
	router.Route("/session", NewSessionHandlers().Routes)
	return router
}

func TestSessionHandlersSetPage(t *testing.T) {
	router := newSessionRouter()
	state := session.NewState()

	req := withSession(httptest.NewRequest(http.MethodPut, "/session/page", strings.NewReader(`{"page":"wishlist"}`)), state)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", rr.Code, rr.Body.String())
	}
	if state.Page() != domain.PageWishlist {
		t.Fatalf("expected page wishlist, got %q", state.Page())
	}
}

func TestSessionHandlersSetPageUnknown(t *testing.T) {
	router := newSessionRouter()
	state := session.NewState()

	req := withSession(httptest.NewRequest(http.MethodPut, "/session/page", strings.NewReader(`{"page":"basement"}`)), state)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", rr.Code)
	}
	if state.Page() != domain.PageHome {
		t.Fatalf("expected page to stay home, got %q", state.Page())
	}
}

func TestSessionHandlersSetPageEmptyBody(t *testing.T) {
	router := newSessionRouter()

	req := withSession(httptest.NewRequest(http.MethodPut, "/session/page", nil), session.NewState())
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", rr.Code)
	}
}
