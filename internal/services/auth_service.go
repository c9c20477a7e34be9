package services

import (
	"context"
	"errors"
	"strings"

	"github.com/shopzone/storefront/internal/domain"
	"github.com/shopzone/storefront/internal/session"
)

// ErrAuthInvalidInput indicates the caller supplied invalid input.
var ErrAuthInvalidInput = errors.New("auth service: invalid input")

// ErrAuthUnavailable indicates the auth service is missing dependencies.
var ErrAuthUnavailable = errors.New("auth service: unavailable")

// ErrPasswordMismatch indicates the registration passwords do not match.
var ErrPasswordMismatch = errors.New("auth service: passwords do not match")

// Demo credentials. Any other email and password combination signs in as a
// regular shopper; only this pair grants the admin identity.
const (
	adminEmail    = "admin@shopzone.com"
	adminPassword = "admin123"

	adminDisplayName   = "Admin User"
	shopperDisplayName = "John Doe"
)

// AuthServiceDeps wires the collaborators for the mock auth flow.
type AuthServiceDeps struct {
	Logger func(context.Context, string, map[string]any)
}

type authService struct {
	logger func(context.Context, string, map[string]any)
}

// NewAuthService constructs an AuthService.
func NewAuthService(deps AuthServiceDeps) (AuthService, error) {
	logger := deps.Logger
	if logger == nil {
		logger = func(context.Context, string, map[string]any) {}
	}
	return &authService{logger: logger}, nil
}

// Login signs the session in. Every non-empty credential pair succeeds; the
// admin pair yields the admin identity, everything else a regular shopper.
func (s *authService) Login(ctx context.Context, state *session.State, email, password string) (domain.Identity, error) {
	if s == nil {
		return domain.Identity{}, ErrAuthUnavailable
	}
	email = strings.TrimSpace(email)
	if state == nil || email == "" || password == "" {
		return domain.Identity{}, ErrAuthInvalidInput
	}

	identity := domain.Identity{
		Authenticated: true,
		Email:         email,
	}
	if email == adminEmail && password == adminPassword {
		identity.Name = adminDisplayName
		identity.IsAdmin = true
	} else {
		identity.Name = shopperDisplayName
	}

	state.SetIdentity(identity)
	s.logger(ctx, "auth.login", map[string]any{
		"email":    identity.Email,
		"is_admin": identity.IsAdmin,
	})
	return identity, nil
}

// Register validates the form and signs the session in as a regular shopper.
// No account is stored; registration is a login with extra validation.
func (s *authService) Register(ctx context.Context, state *session.State, input RegisterInput) (domain.Identity, error) {
	if s == nil {
		return domain.Identity{}, ErrAuthUnavailable
	}
	name := strings.TrimSpace(input.Name)
	email := strings.TrimSpace(input.Email)
	if state == nil || name == "" || email == "" || input.Password == "" {
		return domain.Identity{}, ErrAuthInvalidInput
	}
	if input.Password != input.ConfirmPassword {
		return domain.Identity{}, ErrPasswordMismatch
	}

	identity := domain.Identity{
		Authenticated: true,
		Name:          name,
		Email:         email,
	}
	state.SetIdentity(identity)
	s.logger(ctx, "auth.register", map[string]any{"email": identity.Email})
	return identity, nil
}

// Logout drops the identity and empties the cart and wishlist.
func (s *authService) Logout(ctx context.Context, state *session.State) error {
	if s == nil {
		return ErrAuthUnavailable
	}
	if state == nil {
		return ErrAuthInvalidInput
	}
	state.Reset()
	s.logger(ctx, "auth.logout", nil)
	return nil
}
