package session

import (
	"context"
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ErrManagerInvalidInput indicates the manager dependencies were incomplete.
var ErrManagerInvalidInput = errors.New("session manager: invalid input")

const (
	defaultCookieName = "SHOPZONE_SESSION"
	defaultMaxIdle    = 24 * time.Hour
)

type entry struct {
	state    *State
	lastSeen time.Time
}

// ManagerDeps wires the collaborators required by the session manager.
type ManagerDeps struct {
	CookieName string
	SigningKey []byte
	Secure     bool
	MaxIdle    time.Duration
	Clock      func() time.Time
	Logger     *zap.Logger
}

// Manager owns the in-memory session registry and the signed cookie that
// binds a browser to its entry. Cookies carry only the session id plus an
// HMAC signature; all state stays server side.
type Manager struct {
	cookieName string
	signingKey []byte
	secure     bool
	maxIdle    time.Duration
	clock      func() time.Time
	logger     *zap.Logger

	mu       sync.Mutex
	sessions map[string]*entry
}

// NewManager validates dependencies and constructs a Manager. An empty
// signing key gets a process-ephemeral replacement, which invalidates all
// cookies on restart.
func NewManager(deps ManagerDeps) (*Manager, error) {
	cookieName := strings.TrimSpace(deps.CookieName)
	if cookieName == "" {
		cookieName = defaultCookieName
	}
	maxIdle := deps.MaxIdle
	if maxIdle <= 0 {
		maxIdle = defaultMaxIdle
	}
	clock := deps.Clock
	if clock == nil {
		clock = time.Now
	}
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	key := deps.SigningKey
	if len(key) == 0 {
		key = make([]byte, 32)
		if _, err := rand.Read(key); err != nil {
			return nil, ErrManagerInvalidInput
		}
		logger.Warn("session signing key not configured, using ephemeral key")
	}

	return &Manager{
		cookieName: cookieName,
		signingKey: key,
		secure:     deps.Secure,
		maxIdle:    maxIdle,
		clock:      clock,
		logger:     logger,
		sessions:   make(map[string]*entry),
	}, nil
}

// Middleware resolves the request's session, creating one when the cookie is
// missing, malformed, tampered with, or expired, and stores the state on the
// request context.
func (m *Manager) Middleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if next == nil {
			next = http.HandlerFunc(func(http.ResponseWriter, *http.Request) {})
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id, state, created := m.resolve(r)
			if created {
				m.writeCookie(w, id)
			}
			ctx := WithState(r.Context(), state)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func (m *Manager) resolve(r *http.Request) (string, *State, bool) {
	if id, ok := m.verifyCookie(r); ok {
		m.mu.Lock()
		if e, exists := m.sessions[id]; exists {
			e.lastSeen = m.clock()
			state := e.state
			m.mu.Unlock()
			return id, state, false
		}
		m.mu.Unlock()
	}

	id := uuid.NewString()
	state := NewState()
	m.mu.Lock()
	m.sessions[id] = &entry{state: state, lastSeen: m.clock()}
	m.mu.Unlock()
	return id, state, true
}

func (m *Manager) verifyCookie(r *http.Request) (string, bool) {
	c, err := r.Cookie(m.cookieName)
	if err != nil || c.Value == "" {
		return "", false
	}
	parts := strings.Split(c.Value, ".")
	if len(parts) != 2 {
		return "", false
	}
	idBytes, err := base64.RawURLEncoding.DecodeString(parts[0])
	if err != nil {
		return "", false
	}
	sig, err := base64.RawURLEncoding.DecodeString(parts[1])
	if err != nil {
		return "", false
	}
	if !hmac.Equal(sig, m.sign(idBytes)) {
		return "", false
	}
	return string(idBytes), true
}

func (m *Manager) writeCookie(w http.ResponseWriter, id string) {
	payload := []byte(id)
	value := base64.RawURLEncoding.EncodeToString(payload) +
		"." + base64.RawURLEncoding.EncodeToString(m.sign(payload))
	http.SetCookie(w, &http.Cookie{
		Name:     m.cookieName,
		Value:    value,
		Path:     "/",
		HttpOnly: true,
		Secure:   m.secure,
		SameSite: http.SameSiteLaxMode,
		Expires:  m.clock().Add(m.maxIdle),
	})
}

func (m *Manager) sign(payload []byte) []byte {
	mac := hmac.New(sha256.New, m.signingKey)
	mac.Write(payload)
	return mac.Sum(nil)
}

// Len returns the number of live sessions.
func (m *Manager) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sessions)
}

// PruneExpired drops sessions idle longer than the configured maximum and
// returns how many were removed.
func (m *Manager) PruneExpired() int {
	cutoff := m.clock().Add(-m.maxIdle)

	m.mu.Lock()
	defer m.mu.Unlock()
	removed := 0
	for id, e := range m.sessions {
		if e.lastSeen.Before(cutoff) {
			delete(m.sessions, id)
			removed++
		}
	}
	return removed
}

type stateContextKey struct{}

// WithState attaches a session state to the context.
func WithState(ctx context.Context, state *State) context.Context {
	return context.WithValue(ctx, stateContextKey{}, state)
}

// FromContext returns the session state attached by Middleware.
func FromContext(ctx context.Context) (*State, bool) {
	state, ok := ctx.Value(stateContextKey{}).(*State)
	return state, ok
}
