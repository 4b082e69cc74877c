// Package session owns the single source of truth for "who is logged in":
// the current user, the persisted access token, and the resolving flag that
// gates protected commands until startup restore finishes.
package session

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/strumind/console/internal/client/models"
	"github.com/strumind/console/internal/client/repositories/metadata"
	"github.com/strumind/console/internal/common"
	"github.com/strumind/console/internal/logging"
)

// apiClient is the slice of the API surface the session needs.
type apiClient interface {
	Login(ctx context.Context, username, password string) (string, error)
	CurrentUser(ctx context.Context) (*models.User, error)
}

// Store is the process-wide session state. It implements api.TokenSource.
type Store struct {
	meta metadata.Repository
	log  logging.Logger

	mu       sync.Mutex
	api      apiClient
	token    string
	user     *models.User
	resolved bool
}

// NewStore builds a session store over the local metadata repository.
// SetAPI must be called before Restore or Login; the two-step wiring breaks
// the cycle with the API client, which needs the store as its token source.
func NewStore(meta metadata.Repository, log logging.Logger) *Store {
	return &Store{meta: meta, log: log}
}

func (s *Store) SetAPI(c apiClient) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.api = c
}

// AccessToken returns the current bearer token, empty when logged out.
func (s *Store) AccessToken() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token
}

// User returns the authenticated user, nil when logged out.
func (s *Store) User() *models.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.user
}

func (s *Store) LoggedIn() bool {
	return s.User() != nil
}

// Resolved reports whether startup session restore has finished. Until
// then the auth state is unknown and protected views must wait.
func (s *Store) Resolved() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.resolved
}

// Restore attempts to resume a session from the persisted token. A token
// rejected by the server (or already expired by its own claims) is cleared
// silently and the client proceeds unauthenticated; a transient server
// failure keeps the token for the next start. Always marks the store
// resolved.
func (s *Store) Restore(ctx context.Context) error {
	defer func() {
		s.mu.Lock()
		s.resolved = true
		s.mu.Unlock()
	}()

	token, err := s.meta.Get(ctx, common.TokenStorageKey)
	if errors.Is(err, common.ErrNotFound) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("read persisted token: %w", err)
	}

	if exp, ok := tokenExpiry(token); ok && time.Now().After(exp) {
		s.log.Info(ctx, "persisted token expired, starting unauthenticated")
		return s.meta.Delete(ctx, common.TokenStorageKey)
	}

	s.mu.Lock()
	s.token = token
	api := s.api
	s.mu.Unlock()

	user, err := api.CurrentUser(ctx)
	if err != nil {
		if errors.Is(err, common.ErrUnauthorized) {
			s.Invalidate(ctx)
			return nil
		}
		// Server unreachable: keep the token, start unauthenticated.
		s.mu.Lock()
		s.token = ""
		s.mu.Unlock()
		s.log.Warn(ctx, "session restore failed", "error", err)
		return nil
	}

	s.mu.Lock()
	s.user = user
	s.mu.Unlock()
	s.log.Info(ctx, "session restored", "user", user.Username)
	return nil
}

// Login exchanges credentials for a token, persists it, and resolves the
// user profile. On failure no session state changes.
func (s *Store) Login(ctx context.Context, username, password string) (*models.User, error) {
	s.mu.Lock()
	api := s.api
	s.mu.Unlock()

	token, err := api.Login(ctx, username, password)
	if err != nil {
		return nil, err
	}

	if err := s.meta.Set(ctx, common.TokenStorageKey, token); err != nil {
		return nil, fmt.Errorf("persist token: %w", err)
	}
	s.mu.Lock()
	s.token = token
	s.mu.Unlock()

	user, err := api.CurrentUser(ctx)
	if err != nil {
		// Half-open session is worse than none.
		s.Invalidate(ctx)
		return nil, fmt.Errorf("resolve user: %w", err)
	}

	_ = s.meta.Set(ctx, common.UsernameStorageKey, username)

	s.mu.Lock()
	s.user = user
	s.resolved = true
	s.mu.Unlock()
	return user, nil
}

// Logout clears the persisted token and in-memory state. No server call.
func (s *Store) Logout(ctx context.Context) error {
	s.mu.Lock()
	s.token = ""
	s.user = nil
	s.mu.Unlock()
	return s.meta.Delete(ctx, common.TokenStorageKey)
}

// Invalidate is the global 401 handler: any authenticated request rejected
// by the server clears the session, whatever endpoint it hit. Safe to call
// repeatedly.
func (s *Store) Invalidate(ctx context.Context) {
	s.mu.Lock()
	hadToken := s.token != ""
	s.token = ""
	s.user = nil
	s.mu.Unlock()

	if hadToken {
		if err := s.meta.Delete(ctx, common.TokenStorageKey); err != nil {
			s.log.Error(ctx, "clearing persisted token", "error", err)
		}
	}
}

// LastUsername returns the previously authenticated username, if any, for
// prefilling the login prompt.
func (s *Store) LastUsername(ctx context.Context) string {
	name, err := s.meta.Get(ctx, common.UsernameStorageKey)
	if err != nil {
		return ""
	}
	return name
}

// ExpiresAt reports the expiry claim of the current token. The token is
// decoded without signature verification: it is only used for display and
// a restore pre-check, never for authorization decisions.
func (s *Store) ExpiresAt() (time.Time, bool) {
	return tokenExpiry(s.AccessToken())
}

func tokenExpiry(token string) (time.Time, bool) {
	if token == "" {
		return time.Time{}, false
	}
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return time.Time{}, false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}, false
	}
	return exp.Time, true
}
