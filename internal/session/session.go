// Package session answers "is a user signed in, and who are they".
// Identity verification is delegated to a Provider; the rest of the
// application only ever talks to the Manager.
package session

import (
	"log/slog"
	"sync"

	"ludo/internal/domain"
	"ludo/internal/store"
)

const (
	bucketSession = "session"
	keyCurrent    = "current"
)

// Provider verifies and creates identities.
type Provider interface {
	// Authenticate checks credentials and returns the matching user.
	// Fails with domain.ErrBadCredentials on a mismatch.
	Authenticate(username, password string) (*domain.User, error)

	// Register creates a new identity. Fails with domain.ErrUserExists
	// when the username is taken.
	Register(username, email, password string) (*domain.User, error)
}

// Manager tracks the signed-in user and persists the session across
// restarts.
type Manager struct {
	provider Provider
	db       *store.DB
	logger   *slog.Logger

	mu      sync.RWMutex
	current *domain.User
}

// NewManager creates a manager and restores any persisted session.
func NewManager(provider Provider, db *store.DB, logger *slog.Logger) *Manager {
	if logger == nil {
		logger = slog.Default()
	}
	m := &Manager{provider: provider, db: db, logger: logger}

	var user domain.User
	if db.Get(bucketSession, keyCurrent, &user) && user.Username != "" {
		m.current = &user
		logger.Debug("restored session", "user", user.Username)
	}
	return m
}

// Current returns the signed-in user, or false when nobody is.
func (m *Manager) Current() (*domain.User, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.current == nil {
		return nil, false
	}
	user := *m.current
	return &user, true
}

// SignIn authenticates and opens a session.
func (m *Manager) SignIn(username, password string) (*domain.User, error) {
	user, err := m.provider.Authenticate(username, password)
	if err != nil {
		return nil, err
	}
	m.setCurrent(user)
	m.logger.Info("signed in", "user", user.Username)
	return user, nil
}

// SignUp registers a new identity and opens a session for it.
func (m *Manager) SignUp(username, email, password string) (*domain.User, error) {
	user, err := m.provider.Register(username, email, password)
	if err != nil {
		return nil, err
	}
	m.setCurrent(user)
	m.logger.Info("signed up", "user", user.Username)
	return user, nil
}

// SignOut closes the current session.
func (m *Manager) SignOut() {
	m.mu.Lock()
	m.current = nil
	m.mu.Unlock()
	if err := m.db.Delete(bucketSession, keyCurrent); err != nil {
		m.logger.Warn("failed to clear persisted session", "error", err)
	}
}

func (m *Manager) setCurrent(user *domain.User) {
	m.mu.Lock()
	m.current = user
	m.mu.Unlock()
	if err := m.db.Put(bucketSession, keyCurrent, user); err != nil {
		m.logger.Warn("failed to persist session", "error", err)
	}
}
