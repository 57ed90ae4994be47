package session

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"khatapro-client/storage"
)

// Reason explains why the session state changed.
type Reason string

const (
	ReasonLogin        Reason = "login"
	ReasonSetup        Reason = "setup"
	ReasonLogout       Reason = "logout"
	ReasonTokenExpired Reason = "token_expired"
)

// State is published to subscribers whenever the session changes. The
// presence of Token is the app's sole authenticated/unauthenticated
// signal.
type State struct {
	Authenticated bool
	Token         string
	BusinessID    string
	Reason        Reason
}

// Manager owns session state and notifies subscribers of changes.
// It replaces interval polling of the token: login, logout and 401
// invalidation publish directly to whoever is listening.
type Manager struct {
	store  storage.Store
	logger *zap.Logger

	mu   sync.Mutex
	subs map[int]chan State
	next int
}

func NewManager(store storage.Store, logger *zap.Logger) *Manager {
	return &Manager{
		store:  store,
		logger: logger,
		subs:   map[int]chan State{},
	}
}

// Current reads the persisted session. A store read failure is
// reported as unauthenticated, not as an error.
func (m *Manager) Current(ctx context.Context) State {
	token, err := m.store.Get(ctx, storage.KeyAuthToken)
	if err != nil || token == "" {
		return State{}
	}
	businessID, _ := m.store.Get(ctx, storage.KeyBusinessID)
	return State{Authenticated: true, Token: token, BusinessID: businessID}
}

// Establish persists the credentials and publishes the authenticated
// state. Writes are sequential with no rollback on partial failure.
func (m *Manager) Establish(ctx context.Context, token, businessID, userData string, reason Reason) {
	if err := m.store.Set(ctx, storage.KeyAuthToken, token); err != nil {
		m.logger.Warn("failed to persist auth token", zap.Error(err))
	}
	if err := m.store.Set(ctx, storage.KeyBusinessID, businessID); err != nil {
		m.logger.Warn("failed to persist business id", zap.Error(err))
	}
	if userData != "" {
		if err := m.store.Set(ctx, storage.KeyUserData, userData); err != nil {
			m.logger.Warn("failed to persist user data", zap.Error(err))
		}
	}
	m.publish(State{Authenticated: true, Token: token, BusinessID: businessID, Reason: reason})
}

// Clear removes the persisted session and publishes the signed-out
// state. It never fails: a store error only degrades to a log line so
// logout stays locally effective.
func (m *Manager) Clear(ctx context.Context, reason Reason) {
	for _, key := range []string{storage.KeyAuthToken, storage.KeyUserData, storage.KeyBusinessID} {
		if err := m.store.Remove(ctx, key); err != nil {
			m.logger.Warn("failed to clear session key", zap.String("key", key), zap.Error(err))
		}
	}
	m.publish(State{Reason: reason})
}

// Invalidate is the 401 path: the server told us the token is expired
// or invalid. Only authToken and userData are cleared, matching the
// interceptor contract.
func (m *Manager) Invalidate(ctx context.Context) {
	for _, key := range []string{storage.KeyAuthToken, storage.KeyUserData} {
		if err := m.store.Remove(ctx, key); err != nil {
			m.logger.Warn("failed to clear session key", zap.String("key", key), zap.Error(err))
		}
	}
	m.publish(State{Reason: ReasonTokenExpired})
}

// Subscribe returns a channel of session state changes and an id for
// Unsubscribe. The channel is buffered; a slow subscriber drops
// intermediate states rather than blocking publishers.
func (m *Manager) Subscribe() (<-chan State, int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	id := m.next
	m.next++
	ch := make(chan State, 4)
	m.subs[id] = ch
	return ch, id
}

func (m *Manager) Unsubscribe(id int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if ch, ok := m.subs[id]; ok {
		delete(m.subs, id)
		close(ch)
	}
}

// Close tears down all subscriptions.
func (m *Manager) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()
	for id, ch := range m.subs {
		delete(m.subs, id)
		close(ch)
	}
}

func (m *Manager) publish(s State) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, ch := range m.subs {
		select {
		case ch <- s:
		default:
		}
	}
}
