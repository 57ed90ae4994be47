package services

import (
	"context"

	"go.uber.org/zap"
)

// Rollback selects how an optimistic mutation recovers when the server
// rejects it.
type Rollback int

const (
	// RevertSnapshot restores the value captured before the local
	// apply.
	RevertSnapshot Rollback = iota
	// ReloadFromServer refetches the whole list as a coarse rollback.
	ReloadFromServer
)

// Mutation runs the optimistic-update state machine: apply locally,
// fire the call, and on failure either revert the snapshot or reload.
// One strategy is chosen per mutation type and used consistently.
type Mutation[T any] struct {
	Current  func() T
	Apply    func(T)
	Reload   func(context.Context) error
	Strategy Rollback
	Logger   *zap.Logger
}

// Do applies next locally, then runs call. The returned error is the
// call's error; the caller must surface it to the user. After a
// rollback the local state matches either the captured snapshot or a
// fresh server copy.
func (m *Mutation[T]) Do(ctx context.Context, next T, call func(context.Context) error) error {
	prev := m.Current()
	m.Apply(next)

	err := call(ctx)
	if err == nil {
		return nil
	}

	switch m.Strategy {
	case ReloadFromServer:
		if rerr := m.Reload(ctx); rerr != nil {
			// Reload failed too; fall back to the snapshot so the
			// user never keeps an unconfirmed value.
			m.Logger.Warn("rollback reload failed, reverting snapshot", zap.Error(rerr))
			m.Apply(prev)
		}
	default:
		m.Apply(prev)
	}
	return err
}
