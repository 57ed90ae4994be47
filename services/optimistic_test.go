package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestMutationConfirmedKeepsNewValue(t *testing.T) {
	value := 5
	m := &Mutation[int]{
		Current:  func() int { return value },
		Apply:    func(v int) { value = v },
		Strategy: RevertSnapshot,
		Logger:   zap.NewNop(),
	}

	var sentValue int
	err := m.Do(context.Background(), 6, func(ctx context.Context) error {
		// the optimistic apply happens before the call
		sentValue = value
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 6, sentValue)
	assert.Equal(t, 6, value)
}

func TestMutationRevertSnapshotOnFailure(t *testing.T) {
	value := 5
	m := &Mutation[int]{
		Current:  func() int { return value },
		Apply:    func(v int) { value = v },
		Strategy: RevertSnapshot,
		Logger:   zap.NewNop(),
	}

	err := m.Do(context.Background(), 6, func(ctx context.Context) error {
		return errors.New("server rejected")
	})
	assert.EqualError(t, err, "server rejected")
	assert.Equal(t, 5, value)
}

func TestMutationReloadOnFailure(t *testing.T) {
	value := 5
	reloaded := false
	m := &Mutation[int]{
		Current: func() int { return value },
		Apply:   func(v int) { value = v },
		Reload: func(ctx context.Context) error {
			reloaded = true
			value = 42 // fresh server copy
			return nil
		},
		Strategy: ReloadFromServer,
		Logger:   zap.NewNop(),
	}

	err := m.Do(context.Background(), 6, func(ctx context.Context) error {
		return errors.New("server rejected")
	})
	assert.Error(t, err)
	assert.True(t, reloaded)
	assert.Equal(t, 42, value)
}

func TestMutationReloadFailureFallsBackToSnapshot(t *testing.T) {
	value := 5
	m := &Mutation[int]{
		Current:  func() int { return value },
		Apply:    func(v int) { value = v },
		Reload:   func(ctx context.Context) error { return errors.New("offline") },
		Strategy: ReloadFromServer,
		Logger:   zap.NewNop(),
	}

	err := m.Do(context.Background(), 6, func(ctx context.Context) error {
		return errors.New("server rejected")
	})
	assert.Error(t, err)
	assert.Equal(t, 5, value)
}
