package retry

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fastConfig() Config {
	return Config{
		MaxAttempts:  3,
		InitialDelay: time.Millisecond,
		MaxDelay:     5 * time.Millisecond,
		Multiplier:   2.0,
	}
}

// TestDo_SucceedsFirstAttempt tests that a successful call runs exactly once.
func TestDo_SucceedsFirstAttempt(t *testing.T) {
	calls := 0

	err := Do(context.Background(), func() error {
		calls++
		return nil
	}, fastConfig())

	require.NoError(t, err)
	assert.Equal(t, 1, calls)
}

// TestDo_RetriesUntilSuccess tests that transient failures are retried.
func TestDo_RetriesUntilSuccess(t *testing.T) {
	calls := 0

	err := Do(context.Background(), func() error {
		calls++
		if calls < 3 {
			return errors.New("transient")
		}
		return nil
	}, fastConfig())

	require.NoError(t, err)
	assert.Equal(t, 3, calls)
}

// TestDo_ExhaustsAttempts tests that the last error is returned after all
// attempts fail.
func TestDo_ExhaustsAttempts(t *testing.T) {
	calls := 0
	wantErr := errors.New("still broken")

	err := Do(context.Background(), func() error {
		calls++
		return wantErr
	}, fastConfig())

	assert.ErrorIs(t, err, wantErr)
	assert.Equal(t, 3, calls)
}

// TestDo_ContextCancelled tests that a cancelled context stops retrying.
func TestDo_ContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := Do(ctx, func() error {
		t.Fatal("fn must not run with a cancelled context")
		return nil
	}, fastConfig())

	assert.ErrorIs(t, err, context.Canceled)
}

// TestDo_ZeroAttemptsRunsOnce tests the MaxAttempts floor.
func TestDo_ZeroAttemptsRunsOnce(t *testing.T) {
	calls := 0

	_ = Do(context.Background(), func() error {
		calls++
		return errors.New("fail")
	}, Config{MaxAttempts: 0})

	assert.Equal(t, 1, calls)
}

// TestConfigBuilders tests the fluent config copies.
func TestConfigBuilders(t *testing.T) {
	cfg := DefaultConfig.WithMaxAttempts(5).WithInitialDelay(time.Second)

	assert.Equal(t, 5, cfg.MaxAttempts)
	assert.Equal(t, time.Second, cfg.InitialDelay)
	// The shared default is untouched.
	assert.Equal(t, 3, DefaultConfig.MaxAttempts)
}
