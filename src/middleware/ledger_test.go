package middleware

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryLedger(t *testing.T) {
	ctx := context.Background()
	start := time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC)

	t.Run("CooldownPerKey", func(t *testing.T) {
		l := NewMemoryLedger(time.Minute)

		wait, err := l.Hit(ctx, "1.2.3.4:21-A-12345", start)
		require.NoError(t, err)
		assert.Zero(t, wait)

		wait, err = l.Hit(ctx, "1.2.3.4:21-A-12345", start.Add(20*time.Second))
		require.NoError(t, err)
		assert.Equal(t, 40*time.Second, wait)

		wait, err = l.Hit(ctx, "1.2.3.4:21-A-99999", start.Add(20*time.Second))
		require.NoError(t, err)
		assert.Zero(t, wait)

		wait, err = l.Hit(ctx, "1.2.3.4:21-A-12345", start.Add(time.Minute))
		require.NoError(t, err)
		assert.Zero(t, wait)
	})

	t.Run("RejectedAttemptDoesNotExtendCooldown", func(t *testing.T) {
		l := NewMemoryLedger(time.Minute)
		_, _ = l.Hit(ctx, "k", start)
		_, _ = l.Hit(ctx, "k", start.Add(50*time.Second))

		wait, err := l.Hit(ctx, "k", start.Add(61*time.Second))
		require.NoError(t, err)
		assert.Zero(t, wait)
	})

	t.Run("Sweep", func(t *testing.T) {
		l := NewMemoryLedger(time.Minute)
		_, _ = l.Hit(ctx, "old", start)
		_, _ = l.Hit(ctx, "fresh", start.Add(50*time.Second))
		require.Equal(t, 2, l.Len())

		removed := l.Sweep(start.Add(90 * time.Second))
		assert.Equal(t, 1, removed)
		assert.Equal(t, 1, l.Len())
	})

	t.Run("NonPositiveCooldownUsesDefault", func(t *testing.T) {
		for _, cooldown := range []time.Duration{0, -time.Second} {
			l := NewMemoryLedger(cooldown)
			_, _ = l.Hit(ctx, "k", start)
			wait, err := l.Hit(ctx, "k", start.Add(time.Second))
			require.NoError(t, err)
			assert.Equal(t, DefaultCooldown-time.Second, wait)

			runCtx, cancel := context.WithCancel(ctx)
			done := make(chan struct{})
			go func() {
				l.Run(runCtx)
				close(done)
			}()
			cancel()
			select {
			case <-done:
			case <-time.After(time.Second):
				t.Fatal("Run did not return after cancel")
			}
		}
	})

	t.Run("RunStopsOnCancel", func(t *testing.T) {
		l := NewMemoryLedger(10 * time.Millisecond)
		runCtx, cancel := context.WithCancel(ctx)
		done := make(chan struct{})
		go func() {
			l.Run(runCtx)
			close(done)
		}()
		cancel()

		select {
		case <-done:
		case <-time.After(time.Second):
			t.Fatal("Run did not return after cancel")
		}
	})
}
