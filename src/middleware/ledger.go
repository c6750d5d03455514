package middleware

import (
	"context"
	"sync"
	"time"
)

// DefaultCooldown replaces a non-positive cooldown given to a ledger.
const DefaultCooldown = time.Minute

// Ledger remembers the last registration attempt per key.
type Ledger interface {
	// Hit records an attempt at now unless one was recorded less than a
	// cooldown ago, in which case it returns the time left to wait and
	// records nothing.
	Hit(ctx context.Context, key string, now time.Time) (time.Duration, error)
}

// MemoryLedger is a per-process Ledger. Instances behind a load balancer
// each keep their own; use RedisLedger to share one.
type MemoryLedger struct {
	mu       sync.Mutex
	attempts map[string]time.Time
	cooldown time.Duration
}

func NewMemoryLedger(cooldown time.Duration) *MemoryLedger {
	if cooldown <= 0 {
		cooldown = DefaultCooldown
	}
	return &MemoryLedger{
		attempts: make(map[string]time.Time),
		cooldown: cooldown,
	}
}

func (l *MemoryLedger) Hit(_ context.Context, key string, now time.Time) (time.Duration, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if last, ok := l.attempts[key]; ok {
		if elapsed := now.Sub(last); elapsed < l.cooldown {
			return l.cooldown - elapsed, nil
		}
	}
	l.attempts[key] = now
	return 0, nil
}

// Sweep drops attempts older than the cooldown.
func (l *MemoryLedger) Sweep(now time.Time) int {
	l.mu.Lock()
	defer l.mu.Unlock()

	removed := 0
	for key, last := range l.attempts {
		if now.Sub(last) > l.cooldown {
			delete(l.attempts, key)
			removed++
		}
	}
	return removed
}

// Len returns the number of tracked keys.
func (l *MemoryLedger) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.attempts)
}

// Run sweeps once per cooldown until ctx is done.
func (l *MemoryLedger) Run(ctx context.Context) {
	ticker := time.NewTicker(l.cooldown)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			l.Sweep(now)
		}
	}
}
