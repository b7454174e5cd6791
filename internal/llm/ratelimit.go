package llm

import (
	"context"
	"fmt"
	"sync"
	"time"
)

// rateLimiter spaces requests so the backend sees at most the configured
// number per minute. It holds no goroutines; each wait computes the next
// free slot under the lock and then sleeps outside it.
type rateLimiter struct {
	next     time.Time
	interval time.Duration
	mu       sync.Mutex
}

// newRateLimiter creates a limiter allowing requestsPerMinute calls.
func newRateLimiter(requestsPerMinute int) *rateLimiter {
	if requestsPerMinute <= 0 {
		requestsPerMinute = 60
	}
	return &rateLimiter{
		interval: time.Minute / time.Duration(requestsPerMinute),
	}
}

// wait blocks until this caller's slot arrives or the context is canceled.
func (rl *rateLimiter) wait(ctx context.Context) error {
	rl.mu.Lock()
	now := time.Now()
	slot := rl.next
	if slot.Before(now) {
		slot = now
	}
	rl.next = slot.Add(rl.interval)
	rl.mu.Unlock()

	delay := time.Until(slot)
	if delay <= 0 {
		return nil
	}

	timer := time.NewTimer(delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return fmt.Errorf("rate limiter canceled: %w", ctx.Err())
	case <-timer.C:
		return nil
	}
}
