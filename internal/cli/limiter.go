package cli

import (
	"context"
	"sync"
)

// parseLimiter bounds how many files are decoded at once in batch mode.
// Decoding is CPU- and memory-bound (whole files are held as strings), so an
// unbounded fan-out over a large glob would thrash; a small semaphore keeps
// throughput without the spike.
type parseLimiter struct {
	slots chan struct{}

	mu     sync.Mutex
	active int
}

func newParseLimiter(maxConcurrent int) *parseLimiter {
	if maxConcurrent < 1 {
		maxConcurrent = 1
	}
	return &parseLimiter{slots: make(chan struct{}, maxConcurrent)}
}

// acquire blocks until a slot frees up or the context ends.
// Callers must release exactly once per successful acquire.
func (l *parseLimiter) acquire(ctx context.Context) error {
	select {
	case l.slots <- struct{}{}:
		l.mu.Lock()
		l.active++
		l.mu.Unlock()
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (l *parseLimiter) release() {
	l.mu.Lock()
	l.active--
	l.mu.Unlock()
	<-l.slots
}

// activeCount reports how many parses hold a slot right now.
func (l *parseLimiter) activeCount() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.active
}
