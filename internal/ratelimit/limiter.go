// Package ratelimit enforces a per-client request quota over a rolling time
// window.
package ratelimit

import (
	"sync"
	"time"
)

// Result is the outcome of an admission check. Rejection is an ordinary
// outcome, not an error: callers branch on Allowed and answer 429 themselves.
type Result struct {
	// Allowed indicates whether the request is within quota.
	Allowed bool

	// Remaining is the number of requests left in the client's window.
	Remaining int

	// RetryAfter is how long until a slot frees up (zero if allowed).
	RetryAfter time.Duration
}

// Config configures the limiter.
type Config struct {
	// Quota is the number of admitted requests per window per client key.
	// Default: 10
	Quota int

	// Window is the rolling window length. Default: 1 minute
	Window time.Duration

	// CleanupInterval is how often idle client entries are evicted.
	// Default: 1 minute
	CleanupInterval time.Duration

	// Clock overrides the time source. Default: time.Now
	Clock func() time.Time
}

// clientWindow holds one client's admission timestamps, oldest first, pruned
// to the rolling window on every check.
type clientWindow struct {
	hits []time.Time
}

// Limiter tracks admissions per client key. A request is admitted while fewer
// than Quota requests were admitted in the last Window; the window rolls with
// each client's own history rather than a fixed clock boundary.
type Limiter struct {
	mu      sync.RWMutex
	clients map[string]*clientWindow
	config  Config

	now func() time.Time

	cleanupTicker *time.Ticker
	cleanupDone   chan struct{}
}

// NewLimiter creates a limiter and starts its background cleanup goroutine.
// Call Close to stop it.
func NewLimiter(cfg Config) *Limiter {
	if cfg.Quota <= 0 {
		cfg.Quota = 10
	}
	if cfg.Window <= 0 {
		cfg.Window = time.Minute
	}
	if cfg.CleanupInterval <= 0 {
		cfg.CleanupInterval = time.Minute
	}
	if cfg.Clock == nil {
		cfg.Clock = time.Now
	}

	l := &Limiter{
		clients:     make(map[string]*clientWindow),
		config:      cfg,
		now:         cfg.Clock,
		cleanupDone: make(chan struct{}),
	}

	l.cleanupTicker = time.NewTicker(cfg.CleanupInterval)
	go l.cleanupLoop()

	return l
}

// Allow records an admission attempt for key and reports whether it is within
// quota. Rejected attempts do not count against the window.
func (l *Limiter) Allow(key string) Result {
	now := l.now()
	cutoff := now.Add(-l.config.Window)

	l.mu.Lock()
	defer l.mu.Unlock()

	cw, ok := l.clients[key]
	if !ok {
		cw = &clientWindow{}
		l.clients[key] = cw
	}

	kept := cw.hits[:0]
	for _, t := range cw.hits {
		if t.After(cutoff) {
			kept = append(kept, t)
		}
	}
	cw.hits = kept

	if len(cw.hits) >= l.config.Quota {
		return Result{
			Allowed:    false,
			Remaining:  0,
			RetryAfter: cw.hits[0].Add(l.config.Window).Sub(now),
		}
	}

	cw.hits = append(cw.hits, now)
	return Result{Allowed: true, Remaining: l.config.Quota - len(cw.hits)}
}

// ActiveClients returns the number of tracked client keys.
func (l *Limiter) ActiveClients() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.clients)
}

// Cleanup evicts clients whose last admission fell out of the window.
func (l *Limiter) Cleanup() {
	cutoff := l.now().Add(-l.config.Window)

	l.mu.Lock()
	defer l.mu.Unlock()

	for key, cw := range l.clients {
		if len(cw.hits) == 0 || !cw.hits[len(cw.hits)-1].After(cutoff) {
			delete(l.clients, key)
		}
	}
}

func (l *Limiter) cleanupLoop() {
	for {
		select {
		case <-l.cleanupTicker.C:
			l.Cleanup()
		case <-l.cleanupDone:
			return
		}
	}
}

// Close stops the cleanup goroutine.
func (l *Limiter) Close() {
	l.cleanupTicker.Stop()
	close(l.cleanupDone)
}
