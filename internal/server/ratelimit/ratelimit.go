// Package ratelimit provides per-client token-bucket rate limiting for the
// API, with stricter budgets on the generation endpoints.
package ratelimit

import (
	"sync"
	"time"
)

// bucket is a token bucket refilled at a steady rate.
type bucket struct {
	capacity   int
	refillRate float64 // tokens per second
	tokens     float64
	lastRefill time.Time
	mu         sync.Mutex
}

func newBucket(capacity int, window time.Duration) *bucket {
	return &bucket{
		capacity:   capacity,
		refillRate: float64(capacity) / window.Seconds(),
		tokens:     float64(capacity),
		lastRefill: time.Now(),
	}
}

func (b *bucket) allow() (allowed bool, remaining int) {
	b.mu.Lock()
	defer b.mu.Unlock()

	now := time.Now()
	b.tokens = min(float64(b.capacity), b.tokens+now.Sub(b.lastRefill).Seconds()*b.refillRate)
	b.lastRefill = now

	if b.tokens >= 1.0 {
		b.tokens -= 1.0
		return true, int(b.tokens)
	}
	return false, 0
}

// Info describes the limit state returned with each decision.
type Info struct {
	Limit     int
	Remaining int
}

// Limiter manages token buckets per (client, tier).
type Limiter struct {
	config  *Config
	buckets map[string]*bucket
	mu      sync.Mutex
	stop    chan struct{}
	once    sync.Once
}

// NewLimiter creates a limiter and starts its idle-bucket cleanup loop.
func NewLimiter(cfg *Config) *Limiter {
	l := &Limiter{
		config:  cfg,
		buckets: make(map[string]*bucket),
		stop:    make(chan struct{}),
	}
	if cfg.Enabled {
		go l.cleanupLoop()
	}
	return l
}

// Allow reports whether a request from clientID to path may proceed.
func (l *Limiter) Allow(clientID, path string) (bool, Info) {
	if !l.config.Enabled {
		return true, Info{}
	}

	tier := l.config.tierFor(path)
	key := clientID + "|" + tier.Name

	l.mu.Lock()
	b, ok := l.buckets[key]
	if !ok {
		b = newBucket(tier.Limit, tier.Window)
		l.buckets[key] = b
	}
	l.mu.Unlock()

	allowed, remaining := b.allow()
	return allowed, Info{Limit: tier.Limit, Remaining: remaining}
}

// Stop terminates the cleanup goroutine.
func (l *Limiter) Stop() {
	l.once.Do(func() { close(l.stop) })
}

// cleanupLoop periodically drops buckets that have refilled completely, so
// the map does not grow with every client ever seen.
func (l *Limiter) cleanupLoop() {
	ticker := time.NewTicker(l.config.CleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-l.stop:
			return
		case <-ticker.C:
			l.mu.Lock()
			for key, b := range l.buckets {
				b.mu.Lock()
				full := b.tokens >= float64(b.capacity)
				b.mu.Unlock()
				if full {
					delete(l.buckets, key)
				}
			}
			l.mu.Unlock()
		}
	}
}
