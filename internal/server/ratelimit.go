package server

import (
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/time/rate"

	"github.com/raaihank/nomoji/internal/config"
)

// RateLimiter applies a per-client-IP token bucket to the strip endpoint.
type RateLimiter struct {
	cfg     *config.ServerConfig
	clients map[string]*client
	mu      sync.RWMutex
}

type client struct {
	limiter  *rate.Limiter
	lastSeen atomic.Int64 // unix nanos
}

// NewRateLimiter creates a new rate limiter
func NewRateLimiter(cfg *config.ServerConfig) *RateLimiter {
	return &RateLimiter{
		cfg:     cfg,
		clients: make(map[string]*client),
	}
}

// Allow checks if a request from the given client IP is allowed
func (r *RateLimiter) Allow(clientIP string) bool {
	if !r.cfg.RateLimit.Enabled {
		return true
	}

	c := r.getClient(clientIP)
	c.lastSeen.Store(time.Now().UnixNano())
	return c.limiter.Allow()
}

// getClient gets or creates the token bucket for a client IP
func (r *RateLimiter) getClient(clientIP string) *client {
	r.mu.RLock()
	c, exists := r.clients[clientIP]
	r.mu.RUnlock()

	if exists {
		return c
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	// Double-check after acquiring write lock
	if c, exists := r.clients[clientIP]; exists {
		return c
	}

	c = &client{
		limiter: rate.NewLimiter(
			rate.Limit(float64(r.cfg.RateLimit.RequestsPerMin)/60.0),
			r.cfg.RateLimit.Burst,
		),
	}
	c.lastSeen.Store(time.Now().UnixNano())

	r.clients[clientIP] = c
	return c
}

// CleanupStaleClients removes buckets idle for over an hour to prevent the
// client map from growing without bound.
func (r *RateLimiter) CleanupStaleClients() {
	r.mu.Lock()
	defer r.mu.Unlock()

	cutoff := time.Now().Add(-time.Hour).UnixNano()
	for ip, c := range r.clients {
		if c.lastSeen.Load() < cutoff {
			delete(r.clients, ip)
		}
	}
}

// StartCleanupRoutine starts a background routine to clean up stale clients
func (r *RateLimiter) StartCleanupRoutine() {
	go func() {
		ticker := time.NewTicker(30 * time.Minute)
		defer ticker.Stop()

		for range ticker.C {
			r.CleanupStaleClients()
		}
	}()
}
