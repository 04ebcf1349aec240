package http

import (
	"context"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"kupa/internal/middleware/security"
	"kupa/internal/middleware/trace"
	"kupa/internal/services"
	"kupa/internal/store"
)

// Server exposes the entity store and its derived views as a JSON API.
// Handlers re-read store state on every request; the only state the
// server itself keeps is a data version counter bumped by the store's
// change notification, which lets a polling client detect mutations.
type Server struct {
	http.Server
	store       *store.Store
	svc         *services.Service
	rateLimiter *rateLimiter
	traced      *trace.Middleware
	dataVersion atomic.Int64
}

// NewServer configures routes and middleware, returning a ready-to-run
// http.Server.
func NewServer(addr string, st *store.Store, svc *services.Service) *Server {
	mux := http.NewServeMux()

	s := &Server{
		store:       st,
		svc:         svc,
		rateLimiter: newRateLimiter(),
		traced:      trace.NewMiddleware(trace.ExtractClientIP),
	}
	st.OnChange(func() { s.dataVersion.Add(1) })

	mux.HandleFunc("/healthz", handleHealth)
	mux.HandleFunc("/readyz", s.handleReady)
	mux.HandleFunc("/api/transactions", s.handleTransactions)
	mux.HandleFunc("/api/transactions/", s.handleTransactionByID)
	mux.HandleFunc("/api/summary", s.handleSummary)
	mux.HandleFunc("/api/accounts", s.handleAccounts)
	mux.HandleFunc("/api/accounts/", s.handleAccountMethods)
	mux.HandleFunc("/api/categories", s.handleCategories)

	s.Server = http.Server{
		Addr:    addr,
		Handler: security.Headers(security.DefaultHeadersConfig(), s.traced.Handler(mux)),
	}
	return s
}

// Shutdown stops the rate limiter's cleanup goroutine along with the
// HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	s.rateLimiter.stop()
	return s.Server.Shutdown(ctx)
}

// version returns the current data version for response envelopes.
func (s *Server) version() int64 {
	return s.dataVersion.Load()
}

// allowMutation applies rate limiting to mutating requests.
func (s *Server) allowMutation(w http.ResponseWriter, r *http.Request) bool {
	if s.rateLimiter.allow(trace.ExtractClientIP(r)) {
		return true
	}
	w.Header().Set("Retry-After", "60")
	writeError(w, http.StatusTooManyRequests, "rate limit exceeded, try again later")
	return false
}

func handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleReady(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":         "ready",
		"requestsServed": s.traced.TotalRequests(),
		"dataVersion":    s.version(),
		"flushDiverged":  s.store.FlushError() != nil,
	})
}

// Simple in-memory rate limiter: 60 mutations per client per minute.
type rateLimiter struct {
	mu           sync.Mutex
	clients      map[string]*clientInfo
	stopCleanup  chan struct{}
	shutdownOnce sync.Once
}

type clientInfo struct {
	lastRequest time.Time
	requests    int
}

func newRateLimiter() *rateLimiter {
	rl := &rateLimiter{
		clients:     make(map[string]*clientInfo),
		stopCleanup: make(chan struct{}),
	}
	go rl.startCleanup()
	return rl
}

func (rl *rateLimiter) allow(clientIP string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := time.Now()
	client, exists := rl.clients[clientIP]
	if !exists || now.Sub(client.lastRequest) > time.Minute {
		rl.clients[clientIP] = &clientInfo{lastRequest: now, requests: 1}
		return true
	}

	client.requests++
	client.lastRequest = now
	return client.requests <= 60
}

func (rl *rateLimiter) startCleanup() {
	ticker := time.NewTicker(5 * time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			rl.cleanupStaleEntries()
		case <-rl.stopCleanup:
			return
		}
	}
}

func (rl *rateLimiter) cleanupStaleEntries() {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	cutoff := time.Now().Add(-10 * time.Minute)
	for ip, client := range rl.clients {
		if client.lastRequest.Before(cutoff) {
			delete(rl.clients, ip)
		}
	}
}

func (rl *rateLimiter) stop() {
	rl.shutdownOnce.Do(func() {
		close(rl.stopCleanup)
	})
}
