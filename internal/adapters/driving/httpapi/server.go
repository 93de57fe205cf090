package httpapi

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/custodia-labs/chembalance/internal/core/domain"
	"github.com/custodia-labs/chembalance/internal/logger"
)

// shutdownTimeout bounds graceful shutdown.
const shutdownTimeout = 5 * time.Second

// Server serves the balance API.
type Server struct {
	ports   *Ports
	handler http.Handler

	mu       sync.RWMutex
	settings domain.ServerSettings
	limiter  *rate.Limiter
}

// NewServer creates a server for the given ports and settings.
func NewServer(ports *Ports, settings domain.ServerSettings) (*Server, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("validating ports: %w", err)
	}

	s := &Server{ports: ports}
	s.Configure(settings)

	mux := http.NewServeMux()
	mux.HandleFunc("POST /balance", s.handleBalance)
	mux.HandleFunc("GET /history", s.handleListHistory)
	mux.HandleFunc("DELETE /history", s.handleClearHistory)
	mux.HandleFunc("GET /health", s.handleHealth)

	s.handler = chain(mux, s.recoverer, s.requestID, s.cors, s.rateLimit)
	return s, nil
}

// Configure applies new CORS and rate-limit settings to subsequent requests.
// The listen address is only read when the server starts.
func (s *Server) Configure(settings domain.ServerSettings) {
	var limiter *rate.Limiter
	if settings.RateLimit > 0 {
		burst := settings.RateBurst
		if burst <= 0 {
			burst = 1
		}
		limiter = rate.NewLimiter(rate.Limit(settings.RateLimit), burst)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.settings = settings
	s.settings.AllowedOrigins = append([]string(nil), settings.AllowedOrigins...)
	s.limiter = limiter
}

// Handler returns the fully wrapped HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.handler
}

// ListenAndServe serves on the configured address until ctx is cancelled,
// then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context) error {
	s.mu.RLock()
	addr := s.settings.Addr
	s.mu.RUnlock()

	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", addr, err)
	}
	return s.Serve(ctx, listener)
}

// Serve accepts connections on listener until ctx is cancelled.
func (s *Server) Serve(ctx context.Context, listener net.Listener) error {
	httpServer := &http.Server{
		Handler:           s.handler,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- httpServer.Serve(listener)
	}()
	logger.Info("HTTP server listening on %s", listener.Addr())

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutting down: %w", err)
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	logger.Info("HTTP server stopped")
	return nil
}

func (s *Server) currentSettings() (domain.ServerSettings, *rate.Limiter) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.settings, s.limiter
}
