// Package server exposes the task service over HTTP.
package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/fastkit/cli/internal/output"
	"github.com/fastkit/cli/internal/tasks"
)

// APIVersion is reported by the root endpoint.
const APIVersion = "1.0.0"

// DefaultShutdownTimeout bounds graceful shutdown in Run.
const DefaultShutdownTimeout = 10 * time.Second

// Options configures a Server.
type Options struct {
	// Logger receives request logs. Defaults to the "http" scoped output logger.
	Logger *log.Logger

	// Registry collects request metrics and backs /metrics.
	// A fresh registry is created when nil.
	Registry *prometheus.Registry

	// ShutdownTimeout bounds graceful shutdown. Zero uses DefaultShutdownTimeout.
	ShutdownTimeout time.Duration
}

// Server serves the Task Management API.
type Server struct {
	svc      *tasks.Service
	logger   *log.Logger
	registry *prometheus.Registry
	metrics  *metrics
	timeout  time.Duration
	handler  http.Handler
}

// New creates a Server over svc.
func New(svc *tasks.Service, opts Options) *Server {
	s := &Server{
		svc:      svc,
		logger:   opts.Logger,
		registry: opts.Registry,
		timeout:  opts.ShutdownTimeout,
	}
	if s.logger == nil {
		s.logger = output.ScopedLogger("http")
	}
	if s.registry == nil {
		s.registry = prometheus.NewRegistry()
	}
	if s.timeout <= 0 {
		s.timeout = DefaultShutdownTimeout
	}
	s.metrics = newMetrics(s.registry)
	s.handler = s.routes()
	return s
}

// Handler returns the root handler with middleware applied.
func (s *Server) Handler() http.Handler {
	return s.handler
}

// Run listens on addr and serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context, addr string) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("listening on %s: %w", addr, err)
	}
	return s.Serve(ctx, ln)
}

// Serve is Run over an existing listener.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           s.handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("listening", "addr", ln.Addr().String())
		errCh <- srv.Serve(ln)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serving http: %w", err)
	case <-ctx.Done():
	}

	s.logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutting down http server: %w", err)
	}
	return nil
}
