package plot

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"
)

// HTTPServer defines the interface for an HTTP server that ChartServer will use
type HTTPServer interface {
	// RegisterHandler registers a handler for a specific route
	RegisterHandler(path string, handler http.HandlerFunc)

	// Start serves on port until ctx is done
	Start(ctx context.Context, port int) error
}

// StandardHTTPServer implements HTTPServer on its own ServeMux
type StandardHTTPServer struct {
	mux             *http.ServeMux
	shutdownTimeout time.Duration
}

// NewStandardHTTPServer creates a server that waits up to shutdownTimeout
// for in-flight requests when stopping
func NewStandardHTTPServer(shutdownTimeout time.Duration) *StandardHTTPServer {
	return &StandardHTTPServer{
		mux:             http.NewServeMux(),
		shutdownTimeout: shutdownTimeout,
	}
}

// RegisterHandler registers a handler for a specific route
func (s *StandardHTTPServer) RegisterHandler(path string, handler http.HandlerFunc) {
	s.mux.HandleFunc(path, handler)
}

// Handler returns the routes registered so far
func (s *StandardHTTPServer) Handler() http.Handler {
	return s.mux
}

// Start serves on port until ctx is done, then shuts down gracefully
func (s *StandardHTTPServer) Start(ctx context.Context, port int) error {
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", port),
		Handler:           s.mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("failed to shut down chart server: %w", err)
		}
		if err := <-errCh; !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	}
}
