package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
)

const shutdownTimeout = 10 * time.Second

// Start serves HTTP until an interrupt or terminate signal arrives, then
// shuts down gracefully.
func (s *Server) Start() error {
	addr := s.Cfg.GetServerAddr()
	errCh := make(chan error, 1)
	go func() {
		slog.Info("Starting server", "address", addr)
		if err := s.E.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(quit)

	select {
	case err := <-errCh:
		s.Shutdown(context.Background())
		return err
	case sig := <-quit:
		slog.Info("Shutting down server", "signal", sig.String())
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return s.Shutdown(ctx)
}

// Shutdown stops modules, closes live sessions and the HTTP server, then
// closes the bus. It is safe to call more than once.
func (s *Server) Shutdown(ctx context.Context) error {
	s.shutdownOnce.Do(func() {
		s.cancel()

		var errs []error
		for _, m := range s.modules {
			if err := m.Shutdown(ctx); err != nil {
				errs = append(errs, err)
				slog.Error("Module shutdown failed", "module", m.Name(), "error", err)
			}
		}

		s.deps.Sessions.CloseAll()

		if err := s.E.Shutdown(ctx); err != nil {
			errs = append(errs, err)
		}

		if s.deps.Publisher != nil {
			if err := s.deps.Publisher.Close(); err != nil {
				errs = append(errs, err)
			}
		}

		s.shutdownErr = errors.Join(errs...)
		slog.Info("Server stopped")
	})
	return s.shutdownErr
}
