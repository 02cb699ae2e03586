// Package landing hosts the thank-you landing page service.
package landing

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/aceleraclinicas/landing/internal/platform/logging"
	"github.com/aceleraclinicas/landing/internal/platform/timeouts"
	landingapp "github.com/aceleraclinicas/landing/internal/services/landing/app"
	"github.com/aceleraclinicas/landing/internal/services/landing/modules"
	"github.com/aceleraclinicas/landing/internal/services/landing/modules/thankyou"
	"github.com/aceleraclinicas/landing/internal/services/landing/page"
	"github.com/aceleraclinicas/landing/internal/services/landing/platform/httpx"
	"github.com/aceleraclinicas/landing/internal/services/landing/platform/observability"
	"go.uber.org/zap"
)

// Config defines startup inputs for the landing service.
type Config struct {
	HTTPAddr string
	Registry *page.Registry
	Logger   *zap.Logger
}

// Server hosts the landing HTTP surface and lifecycle.
type Server struct {
	httpAddr   string
	httpServer *http.Server
	logger     *zap.Logger
}

// NewHandler builds the root handler from the default modules.
func NewHandler(cfg Config) (http.Handler, error) {
	if cfg.Registry == nil {
		return nil, errors.New("variant registry is required")
	}
	logger := logging.OrNop(cfg.Logger)
	h, err := landingapp.Composer{}.Compose(landingapp.ComposeInput{
		Modules: modules.Default(thankyou.Config{
			Registry: cfg.Registry,
			Logger:   logger,
		}),
	})
	if err != nil {
		return nil, err
	}
	return httpx.Chain(h,
		httpx.RecoverPanic(logger),
		httpx.RequestID(),
		httpx.SecurityHeaders(),
		observability.RequestLogger(logger),
	), nil
}

// NewServer validates config and constructs a landing server.
func NewServer(_ context.Context, cfg Config) (*Server, error) {
	httpAddr := strings.TrimSpace(cfg.HTTPAddr)
	if httpAddr == "" {
		return nil, errors.New("http address is required")
	}
	handler, err := NewHandler(cfg)
	if err != nil {
		return nil, fmt.Errorf("compose landing handler: %w", err)
	}
	return &Server{
		httpAddr: httpAddr,
		logger:   logging.OrNop(cfg.Logger),
		httpServer: &http.Server{
			Addr:              httpAddr,
			Handler:           handler,
			ReadHeaderTimeout: timeouts.ReadHeader,
			WriteTimeout:      timeouts.Write,
			IdleTimeout:       timeouts.Idle,
		},
	}, nil
}

// Addr returns the configured listen address.
func (s *Server) Addr() string {
	if s == nil {
		return ""
	}
	return s.httpAddr
}

// ListenAndServe serves HTTP traffic until context cancellation or server stop.
func (s *Server) ListenAndServe(ctx context.Context) error {
	if s == nil {
		return errors.New("landing server is nil")
	}
	if ctx == nil {
		return errors.New("context is required")
	}

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- s.httpServer.ListenAndServe()
	}()
	s.logger.Info("landing server listening", zap.String("addr", s.httpAddr))

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), timeouts.Shutdown)
		err := s.httpServer.Shutdown(shutdownCtx)
		cancel()
		if err != nil {
			return fmt.Errorf("shutdown landing http server: %w", err)
		}
		s.logger.Info("landing server stopped")
		return nil
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve landing http: %w", err)
	}
}

// Close closes open server resources.
func (s *Server) Close() {
	if s == nil || s.httpServer == nil {
		return
	}
	_ = s.httpServer.Close()
}
