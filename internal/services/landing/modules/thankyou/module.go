// Package thankyou serves the personalized thank-you pages, one per variant.
package thankyou

import (
	"errors"
	"net/http"

	"github.com/aceleraclinicas/landing/internal/platform/logging"
	"github.com/aceleraclinicas/landing/internal/services/landing/module"
	"github.com/aceleraclinicas/landing/internal/services/landing/page"
	"github.com/aceleraclinicas/landing/internal/services/landing/routepath"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

const tracerName = "github.com/aceleraclinicas/landing/internal/services/landing/modules/thankyou"

// Config wires the module's collaborators.
type Config struct {
	Registry *page.Registry
	Logger   *zap.Logger
	// TracerProvider defaults to the global provider.
	TracerProvider trace.TracerProvider
}

// Module provides the variant pages, the health check and the 404 page.
type Module struct {
	cfg Config
}

// New returns a thank-you module.
func New(cfg Config) Module {
	return Module{cfg: cfg}
}

// ID returns a stable module identifier.
func (Module) ID() string { return "thankyou" }

// Mount returns the module handler at the site root.
func (m Module) Mount() (module.Mount, error) {
	if m.cfg.Registry == nil {
		return module.Mount{}, errors.New("variant registry is required")
	}
	provider := m.cfg.TracerProvider
	if provider == nil {
		provider = otel.GetTracerProvider()
	}
	h := handlers{
		registry: m.cfg.Registry,
		logger:   logging.OrNop(m.cfg.Logger),
		tracer:   provider.Tracer(tracerName),
	}
	return module.Mount{Prefix: routepath.Root, Handler: h.routes()}, nil
}

func (h handlers) routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET "+routepath.Health, h.handleHealth)
	mux.HandleFunc("GET /{$}", h.handleDefault)
	mux.HandleFunc("GET /{route}", h.handleVariant)
	mux.HandleFunc("GET /{route}/{$}", h.handleVariant)
	mux.HandleFunc("GET /", h.handleNotFound)
	return mux
}
