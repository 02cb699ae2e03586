package thankyou

import (
	"net/http"

	"github.com/aceleraclinicas/landing/internal/services/landing/page"
	"github.com/aceleraclinicas/landing/internal/services/landing/platform/httpx"
	"github.com/aceleraclinicas/landing/internal/services/landing/platform/pagerender"
	"github.com/aceleraclinicas/landing/internal/services/landing/routepath"
	"github.com/aceleraclinicas/landing/internal/services/landing/templates"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

const notFoundTitle = "Página não encontrada"

type handlers struct {
	registry *page.Registry
	logger   *zap.Logger
	tracer   trace.Tracer
}

func (h handlers) handleDefault(w http.ResponseWriter, r *http.Request) {
	h.renderVariant(w, r, h.registry.Default())
}

func (h handlers) handleVariant(w http.ResponseWriter, r *http.Request) {
	v, ok := h.registry.ByRoute(r.PathValue("route"))
	if !ok {
		h.handleNotFound(w, r)
		return
	}
	h.renderVariant(w, r, v)
}

// renderVariant renders v once with the display name resolved from the query
// string.
func (h handlers) renderVariant(w http.ResponseWriter, r *http.Request, v page.Variant) {
	displayName, supplied := v.DisplayNameFor(r)
	ctx, span := h.tracer.Start(httpx.RequestContext(r), "landing.render_variant",
		trace.WithAttributes(
			attribute.String("landing.variant", v.ID),
			attribute.Bool("landing.name_supplied", supplied),
		),
	)
	defer span.End()

	meta := templates.DocumentMeta{
		Title:           v.Title,
		MetaDescription: v.MetaDescription,
		Lang:            v.Lang,
	}
	body := templates.Component(templates.App(v, displayName))
	if err := pagerender.WritePage(w, r.WithContext(ctx), meta, http.StatusOK, body); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "render variant")
		h.logger.Error("render variant",
			zap.String("variant", v.ID),
			zap.String("request_id", httpx.RequestIDFrom(r)),
			zap.Error(err),
		)
	}
}

func (h handlers) handleNotFound(w http.ResponseWriter, r *http.Request) {
	meta := templates.DocumentMeta{Title: notFoundTitle, Lang: h.registry.Default().Lang}
	body := templates.Component(templates.NotFound(routepath.Root))
	if err := pagerender.WritePage(w, r, meta, http.StatusNotFound, body); err != nil {
		h.logger.Error("render not found page", zap.String("path", r.URL.Path), zap.Error(err))
	}
}

func (h handlers) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Cache-Control", "no-store")
	if r.Method == http.MethodHead {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		return
	}
	if err := httpx.WriteText(w, http.StatusOK, "ok"); err != nil {
		h.logger.Warn("write health response", zap.Error(err))
	}
}
