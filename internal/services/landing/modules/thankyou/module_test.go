package thankyou

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/aceleraclinicas/landing/internal/services/landing/page"
	"go.opentelemetry.io/otel/attribute"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"golang.org/x/net/html"
)

func newRegistry(t *testing.T) *page.Registry {
	t.Helper()
	variants, err := page.LoadEmbedded()
	if err != nil {
		t.Fatalf("LoadEmbedded() error = %v", err)
	}
	registry, err := page.NewRegistry(variants, "analise")
	if err != nil {
		t.Fatalf("NewRegistry() error = %v", err)
	}
	return registry
}

func newHandler(t *testing.T, cfg Config) http.Handler {
	t.Helper()
	if cfg.Registry == nil {
		cfg.Registry = newRegistry(t)
	}
	mount, err := New(cfg).Mount()
	if err != nil {
		t.Fatalf("Mount() error = %v", err)
	}
	if mount.Prefix != "/" {
		t.Fatalf("prefix = %q, want %q", mount.Prefix, "/")
	}
	return mount.Handler
}

func serve(t *testing.T, h http.Handler, method, target string) *httptest.ResponseRecorder {
	t.Helper()
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(method, target, nil))
	return rr
}

// greetingOf returns the text of the hero greeting in a rendered document.
func greetingOf(t *testing.T, body string) string {
	t.Helper()
	doc, err := html.Parse(strings.NewReader(body))
	if err != nil {
		t.Fatalf("parse body: %v", err)
	}
	var found *html.Node
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if found != nil {
			return
		}
		if n.Type == html.ElementNode && n.Data == "span" {
			for _, a := range n.Attr {
				if a.Key == "class" && a.Val == "hero-greeting" {
					found = n
					return
				}
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)
	if found == nil {
		t.Fatalf("greeting not found in %q", body)
	}
	var sb strings.Builder
	for c := found.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.TextNode {
			sb.WriteString(c.Data)
		}
	}
	return sb.String()
}

func TestVariantGreetingScenarios(t *testing.T) {
	t.Parallel()

	h := newHandler(t, Config{})
	cases := []struct {
		target string
		want   string
	}{
		{"/analise/", "Olá, Doutora."},
		{"/analise/?nome=Carla", "Olá, Carla."},
		{"/analise/?nome=", "Olá, Doutora."},
		{"/analise/?nome=Ana%20Maria", "Olá, Ana Maria."},
		{"/analise/?nome=Bia&nome=Carla", "Olá, Bia."},
		{"/aplicacao/", "Aplicação Recebida."},
		{"/aplicacao/?nome=Carla", "Seja bem-vinda, Carla."},
		{"/aplicacao/?nome=", "Aplicação Recebida."},
		{"/aplicacao/?nome=Ana%20Maria", "Seja bem-vinda, Ana Maria."},
	}
	for _, tc := range cases {
		rr := serve(t, h, http.MethodGet, tc.target)
		if rr.Code != http.StatusOK {
			t.Fatalf("GET %s status = %d, want %d", tc.target, rr.Code, http.StatusOK)
		}
		if got := greetingOf(t, rr.Body.String()); got != tc.want {
			t.Fatalf("GET %s greeting = %q, want %q", tc.target, got, tc.want)
		}
	}
}

func TestRootServesDefaultVariant(t *testing.T) {
	t.Parallel()

	h := newHandler(t, Config{})
	rr := serve(t, h, http.MethodGet, "/?nome=Carla")
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusOK)
	}
	if got := greetingOf(t, rr.Body.String()); got != "Olá, Carla." {
		t.Fatalf("greeting = %q, want %q", got, "Olá, Carla.")
	}
	if !strings.Contains(rr.Body.String(), `data-variant="analise"`) {
		t.Fatal("expected default variant marker")
	}
}

func TestVariantServedWithoutTrailingSlash(t *testing.T) {
	t.Parallel()

	h := newHandler(t, Config{})
	rr := serve(t, h, http.MethodGet, "/aplicacao?nome=Carla")
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusOK)
	}
	if got := greetingOf(t, rr.Body.String()); got != "Seja bem-vinda, Carla." {
		t.Fatalf("greeting = %q", got)
	}
}

func TestVariantPageHeadersAndDocument(t *testing.T) {
	t.Parallel()

	h := newHandler(t, Config{})
	rr := serve(t, h, http.MethodGet, "/analise/")
	if got := rr.Header().Get("Content-Type"); got != "text/html; charset=utf-8" {
		t.Fatalf("content-type = %q", got)
	}
	body := rr.Body.String()
	for _, marker := range []string{
		`<html lang="pt-BR">`,
		"<title>O Próximo Passo | Mentoria Acelera Clínicas</title>",
		`href="https://www.instagram.com/stories/drabrunamello.bm/"`,
		`target="_blank"`,
		`rel="noopener noreferrer"`,
	} {
		if !strings.Contains(body, marker) {
			t.Fatalf("body missing %q", marker)
		}
	}
}

func TestHeadReturnsHeadersWithoutBody(t *testing.T) {
	t.Parallel()

	h := newHandler(t, Config{})
	rr := serve(t, h, http.MethodHead, "/analise/?nome=Carla")
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusOK)
	}
	if rr.Body.Len() != 0 {
		t.Fatalf("body length = %d, want 0", rr.Body.Len())
	}
}

func TestNonGetMethodsAreRejected(t *testing.T) {
	t.Parallel()

	h := newHandler(t, Config{})
	for _, target := range []string{"/", "/analise/", "/healthz"} {
		rr := serve(t, h, http.MethodPost, target)
		if rr.Code != http.StatusMethodNotAllowed {
			t.Fatalf("POST %s status = %d, want %d", target, rr.Code, http.StatusMethodNotAllowed)
		}
		if allow := rr.Header().Get("Allow"); !strings.Contains(allow, http.MethodGet) {
			t.Fatalf("POST %s Allow = %q, want GET", target, allow)
		}
	}
}

func TestUnknownPathRendersNotFoundPage(t *testing.T) {
	t.Parallel()

	h := newHandler(t, Config{})
	rr := serve(t, h, http.MethodGet, "/nao-existe/?nome=Carla")
	if rr.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusNotFound)
	}
	body := rr.Body.String()
	if !strings.Contains(body, "<title>Página não encontrada | Mentoria Acelera Clínicas</title>") {
		t.Fatalf("not found title missing: %q", body)
	}
	if strings.Contains(body, "Carla") {
		t.Fatal("not found page must not echo the name")
	}
}

func TestUnregisteredRoutesRenderNotFound(t *testing.T) {
	t.Parallel()

	h := newHandler(t, Config{})
	for _, target := range []string{"/ANALISE/", "/outra", "/healthz/", "/analise/extra"} {
		rr := serve(t, h, http.MethodGet, target)
		if rr.Code != http.StatusNotFound {
			t.Fatalf("GET %s status = %d, want %d", target, rr.Code, http.StatusNotFound)
		}
	}
}

func TestHealth(t *testing.T) {
	t.Parallel()

	h := newHandler(t, Config{})
	rr := serve(t, h, http.MethodGet, "/healthz")
	if rr.Code != http.StatusOK || rr.Body.String() != "ok" {
		t.Fatalf("health = %d %q, want 200 %q", rr.Code, rr.Body.String(), "ok")
	}

	rr = serve(t, h, http.MethodHead, "/healthz")
	if rr.Code != http.StatusOK || rr.Body.Len() != 0 {
		t.Fatalf("HEAD health = %d len %d", rr.Code, rr.Body.Len())
	}
}

func TestRenderSpanRecordsVariantWithoutName(t *testing.T) {
	t.Parallel()

	recorder := tracetest.NewSpanRecorder()
	provider := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	h := newHandler(t, Config{TracerProvider: provider})

	serve(t, h, http.MethodGet, "/aplicacao/?nome=Carla")
	serve(t, h, http.MethodGet, "/analise/?nome=")

	spans := recorder.Ended()
	if len(spans) != 2 {
		t.Fatalf("spans = %d, want 2", len(spans))
	}
	wants := []struct {
		variant  string
		supplied bool
	}{
		{"aplicacao", true},
		{"analise", false},
	}
	for i, span := range spans {
		if span.Name() != "landing.render_variant" {
			t.Fatalf("span name = %q", span.Name())
		}
		attrs := map[attribute.Key]attribute.Value{}
		for _, kv := range span.Attributes() {
			attrs[kv.Key] = kv.Value
			if strings.Contains(kv.Value.Emit(), "Carla") {
				t.Fatalf("span attribute %s leaks the name", kv.Key)
			}
		}
		if got := attrs["landing.variant"].AsString(); got != wants[i].variant {
			t.Fatalf("span %d variant = %q, want %q", i, got, wants[i].variant)
		}
		if got := attrs["landing.name_supplied"].AsBool(); got != wants[i].supplied {
			t.Fatalf("span %d name_supplied = %v, want %v", i, got, wants[i].supplied)
		}
	}
}

func TestMountRequiresRegistry(t *testing.T) {
	t.Parallel()

	if _, err := New(Config{}).Mount(); err == nil {
		t.Fatal("expected error without registry")
	}
	if got := (Module{}).ID(); got != "thankyou" {
		t.Fatalf("ID() = %q", got)
	}
}
