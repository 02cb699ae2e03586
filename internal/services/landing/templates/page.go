package templates

import (
	"sort"
	"strings"

	"github.com/aceleraclinicas/landing/internal/services/landing/page"
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// App renders the full page body for a variant and an already resolved
// display name.
func App(v page.Variant, displayName string) g.Node {
	rootAttrs := []g.Node{Class("landing"), Data("variant", v.ID)}
	if style := ThemeStyle(v.Theme); style != "" {
		rootAttrs = append(rootAttrs, Style(style))
	}
	return Div(
		g.Group(rootAttrs),
		TopBar(v.TopBar),
		background(),
		Main(Class("container"),
			SectionHeader(HeaderProps{
				Eyebrow:  v.Header.Eyebrow,
				Greeting: v.Greeting.Format(displayName),
				Tagline:  v.Header.Tagline,
				Subtitle: v.Header.Subtitle,
			}),
			StepGrid(v.Steps),
			CallToAction(v.CTA),
			PageFooter(v.Footer),
		),
	)
}

// ThemeStyle serializes theme tokens as CSS declarations in token name order.
func ThemeStyle(theme page.Theme) string {
	if len(theme.Tokens) == 0 {
		return ""
	}
	names := make([]string, 0, len(theme.Tokens))
	for name := range theme.Tokens {
		names = append(names, name)
	}
	sort.Strings(names)
	parts := make([]string, 0, len(names))
	for _, name := range names {
		value := strings.TrimSpace(theme.Tokens[name])
		if value == "" {
			continue
		}
		parts = append(parts, name+": "+value)
	}
	return strings.Join(parts, "; ")
}

// NotFound renders the body of the 404 page with a link back to home.
func NotFound(home string) g.Node {
	if home == "" {
		home = "/"
	}
	return Div(Class("landing"),
		background(),
		Main(Class("container not-found"),
			Header(Class("hero"),
				H1(Class("hero-title"),
					Span(Class("hero-eyebrow"), g.Text("Erro 404")),
					Span(g.Text("Página não encontrada.")),
				),
				P(Class("hero-subtitle"), g.Text("O endereço acessado não existe ou foi movido.")),
			),
			Div(Class("cta-actions"),
				A(Href(home), Class("cta-link"), Span(Class("cta-label"), g.Text("Voltar ao início"))),
			),
		),
	)
}
