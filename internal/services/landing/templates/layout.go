package templates

import (
	"context"
	"io"

	"github.com/a-h/templ"
	"github.com/aceleraclinicas/landing/internal/platform/branding"
	"github.com/aceleraclinicas/landing/internal/services/landing/routepath"
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// DocumentMeta carries the <head> inputs of a page.
type DocumentMeta struct {
	Title           string
	MetaDescription string
	Lang            string
}

// Document renders the HTML shell around the templ children in ctx. The shell
// itself is a gomponents tree; templ only provides the component contract, so
// there is no .templ source for it.
func Document(meta DocumentMeta) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		children := templ.GetChildren(ctx)
		lang := meta.Lang
		if lang == "" {
			lang = "pt-BR"
		}
		doc := Doctype(HTML(Lang(lang),
			Head(
				Meta(Charset("utf-8")),
				Meta(Name("viewport"), Content("width=device-width, initial-scale=1")),
				g.If(meta.MetaDescription != "", Meta(Name("description"), Content(meta.MetaDescription))),
				TitleEl(g.Text(branding.TitleSuffix(meta.Title))),
				Link(Rel("stylesheet"), Href(routepath.Stylesheet)),
			),
			Body(
				g.NodeFunc(func(bw io.Writer) error {
					return children.Render(ctx, bw)
				}),
			),
		))
		return doc.Render(w)
	})
}

// Component adapts a gomponents node to the templ render contract.
func Component(node g.Node) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		if node == nil {
			return nil
		}
		return node.Render(w)
	})
}
