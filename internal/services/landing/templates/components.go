package templates

import (
	"github.com/aceleraclinicas/landing/internal/platform/icons"
	"github.com/aceleraclinicas/landing/internal/services/landing/page"
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// TopBar renders the fixed confirmation banner.
func TopBar(text string) g.Node {
	return Div(Class("topbar"), Role("status"),
		Div(Class("topbar-inner glass-card animate-fade-up"),
			Icon(icons.CircleCheck, 14, "2", "topbar-icon"),
			Span(Class("topbar-text"), g.Text(text)),
		),
	)
}

// HeaderProps is the input of SectionHeader.
type HeaderProps struct {
	Eyebrow  string
	Greeting string
	Tagline  string
	Subtitle string
}

// SectionHeader renders the hero block. Greeting is already formatted.
func SectionHeader(props HeaderProps) g.Node {
	return Header(Class("hero animate-fade-up"),
		Div(Class("hero-ornament"),
			Div(Class("hero-divider")),
			Icon(icons.Sparkles, 20, "2", "hero-sparkle animate-pulse-soft"),
		),
		H1(Class("hero-title"),
			g.If(props.Eyebrow != "", Span(Class("hero-eyebrow"), g.Text(props.Eyebrow))),
			Span(Class("hero-greeting"), Data("greeting", ""), g.Text(props.Greeting)),
			Br(),
			g.If(props.Tagline != "", Span(Class("hero-tagline gold-gradient-text"), g.Text(props.Tagline))),
		),
		g.If(props.Subtitle != "", P(Class("hero-subtitle"), g.Text(props.Subtitle))),
	)
}

// StepCard renders one card of the step grid. delay is applied verbatim as
// the card's animation delay.
func StepCard(step page.Step) g.Node {
	attrs := []g.Node{Class("step-card glass-card animate-fade-up")}
	if step.Delay != "" {
		attrs = append(attrs, Style("animation-delay: "+step.Delay))
	}
	return Div(
		g.Group(attrs),
		Div(Class("step-icon"), Icon(step.Icon, 28, "1", "")),
		H3(Class("step-title"), g.Text(step.Title)),
		P(Class("step-description"), g.Text(step.Description)),
	)
}

// StepGrid renders the step cards in order.
func StepGrid(steps []page.Step) g.Node {
	return Section(Class("steps"),
		Div(Class("step-grid"),
			g.Map(steps, StepCard),
		),
	)
}

// CallToAction renders the outbound link block. The link always opens in a
// new browsing context without sending a referrer.
func CallToAction(cta page.CTA) g.Node {
	return Section(Class("cta"),
		Div(Class("cta-panel"),
			H2(Class("cta-heading"),
				g.Text(cta.Heading),
				g.If(cta.Emphasis != "", g.Group{g.Text(" "), Span(Class("cta-emphasis"), g.Text(cta.Emphasis))}),
			),
			g.If(cta.Body != "", P(Class("cta-body"), g.Text(cta.Body))),
			Div(Class("cta-actions"),
				A(
					Href(cta.URL),
					Target("_blank"),
					Rel("noopener noreferrer"),
					Class("cta-link"),
					Span(Class("cta-label"), g.Text(cta.Label)),
					Icon(icons.Instagram, 16, "2", "cta-icon"),
				),
				g.If(cta.Badge != "", Div(Class("cta-badge"),
					Icon(icons.ShieldCheck, 14, "2", ""),
					Span(g.Text(cta.Badge)),
				)),
			),
		),
	)
}

// PageFooter renders the closing tagline.
func PageFooter(text string) g.Node {
	return Footer(Class("page-footer"),
		P(g.Text(text)),
	)
}

func background() g.Node {
	return Div(Class("backdrop"), Aria("hidden", "true"),
		Div(Class("blob blob-top animate-float")),
		Div(Class("blob blob-bottom animate-float"), Style("animation-delay: -3s")),
		Div(Class("glow")),
	)
}
