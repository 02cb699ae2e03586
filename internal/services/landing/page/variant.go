package page

import "github.com/aceleraclinicas/landing/internal/services/landing/routepath"

// StepCount is the number of step cards every variant renders.
const StepCount = 3

// Variant is one configured presentation of the thank-you page.
type Variant struct {
	ID              string   `yaml:"id"`
	Route           string   `yaml:"route"`
	Lang            string   `yaml:"lang"`
	Title           string   `yaml:"title"`
	MetaDescription string   `yaml:"meta_description"`
	DefaultName     string   `yaml:"default_name"`
	Greeting        Greeting `yaml:"greeting"`
	TopBar          string   `yaml:"top_bar"`
	Header          Header   `yaml:"header"`
	Steps           []Step   `yaml:"steps"`
	CTA             CTA      `yaml:"cta"`
	Footer          string   `yaml:"footer"`
	Theme           Theme    `yaml:"theme"`
}

// Header holds the hero copy around the greeting line.
type Header struct {
	Eyebrow  string `yaml:"eyebrow"`
	Tagline  string `yaml:"tagline"`
	Subtitle string `yaml:"subtitle"`
}

// Step is one card of the three-step grid.
type Step struct {
	Icon        string `yaml:"icon"`
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
	// Delay is a CSS time value applied verbatim as the card's animation delay.
	Delay string `yaml:"delay"`
}

// CTA is the outbound call-to-action block.
type CTA struct {
	Heading  string `yaml:"heading"`
	Emphasis string `yaml:"emphasis"`
	Body     string `yaml:"body"`
	Label    string `yaml:"label"`
	URL      string `yaml:"url"`
	Badge    string `yaml:"badge"`
}

// Theme carries CSS custom properties applied on the page root.
type Theme struct {
	Tokens map[string]string `yaml:"tokens"`
}

// Path returns the URL path that serves the variant.
func (v Variant) Path() string {
	return routepath.Variant(v.Route)
}
