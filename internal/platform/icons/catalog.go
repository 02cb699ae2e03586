package icons

import (
	"sort"
	"strings"
)

// Lucide icon names available to pages.
const (
	Search        = "search"
	MessageSquare = "message-square"
	Calendar      = "calendar"
	ShieldCheck   = "shield-check"
	Instagram     = "instagram"
	Sparkles      = "sparkles"
	CircleCheck   = "circle-check"
)

// Default is rendered for names missing from the catalog.
const Default = Sparkles

// Definition describes one catalog entry.
type Definition struct {
	Name        string
	Description string
	// Body holds the SVG child elements drawn on a 24x24 viewBox.
	Body string
}

var catalog = []Definition{
	{
		Name:        Search,
		Description: "Review and diagnosis steps.",
		Body:        `<circle cx="11" cy="11" r="8"></circle><path d="m21 21-4.3-4.3"></path>`,
	},
	{
		Name:        MessageSquare,
		Description: "Direct contact from the team.",
		Body:        `<path d="M21 15a2 2 0 0 1-2 2H7l-4 4V5a2 2 0 0 1 2-2h14a2 2 0 0 1 2 2z"></path>`,
	},
	{
		Name:        Calendar,
		Description: "Scheduling and strategy sessions.",
		Body:        `<path d="M8 2v4"></path><path d="M16 2v4"></path><rect width="18" height="18" x="3" y="4" rx="2"></rect><path d="M3 10h18"></path>`,
	},
	{
		Name:        ShieldCheck,
		Description: "Private, individualized environment badge.",
		Body:        `<path d="M20 13c0 5-3.5 7.5-7.66 8.95a1 1 0 0 1-.67-.01C7.5 20.5 4 18 4 13V6a1 1 0 0 1 1-1c2 0 4.5-1.2 6.24-2.72a1.17 1.17 0 0 1 1.52 0C14.51 3.81 17 5 19 5a1 1 0 0 1 1 1z"></path><path d="m9 12 2 2 4-4"></path>`,
	},
	{
		Name:        Instagram,
		Description: "Outbound social profile link.",
		Body:        `<rect width="20" height="20" x="2" y="2" rx="5" ry="5"></rect><path d="M16 11.37A4 4 0 1 1 12.63 8 4 4 0 0 1 16 11.37z"></path><line x1="17.5" x2="17.51" y1="6.5" y2="6.5"></line>`,
	},
	{
		Name:        Sparkles,
		Description: "Decorative accent under the hero divider.",
		Body:        `<path d="M9.937 15.5A2 2 0 0 0 8.5 14.063l-6.135-1.582a.5.5 0 0 1 0-.962L8.5 9.936A2 2 0 0 0 9.937 8.5l1.582-6.135a.5.5 0 0 1 .963 0L14.063 8.5A2 2 0 0 0 15.5 9.937l6.135 1.581a.5.5 0 0 1 0 .964L15.5 14.063a2 2 0 0 0-1.437 1.437l-1.582 6.135a.5.5 0 0 1-.963 0z"></path><path d="M20 3v4"></path><path d="M22 5h-4"></path><path d="M4 17v2"></path><path d="M5 18H3"></path>`,
	},
	{
		Name:        CircleCheck,
		Description: "Confirmation mark in the top banner.",
		Body:        `<circle cx="12" cy="12" r="10"></circle><path d="m9 12 2 2 4-4"></path>`,
	},
}

var byName = indexCatalog(catalog)

func indexCatalog(defs []Definition) map[string]Definition {
	out := make(map[string]Definition, len(defs))
	for _, def := range defs {
		out[def.Name] = def
	}
	return out
}

// Names returns the sorted catalog names.
func Names() []string {
	names := make([]string, 0, len(catalog))
	for _, def := range catalog {
		names = append(names, def.Name)
	}
	sort.Strings(names)
	return names
}

// Known reports whether name is in the catalog.
func Known(name string) bool {
	_, ok := byName[strings.TrimSpace(name)]
	return ok
}

// Body returns the SVG body for name.
func Body(name string) (string, bool) {
	def, ok := byName[strings.TrimSpace(name)]
	return def.Body, ok
}

// BodyOrDefault returns the SVG body for name, falling back to Default.
func BodyOrDefault(name string) string {
	if body, ok := Body(name); ok {
		return body
	}
	return byName[Default].Body
}
