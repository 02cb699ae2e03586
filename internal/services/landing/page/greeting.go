package page

import (
	"net/http"
	"net/url"
	"strings"
)

// NameParam is the query key carrying the visitor's name.
const NameParam = "nome"

// NamePlaceholder marks where the display name goes in a greeting template.
const NamePlaceholder = "{nome}"

// Greeting formats the header salutation.
type Greeting struct {
	// Template must contain NamePlaceholder exactly once.
	Template string `yaml:"template"`
	// Fallback is shown when there is no display name.
	Fallback string `yaml:"fallback"`
}

// Format returns the template with name substituted, or the fallback when
// name is empty. The name is inserted as-is.
func (g Greeting) Format(name string) string {
	if name == "" {
		return g.Fallback
	}
	return strings.Replace(g.Template, NamePlaceholder, name, 1)
}

// ResolveDisplayName returns the first "nome" value from query when it is
// non-empty, or defaultName otherwise. Values are already URL-decoded
// by url.ParseQuery; no trimming or case change is applied.
func ResolveDisplayName(defaultName string, query url.Values) string {
	if query == nil {
		return defaultName
	}
	if name := query.Get(NameParam); name != "" {
		return name
	}
	return defaultName
}

// DisplayNameFor resolves the display name for r and reports whether the
// request supplied a non-empty "nome" value. A request without a URL keeps
// v.DefaultName.
func (v Variant) DisplayNameFor(r *http.Request) (displayName string, supplied bool) {
	if r == nil || r.URL == nil {
		return v.DefaultName, false
	}
	query := r.URL.Query()
	return ResolveDisplayName(v.DefaultName, query), query.Get(NameParam) != ""
}
