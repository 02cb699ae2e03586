// Package routepath centralizes the landing service's URL paths.
package routepath

import "strings"

const (
	Root         = "/"
	Health       = "/healthz"
	StaticPrefix = "/static/"
	Stylesheet   = StaticPrefix + "landing.css"
)

// Variant returns the canonical path for a variant route segment.
func Variant(route string) string {
	route = strings.Trim(strings.TrimSpace(route), "/")
	if route == "" {
		return Root
	}
	return "/" + route + "/"
}
