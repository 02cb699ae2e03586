package page

import (
	"errors"
	"fmt"
	"net/url"
	"regexp"
	"strings"

	"github.com/aceleraclinicas/landing/internal/platform/icons"
	"golang.org/x/text/language"
)

var routePattern = regexp.MustCompile(`^[a-z0-9][a-z0-9-]*$`)

// reservedRoutes are path segments owned by the service itself.
var reservedRoutes = map[string]struct{}{
	"healthz": {},
	"static":  {},
}

// Validate checks v for configuration mistakes and canonicalizes its language
// tag. It never inspects visitor input.
func (v *Variant) Validate() error {
	if v == nil {
		return errors.New("variant is nil")
	}
	v.ID = strings.TrimSpace(v.ID)
	if v.ID == "" {
		return errors.New("id is required")
	}
	v.Route = strings.Trim(strings.TrimSpace(v.Route), "/")
	if strings.Contains(v.Route, "/") {
		return fmt.Errorf("route %q must be a single path segment", v.Route)
	}
	if v.Route != "" && !routePattern.MatchString(v.Route) {
		return fmt.Errorf("route %q must use lowercase letters, digits and hyphens", v.Route)
	}
	if _, reserved := reservedRoutes[v.Route]; reserved {
		return fmt.Errorf("route %q is reserved", v.Route)
	}

	tag, err := language.Parse(strings.TrimSpace(v.Lang))
	if err != nil {
		return fmt.Errorf("lang %q: %w", v.Lang, err)
	}
	v.Lang = tag.String()

	if strings.TrimSpace(v.Title) == "" {
		return errors.New("title is required")
	}
	if strings.Count(v.Greeting.Template, NamePlaceholder) != 1 {
		return fmt.Errorf("greeting template must contain %s exactly once", NamePlaceholder)
	}
	if strings.TrimSpace(v.Greeting.Fallback) == "" {
		return errors.New("greeting fallback is required")
	}

	if len(v.Steps) != StepCount {
		return fmt.Errorf("expected %d steps, got %d", StepCount, len(v.Steps))
	}
	for i, step := range v.Steps {
		if !icons.Known(step.Icon) {
			return fmt.Errorf("step %d: unknown icon %q (known: %s)", i+1, step.Icon, strings.Join(icons.Names(), ", "))
		}
		if strings.TrimSpace(step.Title) == "" {
			return fmt.Errorf("step %d: title is required", i+1)
		}
	}

	if err := validateCTAURL(v.CTA.URL); err != nil {
		return fmt.Errorf("cta: %w", err)
	}
	if strings.TrimSpace(v.CTA.Label) == "" {
		return errors.New("cta: label is required")
	}

	for name := range v.Theme.Tokens {
		if !strings.HasPrefix(name, "--") || len(name) == 2 {
			return fmt.Errorf("theme token %q must be a CSS custom property", name)
		}
	}
	return nil
}

func validateCTAURL(raw string) error {
	parsed, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return fmt.Errorf("parse url: %w", err)
	}
	if parsed.Scheme != "https" || parsed.Host == "" {
		return fmt.Errorf("url %q must be absolute https", raw)
	}
	return nil
}
