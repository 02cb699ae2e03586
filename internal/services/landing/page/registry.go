package page

import (
	"errors"
	"fmt"
	"strings"
)

// Registry indexes validated variants by id and route. It is read-only after
// construction and safe for concurrent use.
type Registry struct {
	variants  []Variant
	byID      map[string]int
	byRoute   map[string]int
	defaultID string
}

// NewRegistry indexes variants and selects defaultID as the variant served at
// the site root.
func NewRegistry(variants []Variant, defaultID string) (*Registry, error) {
	if len(variants) == 0 {
		return nil, errors.New("at least one variant is required")
	}
	reg := &Registry{
		variants: make([]Variant, 0, len(variants)),
		byID:     make(map[string]int, len(variants)),
		byRoute:  make(map[string]int, len(variants)),
	}
	for _, v := range variants {
		if err := v.Validate(); err != nil {
			return nil, fmt.Errorf("variant %q: %w", v.ID, err)
		}
		if _, exists := reg.byID[v.ID]; exists {
			return nil, fmt.Errorf("duplicate variant id %q", v.ID)
		}
		if v.Route == "" {
			return nil, fmt.Errorf("variant %q: route is required", v.ID)
		}
		if _, exists := reg.byRoute[v.Route]; exists {
			return nil, fmt.Errorf("variant %q duplicates route %q", v.ID, v.Route)
		}
		reg.byID[v.ID] = len(reg.variants)
		reg.byRoute[v.Route] = len(reg.variants)
		reg.variants = append(reg.variants, v)
	}

	defaultID = strings.TrimSpace(defaultID)
	if defaultID == "" {
		defaultID = reg.variants[0].ID
	}
	if _, ok := reg.Lookup(defaultID); !ok {
		return nil, fmt.Errorf("default variant %q is not defined", defaultID)
	}
	reg.defaultID = defaultID
	return reg, nil
}

// Default returns the variant served at the site root.
func (r *Registry) Default() Variant {
	v, _ := r.Lookup(r.defaultID)
	return v
}

// Lookup returns the variant with the given id.
func (r *Registry) Lookup(id string) (Variant, bool) {
	idx, ok := r.byID[strings.TrimSpace(id)]
	if !ok {
		return Variant{}, false
	}
	return r.variants[idx], true
}

// ByRoute returns the variant mounted at route.
func (r *Registry) ByRoute(route string) (Variant, bool) {
	idx, ok := r.byRoute[strings.Trim(strings.TrimSpace(route), "/")]
	if !ok {
		return Variant{}, false
	}
	return r.variants[idx], true
}

// All returns the variants in load order.
func (r *Registry) All() []Variant {
	out := make([]Variant, len(r.variants))
	copy(out, r.variants)
	return out
}
