// Package module defines the contract between the landing composition root
// and its feature modules.
package module

import "net/http"

// Mount describes where a module's handler is attached.
type Mount struct {
	Prefix  string
	Handler http.Handler
}

// Module is a mountable feature area.
type Module interface {
	ID() string
	Mount() (Mount, error)
}
