// Package assets serves the embedded stylesheet.
package assets

import (
	"io/fs"
	"net/http"

	"github.com/aceleraclinicas/landing/internal/services/landing/module"
	"github.com/aceleraclinicas/landing/internal/services/landing/routepath"
	"github.com/aceleraclinicas/landing/internal/services/landing/static"
)

// Module mounts static files under routepath.StaticPrefix.
type Module struct {
	files fs.FS
}

// New returns the assets module over the embedded files.
func New() Module {
	return Module{files: static.FS}
}

// ID returns a stable module identifier.
func (Module) ID() string { return "assets" }

// Mount returns the module handler. Only GET and HEAD are served.
func (m Module) Mount() (module.Mount, error) {
	files := m.files
	if files == nil {
		files = static.FS
	}
	server := http.StripPrefix(routepath.StaticPrefix, http.FileServer(http.FS(files)))
	mux := http.NewServeMux()
	mux.Handle("GET "+routepath.StaticPrefix, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Cache-Control", "public, max-age=3600")
		server.ServeHTTP(w, r)
	}))
	return module.Mount{Prefix: routepath.StaticPrefix, Handler: mux}, nil
}
