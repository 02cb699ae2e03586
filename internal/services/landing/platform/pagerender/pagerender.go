// Package pagerender writes full HTML documents for landing handlers.
package pagerender

import (
	"bytes"
	"net/http"

	"github.com/a-h/templ"
	"github.com/aceleraclinicas/landing/internal/services/landing/platform/httpx"
	"github.com/aceleraclinicas/landing/internal/services/landing/templates"
)

// WritePage renders body inside the document layout and writes it with status.
// The document is rendered into a buffer first; on failure the client gets a
// bare 500 and the error is returned to the caller for logging.
func WritePage(w http.ResponseWriter, r *http.Request, meta templates.DocumentMeta, status int, body templ.Component) error {
	if w == nil {
		return nil
	}
	if body == nil {
		body = templ.NopComponent
	}
	ctx := templ.WithChildren(httpx.RequestContext(r), body)
	var buf bytes.Buffer
	if err := templates.Document(meta).Render(ctx, &buf); err != nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return err
	}
	if status == 0 {
		status = http.StatusOK
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if r != nil && r.Method == http.MethodHead {
		return nil
	}
	_, err := buf.WriteTo(w)
	return err
}
