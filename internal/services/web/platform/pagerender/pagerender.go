// Package pagerender centralizes full-document page rendering.
package pagerender

import (
	"bytes"
	"context"
	"net/http"
	"strconv"

	"github.com/a-h/templ"
	"github.com/lycee-saint-jean/site/internal/platform/branding"
	webtemplates "github.com/lycee-saint-jean/site/internal/services/web/templates"
	"golang.org/x/text/language"
)

// Page describes a document response.
type Page struct {
	Title      string
	Lang       language.Tag
	StatusCode int
	Body       templ.Component
}

// WritePage renders the page into the document layout and writes it.
//
// The document is fully rendered before any header is sent, so a render
// failure yields a plain 500 rather than a truncated page.
func WritePage(w http.ResponseWriter, r *http.Request, page Page) error {
	if w == nil {
		return nil
	}
	statusCode := page.StatusCode
	if statusCode <= 0 {
		statusCode = http.StatusOK
	}
	body := page.Body
	if body == nil {
		body = templ.NopComponent
	}
	lang := page.Lang
	if lang == language.Und {
		lang = branding.Language
	}

	ctx := context.Background()
	if r != nil {
		ctx = r.Context()
	}
	var rendered bytes.Buffer
	if err := webtemplates.Layout(page.Title, lang.String()).Render(templ.WithChildren(ctx, body), &rendered); err != nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return err
	}

	header := w.Header()
	header.Set("Content-Type", "text/html; charset=utf-8")
	header.Set("Content-Language", lang.String())
	header.Set("Content-Length", strconv.Itoa(rendered.Len()))
	w.WriteHeader(statusCode)
	if r != nil && r.Method == http.MethodHead {
		return nil
	}
	_, err := w.Write(rendered.Bytes())
	return err
}
