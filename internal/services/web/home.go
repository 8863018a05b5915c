package web

import (
	"log"
	"net/http"

	"github.com/lycee-saint-jean/site/internal/platform/branding"
	"github.com/lycee-saint-jean/site/internal/services/web/platform/pagerender"
	"github.com/lycee-saint-jean/site/internal/services/web/routepath"
	webtemplates "github.com/lycee-saint-jean/site/internal/services/web/templates"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const homeSpanName = "web.home"

// handleHome renders the landing page. Every other path under the root
// pattern is a 404.
func (h *handler) handleHome(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != routepath.Root {
		http.NotFound(w, r)
		return
	}
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		w.Header().Set("Allow", "GET, HEAD")
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	ctx, span := h.tracer.Start(r.Context(), homeSpanName,
		trace.WithSpanKind(trace.SpanKindServer),
		trace.WithAttributes(
			attribute.String("http.request.method", r.Method),
			attribute.String("http.route", routepath.Root),
		),
	)
	defer span.End()

	err := pagerender.WritePage(w, r.WithContext(ctx), pagerender.Page{
		Title: branding.SiteName,
		Lang:  branding.Language,
		Body:  webtemplates.HomePage(),
	})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "render home page")
		log.Printf("render home page: %v", err)
	}
}
