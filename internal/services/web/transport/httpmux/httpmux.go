package httpmux

import (
	"io/fs"
	"net/http"
	"strings"

	"github.com/lycee-saint-jean/site/internal/services/web/routepath"
)

// MountStatic wires the static asset route into the root mux. Directory
// paths are not listed.
func MountStatic(rootMux *http.ServeMux, staticFS fs.FS, withStaticMime func(http.Handler) http.Handler) {
	if rootMux == nil || staticFS == nil {
		return
	}
	var staticHandler http.Handler = http.StripPrefix(routepath.StaticPrefix, http.FileServer(http.FS(staticFS)))
	if withStaticMime != nil {
		staticHandler = withStaticMime(staticHandler)
	}
	rootMux.Handle(routepath.StaticPrefix, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.HasSuffix(r.URL.Path, "/") {
			http.NotFound(w, r)
			return
		}
		staticHandler.ServeHTTP(w, r)
	}))
}
