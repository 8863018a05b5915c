package static

import "embed"

// FS exposes the site stylesheet for HTTP serving.
//
//go:embed *.css
var FS embed.FS
