package templates

import (
	"context"
	"io"
	"strings"

	"github.com/a-h/templ"
	"github.com/lycee-saint-jean/site/internal/platform/branding"
	"github.com/lycee-saint-jean/site/internal/services/web/routepath"
)

// ComposePageTitle appends the site name to a page title. An empty title or
// one that already names the site is returned as the bare site name.
func ComposePageTitle(title string) string {
	title = strings.TrimSpace(title)
	if title == "" || title == branding.SiteName {
		return branding.SiteName
	}
	if strings.HasSuffix(title, "| "+branding.SiteName) {
		return title
	}
	return title + " | " + branding.SiteName
}

// Layout wraps the children in the full HTML document shell.
func Layout(title string, lang string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		children := templ.GetChildren(ctx)
		if children == nil {
			children = templ.NopComponent
		}
		ctx = templ.ClearChildren(ctx)

		docLang := strings.TrimSpace(lang)
		if docLang == "" {
			docLang = branding.Language.String()
		}
		head := `<!doctype html><html lang="` + templ.EscapeString(docLang) + `"><head>` +
			`<meta charset="utf-8">` +
			`<meta name="viewport" content="width=device-width, initial-scale=1">` +
			`<title>` + templ.EscapeString(ComposePageTitle(title)) + `</title>` +
			`<link rel="stylesheet" href="` + routepath.Stylesheet + `">` +
			`</head><body>`
		if _, err := io.WriteString(w, head); err != nil {
			return err
		}
		if err := children.Render(ctx, w); err != nil {
			return err
		}
		_, err := io.WriteString(w, `</body></html>`)
		return err
	})
}
