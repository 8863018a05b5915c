package templates

import (
	"context"
	"io"
	"strings"
	"sync"
	"testing"

	"github.com/a-h/templ"
	"golang.org/x/net/html"
)

func TestComposePageTitle(t *testing.T) {
	cases := map[string]string{
		"":                           "Lycée Saint Jean",
		"  ":                         "Lycée Saint Jean",
		"Lycée Saint Jean":           "Lycée Saint Jean",
		"Accueil":                    "Accueil | Lycée Saint Jean",
		"Accueil | Lycée Saint Jean": "Accueil | Lycée Saint Jean",
	}
	for in, want := range cases {
		if got := ComposePageTitle(in); got != want {
			t.Fatalf("ComposePageTitle(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestLayoutWrapsChildrenInDocument(t *testing.T) {
	var b strings.Builder
	ctx := templ.WithChildren(context.Background(), HomePage())
	if err := Layout("", "fr").Render(ctx, &b); err != nil {
		t.Fatalf("Layout() = %v", err)
	}
	got := b.String()
	if !strings.HasPrefix(got, "<!doctype html>") {
		t.Fatalf("expected doctype prefix, got %q", got)
	}
	if !strings.Contains(got, `<html lang="fr">`) {
		t.Fatalf("expected french document language, got %q", got)
	}
	if !strings.Contains(got, `<link rel="stylesheet" href="/static/site.css">`) {
		t.Fatalf("expected stylesheet link, got %q", got)
	}
	if !strings.Contains(got, "<body>"+homeMarkup+"</body>") {
		t.Fatalf("expected home markup inside body, got %q", got)
	}

	doc, err := html.Parse(strings.NewReader(got))
	if err != nil {
		t.Fatalf("parse document: %v", err)
	}
	var titles []string
	walk(doc, func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == "title" {
			titles = append(titles, textOf(n))
		}
	})
	if len(titles) != 1 || titles[0] != "Lycée Saint Jean" {
		t.Fatalf("titles = %v, want [Lycée Saint Jean]", titles)
	}
}

func TestLayoutDefaultsLanguageAndEscapesTitle(t *testing.T) {
	var b strings.Builder
	if err := Layout("<Accueil>", "").Render(context.Background(), &b); err != nil {
		t.Fatalf("Layout() = %v", err)
	}
	got := b.String()
	if !strings.Contains(got, `<html lang="fr">`) {
		t.Fatalf("expected default french language, got %q", got)
	}
	if !strings.Contains(got, "<title>&lt;Accueil&gt; | Lycée Saint Jean</title>") {
		t.Fatalf("expected escaped title, got %q", got)
	}
	if !strings.Contains(got, "<body></body>") {
		t.Fatalf("expected empty body without children, got %q", got)
	}
}

func TestLayoutPropagatesChildError(t *testing.T) {
	boom := templ.ComponentFunc(func(context.Context, io.Writer) error {
		return io.ErrClosedPipe
	})
	ctx := templ.WithChildren(context.Background(), boom)
	if err := Layout("", "").Render(ctx, io.Discard); err != io.ErrClosedPipe {
		t.Fatalf("Layout() = %v, want %v", err, io.ErrClosedPipe)
	}
}

func TestLayoutValueRendersConcurrently(t *testing.T) {
	layout := Layout("Accueil", " ")
	ctx := templ.WithChildren(context.Background(), HomePage())

	var want strings.Builder
	if err := layout.Render(ctx, &want); err != nil {
		t.Fatalf("Layout() = %v", err)
	}

	const renders = 8
	results := make(chan string, renders)
	errs := make(chan error, renders)
	var wg sync.WaitGroup
	for i := 0; i < renders; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			var b strings.Builder
			if err := layout.Render(ctx, &b); err != nil {
				errs <- err
				return
			}
			results <- b.String()
		}()
	}
	wg.Wait()
	close(results)
	close(errs)

	for err := range errs {
		t.Fatalf("concurrent Layout() = %v", err)
	}
	for got := range results {
		if got != want.String() {
			t.Fatalf("concurrent render = %q, want %q", got, want.String())
		}
	}
	if !strings.Contains(want.String(), `<html lang="fr">`) {
		t.Fatalf("expected blank language to default to french, got %q", want.String())
	}
}
