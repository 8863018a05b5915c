package templates

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

// Fixed copy of the landing screen.
const (
	HomeHeading = "Lycée Saint Jean - Bienvenue !"
	HomeWelcome = "Ceci est la page d'accueil de votre projet Next.js + Tailwind CSS."
)

// homeMarkup is written verbatim; the copy is constant and holds no markup
// characters, so it is emitted the way templ emits static text.
const homeMarkup = `<main class="flex min-h-screen flex-col items-center justify-center bg-gray-100">` +
	`<h1 class="text-4xl font-bold text-blue-600 mb-4">` + HomeHeading + `</h1>` +
	`<p class="text-lg text-gray-700">` + HomeWelcome + `</p>` +
	`</main>`

// HomePage renders the centered welcome screen. It takes no input and always
// produces the same bytes.
func HomePage() templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := io.WriteString(w, homeMarkup)
		return err
	})
}
