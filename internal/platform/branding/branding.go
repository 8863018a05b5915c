// Package branding holds the fixed identity of the school site.
package branding

import "golang.org/x/text/language"

// SiteName is the school name used in page titles.
const SiteName = "Lycée Saint Jean"

// Language is the only language the site is published in.
var Language = language.French
