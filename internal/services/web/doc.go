// Package web serves the school landing site.
//
// The site is a single fixed French welcome page plus its stylesheet; there
// is no session, form or data-fetching layer behind it.
package web
