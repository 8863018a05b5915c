// Package routepath stores canonical HTTP paths for the site.
package routepath

const (
	Root         = "/"
	StaticPrefix = "/static/"
	Stylesheet   = StaticPrefix + "site.css"
)
