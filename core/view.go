package core

import "net/http"

// View is what a page handler hands to the renderer: a template identifier
// relative to the templates directory and the data the template reads.
type View struct {
	Template string
	Data     any
}

// ViewFunc builds the View for a single request.
type ViewFunc func(r *http.Request) (View, error)

// Route binds a URL path to a ViewFunc. Name is used for the JSON view API
// (/api/<name>). Cacheable routes have their GET output stored in the HTML
// cache when caching is enabled.
type Route struct {
	Path      string
	Name      string
	View      ViewFunc
	Cacheable bool
}
