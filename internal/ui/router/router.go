// Package router maps client paths to page factories.
package router

import (
	"net/url"
	"path"
	"strings"

	"github.com/tmosimanyana/moofar.site/internal/ui/pages"
)

// Factory builds a fresh page instance for a matched path.
type Factory func() pages.Page

// Route is one entry of the client route table.
type Route struct {
	Path  string
	Name  string
	Build Factory
}

// Router resolves paths against a fixed route table.
type Router struct {
	routes []Route
	byPath map[string]int
}

// New builds a router over routes. Later duplicates of a path are ignored.
func New(routes []Route) *Router {
	r := &Router{byPath: make(map[string]int, len(routes))}
	for _, rt := range routes {
		p := Normalize(rt.Path)
		if _, dup := r.byPath[p]; dup {
			continue
		}
		rt.Path = p
		r.byPath[p] = len(r.routes)
		r.routes = append(r.routes, rt)
	}
	return r
}

// Default returns the site route table.
func Default() *Router {
	return New([]Route{
		{Path: "/", Name: "home", Build: func() pages.Page { return pages.NewHome() }},
		{Path: "/about", Name: "about", Build: func() pages.Page { return pages.NewAbout() }},
		{Path: "/services", Name: "services", Build: func() pages.Page { return pages.NewServices() }},
		{Path: "/contact", Name: "contact", Build: func() pages.Page { return pages.NewContact() }},
		{Path: "/integrations", Name: "integrations", Build: func() pages.Page { return pages.NewIntegrations(nil) }},
	})
}

// Routes returns the route table in registration order.
func (r *Router) Routes() []Route {
	out := make([]Route, len(r.routes))
	copy(out, r.routes)
	return out
}

// Match returns the route for raw. ok is false for unmatched paths.
func (r *Router) Match(raw string) (Route, bool) {
	i, ok := r.byPath[Normalize(raw)]
	if !ok {
		return Route{}, false
	}
	return r.routes[i], true
}

// Resolve builds the page for raw, falling back to the not-found page.
func (r *Router) Resolve(raw string) pages.Page {
	if rt, ok := r.Match(raw); ok {
		return rt.Build()
	}
	return pages.NewNotFound(Normalize(raw))
}

// Normalize strips query and fragment, cleans the path and drops a trailing slash.
func Normalize(raw string) string {
	raw = strings.TrimSpace(raw)
	if i := strings.IndexAny(raw, "?#"); i >= 0 {
		raw = raw[:i]
	}
	if strings.Contains(raw, "://") {
		if u, err := url.Parse(raw); err == nil {
			raw = u.Path
		}
	}
	if raw == "" {
		return "/"
	}
	if !strings.HasPrefix(raw, "/") {
		raw = "/" + raw
	}
	return path.Clean(raw)
}
