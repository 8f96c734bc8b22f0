// Package routerhelper adds a path-prefixed convenience layer on top of
// httprouter.Router, so each controller can register its routes without
// repeating its own mount point.
package routerhelper

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
)

// RouteGroup binds every route registered through it under prefix.
type RouteGroup struct {
	router *httprouter.Router
	prefix string
}

// NewRouteGroup wraps router, prefixing every route registered through the
// returned group with prefix.
func NewRouteGroup(router *httprouter.Router, prefix string) *RouteGroup {
	return &RouteGroup{router: router, prefix: prefix}
}

func (g *RouteGroup) path(p string) string {
	return g.prefix + p
}

// GET registers a GET handler under prefix+path.
func (g *RouteGroup) GET(path string, handle httprouter.Handle) {
	g.router.GET(g.path(path), handle)
}

// POST registers a POST handler under prefix+path.
func (g *RouteGroup) POST(path string, handle httprouter.Handle) {
	g.router.POST(g.path(path), handle)
}

// PUT registers a PUT handler under prefix+path.
func (g *RouteGroup) PUT(path string, handle httprouter.Handle) {
	g.router.PUT(g.path(path), handle)
}

// DELETE registers a DELETE handler under prefix+path.
func (g *RouteGroup) DELETE(path string, handle httprouter.Handle) {
	g.router.DELETE(g.path(path), handle)
}

// Group returns a further-nested group under prefix+subPrefix.
func (g *RouteGroup) Group(subPrefix string) *RouteGroup {
	return NewRouteGroup(g.router, g.path(subPrefix))
}

// Handler returns the underlying router as an http.Handler, for mounting
// under middleware chains.
func (g *RouteGroup) Handler() http.Handler {
	return g.router
}
