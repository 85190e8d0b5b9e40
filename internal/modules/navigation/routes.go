package navigation

import (
	"strings"

	"eventbooking/internal/domain"
)

const (
	RouteHome         = "home"
	RouteEvents       = "events"
	RouteFireLogin    = "FireLogin"
	RouteFireRegister = "FireRegister"
	RouteAdmin        = "admin"

	catchAll = "*"

	maxRedirects = 5
)

// Route is one record of the front-end router. A record with RedirectTo set
// renders nothing and forwards to the named route.
type Route struct {
	Path         string
	Name         string
	RequiresAuth bool
	Roles        []domain.UserRole
	RedirectTo   string
}

// DefaultRoutes mirrors the SPA router, in matching order.
var DefaultRoutes = []Route{
	{Path: "/", Name: RouteHome},
	{Path: "/events", Name: RouteEvents},
	{Path: "/FireLogin", Name: RouteFireLogin},
	{Path: "/FireRegister", Name: RouteFireRegister},
	{Path: "/admin", Name: RouteAdmin, RequiresAuth: true, Roles: []domain.UserRole{domain.RoleAdmin}},

	{Path: "/Firelogin", RedirectTo: RouteFireLogin},
	{Path: catchAll, RedirectTo: RouteHome},
}

type Table struct {
	routes []Route
	byName map[string]Route
}

func NewTable(routes []Route) *Table {
	byName := make(map[string]Route, len(routes))
	for _, r := range routes {
		if r.Name != "" {
			byName[r.Name] = r
		}
	}
	return &Table{routes: routes, byName: byName}
}

// Match returns the first record whose path equals p, ignoring case and a
// trailing slash.
func (t *Table) Match(p string) (Route, bool) {
	p = normalizePath(p)
	for _, r := range t.routes {
		if r.Path == catchAll || strings.EqualFold(normalizePath(r.Path), p) {
			return r, true
		}
	}
	return Route{}, false
}

func (t *Table) ByName(name string) (Route, bool) {
	r, ok := t.byName[name]
	return r, ok
}

// PathOf returns the path of a named route, or "/" when it is unknown.
func (t *Table) PathOf(name string) string {
	if r, ok := t.byName[name]; ok {
		return r.Path
	}
	return "/"
}

// Lookup matches p and follows redirect records to the route that renders.
// redirected reports whether any redirect record was followed.
func (t *Table) Lookup(p string) (route Route, redirected bool, ok bool) {
	route, ok = t.Match(p)
	for hops := 0; ok && route.RedirectTo != "" && hops < maxRedirects; hops++ {
		route, ok = t.ByName(route.RedirectTo)
		redirected = true
	}
	if ok && route.RedirectTo != "" {
		return Route{}, redirected, false
	}
	return route, redirected, ok
}

func normalizePath(p string) string {
	p = strings.TrimSpace(p)
	if i := strings.IndexAny(p, "?#"); i >= 0 {
		p = p[:i]
	}
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	if len(p) > 1 {
		p = strings.TrimRight(p, "/")
		if p == "" {
			p = "/"
		}
	}
	return p
}
