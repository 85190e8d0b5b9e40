package navigation

import (
	"context"

	"github.com/samber/lo"

	"eventbooking/internal/pkg/logger"
)

type Resolver struct {
	table *Table
	users UserRepository
}

func NewResolver(table *Table, users UserRepository) *Resolver {
	return &Resolver{table: table, users: users}
}

// Resolve decides whether uid ("" for an anonymous visitor) may render path.
// Denials redirect to the login route when a user is needed and to home
// when the user's role is not allowed or cannot be read.
func (r *Resolver) Resolve(ctx context.Context, path, uid string) Decision {
	d := Decision{Path: normalizePath(path)}

	route, redirected, ok := r.table.Lookup(d.Path)
	if !ok {
		return r.deny(d, RouteHome)
	}
	d.Route = route.Name

	if target := r.guard(ctx, route, uid); target != "" {
		return r.deny(d, target)
	}
	if redirected {
		return r.deny(d, route.Name)
	}

	d.Allowed = true
	return d
}

// Allow adapts Resolve to the page guard middleware.
func (r *Resolver) Allow(ctx context.Context, path, uid string) (string, bool) {
	d := r.Resolve(ctx, path, uid)
	return d.RedirectPath, d.Allowed
}

func (r *Resolver) guard(ctx context.Context, route Route, uid string) string {
	if route.RequiresAuth && uid == "" {
		return RouteFireLogin
	}
	if len(route.Roles) == 0 {
		return ""
	}
	if uid == "" {
		return RouteFireLogin
	}

	user, err := r.users.GetByUID(ctx, uid)
	if err != nil {
		logger.FromContext(ctx).Warn("role lookup failed",
			"uid", uid,
			"route", route.Name,
			logger.Err(err),
		)
		return RouteHome
	}
	if !lo.Contains(route.Roles, user.EffectiveRole()) {
		return RouteHome
	}
	return ""
}

func (r *Resolver) deny(d Decision, target string) Decision {
	d.Allowed = false
	d.Redirect = target
	d.RedirectPath = r.table.PathOf(target)
	return d
}
