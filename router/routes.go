package router

import (
	"net/url"
	"strings"
)

// Route is one entry in the navigation table. Child paths without a leading
// slash are relative to their parent. A segment starting with ':' matches any
// single non-empty segment.
type Route struct {
	Path         string
	Name         string
	RequiresAuth bool
	Children     []Route
}

// DefaultRoutes is the storefront's page table.
func DefaultRoutes() []Route {
	return []Route{
		{Path: RouteHome, Name: "Home"},
		{Path: RouteServices, Name: "Services"},
		{Path: RouteAbout, Name: "About"},
		{Path: RouteLogin, Name: "Login"},
		{Path: RouteRegister, Name: "Register"},
		{Path: RouteForgotPassword, Name: "ForgotPassword"},
		{Path: RouteVerifyCode, Name: "VerifyResetCode"},
		{Path: RouteCart, Name: "Cart", RequiresAuth: true},
		{Path: RouteOrders, Name: "Orders", RequiresAuth: true},
		{Path: RouteAdminDashboard, Name: "AdminDashboard"},
		{Path: RouteEditProfile, Name: "EditProfile", RequiresAuth: true},
		{Path: RouteCheckout, Name: "Checkout", RequiresAuth: true},
		{Path: RouteConfirmation, Name: "Confirmation", RequiresAuth: true},
	}
}

// IsAdminPath reports whether path falls under the admin prefix. This is a
// plain string prefix test, so "/admin_dashboard" qualifies.
func IsAdminPath(path string) bool {
	return strings.HasPrefix(NormalizePath(path), AdminPrefix)
}

// NormalizePath drops query and fragment, ensures a leading slash and
// removes a trailing one.
func NormalizePath(path string) string {
	if u, err := url.Parse(path); err == nil {
		path = u.Path
	} else if i := strings.IndexAny(path, "?#"); i >= 0 {
		path = path[:i]
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	if len(path) > 1 {
		path = strings.TrimRight(path, "/")
		if path == "" {
			path = "/"
		}
	}
	return path
}

// Table resolves paths against a route tree.
type Table struct {
	routes []Route
}

func NewTable(routes []Route) *Table {
	return &Table{routes: routes}
}

// Match returns the chain of routes from the top-level ancestor down to the
// route matching path, or nil when nothing matches.
func (t *Table) Match(path string) []Route {
	target := splitPath(NormalizePath(path))
	for _, r := range t.routes {
		if chain := matchRoute(r, "", target); chain != nil {
			return chain
		}
	}
	return nil
}

// RequiresAuth reports whether the matched route or any ancestor requires a
// session.
func (t *Table) RequiresAuth(path string) bool {
	for _, r := range t.Match(path) {
		if r.RequiresAuth {
			return true
		}
	}
	return false
}

func matchRoute(r Route, parent string, target []string) []Route {
	full := joinPath(parent, r.Path)
	if segmentsMatch(splitPath(full), target) {
		return []Route{r}
	}
	for _, child := range r.Children {
		if chain := matchRoute(child, full, target); chain != nil {
			return append([]Route{r}, chain...)
		}
	}
	return nil
}

func joinPath(parent, path string) string {
	if strings.HasPrefix(path, "/") || parent == "" {
		return NormalizePath(path)
	}
	return NormalizePath(strings.TrimRight(parent, "/") + "/" + path)
}

func splitPath(path string) []string {
	trimmed := strings.Trim(path, "/")
	if trimmed == "" {
		return nil
	}
	return strings.Split(trimmed, "/")
}

func segmentsMatch(pattern, target []string) bool {
	if len(pattern) != len(target) {
		return false
	}
	for i, seg := range pattern {
		if strings.HasPrefix(seg, ":") {
			if target[i] == "" {
				return false
			}
			continue
		}
		if seg != target[i] {
			return false
		}
	}
	return true
}
