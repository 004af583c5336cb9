package router

import (
	"context"

	"github.com/jrsteele09/go-storefront-client/sessions"
	"github.com/rs/zerolog/log"
)

// SessionReader is the part of the session store the guard needs.
type SessionReader interface {
	Current(ctx context.Context) sessions.Session
}

type Reason string

const (
	ReasonAllowed           Reason = "allowed"
	ReasonAuthRequired      Reason = "auth_required"       // route needs a session, none stored
	ReasonAdminAuthRequired Reason = "admin_auth_required" // admin path, no session
	ReasonNotAdmin          Reason = "not_admin"           // admin path, session without admin role
	ReasonGuardFailure      Reason = "guard_failure"
)

// Decision is the outcome of evaluating one navigation.
type Decision struct {
	Allow    bool
	Redirect string // Set when Allow is false
	Reason   Reason
}

func allow() Decision {
	return Decision{Allow: true, Reason: ReasonAllowed}
}

func redirect(to string, reason Reason) Decision {
	return Decision{Redirect: to, Reason: reason}
}

// Guard decides whether a navigation may proceed. The checks run in a fixed
// order: route authentication, then admin authentication, then admin role.
// An anonymous visitor on an admin path is therefore sent to login, never home.
type Guard struct {
	table     *Table
	sessions  SessionReader
	loginPath string
	homePath  string
}

func NewGuard(table *Table, sessions SessionReader) *Guard {
	return &Guard{
		table:     table,
		sessions:  sessions,
		loginPath: RouteLogin,
		homePath:  RouteHome,
	}
}

// Evaluate always returns a decision. If anything panics while reading the
// session the navigation is sent to login.
func (g *Guard) Evaluate(ctx context.Context, path string) (d Decision) {
	defer func() {
		if r := recover(); r != nil {
			log.Error().Interface("panic", r).Str("path", path).Msg("route guard recovered")
			d = redirect(g.loginPath, ReasonGuardFailure)
		}
	}()

	session := g.sessions.Current(ctx)
	adminPath := IsAdminPath(path)

	switch {
	case g.table.RequiresAuth(path) && !session.Authenticated():
		return redirect(g.loginPath, ReasonAuthRequired)
	case adminPath && !session.Authenticated():
		return redirect(g.loginPath, ReasonAdminAuthRequired)
	case adminPath && !session.IsAdmin():
		return redirect(g.homePath, ReasonNotAdmin)
	}
	return allow()
}
