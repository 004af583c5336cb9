package router_test

import (
	"context"
	"testing"

	"github.com/jrsteele09/go-storefront-client/router"
	"github.com/jrsteele09/go-storefront-client/sessions"
	fakesessionrepo "github.com/jrsteele09/go-storefront-client/sessions/repofakes"
	"github.com/jrsteele09/go-storefront-client/users"
	"github.com/stretchr/testify/require"
)

type sessionState int

const (
	anonymous sessionState = iota
	client
	admin
	tokenWithBrokenUser
)

func newGuard(t *testing.T, state sessionState) *router.Guard {
	t.Helper()
	ctx := context.Background()
	storage := fakesessionrepo.NewFakeStorage()
	store := sessions.NewStore(storage)

	switch state {
	case client:
		require.NoError(t, store.Save(ctx, "T-client", &users.User{ID: "u-1", Role: users.RoleClient}))
	case admin:
		require.NoError(t, store.Save(ctx, "T-admin", &users.User{ID: "u-2", Role: users.RoleAdmin}))
	case tokenWithBrokenUser:
		storage.Put(sessions.KeyToken, "T-broken")
		storage.Put(sessions.KeyUser, "not json")
	}
	return router.NewGuard(router.NewTable(router.DefaultRoutes()), store)
}

func TestGuard_Evaluate(t *testing.T) {
	tests := []struct {
		name     string
		state    sessionState
		path     string
		allow    bool
		redirect string
		reason   router.Reason
	}{
		{"public page anonymous", anonymous, router.RouteServices, true, "", router.ReasonAllowed},
		{"home anonymous", anonymous, router.RouteHome, true, "", router.ReasonAllowed},
		{"unknown page anonymous", anonymous, "/does-not-exist", true, "", router.ReasonAllowed},
		{"cart anonymous", anonymous, router.RouteCart, false, router.RouteLogin, router.ReasonAuthRequired},
		{"checkout anonymous", anonymous, router.RouteCheckout, false, router.RouteLogin, router.ReasonAuthRequired},
		{"cart client", client, router.RouteCart, true, "", router.ReasonAllowed},
		{"admin anonymous goes to login", anonymous, router.RouteAdminDashboard, false, router.RouteLogin, router.ReasonAdminAuthRequired},
		{"admin client goes home", client, router.RouteAdminDashboard, false, router.RouteHome, router.ReasonNotAdmin},
		{"admin admin", admin, router.RouteAdminDashboard, true, "", router.ReasonAllowed},
		{"unlisted admin path client", client, "/admin/users", false, router.RouteHome, router.ReasonNotAdmin},
		{"unlisted admin path anonymous", anonymous, "/admin/users", false, router.RouteLogin, router.ReasonAdminAuthRequired},
		{"admin path with broken user", tokenWithBrokenUser, router.RouteAdminDashboard, false, router.RouteHome, router.ReasonNotAdmin},
		{"protected page with broken user", tokenWithBrokenUser, router.RouteOrders, true, "", router.ReasonAllowed},
		{"query string ignored", anonymous, "/cart?from=menu", false, router.RouteLogin, router.ReasonAuthRequired},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := newGuard(t, tt.state).Evaluate(context.Background(), tt.path)
			require.Equal(t, tt.allow, d.Allow)
			require.Equal(t, tt.redirect, d.Redirect)
			require.Equal(t, tt.reason, d.Reason)
		})
	}
}

type panickingReader struct{}

func (panickingReader) Current(context.Context) sessions.Session {
	panic("storage exploded")
}

func TestGuard_NeverPanics(t *testing.T) {
	g := router.NewGuard(router.NewTable(router.DefaultRoutes()), panickingReader{})

	var d router.Decision
	require.NotPanics(t, func() {
		d = g.Evaluate(context.Background(), router.RouteCart)
	})
	require.False(t, d.Allow)
	require.Equal(t, router.RouteLogin, d.Redirect)
	require.Equal(t, router.ReasonGuardFailure, d.Reason)
}

func TestGuard_NestedRoutesInheritAuth(t *testing.T) {
	routes := []router.Route{
		{Path: "/account", Name: "Account", RequiresAuth: true, Children: []router.Route{
			{Path: "orders", Name: "AccountOrders"},
			{Path: "orders/:id", Name: "AccountOrder"},
		}},
		{Path: "/shop", Name: "Shop", Children: []router.Route{
			{Path: "basket", Name: "Basket", RequiresAuth: true},
			{Path: ":slug", Name: "Product"},
		}},
	}
	store := sessions.NewStore(fakesessionrepo.NewFakeStorage())
	g := router.NewGuard(router.NewTable(routes), store)
	ctx := context.Background()

	require.Equal(t, router.RouteLogin, g.Evaluate(ctx, "/account/orders").Redirect)
	require.Equal(t, router.RouteLogin, g.Evaluate(ctx, "/account/orders/42").Redirect)
	require.Equal(t, router.RouteLogin, g.Evaluate(ctx, "/shop/basket").Redirect)
	require.True(t, g.Evaluate(ctx, "/shop/some-product").Allow)
	require.True(t, g.Evaluate(ctx, "/shop").Allow)
}
