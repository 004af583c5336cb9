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

func newRouter(t *testing.T) (*router.Router, *sessions.Store) {
	t.Helper()
	store := sessions.NewStore(fakesessionrepo.NewFakeStorage())
	g := router.NewGuard(router.NewTable(router.DefaultRoutes()), store)
	return router.New(g), store
}

func TestRouter_Navigate(t *testing.T) {
	ctx := context.Background()
	r, store := newRouter(t)
	require.Equal(t, router.RouteHome, r.Current())

	nav := r.Navigate(ctx, router.RouteServices)
	require.False(t, nav.Redirected)
	require.Equal(t, router.RouteServices, nav.To)
	require.Equal(t, router.RouteHome, nav.From)

	nav = r.Navigate(ctx, router.RouteCart)
	require.True(t, nav.Redirected)
	require.Equal(t, router.RouteCart, nav.Requested)
	require.Equal(t, router.RouteLogin, nav.To)
	require.Equal(t, router.ReasonAuthRequired, nav.Reason)
	require.Equal(t, router.RouteLogin, r.Current())

	require.NoError(t, store.Save(ctx, "T1", &users.User{ID: "u-1", Role: users.RoleClient}))

	nav = r.Navigate(ctx, router.RouteCart)
	require.False(t, nav.Redirected)
	require.Equal(t, router.RouteCart, r.Current())

	nav = r.Navigate(ctx, router.RouteAdminDashboard)
	require.True(t, nav.Redirected)
	require.Equal(t, router.RouteHome, nav.To)

	require.Equal(t, []string{router.RouteHome, router.RouteServices, router.RouteLogin, router.RouteCart}, r.History())
}

func TestRouter_OnNavigate(t *testing.T) {
	ctx := context.Background()
	r, _ := newRouter(t)

	var seen []router.Navigation
	unsubscribe := r.OnNavigate(func(n router.Navigation) {
		seen = append(seen, n)
	})

	r.Navigate(ctx, router.RouteCart)
	require.Len(t, seen, 1)
	require.Equal(t, router.RouteLogin, seen[0].To)

	unsubscribe()
	r.Navigate(ctx, router.RouteAbout)
	require.Len(t, seen, 1)
}

func TestRouter_RedirectLoopIsBounded(t *testing.T) {
	ctx := context.Background()
	routes := []router.Route{
		{Path: router.RouteHome, Name: "Home"},
		{Path: router.RouteLogin, Name: "Login", RequiresAuth: true},
		{Path: "/private", Name: "Private", RequiresAuth: true},
	}
	store := sessions.NewStore(fakesessionrepo.NewFakeStorage())
	r := router.New(router.NewGuard(router.NewTable(routes), store))

	nav := r.Navigate(ctx, "/private")
	require.True(t, nav.Redirected)
	require.Equal(t, router.RouteHome, nav.To)
	require.Equal(t, router.RouteHome, r.Current())
}
