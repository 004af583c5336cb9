package router_test

import (
	"testing"

	"github.com/jrsteele09/go-storefront-client/router"
	"github.com/stretchr/testify/require"
)

func TestNormalizePath(t *testing.T) {
	tests := map[string]string{
		"":                "/",
		"/":               "/",
		"cart":            "/cart",
		"/cart/":          "/cart",
		"/cart?x=1":       "/cart",
		"/checkout#step2": "/checkout",
	}
	for in, want := range tests {
		t.Run(in, func(t *testing.T) {
			require.Equal(t, want, router.NormalizePath(in))
		})
	}
}

func TestIsAdminPath(t *testing.T) {
	require.True(t, router.IsAdminPath("/admin_dashboard"))
	require.True(t, router.IsAdminPath("/admin"))
	require.True(t, router.IsAdminPath("/admin/settings"))
	require.False(t, router.IsAdminPath("/"))
	require.False(t, router.IsAdminPath("/servicios/admin"))
}

func TestTable_Match(t *testing.T) {
	table := router.NewTable([]router.Route{
		{Path: "/account", Name: "Account", Children: []router.Route{
			{Path: "orders/:id", Name: "Order"},
		}},
	})

	chain := table.Match("/account/orders/7")
	require.Len(t, chain, 2)
	require.Equal(t, "Account", chain[0].Name)
	require.Equal(t, "Order", chain[1].Name)

	chain = table.Match("/account")
	require.Len(t, chain, 1)

	require.Nil(t, table.Match("/account/orders"))
	require.Nil(t, table.Match("/nowhere"))
}

func TestDefaultRoutes_AuthRequirements(t *testing.T) {
	table := router.NewTable(router.DefaultRoutes())
	protected := []string{router.RouteCart, router.RouteOrders, router.RouteEditProfile, router.RouteCheckout, router.RouteConfirmation}
	public := []string{router.RouteHome, router.RouteServices, router.RouteAbout, router.RouteLogin, router.RouteRegister,
		router.RouteForgotPassword, router.RouteVerifyCode, router.RouteAdminDashboard}

	for _, p := range protected {
		require.True(t, table.RequiresAuth(p), p)
	}
	for _, p := range public {
		require.False(t, table.RequiresAuth(p), p)
	}
}
