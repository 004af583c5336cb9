package router

// Route path constants
// All client routes are defined here to keep the guard and the table in step
const (
	// Public pages
	RouteHome           = "/"
	RouteServices       = "/servicios"
	RouteAbout          = "/sobre-nosotros"
	RouteLogin          = "/login"
	RouteRegister       = "/register"
	RouteForgotPassword = "/forgotpassword"
	RouteVerifyCode     = "/verify-code"

	// Pages that need a session
	RouteCart         = "/cart"
	RouteOrders       = "/mis-compras"
	RouteEditProfile  = "/editar-perfil"
	RouteCheckout     = "/checkout"
	RouteConfirmation = "/confirmacion"

	// Admin pages
	RouteAdminDashboard = "/admin_dashboard"

	// AdminPrefix gates every path that starts with it, whether or not it
	// appears in the route table.
	AdminPrefix = "/admin"
)
