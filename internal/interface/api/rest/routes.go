package rest

const (
	// api
	RouteApiV1 = "/api/v1"

	// auth
	RouteAuth           = RouteApiV1 + "/auth"
	RouteRegister       = RouteAuth + "/register"
	RouteLogin          = RouteAuth + "/login"
	RouteLogout         = RouteAuth + "/logout"
	RouteMe             = RouteAuth + "/me"
	RouteForgotPassword = RouteAuth + "/forgot-password"
	RouteResetPassword  = RouteAuth + "/reset-password"

	// contacts
	RouteContacts = RouteApiV1 + "/contacts"
	RouteContact  = RouteContacts + "/:contact_id"

	// postal directory proxy
	RouteAddresses     = RouteApiV1 + "/addresses"
	RouteAddressSearch = RouteAddresses + "/search"
	RouteAddressCEP    = RouteAddresses + "/:cep"

	// account
	RouteAccount = RouteApiV1 + "/account"

	// ops
	RouteHealth  = RouteApiV1 + "/healthz"
	RouteMetrics = RouteApiV1 + "/metrics"
)
