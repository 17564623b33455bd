package rest

const (
	// api
	RouteApi = "/api"

	// auth
	RouteAuth     = RouteApi + "/auth"
	RouteRegister = RouteAuth + "/register"
	RouteLogin    = RouteAuth + "/login"

	// sales
	RouteSales = RouteApi + "/sales"
	RouteSale  = RouteSales + "/:sale_id"

	// ops
	RouteHealth  = RouteApi + "/healthz"
	RouteMetrics = RouteApi + "/metrics"
)
