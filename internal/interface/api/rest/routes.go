package rest

const (
	// api
	RouteApiV1 = "/api/v1"

	// auth
	RouteAuth     = RouteApiV1 + "/auth"
	RouteLogin    = RouteAuth + "/login"
	RouteRegister = RouteAuth + "/register"

	// users
	RouteUsers          = RouteApiV1 + "/users"
	RouteUser           = RouteUsers + "/:user_id"
	RouteUserPassword   = RouteUser + "/password"
	RouteUserDeactivate = RouteUser + "/deactivate"
	RouteUserReactivate = RouteUser + "/reactivate"

	// files
	RouteUserFiles = RouteUser + "/files"
	RouteUserFile  = RouteUserFiles + "/:file_id"

	// ops
	RouteHealth  = RouteApiV1 + "/healthz"
	RouteMetrics = RouteApiV1 + "/metrics"
)
