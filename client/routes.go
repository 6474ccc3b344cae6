package client

import "strings"

// Route path constants, relative to the configured API base
const (
	// Auth Routes
	RouteAuthLogin          = "/auth/login"
	RouteAuthRegister       = "/auth/register"
	RouteAuthRefresh        = "/auth/refresh"
	RouteAuthLogout         = "/auth/logout"
	RouteAuthBootstrap      = "/auth/bootstrap"
	RouteAuthActivate       = "/auth/activate"
	RouteAuthMe             = "/auth/me"
	RouteAuthProfile        = "/auth/profile"
	RouteAuthChangePassword = "/auth/change-password"

	// Tenant Routes
	RouteTenants               = "/tenants"
	RouteTenantCurrentSettings = "/tenants/current/settings"
	RouteMyTenants             = "/user-tenants/my-tenants"
	RouteInvitations           = "/invitations"
	RouteInvitationsGenerate   = "/invitations/generate"
	RouteInvitationsValidate   = "/invitations/validate"

	// Resource Routes
	RouteProducts           = "/products"
	RouteOrders             = "/orders"
	RouteCustomers          = "/customers"
	RouteUsers              = "/users"
	RouteCategories         = "/categories"
	RouteInventoryMovements = "/inventory/movements"
	RouteReportsDashboard   = "/reports/dashboard"
	RouteAnalyticsDashboard = "/analytics/dashboard"
)

// credentialRoutes answer 401 for bad credentials, never for an expired session.
var credentialRoutes = []string{
	RouteAuthLogin,
	RouteAuthRegister,
	RouteAuthRefresh,
}

// IsAuthEndpoint reports whether a 401 from path must be returned without a refresh.
func IsAuthEndpoint(path string) bool {
	for _, route := range credentialRoutes {
		if strings.HasPrefix(path, route) {
			return true
		}
	}
	return false
}
