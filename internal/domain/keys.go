package domain

type CtxKey string

const (
	KeyUserID    CtxKey = "UserID"
	KeyUserRole  CtxKey = "Role"
	KeyRequestID CtxKey = "RequestID"
	KeyClientIP  CtxKey = "ClientIP"
)

// Dashboard roles allowed past the session gate
const (
	RoleAdmin      = "admin"
	RoleSuperAdmin = "super_admin"
)

// IsDashboardRole reports whether role may use the dashboard endpoints.
func IsDashboardRole(role string) bool {
	return role == RoleAdmin || role == RoleSuperAdmin
}
