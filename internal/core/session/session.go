package session

// Role identifies what a session is allowed to do.
type Role string

const (
	// RoleAdmin may create orders, run the optimizer and assign drivers.
	RoleAdmin Role = "admin"
	// RoleDriver may only view assignments bound to their own driver ID.
	RoleDriver Role = "driver"
)

// Valid reports whether r is a known role.
func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleDriver
}

// Session is the resolved identity of the caller. It is built by the
// middleware from request headers and passed explicitly to every service
// that needs role gating; there is no ambient current-user state.
type Session struct {
	// UserID is the identity provider's subject, or the demo driver ID
	// ("D001") when DemoMode is set and no ID was supplied.
	UserID string `json:"user_id"`
	// Role gates which operations are permitted.
	Role Role `json:"role"`
	// DemoMode marks a session that bypassed the identity provider.
	DemoMode bool `json:"demo_mode"`
}

// IsAdmin reports whether the session may perform admin-only operations.
func (s Session) IsAdmin() bool {
	return s.Role == RoleAdmin
}
