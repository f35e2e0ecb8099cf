// Package entity contains the core business objects of the project.
package entity

// Role is the kind of web account a chat identity is linked as.
type Role string

const (
	// RoleUser indicates a regular user role.
	RoleUser Role = "user"
	// RoleMerchant indicates a merchant role.
	RoleMerchant Role = "merchant"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleUser, RoleMerchant:
		return true
	default:
		return false
	}
}

// DefaultRole returns the role a flow links as when the caller does not name one.
func (f FlowKind) DefaultRole() Role {
	if f == FlowMerchant {
		return RoleMerchant
	}

	return RoleUser
}
