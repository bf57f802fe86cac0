package domain

import (
	"fmt"
	"strings"
	"time"
)

// Role is the closed set of access levels a user can hold.
type Role int

const (
	RoleCustomer Role = iota
	RoleManager
	RoleAdmin
)

var roleNames = map[Role]string{
	RoleCustomer: "customer",
	RoleManager:  "manager",
	RoleAdmin:    "admin",
}

func (r Role) String() string {
	if name, ok := roleNames[r]; ok {
		return name
	}
	return fmt.Sprintf("role(%d)", int(r))
}

// Valid reports whether r is one of the declared roles.
func (r Role) Valid() bool {
	_, ok := roleNames[r]
	return ok
}

// Allows reports whether a holder of r may act with the required role.
// Admin implies every role.
func (r Role) Allows(required Role) bool {
	return r == RoleAdmin || r == required
}

// ParseRole converts a stored or user-supplied role name into a Role.
// An empty string yields the default role.
func ParseRole(s string) (Role, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	if name == "" {
		return RoleCustomer, nil
	}
	for r, n := range roleNames {
		if n == name {
			return r, nil
		}
	}
	return RoleCustomer, fmt.Errorf("%w: %q", ErrInvalidRole, s)
}

// User models an authenticated actor in the system.
type User struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Password  string    `json:"-"`
	Role      Role      `json:"role"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CheckAuthenticated fails when no user was resolved for the request.
func CheckAuthenticated(u *User) error {
	if u == nil {
		return ErrUnauthenticated
	}
	return nil
}

// CheckRole fails when there is no user, or the user's role does not allow
// the required one. The nil check is repeated here so the predicate is safe
// on its own, without CheckAuthenticated in front of it.
func CheckRole(u *User, required Role) error {
	if u == nil {
		return ErrUnauthenticated
	}
	if !u.Role.Allows(required) {
		return &RoleError{Required: required, Actual: u.Role}
	}
	return nil
}
