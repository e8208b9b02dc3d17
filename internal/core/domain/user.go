package domain

import "fmt"

// UserRole defines the access level of a staff user.
type UserRole string

const (
	RoleOwner   UserRole = "OWNER"
	RoleManager UserRole = "MANAGER"
)

// ParseUserRole validates a raw role string against the closed set.
func ParseUserRole(raw string) (UserRole, error) {
	switch UserRole(raw) {
	case RoleOwner, RoleManager:
		return UserRole(raw), nil
	default:
		return "", fmt.Errorf("unknown user role %q", raw)
	}
}

// User represents a staff user of the rental business (owner or manager).
type User struct {
	UserID       string   `json:"userID"` // Primary Key (UUID)
	Name         string   `json:"name"`
	Email        string   `json:"email"` // Unique, used for login
	PasswordHash string   `json:"-"`
	Role         UserRole `json:"role"`
	AuditFields
}
