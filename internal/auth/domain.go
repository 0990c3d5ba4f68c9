package auth

import "time"

// Roles recognized by the application. Admins manage products, resellers
// record transactions.
const (
	RoleAdmin    = "admin"
	RoleReseller = "reseller"
)

// User represents an authenticated user account.
type User struct {
	ID           string
	Email        string
	FullName     string
	PasswordHash string
	Role         string
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
