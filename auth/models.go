package auth

import "time"

// AdminUser is the domain representation of a dashboard administrator.
// It mirrors the admin_users table and carries no JSON annotations so the
// HTTP layer decides what to expose (never the password hash).
type AdminUser struct {
	ID           string
	Username     string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// BootstrapRequest carries the credentials for the first admin account.
type BootstrapRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginRequest carries admin login credentials.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}
