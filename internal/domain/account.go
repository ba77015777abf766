package domain

import "time"

// AccountRole enumerates directory permission levels.
type AccountRole string

const (
	AccountRoleViewer AccountRole = "VIEWER"
	AccountRoleEditor AccountRole = "EDITOR"
)

// AccountStatus represents lifecycle states for an account.
type AccountStatus string

const (
	AccountStatusActive    AccountStatus = "ACTIVE"
	AccountStatusSuspended AccountStatus = "SUSPENDED"
)

// Account is the domain model for signed-up directory users.
type Account struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
	Role         AccountRole
	Status       AccountStatus
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Editor reports whether the account holds the editor capability.
func (a *Account) Editor() bool {
	return a != nil && a.Role == AccountRoleEditor
}
