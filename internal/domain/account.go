// internal/domain/account.go
package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal" // For precise monetary calculations
)

// Role defines what an account is entitled to do.
type Role string

const (
	RoleStandard Role = "standard"
	RoleAdmin    Role = "admin"
	// RoleRestricted accounts may read their history but never send transfers.
	RoleRestricted Role = "restricted"
)

// Account holds one balance record per registered user.
type Account struct {
	ID        string          `db:"id" json:"id"`             // Opaque stable identifier, assigned at creation
	Name      string          `db:"name" json:"name"`         // Display name, snapshotted into ledger entries
	Email     string          `db:"email" json:"email"`       // Lookup key for transfers
	Phone     string          `db:"phone" json:"phone"`       // Lookup key for transfers
	Balance   decimal.Decimal `db:"balance" json:"balance"`   // Current balance, NUMERIC(20, 2) in DB, never negative
	Role      Role            `db:"role" json:"role"`         // standard, admin or restricted
	Version   int64           `db:"version" json:"-"`         // Optimistic concurrency guard, bumped on every balance write
	CreatedAt time.Time       `db:"created_at" json:"created_at"` // Timestamp of creation
	UpdatedAt time.Time       `db:"updated_at" json:"updated_at"` // Refreshed on every balance mutation
}

// NewAccount creates a new Account with the given starting balance.
func NewAccount(name, email, phone string, startingBalance decimal.Decimal) *Account {
	now := time.Now().UTC()
	return &Account{
		ID:        uuid.NewString(),
		Name:      name,
		Email:     email,
		Phone:     phone,
		Balance:   startingBalance,
		Role:      RoleStandard,
		Version:   1,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// CanTransfer reports whether the account may act as a transfer source.
func (a *Account) CanTransfer() bool {
	return a.Role != RoleRestricted
}

// IsAdmin reports whether the account holds the admin role.
func (a *Account) IsAdmin() bool {
	return a.Role == RoleAdmin
}
