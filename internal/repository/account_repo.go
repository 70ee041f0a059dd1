// internal/repository/account_repo.go
package repository

import (
	"context"

	"github.com/jaydeep-99o/Trade-pay/internal/domain"

	"github.com/shopspring/decimal"
)

// AccountRepository defines the interface for account data operations.
type AccountRepository interface {
	// CreateAccount inserts a new account using the provided DBExecutor.
	CreateAccount(ctx context.Context, q DBExecutor, account *domain.Account) error
	// GetAccountByID retrieves an account by its ID using the provided DBExecutor.
	GetAccountByID(ctx context.Context, q DBExecutor, id string) (*domain.Account, error)
	// SetBalanceIfVersion writes a new balance conditional on the version the
	// caller read. It returns util.ErrVersionConflict when the row has moved on
	// since that read, which is the signal to retry with a fresh read.
	SetBalanceIfVersion(ctx context.Context, q DBExecutor, id string, newBalance decimal.Decimal, expectedVersion int64) error
	// FindByEmailOrPhone retrieves accounts whose email or phone equals term exactly.
	FindByEmailOrPhone(ctx context.Context, q DBExecutor, term string) ([]domain.Account, error)
	// ListAccounts retrieves all accounts, newest first.
	ListAccounts(ctx context.Context, q DBExecutor) ([]domain.Account, error)
}
