// internal/repository/postgres/account_pg.go
package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/jaydeep-99o/Trade-pay/internal/domain"
	"github.com/jaydeep-99o/Trade-pay/internal/repository"
	"github.com/jaydeep-99o/Trade-pay/internal/util"

	"github.com/shopspring/decimal"
)

// AccountRepository implements repository.AccountRepository for PostgreSQL.
// It holds no connection of its own: every method receives a DBExecutor, so
// a call runs against either *sqlx.DB or an open *sqlx.Tx.
type AccountRepository struct{}

// NewAccountRepository creates a new AccountRepository.
func NewAccountRepository() repository.AccountRepository {
	return &AccountRepository{}
}

// storeErr wraps infrastructure failures so callers can tell them apart from
// business-rule rejections.
func storeErr(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", util.ErrStoreUnavailable, fmt.Sprintf(format, args...))
}

// CreateAccount inserts a new account using the provided DBExecutor.
func (r *AccountRepository) CreateAccount(ctx context.Context, q repository.DBExecutor, account *domain.Account) error {
	query := `INSERT INTO accounts (id, name, email, phone, balance, role, version, created_at, updated_at)
              VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := q.ExecContext(ctx, query,
		account.ID,
		account.Name,
		account.Email,
		account.Phone,
		account.Balance,
		account.Role,
		account.Version,
		account.CreatedAt,
		account.UpdatedAt,
	)
	if err != nil {
		return storeErr("failed to create account: %v", err)
	}
	return nil
}

// GetAccountByID retrieves an account by its ID using the provided DBExecutor.
func (r *AccountRepository) GetAccountByID(ctx context.Context, q repository.DBExecutor, id string) (*domain.Account, error) {
	var account domain.Account
	query := `SELECT id, name, email, phone, balance, role, version, created_at, updated_at FROM accounts WHERE id = $1`
	err := q.GetContext(ctx, &account, query, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, util.ErrNotFound
		}
		return nil, storeErr("failed to get account by ID %s: %v", id, err)
	}
	return &account, nil
}

// SetBalanceIfVersion writes a new balance conditional on the version the
// caller read. Zero rows affected means another writer committed first; the
// caller must re-read and retry.
func (r *AccountRepository) SetBalanceIfVersion(ctx context.Context, q repository.DBExecutor, id string, newBalance decimal.Decimal, expectedVersion int64) error {
	query := `UPDATE accounts SET balance = $1, version = version + 1, updated_at = $2 WHERE id = $3 AND version = $4`
	result, err := q.ExecContext(ctx, query, newBalance, time.Now().UTC(), id, expectedVersion)
	if err != nil {
		return storeErr("failed to update balance for account %s: %v", id, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return storeErr("failed to get rows affected for account %s: %v", id, err)
	}
	if rowsAffected == 0 {
		return util.ErrVersionConflict
	}
	return nil
}

// FindByEmailOrPhone retrieves accounts whose email or phone equals term
// exactly. No fuzzy matching at this layer.
func (r *AccountRepository) FindByEmailOrPhone(ctx context.Context, q repository.DBExecutor, term string) ([]domain.Account, error) {
	accounts := []domain.Account{}
	query := `SELECT id, name, email, phone, balance, role, version, created_at, updated_at
              FROM accounts
              WHERE email = $1 OR phone = $1`
	if err := q.SelectContext(ctx, &accounts, query, term); err != nil {
		return nil, storeErr("failed to search accounts by '%s': %v", term, err)
	}
	return accounts, nil
}

// ListAccounts retrieves all accounts, newest first.
func (r *AccountRepository) ListAccounts(ctx context.Context, q repository.DBExecutor) ([]domain.Account, error) {
	accounts := []domain.Account{}
	query := `SELECT id, name, email, phone, balance, role, version, created_at, updated_at
              FROM accounts
              ORDER BY created_at DESC`
	if err := q.SelectContext(ctx, &accounts, query); err != nil {
		return nil, storeErr("failed to list accounts: %v", err)
	}
	return accounts, nil
}
