// internal/repository/postgres/ledger_pg.go
package postgres

import (
	"context"

	"github.com/jaydeep-99o/Trade-pay/internal/domain"
	"github.com/jaydeep-99o/Trade-pay/internal/repository"
)

// LedgerRepository implements repository.LedgerRepository for PostgreSQL.
// Like AccountRepository it holds no connection; methods receive a DBExecutor.
type LedgerRepository struct{}

// NewLedgerRepository creates a new LedgerRepository.
func NewLedgerRepository() repository.LedgerRepository {
	return &LedgerRepository{}
}

// AppendTransaction inserts a new ledger entry using the provided DBExecutor.
func (r *LedgerRepository) AppendTransaction(ctx context.Context, q repository.DBExecutor, transaction *domain.Transaction) error {
	query := `INSERT INTO transactions (id, from_account_id, to_account_id, from_name, to_name, amount, description, type, status, timestamp)
              VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := q.ExecContext(ctx, query,
		transaction.ID,
		transaction.FromAccountID,
		transaction.ToAccountID,
		transaction.FromName,
		transaction.ToName,
		transaction.Amount,
		transaction.Description,
		transaction.Type,
		transaction.Status,
		transaction.Timestamp,
	)
	if err != nil {
		return storeErr("failed to append transaction: %v", err)
	}
	return nil
}

// ListSent retrieves entries where the account is the source, newest first.
func (r *LedgerRepository) ListSent(ctx context.Context, q repository.DBExecutor, accountID string) ([]domain.Transaction, error) {
	transactions := []domain.Transaction{}
	query := `SELECT id, from_account_id, to_account_id, from_name, to_name, amount, description, type, status, timestamp
              FROM transactions
              WHERE from_account_id = $1
              ORDER BY timestamp DESC`
	if err := q.SelectContext(ctx, &transactions, query, accountID); err != nil {
		return nil, storeErr("failed to fetch sent transactions for account %s: %v", accountID, err)
	}
	return transactions, nil
}

// ListReceived retrieves entries where the account is the destination, newest first.
func (r *LedgerRepository) ListReceived(ctx context.Context, q repository.DBExecutor, accountID string) ([]domain.Transaction, error) {
	transactions := []domain.Transaction{}
	query := `SELECT id, from_account_id, to_account_id, from_name, to_name, amount, description, type, status, timestamp
              FROM transactions
              WHERE to_account_id = $1
              ORDER BY timestamp DESC`
	if err := q.SelectContext(ctx, &transactions, query, accountID); err != nil {
		return nil, storeErr("failed to fetch received transactions for account %s: %v", accountID, err)
	}
	return transactions, nil
}
