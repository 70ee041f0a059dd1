// internal/repository/ledger_repo.go
package repository

import (
	"context"

	"github.com/jaydeep-99o/Trade-pay/internal/domain"
)

// LedgerRepository defines the interface for the append-only transaction log.
// There is deliberately no update or delete: the ledger is the audit trail.
type LedgerRepository interface {
	// AppendTransaction inserts a new ledger entry using the provided DBExecutor.
	AppendTransaction(ctx context.Context, q DBExecutor, transaction *domain.Transaction) error
	// ListSent retrieves entries where the account is the source, newest first.
	ListSent(ctx context.Context, q DBExecutor, accountID string) ([]domain.Transaction, error)
	// ListReceived retrieves entries where the account is the destination, newest first.
	ListReceived(ctx context.Context, q DBExecutor, accountID string) ([]domain.Transaction, error)
}
