// internal/service/transfer_service.go
package service

import (
	"context"
	"fmt"

	"github.com/jaydeep-99o/Trade-pay/internal/domain"
	"github.com/jaydeep-99o/Trade-pay/internal/repository"
	"github.com/jaydeep-99o/Trade-pay/internal/util"
	"github.com/jaydeep-99o/Trade-pay/pkg/db"

	"github.com/shopspring/decimal"
)

// TransferService moves balance between two accounts and appends the matching
// ledger entry as one atomic unit.
type TransferService interface {
	Transfer(ctx context.Context, fromAccountID, toAccountID string, amount decimal.Decimal, description string) (*domain.Transaction, error)
}

type transferService struct {
	dbBeginner  db.DBTxBeginner
	accountRepo repository.AccountRepository
	ledgerRepo  repository.LedgerRepository
	beginTx     db.BeginTxFunc
	commitTx    db.CommitTxFunc
	rollbackTx  db.RollbackTxFunc

	minAmount   decimal.Decimal
	maxAttempts int
}

// NewTransferService creates a new instance of TransferService.
func NewTransferService(
	dbBeginner db.DBTxBeginner,
	accountRepo repository.AccountRepository,
	ledgerRepo repository.LedgerRepository,
	beginTx db.BeginTxFunc,
	commitTx db.CommitTxFunc,
	rollbackTx db.RollbackTxFunc,
	minAmount decimal.Decimal,
	maxAttempts int,
) TransferService {
	return &transferService{
		dbBeginner:  dbBeginner,
		accountRepo: accountRepo,
		ledgerRepo:  ledgerRepo,
		beginTx:     beginTx,
		commitTx:    commitTx,
		rollbackTx:  rollbackTx,
		minAmount:   minAmount,
		maxAttempts: maxAttempts,
	}
}

// Transfer debits the source, credits the destination and appends exactly one
// ledger entry, all within a single database transaction. Balance writes are
// guarded by the account version read at the start of the attempt; if another
// writer committed in between, the whole attempt is rolled back and redone
// with fresh reads, up to the configured attempt budget. Business-rule
// failures (unknown account, insufficient balance, invalid amount) are
// deterministic and never retried.
func (s *transferService) Transfer(ctx context.Context, fromAccountID, toAccountID string, amount decimal.Decimal, description string) (*domain.Transaction, error) {
	if amount.LessThan(s.minAmount) || !amount.IsPositive() {
		return nil, util.ErrInvalidAmount
	}
	if fromAccountID == toAccountID {
		return nil, util.ErrSameAccountTransfer
	}

	var lastErr error
	for attempt := 0; attempt < s.maxAttempts; attempt++ {
		record, err := s.attemptTransfer(ctx, fromAccountID, toAccountID, amount, description)
		if err == nil {
			return record, nil
		}
		if !util.IsError(err, util.ErrVersionConflict) {
			return nil, err
		}
		lastErr = err
	}
	return nil, fmt.Errorf("%w: %w", util.ErrConflictExceededRetries, lastErr)
}

// attemptTransfer performs one optimistic attempt. Every effect happens inside
// one transaction; any error rolls all of it back.
func (s *transferService) attemptTransfer(ctx context.Context, fromAccountID, toAccountID string, amount decimal.Decimal, description string) (*domain.Transaction, error) {
	txController, err := s.beginTx(ctx, s.dbBeginner)
	if err != nil {
		return nil, fmt.Errorf("transfer: failed to begin transaction: %w", err)
	}
	defer s.rollbackTx(txController)

	txExecutor, ok := txController.(repository.DBExecutor)
	if !ok {
		return nil, fmt.Errorf("transfer: transaction controller does not implement DBExecutor")
	}

	fromAccount, err := s.accountRepo.GetAccountByID(ctx, txExecutor, fromAccountID)
	if err != nil {
		if util.IsError(err, util.ErrNotFound) {
			return nil, util.ErrAccountNotFound
		}
		return nil, fmt.Errorf("transfer: failed to get source account %s: %w", fromAccountID, err)
	}
	toAccount, err := s.accountRepo.GetAccountByID(ctx, txExecutor, toAccountID)
	if err != nil {
		if util.IsError(err, util.ErrNotFound) {
			return nil, util.ErrAccountNotFound
		}
		return nil, fmt.Errorf("transfer: failed to get destination account %s: %w", toAccountID, err)
	}

	if !fromAccount.CanTransfer() {
		return nil, util.ErrTransferNotAllowed
	}

	// Revalidated on every attempt: a concurrent transfer may have drained
	// the source since the previous read.
	if fromAccount.Balance.LessThan(amount) {
		return nil, util.ErrInsufficientBalance
	}

	debited := fromAccount.Balance.Sub(amount)
	if err := s.accountRepo.SetBalanceIfVersion(ctx, txExecutor, fromAccount.ID, debited, fromAccount.Version); err != nil {
		if util.IsError(err, util.ErrVersionConflict) {
			return nil, err
		}
		return nil, fmt.Errorf("transfer: failed to debit source account: %w", err)
	}

	credited := toAccount.Balance.Add(amount)
	if err := s.accountRepo.SetBalanceIfVersion(ctx, txExecutor, toAccount.ID, credited, toAccount.Version); err != nil {
		if util.IsError(err, util.ErrVersionConflict) {
			return nil, err
		}
		return nil, fmt.Errorf("transfer: failed to credit destination account: %w", err)
	}

	record := domain.NewTransferRecord(fromAccount, toAccount, amount, description)
	if err := s.ledgerRepo.AppendTransaction(ctx, txExecutor, record); err != nil {
		return nil, fmt.Errorf("transfer: failed to append ledger entry: %w", err)
	}

	if err := s.commitTx(txController); err != nil {
		return nil, fmt.Errorf("transfer: failed to commit transaction: %w", err)
	}

	return record, nil
}
