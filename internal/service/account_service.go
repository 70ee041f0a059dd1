// internal/service/account_service.go
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

// AccountService handles account registration and the administrative balance
// override. The override is deliberately not a transfer: it is unilateral,
// outside the conservation invariant, and only reachable through the admin
// surface.
type AccountService interface {
	Register(ctx context.Context, name, email, phone string) (*domain.Account, error)
	AdjustBalance(ctx context.Context, accountID string, newBalance decimal.Decimal, description string) (*domain.Account, *domain.Transaction, error)
}

type accountService struct {
	dbBeginner  db.DBTxBeginner
	dbExecutor  repository.DBExecutor
	accountRepo repository.AccountRepository
	ledgerRepo  repository.LedgerRepository
	beginTx     db.BeginTxFunc
	commitTx    db.CommitTxFunc
	rollbackTx  db.RollbackTxFunc

	startingBalance decimal.Decimal
}

// NewAccountService creates a new instance of AccountService.
func NewAccountService(
	dbBeginner db.DBTxBeginner,
	dbExecutor repository.DBExecutor,
	accountRepo repository.AccountRepository,
	ledgerRepo repository.LedgerRepository,
	beginTx db.BeginTxFunc,
	commitTx db.CommitTxFunc,
	rollbackTx db.RollbackTxFunc,
	startingBalance decimal.Decimal,
) AccountService {
	return &accountService{
		dbBeginner:      dbBeginner,
		dbExecutor:      dbExecutor,
		accountRepo:     accountRepo,
		ledgerRepo:      ledgerRepo,
		beginTx:         beginTx,
		commitTx:        commitTx,
		rollbackTx:      rollbackTx,
		startingBalance: startingBalance,
	}
}

// Register creates an account credited with the configured starting balance.
// Email and phone are lookup keys, not credentials; their uniqueness is owned
// by the identity provider, so duplicates are not rejected here.
func (s *accountService) Register(ctx context.Context, name, email, phone string) (*domain.Account, error) {
	if name == "" || email == "" {
		return nil, util.ErrInvalidInput
	}

	account := domain.NewAccount(name, email, phone, s.startingBalance)
	if err := s.accountRepo.CreateAccount(ctx, s.dbExecutor, account); err != nil {
		return nil, fmt.Errorf("register: failed to create account: %w", err)
	}
	return account, nil
}

// AdjustBalance overwrites an account's balance to newBalance and appends an
// adjustment entry recording the change, so the override stays visible in the
// audit trail. The write is still version-guarded: an adjustment must not
// silently overwrite a transfer that committed after the admin's read.
func (s *accountService) AdjustBalance(ctx context.Context, accountID string, newBalance decimal.Decimal, description string) (*domain.Account, *domain.Transaction, error) {
	if newBalance.IsNegative() {
		return nil, nil, util.ErrNegativeBalance
	}

	txController, err := s.beginTx(ctx, s.dbBeginner)
	if err != nil {
		return nil, nil, fmt.Errorf("adjust balance: failed to begin transaction: %w", err)
	}
	defer s.rollbackTx(txController)

	txExecutor, ok := txController.(repository.DBExecutor)
	if !ok {
		return nil, nil, fmt.Errorf("adjust balance: transaction controller does not implement DBExecutor")
	}

	account, err := s.accountRepo.GetAccountByID(ctx, txExecutor, accountID)
	if err != nil {
		if util.IsError(err, util.ErrNotFound) {
			return nil, nil, util.ErrAccountNotFound
		}
		return nil, nil, fmt.Errorf("adjust balance: failed to get account %s: %w", accountID, err)
	}

	if err := s.accountRepo.SetBalanceIfVersion(ctx, txExecutor, account.ID, newBalance, account.Version); err != nil {
		if util.IsError(err, util.ErrVersionConflict) {
			return nil, nil, err
		}
		return nil, nil, fmt.Errorf("adjust balance: failed to write balance: %w", err)
	}

	// The entry records the magnitude of the change; the subtype carries its
	// direction. An override to the current balance changes nothing and gets
	// no entry.
	var record *domain.Transaction
	delta := newBalance.Sub(account.Balance)
	if !delta.IsZero() {
		record = domain.NewAdjustmentRecord(account, delta, description)
		if err := s.ledgerRepo.AppendTransaction(ctx, txExecutor, record); err != nil {
			return nil, nil, fmt.Errorf("adjust balance: failed to append ledger entry: %w", err)
		}
	}

	if err := s.commitTx(txController); err != nil {
		return nil, nil, fmt.Errorf("adjust balance: failed to commit transaction: %w", err)
	}

	account.Balance = newBalance
	return account, record, nil
}
