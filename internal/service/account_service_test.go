// internal/service/account_service_test.go
package service

import (
	"context"
	"testing"

	"github.com/jaydeep-99o/Trade-pay/internal/domain"
	"github.com/jaydeep-99o/Trade-pay/internal/util"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newAccountFixture(accounts *MockAccountRepository, ledger *MockLedgerRepository, tx *MockTxController) AccountService {
	begin, commit, rollback := txFuncs(tx)
	return NewAccountService(
		new(MockDBBeginner),
		new(MockDBExecutor),
		accounts,
		ledger,
		begin,
		commit,
		rollback,
		decimal.NewFromInt(10000),
	)
}

func TestRegister(t *testing.T) {
	t.Run("CreditsStartingBalance", func(t *testing.T) {
		ctx := context.Background()
		mockAccounts := new(MockAccountRepository)
		svc := newAccountFixture(mockAccounts, new(MockLedgerRepository), new(MockTxController))

		mockAccounts.On("CreateAccount", ctx, mock.Anything, mock.AnythingOfType("*domain.Account")).Return(nil).Once()

		account, err := svc.Register(ctx, "Asha", "asha@example.com", "9876543210")

		require.NoError(t, err)
		require.NotNil(t, account)
		assert.NotEmpty(t, account.ID)
		assert.Equal(t, "Asha", account.Name)
		assert.Equal(t, domain.RoleStandard, account.Role)
		assert.True(t, decimal.NewFromInt(10000).Equal(account.Balance))
		assert.Equal(t, int64(1), account.Version)
		assertAll(t, mockAccounts)
	})

	t.Run("RejectsMissingFields", func(t *testing.T) {
		ctx := context.Background()
		mockAccounts := new(MockAccountRepository)
		svc := newAccountFixture(mockAccounts, new(MockLedgerRepository), new(MockTxController))

		account, err := svc.Register(ctx, "", "asha@example.com", "")

		assert.ErrorIs(t, err, util.ErrInvalidInput)
		assert.Nil(t, account)
		mockAccounts.AssertNotCalled(t, "CreateAccount", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestAdjustBalance(t *testing.T) {
	t.Run("OverridesAndRecordsAdjustment", func(t *testing.T) {
		ctx := context.Background()
		mockAccounts := new(MockAccountRepository)
		mockLedger := new(MockLedgerRepository)
		mockTx := new(MockTxController)
		svc := newAccountFixture(mockAccounts, mockLedger, mockTx)

		existing := &domain.Account{
			ID:      "acc-1",
			Name:    "Asha",
			Balance: decimal.NewFromInt(100),
			Version: 2,
		}

		mockAccounts.On("GetAccountByID", ctx, mock.Anything, "acc-1").Return(existing, nil).Once()
		mockAccounts.On("SetBalanceIfVersion", ctx, mock.Anything, "acc-1", decimal.NewFromInt(5000), int64(2)).Return(nil).Once()
		mockLedger.On("AppendTransaction", ctx, mock.Anything, mock.MatchedBy(func(tx *domain.Transaction) bool {
			return tx.Type == domain.TransactionTypeAdjustmentCredit &&
				tx.FromAccountID == nil &&
				tx.ToAccountID == "acc-1" &&
				tx.Amount.Equal(decimal.NewFromInt(4900))
		})).Return(nil).Once()
		mockTx.On("Commit").Return(nil).Once()
		mockTx.On("Rollback").Return(nil).Maybe()

		account, record, err := svc.AdjustBalance(ctx, "acc-1", decimal.NewFromInt(5000), "expo credit grant")

		require.NoError(t, err)
		require.NotNil(t, account)
		require.NotNil(t, record)
		assert.True(t, decimal.NewFromInt(5000).Equal(account.Balance))
		assert.Equal(t, domain.TransactionTypeAdjustmentCredit, record.Type)
		assert.Equal(t, "expo credit grant", record.Description)
		assertAll(t, mockAccounts, mockLedger, mockTx)
	})

	t.Run("DownwardOverrideRecordsPositiveDebit", func(t *testing.T) {
		ctx := context.Background()
		mockAccounts := new(MockAccountRepository)
		mockLedger := new(MockLedgerRepository)
		mockTx := new(MockTxController)
		svc := newAccountFixture(mockAccounts, mockLedger, mockTx)

		existing := &domain.Account{
			ID:      "acc-1",
			Name:    "Asha",
			Balance: decimal.NewFromInt(100),
			Version: 2,
		}

		mockAccounts.On("GetAccountByID", ctx, mock.Anything, "acc-1").Return(existing, nil).Once()
		mockAccounts.On("SetBalanceIfVersion", ctx, mock.Anything, "acc-1", decimal.NewFromInt(40), int64(2)).Return(nil).Once()
		// Lowering a balance still yields a positive ledger amount; the debit
		// subtype carries the direction of the override.
		mockLedger.On("AppendTransaction", ctx, mock.Anything, mock.MatchedBy(func(tx *domain.Transaction) bool {
			return tx.Type == domain.TransactionTypeAdjustmentDebit &&
				tx.FromAccountID == nil &&
				tx.ToAccountID == "acc-1" &&
				tx.Amount.Equal(decimal.NewFromInt(60))
		})).Return(nil).Once()
		mockTx.On("Commit").Return(nil).Once()
		mockTx.On("Rollback").Return(nil).Maybe()

		account, record, err := svc.AdjustBalance(ctx, "acc-1", decimal.NewFromInt(40), "clawback")

		require.NoError(t, err)
		require.NotNil(t, record)
		assert.True(t, record.Amount.IsPositive())
		assert.True(t, decimal.NewFromInt(40).Equal(account.Balance))
		assertAll(t, mockAccounts, mockLedger, mockTx)
	})

	t.Run("UnchangedBalanceAppendsNothing", func(t *testing.T) {
		ctx := context.Background()
		mockAccounts := new(MockAccountRepository)
		mockLedger := new(MockLedgerRepository)
		mockTx := new(MockTxController)
		svc := newAccountFixture(mockAccounts, mockLedger, mockTx)

		existing := &domain.Account{ID: "acc-1", Balance: decimal.NewFromInt(100), Version: 2}
		mockAccounts.On("GetAccountByID", ctx, mock.Anything, "acc-1").Return(existing, nil).Once()
		mockAccounts.On("SetBalanceIfVersion", ctx, mock.Anything, "acc-1", decimal.NewFromInt(100), int64(2)).Return(nil).Once()
		mockTx.On("Commit").Return(nil).Once()
		mockTx.On("Rollback").Return(nil).Maybe()

		account, record, err := svc.AdjustBalance(ctx, "acc-1", decimal.NewFromInt(100), "")

		require.NoError(t, err)
		require.NotNil(t, account)
		assert.Nil(t, record)
		mockLedger.AssertNotCalled(t, "AppendTransaction", mock.Anything, mock.Anything, mock.Anything)
		assertAll(t, mockAccounts, mockLedger, mockTx)
	})

	t.Run("RejectsNegativeTarget", func(t *testing.T) {
		ctx := context.Background()
		mockAccounts := new(MockAccountRepository)
		mockTx := new(MockTxController)
		svc := newAccountFixture(mockAccounts, new(MockLedgerRepository), mockTx)

		account, record, err := svc.AdjustBalance(ctx, "acc-1", decimal.NewFromInt(-1), "")

		assert.ErrorIs(t, err, util.ErrNegativeBalance)
		assert.Nil(t, account)
		assert.Nil(t, record)
		mockTx.AssertNotCalled(t, "Commit")
		mockTx.AssertNotCalled(t, "Rollback")
	})

	t.Run("AccountNotFound", func(t *testing.T) {
		ctx := context.Background()
		mockAccounts := new(MockAccountRepository)
		mockTx := new(MockTxController)
		svc := newAccountFixture(mockAccounts, new(MockLedgerRepository), mockTx)

		mockAccounts.On("GetAccountByID", ctx, mock.Anything, "ghost").Return(nil, util.ErrNotFound).Once()
		mockTx.On("Rollback").Return(nil).Once()

		account, record, err := svc.AdjustBalance(ctx, "ghost", decimal.NewFromInt(100), "")

		assert.ErrorIs(t, err, util.ErrAccountNotFound)
		assert.Nil(t, account)
		assert.Nil(t, record)
		mockTx.AssertNotCalled(t, "Commit")
		assertAll(t, mockAccounts, mockTx)
	})

	t.Run("SurfacesVersionConflict", func(t *testing.T) {
		ctx := context.Background()
		mockAccounts := new(MockAccountRepository)
		mockLedger := new(MockLedgerRepository)
		mockTx := new(MockTxController)
		svc := newAccountFixture(mockAccounts, mockLedger, mockTx)

		existing := &domain.Account{ID: "acc-1", Balance: decimal.NewFromInt(100), Version: 2}
		mockAccounts.On("GetAccountByID", ctx, mock.Anything, "acc-1").Return(existing, nil).Once()
		mockAccounts.On("SetBalanceIfVersion", ctx, mock.Anything, "acc-1", decimal.NewFromInt(500), int64(2)).Return(util.ErrVersionConflict).Once()
		mockTx.On("Rollback").Return(nil).Once()

		account, record, err := svc.AdjustBalance(ctx, "acc-1", decimal.NewFromInt(500), "")

		// A transfer committed between the admin's read and write; the
		// override must not silently clobber it.
		assert.ErrorIs(t, err, util.ErrVersionConflict)
		assert.Nil(t, account)
		assert.Nil(t, record)
		mockLedger.AssertNotCalled(t, "AppendTransaction", mock.Anything, mock.Anything, mock.Anything)
		mockTx.AssertNotCalled(t, "Commit")
		assertAll(t, mockAccounts, mockLedger, mockTx)
	})
}
