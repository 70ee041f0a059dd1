// internal/domain/transaction.go
package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal" // For precise monetary calculations
)

// TransactionType defines the type of a ledger entry.
type TransactionType string

const (
	TransactionTypeTransfer TransactionType = "TRANSFER"
	// Adjustment entries record an administrative balance override. They are
	// unilateral: no source account, not covered by conservation. The amount
	// is always positive; the subtype carries the direction of the override.
	TransactionTypeAdjustmentCredit TransactionType = "ADJUSTMENT_CREDIT"
	TransactionTypeAdjustmentDebit  TransactionType = "ADJUSTMENT_DEBIT"
)

// TransactionStatus defines the status of a ledger entry.
type TransactionStatus string

// TransactionStatusCompleted is the only persisted status: the transfer is
// all-or-nothing, so a pending or failed entry never reaches the ledger.
const TransactionStatusCompleted TransactionStatus = "COMPLETED"

// Direction tags a ledger entry relative to the account whose history is read.
type Direction string

const (
	DirectionSent     Direction = "sent"
	DirectionReceived Direction = "received"
)

// Transaction is one append-only ledger entry. Entries are created atomically
// with the paired balance mutation and never updated or deleted.
type Transaction struct {
	ID            string            `db:"id" json:"id"`
	FromAccountID *string           `db:"from_account_id" json:"from_account_id"` // nil for adjustments
	ToAccountID   string            `db:"to_account_id" json:"to_account_id"`
	FromName      string            `db:"from_name" json:"from_name"` // Display name snapshot at transfer time
	ToName        string            `db:"to_name" json:"to_name"`     // Later renames do not rewrite history
	Amount        decimal.Decimal   `db:"amount" json:"amount"`
	Description   string            `db:"description" json:"description"`
	Type          TransactionType   `db:"type" json:"type"`
	Status        TransactionStatus `db:"status" json:"status"`
	Timestamp     time.Time         `db:"timestamp" json:"timestamp"`
}

// HistoryEntry is a ledger entry tagged with its direction relative to the
// queried account.
type HistoryEntry struct {
	Transaction
	Direction Direction `json:"direction"`
}

// NewTransferRecord creates the ledger entry for a peer-to-peer transfer,
// snapshotting both display names.
func NewTransferRecord(from, to *Account, amount decimal.Decimal, description string) *Transaction {
	fromID := from.ID
	return &Transaction{
		ID:            uuid.NewString(),
		FromAccountID: &fromID,
		ToAccountID:   to.ID,
		FromName:      from.Name,
		ToName:        to.Name,
		Amount:        amount,
		Description:   description,
		Type:          TransactionTypeTransfer,
		Status:        TransactionStatusCompleted,
		Timestamp:     time.Now().UTC(),
	}
}

// NewAdjustmentRecord creates the ledger entry for an administrative balance
// override. The source side is empty: credit is issued or withdrawn, not
// moved. delta is the signed change the override applied; the entry stores
// its magnitude and encodes the sign in the subtype, so ledger amounts stay
// positive.
func NewAdjustmentRecord(to *Account, delta decimal.Decimal, description string) *Transaction {
	adjustmentType := TransactionTypeAdjustmentCredit
	if delta.IsNegative() {
		adjustmentType = TransactionTypeAdjustmentDebit
	}
	return &Transaction{
		ID:          uuid.NewString(),
		ToAccountID: to.ID,
		ToName:      to.Name,
		Amount:      delta.Abs(),
		Description: description,
		Type:        adjustmentType,
		Status:      TransactionStatusCompleted,
		Timestamp:   time.Now().UTC(),
	}
}
