// internal/service/query_service.go
package service

import (
	"context"
	"fmt"
	"sort"

	"github.com/jaydeep-99o/Trade-pay/internal/domain"
	"github.com/jaydeep-99o/Trade-pay/internal/repository"
	"github.com/jaydeep-99o/Trade-pay/internal/util"
)

// QueryService covers the read side: transaction history, account lookup and
// search. Every call re-derives its result from current store state; no
// cursor is retained between calls.
type QueryService interface {
	History(ctx context.Context, accountID string) ([]domain.HistoryEntry, error)
	GetAccount(ctx context.Context, accountID string) (*domain.Account, error)
	Search(ctx context.Context, term string) ([]domain.Account, error)
	ListAccounts(ctx context.Context) ([]domain.Account, error)
}

type queryService struct {
	dbExecutor  repository.DBExecutor
	accountRepo repository.AccountRepository
	ledgerRepo  repository.LedgerRepository
}

// NewQueryService creates a new instance of QueryService.
func NewQueryService(
	dbExecutor repository.DBExecutor,
	accountRepo repository.AccountRepository,
	ledgerRepo repository.LedgerRepository,
) QueryService {
	return &queryService{
		dbExecutor:  dbExecutor,
		accountRepo: accountRepo,
		ledgerRepo:  ledgerRepo,
	}
}

// History merges the entries where the account is the source with those where
// it is the destination, tags each with its direction, and orders the result
// by timestamp descending.
func (s *queryService) History(ctx context.Context, accountID string) ([]domain.HistoryEntry, error) {
	if _, err := s.accountRepo.GetAccountByID(ctx, s.dbExecutor, accountID); err != nil {
		if util.IsError(err, util.ErrNotFound) {
			return nil, util.ErrAccountNotFound
		}
		return nil, fmt.Errorf("history: failed to check account %s: %w", accountID, err)
	}

	sent, err := s.ledgerRepo.ListSent(ctx, s.dbExecutor, accountID)
	if err != nil {
		return nil, fmt.Errorf("history: failed to fetch sent entries: %w", err)
	}
	received, err := s.ledgerRepo.ListReceived(ctx, s.dbExecutor, accountID)
	if err != nil {
		return nil, fmt.Errorf("history: failed to fetch received entries: %w", err)
	}

	entries := make([]domain.HistoryEntry, 0, len(sent)+len(received))
	for _, tx := range sent {
		entries = append(entries, domain.HistoryEntry{Transaction: tx, Direction: domain.DirectionSent})
	}
	for _, tx := range received {
		entries = append(entries, domain.HistoryEntry{Transaction: tx, Direction: domain.DirectionReceived})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Timestamp.After(entries[j].Timestamp)
	})

	return entries, nil
}

// GetAccount retrieves a single account.
func (s *queryService) GetAccount(ctx context.Context, accountID string) (*domain.Account, error) {
	account, err := s.accountRepo.GetAccountByID(ctx, s.dbExecutor, accountID)
	if err != nil {
		if util.IsError(err, util.ErrNotFound) {
			return nil, util.ErrAccountNotFound
		}
		return nil, fmt.Errorf("get account: failed to get account %s: %w", accountID, err)
	}
	return account, nil
}

// Search matches accounts whose email or phone equals term exactly,
// de-duplicated by account id. Substring filtering, if a client wants it, is
// the client's business.
func (s *queryService) Search(ctx context.Context, term string) ([]domain.Account, error) {
	if term == "" {
		return nil, util.ErrInvalidInput
	}

	matches, err := s.accountRepo.FindByEmailOrPhone(ctx, s.dbExecutor, term)
	if err != nil {
		return nil, fmt.Errorf("search: failed to query accounts: %w", err)
	}

	// Uniqueness of email/phone is not enforced at the store, so the same
	// account can match both fields.
	seen := make(map[string]struct{}, len(matches))
	results := make([]domain.Account, 0, len(matches))
	for _, account := range matches {
		if _, ok := seen[account.ID]; ok {
			continue
		}
		seen[account.ID] = struct{}{}
		results = append(results, account)
	}
	return results, nil
}

// ListAccounts retrieves every account, newest first. Admin view.
func (s *queryService) ListAccounts(ctx context.Context) ([]domain.Account, error) {
	accounts, err := s.accountRepo.ListAccounts(ctx, s.dbExecutor)
	if err != nil {
		return nil, fmt.Errorf("list accounts: %w", err)
	}
	return accounts, nil
}
