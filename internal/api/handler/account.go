// internal/api/handler/account.go
package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/jaydeep-99o/Trade-pay/internal/api/types"
	"github.com/jaydeep-99o/Trade-pay/internal/domain"
	"github.com/jaydeep-99o/Trade-pay/internal/util"
)

// RegisterRequest represents the request body for account registration.
type RegisterRequest struct {
	Name  string `json:"name" validate:"required,min=2"`
	Email string `json:"email" validate:"required,email"`
	Phone string `json:"phone" validate:"omitempty,min=7"`
}

// Register handles account creation.
// POST /accounts
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondWithError(w, util.ErrInvalidInput)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.respondWithError(w, util.ErrInvalidInput)
		return
	}

	account, err := h.accounts.Register(r.Context(), req.Name, req.Email, req.Phone)
	if err != nil {
		h.respondWithError(w, err)
		return
	}

	h.respondWithJSON(w, http.StatusCreated, account)
}

// GetAccount handles a single-account read.
// GET /accounts/{accountID}
func (h *Handler) GetAccount(w http.ResponseWriter, r *http.Request) {
	accountID := chi.URLParam(r, "accountID")
	if accountID == "" {
		h.respondWithError(w, util.ErrInvalidInput)
		return
	}

	account, err := h.queries.GetAccount(r.Context(), accountID)
	if err != nil {
		h.respondWithError(w, err)
		return
	}

	h.respondWithJSON(w, http.StatusOK, account)
}

// GetHistory handles the merged sent/received transaction history.
// GET /accounts/{accountID}/transactions
func (h *Handler) GetHistory(w http.ResponseWriter, r *http.Request) {
	accountID := chi.URLParam(r, "accountID")
	if accountID == "" {
		h.respondWithError(w, util.ErrInvalidInput)
		return
	}

	limit, err := strconv.Atoi(r.URL.Query().Get("limit"))
	if err != nil || limit <= 0 {
		limit = 20
	}
	offset, err := strconv.Atoi(r.URL.Query().Get("offset"))
	if err != nil || offset < 0 {
		offset = 0
	}

	entries, err := h.queries.History(r.Context(), accountID)
	if err != nil {
		h.respondWithError(w, err)
		return
	}

	// The history itself is re-derived per call; paging is just a window
	// over the merged, ordered result.
	total := len(entries)
	if offset > total {
		offset = total
	}
	end := offset + limit
	if end > total {
		end = total
	}

	h.respondWithJSON(w, http.StatusOK, types.PaginatedResponse[domain.HistoryEntry]{
		Data:       entries[offset:end],
		Limit:      limit,
		Offset:     offset,
		TotalCount: total,
	})
}

// SearchAccounts handles exact email/phone lookup.
// GET /accounts/search?term=
func (h *Handler) SearchAccounts(w http.ResponseWriter, r *http.Request) {
	term := r.URL.Query().Get("term")

	accounts, err := h.queries.Search(r.Context(), term)
	if err != nil {
		h.respondWithError(w, err)
		return
	}

	h.respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"accounts": accounts,
	})
}
