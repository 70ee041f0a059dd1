// internal/api/handler/admin.go
package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/jaydeep-99o/Trade-pay/internal/util"
)

// ListAccounts handles the admin account listing.
// GET /admin/accounts
func (h *Handler) ListAccounts(w http.ResponseWriter, r *http.Request) {
	accounts, err := h.queries.ListAccounts(r.Context())
	if err != nil {
		h.respondWithError(w, err)
		return
	}

	h.respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"accounts": accounts,
	})
}

// AdjustBalanceRequest represents the request body for an admin balance override.
type AdjustBalanceRequest struct {
	NewBalance  decimal.Decimal `json:"new_balance"`
	Description string          `json:"description" validate:"max=200"`
}

// AdjustBalance handles the admin balance override.
// PUT /admin/accounts/{accountID}/balance
func (h *Handler) AdjustBalance(w http.ResponseWriter, r *http.Request) {
	accountID := chi.URLParam(r, "accountID")
	if accountID == "" {
		h.respondWithError(w, util.ErrInvalidInput)
		return
	}

	var req AdjustBalanceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondWithError(w, util.ErrInvalidInput)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.respondWithError(w, util.ErrInvalidInput)
		return
	}

	account, record, err := h.accounts.AdjustBalance(r.Context(), accountID, req.NewBalance, req.Description)
	if err != nil {
		h.respondWithError(w, err)
		return
	}

	h.respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"message":     "Balance adjusted",
		"account":     account,
		"transaction": record,
	})
}
