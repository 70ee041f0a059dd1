// internal/api/handler/handler.go
package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/jaydeep-99o/Trade-pay/internal/service"
	"github.com/jaydeep-99o/Trade-pay/internal/util"
)

// DefaultTimeout bounds request handling at the router level.
const DefaultTimeout = 30 * time.Second

// Handler handles HTTP requests for the credits API.
type Handler struct {
	accounts  service.AccountService
	transfers service.TransferService
	queries   service.QueryService
	logger    *slog.Logger
	validate  *validator.Validate
}

// NewHandler creates a new Handler.
func NewHandler(accounts service.AccountService, transfers service.TransferService, queries service.QueryService, logger *slog.Logger) *Handler {
	return &Handler{
		accounts:  accounts,
		transfers: transfers,
		queries:   queries,
		logger:    logger,
		validate:  validator.New(),
	}
}

// respondWithJSON sends a JSON response.
func (h *Handler) respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	response, err := json.Marshal(payload)
	if err != nil {
		h.logger.Error("Failed to marshal JSON response", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_, _ = w.Write(response)
}

// respondWithError maps service errors to HTTP statuses.
func (h *Handler) respondWithError(w http.ResponseWriter, err error) {
	statusCode := http.StatusInternalServerError
	message := "Internal server error"

	switch {
	case util.IsError(err, util.ErrInvalidInput), util.IsError(err, util.ErrInvalidAmount),
		util.IsError(err, util.ErrSameAccountTransfer), util.IsError(err, util.ErrNegativeBalance):
		statusCode = http.StatusBadRequest
		message = err.Error()
	case util.IsError(err, util.ErrAccountNotFound), util.IsError(err, util.ErrNotFound):
		statusCode = http.StatusNotFound
		message = "Account not found"
	case util.IsError(err, util.ErrInsufficientBalance):
		statusCode = http.StatusPaymentRequired // 402 Payment Required
		message = "Insufficient balance"
	case util.IsError(err, util.ErrTransferNotAllowed), util.IsError(err, util.ErrForbidden):
		statusCode = http.StatusForbidden
		message = err.Error()
	case util.IsError(err, util.ErrConflictExceededRetries), util.IsError(err, util.ErrVersionConflict):
		// Transient: the caller may retry with backoff.
		statusCode = http.StatusConflict
		message = "Concurrent update, please retry"
	case util.IsError(err, util.ErrStoreUnavailable):
		statusCode = http.StatusServiceUnavailable
		message = "Service temporarily unavailable"
	default:
		h.logger.Error("Unhandled service error", "error", err)
	}

	h.respondWithJSON(w, statusCode, map[string]string{"error": message})
}
