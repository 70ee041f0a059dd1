// internal/api/middleware.go
package api

import (
	"net/http"

	"github.com/jaydeep-99o/Trade-pay/internal/service"
	"github.com/jaydeep-99o/Trade-pay/internal/util"
)

// RequireAdmin gates a route group behind the admin role. The caller's
// identity arrives as the X-Account-ID header, resolved by the identity
// provider upstream; this middleware only checks the role on the account it
// names. A store failure is not an auth failure and surfaces as 503.
func RequireAdmin(queries service.QueryService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			callerID := r.Header.Get("X-Account-ID")
			if callerID == "" {
				http.Error(w, `{"error":"missing account id"}`, http.StatusUnauthorized)
				return
			}

			account, err := queries.GetAccount(r.Context(), callerID)
			if err != nil {
				if util.IsError(err, util.ErrAccountNotFound) || util.IsError(err, util.ErrNotFound) {
					http.Error(w, `{"error":"unknown account"}`, http.StatusUnauthorized)
					return
				}
				http.Error(w, `{"error":"service temporarily unavailable"}`, http.StatusServiceUnavailable)
				return
			}
			if !account.IsAdmin() {
				http.Error(w, `{"error":"admin role required"}`, http.StatusForbidden)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
