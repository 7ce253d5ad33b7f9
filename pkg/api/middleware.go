package api

import (
	"crypto/subtle"
	"net/http"
)

// TriggerKeyHeader carries the shared key protecting the trigger endpoint.
const TriggerKeyHeader = "X-Trigger-Key"

// triggerKey rejects requests without the configured key. An empty key
// disables the check.
func triggerKey(key string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if key == "" {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			got := r.Header.Get(TriggerKeyHeader)
			if subtle.ConstantTimeCompare([]byte(got), []byte(key)) != 1 {
				respondError(w, http.StatusUnauthorized, CodeUnauthorized, "missing or invalid trigger key", nil)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
