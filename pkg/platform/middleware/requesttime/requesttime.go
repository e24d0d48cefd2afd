// Package requesttime pins one "now" per request so every timestamp produced
// while serving it (verdict evaluation time, bundle fetch time, logs) agrees.
package requesttime

import (
	"net/http"
	"time"

	"lookout/pkg/requestcontext"
)

// Middleware captures the current time at the start of the request.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := requestcontext.WithTime(r.Context(), time.Now())
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
