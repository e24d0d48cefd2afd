package cooldown

import (
	"math"
	"net/http"
	"strconv"

	"lookout/pkg/platform/httputil"
	"lookout/pkg/requestcontext"
)

// Middleware rejects requests from a caller still inside its window with
// 429 and a Retry-After header in whole seconds. Requests without a caller
// identity are not limited.
func (l *Limiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		callerID := requestcontext.CallerID(ctx)
		if callerID == "" {
			next.ServeHTTP(w, r)
			return
		}

		allowed, retryAfter := l.Allow(ctx, callerID)
		if !allowed {
			secs := int(math.Ceil(retryAfter.Seconds()))
			if secs < 1 {
				secs = 1
			}
			w.Header().Set("Retry-After", strconv.Itoa(secs))
			httputil.WriteError(w, http.StatusTooManyRequests, "cooldown_active",
				"please wait "+strconv.Itoa(secs)+"s before looking up again")
			return
		}
		next.ServeHTTP(w, r)
	})
}
