// Package metadata copies request metadata headers into the context.
package metadata

import (
	"net/http"
	"strings"

	"github.com/google/uuid"

	"lookout/pkg/requestcontext"
)

const (
	HeaderRequestID = "X-Request-ID"
	HeaderCallerID  = "X-Caller-ID"

	maxHeaderLen = 128
)

// RequestID propagates the caller's X-Request-ID or mints a new one, and
// echoes it on the response.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := headerValue(r, HeaderRequestID)
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set(HeaderRequestID, id)
		ctx := requestcontext.WithRequestID(r.Context(), id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// CallerID records who asked for the lookup. The front-end forwards the
// chat user id in X-Caller-ID; absent means anonymous.
func CallerID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if id := headerValue(r, HeaderCallerID); id != "" {
			ctx = requestcontext.WithCallerID(ctx, id)
		}
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func headerValue(r *http.Request, name string) string {
	v := strings.TrimSpace(r.Header.Get(name))
	if len(v) > maxHeaderLen {
		return ""
	}
	return v
}
