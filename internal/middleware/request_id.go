package middleware

import (
	"net/http"

	"jurisight/internal/reqctx"

	"github.com/google/uuid"
)

// RequestID tags every request with a correlation id, reusing the client's
// X-Request-ID when supplied.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rid := r.Header.Get("X-Request-ID")
		if rid == "" {
			rid = uuid.NewString()
		}
		w.Header().Set("X-Request-ID", rid)
		next.ServeHTTP(w, r.WithContext(reqctx.WithRequestID(r.Context(), rid)))
	})
}
