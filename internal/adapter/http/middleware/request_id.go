package middleware

import (
	"net/http"

	wrap "github.com/Temutjin2k/driver-twin/pkg/logger/wrapper"
	"github.com/Temutjin2k/driver-twin/pkg/uuid"
)

const requestIDHeader = "X-Request-Id"

// RequestID picks up the caller's request id or generates one, stores it in
// the log context and echoes it back in the response header.
func (a *Middleware) RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(requestIDHeader)
		if id == "" {
			if generated, err := uuid.New(); err == nil {
				id = generated.String()
			}
		}

		w.Header().Set(requestIDHeader, id)

		ctx := wrap.WithRequestID(r.Context(), id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
