package middleware

import (
	"context"
	"net/http"

	"github.com/google/uuid"
)

// RequestID injects an identifier for traceability if the caller did not provide one.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rid := r.Header.Get(HeaderRequestID)
		if rid == "" {
			rid = uuid.NewString()
		}

		w.Header().Set(HeaderRequestID, rid)
		ctx := context.WithValue(r.Context(), contextKeyRequestID, rid)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
