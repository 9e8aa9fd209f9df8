package middleware

import (
	"net/http"
	"strconv"

	internal "github.com/pruthagwin123/expense-tracker/internal"
	"github.com/pruthagwin123/expense-tracker/pkg/logger"
)

// Identity resolves the authenticated user from the X-User-ID header set by
// the auth layer in front of this service, and injects it into the request
// context. Requests without a parseable id are rejected before reaching any
// handler that sits behind this middleware.
func Identity(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw := r.Header.Get("X-User-ID")
		userID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || userID <= 0 {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"code":401,"message":"unauthorized"}`))
			return
		}

		ctx := internal.ContextWithUserID(r.Context(), userID)
		ctx = logger.With(ctx, "user_id", userID)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
