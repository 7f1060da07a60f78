package middleware

import (
	"context"
	"net/http"

	"github.com/KUL-Services/bookly-scheduling/internal/api/handlers"
)

type contextKey string

const userIDKey contextKey = "userID"

// Auth guards mutating routes: the caller must identify itself with an
// X-User-ID header. Authorization policy beyond identification lives
// upstream.
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID := r.Header.Get("X-User-ID")
		if userID == "" {
			handlers.RespondError(w, http.StatusUnauthorized, "missing X-User-ID header")
			return
		}
		ctx := context.WithValue(r.Context(), userIDKey, userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// UserID extracts the authenticated user id from the request context.
func UserID(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(userIDKey).(string)
	return id, ok
}
