package mw

import (
	"context"
	"net/http"
	"strings"

	"github.com/linkvault/linkvault/internal/auth"
)

type ctxKey int

const ownerKey ctxKey = iota

// OwnerID returns the authenticated user id set by Authenticate, or ""
// when the request did not pass through it.
func OwnerID(ctx context.Context) string {
	id, _ := ctx.Value(ownerKey).(string)
	return id
}

// Authenticate verifies the Authorization bearer token and injects the
// owner id into the request context. Requests without a valid token get
// 401; handlers behind this middleware can trust OwnerID unconditionally.
func Authenticate(issuer *auth.TokenIssuer) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			token, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || token == "" {
				unauthorized(w)
				return
			}

			userID, err := issuer.Verify(token)
			if err != nil {
				unauthorized(w)
				return
			}

			ctx := context.WithValue(r.Context(), ownerKey, userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func unauthorized(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_, _ = w.Write([]byte(`{"message":"authentication required"}`))
}
