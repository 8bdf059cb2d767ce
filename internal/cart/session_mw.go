package cart

import (
	"context"
	"net/http"
	"strings"

	"ImirStore/internal/account"
	"ImirStore/pkg/kit"
)

type ctxKey string

const sessionKey ctxKey = "session"

type Session struct {
	ID    string
	Email string
	Role  string
}

func SessionFromContext(ctx context.Context) (Session, bool) {
	s, ok := ctx.Value(sessionKey).(Session)
	return s, ok
}

// RequireSession gates cart, wishlist and checkout routes behind a session
// bearer token, guest or account alike.
func RequireSession(jwt *account.TokenMaker) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authz := r.Header.Get("Authorization")
			if !strings.HasPrefix(authz, "Bearer ") {
				kit.WriteError(w, r, http.StatusUnauthorized, "missing session token", nil)
				return
			}

			claims, err := jwt.Parse(strings.TrimPrefix(authz, "Bearer "))
			if err != nil {
				kit.WriteError(w, r, http.StatusUnauthorized, "invalid session token", nil)
				return
			}

			sess := Session{ID: claims.SessionID, Email: claims.Email, Role: claims.Role}
			next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), sessionKey, sess)))
		})
	}
}
