package middleware

import (
	"context"
	"net/http"

	"github.com/troca-livros/backend/internal/api"
	"github.com/troca-livros/backend/internal/apperr"
	"github.com/troca-livros/backend/internal/auth"
)

// RequireAuth validates the session cookie and injects the user id into the
// request context under auth.UserIDKey.
func RequireAuth(sessions auth.Sessions) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(auth.SessionCookie)
			if err != nil {
				api.Fail(w, apperr.Auth("not authenticated"))
				return
			}

			userID, err := sessions.Get(r.Context(), cookie.Value)
			if err != nil || userID == 0 {
				api.Fail(w, apperr.Auth("session expired"))
				return
			}

			ctx := context.WithValue(r.Context(), auth.UserIDKey, userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
