package middleware

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/quicknote/quicknote-go/internal/crypto"
	"github.com/quicknote/quicknote-go/internal/model"
)

// SessionCookie is the name of the signed session cookie.
const SessionCookie = "userId"

const loginPath = "/auth/login"

type contextKey string

const userKey contextKey = "user"

// UserLoader resolves a session's user id to a live account record.
type UserLoader interface {
	GetByID(ctx context.Context, id int64) (*model.User, error)
}

// RequireAuth returns middleware that gates a route behind a valid
// session. Every failure mode — missing cookie, tampered token, user
// gone, store error — resolves to a redirect to the login page, never
// a 5xx; a bad session is fixed by logging in again.
func RequireAuth(users UserLoader, secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(SessionCookie)
			if err != nil {
				http.Redirect(w, r, loginPath, http.StatusFound)
				return
			}

			userID, err := crypto.VerifySession(cookie.Value, secret)
			if err != nil {
				ClearSessionCookie(w)
				http.Redirect(w, r, loginPath, http.StatusFound)
				return
			}

			user, err := users.GetByID(r.Context(), userID)
			if err != nil {
				// Covers both a dangling session (account deleted
				// after the token was issued) and store errors.
				slog.Error("auth middleware: user lookup failed", "user_id", userID, "error", err)
				ClearSessionCookie(w)
				http.Redirect(w, r, loginPath, http.StatusFound)
				return
			}

			ctx := context.WithValue(r.Context(), userKey, user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// UserFromContext extracts the authenticated user from the request context.
func UserFromContext(ctx context.Context) (*model.User, bool) {
	user, ok := ctx.Value(userKey).(*model.User)
	return user, ok
}

// SetSessionCookie attaches the signed session token to the response.
// No Max-Age: the cookie lives for the browser session.
func SetSessionCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookie,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
	})
}

// ClearSessionCookie expires the session cookie immediately.
func ClearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookie,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
		MaxAge:   -1,
	})
}
