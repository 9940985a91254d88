package middleware

import (
	"context"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// AuthCookieName holds the backend-issued bearer token. HTTP-only; the
// browser never reads it.
const AuthCookieName = "gc_admin_auth"

type ctxKey int

const tokenKey ctxKey = iota

// RequireAdmin gates the /admin subrouter. The backend owns the session; this
// only checks that a token cookie exists and is not an already-expired JWT
// before forwarding, and stashes the token on the request context for the
// API client to pick up. Anything else redirects to the login page.
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie(AuthCookieName)
		if err != nil || cookie.Value == "" {
			http.Redirect(w, r, "/admin/login", http.StatusSeeOther)
			return
		}
		if TokenExpired(cookie.Value) {
			ClearAuthCookie(w)
			http.Redirect(w, r, "/admin/login", http.StatusSeeOther)
			return
		}
		next.ServeHTTP(w, r.WithContext(WithToken(r.Context(), cookie.Value)))
	})
}

// TokenExpired reports whether a token is a JWT whose exp claim has passed.
// The parse is unverified: signature checking is the backend's job, this is
// only a local pre-check to avoid proxying calls that will 401 anyway.
// Tokens without an exp claim are passed through for the backend to judge.
func TokenExpired(token string) bool {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		// Not a JWT. The backend may use opaque tokens; let it decide.
		return false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return exp.Before(time.Now())
}

// WithToken stores the admin bearer token on a request context.
func WithToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, tokenKey, token)
}

// TokenFromContext yields the admin bearer token for the current request.
// Matches the core.TokenSource signature.
func TokenFromContext(ctx context.Context) (string, bool) {
	token, ok := ctx.Value(tokenKey).(string)
	return token, ok && token != ""
}

// SetAuthCookie stores the backend token after a successful login.
func SetAuthCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     AuthCookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// ClearAuthCookie logs the admin out locally. The backend token itself is not
// revoked; there is no rotation scheme.
func ClearAuthCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     AuthCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}
