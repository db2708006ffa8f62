package auth

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"net/http"

	"github.com/javaBin/talks-site/internal/adapters/session"
)

// ContextKey for storing user info in request context
type ContextKey string

const (
	// SessionKey is the context key for the authenticated session
	SessionKey ContextKey = "session"

	sessionCookieName = "session"
	stateCookieName   = "oauth_state"
	returnURLCookie   = "return_url"
)

// GetSession retrieves the session from the context, returns nil if not present
func GetSession(ctx context.Context) *session.Session {
	if sess, ok := ctx.Value(SessionKey).(*session.Session); ok {
		return sess
	}
	return nil
}

// Middleware protects routes with OIDC authentication
type Middleware struct {
	store         session.Store
	provider      IdentityProvider
	secureCookies bool
}

// NewMiddleware creates a new auth middleware
func NewMiddleware(store session.Store, provider IdentityProvider, secureCookies bool) *Middleware {
	return &Middleware{
		store:         store,
		provider:      provider,
		secureCookies: secureCookies,
	}
}

// RequireAuth wraps a handler requiring authentication. Unauthenticated GET
// requests are redirected to the provider; other requests are rejected.
func (m *Middleware) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sess := m.currentSession(r)
		if sess == nil {
			if r.Method == http.MethodGet {
				m.redirectToLogin(w, r)
				return
			}
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"status":"error","message":"authentication required"}` + "\n"))
			return
		}

		ctx := context.WithValue(r.Context(), SessionKey, sess)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (m *Middleware) currentSession(r *http.Request) *session.Session {
	cookie, err := r.Cookie(sessionCookieName)
	if err != nil {
		return nil
	}
	sess, err := m.store.Get(r.Context(), cookie.Value)
	if err != nil {
		return nil
	}
	return sess
}

// redirectToLogin generates state, stores it, and redirects to OIDC provider
func (m *Middleware) redirectToLogin(w http.ResponseWriter, r *http.Request) {
	state, err := generateState()
	if err != nil {
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	setCookie(w, stateCookieName, state, 300, m.secureCookies)
	setCookie(w, returnURLCookie, r.URL.Path, 300, m.secureCookies)

	http.Redirect(w, r, m.provider.AuthURL(state), http.StatusFound)
}

func setCookie(w http.ResponseWriter, name, value string, maxAge int, secure bool) {
	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// generateState generates a cryptographically secure random state parameter
func generateState() (string, error) {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return base64.URLEncoding.EncodeToString(b), nil
}
