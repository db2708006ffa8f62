package auth

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/javaBin/talks-site/internal/adapters/session"
)

// defaultReturnURL is where users land after signing in
const defaultReturnURL = "/admin"

// Handler handles auth-related HTTP requests
type Handler struct {
	store         session.Store
	provider      IdentityProvider
	sessionTTL    time.Duration
	secureCookies bool
	logger        *slog.Logger
}

// NewHandler creates a new auth handler
func NewHandler(store session.Store, provider IdentityProvider, secureCookies bool) *Handler {
	return &Handler{
		store:         store,
		provider:      provider,
		sessionTTL:    12 * time.Hour,
		secureCookies: secureCookies,
		logger:        slog.Default().With("component", "auth"),
	}
}

// HandleCallback handles the OIDC callback
func (h *Handler) HandleCallback(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	stateCookie, err := r.Cookie(stateCookieName)
	if err != nil {
		h.logger.ErrorContext(ctx, "missing state cookie")
		http.Error(w, "Invalid state", http.StatusBadRequest)
		return
	}

	state := r.URL.Query().Get("state")
	if state != stateCookie.Value {
		h.logger.ErrorContext(ctx, "state mismatch")
		http.Error(w, "State mismatch", http.StatusBadRequest)
		return
	}

	setCookie(w, stateCookieName, "", -1, h.secureCookies)

	code := r.URL.Query().Get("code")
	if code == "" {
		h.logger.ErrorContext(ctx, "missing authorization code")
		http.Error(w, "Missing authorization code", http.StatusBadRequest)
		return
	}

	identity, err := h.provider.Exchange(ctx, code)
	if errors.Is(err, ErrDomainNotAllowed) {
		h.logger.WarnContext(ctx, "sign-in refused", "error", err)
		http.Error(w, "Forbidden", http.StatusForbidden)
		return
	}
	if err != nil {
		h.logger.ErrorContext(ctx, "OIDC exchange failed", "error", err)
		http.Error(w, "Authentication failed", http.StatusInternalServerError)
		return
	}

	sess, err := h.store.Create(ctx, identity, h.sessionTTL)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to create session", "error", err)
		http.Error(w, "Session creation failed", http.StatusInternalServerError)
		return
	}

	setCookie(w, sessionCookieName, sess.ID, int(h.sessionTTL.Seconds()), h.secureCookies)

	h.logger.InfoContext(ctx, "user authenticated", "email", identity.Email)

	returnURL := defaultReturnURL
	if cookie, err := r.Cookie(returnURLCookie); err == nil && isValidReturnURL(cookie.Value) {
		returnURL = cookie.Value
	}
	setCookie(w, returnURLCookie, "", -1, h.secureCookies)

	http.Redirect(w, r, returnURL, http.StatusFound)
}

// HandleLogout handles user logout
func (h *Handler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if cookie, err := r.Cookie(sessionCookieName); err == nil {
		if err := h.store.Delete(ctx, cookie.Value); err != nil {
			h.logger.ErrorContext(ctx, "failed to delete session", "error", err)
		}
	}

	setCookie(w, sessionCookieName, "", -1, h.secureCookies)

	h.logger.InfoContext(ctx, "user logged out")
	w.WriteHeader(http.StatusNoContent)
}

// isValidReturnURL accepts admin paths only, to prevent open redirects
func isValidReturnURL(url string) bool {
	return url == "/admin" || strings.HasPrefix(url, "/admin/")
}
