package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/coreos/go-oidc/v3/oidc"
	"github.com/javaBin/talks-site/internal/adapters/session"
	"golang.org/x/oauth2"
)

// ErrDomainNotAllowed indicates that the signed-in email is outside the allowed domain
var ErrDomainNotAllowed = errors.New("email domain not allowed")

// IdentityProvider starts and completes an authorization code flow
type IdentityProvider interface {
	AuthURL(state string) string
	Exchange(ctx context.Context, code string) (session.Identity, error)
}

// OIDCConfig holds OIDC provider configuration
type OIDCConfig struct {
	IssuerURL     string
	ClientID      string
	ClientSecret  string
	RedirectURL   string
	AllowedDomain string
}

// Authenticator handles OIDC authentication
type Authenticator struct {
	config        oauth2.Config
	verifier      *oidc.IDTokenVerifier
	allowedDomain string
}

// NewAuthenticator creates a new OIDC authenticator, discovering the provider endpoints
func NewAuthenticator(ctx context.Context, cfg OIDCConfig) (*Authenticator, error) {
	provider, err := oidc.NewProvider(ctx, cfg.IssuerURL)
	if err != nil {
		return nil, fmt.Errorf("failed to create OIDC provider: %w", err)
	}

	return &Authenticator{
		config: oauth2.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			RedirectURL:  cfg.RedirectURL,
			Endpoint:     provider.Endpoint(),
			Scopes:       []string{oidc.ScopeOpenID, "email", "profile"},
		},
		verifier:      provider.Verifier(&oidc.Config{ClientID: cfg.ClientID}),
		allowedDomain: strings.ToLower(strings.TrimPrefix(cfg.AllowedDomain, "@")),
	}, nil
}

// AuthURL generates the authorization URL for login
func (a *Authenticator) AuthURL(state string) string {
	return a.config.AuthCodeURL(state)
}

// Exchange exchanges the authorization code for tokens and returns the
// identity found in the verified ID token
func (a *Authenticator) Exchange(ctx context.Context, code string) (session.Identity, error) {
	token, err := a.config.Exchange(ctx, code)
	if err != nil {
		return session.Identity{}, fmt.Errorf("failed to exchange code for token: %w", err)
	}

	rawIDToken, ok := token.Extra("id_token").(string)
	if !ok {
		return session.Identity{}, fmt.Errorf("no id_token in token response")
	}

	idToken, err := a.verifier.Verify(ctx, rawIDToken)
	if err != nil {
		return session.Identity{}, fmt.Errorf("failed to verify ID token: %w", err)
	}

	var claims struct {
		Email         string `json:"email"`
		EmailVerified *bool  `json:"email_verified"`
		Name          string `json:"name"`
	}
	if err := idToken.Claims(&claims); err != nil {
		return session.Identity{}, fmt.Errorf("failed to parse claims: %w", err)
	}

	if claims.Email == "" {
		return session.Identity{}, fmt.Errorf("no email claim in ID token")
	}
	if claims.EmailVerified != nil && !*claims.EmailVerified {
		return session.Identity{}, fmt.Errorf("email %s is not verified", claims.Email)
	}
	if !emailInDomain(claims.Email, a.allowedDomain) {
		return session.Identity{}, fmt.Errorf("%w: %s", ErrDomainNotAllowed, claims.Email)
	}

	return session.Identity{Email: claims.Email, Name: claims.Name}, nil
}

// emailInDomain reports whether email belongs to domain. An empty domain allows any email.
func emailInDomain(email, domain string) bool {
	if domain == "" {
		return true
	}
	at := strings.LastIndex(email, "@")
	return at >= 0 && strings.EqualFold(email[at+1:], domain)
}
