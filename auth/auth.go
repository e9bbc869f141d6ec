// Copyright 2026 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

// Package auth provides the ways a client can authenticate to the
// identifier service.  Each Authorizer produces an oauth2.TokenSource;
// NewHTTPClient wraps that around an HTTP client so that every request
// carries a bearer token, refreshing it as needed.
package auth

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/diffeo/go-identifiers/identifier"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"
)

// DefaultTokenURL is the token endpoint used when an authorizer does
// not name one.
const DefaultTokenURL = "https://auth.globus.org/v2/oauth2/token"

// Authorizer is anything that can produce access tokens.
type Authorizer interface {
	// TokenSource returns a source of access tokens.  ctx is used
	// for any token endpoint requests the source makes.  Returns
	// identifier.ErrNotLoggedIn if the authorizer has no
	// credentials.
	TokenSource(ctx context.Context) (oauth2.TokenSource, error)
}

// NewHTTPClient creates an HTTP client that authorizes every request
// with tokens from a.  If base is non-nil, both API requests and token
// endpoint requests are sent through it.
func NewHTTPClient(ctx context.Context, a Authorizer, base *http.Client) (*http.Client, error) {
	if base != nil {
		ctx = context.WithValue(ctx, oauth2.HTTPClient, base)
	}
	ts, err := a.TokenSource(ctx)
	if err != nil {
		return nil, err
	}
	client := oauth2.NewClient(ctx, ts)
	if base != nil {
		client.Timeout = base.Timeout
	}
	return client, nil
}

// AccessToken is a fixed access token that is never refreshed.
type AccessToken struct {
	Token string
}

// TokenSource returns a source that always returns a.Token.
func (a AccessToken) TokenSource(ctx context.Context) (oauth2.TokenSource, error) {
	if a.Token == "" {
		return nil, identifier.ErrNotLoggedIn
	}
	return oauth2.StaticTokenSource(&oauth2.Token{
		AccessToken: a.Token,
		TokenType:   "Bearer",
	}), nil
}

// RefreshToken holds the tokens of a native application login.  The
// access token is used until it expires, and then the refresh token is
// used to get a new one.
type RefreshToken struct {
	// ClientID is the OAuth client ID of the application.
	ClientID string

	// TokenURL is the token endpoint.  If empty, DefaultTokenURL
	// is used.
	TokenURL string

	// AccessToken is the current access token.
	AccessToken string

	// RefreshToken is the long-lived refresh token.
	RefreshToken string

	// Expires is when AccessToken expires.  If zero, the access
	// token is assumed to never expire.
	Expires time.Time

	// OnRefresh, if non-nil, is called with each newly issued
	// token, so that the caller can save it.
	OnRefresh func(*oauth2.Token)
}

// TokenSource returns a source that refreshes the access token when
// it expires.
func (a RefreshToken) TokenSource(ctx context.Context) (oauth2.TokenSource, error) {
	if a.AccessToken == "" || a.RefreshToken == "" {
		return nil, identifier.ErrNotLoggedIn
	}
	tokenURL := a.TokenURL
	if tokenURL == "" {
		tokenURL = DefaultTokenURL
	}
	config := &oauth2.Config{
		ClientID: a.ClientID,
		Endpoint: oauth2.Endpoint{
			TokenURL:  tokenURL,
			AuthStyle: oauth2.AuthStyleInParams,
		},
	}
	initial := &oauth2.Token{
		AccessToken:  a.AccessToken,
		RefreshToken: a.RefreshToken,
		TokenType:    "Bearer",
		Expiry:       a.Expires,
	}
	ts := config.TokenSource(ctx, initial)
	if a.OnRefresh == nil {
		return ts, nil
	}
	return &notifyingSource{
		base:      ts,
		last:      initial.AccessToken,
		onRefresh: a.OnRefresh,
	}, nil
}

// notifyingSource calls a hook whenever its base source produces a
// token different from the last one it saw.
type notifyingSource struct {
	base      oauth2.TokenSource
	onRefresh func(*oauth2.Token)

	mu   sync.Mutex
	last string
}

func (s *notifyingSource) Token() (*oauth2.Token, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	tok, err := s.base.Token()
	if err != nil {
		return nil, err
	}
	if tok.AccessToken != s.last {
		s.last = tok.AccessToken
		s.onRefresh(tok)
	}
	return tok, nil
}

// ClientCredentials authenticates as a confidential client using the
// OAuth2 client credentials grant.
type ClientCredentials struct {
	ClientID     string
	ClientSecret string

	// TokenURL is the token endpoint.  If empty, DefaultTokenURL
	// is used.
	TokenURL string

	// Scopes lists the scopes to request.
	Scopes []string
}

// TokenSource returns a source that requests a new token whenever the
// current one expires.
func (a ClientCredentials) TokenSource(ctx context.Context) (oauth2.TokenSource, error) {
	if a.ClientID == "" || a.ClientSecret == "" {
		return nil, identifier.ErrNotLoggedIn
	}
	tokenURL := a.TokenURL
	if tokenURL == "" {
		tokenURL = DefaultTokenURL
	}
	config := &clientcredentials.Config{
		ClientID:     a.ClientID,
		ClientSecret: a.ClientSecret,
		TokenURL:     tokenURL,
		Scopes:       a.Scopes,
	}
	return config.TokenSource(ctx), nil
}
