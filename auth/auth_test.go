// Copyright 2026 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package auth

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/diffeo/go-identifiers/identifier"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/oauth2"
)

// tokenServer is a fake OAuth2 token endpoint that issues "new-token"
// for every request and counts requests by grant type.
type tokenServer struct {
	*httptest.Server
	refreshes         int32
	clientCredentials int32
}

func newTokenServer(t *testing.T) *tokenServer {
	ts := &tokenServer{}
	ts.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !assert.NoError(t, r.ParseForm()) {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		switch r.Form.Get("grant_type") {
		case "refresh_token":
			assert.Equal(t, "refresh-1", r.Form.Get("refresh_token"))
			assert.Equal(t, "client", r.Form.Get("client_id"))
			atomic.AddInt32(&ts.refreshes, 1)
		case "client_credentials":
			atomic.AddInt32(&ts.clientCredentials, 1)
		default:
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, `{"access_token":"new-token","token_type":"Bearer","expires_in":3600,"refresh_token":"refresh-2"}`)
	}))
	t.Cleanup(ts.Close)
	return ts
}

// apiServer records the Authorization header of every request.
func apiServer(t *testing.T, headers *[]string) *httptest.Server {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*headers = append(*headers, r.Header.Get("Authorization"))
		w.WriteHeader(http.StatusNoContent)
	}))
	t.Cleanup(server.Close)
	return server
}

func get(t *testing.T, client *http.Client, url string) {
	resp, err := client.Get(url)
	if assert.NoError(t, err) {
		resp.Body.Close()
	}
}

func TestAccessToken(t *testing.T) {
	var headers []string
	api := apiServer(t, &headers)
	client, err := NewHTTPClient(context.Background(), AccessToken{Token: "abc"}, nil)
	require.NoError(t, err)
	get(t, client, api.URL)
	assert.Equal(t, []string{"Bearer abc"}, headers)
}

func TestMissingCredentials(t *testing.T) {
	authorizers := []Authorizer{
		AccessToken{},
		RefreshToken{ClientID: "client", AccessToken: "a"},
		RefreshToken{ClientID: "client", RefreshToken: "r"},
		ClientCredentials{ClientID: "client"},
	}
	for _, a := range authorizers {
		_, err := NewHTTPClient(context.Background(), a, nil)
		assert.Equal(t, identifier.ErrNotLoggedIn, err, "%+v", a)
	}
}

func TestRefreshTokenExpired(t *testing.T) {
	tokens := newTokenServer(t)
	var headers []string
	api := apiServer(t, &headers)

	var refreshed []*oauth2.Token
	a := RefreshToken{
		ClientID:     "client",
		TokenURL:     tokens.URL,
		AccessToken:  "old-token",
		RefreshToken: "refresh-1",
		Expires:      time.Now().Add(-time.Hour),
		OnRefresh: func(tok *oauth2.Token) {
			refreshed = append(refreshed, tok)
		},
	}
	client, err := NewHTTPClient(context.Background(), a, tokens.Client())
	require.NoError(t, err)

	get(t, client, api.URL)
	get(t, client, api.URL)

	assert.Equal(t, []string{"Bearer new-token", "Bearer new-token"}, headers)
	assert.Equal(t, int32(1), atomic.LoadInt32(&tokens.refreshes))
	if assert.Len(t, refreshed, 1) {
		assert.Equal(t, "new-token", refreshed[0].AccessToken)
		assert.Equal(t, "refresh-2", refreshed[0].RefreshToken)
	}
}

func TestRefreshTokenValid(t *testing.T) {
	tokens := newTokenServer(t)
	var headers []string
	api := apiServer(t, &headers)

	called := false
	a := RefreshToken{
		ClientID:     "client",
		TokenURL:     tokens.URL,
		AccessToken:  "old-token",
		RefreshToken: "refresh-1",
		Expires:      time.Now().Add(time.Hour),
		OnRefresh:    func(*oauth2.Token) { called = true },
	}
	client, err := NewHTTPClient(context.Background(), a, nil)
	require.NoError(t, err)

	get(t, client, api.URL)
	assert.Equal(t, []string{"Bearer old-token"}, headers)
	assert.Equal(t, int32(0), atomic.LoadInt32(&tokens.refreshes))
	assert.False(t, called)
}

func TestClientCredentials(t *testing.T) {
	tokens := newTokenServer(t)
	var headers []string
	api := apiServer(t, &headers)

	a := ClientCredentials{
		ClientID:     "client",
		ClientSecret: "secret",
		TokenURL:     tokens.URL,
		Scopes:       []string{"urn:globus:auth:scope:identifiers.globus.org:all"},
	}
	client, err := NewHTTPClient(context.Background(), a, nil)
	require.NoError(t, err)

	get(t, client, api.URL)
	get(t, client, api.URL)
	assert.Equal(t, []string{"Bearer new-token", "Bearer new-token"}, headers)
	assert.Equal(t, int32(1), atomic.LoadInt32(&tokens.clientCredentials))
}
