// Copyright 2026 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package config

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/diffeo/go-identifiers/identifier"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/oauth2"
)

const sample = `
client:
  service_url: http://localhost:5000/
  client_id: client-1
tokens:
  access_token: access-1
  access_token_expires: "1500000000"
  refresh_token: refresh-1
`

func TestParse(t *testing.T) {
	cfg, err := Parse([]byte(sample))
	require.NoError(t, err)
	assert.Equal(t, Config{
		Client: Client{
			ServiceURL: "http://localhost:5000/",
			ClientID:   "client-1",
		},
		Tokens: Tokens{
			AccessToken:        "access-1",
			AccessTokenExpires: 1500000000,
			RefreshToken:       "refresh-1",
		},
	}, *cfg)
	assert.NoError(t, cfg.Validate())
}

func TestParseInvalid(t *testing.T) {
	_, err := Parse([]byte("client: [unterminated"))
	assert.Error(t, err)

	_, err = Parse([]byte("tokens:\n  access_token_expires: soon\n"))
	assert.Error(t, err)
}

func TestValidateMissingTokens(t *testing.T) {
	for _, tokens := range []Tokens{
		{},
		{AccessToken: "a"},
		{RefreshToken: "r"},
	} {
		cfg := Config{Tokens: tokens}
		assert.Equal(t, identifier.ErrNotLoggedIn, cfg.Validate())
	}
}

func TestSaveLoad(t *testing.T) {
	dir, err := ioutil.TempDir("", "config")
	require.NoError(t, err)
	defer os.RemoveAll(dir)
	filename := filepath.Join(dir, "identifier.yaml")

	cfg, err := Parse([]byte(sample))
	require.NoError(t, err)
	cfg.UpdateTokens(&oauth2.Token{
		AccessToken: "access-2",
		Expiry:      time.Unix(1600000000, 0),
	})
	require.NoError(t, cfg.Save(filename))

	info, err := os.Stat(filename)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())

	loaded, err := Load(filename)
	require.NoError(t, err)
	assert.Equal(t, Tokens{
		AccessToken:        "access-2",
		AccessTokenExpires: 1600000000,
		RefreshToken:       "refresh-1",
	}, loaded.Tokens)
	assert.Equal(t, cfg.Client, loaded.Client)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(os.TempDir(), "does-not-exist", "identifier.yaml"))
	assert.True(t, os.IsNotExist(err))
}

func TestExpiresIn(t *testing.T) {
	// the mock clock starts at the Unix epoch
	clk := clock.NewMock()
	clk.Add(1000 * time.Second)

	remaining, ok := Tokens{AccessTokenExpires: 1060}.ExpiresIn(clk)
	assert.True(t, ok)
	assert.Equal(t, time.Minute, remaining)

	clk.Add(2 * time.Minute)
	remaining, ok = Tokens{AccessTokenExpires: 1060}.ExpiresIn(clk)
	assert.True(t, ok)
	assert.Equal(t, -time.Minute, remaining)

	_, ok = Tokens{}.ExpiresIn(clk)
	assert.False(t, ok)
	assert.True(t, Tokens{}.Expiry().IsZero())
}
