// Copyright 2026 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

// Package config reads and writes the identifier client's YAML
// configuration file.  A typical file looks like
//
//	client:
//	  service_url: https://identifiers.globus.org/
//	  client_id: 2d6a8d8e-7ecf-4d09-8b8e-1d0b7e7f1a4c
//	tokens:
//	  access_token: AQBX...
//	  access_token_expires: 1500000000
//	  refresh_token: AQBW...
//
// The tokens section is normally written by a login tool and updated
// whenever the access token is refreshed.
package config

import (
	"io/ioutil"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/diffeo/go-identifiers/identifier"
	"github.com/mitchellh/mapstructure"
	"golang.org/x/oauth2"
	"gopkg.in/yaml.v2"
)

// Client describes the service and the application talking to it.
type Client struct {
	// ServiceURL is the base URL of the identifier service.
	ServiceURL string `mapstructure:"service_url" yaml:"service_url,omitempty"`

	// ClientID is the OAuth client ID of this application.
	ClientID string `mapstructure:"client_id" yaml:"client_id,omitempty"`

	// AuthURL is the OAuth token endpoint.  If empty, the
	// default endpoint is used.
	AuthURL string `mapstructure:"auth_url" yaml:"auth_url,omitempty"`
}

// Tokens holds the result of a login.
type Tokens struct {
	AccessToken string `mapstructure:"access_token" yaml:"access_token,omitempty"`

	// AccessTokenExpires is the expiry time of AccessToken, in
	// seconds since the Unix epoch, or 0 if unknown.
	AccessTokenExpires int64 `mapstructure:"access_token_expires" yaml:"access_token_expires,omitempty"`

	RefreshToken string `mapstructure:"refresh_token" yaml:"refresh_token,omitempty"`
}

// Config is the complete configuration file.
type Config struct {
	Client Client `mapstructure:"client" yaml:"client"`
	Tokens Tokens `mapstructure:"tokens" yaml:"tokens"`
}

// Load reads a configuration file.
func Load(filename string) (*Config, error) {
	bytes, err := ioutil.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	return Parse(bytes)
}

// Parse decodes a YAML configuration document.  Values are converted
// where possible, so a quoted expiry time is accepted.
func Parse(bytes []byte) (*Config, error) {
	var raw map[string]interface{}
	err := yaml.Unmarshal(bytes, &raw)
	if err != nil {
		return nil, err
	}
	result := &Config{}
	config := mapstructure.DecoderConfig{
		Result:           result,
		WeaklyTypedInput: true,
	}
	decoder, err := mapstructure.NewDecoder(&config)
	if err == nil {
		err = decoder.Decode(raw)
	}
	if err != nil {
		return nil, err
	}
	return result, nil
}

// Save writes the configuration to a file, readable only by its
// owner since it contains tokens.
func (c *Config) Save(filename string) error {
	bytes, err := yaml.Marshal(c)
	if err == nil {
		err = ioutil.WriteFile(filename, bytes, 0600)
	}
	return err
}

// Validate checks that the configuration holds a complete login.
// Returns identifier.ErrNotLoggedIn if either token is missing.
func (c *Config) Validate() error {
	if c.Tokens.AccessToken == "" || c.Tokens.RefreshToken == "" {
		return identifier.ErrNotLoggedIn
	}
	return nil
}

// UpdateTokens replaces the tokens with a newly issued token.  The
// refresh token is kept if tok does not carry a new one.
func (c *Config) UpdateTokens(tok *oauth2.Token) {
	c.Tokens.AccessToken = tok.AccessToken
	if tok.RefreshToken != "" {
		c.Tokens.RefreshToken = tok.RefreshToken
	}
	if tok.Expiry.IsZero() {
		c.Tokens.AccessTokenExpires = 0
	} else {
		c.Tokens.AccessTokenExpires = tok.Expiry.Unix()
	}
}

// Expiry returns the time the access token expires, or the zero time
// if that is unknown.
func (t Tokens) Expiry() time.Time {
	if t.AccessTokenExpires == 0 {
		return time.Time{}
	}
	return time.Unix(t.AccessTokenExpires, 0)
}

// ExpiresIn returns how long remains until the access token expires,
// as of clk's current time.  This is negative if it has already
// expired.  ok is false if the expiry time is unknown.
func (t Tokens) ExpiresIn(clk clock.Clock) (remaining time.Duration, ok bool) {
	expiry := t.Expiry()
	if expiry.IsZero() {
		return 0, false
	}
	return expiry.Sub(clk.Now()), true
}
