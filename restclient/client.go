// Copyright 2015, 2026 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

// Package restclient provides an HTTP client for the identifier
// registration service.
//
// Call NewFromConfig() with a loaded configuration file, or New()
// with the base URL of the service and an authorizer; for instance,
//
//	c, err := restclient.New("", auth.AccessToken{Token: token})
//	ns, err := c.CreateNamespace(identifier.Args{
//	        "display_name": "My Namespace",
//	        "creators":     `["urn:globus:groups:id:abc"]`,
//	})
//
// Each method sends exactly one request.  Failing HTTP responses are
// returned as ErrorHTTP; nothing is retried.
package restclient

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/diffeo/go-identifiers/auth"
	"github.com/diffeo/go-identifiers/config"
	"github.com/sirupsen/logrus"
	"golang.org/x/oauth2"
)

// DefaultBaseURL is the service used when New is given an empty URL.
const DefaultBaseURL = "https://identifiers.globus.org/"

// DefaultUserAgent is sent with requests unless WithUserAgent says
// otherwise.
const DefaultUserAgent = "go-identifiers"

// Client talks to the identifier service.  It is safe for concurrent
// use.
type Client struct {
	resource
}

type options struct {
	httpClient *http.Client
	logger     logrus.FieldLogger
	userAgent  string
	onRefresh  func(*oauth2.Token)
}

// Option configures a Client.
type Option func(*options)

// WithHTTPClient sets the underlying HTTP client.  Its transport is
// wrapped to add authorization and metrics.
func WithHTTPClient(client *http.Client) Option {
	return func(o *options) {
		o.httpClient = client
	}
}

// WithLogger sets the logger; the default is the logrus standard
// logger.
func WithLogger(logger logrus.FieldLogger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithUserAgent sets the User-Agent header sent with every request.
func WithUserAgent(userAgent string) Option {
	return func(o *options) {
		o.userAgent = userAgent
	}
}

// WithOnRefresh sets a function called with every newly issued access
// token.  It is only used by NewFromConfig; there is no default.
func WithOnRefresh(onRefresh func(*oauth2.Token)) Option {
	return func(o *options) {
		o.onRefresh = onRefresh
	}
}

func makeOptions(opts []Option) options {
	o := options{
		httpClient: &http.Client{},
		logger:     logrus.StandardLogger(),
		userAgent:  DefaultUserAgent,
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// New creates a new client that speaks to the service at baseURL,
// authorizing requests with a.  If baseURL is empty, DefaultBaseURL
// is used.
func New(baseURL string, a auth.Authorizer, opts ...Option) (*Client, error) {
	o := makeOptions(opts)

	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if !strings.HasSuffix(baseURL, "/") {
		baseURL += "/"
	}
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, err
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("Service URL %q is not absolute", baseURL)
	}

	base := &http.Client{
		Transport:     instrument(o.httpClient.Transport),
		CheckRedirect: o.httpClient.CheckRedirect,
		Jar:           o.httpClient.Jar,
		Timeout:       o.httpClient.Timeout,
	}
	httpClient, err := auth.NewHTTPClient(context.Background(), a, base)
	if err != nil {
		return nil, err
	}

	return &Client{
		resource: resource{
			URL:       u,
			HTTP:      httpClient,
			UserAgent: o.userAgent,
			Logger:    o.logger,
		},
	}, nil
}

// NewFromConfig creates a new client from a configuration file's
// contents.  It uses the configured access token until it expires and
// then refreshes it, calling the WithOnRefresh function if one is
// given.  Returns identifier.ErrNotLoggedIn without contacting the
// service if the configuration has no tokens.
func NewFromConfig(cfg *config.Config, opts ...Option) (*Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	o := makeOptions(opts)
	a := auth.RefreshToken{
		ClientID:     cfg.Client.ClientID,
		TokenURL:     cfg.Client.AuthURL,
		AccessToken:  cfg.Tokens.AccessToken,
		RefreshToken: cfg.Tokens.RefreshToken,
		Expires:      cfg.Tokens.Expiry(),
		OnRefresh:    o.onRefresh,
	}
	return New(cfg.Client.ServiceURL, a, opts...)
}
