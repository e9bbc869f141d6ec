// Copyright 2026 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

// Package identifiertest provides an in-process fake of the identifier
// service for tests.  It keeps namespaces and identifiers in memory
// and records every request it receives:
//
//	server := identifiertest.NewServer()
//	defer server.Close()
//	client, err := restclient.New(server.URL, auth.AccessToken{Token: server.Token})
//	...
//	reqs := server.Requests()
//
// The fake stores request bodies as given.  It does not check
// permissions, mint external identifiers, or validate fields.
package identifiertest

import (
	"bytes"
	"errors"
	"io/ioutil"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"

	"github.com/diffeo/go-identifiers/restdata"
	"github.com/gorilla/mux"
	"github.com/urfave/negroni"
)

// DefaultToken is the bearer token the server accepts unless Token is
// changed.
const DefaultToken = "test-token"

// Request is a single request received by the server.
type Request struct {
	Method string

	// Path is the escaped request path, with a leading slash.
	Path string

	Query url.Values

	// Body is the decoded JSON request body, or nil if there was
	// none.
	Body map[string]interface{}

	// Authorization is the value of the Authorization: header.
	Authorization string
}

// failure is a canned error response.
type failure struct {
	Status int
	Body   string
}

// Server is a fake identifier service.
type Server struct {
	*httptest.Server

	// Token is the only access token the server accepts.  If
	// empty, any request is accepted.
	Token string

	mu          sync.Mutex
	requests    []Request
	failures    []failure
	namespaces  map[string]restdata.Record
	identifiers map[string]restdata.Record
}

// NewServer starts a new fake service.  The caller must Close it.
func NewServer() *Server {
	s := &Server{
		Token:       DefaultToken,
		namespaces:  make(map[string]restdata.Record),
		identifiers: make(map[string]restdata.Record),
	}
	n := negroni.New(negroni.NewRecovery())
	n.UseFunc(s.record)
	n.UseHandler(s.router())
	s.Server = httptest.NewServer(n)
	return s
}

// Requests returns a copy of the requests received so far.
func (s *Server) Requests() []Request {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Request(nil), s.requests...)
}

// FailNext makes the next request fail with the given HTTP status and
// raw response body.  If body looks like JSON it is sent as
// application/json, otherwise as text/plain.
func (s *Server) FailNext(status int, body string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failures = append(s.failures, failure{Status: status, Body: body})
}

// Namespace returns the stored copy of a namespace, or nil.
func (s *Server) Namespace(id string) restdata.Record {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.namespaces[id]
}

// Identifier returns the stored copy of an identifier, or nil.
func (s *Server) Identifier(id string) restdata.Record {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.identifiers[id]
}

// record is negroni middleware that logs the request, then enforces
// canned failures and authorization.
func (s *Server) record(w http.ResponseWriter, r *http.Request, next http.HandlerFunc) {
	var body map[string]interface{}
	data, err := ioutil.ReadAll(r.Body)
	if err != nil {
		s.fail(w, restdata.ErrBadRequest{Err: err})
		return
	}
	if len(data) > 0 {
		err = restdata.Decode(r.Header.Get("Content-Type"), bytes.NewReader(data), &body)
		if err != nil {
			s.fail(w, restdata.ErrBadRequest{Err: err})
			return
		}
	}
	r.Body = ioutil.NopCloser(bytes.NewReader(data))

	s.mu.Lock()
	s.requests = append(s.requests, Request{
		Method:        r.Method,
		Path:          r.URL.EscapedPath(),
		Query:         r.URL.Query(),
		Body:          body,
		Authorization: r.Header.Get("Authorization"),
	})
	var canned *failure
	if len(s.failures) > 0 {
		canned = &s.failures[0]
		s.failures = s.failures[1:]
	}
	s.mu.Unlock()

	if canned != nil {
		contentType := "text/plain"
		if len(canned.Body) > 0 && (canned.Body[0] == '{' || canned.Body[0] == '[') {
			contentType = restdata.JSONMediaType
		}
		w.Header().Set("Content-Type", contentType)
		w.WriteHeader(canned.Status)
		w.Write([]byte(canned.Body))
		return
	}

	if s.Token != "" && r.Header.Get("Authorization") != "Bearer "+s.Token {
		s.reply(w, http.StatusUnauthorized, restdata.ErrorResponse{
			Code:    "AuthenticationFailed",
			Message: "Missing or invalid bearer token",
		})
		return
	}

	next(w, r)
}

func (s *Server) reply(w http.ResponseWriter, status int, out interface{}) {
	w.Header().Set("Content-Type", restdata.JSONMediaType)
	w.WriteHeader(status)
	restdata.Encode(w, out)
}

func (s *Server) fail(w http.ResponseWriter, err error) {
	resp := restdata.ErrorResponse{}
	status := resp.FromError(err)
	s.reply(w, status, resp)
}

var errNoBody = restdata.ErrBadRequest{Err: errors.New("Missing request body")}

func (s *Server) router() http.Handler {
	r := mux.NewRouter()
	r.Path("/namespace").Methods("POST").HandlerFunc(s.namespacePost)
	r.Path("/namespace/{namespace_id}").Methods("GET").HandlerFunc(s.namespaceGet)
	r.Path("/namespace/{namespace_id}").Methods("PUT").HandlerFunc(s.namespacePut)
	r.Path("/namespace/{namespace_id}").Methods("DELETE").HandlerFunc(s.namespaceDelete)
	r.Path("/namespace/{namespace_id}/identifier").Methods("POST").HandlerFunc(s.identifierPost)
	r.Path("/id/{identifier_id:.+}").Methods("GET").HandlerFunc(s.identifierGet)
	r.Path("/id/{identifier_id:.+}").Methods("PUT").HandlerFunc(s.identifierPut)
	r.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.fail(w, restdata.ErrNotFound{Err: errors.New("No such resource " + r.URL.Path)})
	})
	return r
}

// readBody decodes a request body that the record middleware has
// already validated.
func readBody(r *http.Request) (map[string]interface{}, error) {
	var body map[string]interface{}
	err := restdata.Decode(r.Header.Get("Content-Type"), r.Body, &body)
	if err != nil || body == nil {
		return nil, errNoBody
	}
	return body, nil
}

// merge copies the non-nil values of body into rec.
func merge(rec restdata.Record, body map[string]interface{}) {
	for k, v := range body {
		if v != nil {
			rec[k] = v
		}
	}
}

func copyRecord(rec restdata.Record) restdata.Record {
	result := make(restdata.Record, len(rec))
	for k, v := range rec {
		result[k] = v
	}
	return result
}
