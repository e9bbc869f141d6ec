// Copyright 2026 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package identifiertest

import (
	"errors"
	"net/http"

	"github.com/diffeo/go-identifiers/restdata"
	"github.com/gorilla/mux"
	"github.com/satori/go.uuid"
)

func (s *Server) namespacePost(w http.ResponseWriter, r *http.Request) {
	body, err := readBody(r)
	if err != nil {
		s.fail(w, err)
		return
	}
	rec := restdata.Record{}
	merge(rec, body)
	rec["id"] = uuid.NewV4().String()

	s.mu.Lock()
	s.namespaces[rec["id"].(string)] = rec
	out := copyRecord(rec)
	s.mu.Unlock()

	s.reply(w, http.StatusCreated, out)
}

// lookupNamespace finds the namespace named in the request path.  The
// caller must hold s.mu.
func (s *Server) lookupNamespace(r *http.Request) (restdata.Record, error) {
	id := mux.Vars(r)["namespace_id"]
	rec, present := s.namespaces[id]
	if !present {
		return nil, restdata.ErrNotFound{Err: errors.New("No such namespace " + id)}
	}
	return rec, nil
}

func (s *Server) namespaceGet(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	rec, err := s.lookupNamespace(r)
	if err == nil {
		rec = copyRecord(rec)
	}
	s.mu.Unlock()
	if err != nil {
		s.fail(w, err)
		return
	}
	s.reply(w, http.StatusOK, rec)
}

func (s *Server) namespacePut(w http.ResponseWriter, r *http.Request) {
	body, err := readBody(r)
	if err != nil {
		s.fail(w, err)
		return
	}
	s.mu.Lock()
	rec, err := s.lookupNamespace(r)
	if err == nil {
		merge(rec, body)
		rec = copyRecord(rec)
	}
	s.mu.Unlock()
	if err != nil {
		s.fail(w, err)
		return
	}
	s.reply(w, http.StatusOK, rec)
}

func (s *Server) namespaceDelete(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	rec, err := s.lookupNamespace(r)
	if err == nil {
		delete(s.namespaces, rec["id"].(string))
	}
	s.mu.Unlock()
	if err != nil {
		s.fail(w, err)
		return
	}
	s.reply(w, http.StatusOK, rec)
}

func (s *Server) identifierPost(w http.ResponseWriter, r *http.Request) {
	body, err := readBody(r)
	if err != nil {
		s.fail(w, err)
		return
	}
	s.mu.Lock()
	ns, err := s.lookupNamespace(r)
	var out restdata.Record
	if err == nil {
		rec := restdata.Record{}
		merge(rec, body)
		rec["id"] = uuid.NewV4().String()
		rec["namespace"] = ns["id"]
		rec["active"] = true
		s.identifiers[rec["id"].(string)] = rec
		out = copyRecord(rec)
	}
	s.mu.Unlock()
	if err != nil {
		s.fail(w, err)
		return
	}
	s.reply(w, http.StatusCreated, out)
}

// lookupIdentifier finds the identifier named in the request path.
// The caller must hold s.mu.
func (s *Server) lookupIdentifier(r *http.Request) (restdata.Record, error) {
	id := mux.Vars(r)["identifier_id"]
	rec, present := s.identifiers[id]
	if !present {
		return nil, restdata.ErrNotFound{Err: errors.New("No such identifier " + id)}
	}
	return rec, nil
}

func (s *Server) identifierGet(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	rec, err := s.lookupIdentifier(r)
	if err == nil {
		rec = copyRecord(rec)
	}
	s.mu.Unlock()
	if err != nil {
		s.fail(w, err)
		return
	}
	s.reply(w, http.StatusOK, rec)
}

func (s *Server) identifierPut(w http.ResponseWriter, r *http.Request) {
	body, err := readBody(r)
	if err != nil {
		s.fail(w, err)
		return
	}
	s.mu.Lock()
	rec, err := s.lookupIdentifier(r)
	if err == nil {
		merge(rec, body)
		rec = copyRecord(rec)
	}
	s.mu.Unlock()
	if err != nil {
		s.fail(w, err)
		return
	}
	s.reply(w, http.StatusOK, rec)
}
