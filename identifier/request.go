// Copyright 2026 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package identifier

import "net/http"

// bodyRequest builds a request that carries a JSON body.  If decode is
// true, the table's JSON-encoded fields are decoded first; then the
// table's body fields are split out of args.
func bodyRequest(method, path string, args Args, table FieldTable, decode bool) (Request, error) {
	var err error
	if decode {
		args, err = JSONDecodeFields(args, table.JSONEncoded)
		if err != nil {
			return Request{}, err
		}
	}
	query, body := SplitFields(args, table.Body)
	return Request{
		Method: method,
		Path:   path,
		Query:  query,
		Body:   body,
	}, nil
}

// queryRequest builds a request with no body, where all of args are
// passed as query parameters.
func queryRequest(method, path string, args Args) Request {
	return Request{
		Method: method,
		Path:   path,
		Query:  args.Copy(),
	}
}

// CreateNamespace builds a POST /namespace request.  JSON-encoded
// namespace fields are decoded, and every namespace field is sent in
// the body.
func CreateNamespace(args Args) (Request, error) {
	return bodyRequest(http.MethodPost, NamespacesPath, args, namespaceFields, true)
}

// UpdateNamespace builds a PUT /namespace/{namespace_id} request.  The
// body is built the same way as for CreateNamespace.
func UpdateNamespace(namespaceID interface{}, args Args) (Request, error) {
	path, err := expandPath(NamespacePath, map[string]interface{}{
		"namespace_id": namespaceID,
	})
	if err != nil {
		return Request{}, err
	}
	return bodyRequest(http.MethodPut, path, args, namespaceFields, true)
}

// GetNamespace builds a GET /namespace/{namespace_id} request.  All
// of args are passed as query parameters.
func GetNamespace(namespaceID interface{}, args Args) (Request, error) {
	path, err := expandPath(NamespacePath, map[string]interface{}{
		"namespace_id": namespaceID,
	})
	if err != nil {
		return Request{}, err
	}
	return queryRequest(http.MethodGet, path, args), nil
}

// DeleteNamespace builds a DELETE /namespace/{namespace_id} request.
// All of args are passed as query parameters.
func DeleteNamespace(namespaceID interface{}, args Args) (Request, error) {
	path, err := expandPath(NamespacePath, map[string]interface{}{
		"namespace_id": namespaceID,
	})
	if err != nil {
		return Request{}, err
	}
	return queryRequest(http.MethodDelete, path, args), nil
}

// CreateIdentifier builds a POST /namespace/{namespace}/identifier
// request.  The namespace is taken from args["namespace"], and since
// it is not an identifier field it is also sent as a query parameter.
//
// Unlike UpdateIdentifier, this does not decode JSON-encoded fields:
// "metadata" and "visible_to" are sent exactly as given.
func CreateIdentifier(args Args) (Request, error) {
	path, err := expandPath(IdentifiersPath, map[string]interface{}{
		"namespace": args["namespace"],
	})
	if err != nil {
		return Request{}, err
	}
	return bodyRequest(http.MethodPost, path, args, identifierFields, false)
}

// GetIdentifier builds a GET /id/{identifier_id} request.  All of
// args are passed as query parameters.
func GetIdentifier(identifierID interface{}, args Args) (Request, error) {
	path, err := expandPath(IdentifierPath, map[string]interface{}{
		"identifier_id": identifierID,
	})
	if err != nil {
		return Request{}, err
	}
	return queryRequest(http.MethodGet, path, args), nil
}

// UpdateIdentifier builds a PUT /id/{identifier_id} request.
// JSON-encoded identifier fields are decoded, and every identifier
// field is sent in the body.
func UpdateIdentifier(identifierID interface{}, args Args) (Request, error) {
	path, err := expandPath(IdentifierPath, map[string]interface{}{
		"identifier_id": identifierID,
	})
	if err != nil {
		return Request{}, err
	}
	return bodyRequest(http.MethodPut, path, args, identifierFields, true)
}
