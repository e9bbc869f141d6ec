// Copyright 2026 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

// Package identifier builds requests for the identifier registration
// service.  It does no I/O of its own: each builder takes a set of
// named call arguments and produces a Request holding the HTTP
// method, a relative path, the query parameters, and the JSON body.
// The restclient package sends these requests.
//
// Which arguments go into the body and which stay on the query string
// is decided by a fixed field table per entity type:
//
//	entity      body fields                     JSON-encoded fields
//	Namespace   description, display_name,      creators, admins,
//	            creators, admins,               identifier_admins,
//	            identifier_admins,              provider_config
//	            provider_type, provider_config
//	Identifier  location, checksum,             metadata, visible_to
//	            identifier, checksum_function,
//	            metadata, visible_to
//
// A JSON-encoded field is one whose value usually arrives as JSON text
// (say, from a command-line flag) and is decoded before being placed
// in the request body.  For instance,
//
//	req, err := identifier.CreateNamespace(identifier.Args{
//	        "display_name": "Test",
//	        "creators":     `["urn:globus:groups:id:abc"]`,
//	})
//
// produces a POST to "namespace" whose body holds the display name
// and the creators list as a decoded JSON array, and whose query
// string is empty.
package identifier

// Args holds the named arguments for a single call.  Values are
// usually strings or string slices, but may be any structure that
// can be serialized as JSON.  A nil value is treated as absent.
type Args map[string]interface{}

// Copy returns a shallow copy of args.  It never returns nil.
func (args Args) Copy() Args {
	result := make(Args, len(args))
	for k, v := range args {
		result[k] = v
	}
	return result
}

// Request is the result of building a single call: everything the
// transport needs to send exactly one HTTP request.
type Request struct {
	// Method is the HTTP method, "GET", "POST", "PUT", or "DELETE".
	Method string

	// Path is the request path relative to the service base URL,
	// with no leading slash.  Any embedded identifiers are
	// already percent-encoded.
	Path string

	// Query holds the arguments that are sent as URL query
	// parameters.  It is never nil.
	Query Args

	// Body holds the arguments that are sent as the JSON request
	// body.  It is nil for requests that carry no body.
	Body Args
}
