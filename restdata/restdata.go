// Copyright 2015-2016, 2026 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

// Package restdata defines the data structures passed across the wire
// to and from the identifier registration service.  Requests and
// responses are JSON, sent as the application/json MIME type.
//
// # Resources
//
// The service has two kinds of resource.  A namespace is a named
// collection under which identifiers are minted; it is addressed as
//
//	/namespace/{namespace_id}
//
// and new namespaces are created by HTTP POST to /namespace.  An
// identifier is a single registered external identifier; it is
// addressed as
//
//	/id/{identifier_id}
//
// and new identifiers are created by HTTP POST to
// /namespace/{namespace_id}/identifier.
//
// Responses are returned to callers as a generic Record, since the
// service may add fields at any time.  Record.Namespace() and
// Record.Identifier() convert a record into the typed structures in
// this package, ignoring any fields they do not know about.
//
// # Errors
//
// Failing HTTP statuses are usually accompanied by an encoding of
// ErrorResponse, but a proxy in front of the service may return any
// other body.
package restdata

// JSONMediaType is the MIME type of requests and responses.
const JSONMediaType = "application/json"

// Record is a single decoded JSON object from the service.
type Record map[string]interface{}

// Checksum is one checksum of the data an identifier refers to.
type Checksum struct {
	// Function names the checksum function, such as "sha256".
	Function string `json:"function"`

	// Value is the checksum itself, usually hex-encoded.
	Value string `json:"value"`
}

// Namespace is the representation of a single namespace.
type Namespace struct {
	// ID is the service-assigned identifier of the namespace.
	ID string `json:"id"`

	// DisplayName is the human-readable name of the namespace.
	DisplayName string `json:"display_name"`

	// Description is a longer description of the namespace.
	Description string `json:"description"`

	// Creators lists principal URNs permitted to add identifiers
	// to this namespace.
	Creators []string `json:"creators"`

	// Admins lists principal URNs permitted to administer this
	// namespace.
	Admins []string `json:"admins"`

	// IdentifierAdmins lists principal URNs permitted to
	// administer any identifier in this namespace.
	IdentifierAdmins []string `json:"identifier_admins"`

	// ProviderType names the provider that mints external
	// identifiers, such as "globus_doi".
	ProviderType string `json:"provider_type"`

	// ProviderConfig is provider-specific configuration.
	ProviderConfig map[string]interface{} `json:"provider_config"`
}

// Identifier is the representation of a single registered identifier.
type Identifier struct {
	// ID is the service-assigned identifier of this record.
	ID string `json:"id"`

	// Identifier is the externally minted identifier value, which
	// may be used to look up the data.
	Identifier string `json:"identifier"`

	// Namespace is the ID of the namespace this belongs to.
	Namespace string `json:"namespace"`

	// Location lists URLs from which the data may be retrieved.
	Location []string `json:"location"`

	// Checksums lists checksums of the data.
	Checksums []Checksum `json:"checksums"`

	// Metadata holds additional properties of the identifier.
	Metadata map[string]interface{} `json:"metadata"`

	// VisibleTo lists principal URNs permitted to see this
	// identifier, or "public".
	VisibleTo []string `json:"visible_to"`

	// LandingPage is a URL of a human-readable page about the
	// identifier.
	LandingPage string `json:"landing_page"`

	// Active is false if the identifier has been withdrawn.
	Active bool `json:"active"`

	// Replaces names an identifier this one supersedes.
	Replaces string `json:"replaces"`

	// ReplacedBy names an identifier that supersedes this one.
	ReplacedBy string `json:"replaced_by"`
}

// ErrorResponse can be a response to any method, generally accompanied
// by a failing HTTP status code.
type ErrorResponse struct {
	// Code is a short machine-readable description of the failure,
	// such as "NotFound".
	Code string `json:"code"`

	// Message is a human-readable description of the failure.
	Message string `json:"message"`

	// RequestID identifies the failing request in server logs.
	RequestID string `json:"request_id,omitempty"`
}
