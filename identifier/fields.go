// Copyright 2026 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package identifier

// FieldTable describes how the arguments for one entity type are
// routed into a request.
type FieldTable struct {
	// Body lists the argument names that are sent in the JSON
	// request body rather than on the query string.
	Body []string

	// JSONEncoded lists the subset of Body whose values arrive as
	// JSON text and are decoded before being sent.
	JSONEncoded []string
}

var namespaceFields = FieldTable{
	Body: []string{
		"description",
		"display_name",
		"creators",
		"admins",
		"identifier_admins",
		"provider_type",
		"provider_config",
	},
	JSONEncoded: []string{
		"creators",
		"admins",
		"identifier_admins",
		"provider_config",
	},
}

var identifierFields = FieldTable{
	Body: []string{
		"location",
		"checksum",
		"identifier",
		"checksum_function",
		"metadata",
		"visible_to",
	},
	JSONEncoded: []string{
		"metadata",
		"visible_to",
	},
}

// NamespaceFields returns the field table for namespaces.  The result
// is a copy and may be freely modified.
func NamespaceFields() FieldTable {
	return namespaceFields.clone()
}

// IdentifierFields returns the field table for identifiers.  The
// result is a copy and may be freely modified.
func IdentifierFields() FieldTable {
	return identifierFields.clone()
}

func (t FieldTable) clone() FieldTable {
	return FieldTable{
		Body:        append([]string(nil), t.Body...),
		JSONEncoded: append([]string(nil), t.JSONEncoded...),
	}
}
