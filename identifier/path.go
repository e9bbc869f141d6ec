// Copyright 2026 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package identifier

import (
	"fmt"
	"strings"

	"github.com/jtacoma/uritemplates"
)

// Path templates for the service resources, as RFC 6570 URI templates
// relative to the service base URL.
const (
	NamespacesPath  = "namespace"
	NamespacePath   = "namespace/{namespace_id}"
	IdentifiersPath = "namespace/{namespace}/identifier"
	IdentifierPath  = "id/{identifier_id}"
)

// Stringify converts an arbitrary value into the string that is placed
// in a request path.  Strings are returned as is, byte slices are
// interpreted as text, and anything else is formatted with its
// String() method or fmt's default format.
func Stringify(value interface{}) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case []byte:
		return string(v)
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprint(v)
	}
}

// expandPath fills in a path template.  Each of vars is converted with
// Stringify and percent-encoded by the template expansion, except that
// slashes are kept, so "ark:/99999/x" becomes "ark%3A/99999/x".  If any
// value is nil or converts to an empty string, returns
// ErrMissingArgument naming it.
func expandPath(template string, vars map[string]interface{}) (string, error) {
	tmpl, err := uritemplates.Parse(template)
	if err != nil {
		return "", err
	}
	values := make(map[string]interface{}, len(vars))
	for k, v := range vars {
		s := Stringify(v)
		if s == "" {
			return "", ErrMissingArgument{Name: k}
		}
		values[k] = s
	}
	path, err := tmpl.Expand(values)
	if err != nil {
		return "", err
	}
	// a literal "%2F" in a value was already escaped to "%252F"
	return strings.Replace(path, "%2F", "/", -1), nil
}
