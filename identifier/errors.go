// Copyright 2026 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package identifier

import (
	"errors"
	"fmt"
)

// ErrNotLoggedIn is returned when constructing a client without the
// credentials it needs, before any request is attempted.
var ErrNotLoggedIn = errors.New("Missing tokens")

// ErrMissingArgument is returned from request builders when an
// argument that is part of the request path is absent.
type ErrMissingArgument struct {
	Name string
}

func (err ErrMissingArgument) Error() string {
	return fmt.Sprintf("Missing required argument %q", err.Name)
}

// ErrMalformedJSON is returned from JSONDecodeFields when a field that
// should hold JSON text cannot be decoded.
type ErrMalformedJSON struct {
	// Field is the name of the argument that failed to decode.
	Field string

	// Err is the underlying decoder error.
	Err error
}

func (err *ErrMalformedJSON) Error() string {
	return fmt.Sprintf("Invalid JSON in %q: %v", err.Field, err.Err)
}

// Unwrap returns the underlying decoder error.
func (err *ErrMalformedJSON) Unwrap() error {
	return err.Err
}
