// Copyright 2015, 2026 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package restdata

import (
	"io"
	"mime"
	"reflect"

	"github.com/mitchellh/mapstructure"
	"github.com/ugorji/go/codec"
)

var mapStringInterfaceType = reflect.TypeOf(map[string]interface{}(nil))

// NewJSONHandle creates a codec handle for the service's JSON.  Objects
// decoded into an empty interface become map[string]interface{}.
func NewJSONHandle() *codec.JsonHandle {
	json := &codec.JsonHandle{}
	json.MapType = mapStringInterfaceType
	return json
}

// Encode writes the JSON encoding of in to w.
func Encode(w io.Writer, in interface{}) error {
	encoder := codec.NewEncoder(w, NewJSONHandle())
	return encoder.Encode(in)
}

// Decode tries to decode a restdata object from a reader, such as an
// HTTP request or response.  out must be a pointer type.
func Decode(contentType string, r io.Reader, out interface{}) error {
	if contentType == "" {
		// RFC 7231 section 3.1.1.5
		contentType = "application/octet-stream"
	}

	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return err
	}

	switch mediaType {
	case "text/json", JSONMediaType:
		decoder := codec.NewDecoder(r, NewJSONHandle())
		return decoder.Decode(out)
	default:
		return ErrUnsupportedMediaType{Type: mediaType}
	}
}

// decodeRecord copies a generic record into a typed structure, using
// the structure's json tags as field names.
func decodeRecord(in Record, out interface{}) error {
	config := mapstructure.DecoderConfig{
		Result:           out,
		TagName:          "json",
		WeaklyTypedInput: true,
	}
	decoder, err := mapstructure.NewDecoder(&config)
	if err == nil {
		err = decoder.Decode(map[string]interface{}(in))
	}
	return err
}

// Namespace interprets a record as a namespace.
func (r Record) Namespace() (ns Namespace, err error) {
	err = decodeRecord(r, &ns)
	return
}

// Identifier interprets a record as an identifier.
func (r Record) Identifier() (id Identifier, err error) {
	err = decodeRecord(r, &id)
	return
}
