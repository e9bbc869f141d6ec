// Copyright 2026 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package identifier

import (
	"bytes"
	"fmt"
	"reflect"

	"github.com/ugorji/go/codec"
)

// SplitFields splits args into two sets.  Each key in names is
// removed from the remaining set, and if its value was non-nil, it is
// added to the extracted set.  Keys not in names stay in the remaining
// set untouched, even if their value is nil.  Empty strings and other
// zero values are not nil and are extracted.  args itself is not
// modified.
func SplitFields(args Args, names []string) (remaining, extracted Args) {
	remaining = args.Copy()
	extracted = make(Args)
	for _, name := range names {
		value, present := remaining[name]
		if !present {
			continue
		}
		delete(remaining, name)
		if value != nil {
			extracted[name] = value
		}
	}
	return
}

// JSONDecodeFields returns a copy of args where each key in names that
// holds JSON text is replaced with the decoded value.  Values that are
// neither strings nor byte slices are assumed to be decoded already and
// pass through unchanged; keys in names with nil values are dropped.
// If any value is not valid JSON, returns *ErrMalformedJSON naming the
// first such field.
func JSONDecodeFields(args Args, names []string) (Args, error) {
	result := args.Copy()
	for _, name := range names {
		value, present := result[name]
		if !present {
			continue
		}
		delete(result, name)
		var text []byte
		switch v := value.(type) {
		case nil:
			continue
		case string:
			text = []byte(v)
		case []byte:
			text = v
		default:
			result[name] = value
			continue
		}
		decoded, err := decodeJSON(text)
		if err != nil {
			return nil, &ErrMalformedJSON{Field: name, Err: err}
		}
		result[name] = decoded
	}
	return result, nil
}

var mapStringInterfaceType = reflect.TypeOf(map[string]interface{}(nil))

// decodeJSON decodes text that holds exactly one JSON value, producing
// JSON objects as map[string]interface{}.  Anything but JSON whitespace
// after the value is an error.
func decodeJSON(text []byte) (out interface{}, err error) {
	json := &codec.JsonHandle{}
	json.MapType = mapStringInterfaceType
	decoder := codec.NewDecoderBytes(text, json)
	err = decoder.Decode(&out)
	if err != nil {
		return nil, err
	}
	n := decoder.NumBytesRead()
	if rest := bytes.TrimLeft(text[n:], " \t\r\n"); len(rest) > 0 {
		return nil, fmt.Errorf("extra data at offset %d", len(text)-len(rest))
	}
	return out, nil
}
