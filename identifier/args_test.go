// Copyright 2026 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package identifier

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/ugorji/go/codec"
)

func TestSplitFields(t *testing.T) {
	tests := []struct {
		Name      string
		Args      Args
		Fields    []string
		Remaining Args
		Extracted Args
	}{
		{
			Name:      "empty",
			Args:      Args{},
			Fields:    []string{"a"},
			Remaining: Args{},
			Extracted: Args{},
		},
		{
			Name:      "partition",
			Args:      Args{"a": "1", "b": "2", "c": "3"},
			Fields:    []string{"a", "c", "d"},
			Remaining: Args{"b": "2"},
			Extracted: Args{"a": "1", "c": "3"},
		},
		{
			Name:      "zero values are extracted",
			Args:      Args{"a": "", "b": 0, "c": false},
			Fields:    []string{"a", "b", "c"},
			Remaining: Args{},
			Extracted: Args{"a": "", "b": 0, "c": false},
		},
		{
			Name:      "nil field is dropped",
			Args:      Args{"a": nil, "b": "2"},
			Fields:    []string{"a"},
			Remaining: Args{"b": "2"},
			Extracted: Args{},
		},
		{
			Name:      "nil non-field is kept",
			Args:      Args{"a": "1", "b": nil},
			Fields:    []string{"a"},
			Remaining: Args{"b": nil},
			Extracted: Args{"a": "1"},
		},
		{
			Name:      "no fields",
			Args:      Args{"a": "1"},
			Fields:    nil,
			Remaining: Args{"a": "1"},
			Extracted: Args{},
		},
	}
	for _, test := range tests {
		remaining, extracted := SplitFields(test.Args, test.Fields)
		assert.Equal(t, test.Remaining, remaining, test.Name)
		assert.Equal(t, test.Extracted, extracted, test.Name)
	}
}

// TestSplitFieldsDisjoint checks that the two halves of a split never
// share a key, and that together they hold every non-nil argument.
func TestSplitFieldsDisjoint(t *testing.T) {
	args := Args{
		"description":  "d",
		"display_name": "n",
		"admins":       []interface{}{"x"},
		"filter":       "f",
		"creators":     nil,
	}
	remaining, extracted := SplitFields(args, NamespaceFields().Body)
	for k := range remaining {
		_, both := extracted[k]
		assert.False(t, both, "key %q in both halves", k)
	}
	for k, v := range args {
		if v == nil {
			continue
		}
		_, inRemaining := remaining[k]
		_, inExtracted := extracted[k]
		assert.True(t, inRemaining || inExtracted, "key %q lost", k)
	}
	assert.Equal(t, Args{"filter": "f"}, remaining)
}

func TestSplitFieldsIdempotent(t *testing.T) {
	fields := IdentifierFields().Body
	args := Args{"location": []string{"http://x"}, "checksum": "abc", "namespace": "ns-1"}
	remaining, _ := SplitFields(args, fields)
	again, extracted := SplitFields(remaining, fields)
	assert.Equal(t, remaining, again)
	assert.Empty(t, extracted)
}

func TestSplitFieldsDoesNotModifyInput(t *testing.T) {
	args := Args{"a": "1", "b": "2"}
	SplitFields(args, []string{"a"})
	assert.Equal(t, Args{"a": "1", "b": "2"}, args)
}

func TestJSONDecodeFields(t *testing.T) {
	args := Args{
		"creators":          `["urn:globus:groups:id:abc"]`,
		"provider_config":   []byte(`{"prefix": "ark:/99999"}`),
		"admins":            []interface{}{"already", "decoded"},
		"identifier_admins": nil,
		"display_name":      `["not", "decoded"]`,
	}
	out, err := JSONDecodeFields(args, NamespaceFields().JSONEncoded)
	if assert.NoError(t, err) {
		assert.Equal(t, Args{
			"creators":        []interface{}{"urn:globus:groups:id:abc"},
			"provider_config": map[string]interface{}{"prefix": "ark:/99999"},
			"admins":          []interface{}{"already", "decoded"},
			"display_name":    `["not", "decoded"]`,
		}, out)
	}
	// the input is left alone
	assert.Equal(t, `["urn:globus:groups:id:abc"]`, args["creators"])
}

func TestJSONDecodeFieldsMalformed(t *testing.T) {
	texts := []string{
		"",
		"not-json",
		`[1,]`,
		`["a"] trailing`,
		`{"a":1}}`,
		`1 2`,
		`{"a":1} {"b":2}`,
	}
	for _, text := range texts {
		out, err := JSONDecodeFields(Args{"metadata": text}, IdentifierFields().JSONEncoded)
		assert.Nil(t, out, text)
		if assert.Error(t, err, text) {
			if assert.IsType(t, &ErrMalformedJSON{}, err, text) {
				assert.Equal(t, "metadata", err.(*ErrMalformedJSON).Field, text)
			}
		}
	}
}

// TestJSONDecodeTrailingSpace checks that whitespace after the value
// is not mistaken for extra data.
func TestJSONDecodeTrailingSpace(t *testing.T) {
	out, err := JSONDecodeFields(Args{"metadata": "{\"a\": \"b\"} \n\t"},
		[]string{"metadata"})
	if assert.NoError(t, err) {
		assert.Equal(t, Args{"metadata": map[string]interface{}{"a": "b"}}, out)
	}
}

// TestJSONDecodeRoundTrip checks that decoding a JSON field and then
// encoding it again produces the same structure.
func TestJSONDecodeRoundTrip(t *testing.T) {
	texts := []string{
		`{"a":"b","c":["d","e"]}`,
		`["x","y"]`,
		`"plain"`,
		`{"nested":{"deep":[{"k":"v"}]}}`,
	}
	for _, text := range texts {
		out, err := JSONDecodeFields(Args{"metadata": text}, []string{"metadata"})
		if !assert.NoError(t, err, text) {
			continue
		}
		var encoded []byte
		json := &codec.JsonHandle{}
		err = codec.NewEncoderBytes(&encoded, json).Encode(out["metadata"])
		if !assert.NoError(t, err, text) {
			continue
		}
		again, err := decodeJSON(encoded)
		if assert.NoError(t, err, text) {
			assert.Equal(t, out["metadata"], again, text)
		}
	}
}
