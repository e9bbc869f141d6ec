// Copyright 2015, 2026 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package restdata

import (
	"bytes"
	"errors"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecode(t *testing.T) {
	for _, contentType := range []string{
		"application/json",
		"application/json; charset=utf-8",
		"text/json",
	} {
		var rec Record
		err := Decode(contentType, strings.NewReader(`{"id":"x","nested":{"a":["b"]}}`), &rec)
		if assert.NoError(t, err, contentType) {
			assert.Equal(t, Record{
				"id": "x",
				"nested": map[string]interface{}{
					"a": []interface{}{"b"},
				},
			}, rec, contentType)
		}
	}
}

func TestDecodeUnsupported(t *testing.T) {
	var rec Record
	err := Decode("", strings.NewReader("{}"), &rec)
	assert.Equal(t, ErrUnsupportedMediaType{Type: "application/octet-stream"}, err)

	err = Decode("text/html", strings.NewReader("<html/>"), &rec)
	assert.Equal(t, ErrUnsupportedMediaType{Type: "text/html"}, err)
}

func TestEncodeDecodeErrorResponse(t *testing.T) {
	in := ErrorResponse{Code: "NotFound", Message: "no such namespace"}
	var buf bytes.Buffer
	if !assert.NoError(t, Encode(&buf, in)) {
		return
	}
	assert.NotContains(t, buf.String(), "request_id")

	var out ErrorResponse
	if assert.NoError(t, Decode(JSONMediaType, &buf, &out)) {
		assert.Equal(t, in, out)
	}
}

func TestRecordNamespace(t *testing.T) {
	rec := Record{
		"id":              "ns-1",
		"display_name":    "Test",
		"creators":        []interface{}{"urn:globus:groups:id:abc"},
		"provider_type":   "ark",
		"provider_config": map[string]interface{}{"shoulder": "x1"},
		"unknown_field":   "ignored",
	}
	ns, err := rec.Namespace()
	if assert.NoError(t, err) {
		assert.Equal(t, Namespace{
			ID:             "ns-1",
			DisplayName:    "Test",
			Creators:       []string{"urn:globus:groups:id:abc"},
			ProviderType:   "ark",
			ProviderConfig: map[string]interface{}{"shoulder": "x1"},
		}, ns)
	}
}

func TestRecordIdentifier(t *testing.T) {
	rec := Record{
		"id":       "abc-123",
		"location": []interface{}{"http://x"},
		"checksums": []interface{}{
			map[string]interface{}{"function": "sha256", "value": "ff"},
		},
		"active":      true,
		"replaced_by": nil,
	}
	id, err := rec.Identifier()
	if assert.NoError(t, err) {
		assert.Equal(t, "abc-123", id.ID)
		assert.Equal(t, []string{"http://x"}, id.Location)
		assert.Equal(t, []Checksum{{Function: "sha256", Value: "ff"}}, id.Checksums)
		assert.True(t, id.Active)
		assert.Equal(t, "", id.ReplacedBy)
	}
}

func TestFromError(t *testing.T) {
	tests := []struct {
		Err    error
		Code   string
		Status int
	}{
		{ErrNotFound{Err: errors.New("gone")}, "NotFound", http.StatusNotFound},
		{ErrBadRequest{Err: errors.New("bad")}, "BadRequest", http.StatusBadRequest},
		{ErrUnsupportedMediaType{Type: "x/y"}, "UnsupportedMediaType", http.StatusUnsupportedMediaType},
		{errors.New("boom"), "InternalError", http.StatusInternalServerError},
	}
	for _, test := range tests {
		var resp ErrorResponse
		status := resp.FromError(test.Err)
		assert.Equal(t, test.Status, status)
		assert.Equal(t, test.Code, resp.Code)
		assert.Equal(t, test.Err.Error(), resp.Message)
	}
}
