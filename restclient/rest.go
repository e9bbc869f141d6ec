// Copyright 2015, 2026 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package restclient

// This file provides generic REST client code.

import (
	"bytes"
	"fmt"
	"io"
	"io/ioutil"
	"net/http"
	"net/url"

	"github.com/diffeo/go-identifiers/identifier"
	"github.com/diffeo/go-identifiers/restdata"
	"github.com/sirupsen/logrus"
)

// resource is the root of the service, with the HTTP client that
// talks to it.
type resource struct {
	// URL is the service base URL.  It always ends in a slash.
	URL *url.URL

	// HTTP sends authorized requests.
	HTTP *http.Client

	// UserAgent, if non-empty, is sent with every request.
	UserAgent string

	// Logger receives a debug message for every request.
	Logger logrus.FieldLogger
}

// Send performs a request built by the identifier package and returns
// the decoded response, which may be nil if the response had no body.
func (r *resource) Send(req identifier.Request) (restdata.Record, error) {
	u, err := r.URL.Parse(req.Path)
	if err != nil {
		return nil, err
	}
	u.RawQuery = encodeQuery(req.Query).Encode()

	var in interface{}
	if req.Body != nil {
		in = map[string]interface{}(req.Body)
	}
	var out restdata.Record
	err = r.Do(req.Method, u, in, &out)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Do performs some HTTP action.  If in is non-nil, the request data is
// serialized and sent as the body of, for instance, a POST request.
// If out is non-nil, the response data (if any) is deserialized into
// this object, which must be of pointer type.
func (r *resource) Do(method string, url *url.URL, in, out interface{}) (err error) {
	// Set up the body as serialized JSON, if there is one
	var body io.Reader
	if in != nil {
		buf := &bytes.Buffer{}
		if err = restdata.Encode(buf, in); err != nil {
			return err
		}
		body = buf
	}

	// Create the request and set headers
	req, err := http.NewRequest(method, url.String(), body)
	if err != nil {
		return err
	}
	if in != nil {
		req.Header.Set("Content-Type", restdata.JSONMediaType)
	}
	if out != nil {
		req.Header.Set("Accept", restdata.JSONMediaType)
	}
	if r.UserAgent != "" {
		req.Header.Set("User-Agent", r.UserAgent)
	}

	// Actually do the request
	resp, err := r.HTTP.Do(req)
	if err != nil {
		return err
	}
	defer func() {
		err = firstError(err, resp.Body.Close())
	}()
	r.Logger.WithFields(logrus.Fields{
		"method": method,
		"url":    url.String(),
		"status": resp.StatusCode,
	}).Debug("identifier service request")

	// Check the response code
	if err = checkHTTPStatus(resp); err != nil {
		return err
	}

	// Some responses (204 No Content, most obviously) have no
	// body at all
	data, err := ioutil.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	if len(data) > 0 && out != nil {
		contentType := resp.Header.Get("Content-Type")
		err = restdata.Decode(contentType, bytes.NewReader(data), out)
	}

	return err // may be nil
}

// encodeQuery converts call arguments to URL query parameters.  Slices
// become repeated parameters and nil values are omitted.
func encodeQuery(args identifier.Args) url.Values {
	values := url.Values{}
	for k, v := range args {
		switch vv := v.(type) {
		case nil:
			continue
		case []string:
			for _, item := range vv {
				values.Add(k, item)
			}
		case []interface{}:
			for _, item := range vv {
				values.Add(k, identifier.Stringify(item))
			}
		default:
			values.Add(k, identifier.Stringify(v))
		}
	}
	return values
}

// ErrorHTTP is a catch-all error for non-successes returned from the
// REST endpoint.
type ErrorHTTP struct {
	// Response holds a pointer to the failing HTTP response.  Its
	// body has already been consumed.
	Response *http.Response

	// StatusCode is the HTTP status code of the response.
	StatusCode int

	// Code is the service's machine-readable error code, if the
	// response body could be decoded.
	Code string

	// Message is the service's error message, if the response
	// body could be decoded.
	Message string

	// Body holds the contents of the message body, presumed to
	// be text.
	Body string
}

func (e ErrorHTTP) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("%d %s: %s", e.StatusCode, e.Code, e.Message)
	}
	return e.Response.Status
}

// checkHTTPStatus examines an HTTP response and returns an error if
// it is not successful.
func checkHTTPStatus(resp *http.Response) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}

	// Always collect the entire body; we will need it as a fallback
	// and can only parse it once.
	body, err := ioutil.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	result := ErrorHTTP{
		Response:   resp,
		StatusCode: resp.StatusCode,
		Body:       string(body),
	}

	// Take a shot at decoding it as a better error
	var errResp restdata.ErrorResponse
	contentType := resp.Header.Get("Content-Type")
	if restdata.Decode(contentType, bytes.NewReader(body), &errResp) == nil {
		result.Code = errResp.Code
		result.Message = errResp.Message
	}
	return result
}

func firstError(e1, e2 error) error {
	if e1 != nil {
		return e1
	}
	return e2
}
