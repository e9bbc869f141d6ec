// Copyright 2026 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package restclient

import (
	"github.com/diffeo/go-identifiers/identifier"
	"github.com/diffeo/go-identifiers/restdata"
	"github.com/sirupsen/logrus"
)

// CreateIdentifier registers a new identifier in the namespace named
// by args["namespace"].  The identifier fields ("location",
// "checksum", "identifier", "checksum_function", "metadata",
// "visible_to") are sent in the request body exactly as given; any
// other arguments, including "namespace", are sent as query
// parameters.
func (c *Client) CreateIdentifier(args identifier.Args) (restdata.Record, error) {
	req, err := identifier.CreateIdentifier(args)
	if err != nil {
		return nil, err
	}
	c.Logger.WithFields(logrus.Fields{
		"namespace": args["namespace"],
	}).Info("create identifier")
	return c.Send(req)
}

// GetIdentifier retrieves an identifier.  params are sent as query
// parameters.
func (c *Client) GetIdentifier(identifierID interface{}, params identifier.Args) (restdata.Record, error) {
	req, err := identifier.GetIdentifier(identifierID, params)
	if err != nil {
		return nil, err
	}
	c.Logger.WithFields(logrus.Fields{
		"identifier_id": identifierID,
	}).Info("get identifier")
	return c.Send(req)
}

// UpdateIdentifier changes an existing identifier.  The identifier
// fields are sent in the request body, and "metadata" and
// "visible_to" may be given as JSON text.
func (c *Client) UpdateIdentifier(identifierID interface{}, args identifier.Args) (restdata.Record, error) {
	req, err := identifier.UpdateIdentifier(identifierID, args)
	if err != nil {
		return nil, err
	}
	c.Logger.WithFields(logrus.Fields{
		"identifier_id": identifierID,
	}).Info("update identifier")
	return c.Send(req)
}
