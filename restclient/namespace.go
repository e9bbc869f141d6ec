// Copyright 2015, 2026 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package restclient

import (
	"github.com/diffeo/go-identifiers/identifier"
	"github.com/diffeo/go-identifiers/restdata"
	"github.com/sirupsen/logrus"
)

// CreateNamespace creates a new namespace.  The namespace fields
// ("display_name", "description", "creators", "admins",
// "identifier_admins", "provider_type", "provider_config") are sent in
// the request body; "creators", "admins", "identifier_admins", and
// "provider_config" may be given as JSON text.  Any other arguments
// are sent as query parameters.
func (c *Client) CreateNamespace(args identifier.Args) (restdata.Record, error) {
	req, err := identifier.CreateNamespace(args)
	if err != nil {
		return nil, err
	}
	c.Logger.WithFields(logrus.Fields{
		"display_name": req.Body["display_name"],
	}).Info("create namespace")
	return c.Send(req)
}

// UpdateNamespace changes an existing namespace.  args are handled
// the same way as in CreateNamespace.
func (c *Client) UpdateNamespace(namespaceID interface{}, args identifier.Args) (restdata.Record, error) {
	req, err := identifier.UpdateNamespace(namespaceID, args)
	if err != nil {
		return nil, err
	}
	c.Logger.WithFields(logrus.Fields{
		"namespace_id": namespaceID,
	}).Info("update namespace")
	return c.Send(req)
}

// GetNamespace retrieves a namespace.  params are sent as query
// parameters.
func (c *Client) GetNamespace(namespaceID interface{}, params identifier.Args) (restdata.Record, error) {
	req, err := identifier.GetNamespace(namespaceID, params)
	if err != nil {
		return nil, err
	}
	c.Logger.WithFields(logrus.Fields{
		"namespace_id": namespaceID,
	}).Info("get namespace")
	return c.Send(req)
}

// DeleteNamespace removes a namespace.  params are sent as query
// parameters.
func (c *Client) DeleteNamespace(namespaceID interface{}, params identifier.Args) (restdata.Record, error) {
	req, err := identifier.DeleteNamespace(namespaceID, params)
	if err != nil {
		return nil, err
	}
	c.Logger.WithFields(logrus.Fields{
		"namespace_id": namespaceID,
	}).Info("delete namespace")
	return c.Send(req)
}
