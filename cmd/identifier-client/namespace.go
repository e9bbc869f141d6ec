// Copyright 2026 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package main

import (
	"github.com/urfave/cli"
)

var namespaceArgs = []argFlag{
	stringArg("display-name", "display name of the namespace"),
	stringArg("description", "description of the namespace"),
	stringArg("creators", "JSON list of principal URNs permitted to add identifiers"),
	stringArg("admins", "JSON list of principal URNs permitted to administer the namespace"),
	stringArg("identifier-admins", "JSON list of principal URNs permitted to administer identifiers"),
	stringArg("provider-type", "type of the provider that mints external identifiers"),
	stringArg("provider-config", "JSON configuration of the identifier provider"),
}

var namespaceCommand = cli.Command{
	Name:  "namespace",
	Usage: "create, update, get, or delete namespaces",
	Subcommands: []cli.Command{
		{
			Name:   "create",
			Usage:  "create a new namespace",
			Flags:  flagsOf(namespaceArgs),
			Action: createNamespace,
		},
		{
			Name:      "update",
			Usage:     "update an existing namespace",
			ArgsUsage: "NAMESPACE_ID",
			Flags:     flagsOf(namespaceArgs),
			Action:    updateNamespace,
		},
		{
			Name:      "get",
			Usage:     "show a namespace",
			ArgsUsage: "NAMESPACE_ID",
			Flags:     flagsOf(nil),
			Action:    getNamespace,
		},
		{
			Name:      "delete",
			Usage:     "delete a namespace",
			ArgsUsage: "NAMESPACE_ID",
			Flags:     flagsOf(nil),
			Action:    deleteNamespace,
		},
	},
}

func createNamespace(c *cli.Context) error {
	args, err := collectArgs(c, namespaceArgs)
	if err != nil {
		return err
	}
	client, err := newClient(c)
	if err != nil {
		return err
	}
	rec, err := client.CreateNamespace(args)
	if err != nil {
		return err
	}
	return writeRecord(c, rec)
}

func updateNamespace(c *cli.Context) error {
	id, err := positionalID(c)
	if err != nil {
		return err
	}
	args, err := collectArgs(c, namespaceArgs)
	if err != nil {
		return err
	}
	client, err := newClient(c)
	if err != nil {
		return err
	}
	rec, err := client.UpdateNamespace(id, args)
	if err != nil {
		return err
	}
	return writeRecord(c, rec)
}

func getNamespace(c *cli.Context) error {
	id, err := positionalID(c)
	if err != nil {
		return err
	}
	args, err := collectArgs(c, nil)
	if err != nil {
		return err
	}
	client, err := newClient(c)
	if err != nil {
		return err
	}
	rec, err := client.GetNamespace(id, args)
	if err != nil {
		return err
	}
	return writeRecord(c, rec)
}

func deleteNamespace(c *cli.Context) error {
	id, err := positionalID(c)
	if err != nil {
		return err
	}
	args, err := collectArgs(c, nil)
	if err != nil {
		return err
	}
	client, err := newClient(c)
	if err != nil {
		return err
	}
	rec, err := client.DeleteNamespace(id, args)
	if err != nil {
		return err
	}
	return writeRecord(c, rec)
}
