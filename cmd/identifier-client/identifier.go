// Copyright 2026 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package main

import (
	"github.com/urfave/cli"
)

var identifierArgs = []argFlag{
	sliceArg("location", "URL from which the data may be retrieved (repeatable)"),
	stringArg("checksum", "checksum of the data"),
	stringArg("checksum-function", "function used to compute --checksum"),
	stringArg("identifier", "identifier value minted by an external provider"),
	stringArg("metadata", "JSON object of additional properties"),
	stringArg("visible-to", "JSON list of principal URNs permitted to see the identifier"),
}

var identifierCommand = cli.Command{
	Name:  "identifier",
	Usage: "create, get, or update identifiers",
	Subcommands: []cli.Command{
		{
			Name:  "create",
			Usage: "register a new identifier in a namespace",
			Flags: append(flagsOf(identifierArgs), cli.StringFlag{
				Name:  "namespace",
				Usage: "ID of the namespace to add the identifier to",
			}),
			Action: createIdentifier,
		},
		{
			Name:      "get",
			Usage:     "show an identifier",
			ArgsUsage: "IDENTIFIER_ID",
			Flags:     flagsOf(nil),
			Action:    getIdentifier,
		},
		{
			Name:      "update",
			Usage:     "update an existing identifier",
			ArgsUsage: "IDENTIFIER_ID",
			Flags:     flagsOf(identifierArgs),
			Action:    updateIdentifier,
		},
	},
}

func createIdentifier(c *cli.Context) error {
	args, err := collectArgs(c, append(identifierArgs, stringArg("namespace", "")))
	if err != nil {
		return err
	}
	client, err := newClient(c)
	if err != nil {
		return err
	}
	rec, err := client.CreateIdentifier(args)
	if err != nil {
		return err
	}
	return writeRecord(c, rec)
}

func getIdentifier(c *cli.Context) error {
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
	rec, err := client.GetIdentifier(id, args)
	if err != nil {
		return err
	}
	return writeRecord(c, rec)
}

func updateIdentifier(c *cli.Context) error {
	id, err := positionalID(c)
	if err != nil {
		return err
	}
	args, err := collectArgs(c, identifierArgs)
	if err != nil {
		return err
	}
	client, err := newClient(c)
	if err != nil {
		return err
	}
	rec, err := client.UpdateIdentifier(id, args)
	if err != nil {
		return err
	}
	return writeRecord(c, rec)
}
