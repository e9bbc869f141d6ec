// Copyright 2026 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package main

import (
	"fmt"
	"time"

	"github.com/urfave/cli"
)

var tokensCommand = cli.Command{
	Name:   "tokens",
	Usage:  "report whether the configured access token is still valid",
	Action: showTokens,
}

func showTokens(c *cli.Context) error {
	cfg, _, err := loadConfig(c)
	if err != nil {
		return err
	}
	if err = cfg.Validate(); err != nil {
		return err
	}
	w := c.App.Writer
	remaining, ok := cfg.Tokens.ExpiresIn(clk)
	switch {
	case !ok:
		_, err = fmt.Fprintln(w, "access token expiry unknown")
	case remaining > 0:
		_, err = fmt.Fprintf(w, "access token expires in %v\n", remaining.Truncate(time.Second))
	default:
		_, err = fmt.Fprintf(w, "access token expired %v ago, will be refreshed on next use\n", (-remaining).Truncate(time.Second))
	}
	return err
}
