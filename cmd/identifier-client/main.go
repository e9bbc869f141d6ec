// Copyright 2026 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

// Identifier-client is a command-line client for the identifier
// registration service.  Usage:
//
//	identifier-client namespace create --display-name "My Data" \
//	    --creators '["urn:globus:groups:id:..."]'
//	identifier-client identifier create --namespace NS \
//	    --location https://example.com/data.csv --checksum abc123
//	identifier-client identifier get ID
//
// Credentials come from a YAML configuration file (--config) holding
// a login's tokens, or from a bare --access-token.  When the access
// token in the configuration file is refreshed, the new token is
// written back to the file.
package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/benbjohnson/clock"
	"github.com/diffeo/go-identifiers/auth"
	"github.com/diffeo/go-identifiers/config"
	"github.com/diffeo/go-identifiers/identifier"
	"github.com/diffeo/go-identifiers/restclient"
	"github.com/diffeo/go-identifiers/restdata"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli"
	"golang.org/x/oauth2"
)

// clk is the time source for token expiry reports.
var clk clock.Clock = clock.New()

func main() {
	err := newApp().Run(os.Args)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"err": err,
		}).Fatal("identifier-client failed")
	}
}

func newApp() *cli.App {
	app := cli.NewApp()
	app.Name = "identifier-client"
	app.Usage = "Manage namespaces and identifiers in the identifier service"
	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:   "config",
			Usage:  "YAML configuration file holding service URL and tokens",
			EnvVar: "IDENTIFIER_CONFIG",
		},
		cli.StringFlag{
			Name:   "service-url",
			Usage:  "base URL of the identifier service",
			EnvVar: "IDENTIFIER_SERVICE_URL",
		},
		cli.StringFlag{
			Name:   "access-token",
			Usage:  "use this access token instead of the configured login",
			EnvVar: "IDENTIFIER_ACCESS_TOKEN",
		},
		cli.StringFlag{
			Name:  "log-level",
			Value: "warning",
			Usage: "minimum level of log messages",
		},
	}
	app.Before = func(c *cli.Context) error {
		level, err := logrus.ParseLevel(c.GlobalString("log-level"))
		if err != nil {
			return err
		}
		logrus.SetLevel(level)
		return nil
	}
	app.Commands = []cli.Command{
		namespaceCommand,
		identifierCommand,
		tokensCommand,
	}
	return app
}

// loadConfig reads the configuration file named on the command line.
// filename is empty if there is none.
func loadConfig(c *cli.Context) (cfg *config.Config, filename string, err error) {
	filename = c.GlobalString("config")
	if filename == "" {
		return &config.Config{}, "", nil
	}
	cfg, err = config.Load(filename)
	return
}

// newClient creates a client from the global command-line options.
func newClient(c *cli.Context) (*restclient.Client, error) {
	serviceURL := c.GlobalString("service-url")
	if token := c.GlobalString("access-token"); token != "" {
		return restclient.New(serviceURL, auth.AccessToken{Token: token})
	}

	cfg, filename, err := loadConfig(c)
	if err != nil {
		return nil, err
	}
	if serviceURL != "" {
		cfg.Client.ServiceURL = serviceURL
	}
	var opts []restclient.Option
	if filename != "" {
		opts = append(opts, restclient.WithOnRefresh(func(tok *oauth2.Token) {
			cfg.UpdateTokens(tok)
			if err := cfg.Save(filename); err != nil {
				logrus.WithFields(logrus.Fields{
					"err":  err,
					"file": filename,
				}).Warn("Could not save refreshed tokens")
			}
		}))
	}
	return restclient.NewFromConfig(cfg, opts...)
}

// argFlag maps a command-line flag onto a call argument.
type argFlag struct {
	Flag  cli.Flag
	Arg   string
	Slice bool
}

func stringArg(name, usage string) argFlag {
	return argFlag{
		Flag: cli.StringFlag{Name: name, Usage: usage},
		Arg:  strings.Replace(name, "-", "_", -1),
	}
}

func sliceArg(name, usage string) argFlag {
	return argFlag{
		Flag:  cli.StringSliceFlag{Name: name, Usage: usage},
		Arg:   strings.Replace(name, "-", "_", -1),
		Slice: true,
	}
}

// queryFlag passes arbitrary extra arguments through to the service.
var queryFlag = cli.StringSliceFlag{
	Name:  "param",
	Usage: "extra key=value query parameter (repeatable)",
}

func flagsOf(args []argFlag) []cli.Flag {
	flags := make([]cli.Flag, 0, len(args)+1)
	for _, a := range args {
		flags = append(flags, a.Flag)
	}
	return append(flags, queryFlag)
}

// collectArgs builds call arguments from the flags that were actually
// given on the command line.
func collectArgs(c *cli.Context, flags []argFlag) (identifier.Args, error) {
	args := identifier.Args{}
	for _, param := range c.StringSlice(queryFlag.Name) {
		parts := strings.SplitN(param, "=", 2)
		if len(parts) != 2 {
			return nil, fmt.Errorf("Invalid --param %q, expected key=value", param)
		}
		args[parts[0]] = parts[1]
	}
	for _, f := range flags {
		name := f.Flag.GetName()
		if !c.IsSet(name) {
			continue
		}
		if f.Slice {
			args[f.Arg] = c.StringSlice(name)
		} else {
			args[f.Arg] = c.String(name)
		}
	}
	return args, nil
}

// errNoID is returned when a command needs a positional ID.
var errNoID = errors.New("Missing ID argument")

// positionalID returns the single positional argument.
func positionalID(c *cli.Context) (string, error) {
	if c.NArg() != 1 {
		return "", errNoID
	}
	return c.Args().First(), nil
}

// writeRecord prints a service response as JSON.
func writeRecord(c *cli.Context, rec restdata.Record) error {
	if rec == nil {
		return nil
	}
	err := restdata.Encode(c.App.Writer, rec)
	if err == nil {
		_, err = fmt.Fprintln(c.App.Writer)
	}
	return err
}
