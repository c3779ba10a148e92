// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli"
)

type metadata struct {
	connect string
	verbose bool
	e       io.Writer
	w       io.Writer
}

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

func main() {
	app := newApp(os.Stdout, os.Stderr)
	if err := app.Run(os.Args); nil != err {
		fmt.Fprintf(app.ErrWriter, "terminated with error: %s\n", err)
		os.Exit(1)
	}
}

func newApp(w io.Writer, e io.Writer) *cli.App {

	app := cli.NewApp()
	app.Name = "iotasset-cli"
	app.Usage = "register and look up IoT devices on an iotassetd ledger"
	app.Version = version
	app.HideVersion = true

	app.Writer = w
	app.ErrWriter = e

	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: " verbose result",
		},
		cli.StringFlag{
			Name:   "connect, c",
			Value:  "127.0.0.1:2130",
			EnvVar: "IOTASSET_CONNECT",
			Usage:  " iotassetd JSON-RPC `HOST:PORT`",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:      "create",
			Usage:     "register a new device",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "id, i",
					Value: "",
					Usage: "*device identifier `ID`",
				},
				cli.StringFlag{
					Name:  "cloud-provider, p",
					Value: "",
					Usage: " cloud provider identifier `STRING`",
				},
				cli.StringFlag{
					Name:  "fingerprint, f",
					Value: "",
					Usage: " radio fingerprint `STRING`",
				},
				cli.StringFlag{
					Name:  "mac, m",
					Value: "",
					Usage: " MAC address `ADDRESS`",
				},
				cli.StringFlag{
					Name:  "manufacturer, a",
					Value: "",
					Usage: " manufacturer identifier `STRING`",
				},
			},
			Action: runCreate,
		},
		{
			Name:      "find",
			Usage:     "find the first device with a radio fingerprint or MAC address",
			ArgsUsage: "\n   (+ = select one)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "fingerprint, f",
					Value: "",
					Usage: "+radio fingerprint `STRING`",
				},
				cli.StringFlag{
					Name:  "mac, m",
					Value: "",
					Usage: "+MAC address `ADDRESS`",
				},
			},
			Action: runFind,
		},
		{
			Name:      "exists",
			Usage:     "check whether a device is registered",
			ArgsUsage: "\n   (+ = select one)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "id, i",
					Value: "",
					Usage: "+device identifier `ID`",
				},
				cli.StringFlag{
					Name:  "fingerprint, f",
					Value: "",
					Usage: "+radio fingerprint `STRING`",
				},
				cli.StringFlag{
					Name:  "mac, m",
					Value: "",
					Usage: "+MAC address `ADDRESS`",
				},
			},
			Action: runExists,
		},
		{
			Name:   "list",
			Usage:  "list all registered devices",
			Action: runList,
		},
		{
			Name:   "bootstrap",
			Usage:  "write the sample devices and their hashes",
			Action: runBootstrap,
		},
		{
			Name:  "hash",
			Usage: "hash registry",
			Subcommands: []cli.Command{
				{
					Name:      "store",
					Usage:     "record the hash of a value",
					ArgsUsage: "VALUE",
					Action:    runHashStore,
				},
				{
					Name:      "verify",
					Usage:     "check whether the hash of a value is recorded",
					ArgsUsage: "VALUE",
					Action:    runHashVerify,
				},
				{
					Name:      "exists",
					Usage:     "check whether a hash is recorded",
					ArgsUsage: "HASH",
					Action:    runHashExists,
				},
				{
					Name:   "list",
					Usage:  "list all recorded hashes",
					Action: runHashList,
				},
			},
		},
		{
			Name:   "info",
			Usage:  "display iotassetd status",
			Action: runInfo,
		},
		{
			Name:  "version",
			Usage: "display iotasset-cli version",
			Action: func(c *cli.Context) error {
				fmt.Fprintf(c.App.Writer, "%s\n", version)
				return nil
			},
		},
	}

	app.Before = func(c *cli.Context) error {
		connect := c.GlobalString("connect")
		if "" == connect {
			return ErrMissingConnect
		}
		c.App.Metadata = map[string]interface{}{
			"config": &metadata{
				connect: connect,
				verbose: c.GlobalBool("verbose"),
				e:       c.App.ErrWriter,
				w:       c.App.Writer,
			},
		}
		return nil
	}

	return app
}
