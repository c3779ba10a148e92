// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"strings"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/iotassetd/command/iotasset-cli/rpccalls"
)

func connect(c *cli.Context) (*metadata, *rpccalls.Client, error) {
	m := c.App.Metadata["config"].(*metadata)

	client, err := rpccalls.NewClient(m.connect, m.verbose, m.e)
	if nil != err {
		return nil, nil, err
	}
	return m, client, nil
}

// the single non-blank flag among names
func selectOne(c *cli.Context, names ...string) (string, string, error) {
	name := ""
	value := ""
	for _, n := range names {
		v := strings.TrimSpace(c.String(n))
		if "" == v {
			continue
		}
		if "" != name {
			return "", "", ErrSelectOne
		}
		name = n
		value = v
	}
	if "" == name {
		return "", "", ErrSelectOne
	}
	return name, value, nil
}

func runCreate(c *cli.Context) error {
	data := &rpccalls.AssetData{
		Id:               strings.TrimSpace(c.String("id")),
		CloudProviderId:  c.String("cloud-provider"),
		RadioFingerprint: c.String("fingerprint"),
		MacAddress:       c.String("mac"),
		ManufacturerId:   c.String("manufacturer"),
	}
	if "" == data.Id {
		return ErrMissingValue
	}

	m, client, err := connect(c)
	if nil != err {
		return err
	}
	defer client.Close()

	r, err := client.CreateAsset(data)
	if nil != err {
		return err
	}
	return printJson(m.w, r)
}

func runFind(c *cli.Context) error {
	name, value, err := selectOne(c, "fingerprint", "mac")
	if nil != err {
		return err
	}

	m, client, err := connect(c)
	if nil != err {
		return err
	}
	defer client.Close()

	r, err := client.FindAsset(value, "mac" == name)
	if nil != err {
		return err
	}
	return printJson(m.w, r)
}

func runExists(c *cli.Context) error {
	name, value, err := selectOne(c, rpccalls.FieldId, rpccalls.FieldFingerprint, rpccalls.FieldMac)
	if nil != err {
		return err
	}

	m, client, err := connect(c)
	if nil != err {
		return err
	}
	defer client.Close()

	exists, err := client.AssetExists(name, value)
	if nil != err {
		return err
	}
	return printJson(m.w, map[string]bool{"exists": exists})
}

func runList(c *cli.Context) error {
	m, client, err := connect(c)
	if nil != err {
		return err
	}
	defer client.Close()

	records, err := client.ListAssets()
	if nil != err {
		return err
	}
	return printJson(m.w, records)
}

func runBootstrap(c *cli.Context) error {
	m, client, err := connect(c)
	if nil != err {
		return err
	}
	defer client.Close()

	if err := client.BootstrapAssets(); nil != err {
		return err
	}
	if err := client.BootstrapHashes(); nil != err {
		return err
	}
	return printJson(m.w, map[string]string{"bootstrap": "ok"})
}

func runInfo(c *cli.Context) error {
	m, client, err := connect(c)
	if nil != err {
		return err
	}
	defer client.Close()

	info, err := client.GetInfo()
	if nil != err {
		return err
	}
	return printJson(m.w, info)
}
