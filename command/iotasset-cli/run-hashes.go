// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"strings"

	"github.com/urfave/cli"
)

func argument(c *cli.Context) (string, error) {
	value := strings.TrimSpace(c.Args().First())
	if "" == value {
		return "", ErrMissingValue
	}
	return value, nil
}

func runHashStore(c *cli.Context) error {
	value, err := argument(c)
	if nil != err {
		return err
	}

	m, client, err := connect(c)
	if nil != err {
		return err
	}
	defer client.Close()

	hash, err := client.StoreHash(value)
	if nil != err {
		return err
	}
	return printJson(m.w, map[string]string{"hash": hash})
}

func runHashVerify(c *cli.Context) error {
	value, err := argument(c)
	if nil != err {
		return err
	}

	m, client, err := connect(c)
	if nil != err {
		return err
	}
	defer client.Close()

	reply, err := client.VerifyHash(value)
	if nil != err {
		return err
	}
	return printJson(m.w, reply)
}

func runHashExists(c *cli.Context) error {
	hash, err := argument(c)
	if nil != err {
		return err
	}

	m, client, err := connect(c)
	if nil != err {
		return err
	}
	defer client.Close()

	exists, err := client.HashExists(hash)
	if nil != err {
		return err
	}
	return printJson(m.w, map[string]bool{"exists": exists})
}

func runHashList(c *cli.Context) error {
	m, client, err := connect(c)
	if nil != err {
		return err
	}
	defer client.Close()

	hashes, err := client.ListHashes()
	if nil != err {
		return err
	}
	return printJson(m.w, hashes)
}
