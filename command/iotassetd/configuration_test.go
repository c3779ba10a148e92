// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/iotassetd/rpc/ratelimit"
)

func writeConfiguration(t *testing.T, content string) (string, string) {
	dir, err := ioutil.TempDir("", "iotassetd")
	if nil != err {
		t.Fatalf("temp dir error: %s", err)
	}
	fileName := filepath.Join(dir, "iotassetd.conf")
	if err := ioutil.WriteFile(fileName, []byte(content), 0600); nil != err {
		t.Fatalf("write error: %s", err)
	}
	return dir, fileName
}

func TestGetConfigurationDefaults(t *testing.T) {
	dir, fileName := writeConfiguration(t, `return { data_directory = "." }`)
	defer os.RemoveAll(dir)

	c, err := getConfiguration(fileName)
	assert.Nil(t, err, "wrong getConfiguration")

	assert.Equal(t, filepath.Join(dir, "data", defaultDatabase), c.Database.Name, "wrong database")
	assert.Equal(t, filepath.Join(dir, defaultCertificateFile), c.ClientRPC.Certificate, "wrong certificate")
	assert.Equal(t, filepath.Join(dir, defaultKeyFile), c.HttpsRPC.PrivateKey, "wrong https key")
	assert.Equal(t, filepath.Join(dir, defaultPublishPublicKeyFile), c.Publishing.PublicKey, "wrong publish key")
	assert.Equal(t, float64(ratelimit.DefaultLimit), c.ClientRPC.RateLimit, "wrong rate limit")
	assert.Equal(t, ratelimit.DefaultBurst, c.ClientRPC.RateBurst, "wrong rate burst")
	assert.Equal(t, "", c.PidFile, "unexpected pid file")

	assert.DirExists(t, filepath.Join(dir, "data"), "database directory not created")
	assert.DirExists(t, filepath.Join(dir, defaultLogDirectory), "log directory not created")
}

func TestGetConfigurationOverrides(t *testing.T) {
	dir, fileName := writeConfiguration(t, `
local M = {}
M.data_directory = "."
M.pidfile = "iotassetd.pid"
M.client_rpc = {
    maximum_connections = 3,
    listen = { "127.0.0.1:2130" },
    rate_limit = 5,
    rate_burst = 2,
    certificate = "/etc/iotassetd/rpc.crt",
}
M.https_rpc = {
    listen = { "127.0.0.1:2131" },
    allow = { details = { "127.0.0.0/8" } },
}
return M
`)
	defer os.RemoveAll(dir)

	c, err := getConfiguration(fileName)
	assert.Nil(t, err, "wrong getConfiguration")

	assert.Equal(t, filepath.Join(dir, "iotassetd.pid"), c.PidFile, "wrong pid file")
	assert.Equal(t, uint64(3), c.ClientRPC.MaximumConnections, "wrong maximum connections")
	assert.Equal(t, []string{"127.0.0.1:2130"}, c.ClientRPC.Listen, "wrong listen")
	assert.Equal(t, float64(5), c.ClientRPC.RateLimit, "wrong rate limit")
	assert.Equal(t, 2, c.ClientRPC.RateBurst, "wrong rate burst")
	assert.Equal(t, "/etc/iotassetd/rpc.crt", c.ClientRPC.Certificate, "absolute path changed")
	assert.Equal(t, []string{"127.0.0.0/8"}, c.HttpsRPC.Allow["details"], "wrong allow")
}

func TestGetConfigurationErrors(t *testing.T) {
	dir, fileName := writeConfiguration(t, `return {}`)
	defer os.RemoveAll(dir)

	_, err := getConfiguration(fileName)
	assert.NotNil(t, err, "missing data directory accepted")

	dir2, fileName2 := writeConfiguration(t, `return { data_directory = ".", database = { name = "sub/db.leveldb" } }`)
	defer os.RemoveAll(dir2)

	_, err = getConfiguration(fileName2)
	assert.NotNil(t, err, "database path accepted as name")
}
