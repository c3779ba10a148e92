// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration_test

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/iotassetd/configuration"
	"github.com/bitmark-inc/iotassetd/fault"
)

type section struct {
	Listen    []string          `gluamapper:"listen"`
	RateLimit float64           `gluamapper:"rate_limit"`
	Levels    map[string]string `gluamapper:"levels"`
}

type testConfiguration struct {
	DataDirectory string  `gluamapper:"data_directory"`
	PidFile       string  `gluamapper:"pidfile"`
	ClientRPC     section `gluamapper:"client_rpc"`
}

const luaConfiguration = `
local M = {}
M.data_directory = "."
M.client_rpc = {
    listen = { "127.0.0.1:2130", "[::1]:2130" },
    rate_limit = 25,
    levels = { main = "info" },
}
return M
`

func writeFile(t *testing.T, content string) (string, func()) {
	dir, err := ioutil.TempDir("", "configuration")
	if nil != err {
		t.Fatalf("temp dir error: %s", err)
	}
	fileName := filepath.Join(dir, "iotassetd.conf")
	if err := ioutil.WriteFile(fileName, []byte(content), 0600); nil != err {
		t.Fatalf("write file error: %s", err)
	}
	return fileName, func() { os.RemoveAll(dir) }
}

func TestParseConfigurationFile(t *testing.T) {
	fileName, done := writeFile(t, luaConfiguration)
	defer done()

	c := testConfiguration{
		PidFile: "default.pid",
	}
	err := configuration.ParseConfigurationFile(fileName, &c)
	assert.Nil(t, err, "wrong parse")

	assert.Equal(t, ".", c.DataDirectory, "wrong data directory")
	assert.Equal(t, "default.pid", c.PidFile, "default overwritten")
	assert.Equal(t, []string{"127.0.0.1:2130", "[::1]:2130"}, c.ClientRPC.Listen, "wrong listen")
	assert.Equal(t, float64(25), c.ClientRPC.RateLimit, "wrong rate limit")
	assert.Equal(t, "info", c.ClientRPC.Levels["main"], "wrong levels")
}

func TestParseConfigurationFileArg(t *testing.T) {
	fileName, done := writeFile(t, `return { data_directory = arg[0] }`)
	defer done()

	var c testConfiguration
	err := configuration.ParseConfigurationFile(fileName, &c)
	assert.Nil(t, err, "wrong parse")
	assert.Equal(t, fileName, c.DataDirectory, "arg[0] not the file name")
}

func TestParseConfigurationFileErrors(t *testing.T) {
	fileName, done := writeFile(t, `return 42`)
	defer done()

	var c testConfiguration
	err := configuration.ParseConfigurationFile(fileName, &c)
	assert.Equal(t, fault.ErrConfigurationNotTable, err, "non table accepted")

	err = configuration.ParseConfigurationFile(fileName, c)
	assert.Equal(t, fault.ErrInvalidStructPointer, err, "non pointer accepted")

	err = configuration.ParseConfigurationFile(fileName+".missing", &c)
	assert.NotNil(t, err, "missing file accepted")

	bad, done2 := writeFile(t, `return {`)
	defer done2()
	err = configuration.ParseConfigurationFile(bad, &c)
	assert.NotNil(t, err, "syntax error accepted")
}
