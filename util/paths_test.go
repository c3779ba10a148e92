// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util_test

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/iotassetd/util"
)

func TestEnsureAbsolute(t *testing.T) {
	assert.Equal(t, "/data/iotassetd.leveldb", util.EnsureAbsolute("/data", "iotassetd.leveldb"), "relative")
	assert.Equal(t, "/etc/rpc.key", util.EnsureAbsolute("/data", "/etc/rpc.key"), "absolute")
	assert.Equal(t, "/log", util.EnsureAbsolute("/data", "../log"), "parent")
}

func TestEnsureFileExists(t *testing.T) {
	dir, err := ioutil.TempDir("", "util")
	assert.Nil(t, err, "temp dir")
	defer os.RemoveAll(dir)

	name := filepath.Join(dir, "nested", "file")
	assert.False(t, util.EnsureFileExists(name), "missing file exists")

	assert.Nil(t, util.EnsureDirectory(filepath.Dir(name)), "make directory")
	assert.Nil(t, ioutil.WriteFile(name, []byte("x"), 0600), "write")
	assert.True(t, util.EnsureFileExists(name), "file not found")
}
