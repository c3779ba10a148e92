// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"os"
	"testing"

	"github.com/bitmark-inc/iotassetd/fixtures"
)

// test database file
const (
	databaseFileName = "test.leveldb"
)

// remove all files created by test
func removeFiles() {
	os.RemoveAll(databaseFileName)
}

// configure for testing
func setup(t *testing.T) *Database {
	fixtures.SetupTestLogger()

	d, err := OpenMemory()
	if nil != err {
		t.Fatalf("storage open error: %s", err)
	}
	return d
}

// post test cleanup
func teardown(d *Database) {
	d.Close()
	removeFiles()
	fixtures.TeardownTestLogger()
}

// a string data item
type stringElement struct {
	key   string
	value string
}

// load the pool in a non-sorted order
func loadElements(t *testing.T, p *PoolHandle, input []stringElement) {
	for _, e := range input {
		if err := p.Put([]byte(e.key), []byte(e.value)); nil != err {
			t.Fatalf("put: %q error: %s", e.key, err)
		}
	}
}

var unsortedElements = []stringElement{
	{"key-one", "data-one"},
	{"key-two", "data-two"},
	{"key-three", "data-three"},
	{"key-four", "data-four"},
	{"key-five", "data-five"},
	{"key-six", "data-six"},
	{"key-seven", "data-seven"},
}

// this is the expected order
var sortedElements = []stringElement{
	{"key-five", "data-five"},
	{"key-four", "data-four"},
	{"key-one", "data-one"},
	{"key-seven", "data-seven"},
	{"key-six", "data-six"},
	{"key-three", "data-three"},
	{"key-two", "data-two"},
}

// a key that must not exist
var nonExistentKey = []byte("/nonexistent")
