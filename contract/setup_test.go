// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package contract_test

import (
	"testing"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/iotassetd/fixtures"
	"github.com/bitmark-inc/iotassetd/storage"
)

// in-memory database with logging to the test directory
func setup(t *testing.T) *storage.Database {
	fixtures.SetupTestLogger()

	d, err := storage.OpenMemory()
	if nil != err {
		t.Fatalf("storage open error: %s", err)
	}
	return d
}

func teardown(d *storage.Database) {
	d.Close()
	fixtures.TeardownTestLogger()
}

func testLogger() *logger.L {
	return logger.New(fixtures.LogCategory)
}
