// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package fixtures - shared test setup
package fixtures

import (
	"fmt"
	"os"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/iotassetd/assetrecord"
)

const (
	dir         = "testing"
	LogCategory = "testing"
)

// sample records, distinct in every field
var (
	RecordOne   = assetrecord.New("A-001", "cp-1", "fp-1", "02:00:00:00:00:01", "mf-1")
	RecordTwo   = assetrecord.New("B-002", "cp-2", "fp-2", "02:00:00:00:00:02", "mf-1")
	RecordThree = assetrecord.New("C-003", "cp-3", "fp-3", "02:00:00:00:00:03", "mf-2")
)

// SetupTestLogger - start logging to a scratch directory
func SetupTestLogger() {
	removeFiles()
	_ = os.Mkdir(dir, 0700)

	logging := logger.Configuration{
		Directory: dir,
		File:      fmt.Sprintf("%s.log", LogCategory),
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	}

	// start logging
	_ = logger.Initialise(logging)
}

// TeardownTestLogger - stop logging and remove the scratch directory
func TeardownTestLogger() {
	logger.Finalise()
	removeFiles()
}

func removeFiles() {
	err := os.RemoveAll(dir)
	if nil != err {
		fmt.Println("remove dir with error: ", err)
	}
}
