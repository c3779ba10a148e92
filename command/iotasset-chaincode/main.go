// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"os"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/iotassetd/chaincode"
)

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

func main() {
	// ensure exit handler is first
	defer exitwithstatus.Handler()

	logging := logger.Configuration{
		Directory: os.TempDir(),
		File:      "iotasset-chaincode.log",
		Size:      1048576,
		Count:     10,
		Console:   true,
		Levels: map[string]string{
			logger.DefaultTag: "info",
		},
	}
	if err := logger.Initialise(logging); nil != err {
		exitwithstatus.Message("logger setup failed with error: %s", err)
	}
	defer logger.Finalise()

	log := logger.New("chaincode")
	log.Infof("version: %s", version)

	err := chaincode.Start("iotasset", version, chaincode.NewAssetContract(logger.New("assets")))
	if nil != err {
		log.Criticalf("chaincode error: %s", err)
		exitwithstatus.Message("chaincode error: %s", err)
	}
}
