// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package server - registration of every RPC service
package server

import (
	"net/rpc"
	"time"

	"github.com/bitmark-inc/iotassetd/counter"
	"github.com/bitmark-inc/iotassetd/publish"
	"github.com/bitmark-inc/iotassetd/rpc/assets"
	"github.com/bitmark-inc/iotassetd/rpc/hashes"
	"github.com/bitmark-inc/iotassetd/rpc/node"
	"github.com/bitmark-inc/iotassetd/rpc/ratelimit"
	"github.com/bitmark-inc/iotassetd/storage"
	"github.com/bitmark-inc/logger"
)

// Create - an RPC server with the Assets, Hashes and Node services
func Create(
	log *logger.L,
	version string,
	database *storage.Database,
	publisher publish.Publisher,
	rpcCount *counter.Counter,
	limits *ratelimit.Set,
) *rpc.Server {

	start := time.Now().UTC()

	server := rpc.NewServer()

	_ = server.Register(assets.New(log, database, publisher, limits))
	_ = server.Register(hashes.New(log, database, publisher, limits))
	_ = server.Register(node.New(log, start, version, rpcCount, limits))

	return server
}
