// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package node

import (
	"time"

	"golang.org/x/time/rate"

	"github.com/bitmark-inc/iotassetd/counter"
	"github.com/bitmark-inc/iotassetd/rpc/metrics"
	"github.com/bitmark-inc/iotassetd/rpc/ratelimit"
	"github.com/bitmark-inc/logger"
)

// Node - type for RPC calls
type Node struct {
	Log     *logger.L
	Limiter *rate.Limiter
	Start   time.Time
	Version string
	counter *counter.Counter
}

// New - create the Node RPC service
func New(log *logger.L, start time.Time, version string, counter *counter.Counter, limits *ratelimit.Set) *Node {
	return &Node{
		Log:     log,
		Limiter: limits.New(),
		Start:   start,
		Version: version,
		counter: counter,
	}
}

// InfoArguments - empty arguments for info request
type InfoArguments struct{}

// InfoReply - results from info request
type InfoReply struct {
	Version     string `json:"version"`
	Uptime      string `json:"uptime"`
	Connections uint64 `json:"connections"`
}

// Info - return some information about this node
// for more detail information use HTTP GET requests
func (node *Node) Info(_ *InfoArguments, reply *InfoReply) error {
	err := ratelimit.Limit(node.Limiter)
	metrics.Observe("Node.Info", err)
	if nil != err {
		return err
	}

	reply.Version = node.Version
	reply.Uptime = time.Since(node.Start).String()
	reply.Connections = node.counter.Uint64()
	return nil
}
