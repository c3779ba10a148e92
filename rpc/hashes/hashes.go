// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package hashes

import (
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/iotassetd/contract"
	"github.com/bitmark-inc/iotassetd/fault"
	"github.com/bitmark-inc/iotassetd/publish"
	"github.com/bitmark-inc/iotassetd/rpc/metrics"
	"github.com/bitmark-inc/iotassetd/rpc/ratelimit"
	"github.com/bitmark-inc/iotassetd/storage"
	"github.com/bitmark-inc/logger"
)

// Hashes - type for the RPC
type Hashes struct {
	Log       *logger.L
	Limiter   *rate.Limiter
	Database  *storage.Database
	Registry  *contract.Hashes
	Publisher publish.Publisher
}

// New - create the Hashes RPC service
func New(log *logger.L, database *storage.Database, publisher publish.Publisher, limits *ratelimit.Set) *Hashes {
	return &Hashes{
		Log:       log,
		Limiter:   limits.New(),
		Database:  database,
		Registry:  contract.NewHashes(log),
		Publisher: publisher,
	}
}

// BootstrapArguments - empty arguments for bootstrap
type BootstrapArguments struct{}

// BootstrapReply - empty reply from bootstrap
type BootstrapReply struct{}

// Bootstrap - record the hashes of the sample identifiers
func (hashes *Hashes) Bootstrap(_ *BootstrapArguments, _ *BootstrapReply) (err error) {
	defer func() { err = observe("Hashes.Bootstrap", err) }()

	if err := ratelimit.Limit(hashes.Limiter); nil != err {
		return err
	}

	hashes.Log.Info("Hashes.Bootstrap")

	tx := hashes.Database.Begin()
	if err := hashes.Registry.Bootstrap(tx.Bind(hashes.Database.Pool.Hashes)); nil != err {
		tx.Abort()
		return err
	}
	return tx.Commit()
}

// ValueArguments - the value to hash, or a hash for Exists
type ValueArguments struct {
	Value string `json:"value"`
}

// StoreReply - the recorded hash
type StoreReply struct {
	Hash string `json:"hash"`
}

// Store - hash a value and record it
func (hashes *Hashes) Store(arguments *ValueArguments, reply *StoreReply) (err error) {
	defer func() { err = observe("Hashes.Store", err) }()

	if err := ratelimit.Limit(hashes.Limiter); nil != err {
		return err
	}

	hashes.Log.Infof("Hashes.Store: %q", arguments.Value)

	tx := hashes.Database.Begin()
	h, err := hashes.Registry.Store(tx.Bind(hashes.Database.Pool.Hashes), arguments.Value)
	if nil != err {
		tx.Abort()
		return err
	}
	if err := tx.Commit(); nil != err {
		return err
	}

	if err := hashes.Publisher.Publish(publish.HashTopic, h.Pack()); nil != err {
		hashes.Log.Warnf("publish: %s  error: %s", h.Hash, err)
	}

	reply.Hash = h.Hash
	return nil
}

// VerifyReply - result of verifying a value
type VerifyReply struct {
	Hash    string `json:"hash"`
	Found   bool   `json:"found"`
	Message string `json:"message"`
}

// Verify - hash a value and report whether it is recorded
func (hashes *Hashes) Verify(arguments *ValueArguments, reply *VerifyReply) (err error) {
	defer func() { err = observe("Hashes.Verify", err) }()

	if err := ratelimit.Limit(hashes.Limiter); nil != err {
		return err
	}

	hash, found, err := hashes.Registry.Verify(hashes.Database.Pool.Hashes, arguments.Value)
	if nil != err {
		return err
	}

	reply.Hash = hash
	reply.Found = found
	reply.Message = contract.VerifyMessage(hash, found)
	return nil
}

// ExistsReply - result of an existence check
type ExistsReply struct {
	Exists bool `json:"exists"`
}

// Exists - check for a recorded hash
func (hashes *Hashes) Exists(arguments *ValueArguments, reply *ExistsReply) (err error) {
	defer func() { err = observe("Hashes.Exists", err) }()

	if err := ratelimit.Limit(hashes.Limiter); nil != err {
		return err
	}

	reply.Exists, err = hashes.Registry.Exists(hashes.Database.Pool.Hashes, arguments.Value)
	return err
}

// ListArguments - empty arguments for list
type ListArguments struct{}

// ListReply - every recorded hash
type ListReply struct {
	Hashes []contract.HashRecord `json:"hashes"`
}

// List - all recorded hashes in key order
func (hashes *Hashes) List(_ *ListArguments, reply *ListReply) (err error) {
	defer func() { err = observe("Hashes.List", err) }()

	if err := ratelimit.Limit(hashes.Limiter); nil != err {
		return err
	}

	reply.Hashes, err = hashes.Registry.List(hashes.Database.Pool.Hashes)
	return err
}

func observe(method string, err error) error {
	metrics.Observe(method, err)
	return fault.Coded(err)
}
