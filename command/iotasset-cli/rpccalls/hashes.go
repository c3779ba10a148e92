// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/bitmark-inc/iotassetd/contract"
	"github.com/bitmark-inc/iotassetd/rpc/hashes"
)

// StoreHash - record the hash of a value
func (client *Client) StoreHash(value string) (string, error) {
	var reply hashes.StoreReply
	err := client.call("Hashes.Store", &hashes.ValueArguments{Value: value}, &reply)
	return reply.Hash, err
}

// VerifyHash - check whether the hash of a value is recorded
func (client *Client) VerifyHash(value string) (*hashes.VerifyReply, error) {
	var reply hashes.VerifyReply
	if err := client.call("Hashes.Verify", &hashes.ValueArguments{Value: value}, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// HashExists - check for a recorded hash
func (client *Client) HashExists(hash string) (bool, error) {
	var reply hashes.ExistsReply
	err := client.call("Hashes.Exists", &hashes.ValueArguments{Value: hash}, &reply)
	return reply.Exists, err
}

// ListHashes - every recorded hash
func (client *Client) ListHashes() ([]contract.HashRecord, error) {
	var reply hashes.ListReply
	err := client.call("Hashes.List", &hashes.ListArguments{}, &reply)
	return reply.Hashes, err
}

// BootstrapHashes - record the sample hashes
func (client *Client) BootstrapHashes() error {
	return client.call("Hashes.Bootstrap", &hashes.BootstrapArguments{}, &hashes.BootstrapReply{})
}
