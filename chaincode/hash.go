// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincode

import (
	"github.com/bitmark-inc/logger"
	"github.com/hyperledger/fabric-contract-api-go/contractapi"

	"github.com/bitmark-inc/iotassetd/contract"
)

// HashContract - the public hash registry chaincode
type HashContract struct {
	contractapi.Contract
	hashes *contract.Hashes
}

// NewHashContract - create the contract
func NewHashContract(log *logger.L) *HashContract {
	c := &HashContract{
		hashes: contract.NewHashes(log),
	}
	c.Name = "AssetHashContract"
	return c
}

// Bootstrap - store the hashes of the sample devices
func (c *HashContract) Bootstrap(ctx contractapi.TransactionContextInterface) error {
	return coded(c.hashes.Bootstrap(LedgerOf(ctx.GetStub())))
}

// StoreHash - hash a fingerprint or MAC address and record it
func (c *HashContract) StoreHash(ctx contractapi.TransactionContextInterface, value string) (*contract.HashRecord, error) {
	stub := ctx.GetStub()
	hash, err := c.hashes.Store(LedgerOf(stub), value)
	if nil != err {
		return nil, coded(err)
	}
	if err := stub.SetEvent(HashStoredEvent, hash.Pack()); nil != err {
		return nil, coded(err)
	}
	return &hash, nil
}

// VerifyHash - report whether the hash of the value is recorded
func (c *HashContract) VerifyHash(ctx contractapi.TransactionContextInterface, value string) (string, error) {
	hash, found, err := c.hashes.Verify(LedgerOf(ctx.GetStub()), value)
	if nil != err {
		return "", coded(err)
	}
	return contract.VerifyMessage(hash, found), nil
}

// HashExists - true if the hash is recorded
func (c *HashContract) HashExists(ctx contractapi.TransactionContextInterface, hash string) (bool, error) {
	exists, err := c.hashes.Exists(LedgerOf(ctx.GetStub()), hash)
	return exists, coded(err)
}

// ListHashes - every recorded hash in key order
func (c *HashContract) ListHashes(ctx contractapi.TransactionContextInterface) ([]contract.HashRecord, error) {
	hashes, err := c.hashes.List(LedgerOf(ctx.GetStub()))
	return hashes, coded(err)
}
