// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincode

import (
	"github.com/hyperledger/fabric-chaincode-go/shim"

	"github.com/bitmark-inc/iotassetd/storage"
)

type stubLedger struct {
	stub shim.ChaincodeStubInterface
}

// LedgerOf - the world state of the current transaction as a Ledger
func LedgerOf(stub shim.ChaincodeStubInterface) storage.Ledger {
	return &stubLedger{
		stub: stub,
	}
}

// GetState already returns nil, nil for an absent key
func (l *stubLedger) Get(key []byte) ([]byte, error) {
	return l.stub.GetState(string(key))
}

func (l *stubLedger) Put(key []byte, value []byte) error {
	return l.stub.PutState(string(key), value)
}

func (l *stubLedger) Map(f func(key []byte, value []byte) error) error {
	iter, err := l.stub.GetStateByRange("", "")
	if nil != err {
		return err
	}
	defer iter.Close()

	for iter.HasNext() {
		kv, err := iter.Next()
		if nil != err {
			return err
		}
		if err := f([]byte(kv.Key), kv.Value); nil != err {
			return err
		}
	}
	return nil
}
