// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package chaincode - run the contract operations under Hyperledger Fabric
//
// The chaincode stub is adapted to storage.Ledger: Get is GetState,
// Put is PutState and Map is an unbounded GetStateByRange.  Isolation
// of Create's read and write comes from Fabric's read set validation.
//
// Errors leave the chaincode as "<CODE>: <message>" where CODE is one
// of the fault.Code values.
package chaincode
