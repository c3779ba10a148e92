// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package contract - the operations run against a ledger
//
// Assets is the IoT device registry: one packed record per serial
// number, stored under the serial number.  Hashes is the public
// registry of SHA-256 digests of fingerprints and MAC addresses,
// stored under the digest.
//
// Neither type holds ledger state: every operation receives the
// storage.Ledger to run against, so the same code serves a LevelDB
// transaction in the daemon and the chaincode stub under Fabric.
//
// Lookups by fingerprint or MAC address scan the whole ledger in key
// order and cost O(n) in the number of stored records.
package contract
