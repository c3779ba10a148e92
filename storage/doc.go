// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// maintain the on-disk ledger
//
// maintain separate pools of a number of elements in key->value form
//
// This maintains a LevelDB database split into a series of tables.
// Each table is defined by a prefix byte that is obtained from the
// prefix tag in the struct defining the available tables.
//
// Notes:
// 1. each separate pool has a single byte prefix (to spread the keys in LevelDB)
// 2. ++           = concatenation of byte data
// 3. asset id     = device serial number as UTF-8 bytes
// 4. hash         = lower case hex of SHA-256(fingerprint or MAC address)
//
// Assets:
//
//	A ++ asset id              - IoT device identity
//	                             data: packed record (JSON)
//
// Hashes:
//
//	H ++ hash                  - published fingerprint/MAC hash
//	                             data: {"hash":"<hash>"}
//
// Version:
//
//	0x00 ++ "VERSION"          - database version (big endian uint32)
//
// Scans over a pool are in ascending key order, the same order a
// Fabric range query over the whole namespace would give.
package storage
