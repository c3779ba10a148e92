// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package assetrecord - the IoT device identity record
//
// A record is immutable: fields are only set by New and read through
// accessors.  Changing any field means creating a new record and
// storing it under the same id.
//
// Packed form (the ledger value) is a JSON object with the keys in
// sorted order:
//
//	{"adresseMac":…,"empreinteRadio":…,"id":…,"idCloudProvider":…,"idFabricant":…}
//
// which is byte compatible with records written by the JavaScript
// chaincode.  Unknown keys (e.g. "docType") are ignored on unpack,
// missing or non-string keys are rejected.
package assetrecord
