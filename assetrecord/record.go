// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package assetrecord

import (
	"encoding/binary"
	"encoding/hex"
	"fmt"

	"golang.org/x/crypto/sha3"
)

// Record - one IoT device identity
type Record struct {
	id               string // serial number, the ledger key
	cloudProviderId  string
	radioFingerprint string
	macAddress       string
	manufacturerId   string
}

// New - create a record, all values are accepted as-is
func New(id string, cloudProviderId string, radioFingerprint string, macAddress string, manufacturerId string) Record {
	return Record{
		id:               id,
		cloudProviderId:  cloudProviderId,
		radioFingerprint: radioFingerprint,
		macAddress:       macAddress,
		manufacturerId:   manufacturerId,
	}
}

func (r Record) Id() string               { return r.id }
func (r Record) CloudProviderId() string  { return r.cloudProviderId }
func (r Record) RadioFingerprint() string { return r.radioFingerprint }
func (r Record) MacAddress() string       { return r.macAddress }
func (r Record) ManufacturerId() string   { return r.manufacturerId }

// Equal - true if all five fields are the same
func (r Record) Equal(other Record) bool {
	return r == other
}

// String - for %s and %v
func (r Record) String() string {
	return fmt.Sprintf("IoTAsset{id='%s', cloudProviderId='%s', radioFingerprint='%s', macAddress='%s', manufacturerId='%s'}",
		r.id, r.cloudProviderId, r.radioFingerprint, r.macAddress, r.manufacturerId)
}

// DigestLength - size of a record hash in bytes
const DigestLength = 32

// Digest - SHA3-256 of the canonical form of a record
type Digest [DigestLength]byte

// Hash - deterministic digest over all five fields
//
// each field is preceded by its length as a varint so that moving
// characters between adjacent fields changes the digest
func (r Record) Hash() Digest {
	return Digest(sha3.Sum256(r.canonical()))
}

func (r Record) canonical() []byte {
	buffer := make([]byte, 0, 5*binary.MaxVarintLen64+len(r.id)+len(r.cloudProviderId)+len(r.radioFingerprint)+len(r.macAddress)+len(r.manufacturerId))
	for _, s := range []string{r.id, r.cloudProviderId, r.radioFingerprint, r.macAddress, r.manufacturerId} {
		buffer = appendString(buffer, s)
	}
	return buffer
}

func appendString(buffer []byte, s string) []byte {
	var count [binary.MaxVarintLen64]byte
	n := binary.PutUvarint(count[:], uint64(len(s)))
	buffer = append(buffer, count[:n]...)
	return append(buffer, s...)
}

// String - hex form of a digest
func (d Digest) String() string {
	return hex.EncodeToString(d[:])
}

// GoString - for %#v
func (d Digest) GoString() string {
	return "<digest:" + hex.EncodeToString(d[:]) + ">"
}
