// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package assetrecord

import (
	"bytes"
	"encoding/json"

	"github.com/bitmark-inc/iotassetd/fault"
)

// Packed - the ledger value of a record
type Packed []byte

// field order must stay sorted by JSON key
type wireRecord struct {
	MacAddress       *string `json:"adresseMac"`
	RadioFingerprint *string `json:"empreinteRadio"`
	Id               *string `json:"id"`
	CloudProviderId  *string `json:"idCloudProvider"`
	ManufacturerId   *string `json:"idFabricant"`
}

// keys accepted by Unpack, docType is written by some ledger clients
var knownKeys = map[string]struct{}{
	"adresseMac":      {},
	"docType":         {},
	"empreinteRadio":  {},
	"id":              {},
	"idCloudProvider": {},
	"idFabricant":     {},
}

// Pack - encode a record for storage
//
// fields that are not valid UTF-8 do not survive a round trip
func (r Record) Pack() Packed {
	w := wireRecord{
		MacAddress:       &r.macAddress,
		RadioFingerprint: &r.radioFingerprint,
		Id:               &r.id,
		CloudProviderId:  &r.cloudProviderId,
		ManufacturerId:   &r.manufacturerId,
	}

	// cannot fail: only string fields
	buffer, _ := json.Marshal(w)
	return buffer
}

// Unpack - decode a stored value
//
// all five fields must be present as strings under their exact keys,
// any failure returns fault.ErrInvalidRecord and a zero record
func (p Packed) Unpack() (Record, error) {
	trimmed := bytes.TrimSpace(p)
	if 0 == len(trimmed) || '{' != trimmed[0] {
		return Record{}, fault.ErrInvalidRecord
	}

	// encoding/json matches struct keys case-insensitively so check
	// the key set before mapping to fields
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(trimmed, &fields); nil != err {
		return Record{}, fault.ErrInvalidRecord
	}
	for key := range fields {
		if _, ok := knownKeys[key]; !ok {
			return Record{}, fault.ErrInvalidRecord
		}
	}

	var w wireRecord
	if err := json.Unmarshal(trimmed, &w); nil != err {
		return Record{}, fault.ErrInvalidRecord
	}

	if nil == w.Id || nil == w.CloudProviderId || nil == w.RadioFingerprint || nil == w.MacAddress || nil == w.ManufacturerId {
		return Record{}, fault.ErrInvalidRecord
	}

	return New(*w.Id, *w.CloudProviderId, *w.RadioFingerprint, *w.MacAddress, *w.ManufacturerId), nil
}

// MarshalJSON - records appear in RPC replies in packed form
func (r Record) MarshalJSON() ([]byte, error) {
	return r.Pack(), nil
}

// UnmarshalJSON - strict decode, same rules as Unpack
func (r *Record) UnmarshalJSON(data []byte) error {
	record, err := Packed(data).Unpack()
	if nil != err {
		return err
	}
	*r = record
	return nil
}
