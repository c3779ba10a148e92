// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package contract

import (
	"errors"

	"github.com/bitmark-inc/iotassetd/assetrecord"
	"github.com/bitmark-inc/iotassetd/fault"
	"github.com/bitmark-inc/iotassetd/storage"
)

// returned by a scan callback to end the scan without error
var errStopScan = errors.New("stop scan")

// visit every record in key order until f returns false
//
// a value that does not decode aborts the scan with an identified
// record error
func scanRecords(ledger storage.Ledger, f func(record assetrecord.Record) bool) error {
	err := ledger.Map(func(key []byte, value []byte) error {
		record, err := assetrecord.Packed(value).Unpack()
		if nil != err {
			return fault.Identify(err, string(key))
		}
		if !f(record) {
			return errStopScan
		}
		return nil
	})
	if errStopScan == err {
		return nil
	}
	return err
}

// first record in key order satisfying match
func findRecord(ledger storage.Ledger, match func(record assetrecord.Record) bool) (assetrecord.Record, bool, error) {
	result := assetrecord.Record{}
	found := false
	err := scanRecords(ledger, func(record assetrecord.Record) bool {
		if match(record) {
			result = record
			found = true
			return false
		}
		return true
	})
	if nil != err {
		return assetrecord.Record{}, false, err
	}
	return result, found, nil
}
