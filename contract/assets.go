// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package contract

import (
	"unicode/utf8"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/iotassetd/assetrecord"
	"github.com/bitmark-inc/iotassetd/fault"
	"github.com/bitmark-inc/iotassetd/storage"
)

// BootstrapRecords - the fixed sample devices written by Bootstrap
var BootstrapRecords = []assetrecord.Record{
	assetrecord.New("SN-1", "cloud_provider_1", "empreinte1", "00:0a:95:9d:68:16", "fabricant_1"),
	assetrecord.New("SN-2", "cloud_provider_2", "empreinte2", "00:0a:95:9d:68:17", "fabricant_1"),
}

// Assets - the IoT device registry
type Assets struct {
	log *logger.L
}

// NewAssets - create the registry operations
func NewAssets(log *logger.L) *Assets {
	return &Assets{
		log: log,
	}
}

// Bootstrap - unconditionally write the sample records
func (a *Assets) Bootstrap(ledger storage.Ledger) error {
	for _, record := range BootstrapRecords {
		err := ledger.Put([]byte(record.Id()), record.Pack())
		if nil != err {
			a.log.Errorf("bootstrap: %q  error: %s", record.Id(), err)
			return err
		}
	}
	a.log.Infof("bootstrap: wrote %d records", len(BootstrapRecords))
	return nil
}

// Create - store a new record under its serial number
//
// an existing record is never overwritten
func (a *Assets) Create(ledger storage.Ledger, id string, cloudProviderId string, radioFingerprint string, macAddress string, manufacturerId string) (assetrecord.Record, error) {
	if "" == id {
		return assetrecord.Record{}, fault.ErrMissingIdentifier
	}

	// the packed form cannot carry invalid UTF-8 unchanged
	for _, field := range []struct {
		name  string
		value string
	}{
		{"id", id},
		{"idCloudProvider", cloudProviderId},
		{"empreinteRadio", radioFingerprint},
		{"adresseMac", macAddress},
		{"idFabricant", manufacturerId},
	} {
		if !utf8.ValidString(field.value) {
			return assetrecord.Record{}, fault.Identify(fault.ErrInvalidUTF8, field.name)
		}
	}

	exists, err := a.ExistsById(ledger, id)
	if nil != err {
		return assetrecord.Record{}, err
	}
	if exists {
		a.log.Debugf("create: %q already exists", id)
		return assetrecord.Record{}, fault.Identify(fault.ErrAssetAlreadyExists, id)
	}

	record := assetrecord.New(id, cloudProviderId, radioFingerprint, macAddress, manufacturerId)
	err = ledger.Put([]byte(id), record.Pack())
	if nil != err {
		return assetrecord.Record{}, err
	}

	a.log.Infof("create: %s", record)
	return record, nil
}

// ExistsById - true if a non-empty value is stored under the id
func (a *Assets) ExistsById(ledger storage.Ledger, id string) (bool, error) {
	value, err := ledger.Get([]byte(id))
	if nil != err {
		return false, err
	}
	return 0 != len(value), nil
}

// FindByFingerprint - the first record in key order with the radio fingerprint
func (a *Assets) FindByFingerprint(ledger storage.Ledger, radioFingerprint string) (assetrecord.Record, error) {
	return a.findOne(ledger, radioFingerprint, byFingerprint(radioFingerprint))
}

// FindByMac - the first record in key order with the MAC address
func (a *Assets) FindByMac(ledger storage.Ledger, macAddress string) (assetrecord.Record, error) {
	return a.findOne(ledger, macAddress, byMac(macAddress))
}

// ExistsByFingerprint - true if any record has the radio fingerprint
//
// a missing record is false, nil; ledger and decode errors are returned
func (a *Assets) ExistsByFingerprint(ledger storage.Ledger, radioFingerprint string) (bool, error) {
	_, found, err := findRecord(ledger, byFingerprint(radioFingerprint))
	return found, err
}

// ExistsByMac - true if any record has the MAC address
func (a *Assets) ExistsByMac(ledger storage.Ledger, macAddress string) (bool, error) {
	_, found, err := findRecord(ledger, byMac(macAddress))
	return found, err
}

// ListAll - every stored record in key order
func (a *Assets) ListAll(ledger storage.Ledger) ([]assetrecord.Record, error) {
	records := make([]assetrecord.Record, 0, 16)
	err := scanRecords(ledger, func(record assetrecord.Record) bool {
		records = append(records, record)
		return true
	})
	if nil != err {
		a.log.Errorf("list: error: %s", err)
		return nil, err
	}
	return records, nil
}

func (a *Assets) findOne(ledger storage.Ledger, value string, match func(assetrecord.Record) bool) (assetrecord.Record, error) {
	record, found, err := findRecord(ledger, match)
	if nil != err {
		a.log.Errorf("find: %q  error: %s", value, err)
		return assetrecord.Record{}, err
	}
	if !found {
		return assetrecord.Record{}, fault.Identify(fault.ErrAssetNotFound, value)
	}
	return record, nil
}

func byFingerprint(radioFingerprint string) func(assetrecord.Record) bool {
	return func(r assetrecord.Record) bool {
		return r.RadioFingerprint() == radioFingerprint
	}
}

func byMac(macAddress string) func(assetrecord.Record) bool {
	return func(r assetrecord.Record) bool {
		return r.MacAddress() == macAddress
	}
}
