// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincode

import (
	"github.com/bitmark-inc/logger"
	"github.com/hyperledger/fabric-contract-api-go/contractapi"

	"github.com/bitmark-inc/iotassetd/assetrecord"
	"github.com/bitmark-inc/iotassetd/contract"
	"github.com/bitmark-inc/iotassetd/fault"
)

// event names
const (
	AssetCreatedEvent = "IoTAssetCreated"
	HashStoredEvent   = "AssetHashStored"
)

// IoTAsset - a record as it crosses the chaincode boundary
type IoTAsset struct {
	MacAddress       string `json:"adresseMac"`
	RadioFingerprint string `json:"empreinteRadio"`
	Id               string `json:"id"`
	CloudProviderId  string `json:"idCloudProvider"`
	ManufacturerId   string `json:"idFabricant"`
}

func assetOf(r assetrecord.Record) *IoTAsset {
	return &IoTAsset{
		MacAddress:       r.MacAddress(),
		RadioFingerprint: r.RadioFingerprint(),
		Id:               r.Id(),
		CloudProviderId:  r.CloudProviderId(),
		ManufacturerId:   r.ManufacturerId(),
	}
}

// AssetContract - the IoT device registry chaincode
type AssetContract struct {
	contractapi.Contract
	assets *contract.Assets
}

// NewAssetContract - create the contract
func NewAssetContract(log *logger.L) *AssetContract {
	c := &AssetContract{
		assets: contract.NewAssets(log),
	}
	c.Name = "IoTAssetContract"
	return c
}

// Bootstrap - write the sample records
func (c *AssetContract) Bootstrap(ctx contractapi.TransactionContextInterface) error {
	return coded(c.assets.Bootstrap(LedgerOf(ctx.GetStub())))
}

// Create - register a new device
func (c *AssetContract) Create(ctx contractapi.TransactionContextInterface, id string, cloudProviderId string, radioFingerprint string, macAddress string, manufacturerId string) (*IoTAsset, error) {
	stub := ctx.GetStub()
	record, err := c.assets.Create(LedgerOf(stub), id, cloudProviderId, radioFingerprint, macAddress, manufacturerId)
	if nil != err {
		return nil, coded(err)
	}
	if err := stub.SetEvent(AssetCreatedEvent, record.Pack()); nil != err {
		return nil, coded(err)
	}
	return assetOf(record), nil
}

// ExistsById - true if the serial number is registered
func (c *AssetContract) ExistsById(ctx contractapi.TransactionContextInterface, id string) (bool, error) {
	exists, err := c.assets.ExistsById(LedgerOf(ctx.GetStub()), id)
	return exists, coded(err)
}

// FindByFingerprint - the device with the radio fingerprint
func (c *AssetContract) FindByFingerprint(ctx contractapi.TransactionContextInterface, radioFingerprint string) (*IoTAsset, error) {
	record, err := c.assets.FindByFingerprint(LedgerOf(ctx.GetStub()), radioFingerprint)
	if nil != err {
		return nil, coded(err)
	}
	return assetOf(record), nil
}

// FindByMac - the device with the MAC address
func (c *AssetContract) FindByMac(ctx contractapi.TransactionContextInterface, macAddress string) (*IoTAsset, error) {
	record, err := c.assets.FindByMac(LedgerOf(ctx.GetStub()), macAddress)
	if nil != err {
		return nil, coded(err)
	}
	return assetOf(record), nil
}

// ExistsByFingerprint - true if any device has the radio fingerprint
func (c *AssetContract) ExistsByFingerprint(ctx contractapi.TransactionContextInterface, radioFingerprint string) (bool, error) {
	exists, err := c.assets.ExistsByFingerprint(LedgerOf(ctx.GetStub()), radioFingerprint)
	return exists, coded(err)
}

// ExistsByMac - true if any device has the MAC address
func (c *AssetContract) ExistsByMac(ctx contractapi.TransactionContextInterface, macAddress string) (bool, error) {
	exists, err := c.assets.ExistsByMac(LedgerOf(ctx.GetStub()), macAddress)
	return exists, coded(err)
}

// ListAll - every registered device in key order
func (c *AssetContract) ListAll(ctx contractapi.TransactionContextInterface) ([]*IoTAsset, error) {
	records, err := c.assets.ListAll(LedgerOf(ctx.GetStub()))
	if nil != err {
		return nil, coded(err)
	}
	result := make([]*IoTAsset, 0, len(records))
	for _, r := range records {
		result = append(result, assetOf(r))
	}
	return result, nil
}

func coded(err error) error {
	return fault.Coded(err)
}
