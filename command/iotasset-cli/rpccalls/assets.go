// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/bitmark-inc/iotassetd/assetrecord"
	"github.com/bitmark-inc/iotassetd/rpc/assets"
)

// AssetData - the fields of a new record
type AssetData struct {
	Id               string
	CloudProviderId  string
	RadioFingerprint string
	MacAddress       string
	ManufacturerId   string
}

// CreateAsset - register a new record
func (client *Client) CreateAsset(data *AssetData) (assetrecord.Record, error) {
	args := assets.CreateArguments{
		Id:               data.Id,
		CloudProviderId:  data.CloudProviderId,
		RadioFingerprint: data.RadioFingerprint,
		MacAddress:       data.MacAddress,
		ManufacturerId:   data.ManufacturerId,
	}
	var reply assets.AssetReply
	err := client.call("Assets.Create", &args, &reply)
	return reply.Asset, err
}

// FindAsset - lookup by radio fingerprint, or by MAC address if byMac
func (client *Client) FindAsset(value string, byMac bool) (assetrecord.Record, error) {
	method := "Assets.FindByFingerprint"
	if byMac {
		method = "Assets.FindByMac"
	}
	var reply assets.AssetReply
	err := client.call(method, &assets.ValueArguments{Value: value}, &reply)
	return reply.Asset, err
}

// Field names accepted by AssetExists
const (
	FieldId          = "id"
	FieldFingerprint = "fingerprint"
	FieldMac         = "mac"
)

// AssetExists - check an identifier, fingerprint or MAC address
func (client *Client) AssetExists(field string, value string) (bool, error) {
	var method string
	switch field {
	case FieldId:
		method = "Assets.ExistsById"
	case FieldFingerprint:
		method = "Assets.ExistsByFingerprint"
	case FieldMac:
		method = "Assets.ExistsByMac"
	default:
		return false, ErrUnknownField
	}
	var reply assets.ExistsReply
	err := client.call(method, &assets.ValueArguments{Value: value}, &reply)
	return reply.Exists, err
}

// ListAssets - every record
func (client *Client) ListAssets() ([]assetrecord.Record, error) {
	var reply assets.ListReply
	err := client.call("Assets.List", &assets.ListArguments{}, &reply)
	return reply.Assets, err
}

// BootstrapAssets - write the sample records
func (client *Client) BootstrapAssets() error {
	return client.call("Assets.Bootstrap", &assets.BootstrapArguments{}, &assets.BootstrapReply{})
}
