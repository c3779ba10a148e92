// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package assets

import (
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/iotassetd/assetrecord"
	"github.com/bitmark-inc/iotassetd/contract"
	"github.com/bitmark-inc/iotassetd/fault"
	"github.com/bitmark-inc/iotassetd/publish"
	"github.com/bitmark-inc/iotassetd/rpc/metrics"
	"github.com/bitmark-inc/iotassetd/rpc/ratelimit"
	"github.com/bitmark-inc/iotassetd/storage"
	"github.com/bitmark-inc/logger"
)

// Assets - type for the RPC
type Assets struct {
	Log       *logger.L
	Limiter   *rate.Limiter
	Database  *storage.Database
	Store     *contract.Assets
	Publisher publish.Publisher
}

// New - create the Assets RPC service
func New(log *logger.L, database *storage.Database, publisher publish.Publisher, limits *ratelimit.Set) *Assets {
	return &Assets{
		Log:       log,
		Limiter:   limits.New(),
		Database:  database,
		Store:     contract.NewAssets(log),
		Publisher: publisher,
	}
}

// ---

// BootstrapArguments - empty arguments for bootstrap
type BootstrapArguments struct{}

// BootstrapReply - empty reply from bootstrap
type BootstrapReply struct{}

// Bootstrap - write the two fixed sample records
func (assets *Assets) Bootstrap(_ *BootstrapArguments, _ *BootstrapReply) (err error) {
	defer func() { err = observe("Assets.Bootstrap", err) }()

	if err := ratelimit.Limit(assets.Limiter); nil != err {
		return err
	}

	assets.Log.Info("Assets.Bootstrap")

	tx := assets.Database.Begin()
	if err := assets.Store.Bootstrap(tx.Bind(assets.Database.Pool.Assets)); nil != err {
		tx.Abort()
		return err
	}
	return tx.Commit()
}

// ---

// CreateArguments - the five fields of a new record
type CreateArguments struct {
	Id               string `json:"id"`
	CloudProviderId  string `json:"cloudProviderId"`
	RadioFingerprint string `json:"radioFingerprint"`
	MacAddress       string `json:"macAddress"`
	ManufacturerId   string `json:"manufacturerId"`
}

// AssetReply - a single record
type AssetReply struct {
	Asset assetrecord.Record `json:"asset"`
}

// Create - insert a new record keyed by its identifier
func (assets *Assets) Create(arguments *CreateArguments, reply *AssetReply) (err error) {
	defer func() { err = observe("Assets.Create", err) }()

	if err := ratelimit.Limit(assets.Limiter); nil != err {
		return err
	}

	assets.Log.Infof("Assets.Create: %+v", arguments)

	tx := assets.Database.Begin()
	r, err := assets.Store.Create(
		tx.Bind(assets.Database.Pool.Assets),
		arguments.Id,
		arguments.CloudProviderId,
		arguments.RadioFingerprint,
		arguments.MacAddress,
		arguments.ManufacturerId,
	)
	if nil != err {
		tx.Abort()
		return err
	}
	if err := tx.Commit(); nil != err {
		return err
	}

	if err := assets.Publisher.Publish(publish.AssetTopic, r.Pack()); nil != err {
		assets.Log.Warnf("publish: %q  error: %s", r.Id(), err)
	}

	reply.Asset = r
	return nil
}

// ---

// ValueArguments - a single lookup value
type ValueArguments struct {
	Value string `json:"value"`
}

// ExistsReply - result of an existence check
type ExistsReply struct {
	Exists bool `json:"exists"`
}

// FindByFingerprint - first record with the radio fingerprint
func (assets *Assets) FindByFingerprint(arguments *ValueArguments, reply *AssetReply) (err error) {
	defer func() { err = observe("Assets.FindByFingerprint", err) }()

	if err := ratelimit.Limit(assets.Limiter); nil != err {
		return err
	}

	reply.Asset, err = assets.Store.FindByFingerprint(assets.Database.Pool.Assets, arguments.Value)
	return err
}

// FindByMac - first record with the MAC address
func (assets *Assets) FindByMac(arguments *ValueArguments, reply *AssetReply) (err error) {
	defer func() { err = observe("Assets.FindByMac", err) }()

	if err := ratelimit.Limit(assets.Limiter); nil != err {
		return err
	}

	reply.Asset, err = assets.Store.FindByMac(assets.Database.Pool.Assets, arguments.Value)
	return err
}

// ExistsByFingerprint - check for a radio fingerprint
func (assets *Assets) ExistsByFingerprint(arguments *ValueArguments, reply *ExistsReply) (err error) {
	defer func() { err = observe("Assets.ExistsByFingerprint", err) }()

	if err := ratelimit.Limit(assets.Limiter); nil != err {
		return err
	}

	reply.Exists, err = assets.Store.ExistsByFingerprint(assets.Database.Pool.Assets, arguments.Value)
	return err
}

// ExistsByMac - check for a MAC address
func (assets *Assets) ExistsByMac(arguments *ValueArguments, reply *ExistsReply) (err error) {
	defer func() { err = observe("Assets.ExistsByMac", err) }()

	if err := ratelimit.Limit(assets.Limiter); nil != err {
		return err
	}

	reply.Exists, err = assets.Store.ExistsByMac(assets.Database.Pool.Assets, arguments.Value)
	return err
}

// ExistsById - check for an identifier
func (assets *Assets) ExistsById(arguments *ValueArguments, reply *ExistsReply) (err error) {
	defer func() { err = observe("Assets.ExistsById", err) }()

	if err := ratelimit.Limit(assets.Limiter); nil != err {
		return err
	}

	reply.Exists, err = assets.Store.ExistsById(assets.Database.Pool.Assets, arguments.Value)
	return err
}

// ---

// ListArguments - empty arguments for list
type ListArguments struct{}

// ListReply - every record in key order
type ListReply struct {
	Assets []assetrecord.Record `json:"assets"`
}

// List - all records
func (assets *Assets) List(_ *ListArguments, reply *ListReply) (err error) {
	defer func() { err = observe("Assets.List", err) }()

	if err := ratelimit.Limit(assets.Limiter); nil != err {
		return err
	}

	reply.Assets, err = assets.Store.ListAll(assets.Database.Pool.Assets)
	return err
}

func observe(method string, err error) error {
	metrics.Observe(method, err)
	return fault.Coded(err)
}
