// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package assets_test

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/iotassetd/assetrecord"
	"github.com/bitmark-inc/iotassetd/fault"
	"github.com/bitmark-inc/iotassetd/fixtures"
	"github.com/bitmark-inc/iotassetd/publish"
	"github.com/bitmark-inc/iotassetd/rpc/assets"
	"github.com/bitmark-inc/iotassetd/rpc/metrics"
	"github.com/bitmark-inc/iotassetd/rpc/ratelimit"
	"github.com/bitmark-inc/iotassetd/storage"
	"github.com/bitmark-inc/logger"
)

type message struct {
	topic string
	data  []byte
}

type testPublisher struct {
	messages []message
	err      error
}

func (p *testPublisher) Publish(topic string, data []byte) error {
	p.messages = append(p.messages, message{topic: topic, data: data})
	return p.err
}

func setup(t *testing.T) (*assets.Assets, *testPublisher, *storage.Database) {
	fixtures.SetupTestLogger()

	d, err := storage.OpenMemory()
	if nil != err {
		t.Fatalf("storage open error: %s", err)
	}

	p := &testPublisher{}
	a := assets.New(logger.New(fixtures.LogCategory), d, p, ratelimit.NewSet(0, 0))
	return a, p, d
}

func teardown(d *storage.Database) {
	d.Close()
	fixtures.TeardownTestLogger()
}

func createArguments(r assetrecord.Record) *assets.CreateArguments {
	return &assets.CreateArguments{
		Id:               r.Id(),
		CloudProviderId:  r.CloudProviderId(),
		RadioFingerprint: r.RadioFingerprint(),
		MacAddress:       r.MacAddress(),
		ManufacturerId:   r.ManufacturerId(),
	}
}

func TestCreate(t *testing.T) {
	a, p, d := setup(t)
	defer teardown(d)

	before := testutil.ToFloat64(metrics.Requests("Assets.Create", "OK"))

	var reply assets.AssetReply
	err := a.Create(createArguments(fixtures.RecordOne), &reply)
	assert.Nil(t, err, "wrong Create")
	assert.True(t, fixtures.RecordOne.Equal(reply.Asset), "wrong reply")

	assert.Equal(t, 1, len(p.messages), "wrong publish count")
	assert.Equal(t, publish.AssetTopic, p.messages[0].topic, "wrong topic")
	assert.Equal(t, []byte(fixtures.RecordOne.Pack()), p.messages[0].data, "wrong published data")

	var exists assets.ExistsReply
	err = a.ExistsById(&assets.ValueArguments{Value: fixtures.RecordOne.Id()}, &exists)
	assert.Nil(t, err, "wrong ExistsById")
	assert.True(t, exists.Exists, "created record missing")

	assert.Equal(t, before+1, testutil.ToFloat64(metrics.Requests("Assets.Create", "OK")), "wrong metric")
}

func TestCreateDuplicate(t *testing.T) {
	a, p, d := setup(t)
	defer teardown(d)

	var reply assets.AssetReply
	err := a.Create(createArguments(fixtures.RecordOne), &reply)
	assert.Nil(t, err, "first Create")

	duplicate := createArguments(fixtures.RecordTwo)
	duplicate.Id = fixtures.RecordOne.Id()

	before := testutil.ToFloat64(metrics.Requests("Assets.Create", fault.CodeAlreadyExists))

	err = a.Create(duplicate, &reply)
	assert.NotNil(t, err, "duplicate accepted")
	assert.Equal(t, fault.CodeAlreadyExists, fault.Code(err), "wrong code")
	assert.Contains(t, err.Error(), fault.CodeAlreadyExists+": ", "code missing from message")
	assert.Equal(t, 1, len(p.messages), "duplicate published")

	assert.Equal(t, before+1, testutil.ToFloat64(metrics.Requests("Assets.Create", fault.CodeAlreadyExists)), "wrong metric")

	var found assets.AssetReply
	err = a.FindByFingerprint(&assets.ValueArguments{Value: fixtures.RecordOne.RadioFingerprint()}, &found)
	assert.Nil(t, err, "original missing")
	assert.True(t, fixtures.RecordOne.Equal(found.Asset), "original changed")
}

func TestCreatePublishFailureStillCommits(t *testing.T) {
	a, p, d := setup(t)
	defer teardown(d)

	p.err = fault.ErrQueueFull

	var reply assets.AssetReply
	err := a.Create(createArguments(fixtures.RecordOne), &reply)
	assert.Nil(t, err, "wrong Create")

	var exists assets.ExistsReply
	err = a.ExistsById(&assets.ValueArguments{Value: fixtures.RecordOne.Id()}, &exists)
	assert.Nil(t, err, "wrong ExistsById")
	assert.True(t, exists.Exists, "record not committed")
}

func TestFindNotFound(t *testing.T) {
	a, _, d := setup(t)
	defer teardown(d)

	var reply assets.AssetReply
	err := a.FindByFingerprint(&assets.ValueArguments{Value: "unknown"}, &reply)
	assert.Equal(t, fault.CodeNotFound, fault.Code(err), "wrong fingerprint error: %v", err)

	err = a.FindByMac(&assets.ValueArguments{Value: "unknown"}, &reply)
	assert.Equal(t, fault.CodeNotFound, fault.Code(err), "wrong mac error: %v", err)
}

func TestFindAndExists(t *testing.T) {
	a, _, d := setup(t)
	defer teardown(d)

	var reply assets.AssetReply
	for _, r := range []assetrecord.Record{fixtures.RecordOne, fixtures.RecordTwo} {
		err := a.Create(createArguments(r), &reply)
		assert.Nil(t, err, "create %s", r.Id())
	}

	err := a.FindByMac(&assets.ValueArguments{Value: fixtures.RecordTwo.MacAddress()}, &reply)
	assert.Nil(t, err, "wrong FindByMac")
	assert.True(t, fixtures.RecordTwo.Equal(reply.Asset), "wrong record")

	var exists assets.ExistsReply
	err = a.ExistsByFingerprint(&assets.ValueArguments{Value: fixtures.RecordOne.RadioFingerprint()}, &exists)
	assert.Nil(t, err, "wrong ExistsByFingerprint")
	assert.True(t, exists.Exists, "fingerprint missing")

	err = a.ExistsByMac(&assets.ValueArguments{Value: fixtures.RecordThree.MacAddress()}, &exists)
	assert.Nil(t, err, "wrong ExistsByMac")
	assert.False(t, exists.Exists, "unknown mac found")
}

func TestBootstrapAndList(t *testing.T) {
	a, p, d := setup(t)
	defer teardown(d)

	err := a.Bootstrap(&assets.BootstrapArguments{}, &assets.BootstrapReply{})
	assert.Nil(t, err, "wrong Bootstrap")
	assert.Equal(t, 0, len(p.messages), "bootstrap published")

	var list assets.ListReply
	err = a.List(&assets.ListArguments{}, &list)
	assert.Nil(t, err, "wrong List")
	assert.Equal(t, 2, len(list.Assets), "wrong record count")
	assert.Equal(t, "SN-1", list.Assets[0].Id(), "wrong first record")
	assert.Equal(t, "SN-2", list.Assets[1].Id(), "wrong second record")
}
