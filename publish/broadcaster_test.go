// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package publish

import (
	"testing"
	"time"

	"github.com/bitmark-inc/logger"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/iotassetd/background"
	"github.com/bitmark-inc/iotassetd/fault"
	"github.com/bitmark-inc/iotassetd/fixtures"
)

func TestPublishQueueFull(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	brdc := newBroadcaster(logger.New(fixtures.LogCategory), 2)

	assert.Nil(t, brdc.Publish(AssetTopic, []byte("one")), "first")
	assert.Nil(t, brdc.Publish(AssetTopic, []byte("two")), "second")
	assert.Equal(t, fault.ErrQueueFull, brdc.Publish(AssetTopic, []byte("three")), "third")
}

func TestPublishNil(t *testing.T) {
	var brdc *Broadcaster
	assert.Nil(t, brdc.Publish(HashTopic, []byte("x")), "nil broadcaster")
}

func TestRunDrainsQueue(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	brdc := newBroadcaster(logger.New(fixtures.LogCategory), 4)
	p := background.Start(background.Processes{brdc}, nil)

	for i := 0; i < 10; i += 1 {
		assert.Nil(t, brdc.Publish(AssetTopic, []byte("x")), "publish: %d", i)
		time.Sleep(5 * time.Millisecond)
	}
	p.Stop()

	assert.Equal(t, 0, len(brdc.queue), "queue not drained")
}

func TestInitialiseDisabled(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	err := Initialise(&Configuration{})
	assert.Nil(t, err, "initialise")
	assert.Nil(t, Get(), "broadcaster without addresses")

	err = Initialise(&Configuration{})
	assert.Equal(t, fault.ErrAlreadyInitialised, err, "second initialise")

	assert.Nil(t, Finalise(), "finalise")
	assert.Equal(t, fault.ErrNotInitialised, Finalise(), "second finalise")
}
