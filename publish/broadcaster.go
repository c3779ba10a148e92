// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package publish

import (
	zmq "github.com/pebbe/zmq4"

	"github.com/bitmark-inc/iotassetd/fault"
	"github.com/bitmark-inc/logger"
)

// topics
const (
	AssetTopic = "asset"
	HashTopic  = "hash"
)

const queueSize = 1000

// Publisher - anything that can announce a committed record
type Publisher interface {
	Publish(topic string, data []byte) error
}

type item struct {
	topic string
	data  []byte
}

// Broadcaster - send committed records to subscribers
type Broadcaster struct {
	log     *logger.L
	queue   chan item
	sockets []*zmq.Socket
}

func newBroadcaster(log *logger.L, size int) *Broadcaster {
	return &Broadcaster{
		log:   log,
		queue: make(chan item, size),
	}
}

// Publish - queue a message without blocking
//
// a nil broadcaster discards everything
func (brdc *Broadcaster) Publish(topic string, data []byte) error {
	if nil == brdc {
		return nil
	}
	select {
	case brdc.queue <- item{topic: topic, data: data}:
		return nil
	default:
		brdc.log.Warnf("queue full, dropped: %s", topic)
		return fault.ErrQueueFull
	}
}

// Run - background process sending queued messages
func (brdc *Broadcaster) Run(args interface{}, shutdown <-chan struct{}) {
	log := brdc.log

	log.Info("starting…")

loop:
	for {
		select {
		case <-shutdown:
			break loop
		case i := <-brdc.queue:
			brdc.send(i)
		}
	}

	for _, socket := range brdc.sockets {
		socket.Close()
	}
	log.Info("stopped")
}

func (brdc *Broadcaster) send(i item) {
	for _, socket := range brdc.sockets {
		if _, err := socket.SendMessage(i.topic, i.data); nil != err {
			brdc.log.Errorf("send: %s  error: %s", i.topic, err)
		}
	}
	brdc.log.Debugf("sent: %s  %s", i.topic, i.data)
}
