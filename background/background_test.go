// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package background_test

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/iotassetd/background"
)

type ticker struct {
	count   int64
	stopped int32
}

func (state *ticker) Run(args interface{}, shutdown <-chan struct{}) {
	step := args.(int64)

loop:
	for {
		select {
		case <-shutdown:
			break loop
		case <-time.After(time.Millisecond):
			atomic.AddInt64(&state.count, step)
		}
	}
	atomic.StoreInt32(&state.stopped, 1)
}

func TestBackground(t *testing.T) {
	proc1 := &ticker{}
	proc2 := &ticker{}

	p := background.Start(background.Processes{proc1, proc2}, int64(3))
	time.Sleep(50 * time.Millisecond)
	p.Stop()

	for i, proc := range []*ticker{proc1, proc2} {
		assert.Equal(t, int32(1), atomic.LoadInt32(&proc.stopped), "process %d not stopped", i)
		count := atomic.LoadInt64(&proc.count)
		assert.True(t, count > 0, "process %d never ran", i)
		assert.Equal(t, int64(0), count%3, "process %d wrong args", i)
	}

	// second stop is harmless
	p.Stop()
}

func TestStopNil(t *testing.T) {
	var p *background.T
	p.Stop()
}
