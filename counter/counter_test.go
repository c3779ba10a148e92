// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package counter_test

import (
	"sync"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/iotassetd/counter"
)

func TestCounter(t *testing.T) {
	gauge := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "test_connections",
		Help: "test",
	})
	c := counter.New(gauge)

	var wg sync.WaitGroup
	for i := 0; i < 100; i += 1 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			c.Increment()
		}()
	}
	wg.Wait()

	assert.Equal(t, uint64(100), c.Uint64(), "after increment")

	assert.Equal(t, uint64(99), c.Decrement(), "decrement")
	assert.Equal(t, float64(99), testutil.ToFloat64(gauge), "gauge")
}

func TestCounterWithoutGauge(t *testing.T) {
	c := counter.New(nil)
	assert.Equal(t, uint64(1), c.Increment(), "increment")
	assert.Equal(t, uint64(0), c.Decrement(), "decrement")
}
