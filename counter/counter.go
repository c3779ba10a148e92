// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package counter - open connection counting
package counter

import (
	"sync/atomic"

	"github.com/prometheus/client_golang/prometheus"
)

// Counter - number of open connections, mirrored to an optional gauge
type Counter struct {
	count uint64
	gauge prometheus.Gauge
}

// New - a zero counter, gauge may be nil
func New(gauge prometheus.Gauge) *Counter {
	return &Counter{
		gauge: gauge,
	}
}

// Increment - add 1 to a counter, returns new value
func (c *Counter) Increment() uint64 {
	n := atomic.AddUint64(&c.count, 1)
	c.set(n)
	return n
}

// Decrement - subtract 1 from a counter, returns new value
func (c *Counter) Decrement() uint64 {
	n := atomic.AddUint64(&c.count, ^uint64(0))
	c.set(n)
	return n
}

// Uint64 - returns current value
func (c *Counter) Uint64() uint64 {
	return atomic.LoadUint64(&c.count)
}

func (c *Counter) set(n uint64) {
	if nil != c.gauge {
		c.gauge.Set(float64(n))
	}
}
