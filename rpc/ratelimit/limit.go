// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package ratelimit - request throttling shared by the RPC services
package ratelimit

import (
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/bitmark-inc/iotassetd/fault"
)

// default limits when the configuration leaves them unset
const (
	DefaultLimit = 200
	DefaultBurst = 100
)

// Limit - limiting for a single request
func Limit(limiter *rate.Limiter) error {
	r := limiter.Reserve()
	if !r.OK() {
		return fault.ErrRateLimiting
	}
	time.Sleep(r.Delay())
	return nil
}

// Set - the limiters of every service, adjustable at run time
type Set struct {
	sync.Mutex
	limiters []*rate.Limiter
	limit    rate.Limit
	burst    int
}

// NewSet - a set whose limiters start at the given rate
func NewSet(limit float64, burst int) *Set {
	if limit <= 0 {
		limit = DefaultLimit
	}
	if burst <= 0 {
		burst = DefaultBurst
	}
	return &Set{
		limit: rate.Limit(limit),
		burst: burst,
	}
}

// New - create a limiter that belongs to the set
func (s *Set) New() *rate.Limiter {
	s.Lock()
	defer s.Unlock()

	limiter := rate.NewLimiter(s.limit, s.burst)
	s.limiters = append(s.limiters, limiter)
	return limiter
}

// Update - change the rate of every limiter in the set
func (s *Set) Update(limit float64, burst int) {
	if limit <= 0 || burst <= 0 {
		return
	}

	s.Lock()
	defer s.Unlock()

	s.limit = rate.Limit(limit)
	s.burst = burst
	now := time.Now()
	for _, limiter := range s.limiters {
		limiter.SetLimitAt(now, s.limit)
		limiter.SetBurstAt(now, s.burst)
	}
}
