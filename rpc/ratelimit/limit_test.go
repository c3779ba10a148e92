// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ratelimit_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/iotassetd/fault"
	"github.com/bitmark-inc/iotassetd/rpc/ratelimit"
)

func TestLimit(t *testing.T) {
	limiter := rate.NewLimiter(1000, 10)
	for i := 0; i < 10; i += 1 {
		assert.Nil(t, ratelimit.Limit(limiter), "request: %d", i)
	}
}

func TestLimitZeroBurst(t *testing.T) {
	limiter := rate.NewLimiter(1, 0)
	assert.Equal(t, fault.ErrRateLimiting, ratelimit.Limit(limiter), "zero burst")
}

func TestSetUpdate(t *testing.T) {
	s := ratelimit.NewSet(0, 0)

	first := s.New()
	assert.Equal(t, rate.Limit(ratelimit.DefaultLimit), first.Limit(), "default limit")
	assert.Equal(t, ratelimit.DefaultBurst, first.Burst(), "default burst")

	s.Update(5, 2)
	second := s.New()

	for i, limiter := range []*rate.Limiter{first, second} {
		assert.Equal(t, rate.Limit(5), limiter.Limit(), "limiter %d limit", i)
		assert.Equal(t, 2, limiter.Burst(), "limiter %d burst", i)
	}

	// invalid values are ignored
	s.Update(0, 10)
	assert.Equal(t, rate.Limit(5), first.Limit(), "ignored update")
}
