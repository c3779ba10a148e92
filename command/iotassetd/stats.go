// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"runtime"
	"time"

	"github.com/bitmark-inc/logger"
)

const (
	statsDelay = 60 * time.Second
	mega       = 1048576
)

// periodic memory usage logging
type memoryStats struct {
	log   *logger.L
	delay time.Duration
}

func newMemoryStats() *memoryStats {
	return &memoryStats{
		log:   logger.New("memory"),
		delay: statsDelay,
	}
}

// Run - background process
func (s *memoryStats) Run(args interface{}, shutdown <-chan struct{}) {
	ticker := time.NewTicker(s.delay)
	defer ticker.Stop()

	for {
		s.report()
		select {
		case <-shutdown:
			return
		case <-ticker.C:
		}
	}
}

func (s *memoryStats) report() {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)

	a := m.Alloc / mega
	t := m.TotalAlloc / mega
	sys := m.Sys / mega
	s.log.Infof("allocated: %d M  cumulative: %d M  OS virtual: %d M  goroutines: %d", a, t, sys, runtime.NumGoroutine())
}
