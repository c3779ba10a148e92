// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/bitmark-inc/iotassetd/background"
	"github.com/bitmark-inc/iotassetd/configuration"
	"github.com/bitmark-inc/logger"
)

// re-read the configuration file when it changes and apply the
// settings that can be altered while running
type reloader struct {
	log      *logger.L
	fileName string
	watcher  *configuration.Watcher
	apply    func(*Configuration) error
}

func newReloader(fileName string, apply func(*Configuration) error) (*reloader, error) {
	log := logger.New("reload")
	watcher, err := configuration.NewWatcher(fileName, log)
	if nil != err {
		return nil, err
	}
	return &reloader{
		log:      log,
		fileName: fileName,
		watcher:  watcher,
		apply:    apply,
	}, nil
}

// Run - background process
func (r *reloader) Run(args interface{}, shutdown <-chan struct{}) {
	r.log.Info("starting…")

loop:
	for {
		select {
		case <-shutdown:
			break loop
		case <-r.watcher.Change():
			r.reload()
		}
	}
	r.log.Info("stopped")
}

func (r *reloader) reload() {
	c, err := getConfiguration(r.fileName)
	if nil != err {
		r.log.Errorf("configuration: %q  error: %s", r.fileName, err)
		return
	}
	if err := r.apply(c); nil != err {
		r.log.Errorf("apply configuration error: %s", err)
		return
	}
	r.log.Infof("reloaded: %q", r.fileName)
}

// the watcher and the reloader both run in the background
func (r *reloader) processes() background.Processes {
	return background.Processes{r.watcher, r}
}
