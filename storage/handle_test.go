// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPoolGetPut(t *testing.T) {
	d := setup(t)
	defer teardown(d)

	p := d.Pool.Assets
	loadElements(t, p, unsortedElements)

	for _, e := range unsortedElements {
		value, err := p.Get([]byte(e.key))
		assert.Nil(t, err, "get: %q", e.key)
		assert.Equal(t, e.value, string(value), "get: %q", e.key)
	}

	value, err := p.Get(nonExistentKey)
	assert.Nil(t, err, "get non-existent")
	assert.Nil(t, value, "non-existent key returned a value")
}

func TestPoolPutOverwrites(t *testing.T) {
	d := setup(t)
	defer teardown(d)

	p := d.Pool.Assets
	key := []byte("key")

	assert.Nil(t, p.Put(key, []byte("first")), "first put")
	assert.Nil(t, p.Put(key, []byte("second")), "second put")

	value, err := p.Get(key)
	assert.Nil(t, err, "get")
	assert.Equal(t, "second", string(value), "upsert did not replace")
}

func TestPoolMapOrder(t *testing.T) {
	d := setup(t)
	defer teardown(d)

	p := d.Pool.Assets
	loadElements(t, p, unsortedElements)

	actual := make([]stringElement, 0, len(sortedElements))
	err := p.Map(func(key []byte, value []byte) error {
		actual = append(actual, stringElement{string(key), string(value)})
		return nil
	})
	assert.Nil(t, err, "map")
	assert.Equal(t, sortedElements, actual, "wrong order")
}

func TestPoolMapStopsOnError(t *testing.T) {
	d := setup(t)
	defer teardown(d)

	p := d.Pool.Assets
	loadElements(t, p, unsortedElements)

	stop := errors.New("stop")
	n := 0
	err := p.Map(func(key []byte, value []byte) error {
		n += 1
		if 3 == n {
			return stop
		}
		return nil
	})
	assert.Equal(t, stop, err, "callback error not returned")
	assert.Equal(t, 3, n, "scan did not stop")

	// restartable: a second scan starts from the beginning
	n = 0
	err = p.Map(func(key []byte, value []byte) error {
		n += 1
		return nil
	})
	assert.Nil(t, err, "second map")
	assert.Equal(t, len(sortedElements), n, "second scan incomplete")
}
