// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/iotassetd/fault"
)

func TestFetchInPages(t *testing.T) {
	d := setup(t)
	defer teardown(d)

	p := d.Pool.Assets
	loadElements(t, p, unsortedElements)

	cursor := p.NewFetchCursor()

	actual := make([]stringElement, 0, len(sortedElements))
	for {
		elements, err := cursor.Fetch(3)
		assert.Nil(t, err, "fetch")
		if 0 == len(elements) {
			break
		}
		assert.True(t, len(elements) <= 3, "page too long: %d", len(elements))
		for _, e := range elements {
			actual = append(actual, stringElement{string(e.Key), string(e.Value)})
		}
	}
	assert.Equal(t, sortedElements, actual, "paged fetch")
}

func TestFetchAfterSeek(t *testing.T) {
	d := setup(t)
	defer teardown(d)

	p := d.Pool.Assets
	loadElements(t, p, unsortedElements)

	elements, err := p.NewFetchCursor().Seek([]byte("key-seven")).Fetch(2)
	assert.Nil(t, err, "fetch")
	assert.Equal(t, 2, len(elements), "wrong count")
	assert.Equal(t, "key-seven", string(elements[0].Key), "first")
	assert.Equal(t, "key-six", string(elements[1].Key), "second")
}

func TestFetchInvalid(t *testing.T) {
	d := setup(t)
	defer teardown(d)

	_, err := d.Pool.Assets.NewFetchCursor().Fetch(0)
	assert.Equal(t, fault.ErrInvalidCount, err, "zero count")

	var cursor *FetchCursor
	_, err = cursor.Fetch(1)
	assert.Equal(t, fault.ErrInvalidCursor, err, "nil cursor")
}

func TestElementsAreCopied(t *testing.T) {
	d := setup(t)
	defer teardown(d)

	p := d.Pool.Assets
	loadElements(t, p, unsortedElements)

	elements, err := p.NewFetchCursor().Fetch(len(unsortedElements))
	assert.Nil(t, err, "fetch")

	elements[0].Value[0] = 'X'

	value, err := p.Get(elements[0].Key)
	assert.Nil(t, err, "get")
	assert.Equal(t, sortedElements[0].value, string(value), "stored value modified")
}
