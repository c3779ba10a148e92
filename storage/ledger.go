// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

//go:generate mockgen -source=ledger.go -destination=mocks/ledger.go -package=mocks

// Ledger - the key/value store that contract operations run against
//
// Get returns nil, nil for an absent key.  Put is an unconditional
// upsert.  Map visits every element in ascending key order using a
// fresh iterator on each call and stops at the first error returned by
// the callback, returning that error.
type Ledger interface {
	Get(key []byte) ([]byte, error)
	Put(key []byte, value []byte) error
	Map(f func(key []byte, value []byte) error) error
}

// Element - a binary data item
type Element struct {
	Key   []byte
	Value []byte
}
