// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"sync"

	"github.com/syndtr/goleveldb/leveldb"
)

// PoolHandle - one prefixed key range of the database
type PoolHandle struct {
	prefix byte
	limit  []byte

	// guards database, which Close sets to nil
	access   sync.RWMutex
	database *leveldb.DB
}

// the open database or leveldb.ErrClosed
//
// a DB closed after this returns makes its own calls fail with
// leveldb.ErrClosed
func (p *PoolHandle) db() (*leveldb.DB, error) {
	p.access.RLock()
	defer p.access.RUnlock()

	if nil == p.database {
		return nil, leveldb.ErrClosed
	}
	return p.database, nil
}

func (p *PoolHandle) close() {
	p.access.Lock()
	p.database = nil
	p.access.Unlock()
}

// prepend the prefix onto the key
func (p *PoolHandle) prefixKey(key []byte) []byte {
	prefixedKey := make([]byte, 1, len(key)+1)
	prefixedKey[0] = p.prefix
	return append(prefixedKey, key...)
}

// Put - store a key/value bytes pair to the database
func (p *PoolHandle) Put(key []byte, value []byte) error {
	db, err := p.db()
	if nil != err {
		return err
	}
	return db.Put(p.prefixKey(key), value, nil)
}

// Get - read a value for a given key
//
// nil is returned if the key is not present
func (p *PoolHandle) Get(key []byte) ([]byte, error) {
	db, err := p.db()
	if nil != err {
		return nil, err
	}
	value, err := db.Get(p.prefixKey(key), nil)
	if leveldb.ErrNotFound == err {
		return nil, nil
	}
	return value, err
}

// Map - run a function on all elements of the pool
func (p *PoolHandle) Map(f func(key []byte, value []byte) error) error {
	return p.NewFetchCursor().Map(f)
}
