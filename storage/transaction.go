// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"github.com/syndtr/goleveldb/leveldb"

	"github.com/bitmark-inc/iotassetd/fault"
)

// Transaction - a write transaction
//
// writes are held in a batch until Commit; reads of written keys are
// served from the cache, range scans only see committed data
//
// only one transaction can be open at a time, Begin blocks until the
// previous one is committed or aborted
type Transaction struct {
	database *Database
	batch    *leveldb.Batch
	cache    Cache
	inUse    bool
}

// Begin - start a write transaction
func (d *Database) Begin() *Transaction {
	d.writer.Lock()
	return &Transaction{
		database: d,
		batch:    new(leveldb.Batch),
		cache:    newCache(),
		inUse:    true,
	}
}

// Bind - a Ledger view of one pool inside the transaction
func (t *Transaction) Bind(pool *PoolHandle) Ledger {
	return &transactionLedger{
		transaction: t,
		pool:        pool,
	}
}

// Commit - atomically write everything put in the transaction
func (t *Transaction) Commit() error {
	if !t.inUse {
		return fault.ErrTransactionNotInUse
	}
	defer t.finish()

	if 0 == t.batch.Len() {
		return nil
	}
	if nil == t.database.db {
		return leveldb.ErrClosed
	}
	return t.database.db.Write(t.batch, nil)
}

// Abort - discard the transaction
func (t *Transaction) Abort() {
	if !t.inUse {
		return
	}
	t.finish()
}

func (t *Transaction) finish() {
	t.batch.Reset()
	t.cache.Clear()
	t.inUse = false
	t.database.writer.Unlock()
}

type transactionLedger struct {
	transaction *Transaction
	pool        *PoolHandle
}

func (l *transactionLedger) Get(key []byte) ([]byte, error) {
	if !l.transaction.inUse {
		return nil, fault.ErrTransactionNotInUse
	}
	if value, found := l.transaction.cache.Get(string(l.pool.prefixKey(key))); found {
		return value, nil
	}
	return l.pool.Get(key)
}

func (l *transactionLedger) Put(key []byte, value []byte) error {
	if !l.transaction.inUse {
		return fault.ErrTransactionNotInUse
	}
	prefixedKey := l.pool.prefixKey(key)
	stored := make([]byte, len(value))
	copy(stored, value)

	l.transaction.batch.Put(prefixedKey, stored)
	l.transaction.cache.Set(string(prefixedKey), stored)
	return nil
}

func (l *transactionLedger) Map(f func(key []byte, value []byte) error) error {
	if !l.transaction.inUse {
		return fault.ErrTransactionNotInUse
	}
	return l.pool.Map(f)
}
