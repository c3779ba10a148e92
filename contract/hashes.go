// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package contract

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/iotassetd/fault"
	"github.com/bitmark-inc/iotassetd/storage"
)

// HashRecord - the ledger value of a stored hash
type HashRecord struct {
	Hash string `json:"hash"`
}

// HashOf - lowercase hex SHA-256 of a fingerprint or MAC address
func HashOf(value string) string {
	digest := sha256.Sum256([]byte(value))
	return hex.EncodeToString(digest[:])
}

// Pack - encode for storage
func (h HashRecord) Pack() []byte {
	buffer, _ := json.Marshal(h)
	return buffer
}

// UnpackHash - strict decode of a stored hash record
func UnpackHash(value []byte) (HashRecord, error) {
	trimmed := bytes.TrimSpace(value)
	if 0 == len(trimmed) || '{' != trimmed[0] {
		return HashRecord{}, fault.ErrInvalidRecord
	}

	var w struct {
		Hash *string `json:"hash"`
	}
	if err := json.Unmarshal(trimmed, &w); nil != err || nil == w.Hash {
		return HashRecord{}, fault.ErrInvalidRecord
	}
	return HashRecord{Hash: *w.Hash}, nil
}

// Hashes - the public hash registry
type Hashes struct {
	log *logger.L
}

// NewHashes - create the hash registry operations
func NewHashes(log *logger.L) *Hashes {
	return &Hashes{
		log: log,
	}
}

// Bootstrap - store the hashes of the sample device identifiers
func (h *Hashes) Bootstrap(ledger storage.Ledger) error {
	for _, record := range BootstrapRecords {
		for _, value := range []string{record.RadioFingerprint(), record.MacAddress()} {
			hash := HashRecord{Hash: HashOf(value)}
			if err := ledger.Put([]byte(hash.Hash), hash.Pack()); nil != err {
				h.log.Errorf("bootstrap: %s  error: %s", hash.Hash, err)
				return err
			}
		}
	}
	return nil
}

// Store - hash the value and record the hash
func (h *Hashes) Store(ledger storage.Ledger, value string) (HashRecord, error) {
	hash := HashRecord{Hash: HashOf(value)}

	exists, err := h.Exists(ledger, hash.Hash)
	if nil != err {
		return HashRecord{}, err
	}
	if exists {
		return HashRecord{}, fault.Identify(fault.ErrHashAlreadyExists, hash.Hash)
	}

	if err := ledger.Put([]byte(hash.Hash), hash.Pack()); nil != err {
		return HashRecord{}, err
	}
	h.log.Infof("store: %s", hash.Hash)
	return hash, nil
}

// Verify - hash the value and report whether the hash is recorded
func (h *Hashes) Verify(ledger storage.Ledger, value string) (string, bool, error) {
	hash := HashOf(value)
	found, err := h.Exists(ledger, hash)
	return hash, found, err
}

// Exists - true if the hash is recorded
func (h *Hashes) Exists(ledger storage.Ledger, hash string) (bool, error) {
	value, err := ledger.Get([]byte(hash))
	if nil != err {
		return false, err
	}
	return 0 != len(value), nil
}

// List - every recorded hash in key order
func (h *Hashes) List(ledger storage.Ledger) ([]HashRecord, error) {
	hashes := make([]HashRecord, 0, 16)
	err := ledger.Map(func(key []byte, value []byte) error {
		hash, err := UnpackHash(value)
		if nil != err {
			return fault.Identify(err, string(key))
		}
		hashes = append(hashes, hash)
		return nil
	})
	if nil != err {
		return nil, err
	}
	return hashes, nil
}

// VerifyMessage - the report rendered for a Verify result
func VerifyMessage(hash string, found bool) string {
	if found {
		return "Correspondance " + hash + " trouvée dans la blockchain."
	}
	return "Correspondance " + hash + " non trouvée."
}
