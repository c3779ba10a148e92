// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"
	"io"
	"strings"

	"github.com/bitmark-inc/iotassetd/storage"
)

const dumpBatchSize = 100

type dumpEntry struct {
	Pool  string `json:"pool"`
	Key   string `json:"key"`
	Value string `json:"value"`
}

// write every element of the named pools as one JSON object per line
//
// a name of the form POOL:KEY starts that pool at the first key >= KEY
func dumpPools(w io.Writer, database *storage.Database, names []string) error {
	pools := map[string]*storage.PoolHandle{
		"assets": database.Pool.Assets,
		"hashes": database.Pool.Hashes,
	}
	if 0 == len(names) {
		names = []string{"assets", "hashes"}
	}

	encoder := json.NewEncoder(w)
	for _, arg := range names {
		name, start, _ := strings.Cut(arg, ":")
		pool, ok := pools[name]
		if !ok {
			return errUnknownPool
		}

		cursor := pool.NewFetchCursor()
		if "" != start {
			cursor.Seek([]byte(start))
		}
		for {
			elements, err := cursor.Fetch(dumpBatchSize)
			if nil != err {
				return err
			}
			if 0 == len(elements) {
				break
			}
			for _, e := range elements {
				entry := dumpEntry{
					Pool:  name,
					Key:   string(e.Key),
					Value: string(e.Value),
				}
				if err := encoder.Encode(entry); nil != err {
					return err
				}
			}
		}
	}
	return nil
}
