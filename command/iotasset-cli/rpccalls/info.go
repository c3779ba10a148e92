// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/bitmark-inc/iotassetd/fault"
	"github.com/bitmark-inc/iotassetd/rpc/node"
)

// ErrUnknownField - AssetExists given an unsupported field name
const ErrUnknownField = fault.InvalidError("unknown field")

// GetInfo - request status from iotassetd
func (client *Client) GetInfo() (*node.InfoReply, error) {
	var reply node.InfoReply
	if err := client.call("Node.Info", &node.InfoArguments{}, &reply); err != nil {
		return nil, err
	}

	return &reply, nil
}
