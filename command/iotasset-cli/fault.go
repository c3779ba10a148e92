// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/bitmark-inc/iotassetd/fault"
)

// common errors - keep in alphabetic order
const (
	ErrMissingConnect = fault.InvalidError("missing connect address")
	ErrMissingValue   = fault.InvalidError("missing value")
	ErrSelectOne      = fault.InvalidError("exactly one lookup field is required")
)
