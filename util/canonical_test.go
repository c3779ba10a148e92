// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/iotassetd/fault"
	"github.com/bitmark-inc/iotassetd/util"
)

// Test IP address detection
func TestCanonical(t *testing.T) {
	testData := []struct {
		in  string
		out string
		v6  bool
	}{
		{"127.0.0.1:1234", "127.0.0.1:1234", false},
		{" 127.0.0.1:1 ", "127.0.0.1:1", false},
		{"127.0.0.1:65535", "127.0.0.1:65535", false},
		{"0.0.0.0:1234", "0.0.0.0:1234", false},
		{"[::1]:1234", "[::1]:1234", true},
		{"[::]:1234", "[::]:1234", true},
		{"[0:0::0:0]:1234", "[::]:1234", true},
		{"[0:0:0:0::1]:1234", "[::1]:1234", true},
	}

	for i, d := range testData {
		c, v6, err := util.CanonicalIPandPort(d.in)
		assert.Nil(t, err, "[%d] %q", i, d.in)
		assert.Equal(t, d.out, c, "[%d] %q", i, d.in)
		assert.Equal(t, d.v6, v6, "[%d] %q", i, d.in)
	}
}

// Test IP address
func TestCanonicalIP(t *testing.T) {
	testData := []string{
		"127.1:1234",
		"256.0.0.0:1234",
		"0.0.0.256:1234",
		"0:0:1234",
		"[]:1234",
		"[as34::]:1234",
		"*:1234",
		"localhost",
	}

	for i, d := range testData {
		_, _, err := util.CanonicalIPandPort(d)
		assert.Equal(t, fault.ErrInvalidIpAddress, err, "[%d] %q", i, d)
	}
}

// Test port range
func TestCanonicalPort(t *testing.T) {
	testData := []string{
		"127.0.0.1:0",
		"127.0.0.1:65536",
		"127.0.0.1:-1",
		"127.0.0.1:http",
	}

	for i, d := range testData {
		_, _, err := util.CanonicalIPandPort(d)
		assert.Equal(t, fault.ErrInvalidPortNumber, err, "[%d] %q", i, d)
	}
}
