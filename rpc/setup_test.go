// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpc_test

import (
	"crypto/tls"
	"io/ioutil"
	"net"
	"net/rpc/jsonrpc"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/iotassetd/fault"
	"github.com/bitmark-inc/iotassetd/fixtures"
	"github.com/bitmark-inc/iotassetd/rpc"
	"github.com/bitmark-inc/iotassetd/rpc/listeners"
	"github.com/bitmark-inc/iotassetd/rpc/node"
	"github.com/bitmark-inc/iotassetd/storage"
)

type discard struct{}

func (discard) Publish(string, []byte) error { return nil }

func freeAddress(t *testing.T) string {
	ln, err := net.Listen("tcp4", "127.0.0.1:0")
	if nil != err {
		t.Fatalf("reserve port error: %s", err)
	}
	address := ln.Addr().String()
	_ = ln.Close()
	return address
}

func TestInitialiseFinalise(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	dir, err := ioutil.TempDir("", "rpc")
	assert.Nil(t, err, "temp dir")
	defer os.RemoveAll(dir)

	certificateFile := filepath.Join(dir, "rpc.crt")
	keyFile := filepath.Join(dir, "rpc.key")
	assert.Nil(t, ioutil.WriteFile(certificateFile, []byte(fixtures.Certificate), 0600), "write certificate")
	assert.Nil(t, ioutil.WriteFile(keyFile, []byte(fixtures.Key), 0600), "write key")

	d, err := storage.OpenMemory()
	assert.Nil(t, err, "open storage")
	defer d.Close()

	err = rpc.SetRateLimit(10, 10)
	assert.Equal(t, fault.ErrNotInitialised, err, "rate limit before initialise")

	listen := freeAddress(t)
	rpcConfiguration := listeners.RPCConfiguration{
		MaximumConnections: 2,
		Bandwidth:          10000000,
		Listen:             []string{listen},
		Certificate:        certificateFile,
		PrivateKey:         keyFile,
	}
	httpsConfiguration := listeners.HTTPSConfiguration{
		MaximumConnections: 2,
		Listen:             []string{freeAddress(t)},
		Certificate:        certificateFile,
		PrivateKey:         keyFile,
	}

	err = rpc.Initialise(&rpcConfiguration, &httpsConfiguration, "9.9", d, discard{})
	assert.Nil(t, err, "wrong Initialise")

	err = rpc.Initialise(&rpcConfiguration, &httpsConfiguration, "9.9", d, discard{})
	assert.Equal(t, fault.ErrAlreadyInitialised, err, "second Initialise")

	conn, err := tls.Dial("tcp", listen, &tls.Config{InsecureSkipVerify: true})
	if nil != err {
		t.Fatalf("dial error: %s", err)
	}
	client := jsonrpc.NewClient(conn)

	var info node.InfoReply
	err = client.Call("Node.Info", &node.InfoArguments{}, &info)
	assert.Nil(t, err, "wrong Info")
	assert.Equal(t, "9.9", info.Version, "wrong version")
	assert.Equal(t, uint64(1), info.Connections, "wrong connection count")
	_ = client.Close()

	assert.Nil(t, rpc.SetRateLimit(50, 20), "wrong SetRateLimit")

	assert.Nil(t, rpc.Finalise(), "wrong Finalise")
	assert.Equal(t, fault.ErrNotInitialised, rpc.Finalise(), "second Finalise")
}
