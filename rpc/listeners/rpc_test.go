// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package listeners_test

import (
	"crypto/tls"
	"net"
	"net/rpc"
	"net/rpc/jsonrpc"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/iotassetd/counter"
	"github.com/bitmark-inc/iotassetd/fault"
	"github.com/bitmark-inc/iotassetd/fixtures"
	"github.com/bitmark-inc/iotassetd/rpc/certificate"
	"github.com/bitmark-inc/iotassetd/rpc/listeners"
	"github.com/bitmark-inc/logger"
)

type Add struct{}
type AddArg struct {
	A, B int
}

func (a Add) Add(arg *AddArg, reply *int) error {
	*reply = arg.A + arg.B
	return nil
}

// reserve a loopback port that is free at the time of the call
func freeAddress(t *testing.T) string {
	ln, err := net.Listen("tcp4", "127.0.0.1:0")
	if nil != err {
		t.Fatalf("reserve port error: %s", err)
	}
	address := ln.Addr().String()
	_ = ln.Close()
	return address
}

func testTLS(t *testing.T) (*tls.Config, [32]byte) {
	tlsConfig, fin, err := certificate.Get(
		logger.New(fixtures.LogCategory),
		"test",
		fixtures.Certificate,
		fixtures.Key,
	)
	if nil != err {
		t.Fatalf("get certificate error: %s", err)
	}
	return tlsConfig, fin
}

func TestRpcListenerServe(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	listen := freeAddress(t)
	con := listeners.RPCConfiguration{
		MaximumConnections: 5,
		Bandwidth:          10000000,
		Listen:             []string{listen},
	}

	s := rpc.NewServer()
	err := s.Register(Add{})
	assert.Nil(t, err, "register")

	tlsConfig, fin := testTLS(t)

	l, err := listeners.NewRPC(
		&con,
		logger.New(fixtures.LogCategory),
		counter.New(nil),
		s,
		tlsConfig,
		fin,
	)
	assert.Nil(t, err, "wrong NewRPC")

	err = l.Serve()
	assert.Nil(t, err, "wrong Serve")
	defer l.Close()

	c, err := tls.Dial("tcp", listen, &tls.Config{InsecureSkipVerify: true})
	if err != nil {
		t.Fatalf("dial with error: %s", err)
	}

	arg := AddArg{
		A: 2,
		B: 5,
	}
	var reply int

	client := jsonrpc.NewClient(c)
	defer client.Close()

	err = client.Call("Add.Add", &arg, &reply)
	assert.Nil(t, err, "wrong client Call")
	assert.Equal(t, arg.A+arg.B, reply, "wrong result")
}

func TestRpcListenerClose(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	listen := freeAddress(t)
	con := listeners.RPCConfiguration{
		MaximumConnections: 5,
		Bandwidth:          10000000,
		Listen:             []string{listen},
	}

	tlsConfig, fin := testTLS(t)

	l, err := listeners.NewRPC(&con, logger.New(fixtures.LogCategory), counter.New(nil), rpc.NewServer(), tlsConfig, fin)
	assert.Nil(t, err, "wrong NewRPC")

	assert.Nil(t, l.Serve(), "wrong Serve")
	assert.Nil(t, l.Close(), "wrong Close")

	_, err = tls.Dial("tcp", listen, &tls.Config{InsecureSkipVerify: true})
	assert.NotNil(t, err, "dial after close")
}

func TestNewRPCWhenInvalidConfiguration(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	listen := freeAddress(t)

	tests := []struct {
		name string
		con  listeners.RPCConfiguration
		err  error
	}{
		{
			name: "maximum connections too small",
			con:  listeners.RPCConfiguration{MaximumConnections: 0, Bandwidth: 10000000, Listen: []string{listen}},
			err:  fault.ErrMissingParameters,
		},
		{
			name: "bandwidth too small",
			con:  listeners.RPCConfiguration{MaximumConnections: 1, Bandwidth: 100, Listen: []string{listen}},
			err:  fault.ErrMissingParameters,
		},
		{
			name: "empty listen",
			con:  listeners.RPCConfiguration{MaximumConnections: 1, Bandwidth: 10000000, Listen: []string{}},
			err:  fault.ErrMissingParameters,
		},
		{
			name: "bad listen",
			con:  listeners.RPCConfiguration{MaximumConnections: 1, Bandwidth: 10000000, Listen: []string{"not-an-ip:1234"}},
			err:  fault.ErrInvalidIpAddress,
		},
	}

	for _, test := range tests {
		_, err := listeners.NewRPC(
			&test.con,
			logger.New(fixtures.LogCategory),
			counter.New(nil),
			rpc.NewServer(),
			&tls.Config{},
			[32]byte{},
		)
		assert.Equal(t, test.err, err, test.name)
	}
}
