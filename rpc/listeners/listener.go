// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package listeners - TLS JSON-RPC and HTTPS servers
package listeners

import (
	"net"
	"strings"

	"github.com/bitmark-inc/iotassetd/fault"
	"github.com/bitmark-inc/logger"
)

// Listener - a server that can be started and stopped
type Listener interface {
	Serve() error
	Close() error
}

// split listen addresses into network type and address
//
// "*:PORT" becomes "[::]:PORT" on the assumption that this will
// listen on tcp4 and tcp6
func parseListenAddress(addrs []string, log *logger.L) ([]string, []string, error) {
	networks := make([]string, len(addrs))
	addresses := make([]string, len(addrs))
	for i, listen := range addrs {
		host, port, err := net.SplitHostPort(strings.TrimSpace(listen))
		if nil != err {
			log.Errorf("listen address: %q  error: %s", listen, err)
			return nil, nil, fault.ErrInvalidIpAddress
		}

		network := "tcp4"
		if "*" == host {
			host = "::"
			network = "tcp"
		}
		ip := net.ParseIP(host)
		if nil == ip {
			log.Errorf("listen address: %q  error: %s", listen, fault.ErrInvalidIpAddress)
			return nil, nil, fault.ErrInvalidIpAddress
		}
		if "tcp4" == network && nil == ip.To4() {
			network = "tcp6"
		}

		networks[i] = network
		addresses[i] = net.JoinHostPort(host, port)
	}

	return networks, addresses, nil
}
