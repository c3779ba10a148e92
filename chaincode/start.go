// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincode

import (
	"os"

	"github.com/hyperledger/fabric-chaincode-go/shim"
	"github.com/hyperledger/fabric-contract-api-go/contractapi"
)

// environment for running as an external chaincode service
const (
	serverAddressEnv = "CHAINCODE_SERVER_ADDRESS"
	chaincodeIdEnv   = "CHAINCODE_ID"
)

// Start - serve one contract until the peer disconnects
//
// with CHAINCODE_SERVER_ADDRESS set the chaincode listens as an
// external service, otherwise it connects to the peer
func Start(title string, version string, c contractapi.ContractInterface) error {
	cc, err := contractapi.NewChaincode(c)
	if nil != err {
		return err
	}
	cc.Info.Title = title
	cc.Info.Version = version

	address := os.Getenv(serverAddressEnv)
	if "" == address {
		return cc.Start()
	}

	server := &shim.ChaincodeServer{
		CCID:    os.Getenv(chaincodeIdEnv),
		Address: address,
		CC:      cc,
		TLSProps: shim.TLSProperties{
			Disabled: true,
		},
	}
	return server.Start()
}
