/*******************************************************************************
 *
 * SPDX-License-Identifier: Apache-2.0
 *
 *******************************************************************************/

package main

import (
	"github.com/hyperledger/fabric-chaincode-go/shim"
)

func main() {
	if err := shim.Start(new(SharedDataChaincode)); err != nil {
		logger.Errorf("Error starting shared data chaincode: %v", err)
	}
}
