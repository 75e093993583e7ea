/*******************************************************************************
 *
 * SPDX-License-Identifier: Apache-2.0
 *
 *******************************************************************************/

package main

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/jonatansouza/hyper-share-smart-contract/ledger"
	"github.com/jonatansouza/hyper-share-smart-contract/permission_mgmt"
	"github.com/jonatansouza/hyper-share-smart-contract/shared_data_mgmt"
	"github.com/jonatansouza/hyper-share-smart-contract/shared_data_query"
	"github.com/jonatansouza/hyper-share-smart-contract/utils"

	"github.com/hyperledger/fabric-chaincode-go/shim"
	"github.com/hyperledger/fabric-protos-go/peer"
	"github.com/pkg/errors"
)

var logger = utils.NewLogger("shared_data_chaincode")

// SharedDataChaincode dispatches invoke transactions to the shared data
// packages. Every operation takes the requester identity and, where a
// mutation happens, a caller-supplied timestamp as explicit arguments; a
// returned error surfaces as shim.Error, which aborts the transaction before
// any write is committed.
type SharedDataChaincode struct {
}

// Init is called during chaincode instantiation.
func (t *SharedDataChaincode) Init(stub shim.ChaincodeStubInterface) peer.Response {
	return shim.Success(nil)
}

// Invoke routes an invocation to the named operation.
func (t *SharedDataChaincode) Invoke(stub shim.ChaincodeStubInterface) peer.Response {
	function, args := stub.GetFunctionAndParameters()
	logger.Debugf("Invoke function: %v", function)
	store := ledger.GetLedger(stub)

	switch function {
	case "sharedDataExists":
		return t.sharedDataExists(store, args)
	case "createSharedData":
		return t.createSharedData(store, args)
	case "readSharedData":
		return t.readSharedData(store, args)
	case "updateSharedData":
		return t.updateSharedData(store, args)
	case "deleteSharedData":
		return t.deleteSharedData(store, args)
	case "grantAccess":
		return t.grantAccess(store, args)
	case "revokeAccess":
		return t.revokeAccess(store, args)
	case "requestPermission":
		return t.requestPermission(store, args)
	case "allSharedDataFromOwner":
		return t.allSharedDataFromOwner(store, args)
	case "allSharedDataSharedWith":
		return t.allSharedDataSharedWith(store, args)
	case "historySharedData":
		return t.historySharedData(store, args)
	default:
		logger.Errorf("Received unknown function invocation: %v", function)
		return shim.Error(fmt.Sprintf("Received unknown function invocation: %v", function))
	}
}

func (t *SharedDataChaincode) sharedDataExists(store ledger.LedgerInterface, args []string) peer.Response {
	if len(args) != 1 {
		return shim.Error("sharedDataExists expects args = [sharedDataId]")
	}
	exists, err := shared_data_mgmt.Exists(store, args[0])
	if err != nil {
		return shim.Error(err.Error())
	}
	return shim.Success([]byte(strconv.FormatBool(exists)))
}

func (t *SharedDataChaincode) createSharedData(store ledger.LedgerInterface, args []string) peer.Response {
	if len(args) != 6 {
		return shim.Error("createSharedData expects args = [sharedDataId, requester, sharedDataDescription, bucket, resourceLocation, timestamp]")
	}
	timestamp, err := parseTimestamp(args[5])
	if err != nil {
		return shim.Error(err.Error())
	}
	sharedData, err := shared_data_mgmt.CreateSharedData(store, args[0], args[1], args[2], args[3], args[4], timestamp)
	if err != nil {
		return shim.Error(err.Error())
	}
	return marshalPayload(sharedData)
}

func (t *SharedDataChaincode) readSharedData(store ledger.LedgerInterface, args []string) peer.Response {
	if len(args) != 2 {
		return shim.Error("readSharedData expects args = [sharedDataId, requester]")
	}
	sharedData, err := shared_data_mgmt.ReadSharedData(store, args[0], args[1])
	if err != nil {
		return shim.Error(err.Error())
	}
	return marshalPayload(sharedData)
}

func (t *SharedDataChaincode) updateSharedData(store ledger.LedgerInterface, args []string) peer.Response {
	if len(args) != 6 {
		return shim.Error("updateSharedData expects args = [sharedDataId, requester, sharedDataDescription, bucket, resourceLocation, timestamp]")
	}
	timestamp, err := parseTimestamp(args[5])
	if err != nil {
		return shim.Error(err.Error())
	}
	sharedData, err := shared_data_mgmt.UpdateSharedData(store, args[0], args[1], args[2], args[3], args[4], timestamp)
	if err != nil {
		return shim.Error(err.Error())
	}
	return marshalPayload(sharedData)
}

func (t *SharedDataChaincode) deleteSharedData(store ledger.LedgerInterface, args []string) peer.Response {
	if len(args) != 2 {
		return shim.Error("deleteSharedData expects args = [sharedDataId, requester]")
	}
	sharedData, err := shared_data_mgmt.DeleteSharedData(store, args[0], args[1])
	if err != nil {
		return shim.Error(err.Error())
	}
	return marshalPayload(sharedData)
}

func (t *SharedDataChaincode) grantAccess(store ledger.LedgerInterface, args []string) peer.Response {
	if len(args) != 4 {
		return shim.Error("grantAccess expects args = [sharedDataId, requester, thirdPartyUser, timestamp]")
	}
	timestamp, err := parseTimestamp(args[3])
	if err != nil {
		return shim.Error(err.Error())
	}
	sharedData, err := permission_mgmt.GrantAccess(store, args[0], args[1], args[2], timestamp)
	if err != nil {
		return shim.Error(err.Error())
	}
	return marshalPayload(sharedData)
}

func (t *SharedDataChaincode) revokeAccess(store ledger.LedgerInterface, args []string) peer.Response {
	if len(args) != 4 {
		return shim.Error("revokeAccess expects args = [sharedDataId, requester, thirdPartyUser, timestamp]")
	}
	timestamp, err := parseTimestamp(args[3])
	if err != nil {
		return shim.Error(err.Error())
	}
	sharedData, err := permission_mgmt.RevokeAccess(store, args[0], args[1], args[2], timestamp)
	if err != nil {
		return shim.Error(err.Error())
	}
	return marshalPayload(sharedData)
}

func (t *SharedDataChaincode) requestPermission(store ledger.LedgerInterface, args []string) peer.Response {
	if len(args) != 3 {
		return shim.Error("requestPermission expects args = [sharedDataId, requester, timestamp]")
	}
	timestamp, err := parseTimestamp(args[2])
	if err != nil {
		return shim.Error(err.Error())
	}
	granted, err := permission_mgmt.RequestPermission(store, args[0], args[1], timestamp)
	if err != nil {
		return shim.Error(err.Error())
	}
	return shim.Success([]byte(strconv.FormatBool(granted)))
}

func (t *SharedDataChaincode) allSharedDataFromOwner(store ledger.LedgerInterface, args []string) peer.Response {
	if len(args) != 1 {
		return shim.Error("allSharedDataFromOwner expects args = [ownerId]")
	}
	results, err := shared_data_query.AllFromOwner(store, args[0])
	if err != nil {
		return shim.Error(err.Error())
	}
	return marshalPayload(results)
}

func (t *SharedDataChaincode) allSharedDataSharedWith(store ledger.LedgerInterface, args []string) peer.Response {
	if len(args) != 1 {
		return shim.Error("allSharedDataSharedWith expects args = [thirdPartyUser]")
	}
	results, err := shared_data_query.AllSharedWith(store, args[0])
	if err != nil {
		return shim.Error(err.Error())
	}
	return marshalPayload(results)
}

func (t *SharedDataChaincode) historySharedData(store ledger.LedgerInterface, args []string) peer.Response {
	if len(args) != 1 {
		return shim.Error("historySharedData expects args = [sharedDataId]")
	}
	results, err := shared_data_query.History(store, args[0])
	if err != nil {
		return shim.Error(err.Error())
	}
	return marshalPayload(results)
}

func parseTimestamp(arg string) (int64, error) {
	timestamp, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		return 0, errors.Wrapf(err, "Invalid timestamp \"%v\"", arg)
	}
	return timestamp, nil
}

func marshalPayload(payload interface{}) peer.Response {
	payloadBytes, err := json.Marshal(payload)
	if err != nil {
		logger.Errorf("Failed to marshal response payload: %v", err)
		return shim.Error("Failed to marshal response payload")
	}
	return shim.Success(payloadBytes)
}
