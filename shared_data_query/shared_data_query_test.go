/*******************************************************************************
 *
 * SPDX-License-Identifier: Apache-2.0
 *
 *******************************************************************************/

package shared_data_query

import (
	"testing"

	"github.com/jonatansouza/hyper-share-smart-contract/custom_errors"
	"github.com/jonatansouza/hyper-share-smart-contract/data_model"
	"github.com/jonatansouza/hyper-share-smart-contract/ledger"
	"github.com/jonatansouza/hyper-share-smart-contract/permission_mgmt"
	"github.com/jonatansouza/hyper-share-smart-contract/shared_data_mgmt"
	"github.com/jonatansouza/hyper-share-smart-contract/test_utils"

	"github.com/pkg/errors"
)

func setup(t *testing.T) (*test_utils.MockStub, ledger.LedgerInterface) {
	stub := test_utils.CreateMockStub(t, nil)
	return stub, ledger.GetLedger(stub)
}

func create(t *testing.T, stub *test_utils.MockStub, store ledger.LedgerInterface, txid string, sharedDataId string, ownerId string, timestamp int64) {
	stub.MockTransactionStart(txid)
	_, err := shared_data_mgmt.CreateSharedData(store, sharedDataId, ownerId, "description of "+sharedDataId, "", "", timestamp)
	test_utils.AssertNilError(t, err, "Expected CreateSharedData to succeed")
	stub.MockTransactionEnd(txid)
}

func grant(t *testing.T, stub *test_utils.MockStub, store ledger.LedgerInterface, txid string, sharedDataId string, ownerId string, thirdPartyUser string, timestamp int64) {
	stub.MockTransactionStart(txid)
	_, err := permission_mgmt.GrantAccess(store, sharedDataId, ownerId, thirdPartyUser, timestamp)
	test_utils.AssertNilError(t, err, "Expected GrantAccess to succeed")
	stub.MockTransactionEnd(txid)
}

func TestAllFromOwner(t *testing.T) {
	stub, store := setup(t)
	create(t, stub, store, "t1", "1001", "JD", 1000)
	create(t, stub, store, "t2", "1002", "JD", 2000)
	create(t, stub, store, "t3", "2001", "ann", 3000)

	results, err := AllFromOwner(store, "JD")
	test_utils.AssertNilError(t, err, "Expected AllFromOwner to succeed")
	test_utils.AssertTrue(t, len(results) == 2, "Expected two shared data owned by JD")
	for _, sharedData := range results {
		test_utils.AssertTrue(t, sharedData.OwnerId == "JD", "Expected every result to be owned by JD")
	}
}

func TestAllFromOwner_NoMatches(t *testing.T) {
	stub, store := setup(t)
	create(t, stub, store, "t1", "1001", "JD", 1000)

	results, err := AllFromOwner(store, "nobody")
	test_utils.AssertNilError(t, err, "Expected AllFromOwner to succeed")
	test_utils.AssertTrue(t, len(results) == 0, "Expected no shared data for unknown owner")
}

func TestAllFromOwner_ExactMatch(t *testing.T) {
	stub, store := setup(t)
	create(t, stub, store, "t1", "1001", "JD", 1000)
	create(t, stub, store, "t2", "1002", "JDx", 2000)

	// owner filtering is an equality predicate, not a containment match
	results, err := AllFromOwner(store, "JD")
	test_utils.AssertNilError(t, err, "Expected AllFromOwner to succeed")
	test_utils.AssertTrue(t, len(results) == 1, "Expected only the exact owner to match")
	test_utils.AssertTrue(t, results[0].Id == "1001", "Expected 1001 to match")
}

func TestAllSharedWith(t *testing.T) {
	stub, store := setup(t)
	create(t, stub, store, "t1", "1001", "JD", 1000)
	create(t, stub, store, "t2", "1002", "JD", 2000)
	grant(t, stub, store, "t3", "1001", "JD", "alice", 3000)
	grant(t, stub, store, "t4", "1002", "JD", "bob", 4000)

	results, err := AllSharedWith(store, "alice")
	test_utils.AssertNilError(t, err, "Expected AllSharedWith to succeed")
	test_utils.AssertTrue(t, len(results) == 1, "Expected one shared data shared with alice")
	test_utils.AssertTrue(t, results[0].Id == "1001", "Expected 1001 to be shared with alice")
}

func TestAllSharedWith_SubstringMatch(t *testing.T) {
	stub, store := setup(t)
	create(t, stub, store, "t1", "1001", "JD", 1000)
	grant(t, stub, store, "t2", "1001", "JD", "bobby", 2000)

	// the containment match also matches ids that are substrings of a sharee;
	// this looseness is part of the contract
	results, err := AllSharedWith(store, "bob")
	test_utils.AssertNilError(t, err, "Expected AllSharedWith to succeed")
	test_utils.AssertTrue(t, len(results) == 1, "Expected bob to match the record shared with bobby")
}

func TestHistory(t *testing.T) {
	stub, store := setup(t)
	create(t, stub, store, "t1", "1001", "JD", 1000)
	grant(t, stub, store, "t2", "1001", "JD", "alice", 2000)

	stub.MockTransactionStart("t3")
	_, err := permission_mgmt.RequestPermission(store, "1001", "alice", 3000)
	test_utils.AssertNilError(t, err, "Expected RequestPermission to succeed")
	stub.MockTransactionEnd("t3")

	results, err := History(store, "1001")
	test_utils.AssertNilError(t, err, "Expected History to succeed")
	test_utils.AssertTrue(t, len(results) == 3, "Expected three historical values")

	// oldest to newest
	test_utils.AssertTrue(t, results[0].Mode == data_model.MODE_CREATE_SHARED_DATA, "Expected first value from create")
	test_utils.AssertTrue(t, results[1].Mode == data_model.MODE_GRANT_ACCESS, "Expected second value from grant")
	test_utils.AssertTrue(t, results[2].Mode == data_model.MODE_REQUEST_PERMISSION, "Expected third value from request")
	test_utils.AssertTrue(t, results[2].Permission == data_model.PERMISSION_GRANTED, "Expected last value to record the decision")
}

func TestHistory_NotFound(t *testing.T) {
	_, store := setup(t)

	_, err := History(store, "nonexistent")
	test_utils.AssertTrue(t, err != nil, "Expected history of missing shared data to fail")
	if _, ok := errors.Cause(err).(*custom_errors.NotFoundError); !ok {
		t.Fatalf("Expected NotFoundError, got: %v", err)
	}
}

func TestHistory_SurvivesDeleteAndRecreate(t *testing.T) {
	stub, store := setup(t)
	create(t, stub, store, "t1", "1001", "JD", 1000)

	stub.MockTransactionStart("t2")
	_, err := shared_data_mgmt.DeleteSharedData(store, "1001", "JD")
	test_utils.AssertNilError(t, err, "Expected DeleteSharedData to succeed")
	stub.MockTransactionEnd("t2")

	create(t, stub, store, "t3", "1001", "JD", 3000)

	results, err := History(store, "1001")
	test_utils.AssertNilError(t, err, "Expected History to succeed")
	// values from before the delete are still part of the key's history
	test_utils.AssertTrue(t, len(results) == 2, "Expected both stored values, with the delete marker skipped")
	test_utils.AssertTrue(t, results[0].Updated == 1000, "Expected the pre-delete value first")
	test_utils.AssertTrue(t, results[1].Updated == 3000, "Expected the recreated value last")
}

func TestQueries_LedgerFailure(t *testing.T) {
	stub := test_utils.CreateMisbehavingMockStub(t)
	store := ledger.GetLedger(stub)

	_, err := AllFromOwner(store, "JD")
	test_utils.AssertTrue(t, err != nil, "Expected AllFromOwner to fail on a misbehaving ledger")

	_, err = AllSharedWith(store, "alice")
	test_utils.AssertTrue(t, err != nil, "Expected AllSharedWith to fail on a misbehaving ledger")

	_, err = History(store, "1001")
	test_utils.AssertTrue(t, err != nil, "Expected History to fail on a misbehaving ledger")
}
