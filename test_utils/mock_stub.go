/*******************************************************************************
 *
 * SPDX-License-Identifier: Apache-2.0
 *
 *******************************************************************************/

package test_utils

import (
	"encoding/json"
	"regexp"
	"testing"

	"github.com/hyperledger/fabric-chaincode-go/shim"
	"github.com/hyperledger/fabric-chaincode-go/shimtest"
	"github.com/hyperledger/fabric-protos-go/ledger/queryresult"
	"github.com/hyperledger/fabric-protos-go/peer"
	"github.com/pkg/errors"
)

func copyData(a []byte) []byte {
	if len(a) == 0 {
		return nil
	}
	b := make([]byte, len(a))
	copy(b, a)
	return b
}

// MockChaincode is a mock chaincode.
type MockChaincode struct {
}

// Init is mocked for MockChaincode.
func (t *MockChaincode) Init(shim.ChaincodeStubInterface) peer.Response {
	return shim.Success(nil)
}

// Invoke is mocked for MockChaincode.
func (t *MockChaincode) Invoke(stub shim.ChaincodeStubInterface) peer.Response {
	return shim.Success(nil)
}

// MockStub extends shimtest.MockStub with the methods shimtest leaves
// unimplemented: GetQueryResult, for selector queries over the flat JSON
// documents this chaincode stores, and GetHistoryForKey, backed by a
// per-key record of every committed modification.
type MockStub struct {
	*shimtest.MockStub
	history map[string][]*queryresult.KeyModification
	args    [][]byte
	cc      shim.Chaincode
}

// CreateMockStub returns a mock stub. Pass a nil chaincode when testing
// package functions directly rather than through Invoke.
func CreateMockStub(t *testing.T, cc shim.Chaincode) *MockStub {
	if cc == nil {
		cc = new(MockChaincode)
	}
	inner := shimtest.NewMockStub("mockStub", cc)
	AssertTrue(t, inner != nil, "MockStub creation failed")
	return &MockStub{
		MockStub: inner,
		history:  make(map[string][]*queryresult.KeyModification),
		cc:       cc,
	}
}

// PutState adds a value for a mock stub and records it in the key's history.
func (stub *MockStub) PutState(key string, value []byte) error {
	if err := stub.MockStub.PutState(key, value); err != nil {
		return err
	}
	stub.history[key] = append(stub.history[key], &queryresult.KeyModification{
		TxId:  stub.GetTxID(),
		Value: copyData(value),
	})
	return nil
}

// DelState deletes a value for a mock stub and records a delete marker in the
// key's history.
func (stub *MockStub) DelState(key string) error {
	if err := stub.MockStub.DelState(key); err != nil {
		return err
	}
	stub.history[key] = append(stub.history[key], &queryresult.KeyModification{
		TxId:     stub.GetTxID(),
		IsDelete: true,
	})
	return nil
}

// GetQueryResult supports CouchDB-style selector queries of the two shapes
// the ledger package emits: {"selector":{field:value}} and
// {"selector":{field:{"$regex":pattern}}}. Results are delivered in key order.
func (stub *MockStub) GetQueryResult(query string) (shim.StateQueryIteratorInterface, error) {
	parsed := struct {
		Selector map[string]interface{} `json:"selector"`
	}{}
	if err := json.Unmarshal([]byte(query), &parsed); err != nil {
		return nil, errors.Wrap(err, "MockStub failed to parse query")
	}
	if len(parsed.Selector) == 0 {
		return nil, errors.New("MockStub only supports selector queries")
	}

	results := []*queryresult.KV{}
	for elem := stub.Keys.Front(); elem != nil; elem = elem.Next() {
		key := elem.Value.(string)
		value := stub.State[key]
		if len(value) == 0 {
			continue
		}
		doc := map[string]interface{}{}
		if err := json.Unmarshal(value, &doc); err != nil {
			continue
		}
		matched, err := matchesSelector(doc, parsed.Selector)
		if err != nil {
			return nil, err
		}
		if matched {
			results = append(results, &queryresult.KV{Key: key, Value: copyData(value)})
		}
	}
	return &MockStateQueryIterator{results: results}, nil
}

func matchesSelector(doc map[string]interface{}, selector map[string]interface{}) (bool, error) {
	for field, condition := range selector {
		fieldValue, ok := doc[field].(string)
		if !ok {
			return false, nil
		}
		switch cond := condition.(type) {
		case string:
			if fieldValue != cond {
				return false, nil
			}
		case map[string]interface{}:
			pattern, ok := cond["$regex"].(string)
			if !ok {
				return false, errors.Errorf("MockStub does not support selector condition %v", cond)
			}
			matched, err := regexp.MatchString(pattern, fieldValue)
			if err != nil {
				return false, errors.Wrap(err, "MockStub failed to apply $regex condition")
			}
			if !matched {
				return false, nil
			}
		default:
			return false, errors.Errorf("MockStub does not support selector condition %v", condition)
		}
	}
	return true, nil
}

// GetHistoryForKey returns an iterator over every modification recorded for
// the key, oldest to newest, including delete markers.
func (stub *MockStub) GetHistoryForKey(key string) (shim.HistoryQueryIteratorInterface, error) {
	return &MockHistoryQueryIterator{results: stub.history[key]}, nil
}

// GetArgs returns arguments.
func (stub *MockStub) GetArgs() [][]byte {
	return stub.args
}

// GetStringArgs returns a slice of arguments.
func (stub *MockStub) GetStringArgs() []string {
	args := stub.GetArgs()
	strargs := make([]string, 0, len(args))
	for _, barg := range args {
		strargs = append(strargs, string(barg))
	}
	return strargs
}

// GetFunctionAndParameters returns function name and parameters.
func (stub *MockStub) GetFunctionAndParameters() (function string, params []string) {
	allargs := stub.GetStringArgs()
	function = ""
	params = []string{}
	if len(allargs) >= 1 {
		function = allargs[0]
		params = allargs[1:]
	}
	return
}

// MockInit initializes this chaincode, also starts and ends a transaction.
func (stub *MockStub) MockInit(uuid string, args [][]byte) peer.Response {
	stub.args = args
	stub.MockTransactionStart(uuid)
	res := stub.cc.Init(stub)
	stub.MockTransactionEnd(uuid)
	return res
}

// MockInvoke invokes this chaincode, also starts and ends a transaction.
// The chaincode receives the outer stub so that overridden methods are used.
func (stub *MockStub) MockInvoke(uuid string, args [][]byte) peer.Response {
	stub.args = args
	stub.MockTransactionStart(uuid)
	res := stub.cc.Invoke(stub)
	stub.MockTransactionEnd(uuid)
	return res
}

/*****************************
 Query and History Iterators
*****************************/

// MockStateQueryIterator iterates over a fixed result set from GetQueryResult.
type MockStateQueryIterator struct {
	results []*queryresult.KV
	index   int
	closed  bool
}

// HasNext returns true if the iterator contains additional keys and values.
func (iter *MockStateQueryIterator) HasNext() bool {
	return !iter.closed && iter.index < len(iter.results)
}

// Next returns the next key and value in the iterator.
func (iter *MockStateQueryIterator) Next() (*queryresult.KV, error) {
	if iter.closed {
		return nil, errors.New("MockStateQueryIterator.Next() called after Close()")
	}
	if iter.index >= len(iter.results) {
		return nil, errors.New("MockStateQueryIterator.Next() called when it does not HaveNext()")
	}
	result := iter.results[iter.index]
	iter.index++
	return result, nil
}

// Close closes the iterator.
func (iter *MockStateQueryIterator) Close() error {
	iter.closed = true
	return nil
}

// MockHistoryQueryIterator iterates over the recorded modifications of a key.
type MockHistoryQueryIterator struct {
	results []*queryresult.KeyModification
	index   int
	closed  bool
}

// HasNext returns true if the iterator contains additional modifications.
func (iter *MockHistoryQueryIterator) HasNext() bool {
	return !iter.closed && iter.index < len(iter.results)
}

// Next returns the next modification in the iterator.
func (iter *MockHistoryQueryIterator) Next() (*queryresult.KeyModification, error) {
	if iter.closed {
		return nil, errors.New("MockHistoryQueryIterator.Next() called after Close()")
	}
	if iter.index >= len(iter.results) {
		return nil, errors.New("MockHistoryQueryIterator.Next() called when it does not HaveNext()")
	}
	result := iter.results[iter.index]
	iter.index++
	return result, nil
}

// Close closes the iterator.
func (iter *MockHistoryQueryIterator) Close() error {
	iter.closed = true
	return nil
}

// MisbehavingMockStub returns errors for GetState, PutState, DelState,
// GetQueryResult, and GetHistoryForKey.
type MisbehavingMockStub struct {
	*MockStub
}

// GetState returns an error for a MisbehavingMockStub.
func (stub *MisbehavingMockStub) GetState(key string) ([]byte, error) {
	return nil, errors.New("Misbehaving stub error!")
}

// PutState returns an error for a MisbehavingMockStub.
func (stub *MisbehavingMockStub) PutState(key string, value []byte) error {
	return errors.New("Misbehaving stub error!")
}

// DelState returns an error for a MisbehavingMockStub.
func (stub *MisbehavingMockStub) DelState(key string) error {
	return errors.New("Misbehaving stub error!")
}

// GetQueryResult returns an error for a MisbehavingMockStub.
func (stub *MisbehavingMockStub) GetQueryResult(query string) (shim.StateQueryIteratorInterface, error) {
	return nil, errors.New("Misbehaving stub error!")
}

// GetHistoryForKey returns an error for a MisbehavingMockStub.
func (stub *MisbehavingMockStub) GetHistoryForKey(key string) (shim.HistoryQueryIteratorInterface, error) {
	return nil, errors.New("Misbehaving stub error!")
}

// CreateMisbehavingMockStub returns a misbehaving mock stub.
func CreateMisbehavingMockStub(t *testing.T) *MisbehavingMockStub {
	return &MisbehavingMockStub{MockStub: CreateMockStub(t, nil)}
}
