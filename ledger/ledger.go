/*******************************************************************************
 *
 * SPDX-License-Identifier: Apache-2.0
 *
 *******************************************************************************/

// Package ledger wraps Fabric Shim's ChaincodeStubInterface behind the narrow
// collaborator surface the shared data packages consume: point reads and
// writes, rich queries by field, and per-key change history. Consensus,
// commit ordering, and conflict detection stay on the peer's side of this
// boundary.
package ledger

import (
	"encoding/json"
	"fmt"

	"github.com/jonatansouza/hyper-share-smart-contract/custom_errors"

	"github.com/hyperledger/fabric-chaincode-go/shim"
	"github.com/pkg/errors"
)

// KVIterator is a cursor over (key, value) pairs produced by a rich query.
// Callers must Close the iterator on every exit path.
type KVIterator interface {
	HasNext() bool
	Next() (string, []byte, error)
	Close() error
}

// HistoryIterator is a cursor over the historical values stored at one key,
// oldest to newest. Entries written by a delete carry no value bytes.
// Callers must Close the iterator on every exit path.
type HistoryIterator interface {
	HasNext() bool
	Next() ([]byte, error)
	Close() error
}

// LedgerInterface is the versioned key-value store of record as seen by the
// shared data packages. The key space is flat; values are opaque bytes.
type LedgerInterface interface {
	// Get returns the value stored at key, or nil if the key is absent.
	Get(key string) ([]byte, error)

	// Put stores value at key, replacing any previous value.
	Put(key string, value []byte) error

	// Delete removes the entry at key.
	Delete(key string) error

	// QueryByEquality opens a cursor over all current entries whose fieldPath
	// equals value.
	QueryByEquality(fieldPath string, value string) (KVIterator, error)

	// QueryByRegex opens a cursor over all current entries whose fieldPath
	// matches pattern.
	QueryByRegex(fieldPath string, pattern string) (KVIterator, error)

	// HistoryOf opens a cursor over every value ever stored at key.
	HistoryOf(key string) (HistoryIterator, error)
}

// GetLedger returns a LedgerInterface backed by the given chaincode stub.
func GetLedger(stub shim.ChaincodeStubInterface) LedgerInterface {
	return &shimLedger{stub: stub}
}

// shimLedger is the default implementation of LedgerInterface.
// Rich queries are expressed as CouchDB selector queries against the flat
// JSON documents the shared data packages persist.
type shimLedger struct {
	stub shim.ChaincodeStubInterface
}

func (ledger *shimLedger) Get(key string) ([]byte, error) {
	value, err := ledger.stub.GetState(key)
	if err != nil {
		custom_err := &custom_errors.GetLedgerError{LedgerKey: key}
		return nil, errors.Wrap(err, custom_err.Error())
	}
	return value, nil
}

func (ledger *shimLedger) Put(key string, value []byte) error {
	err := ledger.stub.PutState(key, value)
	if err != nil {
		custom_err := &custom_errors.PutLedgerError{LedgerKey: key}
		return errors.Wrap(err, custom_err.Error())
	}
	return nil
}

func (ledger *shimLedger) Delete(key string) error {
	err := ledger.stub.DelState(key)
	if err != nil {
		custom_err := &custom_errors.DeleteLedgerError{LedgerKey: key}
		return errors.Wrap(err, custom_err.Error())
	}
	return nil
}

func (ledger *shimLedger) QueryByEquality(fieldPath string, value string) (KVIterator, error) {
	return ledger.richQuery(map[string]interface{}{fieldPath: value})
}

func (ledger *shimLedger) QueryByRegex(fieldPath string, pattern string) (KVIterator, error) {
	return ledger.richQuery(map[string]interface{}{fieldPath: map[string]interface{}{"$regex": pattern}})
}

func (ledger *shimLedger) richQuery(selector map[string]interface{}) (KVIterator, error) {
	queryBytes, err := json.Marshal(map[string]interface{}{"selector": selector})
	if err != nil {
		custom_err := &custom_errors.MarshalError{Type: "selector query"}
		return nil, errors.Wrap(err, custom_err.Error())
	}
	query := string(queryBytes)

	iter, err := ledger.stub.GetQueryResult(query)
	if err != nil {
		custom_err := &custom_errors.QueryLedgerError{Query: query}
		return nil, errors.Wrap(err, custom_err.Error())
	}
	return &stateQueryIterator{iter: iter}, nil
}

func (ledger *shimLedger) HistoryOf(key string) (HistoryIterator, error) {
	iter, err := ledger.stub.GetHistoryForKey(key)
	if err != nil {
		custom_err := &custom_errors.QueryLedgerError{Query: fmt.Sprintf("history of %v", key)}
		return nil, errors.Wrap(err, custom_err.Error())
	}
	return &historyQueryIterator{iter: iter}, nil
}

// stateQueryIterator adapts shim.StateQueryIteratorInterface to KVIterator.
type stateQueryIterator struct {
	iter shim.StateQueryIteratorInterface
}

func (iter *stateQueryIterator) HasNext() bool {
	return iter.iter.HasNext()
}

func (iter *stateQueryIterator) Next() (string, []byte, error) {
	kv, err := iter.iter.Next()
	if err != nil {
		custom_err := &custom_errors.IterError{}
		return "", nil, errors.Wrap(err, custom_err.Error())
	}
	return kv.GetKey(), kv.GetValue(), nil
}

func (iter *stateQueryIterator) Close() error {
	return iter.iter.Close()
}

// historyQueryIterator adapts shim.HistoryQueryIteratorInterface to
// HistoryIterator. Modifications recorded by a delete yield nil value bytes.
type historyQueryIterator struct {
	iter shim.HistoryQueryIteratorInterface
}

func (iter *historyQueryIterator) HasNext() bool {
	return iter.iter.HasNext()
}

func (iter *historyQueryIterator) Next() ([]byte, error) {
	modification, err := iter.iter.Next()
	if err != nil {
		custom_err := &custom_errors.IterError{}
		return nil, errors.Wrap(err, custom_err.Error())
	}
	if modification.GetIsDelete() {
		return nil, nil
	}
	return modification.GetValue(), nil
}

func (iter *historyQueryIterator) Close() error {
	return iter.iter.Close()
}
