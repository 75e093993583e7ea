/*******************************************************************************
 *
 * SPDX-License-Identifier: Apache-2.0
 *
 *******************************************************************************/

// Package custom_errors defines our custom error types.
//
// Custom types are useful for:
// 1) allowing callers to do type-checking to see the cause of the error.
// 2) re-using messages for common errors.
// If neither scenario applies, it's perfectly fine to instead use errors.New("some message").
//
// A custom error can be wrapped by another error when returned using errors.Wrap(err, custom_err.Error()).
// To return a custom error with stack trace, use errors.WithStack(custom_err).
// If returning a custom error for type checking, it must be returned without a wrapper.
package custom_errors

import (
	"fmt"
)

// Shared Data

// ValidationError provides an error message for shared data constructed without a required field.
type ValidationError struct {
	Field string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("Shared data is missing required field \"%v\"", e.Field)
}

// AlreadyExistsError provides an error message for an attempt to create a shared data that already exists.
type AlreadyExistsError struct {
	SharedDataId string
}

func (e *AlreadyExistsError) Error() string {
	return fmt.Sprintf("The shared data %v already exists", e.SharedDataId)
}

// NotFoundError provides an error message for a shared data that does not exist on the ledger.
type NotFoundError struct {
	SharedDataId string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("The shared data %v does not exist", e.SharedDataId)
}

// NotOwnerError provides an error message for a requester that does not own the shared data.
type NotOwnerError struct {
	SharedDataId string
	Requester    string
}

func (e *NotOwnerError) Error() string {
	return fmt.Sprintf("The shared data %v does not belong to %v", e.SharedDataId, e.Requester)
}

// Permission

// AlreadyGrantedError provides an error message for granting access to a user who is already in the sharing list.
type AlreadyGrantedError struct {
	SharedDataId   string
	ThirdPartyUser string
}

func (e *AlreadyGrantedError) Error() string {
	return fmt.Sprintf("Access to %v is already granted to %v", e.SharedDataId, e.ThirdPartyUser)
}

// NotGrantedError provides an error message for revoking access from a user who is not in the sharing list.
type NotGrantedError struct {
	SharedDataId   string
	ThirdPartyUser string
}

func (e *NotGrantedError) Error() string {
	return fmt.Sprintf("Access to %v was not granted to %v", e.SharedDataId, e.ThirdPartyUser)
}

// Ledger

// GetLedgerError provides an error message for failure to retrieve an item from the ledger.
type GetLedgerError struct {
	LedgerKey string
}

func (e *GetLedgerError) Error() string {
	return fmt.Sprintf("Failed to get \"%v\" from ledger", e.LedgerKey)
}

// PutLedgerError provides an error message for failure to save an item to the ledger.
type PutLedgerError struct {
	LedgerKey string
}

func (e *PutLedgerError) Error() string {
	return fmt.Sprintf("Failed to put %v in ledger", e.LedgerKey)
}

// DeleteLedgerError provides an error message for failure to delete an item from the ledger.
type DeleteLedgerError struct {
	LedgerKey string
}

func (e *DeleteLedgerError) Error() string {
	return fmt.Sprintf("Failed to delete %v from ledger", e.LedgerKey)
}

// QueryLedgerError provides an error message for failure to open a rich query or history cursor.
type QueryLedgerError struct {
	Query string
}

func (e *QueryLedgerError) Error() string {
	return fmt.Sprintf("Failed to query ledger with %v", e.Query)
}

// IterError provides an error message for Iter.Next() failure.
type IterError struct{}

func (e *IterError) Error() string {
	return "Error reading next KV"
}

// Serialization

// MarshalError provides an error message for json.Marshal failure.
type MarshalError struct {
	Type string
}

func (e *MarshalError) Error() string {
	return fmt.Sprintf("Failed to marshal %v", e.Type)
}

// UnmarshalError provides an error message for json.Unmarshal failure.
type UnmarshalError struct {
	Type string
}

func (e *UnmarshalError) Error() string {
	return fmt.Sprintf("Failed to unmarshal %v", e.Type)
}
