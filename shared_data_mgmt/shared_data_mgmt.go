/*******************************************************************************
 *
 * SPDX-License-Identifier: Apache-2.0
 *
 *******************************************************************************/

// Package shared_data_mgmt is responsible for the lifecycle of shared data on
// the ledger: create, read, update, delete, and the existence check every
// other operation relies on. All ownership preconditions are enforced here
// before anything is written; a failed operation never mutates the ledger.
package shared_data_mgmt

import (
	"encoding/json"

	"github.com/jonatansouza/hyper-share-smart-contract/custom_errors"
	"github.com/jonatansouza/hyper-share-smart-contract/data_model"
	"github.com/jonatansouza/hyper-share-smart-contract/ledger"
	"github.com/jonatansouza/hyper-share-smart-contract/utils"

	"github.com/pkg/errors"
)

var logger = utils.NewLogger("shared_data_mgmt")

// Exists returns true if the ledger holds a non-empty value at sharedDataId.
// This is the sole existence oracle; absence is never inferred from a failed read.
func Exists(store ledger.LedgerInterface, sharedDataId string) (bool, error) {
	value, err := store.Get(sharedDataId)
	if err != nil {
		logger.Errorf("Failed to check existence of %v: %v", sharedDataId, err)
		return false, err
	}
	return len(value) > 0, nil
}

// GetSharedData returns the shared data stored at sharedDataId.
// It does not perform an ownership check; callers that expose data to a
// requester must check ownership themselves.
// Returns a NotFoundError if the shared data does not exist.
func GetSharedData(store ledger.LedgerInterface, sharedDataId string) (data_model.SharedData, error) {
	value, err := store.Get(sharedDataId)
	if err != nil {
		logger.Errorf("Failed to get shared data %v: %v", sharedDataId, err)
		return data_model.SharedData{}, err
	}
	if len(value) == 0 {
		custom_err := &custom_errors.NotFoundError{SharedDataId: sharedDataId}
		logger.Errorf(custom_err.Error())
		return data_model.SharedData{}, errors.WithStack(custom_err)
	}

	sharedData := data_model.SharedData{}
	err = json.Unmarshal(value, &sharedData)
	if err != nil {
		custom_err := &custom_errors.UnmarshalError{Type: "SharedData"}
		logger.Errorf("%v: %v", custom_err, err)
		return data_model.SharedData{}, errors.Wrap(err, custom_err.Error())
	}
	return sharedData, nil
}

// PutSharedData serializes the shared data and persists it under its id.
func PutSharedData(store ledger.LedgerInterface, sharedData data_model.SharedData) error {
	sharedDataBytes, err := json.Marshal(&sharedData)
	if err != nil {
		custom_err := &custom_errors.MarshalError{Type: "SharedData"}
		logger.Errorf("%v: %v", custom_err, err)
		return errors.Wrap(err, custom_err.Error())
	}

	err = store.Put(sharedData.Id, sharedDataBytes)
	if err != nil {
		logger.Errorf("Failed to put shared data %v: %v", sharedData.Id, err)
		return err
	}
	return nil
}

// CreateSharedData registers a new shared data owned by the requester, with an
// empty sharing list. Returns an AlreadyExistsError if the id is taken.
func CreateSharedData(store ledger.LedgerInterface, sharedDataId string, requester string, sharedDataDescription string, bucket string, resourceLocation string, timestamp int64) (data_model.SharedData, error) {
	defer utils.ExitFnLogger(logger, utils.EnterFnLogger(logger))
	logger.Debugf("sharedDataId: %v, requester: %v", sharedDataId, requester)

	exists, err := Exists(store, sharedDataId)
	if err != nil {
		return data_model.SharedData{}, err
	}
	if exists {
		custom_err := &custom_errors.AlreadyExistsError{SharedDataId: sharedDataId}
		logger.Errorf(custom_err.Error())
		return data_model.SharedData{}, errors.WithStack(custom_err)
	}

	sharedData, err := data_model.NewSharedData(sharedDataId, requester)
	if err != nil {
		return data_model.SharedData{}, err
	}
	sharedData.SharedWith = ""
	sharedData.SharedDataDescription = sharedDataDescription
	sharedData.Bucket = bucket
	sharedData.ResourceLocation = resourceLocation
	sharedData.Mode = data_model.MODE_CREATE_SHARED_DATA
	sharedData.Updated = timestamp
	sharedData.Requester = requester
	sharedData.Permission = data_model.PERMISSION_NOT_APPLICABLE

	err = PutSharedData(store, sharedData)
	if err != nil {
		return data_model.SharedData{}, err
	}
	return sharedData, nil
}

// ReadSharedData returns the shared data stored at sharedDataId if the
// requester owns it. Read access is owner-only; sharing grants affect
// requestPermission decisions, not direct retrieval.
func ReadSharedData(store ledger.LedgerInterface, sharedDataId string, requester string) (data_model.SharedData, error) {
	defer utils.ExitFnLogger(logger, utils.EnterFnLogger(logger))
	logger.Debugf("sharedDataId: %v, requester: %v", sharedDataId, requester)

	sharedData, err := GetSharedData(store, sharedDataId)
	if err != nil {
		return data_model.SharedData{}, err
	}
	if !sharedData.IsOwner(requester) {
		custom_err := &custom_errors.NotOwnerError{SharedDataId: sharedDataId, Requester: requester}
		logger.Errorf(custom_err.Error())
		return data_model.SharedData{}, errors.WithStack(custom_err)
	}
	return sharedData, nil
}

// UpdateSharedData overwrites the description and location fields of an
// existing shared data owned by the requester. A blank new value leaves the
// stored value unchanged, so callers can update fields selectively. The
// bookkeeping fields are refreshed even when every field argument is blank.
func UpdateSharedData(store ledger.LedgerInterface, sharedDataId string, requester string, sharedDataDescription string, bucket string, resourceLocation string, timestamp int64) (data_model.SharedData, error) {
	defer utils.ExitFnLogger(logger, utils.EnterFnLogger(logger))
	logger.Debugf("sharedDataId: %v, requester: %v", sharedDataId, requester)

	sharedData, err := GetSharedData(store, sharedDataId)
	if err != nil {
		return data_model.SharedData{}, err
	}
	if !sharedData.IsOwner(requester) {
		custom_err := &custom_errors.NotOwnerError{SharedDataId: sharedDataId, Requester: requester}
		logger.Errorf(custom_err.Error())
		return data_model.SharedData{}, errors.WithStack(custom_err)
	}

	if !utils.IsStringEmpty(sharedDataDescription) {
		sharedData.SharedDataDescription = sharedDataDescription
	}
	if !utils.IsStringEmpty(bucket) {
		sharedData.Bucket = bucket
	}
	if !utils.IsStringEmpty(resourceLocation) {
		sharedData.ResourceLocation = resourceLocation
	}
	sharedData.Mode = data_model.MODE_UPDATE_SHARED_DATA
	sharedData.Updated = timestamp
	sharedData.Requester = requester
	sharedData.Permission = data_model.PERMISSION_NOT_APPLICABLE

	err = PutSharedData(store, sharedData)
	if err != nil {
		return data_model.SharedData{}, err
	}
	return sharedData, nil
}

// DeleteSharedData removes the shared data owned by the requester and returns
// the value that existed at deletion time.
func DeleteSharedData(store ledger.LedgerInterface, sharedDataId string, requester string) (data_model.SharedData, error) {
	defer utils.ExitFnLogger(logger, utils.EnterFnLogger(logger))
	logger.Debugf("sharedDataId: %v, requester: %v", sharedDataId, requester)

	sharedData, err := GetSharedData(store, sharedDataId)
	if err != nil {
		return data_model.SharedData{}, err
	}
	if !sharedData.IsOwner(requester) {
		custom_err := &custom_errors.NotOwnerError{SharedDataId: sharedDataId, Requester: requester}
		logger.Errorf(custom_err.Error())
		return data_model.SharedData{}, errors.WithStack(custom_err)
	}

	err = store.Delete(sharedDataId)
	if err != nil {
		logger.Errorf("Failed to delete shared data %v: %v", sharedDataId, err)
		return data_model.SharedData{}, err
	}
	return sharedData, nil
}
