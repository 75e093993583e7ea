/*******************************************************************************
 *
 * SPDX-License-Identifier: Apache-2.0
 *
 *******************************************************************************/

// Package permission_mgmt provides functionality for sharing a shared data
// with third party users: granting and revoking membership in the sharing
// list, and answering permission requests against it.
package permission_mgmt

import (
	"github.com/jonatansouza/hyper-share-smart-contract/custom_errors"
	"github.com/jonatansouza/hyper-share-smart-contract/data_model"
	"github.com/jonatansouza/hyper-share-smart-contract/ledger"
	"github.com/jonatansouza/hyper-share-smart-contract/shared_data_mgmt"
	"github.com/jonatansouza/hyper-share-smart-contract/utils"

	"github.com/pkg/errors"
)

var logger = utils.NewLogger("permission_mgmt")

// GrantAccess appends thirdPartyUser to the sharing list of the shared data.
// Only the owner may grant access, and a user already in the list cannot be
// granted again.
func GrantAccess(store ledger.LedgerInterface, sharedDataId string, requester string, thirdPartyUser string, timestamp int64) (data_model.SharedData, error) {
	defer utils.ExitFnLogger(logger, utils.EnterFnLogger(logger))
	logger.Debugf("sharedDataId: %v, requester: %v, thirdPartyUser: %v", sharedDataId, requester, thirdPartyUser)

	sharedData, err := shared_data_mgmt.GetSharedData(store, sharedDataId)
	if err != nil {
		return data_model.SharedData{}, err
	}
	if !sharedData.IsOwner(requester) {
		custom_err := &custom_errors.NotOwnerError{SharedDataId: sharedDataId, Requester: requester}
		logger.Errorf(custom_err.Error())
		return data_model.SharedData{}, errors.WithStack(custom_err)
	}

	sharedWith := utils.SharedWithToArray(sharedData.SharedWith)
	if utils.InList(sharedWith, thirdPartyUser) {
		custom_err := &custom_errors.AlreadyGrantedError{SharedDataId: sharedDataId, ThirdPartyUser: thirdPartyUser}
		logger.Errorf(custom_err.Error())
		return data_model.SharedData{}, errors.WithStack(custom_err)
	}

	sharedData.SharedWith = utils.SharedWithToString(append(sharedWith, thirdPartyUser))
	sharedData.Mode = data_model.MODE_GRANT_ACCESS
	sharedData.Updated = timestamp
	sharedData.Requester = requester
	sharedData.Permission = data_model.PERMISSION_NOT_APPLICABLE

	err = shared_data_mgmt.PutSharedData(store, sharedData)
	if err != nil {
		return data_model.SharedData{}, err
	}
	return sharedData, nil
}

// RevokeAccess removes thirdPartyUser from the sharing list of the shared
// data. Only the owner may revoke access, and a user not in the list cannot
// be revoked.
func RevokeAccess(store ledger.LedgerInterface, sharedDataId string, requester string, thirdPartyUser string, timestamp int64) (data_model.SharedData, error) {
	defer utils.ExitFnLogger(logger, utils.EnterFnLogger(logger))
	logger.Debugf("sharedDataId: %v, requester: %v, thirdPartyUser: %v", sharedDataId, requester, thirdPartyUser)

	sharedData, err := shared_data_mgmt.GetSharedData(store, sharedDataId)
	if err != nil {
		return data_model.SharedData{}, err
	}
	if !sharedData.IsOwner(requester) {
		custom_err := &custom_errors.NotOwnerError{SharedDataId: sharedDataId, Requester: requester}
		logger.Errorf(custom_err.Error())
		return data_model.SharedData{}, errors.WithStack(custom_err)
	}

	sharedWith := utils.SharedWithToArray(sharedData.SharedWith)
	if !utils.InList(sharedWith, thirdPartyUser) {
		custom_err := &custom_errors.NotGrantedError{SharedDataId: sharedDataId, ThirdPartyUser: thirdPartyUser}
		logger.Errorf(custom_err.Error())
		return data_model.SharedData{}, errors.WithStack(custom_err)
	}

	sharedData.SharedWith = utils.SharedWithToString(utils.RemoveItemFromList(sharedWith, thirdPartyUser))
	sharedData.Mode = data_model.MODE_REVOKE_ACCESS
	sharedData.Updated = timestamp
	sharedData.Requester = requester
	sharedData.Permission = data_model.PERMISSION_NOT_APPLICABLE

	err = shared_data_mgmt.PutSharedData(store, sharedData)
	if err != nil {
		return data_model.SharedData{}, err
	}
	return sharedData, nil
}

// RequestPermission answers whether the requester is currently in the sharing
// list of the shared data. Any identity may ask; there is no ownership check,
// and the owner gets no implicit self-access beyond literal list membership.
// The decision is recorded on the record itself so that every access attempt
// shows up in the key's history.
func RequestPermission(store ledger.LedgerInterface, sharedDataId string, requester string, timestamp int64) (bool, error) {
	defer utils.ExitFnLogger(logger, utils.EnterFnLogger(logger))
	logger.Debugf("sharedDataId: %v, requester: %v", sharedDataId, requester)

	sharedData, err := shared_data_mgmt.GetSharedData(store, sharedDataId)
	if err != nil {
		return false, err
	}

	granted := sharedData.IsSharedWith(requester)
	if granted {
		sharedData.Permission = data_model.PERMISSION_GRANTED
	} else {
		sharedData.Permission = data_model.PERMISSION_DENIED
	}
	sharedData.Mode = data_model.MODE_REQUEST_PERMISSION
	sharedData.Updated = timestamp
	sharedData.Requester = requester

	err = shared_data_mgmt.PutSharedData(store, sharedData)
	if err != nil {
		return false, err
	}
	return granted, nil
}
