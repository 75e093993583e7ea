/*******************************************************************************
 *
 * SPDX-License-Identifier: Apache-2.0
 *
 *******************************************************************************/

// Package shared_data_query provides owner-scoped and sharee-scoped listings
// of shared data, plus per-id change history, built on the ledger's rich
// query and history cursors.
package shared_data_query

import (
	"encoding/json"
	"regexp"

	"github.com/jonatansouza/hyper-share-smart-contract/custom_errors"
	"github.com/jonatansouza/hyper-share-smart-contract/data_model"
	"github.com/jonatansouza/hyper-share-smart-contract/ledger"
	"github.com/jonatansouza/hyper-share-smart-contract/shared_data_mgmt"
	"github.com/jonatansouza/hyper-share-smart-contract/utils"

	"github.com/pkg/errors"
)

var logger = utils.NewLogger("shared_data_query")

// AllFromOwner returns every shared data whose ownerId equals the argument.
func AllFromOwner(store ledger.LedgerInterface, ownerId string) ([]data_model.SharedData, error) {
	defer utils.ExitFnLogger(logger, utils.EnterFnLogger(logger))
	logger.Debugf("ownerId: %v", ownerId)

	iter, err := store.QueryByEquality("ownerId", ownerId)
	if err != nil {
		logger.Errorf("Failed to query shared data by owner %v: %v", ownerId, err)
		return nil, err
	}
	return collect(iter)
}

// AllSharedWith returns every shared data whose encoded sharedWith string
// contains thirdPartyUser as a substring. The containment match is looser
// than exact list membership: an id that is a substring of another sharee's
// id also matches. Callers that need an exact membership answer should use
// permission_mgmt.RequestPermission instead.
func AllSharedWith(store ledger.LedgerInterface, thirdPartyUser string) ([]data_model.SharedData, error) {
	defer utils.ExitFnLogger(logger, utils.EnterFnLogger(logger))
	logger.Debugf("thirdPartyUser: %v", thirdPartyUser)

	iter, err := store.QueryByRegex("sharedWith", regexp.QuoteMeta(thirdPartyUser))
	if err != nil {
		logger.Errorf("Failed to query shared data shared with %v: %v", thirdPartyUser, err)
		return nil, err
	}
	return collect(iter)
}

// History returns every historical value ever stored at sharedDataId, oldest
// to newest, including values from before mutations that later deleted and
// recreated the id. Returns a NotFoundError if the id does not currently exist.
func History(store ledger.LedgerInterface, sharedDataId string) ([]data_model.SharedData, error) {
	defer utils.ExitFnLogger(logger, utils.EnterFnLogger(logger))
	logger.Debugf("sharedDataId: %v", sharedDataId)

	exists, err := shared_data_mgmt.Exists(store, sharedDataId)
	if err != nil {
		return nil, err
	}
	if !exists {
		custom_err := &custom_errors.NotFoundError{SharedDataId: sharedDataId}
		logger.Errorf(custom_err.Error())
		return nil, errors.WithStack(custom_err)
	}

	iter, err := store.HistoryOf(sharedDataId)
	if err != nil {
		logger.Errorf("Failed to get history of shared data %v: %v", sharedDataId, err)
		return nil, err
	}
	defer iter.Close()

	results := []data_model.SharedData{}
	for iter.HasNext() {
		value, err := iter.Next()
		if err != nil {
			logger.Errorf("Failed to read history of shared data %v: %v", sharedDataId, err)
			return nil, err
		}
		// delete markers carry no value
		if len(value) == 0 {
			continue
		}
		sharedData := data_model.SharedData{}
		err = json.Unmarshal(value, &sharedData)
		if err != nil {
			custom_err := &custom_errors.UnmarshalError{Type: "SharedData"}
			logger.Errorf("%v: %v", custom_err, err)
			return nil, errors.Wrap(err, custom_err.Error())
		}
		results = append(results, sharedData)
	}
	return results, nil
}

// collect drains a KV iterator into a list of shared data, closing the
// iterator on every path.
func collect(iter ledger.KVIterator) ([]data_model.SharedData, error) {
	defer iter.Close()

	results := []data_model.SharedData{}
	for iter.HasNext() {
		_, value, err := iter.Next()
		if err != nil {
			custom_err := &custom_errors.IterError{}
			logger.Errorf("%v: %v", custom_err, err)
			return nil, err
		}
		if len(value) == 0 {
			continue
		}
		sharedData := data_model.SharedData{}
		err = json.Unmarshal(value, &sharedData)
		if err != nil {
			custom_err := &custom_errors.UnmarshalError{Type: "SharedData"}
			logger.Errorf("%v: %v", custom_err, err)
			return nil, errors.Wrap(err, custom_err.Error())
		}
		results = append(results, sharedData)
	}
	return results, nil
}
