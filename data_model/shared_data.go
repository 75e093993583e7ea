/*******************************************************************************
 *
 * SPDX-License-Identifier: Apache-2.0
 *
 *******************************************************************************/

// Package data_model contains structs used across packages to prevent circular imports.
// The SharedData struct is needed by shared_data_mgmt, permission_mgmt, and
// shared_data_query, so it lives here.
package data_model

import (
	"github.com/jonatansouza/hyper-share-smart-contract/custom_errors"
	"github.com/jonatansouza/hyper-share-smart-contract/utils"

	"github.com/pkg/errors"
)

// Permission is the outcome of the most recent requestPermission call on a
// shared data. It is persisted as its numeric code.
type Permission int

// Permission outcomes. PERMISSION_NOT_APPLICABLE is set by every mutation
// other than requestPermission.
const (
	PERMISSION_GRANTED        Permission = 1
	PERMISSION_DENIED         Permission = 2
	PERMISSION_NOT_APPLICABLE Permission = 3
)

// Mode values record the name of the last operation applied to a shared data.
// They are audit trail values, not behavioral flags.
const (
	MODE_CREATE_SHARED_DATA = "createSharedData"
	MODE_UPDATE_SHARED_DATA = "updateSharedData"
	MODE_DELETE_SHARED_DATA = "deleteSharedData"
	MODE_GRANT_ACCESS       = "grantAccess"
	MODE_REVOKE_ACCESS      = "revokeAccess"
	MODE_REQUEST_PERMISSION = "requestPermission"
)

// SharedData represents one shared data registration on the ledger, keyed by Id.
// OwnerId is set from the creating requester and is immutable thereafter.
// SharedWith is the ordered list of third party users granted access, encoded
// as a delimited string (see utils.SharedWithToString).
// Bucket and ResourceLocation describe where the referenced external resource lives.
// Updated is a caller-supplied timestamp; the chaincode never reads wall-clock
// time so that execution stays deterministic and replayable.
// Requester is the identity that triggered the most recent mutation, which may
// differ from OwnerId for grantAccess, revokeAccess, and requestPermission.
type SharedData struct {
	Id                    string     `json:"id"`
	OwnerId               string     `json:"ownerId"`
	SharedWith            string     `json:"sharedWith"`
	SharedDataDescription string     `json:"sharedDataDescription"`
	Bucket                string     `json:"bucket"`
	ResourceLocation      string     `json:"resourceLocation"`
	Mode                  string     `json:"mode"`
	Updated               int64      `json:"updated"`
	Requester             string     `json:"requester"`
	Permission            Permission `json:"permission"`
}

// NewSharedData constructs a SharedData with the required identity fields.
// Returns a ValidationError if id or ownerId is missing.
func NewSharedData(id string, ownerId string) (SharedData, error) {
	if utils.IsStringEmpty(id) {
		return SharedData{}, errors.WithStack(&custom_errors.ValidationError{Field: "id"})
	}
	if utils.IsStringEmpty(ownerId) {
		return SharedData{}, errors.WithStack(&custom_errors.ValidationError{Field: "ownerId"})
	}
	return SharedData{Id: id, OwnerId: ownerId, Permission: PERMISSION_NOT_APPLICABLE}, nil
}

// IsOwner returns true if the given userId is the owner of the shared data.
func (sharedData *SharedData) IsOwner(userId string) bool {
	return sharedData.OwnerId == userId
}

// IsSharedWith returns true if the given userId is present in the decoded
// sharing list. Membership is an exact match against a list entry.
func (sharedData *SharedData) IsSharedWith(userId string) bool {
	return utils.InList(utils.SharedWithToArray(sharedData.SharedWith), userId)
}

// Copy returns a copy of the shared data as a new object.
// Callers can use this function to copy an object to avoid using reference pointers.
func (sharedData *SharedData) Copy() SharedData {
	newSharedData := SharedData{}
	newSharedData.Id = sharedData.Id
	newSharedData.OwnerId = sharedData.OwnerId
	newSharedData.SharedWith = sharedData.SharedWith
	newSharedData.SharedDataDescription = sharedData.SharedDataDescription
	newSharedData.Bucket = sharedData.Bucket
	newSharedData.ResourceLocation = sharedData.ResourceLocation
	newSharedData.Mode = sharedData.Mode
	newSharedData.Updated = sharedData.Updated
	newSharedData.Requester = sharedData.Requester
	newSharedData.Permission = sharedData.Permission
	return newSharedData
}
