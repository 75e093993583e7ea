/*******************************************************************************
 *
 * SPDX-License-Identifier: Apache-2.0
 *
 *******************************************************************************/

// Package test_utils contains test utility functions: assertion helpers and a
// mock stub with working rich query and history support.
// These functions should only be used in unit tests.
package test_utils

import (
	"runtime/debug"
	"testing"

	"github.com/jonatansouza/hyper-share-smart-contract/utils"
)

var logger = utils.NewLogger("test_utils")

// AssertTrue asserts that the given boolean is true.
func AssertTrue(t *testing.T, assertion bool, message string) {
	if !assertion {
		debug.PrintStack()
		t.Fatalf(message)
	}
}

// AssertFalse asserts that the given boolean is false.
func AssertFalse(t *testing.T, assertion bool, message string) {
	if assertion {
		debug.PrintStack()
		t.Fatalf(message)
	}
}

// AssertNilError if myError is not nil, prints error details/stack and fails the test
func AssertNilError(t *testing.T, myError error, message string) {
	if myError != nil {
		debug.PrintStack()
		logger.Errorf("%v || ErrorDetails: %v", message, myError)
		t.Fatalf(message)
	}
}

// AssertListsEqual asserts that two lists are equal.
func AssertListsEqual(t *testing.T, expectedList []string, actualList []string) {
	if len(expectedList) != len(actualList) {
		debug.PrintStack()
		t.Fatalf("List was incorrect, got: %v, want: %v.", actualList, expectedList)
	}
	for i, item := range actualList {
		if item != expectedList[i] {
			debug.PrintStack()
			t.Fatalf("List was incorrect, got: %v, want: %v.", actualList, expectedList)
		}
	}
}
