/*******************************************************************************
 *
 * SPDX-License-Identifier: Apache-2.0
 *
 *******************************************************************************/

// Package utils contains convenience, helper, and utility functions,
// including the sharedWith list codec used by the permission and
// lifecycle packages.
package utils

import (
	"regexp"
	"runtime"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// SHARED_WITH_DELIMITER separates user ids in the encoded sharedWith string.
const SHARED_WITH_DELIMITER = ","

/*
******************************************************************************************************
Logging functions
******************************************************************************************************
*/

var logLevel = zap.NewAtomicLevelAt(zapcore.InfoLevel)

var baseLogger = func() *zap.Logger {
	config := zap.NewProductionConfig()
	config.Level = logLevel
	logger, err := config.Build()
	if err != nil {
		return zap.NewNop()
	}
	return logger
}()

// NewLogger returns a named logger for a package.
func NewLogger(name string) *zap.SugaredLogger {
	return baseLogger.Sugar().Named(name)
}

// SetLogLevel sets the log level for all loggers created by NewLogger.
func SetLogLevel(level zapcore.Level) {
	logLevel.SetLevel(level)
}

var logger = NewLogger("utils")

// RE_stripFnPreamble uses regex to extract function names (and not the module path).
var RE_stripFnPreamble = regexp.MustCompile(`^.*\.(.*)$`)

// EnterFnLogger logs and returns the current function name at the start of function execution.
func EnterFnLogger(mylogger *zap.SugaredLogger) string {
	fnName := "<unknown>"
	// Skip this function, and fetch the PC and file for its parent
	pc, _, _, ok := runtime.Caller(1)
	if ok {
		fnName = RE_stripFnPreamble.ReplaceAllString(runtime.FuncForPC(pc).Name(), "$1")
	}

	mylogger.Debugf("---> %s", fnName)
	return fnName
}

// ExitFnLogger logs the current function name at the end of execution.
func ExitFnLogger(mylogger *zap.SugaredLogger, s string) {
	mylogger.Debugf("<--- %s", s)
}

/*
******************************************************************************************************
sharedWith codec
******************************************************************************************************
*/

// SharedWithToString encodes a list of user ids as a single delimited string.
// Entries are trimmed and blank entries are dropped, so an empty list encodes
// as the empty string and never as a separator-only string. Encoding performs
// no de-duplication; uniqueness of the list is enforced at the point of
// insertion by permission_mgmt.
func SharedWithToString(sharedWith []string) string {
	entries := []string{}
	for _, user := range sharedWith {
		user = strings.TrimSpace(user)
		if len(user) > 0 {
			entries = append(entries, user)
		}
	}
	return strings.Join(entries, SHARED_WITH_DELIMITER)
}

// SharedWithToArray decodes a delimited sharedWith string into a list of user
// ids, preserving order. A blank input decodes to an empty list. Decoding does
// not de-duplicate; a string encoded by SharedWithToString never contains
// duplicates in the first place.
func SharedWithToArray(sharedWith string) []string {
	trimmed := strings.TrimSpace(sharedWith)
	if len(trimmed) == 0 {
		return []string{}
	}
	return strings.Split(trimmed, SHARED_WITH_DELIMITER)
}

/*
******************************************************************************************************
Helper functions
******************************************************************************************************
*/

// InList returns true if item is in listdata, false otherwise.
func InList(listdata []string, item string) bool {
	for i := 0; i < len(listdata); i++ {
		if listdata[i] == item {
			return true
		}
	}
	return false
}

// RemoveItemFromList returns list with the first element that matches item removed.
func RemoveItemFromList(list []string, item string) []string {
	for i, v := range list {
		if v == item {
			list = append(list[:i], list[i+1:]...)
			break
		}
	}
	return list
}

// IsStringEmpty returns true if the provided string is empty or blank, false otherwise.
func IsStringEmpty(s string) bool {
	return len(strings.TrimSpace(s)) == 0
}
