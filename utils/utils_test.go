/*******************************************************************************
 *
 * SPDX-License-Identifier: Apache-2.0
 *
 *******************************************************************************/

package utils

import (
	"testing"
)

func TestSharedWithToString(t *testing.T) {
	result := SharedWithToString([]string{"a", "b"})
	if result != "a,b" {
		t.Fatalf("Encoded sharedWith was incorrect, got: %v, want: a,b", result)
	}
}

func TestSharedWithToString_Empty(t *testing.T) {
	result := SharedWithToString([]string{})
	if result != "" {
		t.Fatalf("Expected empty list to encode as empty string, got: %v", result)
	}
}

func TestSharedWithToString_BlankEntries(t *testing.T) {
	// blank entries must not produce a separator-only string
	result := SharedWithToString([]string{" ", ""})
	if result != "" {
		t.Fatalf("Expected blank entries to encode as empty string, got: %v", result)
	}

	result = SharedWithToString([]string{" alice ", "bob"})
	if result != "alice,bob" {
		t.Fatalf("Expected entries to be trimmed, got: %v", result)
	}
}

func TestSharedWithToArray(t *testing.T) {
	result := SharedWithToArray("a,b")
	if len(result) != 2 || result[0] != "a" || result[1] != "b" {
		t.Fatalf("Decoded sharedWith was incorrect, got: %v, want: [a b]", result)
	}
}

func TestSharedWithToArray_Empty(t *testing.T) {
	result := SharedWithToArray("")
	if len(result) != 0 {
		t.Fatalf("Expected empty string to decode to empty list, got: %v", result)
	}

	result = SharedWithToArray("   ")
	if len(result) != 0 {
		t.Fatalf("Expected blank string to decode to empty list, got: %v", result)
	}
}

func TestSharedWithToArray_NoDedup(t *testing.T) {
	// decode does not de-duplicate; dedup happens at grant time
	result := SharedWithToArray("a,a,b")
	if len(result) != 3 {
		t.Fatalf("Expected decode to preserve duplicates, got: %v", result)
	}
}

func TestSharedWithRoundTrip(t *testing.T) {
	users := []string{"alice", "bob", "carol"}
	encoded := SharedWithToString(users)
	decoded := SharedWithToArray(encoded)
	if len(decoded) != len(users) {
		t.Fatalf("Round trip changed list length, got: %v, want: %v", decoded, users)
	}
	for i, user := range users {
		if decoded[i] != user {
			t.Fatalf("Round trip changed list order, got: %v, want: %v", decoded, users)
		}
	}
}

func TestInList(t *testing.T) {
	list := []string{"a", "b", "c"}
	if !InList(list, "b") {
		t.Fatal("Expected InList to find b")
	}
	if InList(list, "d") {
		t.Fatal("Expected InList to not find d")
	}
	if InList([]string{}, "a") {
		t.Fatal("Expected InList to not find anything in an empty list")
	}
}

func TestRemoveItemFromList(t *testing.T) {
	list := []string{"a", "b", "c"}
	result := RemoveItemFromList(list, "b")
	if len(result) != 2 || result[0] != "a" || result[1] != "c" {
		t.Fatalf("List after removal was incorrect, got: %v, want: [a c]", result)
	}

	result = RemoveItemFromList([]string{"a"}, "a")
	if len(result) != 0 {
		t.Fatalf("Expected removal of only element to yield empty list, got: %v", result)
	}

	result = RemoveItemFromList([]string{"a"}, "x")
	if len(result) != 1 {
		t.Fatalf("Expected removal of missing element to be a no-op, got: %v", result)
	}
}

func TestIsStringEmpty(t *testing.T) {
	if !IsStringEmpty("") || !IsStringEmpty("   ") {
		t.Fatal("Expected empty and blank strings to be empty")
	}
	if IsStringEmpty("a") {
		t.Fatal("Expected non-empty string to not be empty")
	}
}
