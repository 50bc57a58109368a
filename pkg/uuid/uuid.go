// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package uuid provides helpers around the opaque unique identifiers used by
the dictionary service.

User ids, access-object ids and permission-role ids are UUIDs, and some tag
types use UUIDs instead of slugs as their id. Only the canonical hyphenated
36-character form is accepted on the wire.
*/
package uuid

import "github.com/google/uuid"

// # Generators

// New generates a new UUIDv7 string.
func New() string {

	// Create a new version 7 UUID (time-sortable)
	id, err := uuid.NewV7()

	// entropy failure is an unrecoverable system-level error
	if err != nil {
		panic("uuid: failed to generate UUID: " + err.Error())
	}

	return id.String()
}

// # Parsing

// Parse parses the canonical hyphenated form only.
//
// google/uuid also accepts braced, URN and unhyphenated forms; those are
// rejected here so that ids round-trip byte-for-byte.
func Parse(s string) (uuid.UUID, bool) {
	if len(s) != 36 {
		return uuid.Nil, false
	}

	id, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, false
	}

	return id, true
}

// IsValid reports whether s is a canonical UUID string.
func IsValid(s string) bool {
	_, ok := Parse(s)
	return ok
}
