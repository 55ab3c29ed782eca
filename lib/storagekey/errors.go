// Copyright 2022 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package storagekey

import "errors"

var (
	// ErrMalformedKey is returned for storage keys that are not valid
	// lowercase hex of whole bytes.
	ErrMalformedKey = errors.New("malformed storage key")

	// ErrUnknownPrefix is returned when a storage key's 64 character prefix
	// is not present in the lookup table. The key belongs to a different or
	// unknown runtime version, or is corrupted.
	ErrUnknownPrefix = errors.New("storage key prefix not found in lookup table")

	// ErrUnsupportedHasher is returned when the schema declares a hasher
	// that discards the original key bytes on a keyed storage item. Such
	// keys cannot be decomposed and the schema assumption is violated.
	ErrUnsupportedHasher = errors.New("storage hasher does not preserve key material")

	// ErrTruncatedKey is returned when a storage key holds fewer characters
	// than its declared layout requires.
	ErrTruncatedKey = errors.New("storage key shorter than declared layout")

	// ErrUnknownKeyLength is returned when the first key type of a double
	// map has no registered length. Extend the key length registry with the
	// type name carried in the error and parse again.
	ErrUnknownKeyLength = errors.New("no key length registered for type")

	// ErrDuplicatePrefix is returned when two storage items of the metadata
	// hash to the same key prefix, which well formed metadata never does.
	ErrDuplicatePrefix = errors.New("duplicate storage key prefix")

	// ErrNoDecodeFunc is returned by DecodeRegistry for value type names
	// without a registered decode function.
	ErrNoDecodeFunc = errors.New("no decode function registered for type")

	errNoStorageKind = errors.New("storage entry declares no kind")
)
