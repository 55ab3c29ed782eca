// Copyright 2022 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package metadata

import "errors"

var (
	// ErrUnsupportedMetadataVersion is returned when converting a metadata
	// document of a version that does not carry storage types as plain type
	// name strings (v14 and later use a type registry instead).
	ErrUnsupportedMetadataVersion = errors.New("unsupported metadata version")

	// ErrUnsupportedEntryType is returned for storage entry kinds outside
	// plain/map/double map, such as the n-map introduced in metadata v13.
	ErrUnsupportedEntryType = errors.New("unsupported storage entry type")

	// ErrUnknownHasher is returned when a storage hasher cannot be mapped
	// to one of the known StorageHasher values.
	ErrUnknownHasher = errors.New("unknown storage hasher")
)
