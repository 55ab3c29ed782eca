// Copyright 2022 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

// Package storagekey recovers the readable decomposition of raw Substrate
// storage keys: the owning module and storage item, and for keyed storage
// the original pre-hash key material together with the declared runtime type
// names. Values are never decoded here; callers hand the reported type names
// to their own decode registry.
package storagekey

import (
	"encoding/hex"
	"fmt"

	"github.com/ChainSafe/substrate-storage/lib/common"
	"github.com/ChainSafe/substrate-storage/lib/metadata"

	log "github.com/ChainSafe/log15"
)

var logger = log.New("lib", "storagekey")

// PrefixLength is the width in hex characters of every storage key prefix:
// twox128(module prefix) ++ twox128(storage prefix).
const PrefixLength = 64

// Descriptor ties one storage item's schema to its owning module.
type Descriptor struct {
	// ModulePrefix is the module's storage prefix, usually the module name.
	ModulePrefix string
	// StoragePrefix is the storage item name.
	StoragePrefix string
	Type          metadata.StorageEntryType
}

// Prefix returns the item's storage key prefix, hex encoded without a 0x
// prefix, always PrefixLength characters.
func (d Descriptor) Prefix() (string, error) {
	module, err := common.Twox128([]byte(d.ModulePrefix))
	if err != nil {
		return "", fmt.Errorf("hashing module prefix: %w", err)
	}

	storage, err := common.Twox128([]byte(d.StoragePrefix))
	if err != nil {
		return "", fmt.Errorf("hashing storage prefix: %w", err)
	}

	return hex.EncodeToString(module) + hex.EncodeToString(storage), nil
}

// LookupTable indexes the storage items of one runtime version by their
// storage key prefix. It is immutable once built and safe for concurrent
// readers; on a runtime upgrade, build a new table and swap it in.
type LookupTable struct {
	entries map[string]Descriptor
}

// NewLookupTable builds the prefix index over every storage item of every
// module in the metadata. Two items hashing to the same prefix fail the
// build with ErrDuplicatePrefix rather than silently overwriting.
func NewLookupTable(meta *metadata.Metadata) (*LookupTable, error) {
	entries := make(map[string]Descriptor)

	for _, module := range meta.Modules {
		if !module.HasStorage {
			continue
		}

		for _, item := range module.Storage.Items {
			descriptor := Descriptor{
				ModulePrefix:  module.Storage.Prefix,
				StoragePrefix: item.Name,
				Type:          item.Type,
			}

			prefix, err := descriptor.Prefix()
			if err != nil {
				return nil, fmt.Errorf("computing prefix of %s.%s: %w",
					descriptor.ModulePrefix, descriptor.StoragePrefix, err)
			}

			if existing, ok := entries[prefix]; ok {
				return nil, fmt.Errorf("%w: %s.%s collides with %s.%s",
					ErrDuplicatePrefix,
					existing.ModulePrefix, existing.StoragePrefix,
					descriptor.ModulePrefix, descriptor.StoragePrefix)
			}

			entries[prefix] = descriptor
		}
	}

	logger.Debug("built storage prefix lookup table", "entries", len(entries))

	return &LookupTable{entries: entries}, nil
}

// Lookup returns the descriptor indexed under the given 64 character hex
// prefix, if any.
func (t *LookupTable) Lookup(prefix string) (Descriptor, bool) {
	descriptor, ok := t.entries[prefix]
	return descriptor, ok
}

// Len returns the number of indexed storage items.
func (t *LookupTable) Len() int {
	return len(t.entries)
}
