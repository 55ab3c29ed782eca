// Copyright 2022 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package metadata

import (
	"fmt"

	ctypes "github.com/centrifuge/go-substrate-rpc-client/v4/types"
)

// FromSubstrateMetadata converts a metadata document decoded by
// go-substrate-rpc-client into this package's schema model.
//
// Only metadata v13 is accepted. It is the last format that declares storage
// key and value types as plain type name strings; v14 replaced type names
// with type registry indices, which cannot feed a pipeline keyed by type
// name. Earlier formats should be re-fetched as v13 from the node.
func FromSubstrateMetadata(meta *ctypes.Metadata) (*Metadata, error) {
	if meta.Version != 13 {
		return nil, fmt.Errorf("%w: v%d", ErrUnsupportedMetadataVersion, meta.Version)
	}

	out := &Metadata{
		Modules: make([]ModuleMetadata, 0, len(meta.AsMetadataV13.Modules)),
	}

	for _, mod := range meta.AsMetadataV13.Modules {
		module := ModuleMetadata{
			Name:       string(mod.Name),
			HasStorage: mod.HasStorage,
		}

		if mod.HasStorage {
			module.Storage.Prefix = string(mod.Storage.Prefix)
			module.Storage.Items = make([]StorageEntryMetadata, 0, len(mod.Storage.Items))

			for _, item := range mod.Storage.Items {
				entry, err := fromStorageFunctionV13(item)
				if err != nil {
					return nil, fmt.Errorf("module %s: storage item %s: %w",
						module.Name, string(item.Name), err)
				}
				module.Storage.Items = append(module.Storage.Items, entry)
			}
		}

		out.Modules = append(out.Modules, module)
	}

	return out, nil
}

func fromStorageFunctionV13(item ctypes.StorageFunctionMetadataV13) (
	entry StorageEntryMetadata, err error) {
	entry.Name = string(item.Name)

	switch {
	case item.Type.IsType:
		entry.Type.IsPlain = true
		entry.Type.AsPlain = string(item.Type.AsType)
	case item.Type.IsMap:
		hasher, err := fromHasherV10(item.Type.AsMap.Hasher)
		if err != nil {
			return entry, err
		}
		entry.Type.IsMap = true
		entry.Type.AsMap = MapType{
			Hasher: hasher,
			Key:    string(item.Type.AsMap.Key),
			Value:  string(item.Type.AsMap.Value),
		}
	case item.Type.IsDoubleMap:
		hasher, err := fromHasherV10(item.Type.AsDoubleMap.Hasher)
		if err != nil {
			return entry, err
		}
		key2Hasher, err := fromHasherV10(item.Type.AsDoubleMap.Key2Hasher)
		if err != nil {
			return entry, err
		}
		entry.Type.IsDoubleMap = true
		entry.Type.AsDoubleMap = DoubleMapType{
			Hasher:     hasher,
			Key1:       string(item.Type.AsDoubleMap.Key1),
			Key2:       string(item.Type.AsDoubleMap.Key2),
			Value:      string(item.Type.AsDoubleMap.Value),
			Key2Hasher: key2Hasher,
		}
	default:
		return entry, ErrUnsupportedEntryType
	}

	return entry, nil
}

func fromHasherV10(h ctypes.StorageHasherV10) (StorageHasher, error) {
	switch {
	case h.IsBlake2_128:
		return HasherBlake2b128, nil
	case h.IsBlake2_256:
		return HasherBlake2b256, nil
	case h.IsBlake2_128Concat:
		return HasherBlake2b128Concat, nil
	case h.IsTwox128:
		return HasherTwox128, nil
	case h.IsTwox256:
		return HasherTwox256, nil
	case h.IsTwox64Concat:
		return HasherTwox64Concat, nil
	case h.IsIdentity:
		return HasherIdentity, nil
	}
	return 0, ErrUnknownHasher
}
