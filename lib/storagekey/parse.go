// Copyright 2022 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package storagekey

import (
	"encoding/hex"
	"fmt"
	"strings"
)

// TransparentMap carries the recovered key of a storage map entry.
type TransparentMap struct {
	// Key is the original pre-hash key material, hex encoded.
	Key string
	// ValueType is the declared runtime type name of the stored value,
	// to be resolved against a value decode registry.
	ValueType string
}

// TransparentDoubleMap carries the recovered keys of a double map entry.
type TransparentDoubleMap struct {
	Key1     string
	Key1Type string
	Key2     string
	Key2Type string
}

// TransparentType is the keyed part of a decomposed storage key: exactly one
// of the Is fields is set.
type TransparentType struct {
	IsPlain     bool
	IsMap       bool
	AsMap       TransparentMap
	IsDoubleMap bool
	AsDoubleMap TransparentDoubleMap
}

// TransparentStorageKey is the readable decomposition of a raw storage key.
type TransparentStorageKey struct {
	ModulePrefix  string
	StoragePrefix string
	Type          TransparentType
}

// Parser decomposes raw storage keys using a prefix lookup table and an
// injected key length registry. It holds no mutable state; one parser may
// serve concurrent callers.
type Parser struct {
	table      *LookupTable
	keyLengths KeyLengths
}

// NewParser returns a parser over the given lookup table. keyLengths
// resolves the first key width of double maps; DefaultKeyLengths covers the
// common cases.
func NewParser(table *LookupTable, keyLengths KeyLengths) *Parser {
	return &Parser{
		table:      table,
		keyLengths: keyLengths,
	}
}

// Parse resolves the storage key's prefix against the lookup table and
// slices the remaining characters according to the owning item's schema.
// The key is lowercase hex, with or without a 0x prefix.
//
// Failures are reported as wrapped sentinel errors: ErrMalformedKey,
// ErrUnknownPrefix, ErrUnsupportedHasher, ErrTruncatedKey and
// ErrUnknownKeyLength. Only ErrUnknownKeyLength is expected during normal
// operation; it names the type missing from the key length registry.
func (p *Parser) Parse(storageKey string) (TransparentStorageKey, error) {
	key, err := normalise(storageKey)
	if err != nil {
		return TransparentStorageKey{}, err
	}

	if len(key) < PrefixLength {
		return TransparentStorageKey{}, fmt.Errorf("%w: have %d characters, want at least %d",
			ErrUnknownPrefix, len(key), PrefixLength)
	}

	descriptor, ok := p.table.Lookup(key[:PrefixLength])
	if !ok {
		logger.Trace("storage key prefix not in lookup table", "prefix", key[:PrefixLength])
		return TransparentStorageKey{}, fmt.Errorf("%w: %s", ErrUnknownPrefix, key[:PrefixLength])
	}

	transparent := TransparentStorageKey{
		ModulePrefix:  descriptor.ModulePrefix,
		StoragePrefix: descriptor.StoragePrefix,
	}

	hashedKey := key[PrefixLength:]

	switch {
	case descriptor.Type.IsPlain:
		transparent.Type.IsPlain = true
	case descriptor.Type.IsMap:
		transparent.Type.AsMap, err = p.parseMap(descriptor, hashedKey)
		if err != nil {
			return TransparentStorageKey{}, err
		}
		transparent.Type.IsMap = true
	case descriptor.Type.IsDoubleMap:
		transparent.Type.AsDoubleMap, err = p.parseDoubleMap(descriptor, hashedKey)
		if err != nil {
			return TransparentStorageKey{}, err
		}
		transparent.Type.IsDoubleMap = true
	default:
		return TransparentStorageKey{}, fmt.Errorf("%w: %s.%s",
			errNoStorageKind, descriptor.ModulePrefix, descriptor.StoragePrefix)
	}

	return transparent, nil
}

// parseMap slices hashedKey as digest ++ original key bytes.
func (p *Parser) parseMap(descriptor Descriptor, hashedKey string) (TransparentMap, error) {
	entry := descriptor.Type.AsMap

	if !entry.Hasher.IsConcat() {
		return TransparentMap{}, fmt.Errorf("%w: %s on map %s.%s",
			ErrUnsupportedHasher, entry.Hasher,
			descriptor.ModulePrefix, descriptor.StoragePrefix)
	}

	digestLength := entry.Hasher.DigestHexLength()
	if len(hashedKey) < digestLength {
		return TransparentMap{}, fmt.Errorf("%w: %d characters after prefix, want at least %d",
			ErrTruncatedKey, len(hashedKey), digestLength)
	}

	return TransparentMap{
		Key:       hashedKey[digestLength:],
		ValueType: entry.Value,
	}, nil
}

// parseDoubleMap slices hashedKey as
// digest1 ++ key1 ++ digest2 ++ key2. The digests have fixed widths given by
// the hashers; key1's width comes from the key length registry since the
// byte stream does not encode it.
func (p *Parser) parseDoubleMap(descriptor Descriptor, hashedKey string) (
	TransparentDoubleMap, error) {
	entry := descriptor.Type.AsDoubleMap

	if !entry.Hasher.IsConcat() {
		return TransparentDoubleMap{}, fmt.Errorf("%w: %s on first key of double map %s.%s",
			ErrUnsupportedHasher, entry.Hasher,
			descriptor.ModulePrefix, descriptor.StoragePrefix)
	}

	if !entry.Key2Hasher.IsConcat() {
		return TransparentDoubleMap{}, fmt.Errorf("%w: %s on second key of double map %s.%s",
			ErrUnsupportedHasher, entry.Key2Hasher,
			descriptor.ModulePrefix, descriptor.StoragePrefix)
	}

	digest1Length := entry.Hasher.DigestHexLength()
	if len(hashedKey) < digest1Length {
		return TransparentDoubleMap{}, fmt.Errorf("%w: %d characters after prefix, want at least %d",
			ErrTruncatedKey, len(hashedKey), digest1Length)
	}

	// key1 ++ digest2 ++ key2
	remainder := hashedKey[digest1Length:]

	key1Length, ok := p.keyLengths.KeyLength(entry.Key1)
	if !ok {
		logger.Debug("key length registry miss", "type", entry.Key1,
			"module", descriptor.ModulePrefix, "storage", descriptor.StoragePrefix)
		return TransparentDoubleMap{}, fmt.Errorf("%w: %q", ErrUnknownKeyLength, entry.Key1)
	}

	digest2Length := entry.Key2Hasher.DigestHexLength()
	if len(remainder) < key1Length+digest2Length {
		return TransparentDoubleMap{}, fmt.Errorf(
			"%w: %d characters after first digest, want at least %d",
			ErrTruncatedKey, len(remainder), key1Length+digest2Length)
	}

	return TransparentDoubleMap{
		Key1:     remainder[:key1Length],
		Key1Type: entry.Key1,
		Key2:     remainder[key1Length+digest2Length:],
		Key2Type: entry.Key2,
	}, nil
}

// normalise strips an optional 0x prefix, lowercases the key and rejects
// input that is not hex of whole bytes.
func normalise(storageKey string) (string, error) {
	key := strings.ToLower(strings.TrimPrefix(storageKey, "0x"))

	if _, err := hex.DecodeString(key); err != nil {
		return "", fmt.Errorf("%w: %s", ErrMalformedKey, err)
	}

	return key, nil
}
