// Copyright 2022 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package storagekey

import (
	"fmt"
	"io"

	"github.com/naoina/toml"
)

// KeyLengths resolves the SCALE encoded width, in hex characters, of a
// double map's first key from its declared runtime type name.
//
// The width of a concat-hashed key is not recoverable from the key bytes or
// from the metadata alone, so it has to be supplied out of band. Runtime
// type names are open ended and any table over them is incomplete; parsing
// reports a miss as ErrUnknownKeyLength so the table can be extended and the
// key parsed again.
type KeyLengths interface {
	KeyLength(typeName string) (hexChars int, ok bool)
}

// KeyLengthTable is a map backed KeyLengths, keyed by type name.
type KeyLengthTable map[string]int

// KeyLength implements KeyLengths.
func (t KeyLengthTable) KeyLength(typeName string) (hexChars int, ok bool) {
	hexChars, ok = t[typeName]
	return hexChars, ok
}

// Register adds or replaces the length of one type name.
func (t KeyLengthTable) Register(typeName string, hexChars int) {
	t[typeName] = hexChars
}

// Merge copies every entry of other into the table, replacing existing
// entries on conflict.
func (t KeyLengthTable) Merge(other KeyLengthTable) {
	for typeName, hexChars := range other {
		t[typeName] = hexChars
	}
}

// DefaultKeyLengths returns a table seeded with the fixed width primitives
// and the aliases commonly used as double map first keys. Chain specific
// type names should be merged in by the caller.
func DefaultKeyLengths() KeyLengthTable {
	return KeyLengthTable{
		"u8":   2,
		"u16":  4,
		"u32":  8,
		"u64":  16,
		"u128": 32,

		// fixed width aliases resolving to u32
		"SessionIndex": 8,
		"EraIndex":     8,
		"AuthIndex":    8,

		// 32 byte account identifiers
		"AccountId":      64,
		"T::AccountId":   64,
		"T::ValidatorId": 64,

		// [u8; 16] offence kind identifier
		"Kind": 32,
	}
}

// keyLengthsFile is the TOML document shape read by LoadKeyLengths:
//
//	[lengths]
//	"T::AccountId" = 64
//	"SessionIndex" = 8
type keyLengthsFile struct {
	Lengths map[string]int
}

// LoadKeyLengths reads a key length table from a TOML document, so the
// table can ship as configuration and grow without code changes.
func LoadKeyLengths(r io.Reader) (KeyLengthTable, error) {
	var file keyLengthsFile
	if err := toml.NewDecoder(r).Decode(&file); err != nil {
		return nil, fmt.Errorf("decoding key lengths: %w", err)
	}

	table := make(KeyLengthTable, len(file.Lengths))
	for typeName, hexChars := range file.Lengths {
		table[typeName] = hexChars
	}

	return table, nil
}
