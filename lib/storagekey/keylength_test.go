// Copyright 2022 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package storagekey

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultKeyLengths(t *testing.T) {
	t.Parallel()

	lengths := DefaultKeyLengths()

	for typeName, expected := range map[string]int{
		"u32":            8,
		"u128":           32,
		"SessionIndex":   8,
		"EraIndex":       8,
		"T::AccountId":   64,
		"T::ValidatorId": 64,
	} {
		hexChars, ok := lengths.KeyLength(typeName)
		require.True(t, ok, typeName)
		assert.Equal(t, expected, hexChars, typeName)
	}

	_, ok := lengths.KeyLength("OpaqueTimeSlot")
	assert.False(t, ok)
}

func TestKeyLengthTable_RegisterAndMerge(t *testing.T) {
	t.Parallel()

	table := KeyLengthTable{"SessionIndex": 8}

	table.Register("OpaqueTimeSlot", 32)
	hexChars, ok := table.KeyLength("OpaqueTimeSlot")
	require.True(t, ok)
	assert.Equal(t, 32, hexChars)

	table.Merge(KeyLengthTable{
		"SessionIndex": 16, // replaces
		"Kind":         32,
	})
	hexChars, _ = table.KeyLength("SessionIndex")
	assert.Equal(t, 16, hexChars)
	_, ok = table.KeyLength("Kind")
	assert.True(t, ok)
}

func TestLoadKeyLengths(t *testing.T) {
	t.Parallel()

	document := `
[lengths]
"T::AccountId" = 64
"OpaqueTimeSlot" = 32
"SessionIndex" = 8
`

	table, err := LoadKeyLengths(strings.NewReader(document))
	require.NoError(t, err)

	expected := KeyLengthTable{
		"T::AccountId":   64,
		"OpaqueTimeSlot": 32,
		"SessionIndex":   8,
	}
	assert.Equal(t, expected, table)
}

func TestLoadKeyLengths_BadDocument(t *testing.T) {
	t.Parallel()

	_, err := LoadKeyLengths(strings.NewReader("not = [valid"))
	assert.Error(t, err)
}
