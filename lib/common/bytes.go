// Copyright 2022 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package common

import (
	"encoding/hex"
	"strings"
)

// HexToBytes turns a hex string into a byte slice, with or without
// a 0x prefix
func HexToBytes(in string) ([]byte, error) {
	return hex.DecodeString(strings.TrimPrefix(in, "0x"))
}

// MustHexToBytes turns a hex string into a byte slice.
// It panics if it cannot decode the string.
func MustHexToBytes(in string) []byte {
	out, err := HexToBytes(in)
	if err != nil {
		panic(err)
	}

	return out
}

// BytesToHex turns a byte slice into a 0x prefixed hex string
func BytesToHex(in []byte) string {
	return "0x" + hex.EncodeToString(in)
}
