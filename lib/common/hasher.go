// Copyright 2022 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package common

import (
	"encoding/binary"

	"github.com/OneOfOne/xxhash"
	"golang.org/x/crypto/blake2b"
)

// twox computes xxHash64 `words` times with seeds 0..words-1 over the input
// and concatenates the little-endian digests. Substrate's twox_64, twox_128
// and twox_256 are this with 1, 2 and 4 words respectively.
func twox(in []byte, words int) ([]byte, error) {
	out := make([]byte, words*8)
	for seed := 0; seed < words; seed++ {
		h := xxhash.NewS64(uint64(seed))
		if _, err := h.Write(in); err != nil {
			return nil, err
		}
		binary.LittleEndian.PutUint64(out[seed*8:], h.Sum64())
	}
	return out, nil
}

// Twox64 returns the 64-bit xxHash digest of the input data
func Twox64(in []byte) ([]byte, error) {
	return twox(in, 1)
}

// Twox128 returns the 128-bit twox digest of the input data
func Twox128(in []byte) ([]byte, error) {
	return twox(in, 2)
}

// Twox256 returns the 256-bit twox digest of the input data
func Twox256(in []byte) ([]byte, error) {
	return twox(in, 4)
}

// Blake2b128 returns the 128-bit blake2b digest of the input data
func Blake2b128(in []byte) ([]byte, error) {
	h, err := blake2b.New(16, nil)
	if err != nil {
		return nil, err
	}

	if _, err = h.Write(in); err != nil {
		return nil, err
	}

	return h.Sum(nil), nil
}

// Blake2b256 returns the 256-bit blake2b digest of the input data
func Blake2b256(in []byte) ([]byte, error) {
	h, err := blake2b.New256(nil)
	if err != nil {
		return nil, err
	}

	if _, err = h.Write(in); err != nil {
		return nil, err
	}

	return h.Sum(nil), nil
}
