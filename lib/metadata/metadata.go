// Copyright 2022 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

// Package metadata models the storage schema of a Substrate runtime: which
// modules exist, which storage items each module declares, and how each
// item's keys are hashed. It is the decoded form consumed by the storage key
// parser; decoding the raw metadata blob itself is left to an external
// library (see FromSubstrateMetadata).
package metadata

// StorageHasher identifies the hashing algorithm a storage map applies to
// its key material before it is appended to the storage key.
type StorageHasher uint8

const (
	// HasherBlake2b128 is the 128-bit blake2b digest of the key.
	HasherBlake2b128 StorageHasher = iota
	// HasherBlake2b256 is the 256-bit blake2b digest of the key.
	HasherBlake2b256
	// HasherBlake2b128Concat is the 128-bit blake2b digest of the key
	// followed by the key itself.
	HasherBlake2b128Concat
	// HasherTwox128 is the 128-bit twox digest of the key.
	HasherTwox128
	// HasherTwox256 is the 256-bit twox digest of the key.
	HasherTwox256
	// HasherTwox64Concat is the 64-bit twox digest of the key followed by
	// the key itself.
	HasherTwox64Concat
	// HasherIdentity is the key itself, with no digest.
	HasherIdentity
)

func (h StorageHasher) String() string {
	switch h {
	case HasherBlake2b128:
		return "Blake2_128"
	case HasherBlake2b256:
		return "Blake2_256"
	case HasherBlake2b128Concat:
		return "Blake2_128Concat"
	case HasherTwox128:
		return "Twox128"
	case HasherTwox256:
		return "Twox256"
	case HasherTwox64Concat:
		return "Twox64Concat"
	case HasherIdentity:
		return "Identity"
	}
	return "Unknown"
}

// IsConcat reports whether the hasher appends the original key bytes after
// its digest. Only concat hashers preserve the key material, so only they
// can be decomposed back into a readable key.
func (h StorageHasher) IsConcat() bool {
	return h == HasherBlake2b128Concat || h == HasherTwox64Concat
}

// DigestHexLength returns the fixed width of the hasher's digest in hex
// characters. HasherIdentity produces no digest and returns 0.
func (h StorageHasher) DigestHexLength() int {
	switch h {
	case HasherBlake2b128, HasherBlake2b128Concat, HasherTwox128:
		return 32
	case HasherBlake2b256, HasherTwox256:
		return 64
	case HasherTwox64Concat:
		return 16
	}
	return 0
}

// MapType describes a storage map keyed by a single hashed key.
type MapType struct {
	Hasher StorageHasher
	// Key and Value are the declared runtime type names, eg. "T::AccountId".
	Key   string
	Value string
}

// DoubleMapType describes a storage map keyed by two independently hashed
// keys. The final key layout is
// prefix ++ hasher(key1) ++ key2hasher(key2).
type DoubleMapType struct {
	Hasher     StorageHasher
	Key1       string
	Key2       string
	Value      string
	Key2Hasher StorageHasher
}

// StorageEntryType is the kind of a storage item: exactly one of the Is
// fields is set, and the matching As field carries the keyed description.
type StorageEntryType struct {
	IsPlain bool
	// AsPlain is the declared value type name of a plain storage value.
	AsPlain     string
	IsMap       bool
	AsMap       MapType
	IsDoubleMap bool
	AsDoubleMap DoubleMapType
}

// StorageEntryMetadata describes a single storage item of a module.
type StorageEntryMetadata struct {
	Name string
	Type StorageEntryType
}

// StorageMetadata groups the storage items of one module under the module's
// storage prefix. The prefix is usually the module name but the runtime may
// declare it differently.
type StorageMetadata struct {
	Prefix string
	Items  []StorageEntryMetadata
}

// ModuleMetadata describes one runtime module.
type ModuleMetadata struct {
	Name       string
	HasStorage bool
	Storage    StorageMetadata
}

// Metadata is the decoded storage schema of one runtime version.
type Metadata struct {
	Modules []ModuleMetadata
}
