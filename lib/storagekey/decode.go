// Copyright 2022 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package storagekey

import "fmt"

// DecodeFunc decodes one SCALE encoded storage value into a concrete type.
type DecodeFunc func(encoded []byte) (value interface{}, err error)

// DecodeRegistry maps declared value type names, as reported in
// TransparentStorageKey, to caller supplied decode functions. The parser
// never decodes values; this registry is the hand off point between the
// recovered type name and whatever codec the caller uses.
type DecodeRegistry map[string]DecodeFunc

// Register adds or replaces the decode function for a type name.
func (r DecodeRegistry) Register(typeName string, fn DecodeFunc) {
	r[typeName] = fn
}

// Decode runs the registered function for typeName over the encoded value.
func (r DecodeRegistry) Decode(typeName string, encoded []byte) (interface{}, error) {
	fn, ok := r[typeName]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNoDecodeFunc, typeName)
	}

	value, err := fn(encoded)
	if err != nil {
		return nil, fmt.Errorf("decoding %q value: %w", typeName, err)
	}

	return value, nil
}
