// Copyright 2022 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package storagekey

//go:generate mockgen -destination=mock_keylengths_test.go -package=$GOPACKAGE . KeyLengths
