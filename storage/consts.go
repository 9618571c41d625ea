// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package storage

// Key prefixes
const (
	poolPrefix byte = iota
	assetPrefix
	balancePrefix
)

// Seeds mixed into derived addresses.
var (
	poolSeedPrefix = []byte("config")
	lpSeedPrefix   = []byte("lp")
)
