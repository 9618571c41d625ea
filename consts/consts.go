// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package consts

import (
	"github.com/ava-labs/avalanchego/ids"
	"github.com/ava-labs/avalanchego/version"
)

const (
	Name = "cpamm"
	HRP  = "amm"

	ByteLen   = 1
	BoolLen   = 1
	Uint16Len = 2
	Uint64Len = 8
	IDLen     = 32
	MaxUint64 = ^uint64(0)

	// BasisPoints is the denominator of every fee rate.
	BasisPoints = 10_000
)

// TypeIDs for operations
const (
	InitializeID uint8 = iota
	DepositID
	WithdrawID
	SwapID
	LockID
	UnlockID
)

// TypeIDs for addresses
const (
	ED25519ID uint8 = iota
	ASSETID
	POOLID
	LPASSETID
)

var ID ids.ID

func init() {
	b := make([]byte, ids.IDLen)
	copy(b, []byte(Name))
	vmID, err := ids.ToID(b)
	if err != nil {
		panic(err)
	}
	ID = vmID
}

var Version = &version.Semantic{
	Major: 0,
	Minor: 1,
	Patch: 0,
}
