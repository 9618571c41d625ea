// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package curve

import (
	"errors"

	smath "github.com/ava-labs/avalanchego/utils/math"
)

var (
	// ErrOverflow and ErrUnderflow are shared with the ledger's checked
	// balance arithmetic so callers match a single sentinel.
	ErrOverflow  = smath.ErrOverflow
	ErrUnderflow = smath.ErrUnderflow

	ErrCurve             = errors.New("curve error")
	ErrNoLiquidityInPool = errors.New("no liquidity in pool")
	ErrInvalidFee        = errors.New("fee is greater than 100%")
	ErrInvariantViolated = errors.New("constant product invariant decreased")
)
