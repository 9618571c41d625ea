// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package curve implements constant-product pricing over exact integers.
//
// Every amount the pool receives is rounded up and every amount the pool
// pays out is rounded down, which keeps reserveX * reserveY from ever
// decreasing. Intermediate products are computed in 256 bits and the result
// is range checked back into a uint64.
package curve

import (
	"github.com/holiman/uint256"

	"github.com/ava-labs/cpamm/consts"

	smath "github.com/ava-labs/avalanchego/utils/math"
)

// mulDiv returns a*b/d rounded down, or up when [roundUp] is set.
// [d] must be non-zero.
func mulDiv(a, b, d uint64, roundUp bool) (uint64, error) {
	num := new(uint256.Int).Mul(uint256.NewInt(a), uint256.NewInt(b))
	den := uint256.NewInt(d)
	q := new(uint256.Int).Div(num, den)
	if roundUp && !new(uint256.Int).Mod(num, den).IsZero() {
		q.AddUint64(q, 1)
	}
	if !q.IsUint64() {
		return 0, ErrOverflow
	}
	return q.Uint64(), nil
}

// DepositAmounts returns the amount of X and Y a depositor must pay into a
// funded pool to receive [desiredLP] claim units.
//
// The first deposit into an empty pool is not derivable: the depositor
// supplies both amounts and so sets the initial price.
func DepositAmounts(reserveX, reserveY, lpSupply, desiredLP uint64) (uint64, uint64, error) {
	if lpSupply == 0 || reserveX == 0 || reserveY == 0 {
		return 0, 0, ErrCurve
	}
	amountX, err := mulDiv(desiredLP, reserveX, lpSupply, true)
	if err != nil {
		return 0, 0, err
	}
	amountY, err := mulDiv(desiredLP, reserveY, lpSupply, true)
	if err != nil {
		return 0, 0, err
	}
	return amountX, amountY, nil
}

// WithdrawAmounts returns the amount of X and Y paid out for burning
// [burnLP] claim units.
func WithdrawAmounts(reserveX, reserveY, lpSupply, burnLP uint64) (uint64, uint64, error) {
	if lpSupply == 0 {
		return 0, 0, ErrNoLiquidityInPool
	}
	if burnLP > lpSupply {
		return 0, 0, ErrUnderflow
	}
	amountX, err := mulDiv(burnLP, reserveX, lpSupply, false)
	if err != nil {
		return 0, 0, err
	}
	amountY, err := mulDiv(burnLP, reserveY, lpSupply, false)
	if err != nil {
		return 0, 0, err
	}
	return amountX, amountY, nil
}

// AmountAfterFee deducts [feeBps] from [amountIn], rounding down.
func AmountAfterFee(amountIn uint64, feeBps uint16) (uint64, error) {
	if uint64(feeBps) >= consts.BasisPoints {
		return 0, ErrInvalidFee
	}
	return mulDiv(amountIn, consts.BasisPoints-uint64(feeBps), consts.BasisPoints, false)
}

// SwapOutput returns the amount of the out asset paid for [amountIn] of the
// in asset.
func SwapOutput(reserveIn, reserveOut, amountIn uint64, feeBps uint16) (uint64, error) {
	if uint64(feeBps) >= consts.BasisPoints {
		return 0, ErrInvalidFee
	}
	if reserveIn == 0 || reserveOut == 0 {
		return 0, ErrNoLiquidityInPool
	}
	inAfterFee, err := AmountAfterFee(amountIn, feeBps)
	if err != nil {
		return 0, err
	}
	newReserveIn, err := smath.Add(reserveIn, inAfterFee)
	if err != nil {
		return 0, err
	}
	// The reserve left on the out side is rounded up, so the output is
	// rounded down. newReserveIn >= reserveIn keeps remaining <= reserveOut.
	remaining, err := mulDiv(reserveIn, reserveOut, newReserveIn, true)
	if err != nil {
		return 0, err
	}
	return smath.Sub(reserveOut, remaining)
}

// K returns the pool invariant reserveX * reserveY.
func K(reserveX, reserveY uint64) *uint256.Int {
	return new(uint256.Int).Mul(uint256.NewInt(reserveX), uint256.NewInt(reserveY))
}

// CheckInvariant errors if the product of the reserves decreased.
func CheckInvariant(beforeX, beforeY, afterX, afterY uint64) error {
	if K(afterX, afterY).Lt(K(beforeX, beforeY)) {
		return ErrInvariantViolated
	}
	return nil
}
