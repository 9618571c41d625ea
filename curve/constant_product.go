// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package curve

import (
	"github.com/ava-labs/cpamm/consts"

	smath "github.com/ava-labs/avalanchego/utils/math"
)

// Pair names the side of the pool an amount belongs to.
type Pair uint8

const (
	X Pair = iota
	Y
)

func (p Pair) String() string {
	switch p {
	case X:
		return "x"
	case Y:
		return "y"
	default:
		return "unknown"
	}
}

// Opposite returns the other side of the pool.
func (p Pair) Opposite() Pair {
	if p == X {
		return Y
	}
	return X
}

// SwapResult is the pair of amounts a swap moves: [Deposit] into the pool
// on the in side and [Withdraw] out of the pool on the other.
type SwapResult struct {
	Deposit  uint64
	Withdraw uint64
}

// ConstantProduct tracks a reserve snapshot and applies operations to it.
// It never touches balances; callers use the returned amounts to request
// transfers.
type ConstantProduct struct {
	reserveX uint64
	reserveY uint64
	lpSupply uint64
	feeBps   uint16
}

// NewConstantProduct returns a model over the given snapshot. A pool is
// either fully empty or fully funded, anything in between is [ErrCurve].
func NewConstantProduct(reserveX, reserveY, lpSupply uint64, feeBps uint16) (*ConstantProduct, error) {
	if uint64(feeBps) >= consts.BasisPoints {
		return nil, ErrInvalidFee
	}
	empty := reserveX == 0 && reserveY == 0
	if (lpSupply == 0) != empty {
		return nil, ErrCurve
	}
	if !empty && (reserveX == 0 || reserveY == 0) {
		return nil, ErrCurve
	}
	return &ConstantProduct{
		reserveX: reserveX,
		reserveY: reserveY,
		lpSupply: lpSupply,
		feeBps:   feeBps,
	}, nil
}

// Empty returns true if the pool holds nothing and has issued nothing.
func (c *ConstantProduct) Empty() bool {
	return c.lpSupply == 0 && c.reserveX == 0 && c.reserveY == 0
}

// Deposit returns the amounts owed for [desiredLP] claim units and applies
// them to the snapshot. The initial deposit takes [maxX] and [maxY] as is.
func (c *ConstantProduct) Deposit(desiredLP, maxX, maxY uint64) (uint64, uint64, error) {
	var (
		amountX, amountY uint64
		err              error
	)
	if c.Empty() {
		amountX, amountY = maxX, maxY
	} else {
		amountX, amountY, err = DepositAmounts(c.reserveX, c.reserveY, c.lpSupply, desiredLP)
		if err != nil {
			return 0, 0, err
		}
	}
	newX, err := smath.Add(c.reserveX, amountX)
	if err != nil {
		return 0, 0, err
	}
	newY, err := smath.Add(c.reserveY, amountY)
	if err != nil {
		return 0, 0, err
	}
	newSupply, err := smath.Add(c.lpSupply, desiredLP)
	if err != nil {
		return 0, 0, err
	}
	c.reserveX, c.reserveY, c.lpSupply = newX, newY, newSupply
	return amountX, amountY, nil
}

// Withdraw returns the amounts paid for burning [burnLP] claim units and
// applies them to the snapshot.
func (c *ConstantProduct) Withdraw(burnLP uint64) (uint64, uint64, error) {
	amountX, amountY, err := WithdrawAmounts(c.reserveX, c.reserveY, c.lpSupply, burnLP)
	if err != nil {
		return 0, 0, err
	}
	// Burning the whole supply drains the pool so it returns to empty.
	if burnLP == c.lpSupply {
		amountX, amountY = c.reserveX, c.reserveY
	}
	c.reserveX -= amountX
	c.reserveY -= amountY
	c.lpSupply -= burnLP
	return amountX, amountY, nil
}

// Swap prices [amountIn] of the [in] side and applies the trade.
func (c *ConstantProduct) Swap(in Pair, amountIn uint64) (SwapResult, error) {
	reserveIn, reserveOut := c.reserveX, c.reserveY
	if in == Y {
		reserveIn, reserveOut = c.reserveY, c.reserveX
	}
	amountOut, err := SwapOutput(reserveIn, reserveOut, amountIn, c.feeBps)
	if err != nil {
		return SwapResult{}, err
	}
	newIn, err := smath.Add(reserveIn, amountIn)
	if err != nil {
		return SwapResult{}, err
	}
	newOut := reserveOut - amountOut
	if err := CheckInvariant(reserveIn, reserveOut, newIn, newOut); err != nil {
		return SwapResult{}, err
	}
	if in == X {
		c.reserveX, c.reserveY = newIn, newOut
	} else {
		c.reserveY, c.reserveX = newIn, newOut
	}
	return SwapResult{Deposit: amountIn, Withdraw: amountOut}, nil
}

// Reserves returns the current snapshot.
func (c *ConstantProduct) Reserves() (uint64, uint64, uint64) {
	return c.reserveX, c.reserveY, c.lpSupply
}
