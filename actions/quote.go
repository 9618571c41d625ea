// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package actions

import (
	"context"

	"github.com/ava-labs/cpamm/codec"
	"github.com/ava-labs/cpamm/curve"
	"github.com/ava-labs/cpamm/ledger"
	"github.com/ava-labs/cpamm/state"
	"github.com/ava-labs/cpamm/storage"
)

// ReserveKeys lists the keys read by [ledger.Ledger.Reserves] for [pool].
func ReserveKeys(pool codec.Address, cfg *storage.PoolConfig) state.Keys {
	return state.Keys{
		string(storage.PoolKey(pool)):                   state.Read,
		string(storage.AssetKey(storage.LPAsset(pool))): state.Read,
		string(storage.BalanceKey(cfg.AssetX, pool)):    state.Read,
		string(storage.BalanceKey(cfg.AssetY, pool)):    state.Read,
	}
}

// QuoteSwap prices a swap against the current reserves without moving
// anything. Slippage is not checked.
func QuoteSwap(
	ctx context.Context,
	im state.Immutable,
	l ledger.Ledger,
	pool codec.Address,
	direction uint8,
	amountIn uint64,
) (*SwapResult, error) {
	cfg, err := storage.GetPool(ctx, im, pool)
	if err != nil {
		return nil, err
	}
	in := curve.Pair(direction)
	if in != curve.X && in != curve.Y {
		return nil, ErrInvalidDirection
	}
	cp, err := loadCurve(ctx, l, pool, cfg)
	if err != nil {
		return nil, err
	}
	res, err := cp.Swap(in, amountIn)
	if err != nil {
		return nil, err
	}
	assetOut := cfg.AssetY
	if in == curve.Y {
		assetOut = cfg.AssetX
	}
	return &SwapResult{
		AmountIn:  res.Deposit,
		AmountOut: res.Withdraw,
		AssetOut:  assetOut,
	}, nil
}

// QuoteDeposit returns the amounts owed for [desiredLP] claim units. An
// empty pool has no quote since its first depositor picks the price.
func QuoteDeposit(
	ctx context.Context,
	im state.Immutable,
	l ledger.Ledger,
	pool codec.Address,
	desiredLP uint64,
) (*DepositResult, error) {
	cfg, err := storage.GetPool(ctx, im, pool)
	if err != nil {
		return nil, err
	}
	reserves, err := l.Reserves(ctx, pool, cfg)
	if err != nil {
		return nil, err
	}
	amountX, amountY, err := curve.DepositAmounts(reserves.X, reserves.Y, reserves.LPSupply, desiredLP)
	if err != nil {
		return nil, err
	}
	return &DepositResult{
		AmountX: amountX,
		AmountY: amountY,
		Issued:  desiredLP,
	}, nil
}

// QuoteWithdraw returns the amounts paid for burning [burnLP] claim units.
func QuoteWithdraw(
	ctx context.Context,
	im state.Immutable,
	l ledger.Ledger,
	pool codec.Address,
	burnLP uint64,
) (*WithdrawResult, error) {
	cfg, err := storage.GetPool(ctx, im, pool)
	if err != nil {
		return nil, err
	}
	cp, err := loadCurve(ctx, l, pool, cfg)
	if err != nil {
		return nil, err
	}
	amountX, amountY, err := cp.Withdraw(burnLP)
	if err != nil {
		return nil, err
	}
	return &WithdrawResult{
		AmountX: amountX,
		AmountY: amountY,
		Burned:  burnLP,
	}, nil
}
