// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package actions

import (
	"context"

	"github.com/ava-labs/cpamm/chain"
	"github.com/ava-labs/cpamm/codec"
	"github.com/ava-labs/cpamm/consts"
	"github.com/ava-labs/cpamm/curve"
	"github.com/ava-labs/cpamm/ledger"
	"github.com/ava-labs/cpamm/state"
)

var (
	_ codec.Typed  = (*SwapResult)(nil)
	_ chain.Action = (*Swap)(nil)
)

type SwapResult struct {
	AmountIn  uint64        `json:"amountIn"`
	AmountOut uint64        `json:"amountOut"`
	AssetOut  codec.Address `json:"assetOut"`
}

func (*SwapResult) GetTypeID() uint8 {
	return consts.SwapID
}

// Swap sells [AmountIn] of one pool asset for the other. [Direction] is
// [curve.X] to sell X for Y and [curve.Y] to sell Y for X.
//
// Swaps are accepted while the pool is locked.
type Swap struct {
	Pool   codec.Address `json:"pool"`
	AssetX codec.Address `json:"assetX"`
	AssetY codec.Address `json:"assetY"`

	Direction uint8  `json:"direction"`
	AmountIn  uint64 `json:"amountIn"`
	MinOut    uint64 `json:"minOut"`
}

func (*Swap) GetTypeID() uint8 {
	return consts.SwapID
}

func (s *Swap) PoolAddress() codec.Address {
	return s.Pool
}

func (s *Swap) StateKeys(actor codec.Address) state.Keys {
	return tradeKeys(s.Pool, s.AssetX, s.AssetY, actor)
}

func (s *Swap) Execute(
	ctx context.Context,
	l ledger.Ledger,
	mu state.Mutable,
	_ int64,
	actor codec.Address,
) (codec.Typed, error) {
	cfg, err := loadPool(ctx, mu, s.Pool, s.AssetX, s.AssetY)
	if err != nil {
		return nil, err
	}
	in := curve.Pair(s.Direction)
	if in != curve.X && in != curve.Y {
		return nil, ErrInvalidDirection
	}
	if s.AmountIn == 0 {
		return nil, ErrInvalidAmount
	}
	cp, err := loadCurve(ctx, l, s.Pool, cfg)
	if err != nil {
		return nil, err
	}
	res, err := cp.Swap(in, s.AmountIn)
	if err != nil {
		return nil, err
	}
	if res.Withdraw < s.MinOut {
		return nil, ErrSlippageExceeded
	}
	poolSigner, err := l.PoolSigner(ctx, s.Pool, cfg)
	if err != nil {
		return nil, err
	}

	assetIn, assetOut := cfg.AssetX, cfg.AssetY
	if in == curve.Y {
		assetIn, assetOut = assetOut, assetIn
	}
	if err := l.Transfer(ctx, assetIn, actor, s.Pool, res.Deposit, ledger.Caller(actor)); err != nil {
		return nil, err
	}
	if err := l.Transfer(ctx, assetOut, s.Pool, actor, res.Withdraw, poolSigner); err != nil {
		return nil, err
	}
	return &SwapResult{
		AmountIn:  res.Deposit,
		AmountOut: res.Withdraw,
		AssetOut:  assetOut,
	}, nil
}
