// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package actions

import (
	"context"

	"github.com/ava-labs/cpamm/chain"
	"github.com/ava-labs/cpamm/codec"
	"github.com/ava-labs/cpamm/consts"
	"github.com/ava-labs/cpamm/ledger"
	"github.com/ava-labs/cpamm/state"
	"github.com/ava-labs/cpamm/storage"
)

var (
	_ codec.Typed  = (*WithdrawResult)(nil)
	_ chain.Action = (*Withdraw)(nil)
)

type WithdrawResult struct {
	AmountX uint64 `json:"amountX"`
	AmountY uint64 `json:"amountY"`
	Burned  uint64 `json:"burned"`
}

func (*WithdrawResult) GetTypeID() uint8 {
	return consts.WithdrawID
}

// Withdraw burns [BurnLP] claim units for a proportional share of both
// reserves, rounded down.
type Withdraw struct {
	Pool   codec.Address `json:"pool"`
	AssetX codec.Address `json:"assetX"`
	AssetY codec.Address `json:"assetY"`

	BurnLP uint64 `json:"burnLP"`
	MinX   uint64 `json:"minX"`
	MinY   uint64 `json:"minY"`
}

func (*Withdraw) GetTypeID() uint8 {
	return consts.WithdrawID
}

func (w *Withdraw) PoolAddress() codec.Address {
	return w.Pool
}

func (w *Withdraw) StateKeys(actor codec.Address) state.Keys {
	return tradeKeys(w.Pool, w.AssetX, w.AssetY, actor)
}

func (w *Withdraw) Execute(
	ctx context.Context,
	l ledger.Ledger,
	mu state.Mutable,
	_ int64,
	actor codec.Address,
) (codec.Typed, error) {
	cfg, err := loadPool(ctx, mu, w.Pool, w.AssetX, w.AssetY)
	if err != nil {
		return nil, err
	}
	if cfg.Locked {
		return nil, ErrPoolLocked
	}
	if w.BurnLP == 0 {
		return nil, ErrInvalidAmount
	}
	cp, err := loadCurve(ctx, l, w.Pool, cfg)
	if err != nil {
		return nil, err
	}
	amountX, amountY, err := cp.Withdraw(w.BurnLP)
	if err != nil {
		return nil, err
	}
	if amountX == 0 && amountY == 0 {
		return nil, ErrLiquidityLessThanMinimum
	}
	if amountX < w.MinX || amountY < w.MinY {
		return nil, ErrSlippageExceeded
	}
	lp, err := storage.VerifyPoolAddress(w.Pool, cfg)
	if err != nil {
		return nil, err
	}
	poolSigner, err := l.PoolSigner(ctx, w.Pool, cfg)
	if err != nil {
		return nil, err
	}

	if err := l.Burn(ctx, lp, actor, w.BurnLP, ledger.Caller(actor)); err != nil {
		return nil, err
	}
	if err := l.Transfer(ctx, cfg.AssetX, w.Pool, actor, amountX, poolSigner); err != nil {
		return nil, err
	}
	if err := l.Transfer(ctx, cfg.AssetY, w.Pool, actor, amountY, poolSigner); err != nil {
		return nil, err
	}
	return &WithdrawResult{
		AmountX: amountX,
		AmountY: amountY,
		Burned:  w.BurnLP,
	}, nil
}
