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
	_ codec.Typed  = (*DepositResult)(nil)
	_ chain.Action = (*Deposit)(nil)
)

type DepositResult struct {
	AmountX uint64 `json:"amountX"`
	AmountY uint64 `json:"amountY"`
	Issued  uint64 `json:"issued"`
}

func (*DepositResult) GetTypeID() uint8 {
	return consts.DepositID
}

// Deposit adds both assets to [Pool] in exchange for [DesiredLP] claim
// units. The first deposit into an empty pool takes [MaxX] and [MaxY] as
// given and so sets the initial price.
type Deposit struct {
	Pool   codec.Address `json:"pool"`
	AssetX codec.Address `json:"assetX"`
	AssetY codec.Address `json:"assetY"`

	DesiredLP uint64 `json:"desiredLP"`
	MaxX      uint64 `json:"maxX"`
	MaxY      uint64 `json:"maxY"`
}

func (*Deposit) GetTypeID() uint8 {
	return consts.DepositID
}

func (d *Deposit) PoolAddress() codec.Address {
	return d.Pool
}

func (d *Deposit) StateKeys(actor codec.Address) state.Keys {
	return tradeKeys(d.Pool, d.AssetX, d.AssetY, actor)
}

func (d *Deposit) Execute(
	ctx context.Context,
	l ledger.Ledger,
	mu state.Mutable,
	_ int64,
	actor codec.Address,
) (codec.Typed, error) {
	cfg, err := loadPool(ctx, mu, d.Pool, d.AssetX, d.AssetY)
	if err != nil {
		return nil, err
	}
	if cfg.Locked {
		return nil, ErrPoolLocked
	}
	if d.DesiredLP == 0 {
		return nil, ErrInvalidAmount
	}
	cp, err := loadCurve(ctx, l, d.Pool, cfg)
	if err != nil {
		return nil, err
	}
	// An initial deposit missing either side would leave claims on an
	// unpriceable pool.
	if cp.Empty() && (d.MaxX == 0 || d.MaxY == 0) {
		return nil, ErrInvalidAmount
	}
	amountX, amountY, err := cp.Deposit(d.DesiredLP, d.MaxX, d.MaxY)
	if err != nil {
		return nil, err
	}
	if amountX > d.MaxX || amountY > d.MaxY {
		return nil, ErrSlippageExceeded
	}
	lp, err := storage.VerifyPoolAddress(d.Pool, cfg)
	if err != nil {
		return nil, err
	}
	poolSigner, err := l.PoolSigner(ctx, d.Pool, cfg)
	if err != nil {
		return nil, err
	}

	caller := ledger.Caller(actor)
	if err := l.Transfer(ctx, cfg.AssetX, actor, d.Pool, amountX, caller); err != nil {
		return nil, err
	}
	if err := l.Transfer(ctx, cfg.AssetY, actor, d.Pool, amountY, caller); err != nil {
		return nil, err
	}
	if err := l.Mint(ctx, lp, actor, d.DesiredLP, poolSigner); err != nil {
		return nil, err
	}
	return &DepositResult{
		AmountX: amountX,
		AmountY: amountY,
		Issued:  d.DesiredLP,
	}, nil
}
