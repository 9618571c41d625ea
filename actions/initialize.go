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
	_ codec.Typed  = (*InitializeResult)(nil)
	_ chain.Action = (*Initialize)(nil)
)

type InitializeResult struct {
	Pool    codec.Address `json:"pool"`
	LPAsset codec.Address `json:"lpAsset"`
}

func (*InitializeResult) GetTypeID() uint8 {
	return consts.InitializeID
}

// Initialize creates the pool derived from [Seed] and its claim asset.
type Initialize struct {
	Seed   uint64        `json:"seed"`
	AssetX codec.Address `json:"assetX"`
	AssetY codec.Address `json:"assetY"`
	FeeBps uint16        `json:"feeBps"`

	// Authority may lock and unlock the pool. Leaving it absent disables
	// both for good.
	Authority codec.OptionalAddress `json:"authority"`
}

func (*Initialize) GetTypeID() uint8 {
	return consts.InitializeID
}

func (i *Initialize) PoolAddress() codec.Address {
	pool, _, err := storage.FindPoolAddress(i.Seed)
	if err != nil {
		return codec.EmptyAddress
	}
	return pool
}

func (i *Initialize) StateKeys(codec.Address) state.Keys {
	pool := i.PoolAddress()
	return state.Keys{
		string(storage.PoolKey(pool)):                   state.All,
		string(storage.AssetKey(storage.LPAsset(pool))): state.All,
	}
}

func (i *Initialize) Execute(
	ctx context.Context,
	l ledger.Ledger,
	mu state.Mutable,
	_ int64,
	_ codec.Address,
) (codec.Typed, error) {
	if uint64(i.FeeBps) >= consts.BasisPoints {
		return nil, ErrInvalidFee
	}
	if i.AssetX == i.AssetY {
		return nil, ErrInvalidToken
	}
	pool, configBump, err := storage.FindPoolAddress(i.Seed)
	if err != nil {
		return nil, err
	}
	lp, lpBump, err := storage.FindLPAddress(pool)
	if err != nil {
		return nil, err
	}
	exists, err := storage.PoolExists(ctx, mu, pool)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrPoolExists
	}

	cfg := &storage.PoolConfig{
		Seed:       i.Seed,
		AssetX:     i.AssetX,
		AssetY:     i.AssetY,
		FeeBps:     i.FeeBps,
		ConfigBump: configBump,
		LPBump:     lpBump,
	}
	if addr, ok := i.Authority.Get(); ok {
		cfg.Authority = storage.SomeAuthority(addr)
	}
	if err := l.CreateAsset(ctx, lp, pool); err != nil {
		return nil, err
	}
	if err := storage.SetPool(ctx, mu, pool, cfg); err != nil {
		return nil, err
	}
	return &InitializeResult{
		Pool:    pool,
		LPAsset: lp,
	}, nil
}
