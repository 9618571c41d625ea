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

// loadPool returns the config of [pool] after checking that the assets the
// caller named are the ones the pool trades.
func loadPool(
	ctx context.Context,
	im state.Immutable,
	pool codec.Address,
	assetX codec.Address,
	assetY codec.Address,
) (*storage.PoolConfig, error) {
	cfg, err := storage.GetPool(ctx, im, pool)
	if err != nil {
		return nil, err
	}
	if cfg.AssetX != assetX || cfg.AssetY != assetY {
		return nil, ErrInvalidToken
	}
	return cfg, nil
}

// loadCurve snapshots the reserves of [pool] into a pricing model.
func loadCurve(
	ctx context.Context,
	l ledger.Ledger,
	pool codec.Address,
	cfg *storage.PoolConfig,
) (*curve.ConstantProduct, error) {
	reserves, err := l.Reserves(ctx, pool, cfg)
	if err != nil {
		return nil, err
	}
	return curve.NewConstantProduct(reserves.X, reserves.Y, reserves.LPSupply, cfg.FeeBps)
}

// tradeKeys covers the pool config and claim asset plus every balance a
// trade by [actor] can move.
func tradeKeys(pool, assetX, assetY, actor codec.Address) state.Keys {
	lp := storage.LPAsset(pool)
	return state.Keys{
		string(storage.PoolKey(pool)):             state.Read,
		string(storage.AssetKey(lp)):              state.Write,
		string(storage.BalanceKey(assetX, actor)): state.All,
		string(storage.BalanceKey(assetY, actor)): state.All,
		string(storage.BalanceKey(lp, actor)):     state.All,
		string(storage.BalanceKey(assetX, pool)):  state.All,
		string(storage.BalanceKey(assetY, pool)):  state.All,
	}
}
