// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package actions

import (
	"context"
	"testing"

	"github.com/ava-labs/avalanchego/ids"
	"github.com/stretchr/testify/require"

	"github.com/ava-labs/cpamm/codec"
	"github.com/ava-labs/cpamm/consts"
	"github.com/ava-labs/cpamm/ledger"
	"github.com/ava-labs/cpamm/state"
	"github.com/ava-labs/cpamm/storage"
)

const testSeed = 1

var (
	assetX = codec.CreateAddress(consts.ASSETID, ids.GenerateTestID())
	assetY = codec.CreateAddress(consts.ASSETID, ids.GenerateTestID())
	alice  = codec.CreateAddress(consts.ED25519ID, ids.GenerateTestID())
	bob    = codec.CreateAddress(consts.ED25519ID, ids.GenerateTestID())
)

// newPool initializes a pool and funds alice and bob with 10_000 of each
// asset.
func newPool(t testing.TB, feeBps uint16, authority *codec.Address) (*state.InMemoryStore, codec.Address) {
	r := require.New(t)
	ctx := context.Background()
	mu := state.NewInMemoryStore()
	l := ledger.NewStateLedger(mu)

	action := &Initialize{
		Seed:   testSeed,
		AssetX: assetX,
		AssetY: assetY,
		FeeBps: feeBps,
	}
	if authority != nil {
		action.Authority = codec.SomeAddress(*authority)
	}
	out, err := action.Execute(ctx, l, mu, 0, alice)
	r.NoError(err)

	for _, actor := range []codec.Address{alice, bob} {
		r.NoError(l.Issue(ctx, assetX, actor, 10_000))
		r.NoError(l.Issue(ctx, assetY, actor, 10_000))
	}
	return mu, out.(*InitializeResult).Pool
}

// seed deposits [x] and [y] from alice for [lp] claim units.
func seed(t testing.TB, mu state.Mutable, pool codec.Address, lp, x, y uint64) {
	_, err := (&Deposit{
		Pool:      pool,
		AssetX:    assetX,
		AssetY:    assetY,
		DesiredLP: lp,
		MaxX:      x,
		MaxY:      y,
	}).Execute(context.Background(), ledger.NewStateLedger(mu), mu, 0, alice)
	require.NoError(t, err)
}

func balance(t testing.TB, im state.Immutable, asset, owner codec.Address) uint64 {
	bal, err := storage.GetBalance(context.Background(), im, asset, owner)
	require.NoError(t, err)
	return bal
}

func reserves(t testing.TB, mu state.Mutable, pool codec.Address) ledger.Reserves {
	ctx := context.Background()
	cfg, err := storage.GetPool(ctx, mu, pool)
	require.NoError(t, err)
	res, err := ledger.NewStateLedger(mu).Reserves(ctx, pool, cfg)
	require.NoError(t, err)
	return res
}
