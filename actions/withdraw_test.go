// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package actions

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ava-labs/cpamm/chain/chaintest"
	"github.com/ava-labs/cpamm/curve"
	"github.com/ava-labs/cpamm/ledger"
	"github.com/ava-labs/cpamm/state"
	"github.com/ava-labs/cpamm/storage"
)

func TestWithdraw(t *testing.T) {
	mu, pool := newPool(t, 30, nil)
	seed(t, mu, pool, 700, 1_000, 500)
	lp := storage.LPAsset(pool)

	tests := []chaintest.ActionTest{
		{
			Name: "zero burn",
			Action: &Withdraw{
				Pool:   pool,
				AssetX: assetX,
				AssetY: assetY,
			},
			State:       mu,
			Actor:       alice,
			ExpectedErr: ErrInvalidAmount,
		},
		{
			Name: "wrong asset",
			Action: &Withdraw{
				Pool:   pool,
				AssetX: assetY,
				AssetY: assetX,
				BurnLP: 7,
			},
			State:       mu,
			Actor:       alice,
			ExpectedErr: ErrInvalidToken,
		},
		{
			Name: "min x too high",
			Action: &Withdraw{
				Pool:   pool,
				AssetX: assetX,
				AssetY: assetY,
				BurnLP: 7,
				MinX:   11,
			},
			State:       mu,
			Actor:       alice,
			ExpectedErr: ErrSlippageExceeded,
		},
		{
			Name: "burn more than supply",
			Action: &Withdraw{
				Pool:   pool,
				AssetX: assetX,
				AssetY: assetY,
				BurnLP: 701,
			},
			State:       mu,
			Actor:       alice,
			ExpectedErr: curve.ErrUnderflow,
		},
		{
			Name: "partial withdraw",
			Action: &Withdraw{
				Pool:   pool,
				AssetX: assetX,
				AssetY: assetY,
				BurnLP: 7,
				MinX:   10,
				MinY:   5,
			},
			State: mu,
			Actor: alice,
			ExpectedOutputs: &WithdrawResult{
				AmountX: 10,
				AmountY: 5,
				Burned:  7,
			},
			Assertion: func(_ context.Context, t *testing.T, m state.Mutable) {
				require := require.New(t)
				require.Equal(ledger.Reserves{X: 990, Y: 495, LPSupply: 693}, reserves(t, m, pool))
				require.Equal(uint64(9_010), balance(t, m, assetX, alice))
				require.Equal(uint64(9_505), balance(t, m, assetY, alice))
				require.Equal(uint64(693), balance(t, m, lp, alice))
			},
		},
		{
			Name: "no claims held",
			Action: &Withdraw{
				Pool:   pool,
				AssetX: assetX,
				AssetY: assetY,
				BurnLP: 1,
			},
			State:       mu,
			Actor:       bob,
			ExpectedErr: ledger.ErrInsufficientBalance,
		},
		{
			Name: "full withdraw drains pool",
			Action: &Withdraw{
				Pool:   pool,
				AssetX: assetX,
				AssetY: assetY,
				BurnLP: 693,
			},
			State: mu,
			Actor: alice,
			ExpectedOutputs: &WithdrawResult{
				AmountX: 990,
				AmountY: 495,
				Burned:  693,
			},
			Assertion: func(_ context.Context, t *testing.T, m state.Mutable) {
				require := require.New(t)
				require.True(reserves(t, m, pool).Empty())
				require.Equal(uint64(10_000), balance(t, m, assetX, alice))
				require.Equal(uint64(10_000), balance(t, m, assetY, alice))
			},
		},
		{
			Name: "empty pool",
			Action: &Withdraw{
				Pool:   pool,
				AssetX: assetX,
				AssetY: assetY,
				BurnLP: 1,
			},
			State:       mu,
			Actor:       alice,
			ExpectedErr: curve.ErrNoLiquidityInPool,
		},
	}

	for _, tt := range tests {
		tt.Run(context.Background(), t)
	}
}

func TestWithdrawDust(t *testing.T) {
	mu, pool := newPool(t, 30, nil)
	seed(t, mu, pool, 1_000, 1, 1)

	test := chaintest.ActionTest{
		Name: "rounds to nothing",
		Action: &Withdraw{
			Pool:   pool,
			AssetX: assetX,
			AssetY: assetY,
			BurnLP: 1,
		},
		State:       mu,
		Actor:       alice,
		ExpectedErr: ErrLiquidityLessThanMinimum,
	}
	test.Run(context.Background(), t)
}
