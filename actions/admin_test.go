// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package actions

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ava-labs/cpamm/chain/chaintest"
	"github.com/ava-labs/cpamm/curve"
	"github.com/ava-labs/cpamm/state"
	"github.com/ava-labs/cpamm/storage"
)

func TestLockUnlock(t *testing.T) {
	authority := alice
	mu, pool := newPool(t, 30, &authority)
	seed(t, mu, pool, 1_000, 1_000, 1_000)

	deposit := &Deposit{
		Pool:      pool,
		AssetX:    assetX,
		AssetY:    assetY,
		DesiredLP: 10,
		MaxX:      11,
		MaxY:      10,
	}
	isLocked := func(locked bool) func(context.Context, *testing.T, state.Mutable) {
		return func(ctx context.Context, t *testing.T, m state.Mutable) {
			cfg, err := storage.GetPool(ctx, m, pool)
			require.NoError(t, err)
			require.Equal(t, locked, cfg.Locked)
		}
	}

	tests := []chaintest.ActionTest{
		{
			Name:        "lock by stranger",
			Action:      &Lock{Pool: pool},
			State:       mu,
			Actor:       bob,
			ExpectedErr: ErrInvalidAuthority,
			Assertion:   isLocked(false),
		},
		{
			Name:            "lock by authority",
			Action:          &Lock{Pool: pool},
			State:           mu,
			Actor:           alice,
			ExpectedOutputs: &LockResult{Locked: true},
			Assertion:       isLocked(true),
		},
		{
			Name:            "lock is idempotent",
			Action:          &Lock{Pool: pool},
			State:           mu,
			Actor:           alice,
			ExpectedOutputs: &LockResult{Locked: true},
			Assertion:       isLocked(true),
		},
		{
			Name:        "deposit into locked pool",
			Action:      deposit,
			State:       mu,
			Actor:       bob,
			ExpectedErr: ErrPoolLocked,
		},
		{
			Name: "withdraw from locked pool",
			Action: &Withdraw{
				Pool:   pool,
				AssetX: assetX,
				AssetY: assetY,
				BurnLP: 10,
			},
			State:       mu,
			Actor:       alice,
			ExpectedErr: ErrPoolLocked,
		},
		{
			Name: "swap ignores lock",
			Action: &Swap{
				Pool:      pool,
				AssetX:    assetX,
				AssetY:    assetY,
				Direction: uint8(curve.X),
				AmountIn:  100,
			},
			State: mu,
			Actor: bob,
			ExpectedOutputs: &SwapResult{
				AmountIn:  100,
				AmountOut: 90,
				AssetOut:  assetY,
			},
		},
		{
			Name:        "unlock by stranger",
			Action:      &Unlock{Pool: pool},
			State:       mu,
			Actor:       bob,
			ExpectedErr: ErrInvalidAuthority,
			Assertion:   isLocked(true),
		},
		{
			Name:            "unlock by authority",
			Action:          &Unlock{Pool: pool},
			State:           mu,
			Actor:           alice,
			ExpectedOutputs: &UnlockResult{Locked: false},
			Assertion:       isLocked(false),
		},
		{
			Name:   "deposit after unlock",
			Action: deposit,
			State:  mu,
			Actor:  bob,
			ExpectedOutputs: &DepositResult{
				AmountX: 11,
				AmountY: 10,
				Issued:  10,
			},
		},
	}

	for _, tt := range tests {
		tt.Run(context.Background(), t)
	}
}

func TestNoAuthority(t *testing.T) {
	mu, pool := newPool(t, 30, nil)

	tests := []chaintest.ActionTest{
		{
			Name:        "lock",
			Action:      &Lock{Pool: pool},
			State:       mu,
			Actor:       alice,
			ExpectedErr: ErrNoAuthoritySet,
		},
		{
			Name:        "unlock",
			Action:      &Unlock{Pool: pool},
			State:       mu,
			Actor:       alice,
			ExpectedErr: ErrNoAuthoritySet,
		},
	}

	for _, tt := range tests {
		tt.Run(context.Background(), t)
	}
}
