// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package ledger

import (
	"context"
	"testing"

	"github.com/ava-labs/avalanchego/ids"
	"github.com/stretchr/testify/require"

	"github.com/ava-labs/cpamm/codec"
	"github.com/ava-labs/cpamm/consts"
	"github.com/ava-labs/cpamm/curve"
	"github.com/ava-labs/cpamm/state"
	"github.com/ava-labs/cpamm/storage"
)

var (
	assetX = codec.CreateAddress(consts.ASSETID, ids.GenerateTestID())
	assetY = codec.CreateAddress(consts.ASSETID, ids.GenerateTestID())
	alice  = codec.CreateAddress(consts.ED25519ID, ids.GenerateTestID())
	bob    = codec.CreateAddress(consts.ED25519ID, ids.GenerateTestID())
)

// newPool returns a ledger holding a registered pool and its claim asset.
func newPool(t *testing.T) (*StateLedger, *state.InMemoryStore, codec.Address, codec.Address, *storage.PoolConfig) {
	r := require.New(t)
	ctx := context.Background()

	pool, configBump, err := storage.FindPoolAddress(1)
	r.NoError(err)
	lp, lpBump, err := storage.FindLPAddress(pool)
	r.NoError(err)
	cfg := &storage.PoolConfig{
		Seed:       1,
		AssetX:     assetX,
		AssetY:     assetY,
		FeeBps:     30,
		ConfigBump: configBump,
		LPBump:     lpBump,
	}

	mu := state.NewInMemoryStore()
	l := NewStateLedger(mu)
	r.NoError(l.CreateAsset(ctx, lp, pool))
	return l, mu, pool, lp, cfg
}

func TestTransfer(t *testing.T) {
	tests := []struct {
		name        string
		from        codec.Address
		signer      Signer
		amount      uint64
		expectedErr error
	}{
		{
			name:   "owner moves funds",
			from:   alice,
			signer: Caller(alice),
			amount: 40,
		},
		{
			name:   "zero amount",
			from:   alice,
			signer: Caller(alice),
			amount: 0,
		},
		{
			name:        "wrong signer",
			from:        alice,
			signer:      Caller(bob),
			amount:      1,
			expectedErr: ErrUnauthorized,
		},
		{
			name:        "more than balance",
			from:        alice,
			signer:      Caller(alice),
			amount:      101,
			expectedErr: ErrInsufficientBalance,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := require.New(t)
			ctx := context.Background()
			l := NewStateLedger(state.NewInMemoryStore())
			r.NoError(l.Issue(ctx, assetX, alice, 100))

			err := l.Transfer(ctx, assetX, tt.from, bob, tt.amount, tt.signer)
			r.ErrorIs(err, tt.expectedErr)

			aliceBal, err := storage.GetBalance(ctx, l.mu, assetX, alice)
			r.NoError(err)
			bobBal, err := storage.GetBalance(ctx, l.mu, assetX, bob)
			r.NoError(err)
			if tt.expectedErr != nil {
				r.Equal(uint64(100), aliceBal)
				r.Zero(bobBal)
				return
			}
			r.Equal(100-tt.amount, aliceBal)
			r.Equal(tt.amount, bobBal)
		})
	}
}

func TestTransferOverflow(t *testing.T) {
	r := require.New(t)
	ctx := context.Background()
	l := NewStateLedger(state.NewInMemoryStore())

	r.NoError(storage.SetBalance(ctx, l.mu, assetX, alice, 1))
	r.NoError(storage.SetBalance(ctx, l.mu, assetX, bob, consts.MaxUint64))
	r.ErrorIs(l.Transfer(ctx, assetX, alice, bob, 1, Caller(alice)), curve.ErrOverflow)
}

func TestPoolCustody(t *testing.T) {
	r := require.New(t)
	ctx := context.Background()
	l, _, pool, _, cfg := newPool(t)

	r.NoError(l.Issue(ctx, assetX, alice, 10))
	r.NoError(l.Transfer(ctx, assetX, alice, pool, 10, Caller(alice)))

	// A caller signer can never move pool funds, even when it names the pool.
	r.ErrorIs(l.Transfer(ctx, assetX, pool, alice, 1, Caller(pool)), ErrUnauthorized)

	signer, err := l.PoolSigner(ctx, pool, cfg)
	r.NoError(err)
	r.Equal(pool, signer.Address())
	r.NoError(l.Transfer(ctx, assetX, pool, alice, 10, signer))

	other, _, err := storage.FindPoolAddress(2)
	r.NoError(err)
	r.ErrorIs(l.Transfer(ctx, assetX, other, alice, 1, signer), ErrUnauthorized)

	bad := *cfg
	bad.Seed = 2
	_, err = l.PoolSigner(ctx, pool, &bad)
	r.ErrorIs(err, ErrBumpError)
}

func TestMintBurn(t *testing.T) {
	r := require.New(t)
	ctx := context.Background()
	l, mu, pool, lp, cfg := newPool(t)

	r.ErrorIs(l.CreateAsset(ctx, lp, pool), ErrAssetExists)
	r.ErrorIs(l.Mint(ctx, lp, alice, 5, Caller(alice)), ErrUnauthorized)

	signer, err := l.PoolSigner(ctx, pool, cfg)
	r.NoError(err)
	r.NoError(l.Mint(ctx, lp, alice, 500, signer))

	reserves, err := l.Reserves(ctx, pool, cfg)
	r.NoError(err)
	r.Equal(Reserves{LPSupply: 500}, reserves)

	r.ErrorIs(l.Burn(ctx, lp, alice, 1, Caller(bob)), ErrUnauthorized)
	r.ErrorIs(l.Burn(ctx, lp, alice, 501, Caller(alice)), ErrInsufficientBalance)
	r.NoError(l.Burn(ctx, lp, alice, 500, Caller(alice)))

	reserves, err = l.Reserves(ctx, pool, cfg)
	r.NoError(err)
	r.True(reserves.Empty())

	// Only the asset record remains.
	r.Len(mu.Storage, 1)

	missing := codec.CreateAddress(consts.LPASSETID, ids.GenerateTestID())
	r.ErrorIs(l.Mint(ctx, missing, alice, 1, signer), ErrAssetNotFound)
}

func TestReserves(t *testing.T) {
	r := require.New(t)
	ctx := context.Background()
	l, _, pool, _, cfg := newPool(t)

	r.NoError(l.Issue(ctx, assetX, alice, 1_007))
	r.NoError(l.Issue(ctx, assetY, alice, 2_000))
	r.NoError(l.Transfer(ctx, assetX, alice, pool, 1_000, Caller(alice)))
	r.NoError(l.Transfer(ctx, assetY, alice, pool, 2_000, Caller(alice)))

	reserves, err := l.Reserves(ctx, pool, cfg)
	r.NoError(err)
	r.Equal(Reserves{X: 1_000, Y: 2_000}, reserves)

	bad := *cfg
	bad.ConfigBump++
	_, err = l.Reserves(ctx, pool, &bad)
	r.ErrorIs(err, ErrBumpError)
}

func TestIssue(t *testing.T) {
	r := require.New(t)
	ctx := context.Background()
	l, _, _, lp, _ := newPool(t)

	r.NoError(l.Issue(ctx, assetX, alice, consts.MaxUint64))
	r.ErrorIs(l.Issue(ctx, assetX, bob, 1), curve.ErrOverflow)
	r.ErrorIs(l.Issue(ctx, lp, alice, 1), ErrUnauthorized)

	info, err := storage.GetAsset(ctx, l.mu, assetX)
	r.NoError(err)
	r.Equal(consts.MaxUint64, info.Supply)
	_, ok := info.MintAuthority.Get()
	r.False(ok)
}

func TestIssueToPool(t *testing.T) {
	r := require.New(t)
	ctx := context.Background()
	l, _, pool, _, cfg := newPool(t)

	r.ErrorIs(l.Issue(ctx, assetX, pool, 1_000), ErrPoolRecipient)

	reserves, err := l.Reserves(ctx, pool, cfg)
	r.NoError(err)
	r.True(reserves.Empty())
	_, err = storage.GetAsset(ctx, l.mu, assetX)
	r.ErrorIs(err, ErrAssetNotFound)
}
