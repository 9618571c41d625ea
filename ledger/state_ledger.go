// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package ledger

import (
	"context"
	"errors"
	"fmt"

	"github.com/ava-labs/cpamm/codec"
	"github.com/ava-labs/cpamm/consts"
	"github.com/ava-labs/cpamm/state"
	"github.com/ava-labs/cpamm/storage"

	smath "github.com/ava-labs/avalanchego/utils/math"
)

var _ Ledger = (*StateLedger)(nil)

// StateLedger keeps balances and supplies in [state.Mutable]. It does not
// roll back on its own: callers run it over a view that is dropped on error.
type StateLedger struct {
	mu state.Mutable
}

func NewStateLedger(mu state.Mutable) *StateLedger {
	return &StateLedger{mu: mu}
}

func (l *StateLedger) Reserves(
	ctx context.Context,
	pool codec.Address,
	cfg *storage.PoolConfig,
) (Reserves, error) {
	lp, err := storage.VerifyPoolAddress(pool, cfg)
	if err != nil {
		return Reserves{}, err
	}
	x, err := storage.GetBalance(ctx, l.mu, cfg.AssetX, pool)
	if err != nil {
		return Reserves{}, err
	}
	y, err := storage.GetBalance(ctx, l.mu, cfg.AssetY, pool)
	if err != nil {
		return Reserves{}, err
	}
	info, err := storage.GetAsset(ctx, l.mu, lp)
	if err != nil {
		return Reserves{}, err
	}
	return Reserves{X: x, Y: y, LPSupply: info.Supply}, nil
}

func (*StateLedger) PoolSigner(
	_ context.Context,
	pool codec.Address,
	cfg *storage.PoolConfig,
) (Signer, error) {
	if _, err := storage.VerifyPoolAddress(pool, cfg); err != nil {
		return nil, err
	}
	return &poolSigner{pool: pool}, nil
}

func (l *StateLedger) CreateAsset(
	ctx context.Context,
	asset codec.Address,
	mintAuthority codec.Address,
) error {
	_, err := storage.GetAsset(ctx, l.mu, asset)
	switch {
	case err == nil:
		return ErrAssetExists
	case !errors.Is(err, storage.ErrAssetNotFound):
		return err
	}
	return storage.SetAsset(ctx, l.mu, asset, &storage.AssetInfo{
		MintAuthority: storage.SomeAuthority(mintAuthority),
	})
}

func (l *StateLedger) Transfer(
	ctx context.Context,
	asset codec.Address,
	from codec.Address,
	to codec.Address,
	amount uint64,
	signer Signer,
) error {
	if !authorized(signer, from) {
		return fmt.Errorf("%w: %s cannot spend from %s", ErrUnauthorized, signer.Address(), from)
	}
	if amount == 0 || from == to {
		return nil
	}
	fromBal, err := storage.GetBalance(ctx, l.mu, asset, from)
	if err != nil {
		return err
	}
	if fromBal < amount {
		return fmt.Errorf("%w: %s holds %d of %s, needs %d", ErrInsufficientBalance, from, fromBal, asset, amount)
	}
	toBal, err := storage.GetBalance(ctx, l.mu, asset, to)
	if err != nil {
		return err
	}
	newTo, err := smath.Add(toBal, amount)
	if err != nil {
		return err
	}
	if err := storage.SetBalance(ctx, l.mu, asset, from, fromBal-amount); err != nil {
		return err
	}
	return storage.SetBalance(ctx, l.mu, asset, to, newTo)
}

func (l *StateLedger) Mint(
	ctx context.Context,
	asset codec.Address,
	to codec.Address,
	amount uint64,
	signer Signer,
) error {
	info, err := storage.GetAsset(ctx, l.mu, asset)
	if err != nil {
		return err
	}
	authority, ok := info.MintAuthority.Get()
	if !ok || !authorized(signer, authority) {
		return fmt.Errorf("%w: %s cannot mint %s", ErrUnauthorized, signer.Address(), asset)
	}
	return l.credit(ctx, asset, info, to, amount)
}

func (l *StateLedger) Burn(
	ctx context.Context,
	asset codec.Address,
	from codec.Address,
	amount uint64,
	signer Signer,
) error {
	if !authorized(signer, from) {
		return fmt.Errorf("%w: %s cannot burn from %s", ErrUnauthorized, signer.Address(), from)
	}
	info, err := storage.GetAsset(ctx, l.mu, asset)
	if err != nil {
		return err
	}
	bal, err := storage.GetBalance(ctx, l.mu, asset, from)
	if err != nil {
		return err
	}
	if bal < amount {
		return fmt.Errorf("%w: %s holds %d of %s, needs %d", ErrInsufficientBalance, from, bal, asset, amount)
	}
	newSupply, err := smath.Sub(info.Supply, amount)
	if err != nil {
		return err
	}
	if err := storage.SetBalance(ctx, l.mu, asset, from, bal-amount); err != nil {
		return err
	}
	info.Supply = newSupply
	return storage.SetAsset(ctx, l.mu, asset, info)
}

// Issue creates [amount] of a plain asset out of thin air. It backs the
// test-mode faucet and genesis allocations. It cannot issue claim assets
// or credit a pool vault.
func (l *StateLedger) Issue(
	ctx context.Context,
	asset codec.Address,
	to codec.Address,
	amount uint64,
) error {
	if asset.TypeID() != consts.ASSETID {
		return fmt.Errorf("%w: cannot issue %s", ErrUnauthorized, asset)
	}
	if to.TypeID() == consts.POOLID {
		return fmt.Errorf("%w: %s", ErrPoolRecipient, to)
	}
	info, err := storage.GetAsset(ctx, l.mu, asset)
	switch {
	case errors.Is(err, storage.ErrAssetNotFound):
		info = &storage.AssetInfo{}
	case err != nil:
		return err
	}
	return l.credit(ctx, asset, info, to, amount)
}

func (l *StateLedger) credit(
	ctx context.Context,
	asset codec.Address,
	info *storage.AssetInfo,
	to codec.Address,
	amount uint64,
) error {
	newSupply, err := smath.Add(info.Supply, amount)
	if err != nil {
		return err
	}
	bal, err := storage.GetBalance(ctx, l.mu, asset, to)
	if err != nil {
		return err
	}
	newBal, err := smath.Add(bal, amount)
	if err != nil {
		return err
	}
	if err := storage.SetBalance(ctx, l.mu, asset, to, newBal); err != nil {
		return err
	}
	info.Supply = newSupply
	return storage.SetAsset(ctx, l.mu, asset, info)
}
