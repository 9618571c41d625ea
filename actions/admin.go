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
	_ codec.Typed  = (*LockResult)(nil)
	_ codec.Typed  = (*UnlockResult)(nil)
	_ chain.Action = (*Lock)(nil)
	_ chain.Action = (*Unlock)(nil)
)

type LockResult struct {
	Locked bool `json:"locked"`
}

func (*LockResult) GetTypeID() uint8 {
	return consts.LockID
}

type UnlockResult struct {
	Locked bool `json:"locked"`
}

func (*UnlockResult) GetTypeID() uint8 {
	return consts.UnlockID
}

// Lock stops deposits and withdrawals on [Pool].
type Lock struct {
	Pool codec.Address `json:"pool"`
}

func (*Lock) GetTypeID() uint8 {
	return consts.LockID
}

func (l *Lock) PoolAddress() codec.Address {
	return l.Pool
}

func (l *Lock) StateKeys(codec.Address) state.Keys {
	return adminKeys(l.Pool)
}

func (l *Lock) Execute(
	ctx context.Context,
	_ ledger.Ledger,
	mu state.Mutable,
	_ int64,
	actor codec.Address,
) (codec.Typed, error) {
	if err := setLocked(ctx, mu, l.Pool, actor, true); err != nil {
		return nil, err
	}
	return &LockResult{Locked: true}, nil
}

// Unlock reopens [Pool] for deposits and withdrawals.
type Unlock struct {
	Pool codec.Address `json:"pool"`
}

func (*Unlock) GetTypeID() uint8 {
	return consts.UnlockID
}

func (u *Unlock) PoolAddress() codec.Address {
	return u.Pool
}

func (u *Unlock) StateKeys(codec.Address) state.Keys {
	return adminKeys(u.Pool)
}

func (u *Unlock) Execute(
	ctx context.Context,
	_ ledger.Ledger,
	mu state.Mutable,
	_ int64,
	actor codec.Address,
) (codec.Typed, error) {
	if err := setLocked(ctx, mu, u.Pool, actor, false); err != nil {
		return nil, err
	}
	return &UnlockResult{Locked: false}, nil
}

func adminKeys(pool codec.Address) state.Keys {
	return state.Keys{
		string(storage.PoolKey(pool)): state.Write,
	}
}

// setLocked is idempotent: locking a locked pool succeeds.
func setLocked(
	ctx context.Context,
	mu state.Mutable,
	pool codec.Address,
	actor codec.Address,
	locked bool,
) error {
	cfg, err := storage.GetPool(ctx, mu, pool)
	if err != nil {
		return err
	}
	authority, ok := cfg.Authority.Get()
	if !ok {
		return ErrNoAuthoritySet
	}
	if authority != actor {
		return ErrInvalidAuthority
	}
	cfg.Locked = locked
	return storage.SetPool(ctx, mu, pool, cfg)
}
