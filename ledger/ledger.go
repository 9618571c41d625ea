// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package ledger defines the custody collaborator the pool operations move
// assets through, and a reference implementation backed by [state.Mutable].
package ledger

//go:generate go run go.uber.org/mock/mockgen -package=ledger -destination=mock_ledger.go . Ledger

import (
	"context"

	"github.com/ava-labs/cpamm/codec"
	"github.com/ava-labs/cpamm/storage"
)

// Reserves is a consistent snapshot of a pool's vault balances and the
// outstanding supply of its claim asset.
type Reserves struct {
	X        uint64 `json:"x"`
	Y        uint64 `json:"y"`
	LPSupply uint64 `json:"lpSupply"`
}

// Empty is true when the pool holds nothing and nothing is owed.
func (r Reserves) Empty() bool {
	return r.X == 0 && r.Y == 0 && r.LPSupply == 0
}

// Ledger moves and issues assets. Every mutating call is exact: it either
// applies the full amount or fails without effect.
type Ledger interface {
	// Reserves reads the vault balances of [pool] and the supply of its
	// claim asset. It fails with [ErrBumpError] if [cfg] does not derive
	// [pool].
	Reserves(ctx context.Context, pool codec.Address, cfg *storage.PoolConfig) (Reserves, error)

	// PoolSigner returns the capability to move assets out of [pool] and to
	// issue or burn its claim asset.
	PoolSigner(ctx context.Context, pool codec.Address, cfg *storage.PoolConfig) (Signer, error)

	// CreateAsset registers [asset] with a zero supply.
	CreateAsset(ctx context.Context, asset codec.Address, mintAuthority codec.Address) error

	Transfer(
		ctx context.Context,
		asset codec.Address,
		from codec.Address,
		to codec.Address,
		amount uint64,
		signer Signer,
	) error

	Mint(
		ctx context.Context,
		asset codec.Address,
		to codec.Address,
		amount uint64,
		signer Signer,
	) error

	Burn(
		ctx context.Context,
		asset codec.Address,
		from codec.Address,
		amount uint64,
		signer Signer,
	) error
}
