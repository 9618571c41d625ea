// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package rpc

import (
	"context"

	"github.com/ava-labs/avalanchego/ids"

	"github.com/ava-labs/cpamm/chain"
	"github.com/ava-labs/cpamm/codec"
	"github.com/ava-labs/cpamm/state"
)

var _ Processor = (*chain.Processor)(nil)

type Processor interface {
	ChainID() ids.ID
	Execute(ctx context.Context, tx *chain.Transaction, timestamp int64) (*chain.Result, error)
	Issue(ctx context.Context, asset codec.Address, to codec.Address, amount uint64) error
	Read(ctx context.Context, keys state.Keys, f func(state.Mutable) error) error
}
