// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

import (
	"context"

	"github.com/ava-labs/cpamm/codec"
	"github.com/ava-labs/cpamm/ledger"
	"github.com/ava-labs/cpamm/state"
)

// Action is a single pool operation.
type Action interface {
	codec.Typed

	// PoolAddress returns the pool the action runs against. Actions on the
	// same pool never execute concurrently.
	PoolAddress() codec.Address

	// StateKeys lists every key Execute may touch and how. Execute cannot
	// read or write anything outside of this set.
	StateKeys(actor codec.Address) state.Keys

	// Execute validates the action and applies it through [l]. It must not
	// call [l] or write to [mu] until every check has passed, so a failed
	// action leaves no partial effects behind even without a rollback.
	Execute(
		ctx context.Context,
		l ledger.Ledger,
		mu state.Mutable,
		timestamp int64,
		actor codec.Address,
	) (codec.Typed, error)
}
