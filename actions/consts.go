// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package actions

import (
	"github.com/ava-labs/cpamm/chain"
	"github.com/ava-labs/cpamm/codec"
)

// ActionParser decodes every operation the pool accepts.
var ActionParser *codec.TypeParser[chain.Action]

// OutputParser decodes every operation result.
var OutputParser *codec.TypeParser[codec.Typed]

func init() {
	ActionParser = codec.NewTypeParser[chain.Action]()
	OutputParser = codec.NewTypeParser[codec.Typed]()

	for _, f := range []func() chain.Action{
		func() chain.Action { return &Initialize{} },
		func() chain.Action { return &Deposit{} },
		func() chain.Action { return &Withdraw{} },
		func() chain.Action { return &Swap{} },
		func() chain.Action { return &Lock{} },
		func() chain.Action { return &Unlock{} },
	} {
		if err := ActionParser.Register(f); err != nil {
			panic(err)
		}
	}
	for _, f := range []func() codec.Typed{
		func() codec.Typed { return &InitializeResult{} },
		func() codec.Typed { return &DepositResult{} },
		func() codec.Typed { return &WithdrawResult{} },
		func() codec.Typed { return &SwapResult{} },
		func() codec.Typed { return &LockResult{} },
		func() codec.Typed { return &UnlockResult{} },
	} {
		if err := OutputParser.Register(f); err != nil {
			panic(err)
		}
	}
}
