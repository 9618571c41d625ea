// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package ledger

import (
	"github.com/ava-labs/cpamm/codec"
	"github.com/ava-labs/cpamm/consts"
)

// Signer authorizes ledger operations on behalf of [Signer.Address].
type Signer interface {
	Address() codec.Address

	sealed()
}

var (
	_ Signer = callerSigner{}
	_ Signer = (*poolSigner)(nil)
)

type callerSigner struct {
	addr codec.Address
}

// Caller returns a signer for an actor whose signature the host has already
// verified. It never authorizes pool custody.
func Caller(actor codec.Address) Signer {
	return callerSigner{addr: actor}
}

func (c callerSigner) Address() codec.Address { return c.addr }

func (callerSigner) sealed() {}

// poolSigner is only handed out after the pool address was re-derived.
type poolSigner struct {
	pool codec.Address
}

func (p *poolSigner) Address() codec.Address { return p.pool }

func (*poolSigner) sealed() {}

// authorized reports whether [s] may act for [addr].
func authorized(s Signer, addr codec.Address) bool {
	switch s := s.(type) {
	case *poolSigner:
		return s.pool == addr
	case callerSigner:
		return addr.TypeID() != consts.POOLID && s.addr == addr
	default:
		return false
	}
}
