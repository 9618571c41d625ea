// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

import (
	"context"

	"github.com/ava-labs/cpamm/codec"
)

// Auth proves that [Actor] approved a transaction digest.
type Auth interface {
	codec.Typed

	// Verify checks the authorization against [msg]. It performs no state
	// reads.
	Verify(ctx context.Context, msg []byte) error

	// Actor is the account the action runs on behalf of.
	Actor() codec.Address

	// Bytes returns the encoded authorization, type byte first.
	Bytes() []byte
}

// AuthFactory produces [Auth] for a single key.
type AuthFactory interface {
	Sign(msg []byte) (Auth, error)
	Address() codec.Address
}

// AuthParser decodes the output of [Auth.Bytes].
type AuthParser func([]byte) (Auth, error)
