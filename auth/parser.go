// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package auth

import (
	"github.com/ava-labs/cpamm/chain"
	"github.com/ava-labs/cpamm/consts"
)

// Parse decodes an authorization produced by [chain.Auth.Bytes].
func Parse(b []byte) (chain.Auth, error) {
	if len(b) == 0 {
		return nil, ErrInvalidAuthSize
	}
	switch b[0] {
	case consts.ED25519ID:
		return UnmarshalED25519(b)
	default:
		return nil, ErrInvalidKeyType
	}
}
