// Copyright (C) 2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package rpc

import "errors"

var (
	ErrFaucetDisabled     = errors.New("faucet is only available in test mode")
	ErrUnexpectedAction   = errors.New("transaction carries a different action")
	ErrUnexpectedResponse = errors.New("unexpected response")
)
