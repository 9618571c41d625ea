// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package auth

import "errors"

var (
	ErrInvalidAuthSize  = errors.New("invalid auth size")
	ErrUnexpectedTypeID = errors.New("unexpected auth type")
	ErrInvalidKeyType   = errors.New("invalid key type")
)
