// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package ledger

import (
	"errors"

	"github.com/ava-labs/cpamm/storage"
)

var (
	ErrInsufficientBalance = errors.New("insufficient balance")
	ErrUnauthorized        = errors.New("unauthorized")
	ErrAssetExists         = errors.New("asset already exists")
	ErrPoolRecipient       = errors.New("cannot issue to a pool")
	ErrBumpError           = storage.ErrBumpError
	ErrAssetNotFound       = storage.ErrAssetNotFound
)
