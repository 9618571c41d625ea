// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package storage

import "errors"

var (
	ErrBumpError       = errors.New("bump error")
	ErrNoValidBump     = errors.New("no valid bump")
	ErrPoolNotFound    = errors.New("pool not found")
	ErrAssetNotFound   = errors.New("asset not found")
	ErrCorruptedRecord = errors.New("corrupted record")
)
