// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package actions

import (
	"errors"

	"github.com/ava-labs/cpamm/storage"
)

var (
	// Administration errors
	ErrPoolLocked       = errors.New("pool is locked")
	ErrInvalidAuthority = errors.New("invalid authority")
	ErrNoAuthoritySet   = errors.New("no authority set")

	// Input errors
	ErrInvalidAmount            = errors.New("invalid amount")
	ErrSlippageExceeded         = errors.New("slippage exceeded")
	ErrInvalidToken             = errors.New("invalid token")
	ErrInvalidFee               = errors.New("fee must be less than 10000 basis points")
	ErrInvalidDirection         = errors.New("invalid swap direction")
	ErrLiquidityLessThanMinimum = errors.New("liquidity less than minimum")

	// Pool errors
	ErrPoolExists   = errors.New("pool already exists")
	ErrPoolNotFound = storage.ErrPoolNotFound
)
