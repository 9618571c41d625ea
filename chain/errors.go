// Copyright (C) 2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

import "errors"

var (
	// Parsing
	ErrInvalidObject      = errors.New("invalid object")
	ErrNonCanonicalTx     = errors.New("transaction is not canonically encoded")
	ErrMissingAuth        = errors.New("transaction is not signed")
	ErrMissingAction      = errors.New("transaction has no action")
	ErrUnknownTransaction = errors.New("unknown transaction")

	// Pre-execution
	ErrOfferExpired      = errors.New("offer expired")
	ErrTimestampTooEarly = errors.New("timestamp too early")
	ErrInvalidChainID    = errors.New("invalid chain id")
	ErrInvalidSignature  = errors.New("invalid signature")
	ErrDuplicateTx       = errors.New("duplicate transaction")
)
