// Copyright (C) 2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

import (
	"fmt"

	"github.com/ava-labs/avalanchego/ids"
)

type Base struct {
	// Timestamp is the expiry of the transaction (inclusive) in unix
	// milliseconds. Once this time passes the transaction can no longer
	// execute and it is safe to regenerate it.
	Timestamp int64 `json:"timestamp"`

	// ChainID protects against replay attacks on different instances.
	ChainID ids.ID `json:"chainId"`
}

// Execute checks that the transaction may run at [timestamp]. Expiries
// further out than [validityWindow] are refused so the replay set stays
// bounded.
func (b *Base) Execute(chainID ids.ID, validityWindow int64, timestamp int64) error {
	switch {
	case b.Timestamp < timestamp: // tx: 100 now: 110
		return fmt.Errorf("%w: expiry=%d now=%d", ErrOfferExpired, b.Timestamp, timestamp)
	case b.Timestamp > timestamp+validityWindow: // tx: 100 now: 10
		return fmt.Errorf("%w: expiry=%d now=%d", ErrTimestampTooEarly, b.Timestamp, timestamp)
	case b.ChainID != chainID:
		return ErrInvalidChainID
	default:
		return nil
	}
}
