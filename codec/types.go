// Copyright (C) 2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package codec

// Typed is implemented by every operation and operation result so
// callers can switch on the kind without reflection.
type Typed interface {
	GetTypeID() uint8
}
