// Copyright (C) 2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package state

import "context"

type Immutable interface {
	GetValue(ctx context.Context, key []byte) (value []byte, err error)
}

type Mutable interface {
	Immutable

	Insert(ctx context.Context, key []byte, value []byte) error
	Remove(ctx context.Context, key []byte) error
}

// Database is the persistent store a transactional view is committed to.
type Database interface {
	Immutable

	// WriteBatch atomically applies every change in [changes]. A nil value
	// deletes the key.
	WriteBatch(ctx context.Context, changes map[string][]byte) error
}
