// Copyright (C) 2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package tstate

import (
	"sync"

	"github.com/ava-labs/avalanchego/utils/maybe"
)

// TState collects the changes of every committed [TStateView] so they can
// be written to the database in a single batch.
type TState struct {
	l           sync.Mutex
	ops         int
	changedKeys map[string]maybe.Maybe[[]byte]
}

// New returns a new instance of TState.
//
// [changedSize] is an estimate of the number of keys that will be changed.
func New(changedSize int) *TState {
	return &TState{
		changedKeys: make(map[string]maybe.Maybe[[]byte], changedSize),
	}
}

func (ts *TState) getChangedValue(key string) ([]byte, bool, bool) {
	ts.l.Lock()
	defer ts.l.Unlock()

	if v, ok := ts.changedKeys[key]; ok {
		if v.IsNothing() {
			return nil, true, false
		}
		return v.Value(), true, true
	}
	return nil, false, false
}

// OpIndex returns the number of operations committed to ts.
func (ts *TState) OpIndex() int {
	ts.l.Lock()
	defer ts.l.Unlock()

	return ts.ops
}

// ChangedKeys returns every committed change. A nil value marks a deletion.
//
// Once ChangedKeys is called, [TState] should not be used again.
func (ts *TState) ChangedKeys() map[string][]byte {
	ts.l.Lock()
	defer ts.l.Unlock()

	changes := make(map[string][]byte, len(ts.changedKeys))
	for k, v := range ts.changedKeys {
		if v.IsNothing() {
			changes[k] = nil
			continue
		}
		changes[k] = v.Value()
	}
	return changes
}
