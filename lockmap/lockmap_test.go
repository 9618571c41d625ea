// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package lockmap

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLockUnlock(t *testing.T) {
	require := require.New(t)

	l := New(4)
	l.Lock("pool")
	l.RLock("balance")
	require.Equal(2, l.Locks())

	l.Unlock("pool")
	require.Equal(1, l.Locks())
	l.RUnlock("balance")
	require.Zero(l.Locks())

	// A released key can be taken again.
	l.Lock("pool")
	l.Unlock("pool")
	require.Zero(l.Locks())
}

func TestSharedReaders(t *testing.T) {
	require := require.New(t)

	l := New(1)
	l.RLock("pool")
	l.RLock("pool")
	require.Equal(1, l.Locks())
	l.RUnlock("pool")
	require.Equal(1, l.Locks())
	l.RUnlock("pool")
	require.Zero(l.Locks())
}

func TestWriterExclusion(t *testing.T) {
	require := require.New(t)

	var (
		l       = New(1)
		wg      sync.WaitGroup
		counter int
	)
	for i := 0; i < 64; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				l.Lock("pool")
				counter++
				l.Unlock("pool")
			}
		}()
	}
	wg.Wait()
	require.Equal(6400, counter)
	require.Zero(l.Locks())
}
