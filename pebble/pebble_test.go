// Copyright (C) 2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package pebble

import (
	"context"
	"crypto/rand"
	"fmt"
	"testing"

	"github.com/ava-labs/avalanchego/database"
	"github.com/stretchr/testify/require"
)

const batchSize = 100_000

func randBytes() []byte {
	b := make([]byte, 32)
	_, err := rand.Read(b)
	if err != nil {
		panic(err)
	}
	return b
}

func newTestDB(t testing.TB) *Database {
	cfg := NewDefaultConfig()
	cfg.CacheSize = 8 * 1024 * 1024
	cfg.Sync = false
	db, registry, err := New(t.TempDir(), cfg)
	require.NoError(t, err)
	require.NotNil(t, registry)
	return db
}

func TestWriteBatch(t *testing.T) {
	require := require.New(t)
	ctx := context.Background()

	db := newTestDB(t)
	require.NoError(db.WriteBatch(ctx, map[string][]byte{
		"pool":    {1, 2, 3},
		"balance": {4},
	}))
	v, err := db.GetValue(ctx, []byte("pool"))
	require.NoError(err)
	require.Equal([]byte{1, 2, 3}, v)

	// A nil value deletes.
	require.NoError(db.WriteBatch(ctx, map[string][]byte{
		"pool":    nil,
		"balance": {5},
	}))
	_, err = db.GetValue(ctx, []byte("pool"))
	require.ErrorIs(err, database.ErrNotFound)
	v, err = db.GetValue(ctx, []byte("balance"))
	require.NoError(err)
	require.Equal([]byte{5}, v)

	require.NoError(db.Close())
}

func TestPutDelete(t *testing.T) {
	require := require.New(t)
	ctx := context.Background()

	db := newTestDB(t)
	require.NoError(db.Put([]byte("k"), []byte("v")))
	v, err := db.GetValue(ctx, []byte("k"))
	require.NoError(err)
	require.Equal([]byte("v"), v)

	require.NoError(db.Delete([]byte("k")))
	_, err = db.GetValue(ctx, []byte("k"))
	require.ErrorIs(err, database.ErrNotFound)
	require.NoError(db.Close())
}

func BenchmarkBatchInsertion(b *testing.B) {
	for _, sync := range []bool{false, true} {
		b.Run(fmt.Sprintf("sync=%t", sync), func(b *testing.B) {
			// Setup DB
			b.StopTimer()
			cfg := NewDefaultConfig()
			cfg.Sync = sync
			db, _, err := New(b.TempDir(), cfg)
			if err != nil {
				b.Fatal(err)
			}

			// Setup keys
			keys := make([][]byte, batchSize)
			for i := 0; i < batchSize; i++ {
				keys[i] = randBytes()
			}

			b.StartTimer()
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				changes := make(map[string][]byte, batchSize)
				for j := 0; j < batchSize; j++ {
					changes[string(keys[j])] = randBytes()
				}
				if err := db.WriteBatch(context.Background(), changes); err != nil {
					b.Fatal(err)
				}
			}
			b.StopTimer()

			if err := db.Close(); err != nil {
				b.Fatal(err)
			}
		})
	}
}
