// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package state

import (
	"context"
	"testing"

	"github.com/ava-labs/avalanchego/database"
	"github.com/stretchr/testify/require"
)

func TestPermissionsHas(t *testing.T) {
	tests := []struct {
		name    string
		have    Permissions
		require Permissions
		has     bool
	}{
		{name: "read has read", have: Read, require: Read, has: true},
		{name: "read lacks write", have: Read, require: Write, has: false},
		{name: "all has write", have: All, require: Write, has: true},
		{name: "write has read", have: Write, require: Read, has: true},
		{name: "none has none", have: None, require: None, has: true},
		{name: "allocate lacks write", have: Allocate, require: Write, has: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.has, tt.have.Has(tt.require))
		})
	}
}

func TestKeysAddMerges(t *testing.T) {
	require := require.New(t)
	k := Keys{}
	k.Add("pool", Read)
	k.Add("pool", Write)
	require.True(k["pool"].Has(Write))
	require.True(k["pool"].Has(Read))
	require.False(k["pool"].Has(Allocate))
}

func TestInMemoryStoreWriteBatch(t *testing.T) {
	require := require.New(t)
	ctx := context.Background()
	s := NewInMemoryStore()
	require.NoError(s.Insert(ctx, []byte("a"), []byte{1}))

	require.NoError(s.WriteBatch(ctx, map[string][]byte{
		"a": nil,
		"b": {2},
	}))
	_, err := s.GetValue(ctx, []byte("a"))
	require.ErrorIs(err, database.ErrNotFound)
	v, err := s.GetValue(ctx, []byte("b"))
	require.NoError(err)
	require.Equal([]byte{2}, v)
}
