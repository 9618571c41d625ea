// Copyright (C) 2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package utils

import (
	"os"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestToIDDeterministic(t *testing.T) {
	require := require.New(t)
	require.Equal(ToID([]byte("pool")), ToID([]byte("pool")))
	require.NotEqual(ToID([]byte("pool")), ToID([]byte("lp")))
}

func TestInitSubDirectory(t *testing.T) {
	require := require.New(t)
	p, err := InitSubDirectory(t.TempDir(), "db")
	require.NoError(err)
	info, err := os.Stat(p)
	require.NoError(err)
	require.True(info.IsDir())
}

func TestUnixRMilli(t *testing.T) {
	require := require.New(t)
	require.Equal(int64(42), UnixRMilli(42))
	require.Positive(UnixRMilli(-1))
}
