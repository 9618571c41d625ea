// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ava-labs/cpamm/consts"
	"github.com/ava-labs/cpamm/crypto/ed25519"
)

func TestED25519SignVerify(t *testing.T) {
	require := require.New(t)

	priv, err := ed25519.GeneratePrivateKey()
	require.NoError(err)
	factory := NewED25519Factory(priv)

	msg := []byte("deposit")
	auth, err := factory.Sign(msg)
	require.NoError(err)
	require.NoError(auth.Verify(context.Background(), msg))
	require.Equal(factory.Address(), auth.Actor())
	require.Equal(consts.ED25519ID, auth.Actor().TypeID())

	require.ErrorIs(auth.Verify(context.Background(), []byte("swap")), ed25519.ErrInvalidSignature)
}

func TestED25519Bytes(t *testing.T) {
	require := require.New(t)

	priv, err := ed25519.GeneratePrivateKey()
	require.NoError(err)
	auth, err := NewED25519Factory(priv).Sign([]byte("lock"))
	require.NoError(err)

	b := auth.Bytes()
	require.Len(b, ED25519Size)

	parsed, err := Parse(b)
	require.NoError(err)
	require.Equal(auth.Actor(), parsed.Actor())
	require.NoError(parsed.Verify(context.Background(), []byte("lock")))
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name  string
		bytes []byte
		err   error
	}{
		{
			name: "empty",
			err:  ErrInvalidAuthSize,
		},
		{
			name:  "unknown type",
			bytes: []byte{consts.POOLID},
			err:   ErrInvalidKeyType,
		},
		{
			name:  "truncated",
			bytes: []byte{consts.ED25519ID, 1, 2, 3},
			err:   ErrInvalidAuthSize,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.bytes)
			require.ErrorIs(t, err, tt.err)
		})
	}
}
