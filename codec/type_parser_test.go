// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package codec

import (
	"testing"

	"github.com/ava-labs/avalanchego/ids"
	"github.com/stretchr/testify/require"
)

type Blah1 struct {
	Amount uint64
	To     Address
}

func (*Blah1) GetTypeID() uint8 { return 0 }

type Blah2 struct {
	Enabled bool
	Fee     uint16
}

func (*Blah2) GetTypeID() uint8 { return 1 }

type Blah3 struct{}

func (*Blah3) GetTypeID() uint8 { return 1 }

func TestTypeParser(t *testing.T) {
	tp := NewTypeParser[Typed]()

	t.Run("empty parser", func(t *testing.T) {
		require := require.New(t)
		_, err := tp.New(0)
		require.ErrorIs(err, ErrUnknownType)
		_, err = tp.Unmarshal(nil)
		require.ErrorIs(err, ErrInvalidSize)
	})

	t.Run("populated parser", func(t *testing.T) {
		require := require.New(t)

		require.NoError(tp.Register(func() Typed { return &Blah1{} }))
		require.NoError(tp.Register(func() Typed { return &Blah2{} }))

		v, err := tp.New(0)
		require.NoError(err)
		require.IsType(&Blah1{}, v)

		v, err = tp.New(1)
		require.NoError(err)
		require.IsType(&Blah2{}, v)
	})

	t.Run("duplicate item", func(t *testing.T) {
		err := tp.Register(func() Typed { return &Blah3{} })
		require.ErrorIs(t, err, ErrDuplicateItem)
	})

	t.Run("round trip", func(t *testing.T) {
		require := require.New(t)

		in := &Blah1{
			Amount: 1_000,
			To:     CreateAddress(2, ids.GenerateTestID()),
		}
		b, err := Marshal(in)
		require.NoError(err)
		require.Equal(byte(0), b[0])
		require.Len(b, 1+8+AddressLen)

		out, err := tp.Unmarshal(b)
		require.NoError(err)
		require.Equal(in, out)

		b, err = Marshal(&Blah2{Enabled: true, Fee: 30})
		require.NoError(err)
		require.Equal([]byte{1, 1, 30, 0}, b)
	})

	t.Run("unknown type", func(t *testing.T) {
		_, err := tp.Unmarshal([]byte{9})
		require.ErrorIs(t, err, ErrUnknownType)
	})
}
