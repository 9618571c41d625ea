// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package codec

import (
	"encoding/json"
	"testing"

	"github.com/ava-labs/avalanchego/ids"
	"github.com/near/borsh-go"
	"github.com/stretchr/testify/require"
)

func TestOptionalAddressBorsh(t *testing.T) {
	addr := CreateAddress(1, ids.GenerateTestID())
	tests := []struct {
		name    string
		value   OptionalAddress
		encoded []byte
	}{
		{
			name:    "absent",
			value:   OptionalAddress{},
			encoded: []byte{0},
		},
		{
			name:    "present",
			value:   SomeAddress(addr),
			encoded: append([]byte{1}, addr[:]...),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := require.New(t)

			b, err := borsh.Serialize(tt.value)
			r.NoError(err)
			r.Equal(tt.encoded, b)

			var decoded OptionalAddress
			r.NoError(borsh.Deserialize(&decoded, b))
			r.Equal(tt.value, decoded)

			want, wantOK := tt.value.Get()
			got, ok := decoded.Get()
			r.Equal(wantOK, ok)
			r.Equal(want, got)

			// Re-encoding the decoded value is byte identical.
			again, err := borsh.Serialize(decoded)
			r.NoError(err)
			r.Equal(b, again)
		})
	}
}

func TestOptionalAddressInvalidTag(t *testing.T) {
	var decoded OptionalAddress
	require.Error(t, borsh.Deserialize(&decoded, []byte{2}))
}

func TestOptionalAddressJSON(t *testing.T) {
	r := require.New(t)
	addr := CreateAddress(1, ids.GenerateTestID())

	b, err := json.Marshal(OptionalAddress{})
	r.NoError(err)
	r.Equal("null", string(b))

	b, err = json.Marshal(SomeAddress(addr))
	r.NoError(err)
	var decoded OptionalAddress
	r.NoError(json.Unmarshal(b, &decoded))
	got, ok := decoded.Get()
	r.True(ok)
	r.Equal(addr, got)

	r.NoError(json.Unmarshal([]byte("null"), &decoded))
	_, ok = decoded.Get()
	r.False(ok)
}
