// Copyright (C) 2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package ed25519

import (
	"bytes"
	"crypto/ed25519"
	"crypto/rand"
	"encoding/json"
	"testing"

	"github.com/oasisprotocol/curve25519-voi/primitives/ed25519/extra/cache"
	"github.com/stretchr/testify/require"

	oed25519 "github.com/oasisprotocol/curve25519-voi/primitives/ed25519"
)

var zip215 = &oed25519.Options{
	Verify: oed25519.VerifyOptionsZIP_215,
}

// seededKey returns the key derived from a seed filled with [b].
func seededKey(b byte) PrivateKey {
	return PrivateKey(ed25519.NewKeyFromSeed(bytes.Repeat([]byte{b}, PrivateKeySeedLen)))
}

func TestGeneratePrivateKey(t *testing.T) {
	require := require.New(t)

	seen := make(map[PrivateKey]struct{})
	for i := 0; i < 10; i++ {
		priv, err := GeneratePrivateKey()
		require.NoError(err)
		require.NotEqual(EmptyPrivateKey, priv)
		require.NotContains(seen, priv)
		seen[priv] = struct{}{}

		pub := priv.PublicKey()
		require.NotEqual(EmptyPublicKey, pub)
		require.Equal(priv[PrivateKeySeedLen:], pub[:])
	}
}

func TestSignMatchesStdlib(t *testing.T) {
	require := require.New(t)

	priv := seededKey(7)
	msg := []byte("swap 100 x for y")
	sig := Sign(msg, priv)
	require.Equal(ed25519.Sign(priv[:], msg), sig[:])
}

func TestVerify(t *testing.T) {
	priv := seededKey(1)
	other := seededKey(2)
	msg := []byte("deposit")
	sig := Sign(msg, priv)
	tampered := sig
	tampered[10] ^= 0xff

	tests := []struct {
		name  string
		msg   []byte
		pub   PublicKey
		sig   Signature
		valid bool
	}{
		{
			name:  "valid",
			msg:   msg,
			pub:   priv.PublicKey(),
			sig:   sig,
			valid: true,
		},
		{
			name: "different message",
			msg:  []byte("withdraw"),
			pub:  priv.PublicKey(),
			sig:  sig,
		},
		{
			name: "different signer",
			msg:  msg,
			pub:  other.PublicKey(),
			sig:  sig,
		},
		{
			name: "tampered signature",
			msg:  msg,
			pub:  priv.PublicKey(),
			sig:  tampered,
		},
		{
			name: "empty signature",
			msg:  msg,
			pub:  priv.PublicKey(),
			sig:  EmptySignature,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.valid, Verify(tt.msg, tt.pub, tt.sig))
		})
	}
}

func TestZIP215Compatible(t *testing.T) {
	require := require.New(t)

	for i := 0; i < 32; i++ {
		priv, err := GeneratePrivateKey()
		require.NoError(err)
		msg := make([]byte, 96)
		_, err = rand.Read(msg)
		require.NoError(err)
		sig := Sign(msg, priv)
		pub := priv.PublicKey()

		require.True(Verify(msg, pub, sig))
		require.True(oed25519.VerifyWithOptions(pub[:], msg, sig[:], zip215))

		sig[0]++
		require.False(Verify(msg, pub, sig))
		require.False(oed25519.VerifyWithOptions(pub[:], msg, sig[:], zip215))
	}
}

func TestPrivateKeyHex(t *testing.T) {
	require := require.New(t)

	priv := seededKey(3)
	decoded, err := PrivateKeyFromHex(priv.String())
	require.NoError(err)
	require.Equal(priv, decoded)

	_, err = PrivateKeyFromHex("0x1234")
	require.ErrorIs(err, ErrInvalidPrivateKey)
	_, err = PrivateKeyFromHex("not hex")
	require.ErrorIs(err, ErrInvalidPrivateKey)
}

func TestTextEncoding(t *testing.T) {
	require := require.New(t)

	priv := seededKey(4)
	pub := priv.PublicKey()
	sig := Sign([]byte("lock"), priv)

	b, err := json.Marshal(struct {
		Pub PublicKey `json:"pub"`
		Sig Signature `json:"sig"`
	}{pub, sig})
	require.NoError(err)

	var decoded struct {
		Pub PublicKey `json:"pub"`
		Sig Signature `json:"sig"`
	}
	require.NoError(json.Unmarshal(b, &decoded))
	require.Equal(pub, decoded.Pub)
	require.Equal(sig, decoded.Sig)

	require.ErrorIs(decoded.Pub.UnmarshalText([]byte("00")), ErrInvalidPublicKey)
	require.ErrorIs(decoded.Sig.UnmarshalText([]byte("00")), ErrInvalidSignature)
}

func BenchmarkVerify(b *testing.B) {
	msg := make([]byte, 128)
	_, err := rand.Read(msg)
	require.NoError(b, err)
	priv := seededKey(5)
	pub := priv.PublicKey()
	sig := Sign(msg, priv)

	b.Run("consensus", func(b *testing.B) {
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			if !Verify(msg, pub, sig) {
				b.Fatal("invalid signature")
			}
		}
	})
	b.Run("oasis-cache", func(b *testing.B) {
		verifier := cache.NewVerifier(cache.NewLRUCache(1024))
		verifier.AddPublicKey(pub[:])
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			if !verifier.VerifyWithOptions(pub[:], msg, sig[:], zip215) {
				b.Fatal("invalid signature")
			}
		}
	})
}
