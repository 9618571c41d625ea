// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package storage

import (
	"context"
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/ava-labs/avalanchego/database"
	"github.com/near/borsh-go"

	"github.com/ava-labs/cpamm/codec"
	"github.com/ava-labs/cpamm/consts"
	"github.com/ava-labs/cpamm/state"
	"github.com/ava-labs/cpamm/utils"
)

// Authority is the optional identity allowed to lock and unlock a pool.
// The zero value is [NoAuthority].
type Authority struct {
	addr codec.Address
	set  bool
}

// NoAuthority permanently disables pool administration.
var NoAuthority = Authority{}

func SomeAuthority(addr codec.Address) Authority {
	return Authority{addr: addr, set: true}
}

// Get returns the authority and whether one is set.
func (a Authority) Get() (codec.Address, bool) {
	return a.addr, a.set
}

func (a Authority) String() string {
	if !a.set {
		return "none"
	}
	return a.addr.String()
}

// PoolConfig holds the persistent parameters of a single pool.
type PoolConfig struct {
	Seed       uint64
	Authority  Authority
	AssetX     codec.Address
	AssetY     codec.Address
	FeeBps     uint16
	Locked     bool
	ConfigBump uint8
	LPBump     uint8
}

// poolRecord is the persisted layout of [PoolConfig]. Field order and
// presence are part of the external interface.
type poolRecord struct {
	Seed       uint64
	Authority  codec.OptionalAddress
	AssetX     codec.Address
	AssetY     codec.Address
	FeeBps     uint16
	Locked     bool
	ConfigBump uint8
	LPBump     uint8
}

// Marshal encodes the config with borsh.
func (p *PoolConfig) Marshal() ([]byte, error) {
	r := poolRecord{
		Seed:       p.Seed,
		AssetX:     p.AssetX,
		AssetY:     p.AssetY,
		FeeBps:     p.FeeBps,
		Locked:     p.Locked,
		ConfigBump: p.ConfigBump,
		LPBump:     p.LPBump,
	}
	if addr, ok := p.Authority.Get(); ok {
		r.Authority = codec.SomeAddress(addr)
	}
	return borsh.Serialize(r)
}

// UnmarshalPoolConfig decodes a config produced by [PoolConfig.Marshal].
func UnmarshalPoolConfig(b []byte) (*PoolConfig, error) {
	var r poolRecord
	if err := borsh.Deserialize(&r, b); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCorruptedRecord, err)
	}
	p := &PoolConfig{
		Seed:       r.Seed,
		AssetX:     r.AssetX,
		AssetY:     r.AssetY,
		FeeBps:     r.FeeBps,
		Locked:     r.Locked,
		ConfigBump: r.ConfigBump,
		LPBump:     r.LPBump,
	}
	if addr, ok := r.Authority.Get(); ok {
		p.Authority = SomeAuthority(addr)
	}
	return p, nil
}

func PoolKey(pool codec.Address) []byte {
	k := make([]byte, 1+codec.AddressLen)
	k[0] = poolPrefix
	copy(k[1:], pool[:])
	return k
}

func SetPool(
	ctx context.Context,
	mu state.Mutable,
	pool codec.Address,
	cfg *PoolConfig,
) error {
	v, err := cfg.Marshal()
	if err != nil {
		return err
	}
	return mu.Insert(ctx, PoolKey(pool), v)
}

func GetPool(
	ctx context.Context,
	im state.Immutable,
	pool codec.Address,
) (*PoolConfig, error) {
	v, err := im.GetValue(ctx, PoolKey(pool))
	if errors.Is(err, database.ErrNotFound) {
		return nil, ErrPoolNotFound
	}
	if err != nil {
		return nil, err
	}
	return UnmarshalPoolConfig(v)
}

func PoolExists(
	ctx context.Context,
	im state.Immutable,
	pool codec.Address,
) (bool, error) {
	_, err := im.GetValue(ctx, PoolKey(pool))
	if errors.Is(err, database.ErrNotFound) {
		return false, nil
	}
	return err == nil, err
}

func derive(typeID uint8, prefix []byte, seed []byte, bump uint8) codec.Address {
	v := make([]byte, len(prefix)+len(seed)+consts.ByteLen)
	copy(v, prefix)
	copy(v[len(prefix):], seed)
	v[len(v)-1] = bump
	return codec.CreateAddress(typeID, utils.ToID(v))
}

// canonical reports whether a derived address may be used. Roughly half of
// all bumps qualify; the first one counting down from 255 is canonical.
func canonical(addr codec.Address) bool {
	return addr[1]&0x80 == 0
}

func find(derive func(uint8) codec.Address) (codec.Address, uint8, error) {
	for bump := 255; bump >= 0; bump-- {
		addr := derive(uint8(bump))
		if canonical(addr) {
			return addr, uint8(bump), nil
		}
	}
	return codec.EmptyAddress, 0, ErrNoValidBump
}

func seedBytes(seed uint64) []byte {
	b := make([]byte, consts.Uint64Len)
	binary.LittleEndian.PutUint64(b, seed)
	return b
}

// DerivePoolAddress returns the pool address for [seed] and [bump].
func DerivePoolAddress(seed uint64, bump uint8) codec.Address {
	return derive(consts.POOLID, poolSeedPrefix, seedBytes(seed), bump)
}

// FindPoolAddress returns the pool address for [seed] and its canonical bump.
func FindPoolAddress(seed uint64) (codec.Address, uint8, error) {
	return find(func(bump uint8) codec.Address {
		return DerivePoolAddress(seed, bump)
	})
}

// DeriveLPAddress returns the claim asset of [pool] for [bump].
func DeriveLPAddress(pool codec.Address, bump uint8) codec.Address {
	return derive(consts.LPASSETID, lpSeedPrefix, pool[:], bump)
}

// FindLPAddress returns the claim asset of [pool] and its canonical bump.
func FindLPAddress(pool codec.Address) (codec.Address, uint8, error) {
	return find(func(bump uint8) codec.Address {
		return DeriveLPAddress(pool, bump)
	})
}

// LPAsset returns the canonical claim asset of [pool], or [codec.EmptyAddress]
// if none exists.
func LPAsset(pool codec.Address) codec.Address {
	lp, _, err := FindLPAddress(pool)
	if err != nil {
		return codec.EmptyAddress
	}
	return lp
}

// VerifyPoolAddress re-derives [pool] from the stored seed and config bump
// and checks that the stored LP bump is canonical. It returns the claim
// asset or [ErrBumpError].
func VerifyPoolAddress(pool codec.Address, cfg *PoolConfig) (codec.Address, error) {
	derived := DerivePoolAddress(cfg.Seed, cfg.ConfigBump)
	if derived != pool || !canonical(derived) {
		return codec.EmptyAddress, ErrBumpError
	}
	lp, bump, err := FindLPAddress(pool)
	if err != nil {
		return codec.EmptyAddress, err
	}
	if bump != cfg.LPBump {
		return codec.EmptyAddress, ErrBumpError
	}
	return lp, nil
}
