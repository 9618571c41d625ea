// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package storage

import (
	"context"
	"encoding/binary"
	"errors"

	"github.com/ava-labs/avalanchego/database"

	"github.com/ava-labs/cpamm/codec"
	"github.com/ava-labs/cpamm/consts"
	"github.com/ava-labs/cpamm/state"
)

const assetInfoLen = consts.Uint64Len + consts.BoolLen + codec.AddressLen

// AssetInfo tracks the total supply of an asset and who may mint or burn it
// without holding the balance. A missing mint authority means the supply
// is fixed.
type AssetInfo struct {
	Supply        uint64
	MintAuthority Authority
}

func AssetKey(asset codec.Address) []byte {
	k := make([]byte, 1+codec.AddressLen)
	k[0] = assetPrefix
	copy(k[1:], asset[:])
	return k
}

func BalanceKey(asset codec.Address, owner codec.Address) []byte {
	k := make([]byte, 1+codec.AddressLen*2)
	k[0] = balancePrefix
	copy(k[1:], asset[:])
	copy(k[1+codec.AddressLen:], owner[:])
	return k
}

func (a *AssetInfo) Marshal() []byte {
	v := make([]byte, assetInfoLen)
	binary.BigEndian.PutUint64(v, a.Supply)
	if addr, ok := a.MintAuthority.Get(); ok {
		v[consts.Uint64Len] = 1
		copy(v[consts.Uint64Len+consts.BoolLen:], addr[:])
	}
	return v
}

func UnmarshalAssetInfo(v []byte) (*AssetInfo, error) {
	if len(v) != assetInfoLen {
		return nil, ErrCorruptedRecord
	}
	info := &AssetInfo{Supply: binary.BigEndian.Uint64(v)}
	switch v[consts.Uint64Len] {
	case 0:
	case 1:
		addr, err := codec.ToAddress(v[consts.Uint64Len+consts.BoolLen:])
		if err != nil {
			return nil, err
		}
		info.MintAuthority = SomeAuthority(addr)
	default:
		return nil, ErrCorruptedRecord
	}
	return info, nil
}

func GetAsset(
	ctx context.Context,
	im state.Immutable,
	asset codec.Address,
) (*AssetInfo, error) {
	v, err := im.GetValue(ctx, AssetKey(asset))
	if errors.Is(err, database.ErrNotFound) {
		return nil, ErrAssetNotFound
	}
	if err != nil {
		return nil, err
	}
	return UnmarshalAssetInfo(v)
}

func SetAsset(
	ctx context.Context,
	mu state.Mutable,
	asset codec.Address,
	info *AssetInfo,
) error {
	return mu.Insert(ctx, AssetKey(asset), info.Marshal())
}

// GetBalance returns 0 for accounts that never held [asset].
func GetBalance(
	ctx context.Context,
	im state.Immutable,
	asset codec.Address,
	owner codec.Address,
) (uint64, error) {
	v, err := im.GetValue(ctx, BalanceKey(asset, owner))
	if errors.Is(err, database.ErrNotFound) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	if len(v) != consts.Uint64Len {
		return 0, ErrCorruptedRecord
	}
	return binary.BigEndian.Uint64(v), nil
}

// SetBalance removes the record once it reaches 0.
func SetBalance(
	ctx context.Context,
	mu state.Mutable,
	asset codec.Address,
	owner codec.Address,
	balance uint64,
) error {
	k := BalanceKey(asset, owner)
	if balance == 0 {
		return mu.Remove(ctx, k)
	}
	v := make([]byte, consts.Uint64Len)
	binary.BigEndian.PutUint64(v, balance)
	return mu.Insert(ctx, k, v)
}
