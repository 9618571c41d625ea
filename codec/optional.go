// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package codec

import (
	"encoding/json"

	"github.com/near/borsh-go"
)

const (
	noneTag borsh.Enum = iota
	someTag
)

// OptionalAddress is an [Address] that may be absent. It is encoded by
// borsh as a one byte tag followed by the address only when present. The
// zero value is absent.
type OptionalAddress struct {
	Enum borsh.Enum `borsh_enum:"true"`
	None struct{}
	Some struct {
		Address Address
	}
}

func SomeAddress(addr Address) OptionalAddress {
	o := OptionalAddress{Enum: someTag}
	o.Some.Address = addr
	return o
}

// Get returns the address and whether one is present.
func (o OptionalAddress) Get() (Address, bool) {
	if o.Enum != someTag {
		return EmptyAddress, false
	}
	return o.Some.Address, true
}

// MarshalJSON encodes an absent address as null.
func (o OptionalAddress) MarshalJSON() ([]byte, error) {
	addr, ok := o.Get()
	if !ok {
		return []byte("null"), nil
	}
	return json.Marshal(addr)
}

func (o *OptionalAddress) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		*o = OptionalAddress{}
		return nil
	}
	var addr Address
	if err := json.Unmarshal(b, &addr); err != nil {
		return err
	}
	*o = SomeAddress(addr)
	return nil
}
