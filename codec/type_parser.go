// Copyright (C) 2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package codec

import (
	"fmt"
	"reflect"

	"github.com/near/borsh-go"
)

// TypeParser decodes values that are prefixed with their type byte.
type TypeParser[T Typed] struct {
	indexToFactory map[uint8]func() T
}

func NewTypeParser[T Typed]() *TypeParser[T] {
	return &TypeParser[T]{
		indexToFactory: map[uint8]func() T{},
	}
}

// Register adds [f] under the type byte of the value it returns. [f] must
// return a pointer to a zero value.
func (p *TypeParser[T]) Register(f func() T) error {
	typeID := f().GetTypeID()
	if _, ok := p.indexToFactory[typeID]; ok {
		return fmt.Errorf("%w: %d", ErrDuplicateItem, typeID)
	}
	p.indexToFactory[typeID] = f
	return nil
}

// New returns an empty value registered under [typeID].
func (p *TypeParser[T]) New(typeID uint8) (T, error) {
	f, ok := p.indexToFactory[typeID]
	if !ok {
		var empty T
		return empty, fmt.Errorf("%w: %d", ErrUnknownType, typeID)
	}
	return f(), nil
}

// Unmarshal decodes bytes produced by [Marshal].
func (p *TypeParser[T]) Unmarshal(b []byte) (T, error) {
	var empty T
	if len(b) == 0 {
		return empty, ErrInvalidSize
	}
	v, err := p.New(b[0])
	if err != nil {
		return empty, err
	}
	if err := borsh.Deserialize(v, b[1:]); err != nil {
		return empty, err
	}
	return v, nil
}

// Marshal encodes [v] as its type byte followed by its borsh encoding.
func Marshal(v Typed) ([]byte, error) {
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Ptr {
		rv = rv.Elem()
	}
	b, err := borsh.Serialize(rv.Interface())
	if err != nil {
		return nil, err
	}
	return append([]byte{v.GetTypeID()}, b...), nil
}
