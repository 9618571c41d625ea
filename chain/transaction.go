// Copyright (C) 2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

import (
	"bytes"
	"fmt"

	"github.com/ava-labs/avalanchego/ids"
	"github.com/near/borsh-go"

	"github.com/ava-labs/cpamm/codec"
	"github.com/ava-labs/cpamm/emap"
	"github.com/ava-labs/cpamm/state"
	"github.com/ava-labs/cpamm/utils"
)

var _ emap.Item = (*Transaction)(nil)

// unsignedTx is the message an [Auth] signs.
type unsignedTx struct {
	Timestamp int64
	ChainID   [ids.IDLen]byte
	Action    []byte
}

type signedTx struct {
	Timestamp int64
	ChainID   [ids.IDLen]byte
	Action    []byte
	Auth      []byte
}

type Transaction struct {
	Base *Base `json:"base"`

	Action Action `json:"action"`
	Auth   Auth   `json:"auth"`

	digest    []byte
	bytes     []byte
	id        ids.ID
	stateKeys state.Keys
}

func NewTx(base *Base, action Action) *Transaction {
	return &Transaction{
		Base:   base,
		Action: action,
	}
}

func (t *Transaction) Digest() ([]byte, error) {
	if len(t.digest) > 0 {
		return t.digest, nil
	}
	if t.Action == nil {
		return nil, ErrMissingAction
	}
	action, err := codec.Marshal(t.Action)
	if err != nil {
		return nil, err
	}
	return borsh.Serialize(unsignedTx{
		Timestamp: t.Base.Timestamp,
		ChainID:   t.Base.ChainID,
		Action:    action,
	})
}

// Sign authorizes the transaction with [factory] and returns it reloaded
// from its encoded form, so the result is exactly what [UnmarshalTx] would
// produce on the receiving side.
func (t *Transaction) Sign(
	factory AuthFactory,
	actions *codec.TypeParser[Action],
	auths AuthParser,
) (*Transaction, error) {
	msg, err := t.Digest()
	if err != nil {
		return nil, err
	}
	auth, err := factory.Sign(msg)
	if err != nil {
		return nil, err
	}
	t.Auth = auth

	b, err := t.marshal()
	if err != nil {
		return nil, err
	}
	return UnmarshalTx(b, actions, auths)
}

func (t *Transaction) marshal() ([]byte, error) {
	if len(t.bytes) > 0 {
		return t.bytes, nil
	}
	if t.Auth == nil {
		return nil, ErrMissingAuth
	}
	action, err := codec.Marshal(t.Action)
	if err != nil {
		return nil, err
	}
	return borsh.Serialize(signedTx{
		Timestamp: t.Base.Timestamp,
		ChainID:   t.Base.ChainID,
		Action:    action,
		Auth:      t.Auth.Bytes(),
	})
}

func (t *Transaction) Bytes() []byte { return t.bytes }

// ID is derived from the signed digest and the actor, so re-encoding the
// same approval can never yield a second id.
func (t *Transaction) ID() ids.ID { return t.id }

func (t *Transaction) Expiry() int64 { return t.Base.Timestamp }

func (t *Transaction) Actor() codec.Address { return t.Auth.Actor() }

// StateKeys returns every key the action may touch on behalf of the actor.
func (t *Transaction) StateKeys() state.Keys {
	if t.stateKeys != nil {
		return t.stateKeys
	}
	t.stateKeys = t.Action.StateKeys(t.Actor())
	return t.stateKeys
}

// UnmarshalTx decodes a signed transaction. Only the canonical encoding of
// a transaction is accepted.
func UnmarshalTx(
	b []byte,
	actions *codec.TypeParser[Action],
	auths AuthParser,
) (*Transaction, error) {
	var raw signedTx
	if err := borsh.Deserialize(&raw, b); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidObject, err)
	}
	action, err := actions.Unmarshal(raw.Action)
	if err != nil {
		return nil, fmt.Errorf("%w: could not unmarshal action", err)
	}
	auth, err := auths(raw.Auth)
	if err != nil {
		return nil, fmt.Errorf("%w: could not unmarshal auth", err)
	}

	tx := NewTx(&Base{Timestamp: raw.Timestamp, ChainID: raw.ChainID}, action)
	tx.Auth = auth
	canonical, err := tx.marshal()
	if err != nil {
		return nil, err
	}
	if !bytes.Equal(canonical, b) {
		return nil, ErrNonCanonicalTx
	}
	digest, err := tx.Digest()
	if err != nil {
		return nil, err
	}
	actor := auth.Actor()
	tx.digest = digest
	tx.bytes = canonical
	tx.id = utils.ToID(append(append([]byte{}, digest...), actor[:]...))
	return tx, nil
}
