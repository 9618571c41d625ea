// Copyright (C) 2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package rpc

import (
	"context"
	"strings"

	"github.com/ava-labs/avalanchego/ids"

	"github.com/ava-labs/cpamm/actions"
	"github.com/ava-labs/cpamm/chain"
	"github.com/ava-labs/cpamm/codec"
	"github.com/ava-labs/cpamm/requester"
)

type JSONRPCClient struct {
	requester *requester.EndpointRequester

	chainID ids.ID
}

func NewJSONRPCClient(uri string) *JSONRPCClient {
	uri = strings.TrimSuffix(uri, "/")
	uri += JSONRPCEndpoint
	req := requester.New(uri, Name)
	return &JSONRPCClient{requester: req}
}

func (cli *JSONRPCClient) Ping(ctx context.Context) (bool, error) {
	resp := new(PingReply)
	err := cli.requester.SendRequest(ctx,
		"ping",
		nil,
		resp,
	)
	return resp.Success, err
}

func (cli *JSONRPCClient) Network(ctx context.Context) (ids.ID, error) {
	if cli.chainID != ids.Empty {
		return cli.chainID, nil
	}

	resp := new(NetworkReply)
	err := cli.requester.SendRequest(
		ctx,
		"network",
		nil,
		resp,
	)
	if err != nil {
		return ids.Empty, err
	}
	cli.chainID = resp.ChainID
	return resp.ChainID, nil
}

// GenerateTransaction signs [action] for [factory], bound to the chain the
// node serves and expiring at [expiry].
func (cli *JSONRPCClient) GenerateTransaction(
	ctx context.Context,
	action chain.Action,
	factory chain.AuthFactory,
	auths chain.AuthParser,
	expiry int64,
) (*chain.Transaction, error) {
	chainID, err := cli.Network(ctx)
	if err != nil {
		return nil, err
	}
	return chain.NewTx(&chain.Base{Timestamp: expiry, ChainID: chainID}, action).
		Sign(factory, actions.ActionParser, auths)
}

// SubmitTx executes any signed transaction and returns its decoded output.
func (cli *JSONRPCClient) SubmitTx(ctx context.Context, tx *chain.Transaction) (ids.ID, codec.Typed, error) {
	resp := new(SubmitTxReply)
	if err := cli.requester.SendRequest(
		ctx,
		"submitTx",
		&SubmitTxArgs{Tx: tx.Bytes()},
		resp,
	); err != nil {
		return ids.Empty, nil, err
	}
	out, err := actions.OutputParser.Unmarshal(resp.Output)
	return resp.TxID, out, err
}

func (cli *JSONRPCClient) Initialize(ctx context.Context, tx *chain.Transaction) (*InitializeReply, error) {
	resp := new(InitializeReply)
	err := cli.requester.SendRequest(
		ctx,
		"initialize",
		&SubmitTxArgs{Tx: tx.Bytes()},
		resp,
	)
	return resp, err
}

func (cli *JSONRPCClient) Deposit(ctx context.Context, tx *chain.Transaction) (*DepositReply, error) {
	resp := new(DepositReply)
	err := cli.requester.SendRequest(
		ctx,
		"deposit",
		&SubmitTxArgs{Tx: tx.Bytes()},
		resp,
	)
	return resp, err
}

func (cli *JSONRPCClient) Withdraw(ctx context.Context, tx *chain.Transaction) (*WithdrawReply, error) {
	resp := new(WithdrawReply)
	err := cli.requester.SendRequest(
		ctx,
		"withdraw",
		&SubmitTxArgs{Tx: tx.Bytes()},
		resp,
	)
	return resp, err
}

func (cli *JSONRPCClient) Swap(ctx context.Context, tx *chain.Transaction) (*SwapReply, error) {
	resp := new(SwapReply)
	err := cli.requester.SendRequest(
		ctx,
		"swap",
		&SubmitTxArgs{Tx: tx.Bytes()},
		resp,
	)
	return resp, err
}

func (cli *JSONRPCClient) Lock(ctx context.Context, tx *chain.Transaction) (*LockReply, error) {
	resp := new(LockReply)
	err := cli.requester.SendRequest(
		ctx,
		"lock",
		&SubmitTxArgs{Tx: tx.Bytes()},
		resp,
	)
	return resp, err
}

func (cli *JSONRPCClient) Unlock(ctx context.Context, tx *chain.Transaction) (*LockReply, error) {
	resp := new(LockReply)
	err := cli.requester.SendRequest(
		ctx,
		"unlock",
		&SubmitTxArgs{Tx: tx.Bytes()},
		resp,
	)
	return resp, err
}

func (cli *JSONRPCClient) GetPool(ctx context.Context, pool codec.Address) (*GetPoolReply, error) {
	resp := new(GetPoolReply)
	err := cli.requester.SendRequest(
		ctx,
		"getPool",
		&PoolArgs{Pool: pool},
		resp,
	)
	return resp, err
}

func (cli *JSONRPCClient) GetBalance(ctx context.Context, asset codec.Address, owner codec.Address) (uint64, error) {
	resp := new(BalanceReply)
	err := cli.requester.SendRequest(
		ctx,
		"getBalance",
		&BalanceArgs{Asset: asset, Owner: owner},
		resp,
	)
	return resp.Amount, err
}

func (cli *JSONRPCClient) QuoteSwap(
	ctx context.Context,
	pool codec.Address,
	direction uint8,
	amountIn uint64,
) (*SwapReply, error) {
	resp := new(SwapReply)
	err := cli.requester.SendRequest(
		ctx,
		"quoteSwap",
		&QuoteSwapArgs{Pool: pool, Direction: direction, AmountIn: amountIn},
		resp,
	)
	return resp, err
}

func (cli *JSONRPCClient) QuoteDeposit(ctx context.Context, pool codec.Address, desiredLP uint64) (*DepositReply, error) {
	resp := new(DepositReply)
	err := cli.requester.SendRequest(
		ctx,
		"quoteDeposit",
		&QuoteAmountArgs{Pool: pool, Amount: desiredLP},
		resp,
	)
	return resp, err
}

func (cli *JSONRPCClient) QuoteWithdraw(ctx context.Context, pool codec.Address, burnLP uint64) (*WithdrawReply, error) {
	resp := new(WithdrawReply)
	err := cli.requester.SendRequest(
		ctx,
		"quoteWithdraw",
		&QuoteAmountArgs{Pool: pool, Amount: burnLP},
		resp,
	)
	return resp, err
}

func (cli *JSONRPCClient) Faucet(ctx context.Context, asset codec.Address, to codec.Address, amount uint64) error {
	resp := new(BalanceReply)
	return cli.requester.SendRequest(
		ctx,
		"faucet",
		&FaucetArgs{Asset: asset, To: to, Amount: amount},
		resp,
	)
}
