// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package rpc

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/ava-labs/avalanchego/ids"
	"github.com/ava-labs/avalanchego/utils/logging"
	"github.com/stretchr/testify/require"

	"github.com/ava-labs/cpamm/actions"
	"github.com/ava-labs/cpamm/auth"
	"github.com/ava-labs/cpamm/chain"
	"github.com/ava-labs/cpamm/codec"
	"github.com/ava-labs/cpamm/consts"
	"github.com/ava-labs/cpamm/crypto/ed25519"
	"github.com/ava-labs/cpamm/server"
	"github.com/ava-labs/cpamm/state"
	"github.com/ava-labs/cpamm/trace"
)

var (
	assetX = codec.CreateAddress(consts.ASSETID, ids.GenerateTestID())
	assetY = codec.CreateAddress(consts.ASSETID, ids.GenerateTestID())
)

func newTestClient(t *testing.T, testMode bool) *JSONRPCClient {
	require := require.New(t)

	tracer, err := trace.New(&trace.Config{})
	require.NoError(err)
	p, _, err := chain.NewProcessor(logging.NoLog{}, tracer, state.NewInMemoryStore(), ids.GenerateTestID(), time.Hour.Milliseconds())
	require.NoError(err)
	handler, err := server.NewHandler(NewJSONRPCServer(logging.NoLog{}, tracer, p, testMode), Name)
	require.NoError(err)

	mux := http.NewServeMux()
	mux.Handle(JSONRPCEndpoint, handler)
	ts := httptest.NewServer(mux)
	t.Cleanup(ts.Close)
	return NewJSONRPCClient(ts.URL)
}

func TestJSONRPCPoolLifecycle(t *testing.T) {
	require := require.New(t)
	ctx := context.Background()
	cli := newTestClient(t, true)

	ok, err := cli.Ping(ctx)
	require.NoError(err)
	require.True(ok)

	priv, err := ed25519.GeneratePrivateKey()
	require.NoError(err)
	factory := auth.NewED25519Factory(priv)
	actor := factory.Address()
	expiry := time.Now().Add(time.Minute).UnixMilli()

	require.NoError(cli.Faucet(ctx, assetX, actor, 5_000))
	require.NoError(cli.Faucet(ctx, assetY, actor, 5_000))

	tx, err := cli.GenerateTransaction(ctx, &actions.Initialize{
		Seed:   3,
		AssetX: assetX,
		AssetY: assetY,
		FeeBps: 30,
	}, factory, auth.Parse, expiry)
	require.NoError(err)
	initialized, err := cli.Initialize(ctx, tx)
	require.NoError(err)
	pool := initialized.Pool

	tx, err = cli.GenerateTransaction(ctx, &actions.Deposit{
		Pool:      pool,
		AssetX:    assetX,
		AssetY:    assetY,
		DesiredLP: 1000,
		MaxX:      1000,
		MaxY:      1000,
	}, factory, auth.Parse, expiry)
	require.NoError(err)
	deposited, err := cli.Deposit(ctx, tx)
	require.NoError(err)
	require.Equal(uint64(1000), deposited.Issued)

	info, err := cli.GetPool(ctx, pool)
	require.NoError(err)
	require.Equal(uint64(3), info.Seed)
	require.Nil(info.Authority)
	require.Equal(initialized.LPAsset, info.LPAsset)
	require.Equal(uint64(1000), info.Reserves.X)
	require.Equal(uint64(1000), info.Reserves.LPSupply)

	quote, err := cli.QuoteSwap(ctx, pool, 0, 100)
	require.NoError(err)
	require.Equal(uint64(90), quote.AmountOut)
	require.Equal(assetY, quote.AssetOut)

	quoted, err := cli.QuoteDeposit(ctx, pool, 100)
	require.NoError(err)
	require.Equal(uint64(100), quoted.AmountX)

	tx, err = cli.GenerateTransaction(ctx, &actions.Swap{
		Pool:     pool,
		AssetX:   assetX,
		AssetY:   assetY,
		AmountIn: 100,
		MinOut:   90,
	}, factory, auth.Parse, expiry)
	require.NoError(err)
	swapped, err := cli.Swap(ctx, tx)
	require.NoError(err)
	require.Equal(uint64(90), swapped.AmountOut)

	bal, err := cli.GetBalance(ctx, assetY, actor)
	require.NoError(err)
	require.Equal(uint64(5_000-1000+90), bal)

	withdrawn, err := cli.QuoteWithdraw(ctx, pool, 1000)
	require.NoError(err)
	require.Equal(uint64(1100), withdrawn.AmountX)
	require.Equal(uint64(910), withdrawn.AmountY)

	// The same signed swap cannot run twice.
	_, err = cli.Swap(ctx, tx)
	require.ErrorContains(err, chain.ErrDuplicateTx.Error())
}

func TestJSONRPCSubmitTx(t *testing.T) {
	require := require.New(t)
	ctx := context.Background()
	cli := newTestClient(t, false)

	priv, err := ed25519.GeneratePrivateKey()
	require.NoError(err)
	factory := auth.NewED25519Factory(priv)
	expiry := time.Now().Add(time.Minute).UnixMilli()

	tx, err := cli.GenerateTransaction(ctx, &actions.Initialize{
		Seed:   9,
		AssetX: assetX,
		AssetY: assetY,
	}, factory, auth.Parse, expiry)
	require.NoError(err)

	// A typed method refuses other actions.
	_, err = cli.Deposit(ctx, tx)
	require.ErrorContains(err, ErrUnexpectedAction.Error())

	txID, out, err := cli.SubmitTx(ctx, tx)
	require.NoError(err)
	require.Equal(tx.ID(), txID)
	require.IsType(&actions.InitializeResult{}, out)

	require.ErrorContains(cli.Faucet(ctx, assetX, factory.Address(), 1), ErrFaucetDisabled.Error())
}
