// Copyright (C) 2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package rpc

import (
	"context"
	"fmt"
	"net/http"

	"github.com/ava-labs/avalanchego/ids"
	"github.com/ava-labs/avalanchego/trace"
	"github.com/ava-labs/avalanchego/utils/logging"
	"go.uber.org/zap"

	"github.com/ava-labs/cpamm/actions"
	"github.com/ava-labs/cpamm/auth"
	"github.com/ava-labs/cpamm/chain"
	"github.com/ava-labs/cpamm/codec"
	"github.com/ava-labs/cpamm/ledger"
	"github.com/ava-labs/cpamm/state"
	"github.com/ava-labs/cpamm/storage"
	"github.com/ava-labs/cpamm/utils"
)

type JSONRPCServer struct {
	log      logging.Logger
	tracer   trace.Tracer
	p        Processor
	testMode bool
}

func NewJSONRPCServer(log logging.Logger, tracer trace.Tracer, p Processor, testMode bool) *JSONRPCServer {
	return &JSONRPCServer{
		log:      log,
		tracer:   tracer,
		p:        p,
		testMode: testMode,
	}
}

type PingReply struct {
	Success bool `json:"success"`
}

func (j *JSONRPCServer) Ping(_ *http.Request, _ *struct{}, reply *PingReply) (err error) {
	j.log.Info("ping")
	reply.Success = true
	return nil
}

type NetworkReply struct {
	ChainID ids.ID `json:"chainId"`
}

func (j *JSONRPCServer) Network(_ *http.Request, _ *struct{}, reply *NetworkReply) (err error) {
	reply.ChainID = j.p.ChainID()
	return nil
}

type SubmitTxArgs struct {
	Tx []byte `json:"tx"`
}

type SubmitTxReply struct {
	TxID   ids.ID `json:"txId"`
	Output []byte `json:"output"`
}

// submit executes the signed transaction in [args] and requires both its
// action and its output to have the expected types.
func submit[A chain.Action, O codec.Typed](
	j *JSONRPCServer,
	req *http.Request,
	name string,
	args *SubmitTxArgs,
) (ids.ID, O, error) {
	var empty O
	ctx, span := j.tracer.Start(req.Context(), "JSONRPCServer."+name)
	defer span.End()

	tx, err := chain.UnmarshalTx(args.Tx, actions.ActionParser, auth.Parse)
	if err != nil {
		return ids.Empty, empty, fmt.Errorf("%w: unable to unmarshal on public service", err)
	}
	if _, ok := tx.Action.(A); !ok {
		return ids.Empty, empty, fmt.Errorf("%w: type %d", ErrUnexpectedAction, tx.Action.GetTypeID())
	}
	res, err := j.p.Execute(ctx, tx, utils.UnixRMilli(-1))
	if err != nil {
		return ids.Empty, empty, err
	}
	out, ok := res.Output.(O)
	if !ok {
		j.log.Error("unexpected output",
			zap.Stringer("txID", res.ID),
			zap.Uint8("type", res.Output.GetTypeID()),
		)
		return ids.Empty, empty, ErrUnexpectedResponse
	}
	return res.ID, out, nil
}

func (j *JSONRPCServer) SubmitTx(req *http.Request, args *SubmitTxArgs, reply *SubmitTxReply) error {
	txID, out, err := submit[chain.Action, codec.Typed](j, req, "SubmitTx", args)
	if err != nil {
		return err
	}
	b, err := codec.Marshal(out)
	if err != nil {
		return err
	}
	reply.TxID = txID
	reply.Output = b
	return nil
}

type InitializeReply struct {
	TxID    ids.ID        `json:"txId"`
	Pool    codec.Address `json:"pool"`
	LPAsset codec.Address `json:"lpAsset"`
}

func (j *JSONRPCServer) Initialize(req *http.Request, args *SubmitTxArgs, reply *InitializeReply) error {
	txID, out, err := submit[*actions.Initialize, *actions.InitializeResult](j, req, "Initialize", args)
	if err != nil {
		return err
	}
	reply.TxID = txID
	reply.Pool = out.Pool
	reply.LPAsset = out.LPAsset
	return nil
}

type DepositReply struct {
	TxID    ids.ID `json:"txId"`
	AmountX uint64 `json:"amountX"`
	AmountY uint64 `json:"amountY"`
	Issued  uint64 `json:"issued"`
}

func (j *JSONRPCServer) Deposit(req *http.Request, args *SubmitTxArgs, reply *DepositReply) error {
	txID, out, err := submit[*actions.Deposit, *actions.DepositResult](j, req, "Deposit", args)
	if err != nil {
		return err
	}
	reply.TxID = txID
	reply.AmountX = out.AmountX
	reply.AmountY = out.AmountY
	reply.Issued = out.Issued
	return nil
}

type WithdrawReply struct {
	TxID    ids.ID `json:"txId"`
	AmountX uint64 `json:"amountX"`
	AmountY uint64 `json:"amountY"`
	Burned  uint64 `json:"burned"`
}

func (j *JSONRPCServer) Withdraw(req *http.Request, args *SubmitTxArgs, reply *WithdrawReply) error {
	txID, out, err := submit[*actions.Withdraw, *actions.WithdrawResult](j, req, "Withdraw", args)
	if err != nil {
		return err
	}
	reply.TxID = txID
	reply.AmountX = out.AmountX
	reply.AmountY = out.AmountY
	reply.Burned = out.Burned
	return nil
}

type SwapReply struct {
	TxID      ids.ID        `json:"txId"`
	AmountIn  uint64        `json:"amountIn"`
	AmountOut uint64        `json:"amountOut"`
	AssetOut  codec.Address `json:"assetOut"`
}

func (j *JSONRPCServer) Swap(req *http.Request, args *SubmitTxArgs, reply *SwapReply) error {
	txID, out, err := submit[*actions.Swap, *actions.SwapResult](j, req, "Swap", args)
	if err != nil {
		return err
	}
	reply.TxID = txID
	reply.AmountIn = out.AmountIn
	reply.AmountOut = out.AmountOut
	reply.AssetOut = out.AssetOut
	return nil
}

type LockReply struct {
	TxID   ids.ID `json:"txId"`
	Locked bool   `json:"locked"`
}

func (j *JSONRPCServer) Lock(req *http.Request, args *SubmitTxArgs, reply *LockReply) error {
	txID, out, err := submit[*actions.Lock, *actions.LockResult](j, req, "Lock", args)
	if err != nil {
		return err
	}
	reply.TxID = txID
	reply.Locked = out.Locked
	return nil
}

func (j *JSONRPCServer) Unlock(req *http.Request, args *SubmitTxArgs, reply *LockReply) error {
	txID, out, err := submit[*actions.Unlock, *actions.UnlockResult](j, req, "Unlock", args)
	if err != nil {
		return err
	}
	reply.TxID = txID
	reply.Locked = out.Locked
	return nil
}

// withPool gives [f] a consistent view of the config and reserves of [pool].
func (j *JSONRPCServer) withPool(
	ctx context.Context,
	pool codec.Address,
	f func(state.Mutable, *storage.PoolConfig) error,
) error {
	var cfg *storage.PoolConfig
	if err := j.p.Read(ctx, state.Keys{string(storage.PoolKey(pool)): state.Read}, func(mu state.Mutable) error {
		var err error
		cfg, err = storage.GetPool(ctx, mu, pool)
		return err
	}); err != nil {
		return err
	}
	// The assets of a pool never change, so the keys stay valid.
	return j.p.Read(ctx, actions.ReserveKeys(pool, cfg), func(mu state.Mutable) error {
		cfg, err := storage.GetPool(ctx, mu, pool)
		if err != nil {
			return err
		}
		return f(mu, cfg)
	})
}

type PoolArgs struct {
	Pool codec.Address `json:"pool"`
}

type GetPoolReply struct {
	Seed      uint64          `json:"seed"`
	Authority *codec.Address  `json:"authority"`
	AssetX    codec.Address   `json:"assetX"`
	AssetY    codec.Address   `json:"assetY"`
	LPAsset   codec.Address   `json:"lpAsset"`
	FeeBps    uint16          `json:"feeBps"`
	Locked    bool            `json:"locked"`
	Reserves  ledger.Reserves `json:"reserves"`
}

func (j *JSONRPCServer) GetPool(req *http.Request, args *PoolArgs, reply *GetPoolReply) error {
	ctx, span := j.tracer.Start(req.Context(), "JSONRPCServer.GetPool")
	defer span.End()

	return j.withPool(ctx, args.Pool, func(mu state.Mutable, cfg *storage.PoolConfig) error {
		reserves, err := ledger.NewStateLedger(mu).Reserves(ctx, args.Pool, cfg)
		if err != nil {
			return err
		}
		if addr, ok := cfg.Authority.Get(); ok {
			reply.Authority = &addr
		}
		reply.Seed = cfg.Seed
		reply.AssetX = cfg.AssetX
		reply.AssetY = cfg.AssetY
		reply.LPAsset = storage.LPAsset(args.Pool)
		reply.FeeBps = cfg.FeeBps
		reply.Locked = cfg.Locked
		reply.Reserves = reserves
		return nil
	})
}

type BalanceArgs struct {
	Asset codec.Address `json:"asset"`
	Owner codec.Address `json:"owner"`
}

type BalanceReply struct {
	Amount uint64 `json:"amount"`
}

func (j *JSONRPCServer) GetBalance(req *http.Request, args *BalanceArgs, reply *BalanceReply) error {
	ctx, span := j.tracer.Start(req.Context(), "JSONRPCServer.GetBalance")
	defer span.End()

	key := storage.BalanceKey(args.Asset, args.Owner)
	return j.p.Read(ctx, state.Keys{string(key): state.Read}, func(mu state.Mutable) error {
		bal, err := storage.GetBalance(ctx, mu, args.Asset, args.Owner)
		if err != nil {
			return err
		}
		reply.Amount = bal
		return nil
	})
}

type QuoteSwapArgs struct {
	Pool      codec.Address `json:"pool"`
	Direction uint8         `json:"direction"`
	AmountIn  uint64        `json:"amountIn"`
}

func (j *JSONRPCServer) QuoteSwap(req *http.Request, args *QuoteSwapArgs, reply *SwapReply) error {
	ctx, span := j.tracer.Start(req.Context(), "JSONRPCServer.QuoteSwap")
	defer span.End()

	return j.withPool(ctx, args.Pool, func(mu state.Mutable, _ *storage.PoolConfig) error {
		res, err := actions.QuoteSwap(ctx, mu, ledger.NewStateLedger(mu), args.Pool, args.Direction, args.AmountIn)
		if err != nil {
			return err
		}
		reply.AmountIn = res.AmountIn
		reply.AmountOut = res.AmountOut
		reply.AssetOut = res.AssetOut
		return nil
	})
}

type QuoteAmountArgs struct {
	Pool   codec.Address `json:"pool"`
	Amount uint64        `json:"amount"`
}

func (j *JSONRPCServer) QuoteDeposit(req *http.Request, args *QuoteAmountArgs, reply *DepositReply) error {
	ctx, span := j.tracer.Start(req.Context(), "JSONRPCServer.QuoteDeposit")
	defer span.End()

	return j.withPool(ctx, args.Pool, func(mu state.Mutable, _ *storage.PoolConfig) error {
		res, err := actions.QuoteDeposit(ctx, mu, ledger.NewStateLedger(mu), args.Pool, args.Amount)
		if err != nil {
			return err
		}
		reply.AmountX = res.AmountX
		reply.AmountY = res.AmountY
		reply.Issued = res.Issued
		return nil
	})
}

func (j *JSONRPCServer) QuoteWithdraw(req *http.Request, args *QuoteAmountArgs, reply *WithdrawReply) error {
	ctx, span := j.tracer.Start(req.Context(), "JSONRPCServer.QuoteWithdraw")
	defer span.End()

	return j.withPool(ctx, args.Pool, func(mu state.Mutable, _ *storage.PoolConfig) error {
		res, err := actions.QuoteWithdraw(ctx, mu, ledger.NewStateLedger(mu), args.Pool, args.Amount)
		if err != nil {
			return err
		}
		reply.AmountX = res.AmountX
		reply.AmountY = res.AmountY
		reply.Burned = res.Burned
		return nil
	})
}

type FaucetArgs struct {
	Asset  codec.Address `json:"asset"`
	To     codec.Address `json:"to"`
	Amount uint64        `json:"amount"`
}

func (j *JSONRPCServer) Faucet(req *http.Request, args *FaucetArgs, reply *BalanceReply) error {
	ctx, span := j.tracer.Start(req.Context(), "JSONRPCServer.Faucet")
	defer span.End()

	if !j.testMode {
		return ErrFaucetDisabled
	}
	if err := j.p.Issue(ctx, args.Asset, args.To, args.Amount); err != nil {
		return err
	}
	reply.Amount = args.Amount
	return nil
}
