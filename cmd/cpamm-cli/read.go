// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package main

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/ava-labs/cpamm/auth"
	"github.com/ava-labs/cpamm/codec"
	"github.com/ava-labs/cpamm/rpc"
)

type poolCmdResponse struct {
	Pool codec.Address     `json:"pool"`
	Info *rpc.GetPoolReply `json:"info"`
}

func (r poolCmdResponse) String() string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("pool: %s\n", r.Pool))
	b.WriteString(fmt.Sprintf("seed: %d\n", r.Info.Seed))
	if r.Info.Authority != nil {
		b.WriteString(fmt.Sprintf("authority: %s\n", r.Info.Authority))
	} else {
		b.WriteString("authority: none\n")
	}
	b.WriteString(fmt.Sprintf("assetX: %s\n", r.Info.AssetX))
	b.WriteString(fmt.Sprintf("assetY: %s\n", r.Info.AssetY))
	b.WriteString(fmt.Sprintf("lpAsset: %s\n", r.Info.LPAsset))
	b.WriteString(fmt.Sprintf("fee: %d bps\n", r.Info.FeeBps))
	b.WriteString(fmt.Sprintf("locked: %t\n", r.Info.Locked))
	b.WriteString(fmt.Sprintf("reserves: x=%d y=%d lp=%d", r.Info.Reserves.X, r.Info.Reserves.Y, r.Info.Reserves.LPSupply))
	return b.String()
}

var poolCmd = &cobra.Command{
	Use:   "pool",
	Short: "Print the configuration and reserves of a pool",
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		pool, err := addressFlag(cmd, "pool")
		if err != nil {
			return err
		}
		client, err := loadClient(cmd)
		if err != nil {
			return err
		}
		info, err := client.GetPool(ctx, pool)
		if err != nil {
			return fmt.Errorf("failed to load pool: %w", err)
		}
		return printValue(cmd, poolCmdResponse{Pool: pool, Info: info})
	},
}

type balanceCmdResponse struct {
	Asset   codec.Address `json:"asset"`
	Owner   codec.Address `json:"owner"`
	Balance uint64        `json:"balance"`
}

func (r balanceCmdResponse) String() string {
	return fmt.Sprintf("%d", r.Balance)
}

var balanceCmd = &cobra.Command{
	Use:   "balance",
	Short: "Print the balance of an asset",
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		asset, err := addressFlag(cmd, "asset")
		if err != nil {
			return err
		}
		owner, err := ownerAddress(cmd)
		if err != nil {
			return err
		}
		client, err := loadClient(cmd)
		if err != nil {
			return err
		}
		balance, err := client.GetBalance(ctx, asset, owner)
		if err != nil {
			return fmt.Errorf("failed to load balance: %w", err)
		}
		return printValue(cmd, balanceCmdResponse{Asset: asset, Owner: owner, Balance: balance})
	},
}

var faucetCmd = &cobra.Command{
	Use:   "faucet",
	Short: "Mint test funds (test mode nodes only)",
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		asset, err := addressFlag(cmd, "asset")
		if err != nil {
			return err
		}
		owner, err := ownerAddress(cmd)
		if err != nil {
			return err
		}
		amount, err := cmd.Flags().GetUint64("amount")
		if err != nil {
			return err
		}
		client, err := loadClient(cmd)
		if err != nil {
			return err
		}
		if err := client.Faucet(ctx, asset, owner, amount); err != nil {
			return fmt.Errorf("faucet request failed: %w", err)
		}
		balance, err := client.GetBalance(ctx, asset, owner)
		if err != nil {
			return fmt.Errorf("failed to load balance: %w", err)
		}
		return printValue(cmd, balanceCmdResponse{Asset: asset, Owner: owner, Balance: balance})
	},
}

type quoteCmdResponse struct {
	AmountX uint64 `json:"amountX,omitempty"`
	AmountY uint64 `json:"amountY,omitempty"`
	LP      uint64 `json:"lp,omitempty"`
	In      uint64 `json:"in,omitempty"`
	Out     uint64 `json:"out,omitempty"`
	kind    string
}

func (r quoteCmdResponse) String() string {
	if r.kind == "swap" {
		return fmt.Sprintf("in: %d\nout: %d", r.In, r.Out)
	}
	return fmt.Sprintf("x: %d\ny: %d\nlp: %d", r.AmountX, r.AmountY, r.LP)
}

var quoteCmd = &cobra.Command{
	Use:       "quote [swap|deposit|withdraw]",
	Short:     "Quote an operation against current reserves",
	Args:      cobra.ExactValidArgs(1),
	ValidArgs: []string{"swap", "deposit", "withdraw"},
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		pool, err := addressFlag(cmd, "pool")
		if err != nil {
			return err
		}
		amount, err := cmd.Flags().GetUint64("amount")
		if err != nil {
			return err
		}
		client, err := loadClient(cmd)
		if err != nil {
			return err
		}

		switch args[0] {
		case "swap":
			direction, err := parseDirection(cmd)
			if err != nil {
				return err
			}
			res, err := client.QuoteSwap(ctx, pool, uint8(direction), amount)
			if err != nil {
				return err
			}
			return printValue(cmd, quoteCmdResponse{In: res.AmountIn, Out: res.AmountOut, kind: "swap"})
		case "deposit":
			res, err := client.QuoteDeposit(ctx, pool, amount)
			if err != nil {
				return err
			}
			return printValue(cmd, quoteCmdResponse{AmountX: res.AmountX, AmountY: res.AmountY, LP: res.Issued})
		default:
			res, err := client.QuoteWithdraw(ctx, pool, amount)
			if err != nil {
				return err
			}
			return printValue(cmd, quoteCmdResponse{AmountX: res.AmountX, AmountY: res.AmountY, LP: res.Burned})
		}
	},
}

// ownerAddress returns the --owner flag, defaulting to the configured key.
func ownerAddress(cmd *cobra.Command) (codec.Address, error) {
	if s, _ := cmd.Flags().GetString("owner"); s != "" {
		return codec.StringToAddress(s)
	}
	key, err := loadKey(cmd)
	if err != nil {
		return codec.EmptyAddress, err
	}
	return auth.NewED25519Address(key.PublicKey()), nil
}

func init() {
	rootCmd.AddCommand(poolCmd, balanceCmd, faucetCmd, quoteCmd)

	poolCmd.Flags().String("pool", "", "Pool address")
	quoteCmd.Flags().String("pool", "", "Pool address")
	quoteCmd.Flags().Uint64("amount", 0, "Amount in (swap) or LP amount (deposit, withdraw)")
	quoteCmd.Flags().String("sell", "x", "Asset to sell for swap quotes (x or y)")
	for _, c := range []*cobra.Command{balanceCmd, faucetCmd} {
		c.Flags().String("asset", "", "Asset address")
		c.Flags().String("owner", "", "Owner address (defaults to the configured key)")
	}
	faucetCmd.Flags().Uint64("amount", 0, "Amount to mint")
}
