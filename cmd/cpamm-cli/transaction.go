// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package main

import (
	"context"
	"fmt"
	"time"

	"github.com/ava-labs/avalanchego/ids"
	"github.com/spf13/cobra"

	"github.com/ava-labs/cpamm/actions"
	"github.com/ava-labs/cpamm/auth"
	"github.com/ava-labs/cpamm/chain"
	"github.com/ava-labs/cpamm/codec"
	"github.com/ava-labs/cpamm/curve"
	"github.com/ava-labs/cpamm/rpc"
)

// txExpiry keeps issued transactions well inside the default validity window.
const txExpiry = 30 * time.Second

type txResponse struct {
	TxID   ids.ID      `json:"txId"`
	Output codec.Typed `json:"output"`
}

func (r txResponse) String() string {
	return fmt.Sprintf("✅ Transaction successful (txID: %s)\n%+v", r.TxID, r.Output)
}

// sendAction signs [action] with the configured key and submits it.
func sendAction(cmd *cobra.Command, action chain.Action) error {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	key, err := loadKey(cmd)
	if err != nil {
		return err
	}
	client, err := loadClient(cmd)
	if err != nil {
		return err
	}
	tx, err := client.GenerateTransaction(
		ctx,
		action,
		auth.NewED25519Factory(key),
		auth.Parse,
		time.Now().Add(txExpiry).UnixMilli(),
	)
	if err != nil {
		return fmt.Errorf("failed to sign tx: %w", err)
	}
	txID, out, err := client.SubmitTx(ctx, tx)
	if err != nil {
		return fmt.Errorf("transaction failed: %w", err)
	}
	return printValue(cmd, txResponse{TxID: txID, Output: out})
}

// loadPoolAssets resolves the asset pair of [pool] from the node.
func loadPoolAssets(ctx context.Context, client *rpc.JSONRPCClient, pool codec.Address) (codec.Address, codec.Address, error) {
	reply, err := client.GetPool(ctx, pool)
	if err != nil {
		return codec.EmptyAddress, codec.EmptyAddress, fmt.Errorf("failed to load pool: %w", err)
	}
	return reply.AssetX, reply.AssetY, nil
}

var initializeCmd = &cobra.Command{
	Use:   "initialize",
	Short: "Create a new pool for an asset pair",
	RunE: func(cmd *cobra.Command, _ []string) error {
		assetX, err := addressFlag(cmd, "asset-x")
		if err != nil {
			return err
		}
		assetY, err := addressFlag(cmd, "asset-y")
		if err != nil {
			return err
		}
		seed, err := cmd.Flags().GetUint64("seed")
		if err != nil {
			return err
		}
		fee, err := cmd.Flags().GetUint16("fee")
		if err != nil {
			return err
		}
		action := &actions.Initialize{
			Seed:   seed,
			AssetX: assetX,
			AssetY: assetY,
			FeeBps: fee,
		}
		if s, _ := cmd.Flags().GetString("authority"); s != "" {
			authority, err := codec.StringToAddress(s)
			if err != nil {
				return fmt.Errorf("failed to parse authority: %w", err)
			}
			action.Authority = codec.SomeAddress(authority)
		}
		return sendAction(cmd, action)
	},
}

var depositCmd = &cobra.Command{
	Use:   "deposit",
	Short: "Mint LP tokens by depositing both pool assets",
	RunE: func(cmd *cobra.Command, _ []string) error {
		pool, err := addressFlag(cmd, "pool")
		if err != nil {
			return err
		}
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		client, err := loadClient(cmd)
		if err != nil {
			return err
		}
		assetX, assetY, err := loadPoolAssets(ctx, client, pool)
		if err != nil {
			return err
		}
		desired, _ := cmd.Flags().GetUint64("lp")
		maxX, _ := cmd.Flags().GetUint64("max-x")
		maxY, _ := cmd.Flags().GetUint64("max-y")
		return sendAction(cmd, &actions.Deposit{
			Pool:      pool,
			AssetX:    assetX,
			AssetY:    assetY,
			DesiredLP: desired,
			MaxX:      maxX,
			MaxY:      maxY,
		})
	},
}

var withdrawCmd = &cobra.Command{
	Use:   "withdraw",
	Short: "Burn LP tokens for a share of the reserves",
	RunE: func(cmd *cobra.Command, _ []string) error {
		pool, err := addressFlag(cmd, "pool")
		if err != nil {
			return err
		}
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		client, err := loadClient(cmd)
		if err != nil {
			return err
		}
		assetX, assetY, err := loadPoolAssets(ctx, client, pool)
		if err != nil {
			return err
		}
		burn, _ := cmd.Flags().GetUint64("lp")
		minX, _ := cmd.Flags().GetUint64("min-x")
		minY, _ := cmd.Flags().GetUint64("min-y")
		return sendAction(cmd, &actions.Withdraw{
			Pool:   pool,
			AssetX: assetX,
			AssetY: assetY,
			BurnLP: burn,
			MinX:   minX,
			MinY:   minY,
		})
	},
}

var swapCmd = &cobra.Command{
	Use:   "swap",
	Short: "Trade one pool asset for the other",
	RunE: func(cmd *cobra.Command, _ []string) error {
		pool, err := addressFlag(cmd, "pool")
		if err != nil {
			return err
		}
		direction, err := parseDirection(cmd)
		if err != nil {
			return err
		}
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		client, err := loadClient(cmd)
		if err != nil {
			return err
		}
		assetX, assetY, err := loadPoolAssets(ctx, client, pool)
		if err != nil {
			return err
		}
		amountIn, _ := cmd.Flags().GetUint64("amount")
		minOut, _ := cmd.Flags().GetUint64("min-out")
		return sendAction(cmd, &actions.Swap{
			Pool:      pool,
			AssetX:    assetX,
			AssetY:    assetY,
			Direction: uint8(direction),
			AmountIn:  amountIn,
			MinOut:    minOut,
		})
	},
}

var lockCmd = &cobra.Command{
	Use:   "lock",
	Short: "Pause trading and liquidity changes on a pool",
	RunE: func(cmd *cobra.Command, _ []string) error {
		pool, err := addressFlag(cmd, "pool")
		if err != nil {
			return err
		}
		return sendAction(cmd, &actions.Lock{Pool: pool})
	},
}

var unlockCmd = &cobra.Command{
	Use:   "unlock",
	Short: "Resume a locked pool",
	RunE: func(cmd *cobra.Command, _ []string) error {
		pool, err := addressFlag(cmd, "pool")
		if err != nil {
			return err
		}
		return sendAction(cmd, &actions.Unlock{Pool: pool})
	},
}

func parseDirection(cmd *cobra.Command) (curve.Pair, error) {
	sell, err := cmd.Flags().GetString("sell")
	if err != nil {
		return 0, err
	}
	switch sell {
	case "x", "X":
		return curve.X, nil
	case "y", "Y":
		return curve.Y, nil
	default:
		return 0, fmt.Errorf("%w: %q", actions.ErrInvalidDirection, sell)
	}
}

func init() {
	rootCmd.AddCommand(initializeCmd, depositCmd, withdrawCmd, swapCmd, lockCmd, unlockCmd)

	initializeCmd.Flags().String("asset-x", "", "First asset of the pair")
	initializeCmd.Flags().String("asset-y", "", "Second asset of the pair")
	initializeCmd.Flags().Uint64("seed", 0, "Seed the pool address is derived from")
	initializeCmd.Flags().Uint16("fee", 30, "Swap fee in basis points")
	initializeCmd.Flags().String("authority", "", "Address allowed to lock the pool (empty disables locking)")

	for _, c := range []*cobra.Command{depositCmd, withdrawCmd, swapCmd, lockCmd, unlockCmd} {
		c.Flags().String("pool", "", "Pool address")
	}
	depositCmd.Flags().Uint64("lp", 0, "LP tokens to mint")
	depositCmd.Flags().Uint64("max-x", 0, "Maximum amount of asset X to deposit")
	depositCmd.Flags().Uint64("max-y", 0, "Maximum amount of asset Y to deposit")
	withdrawCmd.Flags().Uint64("lp", 0, "LP tokens to burn")
	withdrawCmd.Flags().Uint64("min-x", 0, "Minimum amount of asset X to receive")
	withdrawCmd.Flags().Uint64("min-y", 0, "Minimum amount of asset Y to receive")
	swapCmd.Flags().String("sell", "x", "Asset to sell (x or y)")
	swapCmd.Flags().Uint64("amount", 0, "Amount to sell")
	swapCmd.Flags().Uint64("min-out", 0, "Minimum amount to receive")
}
