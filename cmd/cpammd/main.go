// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package main

import (
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ava-labs/cpamm/chain"
	"github.com/ava-labs/cpamm/config"
	"github.com/ava-labs/cpamm/consts"
	"github.com/ava-labs/cpamm/logfactory"
	"github.com/ava-labs/cpamm/pebble"
	"github.com/ava-labs/cpamm/rpc"
	"github.com/ava-labs/cpamm/server"
	"github.com/ava-labs/cpamm/trace"
	"github.com/ava-labs/cpamm/utils"
)

const metricsEndpoint = "metrics"

var rootCmd = &cobra.Command{
	Use:   "cpammd",
	Short: "Run a cpamm node",
	Long:  `Serves the pool engine over JSON-RPC, persisting state to pebble.`,
	RunE:  run,
}

func init() {
	rootCmd.Flags().String("config", "", "Path to a JSON config file")
	rootCmd.Flags().String("data-dir", "", "Override the data directory")
	rootCmd.Flags().Bool("test-mode", false, "Enable the faucet")
}

func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	var raw []byte
	path, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, err
	}
	if path != "" {
		raw, err = os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}
	cfg, err := config.New(raw)
	if err != nil {
		return nil, err
	}
	if dir, _ := cmd.Flags().GetString("data-dir"); dir != "" {
		cfg.DataDir = dir
	}
	if testMode, _ := cmd.Flags().GetBool("test-mode"); testMode {
		cfg.TestMode = true
	}
	return cfg, nil
}

func run(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	logDir, err := utils.InitSubDirectory(cfg.DataDir, "logs")
	if err != nil {
		return err
	}
	logFactory := logfactory.New(cfg.GetLogConfig(logDir))
	defer logFactory.Close()
	log, err := logFactory.Make(consts.Name)
	if err != nil {
		return err
	}

	tracer, err := trace.New(cfg.GetTraceConfig())
	if err != nil {
		return fmt.Errorf("failed to create tracer: %w", err)
	}
	defer func() {
		if err := tracer.Close(); err != nil {
			log.Warn("failed to close tracer", zap.Error(err))
		}
	}()

	dbDir, err := utils.InitSubDirectory(cfg.DataDir, "db")
	if err != nil {
		return err
	}
	db, dbRegistry, err := pebble.New(dbDir, cfg.Pebble)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Warn("failed to close database", zap.Error(err))
		}
	}()

	processor, chainRegistry, err := chain.NewProcessor(log, tracer, db, cfg.ChainID, cfg.GetValidityWindow())
	if err != nil {
		return err
	}

	listener, err := net.Listen("tcp", cfg.GetHTTPAddress())
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", cfg.GetHTTPAddress(), err)
	}
	apiRegistry := prometheus.NewRegistry()
	apiMetrics, err := server.NewMetricsWrapper(consts.Name, apiRegistry)
	if err != nil {
		return err
	}
	srv, err := server.New(log, listener, cfg.GetServerConfig(rpc.BaseURL), apiMetrics)
	if err != nil {
		return err
	}
	handler, err := server.NewHandler(rpc.NewJSONRPCServer(log, tracer, processor, cfg.TestMode), rpc.Name)
	if err != nil {
		return err
	}
	if err := srv.AddRoute(handler, rpc.Name, ""); err != nil {
		return err
	}
	metrics := promhttp.HandlerFor(
		prometheus.Gatherers{chainRegistry, dbRegistry, apiRegistry},
		promhttp.HandlerOpts{},
	)
	if err := srv.AddRoute(metrics, metricsEndpoint, ""); err != nil {
		return err
	}

	errs := make(chan error, 1)
	go func() {
		log.Info("serving",
			zap.String("address", listener.Addr().String()),
			zap.Stringer("chainID", cfg.ChainID),
			zap.String("dataDir", filepath.Clean(cfg.DataDir)),
			zap.Bool("testMode", cfg.TestMode),
		)
		errs <- srv.Dispatch()
	}()

	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)
	select {
	case sig := <-signals:
		log.Info("shutting down", zap.Stringer("signal", sig))
		return srv.Shutdown()
	case err := <-errs:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
