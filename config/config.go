// Copyright (C) 2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package config

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/ava-labs/avalanchego/ids"
	"github.com/ava-labs/avalanchego/utils/logging"

	"github.com/ava-labs/cpamm/consts"
	"github.com/ava-labs/cpamm/pebble"
	"github.com/ava-labs/cpamm/server"
	"github.com/ava-labs/cpamm/trace"
)

const (
	defaultHTTPHost        = "127.0.0.1"
	defaultHTTPPort        = 9650
	defaultShutdownTimeout = 10 * time.Second
	defaultValidityWindow  = 60 * time.Second
	defaultDataDir         = ".cpamm"
	defaultLogMaxSize      = 8 // megabytes
	defaultLogMaxFiles     = 5
	defaultLogMaxAge       = 7 // days
)

type Config struct {
	// Storage
	DataDir string        `json:"dataDir"`
	Pebble  pebble.Config `json:"pebble"`

	// API
	HTTPHost        string            `json:"httpHost"`
	HTTPPort        uint16            `json:"httpPort"`
	HTTP            server.HTTPConfig `json:"http"`
	AllowedOrigins  []string          `json:"allowedOrigins"`
	AllowedHosts    []string          `json:"allowedHosts"`
	ShutdownTimeout time.Duration     `json:"shutdownTimeout"`

	// Transactions
	ChainID        ids.ID        `json:"chainId"`
	ValidityWindow time.Duration `json:"validityWindow"`

	// Tracing
	TraceEnabled    bool    `json:"traceEnabled"`
	TraceSampleRate float64 `json:"traceSampleRate"`
	TraceEndpoint   string  `json:"traceEndpoint"`

	// Logging
	LogLevel        logging.Level `json:"logLevel"`
	LogDisplayLevel logging.Level `json:"logDisplayLevel"`
	LogMaxSize      int           `json:"logMaxSize"`
	LogMaxFiles     int           `json:"logMaxFiles"`
	LogMaxAge       int           `json:"logMaxAge"`

	// Misc
	TestMode bool `json:"testMode"` // enables the faucet
}

// New returns the default config overridden by the JSON in [b].
func New(b []byte) (*Config, error) {
	c := &Config{}
	c.setDefault()
	if len(b) > 0 {
		if err := json.Unmarshal(b, c); err != nil {
			return nil, fmt.Errorf("failed to unmarshal config %s: %w", string(b), err)
		}
	}
	if c.ValidityWindow <= 0 {
		return nil, fmt.Errorf("%w: validityWindow=%s", ErrInvalidConfig, c.ValidityWindow)
	}
	return c, nil
}

func (c *Config) setDefault() {
	c.DataDir = defaultDataDir
	c.Pebble = pebble.NewDefaultConfig()
	c.HTTPHost = defaultHTTPHost
	c.HTTPPort = defaultHTTPPort
	c.HTTP = server.HTTPConfig{
		ReadHeaderTimeout: 30 * time.Second,
	}
	c.AllowedOrigins = []string{"*"}
	c.AllowedHosts = []string{"localhost"}
	c.ShutdownTimeout = defaultShutdownTimeout
	c.ChainID = consts.ID
	c.ValidityWindow = defaultValidityWindow
	c.LogLevel = logging.Info
	c.LogDisplayLevel = logging.Info
	c.LogMaxSize = defaultLogMaxSize
	c.LogMaxFiles = defaultLogMaxFiles
	c.LogMaxAge = defaultLogMaxAge
}

func (c *Config) GetHTTPAddress() string {
	return fmt.Sprintf("%s:%d", c.HTTPHost, c.HTTPPort)
}

func (c *Config) GetServerConfig(baseURL string) server.Config {
	return server.Config{
		BaseURL:         baseURL,
		HTTP:            c.HTTP,
		AllowedOrigins:  c.AllowedOrigins,
		AllowedHosts:    c.AllowedHosts,
		ShutdownTimeout: c.ShutdownTimeout,
	}
}

func (c *Config) GetValidityWindow() int64 {
	return c.ValidityWindow.Milliseconds()
}

func (c *Config) GetTraceConfig() *trace.Config {
	return &trace.Config{
		Enabled:         c.TraceEnabled,
		TraceSampleRate: c.TraceSampleRate,
		AppName:         consts.Name,
		Agent:           consts.Name,
		Version:         consts.Version.String(),
		ChainID:         c.ChainID.String(),
		Endpoint:        c.TraceEndpoint,
	}
}

func (c *Config) GetLogConfig(dir string) logging.Config {
	return logging.Config{
		RotatingWriterConfig: logging.RotatingWriterConfig{
			MaxSize:   c.LogMaxSize,
			MaxFiles:  c.LogMaxFiles,
			MaxAge:    c.LogMaxAge,
			Directory: dir,
			Compress:  true,
		},
		DisplayLevel: c.LogDisplayLevel,
		LogLevel:     c.LogLevel,
		LogFormat:    logging.Plain,
	}
}
