// Package config loads the netroute YAML configuration.
//
// A config file overlays Default(): keys that are absent keep their
// default value.
//
//	network:
//	  capacity: 100
//	  symmetric: false
//	transfer:
//	  require_route: false
//	  step_delay: 5ms
//	log:
//	  level: info
//	  format: text
//	metrics:
//	  addr: ""
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/netroute/core"
	"github.com/katalvlaran/netroute/transfer"
)

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config is the full netroute configuration.
type Config struct {
	Network  NetworkConfig  `yaml:"network"`
	Transfer TransferConfig `yaml:"transfer"`
	Log      LogConfig      `yaml:"log"`
	Metrics  MetricsConfig  `yaml:"metrics"`
}

// NetworkConfig sizes and shapes the store.
type NetworkConfig struct {
	Capacity  int  `yaml:"capacity"`
	Symmetric bool `yaml:"symmetric"`
}

// TransferConfig tunes the transfer simulation.
type TransferConfig struct {
	RequireRoute bool          `yaml:"require_route"`
	StepDelay    time.Duration `yaml:"step_delay"`
}

// LogConfig selects the log level and handler.
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// MetricsConfig controls the Prometheus endpoint. Empty Addr disables it.
type MetricsConfig struct {
	Addr string `yaml:"addr"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Network: NetworkConfig{
			Capacity: core.DefaultCapacity,
		},
		Transfer: TransferConfig{
			StepDelay: transfer.DefaultStepDelay,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// Load reads path over Default() and validates the result. An empty path
// returns the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: failed to read %s: %w", path, err)
	}
	if err = yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: failed to parse %s: %w", path, err)
	}
	if err = cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks value ranges and enumerations.
func (c Config) Validate() error {
	if c.Network.Capacity <= 0 || c.Network.Capacity > core.MaxCapacity {
		return fmt.Errorf("%w: network.capacity must be in [1,%d], got %d",
			ErrInvalidConfig, core.MaxCapacity, c.Network.Capacity)
	}
	if c.Transfer.StepDelay < 0 {
		return fmt.Errorf("%w: transfer.step_delay must not be negative", ErrInvalidConfig)
	}
	switch strings.ToLower(c.Log.Format) {
	case "text", "json":
	default:
		return fmt.Errorf("%w: log.format must be text or json, got %q", ErrInvalidConfig, c.Log.Format)
	}
	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("%w: unknown log.level %q", ErrInvalidConfig, c.Log.Level)
	}

	return nil
}

// NetworkOptions translates the network section into core options.
func (c Config) NetworkOptions() []core.NetworkOption {
	opts := []core.NetworkOption{core.WithCapacity(c.Network.Capacity)}
	if c.Network.Symmetric {
		opts = append(opts, core.WithSymmetric())
	}

	return opts
}

// TransferOptions translates the transfer section into transfer options.
func (c Config) TransferOptions() []transfer.Option {
	opts := []transfer.Option{transfer.WithStepDelay(c.Transfer.StepDelay)}
	if c.Transfer.RequireRoute {
		opts = append(opts, transfer.WithRequireRoute())
	}

	return opts
}
