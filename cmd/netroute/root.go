package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/netroute/config"
	"github.com/katalvlaran/netroute/logging"
	"github.com/katalvlaran/netroute/metrics"
	"github.com/katalvlaran/netroute/simulator"
)

// version is stamped at build time with -ldflags "-X main.version=...".
var version = "dev"

// rootFlags holds the persistent command-line flags.
type rootFlags struct {
	configPath  string
	logLevel    string
	metricsAddr string
	script      string
}

func newRootCmd() *cobra.Command {
	var f rootFlags

	cmd := &cobra.Command{
		Use:   "netroute",
		Short: "Simulate a routed computer network",
		Long: `netroute keeps a small directed network of computers and answers
shortest-path (Dijkstra, Bellman-Ford) and reachability queries over it.

Commands are read line by line from stdin or from --script.`,
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runShell(cmd, f)
		},
	}

	cmd.PersistentFlags().StringVar(&f.configPath, "config", "", "path to a YAML config file")
	cmd.PersistentFlags().StringVar(&f.logLevel, "log-level", "", "override log.level (debug, info, warn, error)")
	cmd.Flags().StringVar(&f.metricsAddr, "metrics-addr", "", "serve Prometheus metrics on this address")
	cmd.Flags().StringVar(&f.script, "script", "", "read commands from this file instead of stdin")

	cmd.AddCommand(newVersionCmd())

	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the netroute version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "netroute %s\n", version)
		},
	}
}

// loadConfig reads the config file and applies flag overrides.
func loadConfig(f rootFlags) (config.Config, error) {
	cfg, err := config.Load(f.configPath)
	if err != nil {
		return config.Config{}, err
	}
	if f.logLevel != "" {
		cfg.Log.Level = f.logLevel
	}
	if f.metricsAddr != "" {
		cfg.Metrics.Addr = f.metricsAddr
	}
	if err = cfg.Validate(); err != nil {
		return config.Config{}, err
	}

	return cfg, nil
}

func runShell(cmd *cobra.Command, f rootFlags) error {
	cfg, err := loadConfig(f)
	if err != nil {
		return err
	}
	logger, err := logging.New(logging.Config{Level: cfg.Log.Level, Format: cfg.Log.Format}, cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	reg := prometheus.NewRegistry()
	sim := simulator.New(cfg,
		simulator.WithLogger(logger),
		simulator.WithMetrics(metrics.New(reg)))

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	if cfg.Metrics.Addr != "" {
		stop := serveMetrics(cfg.Metrics.Addr, reg, logger)
		defer stop()
	}

	var (
		in     io.Reader = cmd.InOrStdin()
		prompt           = "netroute> "
	)
	if f.script != "" {
		file, err := os.Open(f.script)
		if err != nil {
			return fmt.Errorf("netroute: failed to open script: %w", err)
		}
		defer file.Close()
		in, prompt = file, ""
	}

	logger.Info("netroute started", "session", sim.ID().String(), "capacity", cfg.Network.Capacity)
	return newShell(sim, in, cmd.OutOrStdout(), prompt).run(ctx)
}

// serveMetrics exposes reg on addr/metrics and returns a shutdown func.
func serveMetrics(addr string, reg *prometheus.Registry, logger *slog.Logger) func() {
	mux := http.NewServeMux()
	mux.Handle("/metrics", metrics.Handler(reg))
	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		logger.Info("metrics listening", "addr", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("metrics server failed", "error", err)
		}
	}()

	return func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		_ = srv.Shutdown(ctx)
	}
}
