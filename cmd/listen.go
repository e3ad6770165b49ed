package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"firestige.xyz/pitwall/internal/config"
	"firestige.xyz/pitwall/internal/source/udp"
)

var listenCmd = &cobra.Command{
	Use:   "listen",
	Short: "Decode the live telemetry stream",
	Long: `Bind a UDP socket and decode every datagram the game sends until
SIGINT or SIGTERM.

Examples:
  pitwall listen                          # 0.0.0.0:20777, console sink
  pitwall listen --port 20778 -c pitwall.yaml
  pitwall listen --address 192.168.1.10 --workers 2`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := loadConfig()
		if err != nil {
			exitWithError("failed to load config", err)
		}
		if err := applyListenFlags(cmd, cfg); err != nil {
			exitWithError("invalid flags", err)
		}

		ctx, stop := signalContext()
		defer stop()
		if err := runListen(ctx, cfg); err != nil {
			exitWithError("listener failed", err)
		}
	},
}

var (
	listenAddress string
	listenPort    int
	listenWorkers int
)

func init() {
	listenCmd.Flags().StringVar(&listenAddress, "address", "", "address to bind (overrides listener.address)")
	listenCmd.Flags().IntVarP(&listenPort, "port", "p", config.DefaultPort, "UDP port to bind (overrides listener.port)")
	listenCmd.Flags().IntVarP(&listenWorkers, "workers", "w", 1, "decode workers (overrides pipeline.workers)")
}

// applyListenFlags overlays explicitly set flags on cfg and revalidates it.
func applyListenFlags(cmd *cobra.Command, cfg *config.GlobalConfig) error {
	if cmd.Flags().Changed("address") {
		cfg.Listener.Address = listenAddress
	}
	if cmd.Flags().Changed("port") {
		cfg.Listener.Port = listenPort
	}
	if cmd.Flags().Changed("workers") {
		cfg.Pipeline.Workers = listenWorkers
	}
	return cfg.ValidateAndApplyDefaults()
}

func runListen(ctx context.Context, cfg *config.GlobalConfig) error {
	closeLog, err := initLogging(cfg.Log)
	if err != nil {
		return err
	}
	defer closeLog()

	src := udp.New(cfg.Listener)
	if err := src.Start(ctx); err != nil {
		return fmt.Errorf("failed to bind listener: %w", err)
	}
	defer src.Stop(context.Background())
	return runPipeline(ctx, cfg, src)
}
