package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"firestige.xyz/pitwall/internal/config"
	"firestige.xyz/pitwall/internal/source/pcap"
)

var replayCmd = &cobra.Command{
	Use:   "replay",
	Short: "Feed a packet capture through the pipeline",
	Long: `Read a pcap or pcapng file, keep the UDP payloads sent to the telemetry
port and decode them exactly as the live listener would.

Examples:
  pitwall replay -f race.pcap                  # as fast as possible
  pitwall replay -f race.pcapng --realtime     # original packet timing
  pitwall replay -f lan.pcap --port 0          # every UDP payload`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := loadConfig()
		if err != nil {
			exitWithError("failed to load config", err)
		}
		if err := applyReplayFlags(cmd, cfg); err != nil {
			exitWithError("invalid flags", err)
		}

		ctx, stop := signalContext()
		defer stop()
		if err := runReplay(ctx, cfg); err != nil {
			exitWithError("replay failed", err)
		}
	},
}

var (
	replayFile     string
	replayPort     int
	replayRealtime bool
)

func init() {
	replayCmd.Flags().StringVarP(&replayFile, "file", "f", "", "capture file to replay (overrides replay.file)")
	replayCmd.Flags().IntVarP(&replayPort, "port", "p", config.DefaultPort, "UDP destination port to keep, 0 = any (overrides replay.port)")
	replayCmd.Flags().BoolVar(&replayRealtime, "realtime", false, "sleep for the recorded gaps between packets")
}

// applyReplayFlags overlays explicitly set flags on cfg and revalidates it.
func applyReplayFlags(cmd *cobra.Command, cfg *config.GlobalConfig) error {
	if cmd.Flags().Changed("file") {
		cfg.Replay.File = replayFile
	}
	if cmd.Flags().Changed("port") {
		cfg.Replay.Port = replayPort
	}
	if cmd.Flags().Changed("realtime") {
		cfg.Replay.Realtime = replayRealtime
	}
	if cfg.Replay.File == "" {
		return fmt.Errorf("a capture file is required (--file or replay.file)")
	}
	return cfg.ValidateAndApplyDefaults()
}

func runReplay(ctx context.Context, cfg *config.GlobalConfig) error {
	closeLog, err := initLogging(cfg.Log)
	if err != nil {
		return err
	}
	defer closeLog()

	src, err := pcap.New(pcap.Config{
		File:     cfg.Replay.File,
		Port:     uint16(cfg.Replay.Port),
		Realtime: cfg.Replay.Realtime,
	})
	if err != nil {
		return err
	}
	return runPipeline(ctx, cfg, src)
}
