// Package cmd implements CLI commands using cobra framework.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"firestige.xyz/pitwall/internal/config"

	// Sink types available to the sinks config section.
	_ "firestige.xyz/pitwall/internal/sink/console"
	_ "firestige.xyz/pitwall/internal/sink/kafka"
	_ "firestige.xyz/pitwall/internal/sink/nats"
)

var (
	// Global flags
	configFile string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "pitwall",
	Short: "pitwall - F1 2020 UDP telemetry decoder and relay",
	Long: `pitwall decodes the UDP telemetry stream of the F1 2020 game into typed
records and relays them to the console, Kafka or NATS.

It can listen for the live stream, replay a packet capture through the same
pipeline, or decode a single raw datagram for inspection.`,
	Version:       "0.1.0",
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "",
		"config file path (built-in defaults when empty)")

	rootCmd.AddCommand(listenCmd)
	rootCmd.AddCommand(replayCmd)
	rootCmd.AddCommand(decodeCmd)
	rootCmd.AddCommand(validateCmd)
}

// loadConfig reads the --config file, or the defaults when none is given.
func loadConfig() (*config.GlobalConfig, error) {
	if configFile == "" {
		return config.Default()
	}
	return config.Load(configFile)
}

// exitWithError prints error message and exits with code 1
func exitWithError(msg string, err error) {
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s: %v\n", msg, err)
	} else {
		fmt.Fprintf(os.Stderr, "Error: %s\n", msg)
	}
	os.Exit(1)
}
