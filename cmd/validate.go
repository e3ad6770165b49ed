package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"firestige.xyz/pitwall/internal/config"
	"firestige.xyz/pitwall/internal/sink"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate the configuration",
	Long: `Load the configuration (the --config file, or the built-in defaults plus
PITWALL_* environment overrides), validate it, initialize every sink
without connecting, and print a summary.

Examples:
  pitwall validate -c pitwall.yaml
  PITWALL_LISTENER_PORT=20778 pitwall validate`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := loadConfig()
		if err != nil {
			fmt.Fprintf(os.Stderr, "INVALID: %v\n", err)
			os.Exit(1)
		}
		if err := runValidate(cfg, os.Stdout); err != nil {
			fmt.Fprintf(os.Stderr, "INVALID: %v\n", err)
			os.Exit(1)
		}
	},
}

func runValidate(cfg *config.GlobalConfig, out io.Writer) error {
	sinks, err := sink.Build(cfg.Sinks)
	if err != nil {
		return err
	}

	names := make([]string, 0, len(cfg.Sinks))
	for _, s := range cfg.Sinks {
		if s.Name == s.Type {
			names = append(names, s.Type)
		} else {
			names = append(names, s.Name+"("+s.Type+")")
		}
	}

	metricsAddr := "disabled"
	if cfg.Metrics.Enabled {
		metricsAddr = cfg.Metrics.Listen + cfg.Metrics.Path
	}

	fmt.Fprintf(out, "VALID: listener %s, %d worker(s), %d sink(s) [%s], metrics %s\n",
		cfg.Listener.Addr(),
		cfg.Pipeline.Workers,
		len(sinks),
		strings.Join(names, ", "),
		metricsAddr,
	)
	return nil
}
