package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"firestige.xyz/pitwall/internal/config"
	"firestige.xyz/pitwall/internal/log"
	"firestige.xyz/pitwall/internal/metrics"
	"firestige.xyz/pitwall/internal/pipeline"
	"firestige.xyz/pitwall/internal/sink"
	"firestige.xyz/pitwall/internal/source"
)

const shutdownTimeout = 5 * time.Second

// signalContext is cancelled on SIGINT or SIGTERM.
func signalContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
}

// initLogging installs the configured logger. Call it before opening a
// source.
func initLogging(cfg config.LogConfig) (func(), error) {
	if err := log.Init(cfg); err != nil {
		return nil, fmt.Errorf("failed to init logger: %w", err)
	}
	return func() { _ = log.Close() }, nil
}

// runPipeline wires metrics and sinks around one source and blocks until
// the source ends or ctx is cancelled.
func runPipeline(ctx context.Context, cfg *config.GlobalConfig, src source.Source) error {
	logger := log.GetLogger()

	if cfg.Metrics.Enabled {
		srv := metrics.NewServer(cfg.Metrics.Listen, cfg.Metrics.Path)
		if err := srv.Start(ctx); err != nil {
			return fmt.Errorf("failed to start metrics server: %w", err)
		}
		defer func() {
			stopCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			if err := srv.Stop(stopCtx); err != nil {
				logger.WithError(err).Error("error stopping metrics server")
			}
		}()
	} else {
		logger.Debug("metrics server disabled")
	}

	sinks, err := sink.Build(cfg.Sinks)
	if err != nil {
		return fmt.Errorf("failed to build sinks: %w", err)
	}

	p := pipeline.NewBuilder().
		WithSource(src).
		WithSinks(sinks...).
		WithConfig(cfg.Pipeline).
		Build()
	return p.Run(ctx)
}
