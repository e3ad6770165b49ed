// Package config handles global configuration loading using viper.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"

	"firestige.xyz/pitwall/internal/core"
)

// DefaultPort is the game's default telemetry port.
const DefaultPort = 20777

// minBufferSize is the smallest receive buffer that can hold every packet
// kind; Motion is the largest minimum-sized layout.
const minBufferSize = 1464

// GlobalConfig represents the top-level configuration.
// Maps to the `pitwall:` root key in YAML.
type GlobalConfig struct {
	Listener ListenerConfig `mapstructure:"listener"`
	Replay   ReplayConfig   `mapstructure:"replay"`
	Pipeline PipelineConfig `mapstructure:"pipeline"`
	Sinks    []SinkConfig   `mapstructure:"sinks"`
	Metrics  MetricsConfig  `mapstructure:"metrics"`
	Log      LogConfig      `mapstructure:"log"`
}

// ─── Sources ───

// ListenerConfig configures the live UDP listener.
type ListenerConfig struct {
	Address     string          `mapstructure:"address"`      // Empty = all interfaces
	Port        int             `mapstructure:"port"`         // Default 20777
	BufferSize  int             `mapstructure:"buffer_size"`  // Bytes per datagram slot
	BatchSize   int             `mapstructure:"batch_size"`   // Datagrams per read syscall
	ReadTimeout time.Duration   `mapstructure:"read_timeout"` // Poll interval for cancellation
	RateLimit   RateLimitConfig `mapstructure:"rate_limit"`
}

// RateLimitConfig caps datagrams accepted from one sender address.
type RateLimitConfig struct {
	MaxPerSender int           `mapstructure:"max_per_sender"` // Per window, 0 = disabled
	Window       time.Duration `mapstructure:"window"`         // Default 1s
}

// Addr returns the host:port the listener binds to.
func (l ListenerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", l.Address, l.Port)
}

// ReplayConfig configures offline replay of capture files.
type ReplayConfig struct {
	File     string `mapstructure:"file"`
	Port     int    `mapstructure:"port"`     // UDP destination port to keep, 0 = any
	Realtime bool   `mapstructure:"realtime"` // Honour capture timestamps between packets
}

// ─── Pipeline ───

// PipelineConfig controls the decode stage between source and sinks.
type PipelineConfig struct {
	Workers         int `mapstructure:"workers"`          // Decode goroutines; 1 keeps arrival order
	ChannelCapacity int `mapstructure:"channel_capacity"` // Datagrams buffered between source and workers
}

// ─── Sinks ───

// SinkConfig declares one output. Options are passed to the sink's Init.
type SinkConfig struct {
	Type    string         `mapstructure:"type"`  // console | kafka | nats
	Name    string         `mapstructure:"name"`  // Empty = type
	Kinds   []string       `mapstructure:"kinds"` // Packet kinds to deliver, empty = all
	Options map[string]any `mapstructure:"options"`
}

var sinkTypes = map[string]bool{"console": true, "kafka": true, "nats": true}

// ─── Metrics ───

// MetricsConfig contains Prometheus metrics settings.
type MetricsConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Listen  string `mapstructure:"listen"`
	Path    string `mapstructure:"path"`
}

// ─── Log ───

// LogConfig contains logging settings.
type LogConfig struct {
	Level  string           `mapstructure:"level"`  // debug / info / warn / error
	Format string           `mapstructure:"format"` // json / text
	File   FileOutputConfig `mapstructure:"file"`
}

// FileOutputConfig configures file log output.
type FileOutputConfig struct {
	Enabled  bool           `mapstructure:"enabled"`
	Path     string         `mapstructure:"path"`
	Rotation RotationConfig `mapstructure:"rotation"`
}

// RotationConfig configures log file rotation.
type RotationConfig struct {
	MaxSizeMB  int  `mapstructure:"max_size_mb"`  // MB
	MaxAgeDays int  `mapstructure:"max_age_days"` // Days
	MaxBackups int  `mapstructure:"max_backups"`
	Compress   bool `mapstructure:"compress"`
}

// ─── Loading ───

// configRoot is the top-level wrapper matching the YAML structure `pitwall: ...`.
type configRoot struct {
	Pitwall GlobalConfig `mapstructure:"pitwall"`
}

// Load loads configuration from file.
// The YAML file uses `pitwall:` as root key; env vars use the PITWALL_ prefix
// (e.g., PITWALL_LISTENER_PORT).
func Load(path string) (*GlobalConfig, error) {
	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	return load(v)
}

// Default returns the built-in configuration with environment overrides,
// for running without a config file.
func Default() (*GlobalConfig, error) {
	return load(viper.New())
}

func load(v *viper.Viper) (*GlobalConfig, error) {
	// The `pitwall.` key prefix maps to `PITWALL_` through the replacer.
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	var root configRoot
	if err := v.Unmarshal(&root); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	cfg := root.Pitwall

	if err := cfg.ValidateAndApplyDefaults(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return &cfg, nil
}

// setDefaults sets default values for configuration.
// All keys use the "pitwall." prefix to match the YAML root wrapper.
func setDefaults(v *viper.Viper) {
	// Listener defaults
	v.SetDefault("pitwall.listener.address", "0.0.0.0")
	v.SetDefault("pitwall.listener.port", DefaultPort)
	v.SetDefault("pitwall.listener.buffer_size", 2048)
	v.SetDefault("pitwall.listener.batch_size", 16)
	v.SetDefault("pitwall.listener.read_timeout", "500ms")
	v.SetDefault("pitwall.listener.rate_limit.max_per_sender", 0)
	v.SetDefault("pitwall.listener.rate_limit.window", "1s")

	// Replay defaults
	v.SetDefault("pitwall.replay.file", "")
	v.SetDefault("pitwall.replay.port", DefaultPort)
	v.SetDefault("pitwall.replay.realtime", false)

	// Pipeline defaults
	v.SetDefault("pitwall.pipeline.workers", 1)
	v.SetDefault("pitwall.pipeline.channel_capacity", 1024)

	// Metrics defaults
	v.SetDefault("pitwall.metrics.enabled", false)
	v.SetDefault("pitwall.metrics.listen", ":9091")
	v.SetDefault("pitwall.metrics.path", "/metrics")

	// Log defaults
	v.SetDefault("pitwall.log.level", "info")
	v.SetDefault("pitwall.log.format", "text")
	v.SetDefault("pitwall.log.file.enabled", false)
	v.SetDefault("pitwall.log.file.path", "/var/log/pitwall/pitwall.log")
	v.SetDefault("pitwall.log.file.rotation.max_size_mb", 100)
	v.SetDefault("pitwall.log.file.rotation.max_age_days", 30)
	v.SetDefault("pitwall.log.file.rotation.max_backups", 5)
	v.SetDefault("pitwall.log.file.rotation.compress", true)
}

// ValidateAndApplyDefaults validates configuration and applies runtime defaults.
// Every returned error wraps core.ErrConfigInvalid.
func (cfg *GlobalConfig) ValidateAndApplyDefaults() error {
	// ── Log validation ──
	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[cfg.Log.Level] {
		return invalid("invalid log level: %s (must be debug/info/warn/error)", cfg.Log.Level)
	}
	if cfg.Log.Format != "json" && cfg.Log.Format != "text" {
		return invalid("invalid log format: %s (must be json/text)", cfg.Log.Format)
	}
	if cfg.Log.File.Enabled && cfg.Log.File.Path == "" {
		return invalid("log.file.path is required when log.file.enabled=true")
	}

	// ── Listener validation ──
	if cfg.Listener.Port < 1 || cfg.Listener.Port > 65535 {
		return invalid("listener.port out of range: %d", cfg.Listener.Port)
	}
	if cfg.Listener.BufferSize < minBufferSize {
		return invalid("listener.buffer_size must be at least %d, got %d", minBufferSize, cfg.Listener.BufferSize)
	}
	if cfg.Listener.BatchSize < 1 {
		return invalid("listener.batch_size must be positive, got %d", cfg.Listener.BatchSize)
	}
	if cfg.Listener.ReadTimeout <= 0 {
		return invalid("listener.read_timeout must be positive, got %s", cfg.Listener.ReadTimeout)
	}
	if cfg.Listener.RateLimit.MaxPerSender < 0 {
		return invalid("listener.rate_limit.max_per_sender must not be negative, got %d", cfg.Listener.RateLimit.MaxPerSender)
	}

	// ── Replay validation ──
	if cfg.Replay.Port < 0 || cfg.Replay.Port > 65535 {
		return invalid("replay.port out of range: %d", cfg.Replay.Port)
	}

	// ── Pipeline validation ──
	if cfg.Pipeline.Workers < 1 {
		return invalid("pipeline.workers must be at least 1, got %d", cfg.Pipeline.Workers)
	}
	if cfg.Pipeline.ChannelCapacity < 1 {
		return invalid("pipeline.channel_capacity must be positive, got %d", cfg.Pipeline.ChannelCapacity)
	}

	// ── Sinks ──
	if len(cfg.Sinks) == 0 {
		cfg.Sinks = []SinkConfig{{Type: "console"}}
	}
	seen := make(map[string]bool, len(cfg.Sinks))
	for i := range cfg.Sinks {
		s := &cfg.Sinks[i]
		if !sinkTypes[s.Type] {
			return invalid("unsupported sinks[%d].type: %q (must be console/kafka/nats)", i, s.Type)
		}
		if s.Name == "" {
			s.Name = s.Type
		}
		if seen[s.Name] {
			return invalid("duplicate sink name: %s", s.Name)
		}
		seen[s.Name] = true
	}

	// ── Metrics ──
	if cfg.Metrics.Enabled && cfg.Metrics.Listen == "" {
		return invalid("metrics.listen is required when metrics.enabled=true")
	}
	if cfg.Metrics.Path == "" {
		cfg.Metrics.Path = "/metrics"
	}

	return nil
}

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", core.ErrConfigInvalid, fmt.Sprintf(format, args...))
}
