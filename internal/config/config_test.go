package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"firestige.xyz/pitwall/internal/core"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	configPath := filepath.Join(t.TempDir(), "config.yml")
	if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write test config: %v", err)
	}
	return configPath
}

func TestLoadValidConfig(t *testing.T) {
	configPath := writeConfig(t, `
pitwall:
  listener:
    address: "127.0.0.1"
    port: 20778
    buffer_size: 4096
    batch_size: 32
    read_timeout: "250ms"
  pipeline:
    workers: 2
  sinks:
    - type: console
      options:
        format: yaml
    - type: kafka
      name: telemetry
      options:
        brokers: ["localhost:9092"]
        topic: f1.telemetry
  metrics:
    enabled: true
    listen: "127.0.0.1:9100"
  log:
    level: debug
    format: json
`)

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	if cfg.Listener.Addr() != "127.0.0.1:20778" {
		t.Errorf("Expected listener 127.0.0.1:20778, got %s", cfg.Listener.Addr())
	}
	if cfg.Listener.BufferSize != 4096 || cfg.Listener.BatchSize != 32 {
		t.Errorf("Unexpected listener sizes: %+v", cfg.Listener)
	}
	if cfg.Listener.ReadTimeout != 250*time.Millisecond {
		t.Errorf("Expected read timeout 250ms, got %s", cfg.Listener.ReadTimeout)
	}
	if cfg.Pipeline.Workers != 2 {
		t.Errorf("Expected 2 workers, got %d", cfg.Pipeline.Workers)
	}
	if len(cfg.Sinks) != 2 {
		t.Fatalf("Expected 2 sinks, got %d", len(cfg.Sinks))
	}
	if cfg.Sinks[0].Name != "console" || cfg.Sinks[0].Options["format"] != "yaml" {
		t.Errorf("Unexpected console sink: %+v", cfg.Sinks[0])
	}
	if cfg.Sinks[1].Name != "telemetry" || cfg.Sinks[1].Options["topic"] != "f1.telemetry" {
		t.Errorf("Unexpected kafka sink: %+v", cfg.Sinks[1])
	}
	if !cfg.Metrics.Enabled || cfg.Metrics.Listen != "127.0.0.1:9100" || cfg.Metrics.Path != "/metrics" {
		t.Errorf("Unexpected metrics config: %+v", cfg.Metrics)
	}
	if cfg.Log.Level != "debug" || cfg.Log.Format != "json" {
		t.Errorf("Unexpected log config: %+v", cfg.Log)
	}
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, "pitwall: {}\n"))
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	if cfg.Listener.Port != DefaultPort {
		t.Errorf("Expected default port %d, got %d", DefaultPort, cfg.Listener.Port)
	}
	if cfg.Listener.BufferSize != 2048 {
		t.Errorf("Expected default buffer 2048, got %d", cfg.Listener.BufferSize)
	}
	if cfg.Listener.RateLimit.MaxPerSender != 0 || cfg.Listener.RateLimit.Window != time.Second {
		t.Errorf("Unexpected rate limit defaults: %+v", cfg.Listener.RateLimit)
	}
	if cfg.Replay.Port != DefaultPort || cfg.Replay.Realtime {
		t.Errorf("Unexpected replay defaults: %+v", cfg.Replay)
	}
	if cfg.Pipeline.Workers != 1 || cfg.Pipeline.ChannelCapacity != 1024 {
		t.Errorf("Unexpected pipeline defaults: %+v", cfg.Pipeline)
	}
	if len(cfg.Sinks) != 1 || cfg.Sinks[0].Type != "console" {
		t.Errorf("Expected a single console sink, got %+v", cfg.Sinks)
	}
	if cfg.Log.Level != "info" || cfg.Log.Format != "text" {
		t.Errorf("Unexpected log defaults: %+v", cfg.Log)
	}
	if cfg.Metrics.Enabled {
		t.Error("Expected metrics disabled by default")
	}
}

func TestDefaultWithoutFile(t *testing.T) {
	cfg, err := Default()
	if err != nil {
		t.Fatalf("Default failed: %v", err)
	}
	if cfg.Listener.Addr() != "0.0.0.0:20777" {
		t.Errorf("Expected 0.0.0.0:20777, got %s", cfg.Listener.Addr())
	}
}

func TestLoadEnvOverride(t *testing.T) {
	configPath := writeConfig(t, `
pitwall:
  log:
    level: info
`)
	t.Setenv("PITWALL_LOG_LEVEL", "debug")
	t.Setenv("PITWALL_LISTENER_PORT", "30000")

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("Expected log level debug from env var, got %s", cfg.Log.Level)
	}
	if cfg.Listener.Port != 30000 {
		t.Errorf("Expected port 30000 from env var, got %d", cfg.Listener.Port)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yml")); err == nil {
		t.Error("Expected error for missing config file, got nil")
	}
}

func TestLoadInvalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"log level", "pitwall:\n  log:\n    level: verbose\n"},
		{"log format", "pitwall:\n  log:\n    format: xml\n"},
		{"log file without path", "pitwall:\n  log:\n    file:\n      enabled: true\n      path: \"\"\n"},
		{"port", "pitwall:\n  listener:\n    port: 70000\n"},
		{"buffer too small for motion", "pitwall:\n  listener:\n    buffer_size: 1463\n"},
		{"batch size", "pitwall:\n  listener:\n    batch_size: 0\n"},
		{"rate limit", "pitwall:\n  listener:\n    rate_limit:\n      max_per_sender: -1\n"},
		{"workers", "pitwall:\n  pipeline:\n    workers: 0\n"},
		{"channel capacity", "pitwall:\n  pipeline:\n    channel_capacity: 0\n"},
		{"replay port", "pitwall:\n  replay:\n    port: -1\n"},
		{"sink type", "pitwall:\n  sinks:\n    - type: loki\n"},
		{"duplicate sink", "pitwall:\n  sinks:\n    - type: console\n    - type: console\n"},
		{"metrics listen", "pitwall:\n  metrics:\n    enabled: true\n    listen: \"\"\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.content))
			if err == nil {
				t.Fatal("Expected validation error, got nil")
			}
			if !errors.Is(err, core.ErrConfigInvalid) {
				t.Errorf("Expected ErrConfigInvalid, got %v", err)
			}
		})
	}
}
