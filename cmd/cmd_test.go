package cmd

import (
	"bytes"
	"context"
	"encoding/binary"
	"encoding/json"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"firestige.xyz/pitwall/internal/config"
	"firestige.xyz/pitwall/internal/core"
	"firestige.xyz/pitwall/internal/core/decoder"
	"firestige.xyz/pitwall/internal/log"
)

// sessionStarted is a complete 35-byte event datagram.
func sessionStarted() []byte {
	b := binary.LittleEndian.AppendUint16(nil, decoder.SupportedFormat)
	b = append(b, 1, 18, 1, byte(decoder.KindEvent))
	b = binary.LittleEndian.AppendUint64(b, 42)
	b = binary.LittleEndian.AppendUint32(b, math.Float32bits(0.5))
	b = binary.LittleEndian.AppendUint32(b, 9)
	b = append(b, 0, 255)
	b = append(b, decoder.EventSessionStarted...)
	return append(b, make([]byte, 7)...)
}

func writeFile(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, data, 0o600))
	return path
}

func defaultConfig(t *testing.T) *config.GlobalConfig {
	t.Helper()
	cfg, err := config.Default()
	require.NoError(t, err)
	return cfg
}

func TestRunDecodeJSON(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, runDecode(writeFile(t, "event.bin", sessionStarted()), "json", &out))

	var doc map[string]any
	require.NoError(t, json.Unmarshal(out.Bytes(), &doc))
	assert.Equal(t, "event", doc["kind"])
	pkt := doc["packet"].(map[string]any)
	assert.Equal(t, "SSTA", pkt["code"])
	assert.Equal(t, float64(9), pkt["header"].(map[string]any)["frame_identifier"])
}

func TestRunDecodeYAML(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, runDecode(writeFile(t, "event.bin", sessionStarted()), "yaml", &out))
	assert.Contains(t, out.String(), "kind: event\n")
	assert.Contains(t, out.String(), "code: SSTA\n")
}

func TestRunDecodeErrors(t *testing.T) {
	var out bytes.Buffer

	err := runDecode(writeFile(t, "event.bin", sessionStarted()), "xml", &out)
	assert.ErrorContains(t, err, "unsupported format")

	err = runDecode(filepath.Join(t.TempDir(), "missing.bin"), "json", &out)
	assert.ErrorContains(t, err, "failed to read file")

	err = runDecode(writeFile(t, "short.bin", sessionStarted()[:30]), "json", &out)
	assert.ErrorIs(t, err, core.ErrInvalidSize)

	assert.Empty(t, out.String())
}

func TestRunValidate(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, runValidate(defaultConfig(t), &out))
	assert.Equal(t, "VALID: listener 0.0.0.0:20777, 1 worker(s), 1 sink(s) [console], metrics disabled\n", out.String())

	cfg := defaultConfig(t)
	cfg.Metrics.Enabled = true
	cfg.Sinks = []config.SinkConfig{
		{Type: "console", Name: "stdout", Options: map[string]any{"format": "text"}},
		{Type: "nats", Name: "nats"},
	}
	out.Reset()
	require.NoError(t, runValidate(cfg, &out))
	assert.Contains(t, out.String(), "2 sink(s) [stdout(console), nats]")
	assert.Contains(t, out.String(), "metrics :9091/metrics")

	cfg.Sinks = []config.SinkConfig{{Type: "kafka", Name: "kafka"}}
	assert.ErrorIs(t, runValidate(cfg, &out), core.ErrSinkInitFailed)

	cfg.Sinks = []config.SinkConfig{{Type: "console", Name: "laps", Kinds: []string{"laps"}}}
	assert.ErrorIs(t, runValidate(cfg, &out), core.ErrSinkInitFailed)
}

func TestApplyListenFlags(t *testing.T) {
	c := &cobra.Command{}
	c.Flags().StringVar(&listenAddress, "address", "", "")
	c.Flags().IntVarP(&listenPort, "port", "p", config.DefaultPort, "")
	c.Flags().IntVarP(&listenWorkers, "workers", "w", 1, "")

	cfg := defaultConfig(t)
	require.NoError(t, c.Flags().Set("port", "20778"))
	require.NoError(t, c.Flags().Set("workers", "3"))
	require.NoError(t, applyListenFlags(c, cfg))
	assert.Equal(t, "0.0.0.0:20778", cfg.Listener.Addr())
	assert.Equal(t, 3, cfg.Pipeline.Workers)

	require.NoError(t, c.Flags().Set("port", "70000"))
	assert.ErrorIs(t, applyListenFlags(c, cfg), core.ErrConfigInvalid)
}

func TestApplyReplayFlags(t *testing.T) {
	c := &cobra.Command{}
	c.Flags().StringVarP(&replayFile, "file", "f", "", "")
	c.Flags().IntVarP(&replayPort, "port", "p", config.DefaultPort, "")
	c.Flags().BoolVar(&replayRealtime, "realtime", false, "")

	cfg := defaultConfig(t)
	assert.ErrorContains(t, applyReplayFlags(c, cfg), "capture file is required")

	require.NoError(t, c.Flags().Set("file", "race.pcap"))
	require.NoError(t, c.Flags().Set("port", "0"))
	require.NoError(t, c.Flags().Set("realtime", "true"))
	require.NoError(t, applyReplayFlags(c, cfg))
	assert.Equal(t, config.ReplayConfig{File: "race.pcap", Port: 0, Realtime: true}, cfg.Replay)
}

func TestRunReplayMissingFile(t *testing.T) {
	cfg := defaultConfig(t)
	cfg.Sinks = []config.SinkConfig{{Type: "console", Name: "console", Options: map[string]any{"format": "text"}}}
	cfg.Replay.File = filepath.Join(t.TempDir(), "missing.pcap")

	err := runReplay(context.Background(), cfg)
	assert.ErrorContains(t, err, "failed to open capture file")
}

func TestRunListenStopsOnCancel(t *testing.T) {
	cfg := defaultConfig(t)
	cfg.Listener.Address = "127.0.0.1"
	cfg.Listener.Port = 0
	cfg.Listener.ReadTimeout = 20 * time.Millisecond

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()
	assert.NoError(t, runListen(ctx, cfg))
}

func TestRunListenLogsWithConfiguredFormat(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "pitwall.log")
	cfg := defaultConfig(t)
	cfg.Listener.Address = "127.0.0.1"
	cfg.Listener.Port = 0
	cfg.Listener.ReadTimeout = 20 * time.Millisecond
	cfg.Log.Format = "json"
	cfg.Log.File.Enabled = true
	cfg.Log.File.Path = logPath
	t.Cleanup(func() { _ = log.Init(config.LogConfig{Level: "info", Format: "text"}) })

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()
	require.NoError(t, runListen(ctx, cfg))

	data, err := os.ReadFile(logPath)
	require.NoError(t, err)
	first, _, _ := strings.Cut(string(data), "\n")
	assert.Contains(t, first, `"msg":"udp listener bound"`)
}

func TestRootCommands(t *testing.T) {
	var names []string
	for _, c := range rootCmd.Commands() {
		names = append(names, c.Name())
	}
	joined := strings.Join(names, ",")
	for _, want := range []string{"listen", "replay", "decode", "validate"} {
		assert.Contains(t, joined, want)
	}
	assert.NotNil(t, rootCmd.PersistentFlags().Lookup("config"))
}
