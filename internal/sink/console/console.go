// Package console implements the console sink.
// Records are written one per line (json, text) or one document each (yaml).
package console

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sync"
	"sync/atomic"

	"gopkg.in/yaml.v3"

	"firestige.xyz/pitwall/internal/core"
	"firestige.xyz/pitwall/internal/log"
	"firestige.xyz/pitwall/internal/sink"
)

const (
	Type          = "console"
	defaultFormat = "json"
)

// Config represents console sink configuration.
type Config struct {
	Format string `mapstructure:"format"` // json|yaml|text, default json
	Pretty bool   `mapstructure:"pretty"` // indent json output
}

// Sink writes records to a writer, stdout by default.
type Sink struct {
	name   string
	config Config

	mu  sync.Mutex
	out io.Writer

	reportedCount atomic.Uint64
}

func init() {
	sink.Register(Type, func(name string) sink.Sink { return New(name, os.Stdout) })
}

// New creates a console sink writing to out.
func New(name string, out io.Writer) *Sink {
	return &Sink{name: name, out: out}
}

// Name returns the sink name.
func (s *Sink) Name() string {
	return s.name
}

// Init initializes the sink with configuration.
func (s *Sink) Init(cfg map[string]any) error {
	c := Config{Format: defaultFormat}
	if err := sink.DecodeOptions(cfg, &c); err != nil {
		return fmt.Errorf("console: %w", err)
	}
	switch c.Format {
	case "json", "yaml", "text":
	default:
		return fmt.Errorf("console: invalid format %q", c.Format)
	}
	s.config = c
	return nil
}

// Start starts the sink.
func (s *Sink) Start(ctx context.Context) error {
	log.GetLogger().WithFields(map[string]interface{}{
		"sink":   s.name,
		"format": s.config.Format,
	}).Debug("console sink started")
	return nil
}

// Stop stops the sink.
func (s *Sink) Stop(ctx context.Context) error {
	log.GetLogger().WithFields(map[string]interface{}{
		"sink":           s.name,
		"total_reported": s.reportedCount.Load(),
	}).Debug("console sink stopped")
	return nil
}

// Report writes one record.
func (s *Sink) Report(ctx context.Context, rec *core.Record) error {
	if rec == nil {
		return fmt.Errorf("nil record")
	}
	data, err := s.format(rec)
	if err != nil {
		return fmt.Errorf("format record failed: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, err := s.out.Write(data); err != nil {
		return fmt.Errorf("console write failed: %w", err)
	}
	s.reportedCount.Add(1)
	return nil
}

// Flush is a no-op, writes are unbuffered.
func (s *Sink) Flush(ctx context.Context) error {
	return nil
}

func (s *Sink) format(rec *core.Record) ([]byte, error) {
	switch s.config.Format {
	case "yaml":
		data, err := yaml.Marshal(rec)
		if err != nil {
			return nil, err
		}
		return append([]byte("---\n"), data...), nil
	case "text":
		return []byte(Summary(rec) + "\n"), nil
	default:
		var (
			data []byte
			err  error
		)
		if s.config.Pretty {
			data, err = json.MarshalIndent(rec, "", "  ")
		} else {
			data, err = json.Marshal(rec)
		}
		if err != nil {
			return nil, err
		}
		return append(data, '\n'), nil
	}
}
