// Package nats implements the NATS sink. Each record is published to
// <subject_prefix>.<kind> with its labels as message headers.
package nats

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/nats-io/nats.go"

	"firestige.xyz/pitwall/internal/core"
	"firestige.xyz/pitwall/internal/log"
	"firestige.xyz/pitwall/internal/sink"
)

const Type = "nats"

const (
	defaultSubjectPrefix = "pitwall"
	defaultClientName    = "pitwall"
	defaultReconnectWait = 2 * time.Second
	defaultMaxReconnects = 60
)

// Config represents NATS sink configuration.
type Config struct {
	URL           string        `mapstructure:"url"`            // default nats://127.0.0.1:4222
	SubjectPrefix string        `mapstructure:"subject_prefix"` // default pitwall
	ClientName    string        `mapstructure:"client_name"`    // default pitwall
	ReconnectWait time.Duration `mapstructure:"reconnect_wait"` // default 2s
	MaxReconnects int           `mapstructure:"max_reconnects"` // default 60, -1 retries forever
}

// publisher is the part of *nats.Conn the sink uses.
type publisher interface {
	PublishMsg(m *nats.Msg) error
	FlushWithContext(ctx context.Context) error
	Drain() error
}

// Sink publishes records to NATS.
type Sink struct {
	name   string
	config Config
	dial   func(cfg Config) (publisher, error)

	mu   sync.RWMutex
	conn publisher

	reportedCount atomic.Uint64
	errorCount    atomic.Uint64
}

func init() {
	sink.Register(Type, func(name string) sink.Sink { return New(name) })
}

// New creates a NATS sink. The connection is made by Start.
func New(name string) *Sink {
	return &Sink{name: name, dial: connect}
}

func connect(cfg Config) (publisher, error) {
	logger := log.GetLogger().WithField("url", cfg.URL)
	nc, err := nats.Connect(cfg.URL,
		nats.Name(cfg.ClientName),
		nats.ReconnectWait(cfg.ReconnectWait),
		nats.MaxReconnects(cfg.MaxReconnects),
		nats.DisconnectErrHandler(func(_ *nats.Conn, err error) {
			if err != nil {
				logger.WithError(err).Warn("nats disconnected")
			}
		}),
		nats.ReconnectHandler(func(nc *nats.Conn) {
			logger.WithField("server", nc.ConnectedUrl()).Info("nats reconnected")
		}),
	)
	if err != nil {
		return nil, err
	}
	return nc, nil
}

// Name returns the sink name.
func (s *Sink) Name() string {
	return s.name
}

// Init initializes the sink with configuration.
func (s *Sink) Init(cfg map[string]any) error {
	c := Config{
		URL:           nats.DefaultURL,
		SubjectPrefix: defaultSubjectPrefix,
		ClientName:    defaultClientName,
		ReconnectWait: defaultReconnectWait,
		MaxReconnects: defaultMaxReconnects,
	}
	if err := sink.DecodeOptions(cfg, &c); err != nil {
		return fmt.Errorf("nats: %w", err)
	}
	if c.SubjectPrefix == "" {
		return fmt.Errorf("subject_prefix is required")
	}
	s.config = c
	return nil
}

// Start connects to the server.
func (s *Sink) Start(ctx context.Context) error {
	conn, err := s.dial(s.config)
	if err != nil {
		return fmt.Errorf("nats connect %s: %w", s.config.URL, err)
	}

	s.mu.Lock()
	s.conn = conn
	s.mu.Unlock()

	log.GetLogger().WithFields(map[string]interface{}{
		"sink":           s.name,
		"url":            s.config.URL,
		"subject_prefix": s.config.SubjectPrefix,
	}).Info("nats sink started")
	return nil
}

// Stop drains the connection so buffered publishes are delivered.
func (s *Sink) Stop(ctx context.Context) error {
	s.mu.Lock()
	conn := s.conn
	s.conn = nil
	s.mu.Unlock()

	logger := log.GetLogger().WithField("sink", s.name)
	if conn != nil {
		if err := conn.Drain(); err != nil {
			logger.WithError(err).Error("error draining nats connection")
			return err
		}
	}

	logger.WithFields(map[string]interface{}{
		"total_reported": s.reportedCount.Load(),
		"total_errors":   s.errorCount.Load(),
	}).Info("nats sink stopped")
	return nil
}

// Subject returns the subject a record of the given kind is published to.
func (s *Sink) Subject(kind string) string {
	return s.config.SubjectPrefix + "." + kind
}

// Report publishes one record.
func (s *Sink) Report(ctx context.Context, rec *core.Record) error {
	if rec == nil {
		return fmt.Errorf("nil record")
	}

	s.mu.RLock()
	conn := s.conn
	s.mu.RUnlock()
	if conn == nil {
		s.errorCount.Add(1)
		return fmt.Errorf("nats sink not started")
	}

	data, err := json.Marshal(rec)
	if err != nil {
		s.errorCount.Add(1)
		return fmt.Errorf("serialize record failed: %w", err)
	}

	msg := nats.NewMsg(s.Subject(rec.Kind))
	msg.Data = data
	for k, v := range rec.Labels() {
		msg.Header.Set(k, v)
	}

	if err := conn.PublishMsg(msg); err != nil {
		s.errorCount.Add(1)
		return fmt.Errorf("nats publish failed: %w", err)
	}
	s.reportedCount.Add(1)
	return nil
}

// Flush waits for the server to acknowledge everything published so far.
func (s *Sink) Flush(ctx context.Context) error {
	s.mu.RLock()
	conn := s.conn
	s.mu.RUnlock()
	if conn == nil {
		return nil
	}
	return conn.FlushWithContext(ctx)
}
