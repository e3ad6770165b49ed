// Package kafka implements the Kafka sink.
// Records are sent as JSON, keyed by session UID so every packet of one
// session lands on the same partition in order.
package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"sync/atomic"
	"time"

	"github.com/segmentio/kafka-go"

	"firestige.xyz/pitwall/internal/core"
	"firestige.xyz/pitwall/internal/log"
	"firestige.xyz/pitwall/internal/metrics"
	"firestige.xyz/pitwall/internal/sink"
)

const Type = "kafka"

const (
	defaultBatchSize    = 100
	defaultBatchTimeout = 100 * time.Millisecond
	defaultCompression  = "snappy"
	defaultMaxAttempts  = 3
)

// Config represents Kafka sink configuration.
type Config struct {
	Brokers      []string      `mapstructure:"brokers"`       // required
	Topic        string        `mapstructure:"topic"`         // required
	BatchSize    int           `mapstructure:"batch_size"`    // optional, default 100
	BatchTimeout time.Duration `mapstructure:"batch_timeout"` // optional, default 100ms
	Compression  string        `mapstructure:"compression"`   // optional: none|gzip|snappy|lz4, default snappy
	MaxAttempts  int           `mapstructure:"max_attempts"`  // optional, default 3
	Async        bool          `mapstructure:"async"`         // optional, default true
}

// messageWriter is the part of kafka.Writer the sink uses.
type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// Sink sends records to a Kafka topic.
type Sink struct {
	name   string
	writer messageWriter
	config Config

	// Statistics
	reportedCount atomic.Uint64
	errorCount    atomic.Uint64
}

func init() {
	sink.Register(Type, func(name string) sink.Sink { return New(name) })
}

// New creates a Kafka sink.
func New(name string) *Sink {
	return &Sink{name: name}
}

// Name returns the sink name.
func (s *Sink) Name() string {
	return s.name
}

// Init initializes the sink with configuration.
func (s *Sink) Init(cfg map[string]any) error {
	if cfg == nil {
		return fmt.Errorf("kafka sink requires configuration")
	}

	c := Config{
		BatchSize:    defaultBatchSize,
		BatchTimeout: defaultBatchTimeout,
		Compression:  defaultCompression,
		MaxAttempts:  defaultMaxAttempts,
		Async:        true,
	}
	if err := sink.DecodeOptions(cfg, &c); err != nil {
		return fmt.Errorf("kafka: %w", err)
	}
	if len(c.Brokers) == 0 {
		return fmt.Errorf("brokers is required")
	}
	if c.Topic == "" {
		return fmt.Errorf("topic is required")
	}

	codec, err := compression(c.Compression)
	if err != nil {
		return err
	}
	// Synchronous writes block until their batch flushes.
	if !c.Async {
		c.BatchSize = 1
	}
	s.config = c

	w := &kafka.Writer{
		Addr:         kafka.TCP(c.Brokers...),
		Topic:        c.Topic,
		Balancer:     &kafka.Hash{},
		BatchSize:    c.BatchSize,
		BatchTimeout: c.BatchTimeout,
		MaxAttempts:  c.MaxAttempts,
		Compression:  codec,
		Async:        c.Async,
	}
	if c.Async {
		w.Completion = s.completed
	}
	s.writer = w
	return nil
}

// completed receives the outcome of every asynchronous batch.
func (s *Sink) completed(msgs []kafka.Message, err error) {
	if err == nil {
		return
	}
	n := uint64(len(msgs))
	s.errorCount.Add(n)
	metrics.SinkErrorsTotal.WithLabelValues(s.name).Add(float64(n))
	log.GetLogger().WithError(err).WithFields(map[string]interface{}{
		"sink":     s.name,
		"messages": n,
	}).Error("kafka async write failed")
}

func compression(name string) (kafka.Compression, error) {
	switch name {
	case "none", "":
		return 0, nil
	case "gzip":
		return kafka.Gzip, nil
	case "snappy":
		return kafka.Snappy, nil
	case "lz4":
		return kafka.Lz4, nil
	default:
		return 0, fmt.Errorf("invalid compression type: %s", name)
	}
}

// Start starts the sink.
func (s *Sink) Start(ctx context.Context) error {
	log.GetLogger().WithFields(map[string]interface{}{
		"sink":          s.name,
		"brokers":       s.config.Brokers,
		"topic":         s.config.Topic,
		"batch_size":    s.config.BatchSize,
		"batch_timeout": s.config.BatchTimeout,
		"compression":   s.config.Compression,
		"async":         s.config.Async,
	}).Info("kafka sink started")
	return nil
}

// Stop closes the writer, flushing pending messages.
func (s *Sink) Stop(ctx context.Context) error {
	logger := log.GetLogger().WithField("sink", s.name)
	if s.writer != nil {
		if err := s.writer.Close(); err != nil {
			logger.WithError(err).Error("error closing kafka writer")
			return err
		}
	}

	logger.WithFields(map[string]interface{}{
		"total_reported": s.reportedCount.Load(),
		"total_errors":   s.errorCount.Load(),
	}).Info("kafka sink stopped")
	return nil
}

// Report sends a record to Kafka. In async mode it only enqueues the
// message; delivery failures are counted when the batch completes.
func (s *Sink) Report(ctx context.Context, rec *core.Record) error {
	if rec == nil {
		return fmt.Errorf("nil record")
	}

	msg, err := message(rec)
	if err != nil {
		s.errorCount.Add(1)
		return fmt.Errorf("serialize record failed: %w", err)
	}

	if err := s.writer.WriteMessages(ctx, msg); err != nil {
		s.errorCount.Add(1)
		return fmt.Errorf("kafka write failed: %w", err)
	}

	s.reportedCount.Add(1)
	return nil
}

// message builds the Kafka message for one record. Labels become headers
// in key order.
func message(rec *core.Record) (kafka.Message, error) {
	value, err := json.Marshal(rec)
	if err != nil {
		return kafka.Message{}, err
	}

	labels := rec.Labels()
	keys := make([]string, 0, len(labels))
	for k := range labels {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	headers := make([]kafka.Header, 0, len(keys))
	for _, k := range keys {
		headers = append(headers, kafka.Header{Key: k, Value: []byte(labels[k])})
	}

	return kafka.Message{
		Key:     []byte(strconv.FormatUint(rec.SessionUID, 10)),
		Value:   value,
		Headers: headers,
		Time:    rec.Timestamp,
	}, nil
}

// Flush is a no-op. kafka.Writer batches by BatchSize/BatchTimeout and
// flushes on Close.
func (s *Sink) Flush(ctx context.Context) error {
	return nil
}
