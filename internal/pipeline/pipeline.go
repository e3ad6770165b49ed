// Package pipeline connects a datagram source to the decoder and sinks.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"firestige.xyz/pitwall/internal/core"
	"firestige.xyz/pitwall/internal/core/decoder"
	"firestige.xyz/pitwall/internal/log"
	"firestige.xyz/pitwall/internal/metrics"
	"firestige.xyz/pitwall/internal/sink"
	"firestige.xyz/pitwall/internal/source"
)

const (
	defaultChannelCapacity = 1024
	shutdownTimeout        = 5 * time.Second
)

// Pipeline decodes every datagram from one source and reports the
// resulting records to all sinks. Decode failures drop the datagram;
// sink failures are counted and never stop the pipeline.
type Pipeline struct {
	source   source.Source
	decoder  decoder.Decoder
	sinks    []sink.Sink
	workers  int
	capacity int
	metrics  *Metrics
	logger   log.Logger

	mu      sync.Mutex
	running bool
}

// Config contains pipeline configuration.
type Config struct {
	Source          source.Source
	Decoder         decoder.Decoder // Default decoder.New()
	Sinks           []sink.Sink
	Workers         int             // Decode goroutines, default 1
	ChannelCapacity int             // Datagrams buffered between source and workers
}

// New creates a new pipeline.
func New(cfg Config) *Pipeline {
	if cfg.Decoder == nil {
		cfg.Decoder = decoder.New()
	}
	if cfg.Workers <= 0 {
		cfg.Workers = 1
	}
	if cfg.ChannelCapacity <= 0 {
		cfg.ChannelCapacity = defaultChannelCapacity
	}

	return &Pipeline{
		source:   cfg.Source,
		decoder:  cfg.Decoder,
		sinks:    cfg.Sinks,
		workers:  cfg.Workers,
		capacity: cfg.ChannelCapacity,
		metrics:  NewMetrics(cfg.Source.Name()),
		logger:   log.GetLogger().WithField("source", cfg.Source.Name()),
	}
}

// Run starts the sinks and processes datagrams until the source ends or ctx
// is cancelled. Sinks are then flushed and stopped. The returned error is
// the source's failure, if any, joined with sink stop errors.
func (p *Pipeline) Run(ctx context.Context) error {
	p.mu.Lock()
	if p.running {
		p.mu.Unlock()
		return fmt.Errorf("pipeline already running")
	}
	p.running = true
	p.mu.Unlock()
	defer func() {
		p.mu.Lock()
		p.running = false
		p.mu.Unlock()
	}()

	if err := p.startSinks(ctx); err != nil {
		return err
	}

	p.logger.WithFields(map[string]interface{}{
		"workers":          p.workers,
		"channel_capacity": p.capacity,
		"sinks":            len(p.sinks),
	}).Info("pipeline starting")

	ch := make(chan core.Datagram, p.capacity)

	var captureErr error
	var captureWG sync.WaitGroup
	captureWG.Add(1)
	go func() {
		defer captureWG.Done()
		defer close(ch)
		if err := p.source.Capture(ctx, ch); err != nil && ctx.Err() == nil {
			captureErr = err
			p.logger.WithError(err).Error("capture failed")
		}
	}()

	var wg sync.WaitGroup
	for i := 0; i < p.workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			p.processLoop(ctx, ch)
		}()
	}

	wg.Wait()
	captureWG.Wait()

	stopErr := p.stopSinks()
	stats := p.Stats()
	p.logger.WithFields(map[string]interface{}{
		"received":      stats.Received,
		"decoded":       stats.Decoded,
		"decode_errors": stats.DecodeErrors,
		"reported":      stats.Reported,
		"report_errors": stats.ReportErrors,
	}).Info("pipeline stopped")

	return errors.Join(captureErr, stopErr)
}

// startSinks starts every sink, stopping those already started if one fails.
func (p *Pipeline) startSinks(ctx context.Context) error {
	for i, s := range p.sinks {
		if err := s.Start(ctx); err != nil {
			for _, started := range p.sinks[:i] {
				_ = started.Stop(context.Background())
			}
			return fmt.Errorf("start sink %s: %w", s.Name(), err)
		}
	}
	return nil
}

func (p *Pipeline) stopSinks() error {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	var errs []error
	for _, s := range p.sinks {
		if err := s.Flush(ctx); err != nil {
			p.logger.WithError(err).WithField("sink", s.Name()).Error("sink flush failed")
		}
		if err := s.Stop(ctx); err != nil {
			errs = append(errs, fmt.Errorf("stop sink %s: %w", s.Name(), err))
		}
	}
	return errors.Join(errs...)
}

// processLoop drains ch until it is closed or ctx is cancelled.
func (p *Pipeline) processLoop(ctx context.Context, ch <-chan core.Datagram) {
	queue := metrics.PipelineQueueLength.WithLabelValues(p.metrics.Source)
	for {
		select {
		case <-ctx.Done():
			return
		case dg, ok := <-ch:
			if !ok {
				return
			}
			queue.Set(float64(len(ch)))
			p.metrics.Received.Add(1)
			p.process(ctx, dg)
		}
	}
}

// process decodes one datagram and reports it to every sink.
func (p *Pipeline) process(ctx context.Context, dg core.Datagram) {
	start := time.Now()
	pkt, err := p.decoder.Decode(dg)
	metrics.DecodeDurationSeconds.Observe(time.Since(start).Seconds())
	if err != nil {
		p.metrics.DecodeErrors.Add(1)
		reason := core.Reason(err)
		metrics.DecodeErrorsTotal.WithLabelValues(reason).Inc()
		if p.logger.IsDebugEnabled() {
			p.logger.WithError(err).WithFields(map[string]interface{}{
				"reason": reason,
				"size":   dg.Size,
				"from":   dg.Source.String(),
			}).Debug("datagram dropped")
		}
		return
	}

	kind := pkt.Kind().String()
	p.metrics.Decoded.Add(1)
	metrics.PacketsDecodedTotal.WithLabelValues(kind).Inc()

	h := pkt.PacketHeader()
	rec := &core.Record{
		Timestamp:  dg.Timestamp,
		Source:     dg.Source,
		Kind:       kind,
		SessionUID: h.SessionUID,
		FrameID:    h.FrameIdentifier,
		Packet:     pkt,
	}

	for _, s := range p.sinks {
		if f, ok := s.(sink.KindFilter); ok && !f.Accepts(kind) {
			continue
		}
		if err := s.Report(ctx, rec); err != nil {
			p.metrics.ReportErrors.Add(1)
			metrics.SinkErrorsTotal.WithLabelValues(s.Name()).Inc()
			p.logger.WithError(err).WithFields(map[string]interface{}{
				"sink": s.Name(),
				"kind": kind,
			}).Error("sink report failed")
			continue
		}
		p.metrics.Reported.Add(1)
		metrics.RecordsReportedTotal.WithLabelValues(s.Name()).Inc()
	}
}

// Stats returns pipeline statistics.
func (p *Pipeline) Stats() Stats {
	return Stats{
		Received:     p.metrics.Received.Load(),
		Decoded:      p.metrics.Decoded.Load(),
		DecodeErrors: p.metrics.DecodeErrors.Load(),
		Reported:     p.metrics.Reported.Load(),
		ReportErrors: p.metrics.ReportErrors.Load(),
	}
}

// Stats represents pipeline statistics. Reported and ReportErrors count
// per sink deliveries.
type Stats struct {
	Received     uint64
	Decoded      uint64
	DecodeErrors uint64
	Reported     uint64
	ReportErrors uint64
}
