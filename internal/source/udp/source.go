// Package udp receives telemetry datagrams from the game over UDP.
package udp

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/netip"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/net/ipv4"

	"firestige.xyz/pitwall/internal/config"
	"firestige.xyz/pitwall/internal/core"
	"firestige.xyz/pitwall/internal/log"
	"firestige.xyz/pitwall/internal/metrics"
	"firestige.xyz/pitwall/internal/source"
)

const Name = "udp"

// Default configuration values
const (
	defaultBufferSize  = 2048
	defaultBatchSize   = 16
	defaultReadTimeout = 500 * time.Millisecond
)

// Source reads datagrams in batches with recvmmsg where the platform
// supports it.
type Source struct {
	config config.ListenerConfig

	mu   sync.Mutex
	conn *net.UDPConn
	pc   *ipv4.PacketConn

	limiter *senderLimiter

	received atomic.Uint64
	dropped  atomic.Uint64
}

var _ source.Source = (*Source)(nil)

// New creates a UDP source. The socket is bound by Start.
func New(cfg config.ListenerConfig) *Source {
	if cfg.BufferSize <= 0 {
		cfg.BufferSize = defaultBufferSize
	}
	if cfg.BatchSize <= 0 {
		cfg.BatchSize = defaultBatchSize
	}
	if cfg.ReadTimeout <= 0 {
		cfg.ReadTimeout = defaultReadTimeout
	}
	return &Source{config: cfg, limiter: newSenderLimiter(cfg.RateLimit, time.Now())}
}

// Name returns the source name.
func (s *Source) Name() string {
	return Name
}

// Start binds the socket.
func (s *Source) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.conn != nil {
		return nil
	}

	laddr, err := net.ResolveUDPAddr("udp4", s.config.Addr())
	if err != nil {
		return fmt.Errorf("udp: resolve %s: %w", s.config.Addr(), err)
	}
	conn, err := net.ListenUDP("udp4", laddr)
	if err != nil {
		return fmt.Errorf("udp: listen %s: %w", s.config.Addr(), err)
	}
	s.conn = conn
	s.pc = ipv4.NewPacketConn(conn)

	log.GetLogger().WithFields(map[string]interface{}{
		"addr":       conn.LocalAddr().String(),
		"batch_size": s.config.BatchSize,
	}).Info("udp listener bound")
	return nil
}

// Stop closes the socket. Capture returns once its pending read fails.
func (s *Source) Stop(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.conn == nil {
		return nil
	}
	err := s.conn.Close()
	s.conn, s.pc = nil, nil
	return err
}

// LocalAddr returns the bound address, or nil before Start.
func (s *Source) LocalAddr() net.Addr {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.conn == nil {
		return nil
	}
	return s.conn.LocalAddr()
}

// Stats returns receive statistics.
func (s *Source) Stats() source.Stats {
	return source.Stats{
		Received: s.received.Load(),
		Dropped:  s.dropped.Load(),
	}
}

// Capture reads until ctx is cancelled. Datagrams arriving while output is
// full are dropped rather than stalling the socket.
func (s *Source) Capture(ctx context.Context, output chan<- core.Datagram) error {
	s.mu.Lock()
	conn, pc := s.conn, s.pc
	s.mu.Unlock()
	if pc == nil {
		return fmt.Errorf("udp: source not started")
	}
	defer s.Stop(context.Background())

	logger := log.GetLogger().WithField("addr", conn.LocalAddr().String())

	msgs := make([]ipv4.Message, s.config.BatchSize)
	for i := range msgs {
		msgs[i].Buffers = [][]byte{make([]byte, s.config.BufferSize)}
	}

	for {
		if ctx.Err() != nil {
			s.logStopped(logger)
			return nil
		}

		err := conn.SetReadDeadline(time.Now().Add(s.config.ReadTimeout))
		var n int
		if err == nil {
			n, err = pc.ReadBatch(msgs, 0)
		}
		if err != nil {
			var ne net.Error
			if errors.As(err, &ne) && ne.Timeout() {
				continue
			}
			if ctx.Err() != nil || errors.Is(err, net.ErrClosed) {
				s.logStopped(logger)
				return nil
			}
			return fmt.Errorf("udp: read: %w", err)
		}

		now := time.Now()
		for i := 0; i < n; i++ {
			dg := datagram(&msgs[i], now)
			s.received.Add(1)
			metrics.DatagramsReceivedTotal.WithLabelValues(metrics.SourceUDP).Inc()

			if !s.limiter.allow(dg.Source.Addr(), now) {
				s.dropped.Add(1)
				metrics.DatagramsDroppedTotal.WithLabelValues(metrics.SourceUDP, "rate_limit").Inc()
				continue
			}

			select {
			case output <- dg:
			case <-ctx.Done():
				s.logStopped(logger)
				return nil
			default:
				s.dropped.Add(1)
				metrics.DatagramsDroppedTotal.WithLabelValues(metrics.SourceUDP, "queue").Inc()
				if logger.IsDebugEnabled() {
					logger.Debug("output channel full, dropping datagram")
				}
			}
		}
	}
}

func (s *Source) logStopped(logger log.Logger) {
	logger.WithFields(map[string]interface{}{
		"received":     s.received.Load(),
		"dropped":      s.dropped.Load(),
		"rate_limited": s.limiter.limited(),
		"senders":      s.limiter.senders(),
	}).Info("udp listener stopped")
}

// datagram copies the payload out of the reusable batch buffer.
func datagram(m *ipv4.Message, at time.Time) core.Datagram {
	data := make([]byte, m.N)
	copy(data, m.Buffers[0][:m.N])
	dg := core.Datagram{Data: data, Size: m.N, Timestamp: at}
	if ua, ok := m.Addr.(*net.UDPAddr); ok {
		ap := ua.AddrPort()
		dg.Source = netip.AddrPortFrom(ap.Addr().Unmap(), ap.Port())
	}
	return dg
}
