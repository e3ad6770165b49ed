package udp

import (
	"net/netip"
	"sync"
	"sync/atomic"
	"time"

	"firestige.xyz/pitwall/internal/config"
)

const defaultRateWindow = time.Second

// senderLimiter counts datagrams per sender address in fixed windows. A
// sender that exceeds the cap is rejected until the window rotates.
type senderLimiter struct {
	mu          sync.Mutex
	current     map[netip.Addr]*atomic.Int64
	windowStart time.Time
	window      time.Duration
	max         int64

	rejected atomic.Uint64
}

// newSenderLimiter returns nil when limiting is disabled.
func newSenderLimiter(cfg config.RateLimitConfig, now time.Time) *senderLimiter {
	if cfg.MaxPerSender <= 0 {
		return nil
	}
	if cfg.Window <= 0 {
		cfg.Window = defaultRateWindow
	}
	return &senderLimiter{
		current:     make(map[netip.Addr]*atomic.Int64),
		windowStart: now,
		window:      cfg.Window,
		max:         int64(cfg.MaxPerSender),
	}
}

// allow reports whether one more datagram from addr fits the current window.
// A nil limiter allows everything.
func (l *senderLimiter) allow(addr netip.Addr, now time.Time) bool {
	if l == nil {
		return true
	}

	l.mu.Lock()
	if now.Sub(l.windowStart) >= l.window {
		clear(l.current)
		l.windowStart = now
	}
	counter, ok := l.current[addr]
	if !ok {
		counter = &atomic.Int64{}
		l.current[addr] = counter
	}
	l.mu.Unlock()

	if counter.Add(1) > l.max {
		l.rejected.Add(1)
		return false
	}
	return true
}

// limited returns how many datagrams were rejected so far.
func (l *senderLimiter) limited() uint64 {
	if l == nil {
		return 0
	}
	return l.rejected.Load()
}

// senders returns the number of addresses seen in the current window.
func (l *senderLimiter) senders() int {
	if l == nil {
		return 0
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.current)
}
