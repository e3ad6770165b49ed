package udp

import (
	"net/netip"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"firestige.xyz/pitwall/internal/config"
)

func TestSenderLimiterDisabled(t *testing.T) {
	l := newSenderLimiter(config.RateLimitConfig{}, time.Now())
	assert.Nil(t, l)
	assert.True(t, l.allow(netip.MustParseAddr("10.0.0.1"), time.Now()))
	assert.Zero(t, l.limited())
	assert.Zero(t, l.senders())
}

func TestSenderLimiterWindow(t *testing.T) {
	start := time.Unix(1700000000, 0)
	l := newSenderLimiter(config.RateLimitConfig{MaxPerSender: 2}, start)
	require.NotNil(t, l)
	assert.Equal(t, defaultRateWindow, l.window)

	game := netip.MustParseAddr("192.168.1.20")
	other := netip.MustParseAddr("192.168.1.30")

	assert.True(t, l.allow(game, start))
	assert.True(t, l.allow(game, start.Add(100*time.Millisecond)))
	assert.False(t, l.allow(game, start.Add(200*time.Millisecond)))
	assert.True(t, l.allow(other, start.Add(300*time.Millisecond)))
	assert.Equal(t, 2, l.senders())
	assert.Equal(t, uint64(1), l.limited())

	// New window.
	assert.True(t, l.allow(game, start.Add(time.Second)))
	assert.Equal(t, 1, l.senders())
}
