package udp

import (
	"context"
	"net"
	"net/netip"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"firestige.xyz/pitwall/internal/config"
	"firestige.xyz/pitwall/internal/core"
)

func startSource(t *testing.T) *Source {
	t.Helper()
	s := New(config.ListenerConfig{Address: "127.0.0.1", BatchSize: 4, ReadTimeout: 20 * time.Millisecond})
	require.NoError(t, s.Start(context.Background()))
	t.Cleanup(func() { _ = s.Stop(context.Background()) })
	return s
}

func dial(t *testing.T, s *Source) *net.UDPConn {
	t.Helper()
	conn, err := net.DialUDP("udp4", nil, s.LocalAddr().(*net.UDPAddr))
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return conn
}

func run(s *Source, out chan<- core.Datagram) (context.CancelFunc, <-chan error) {
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Capture(ctx, out) }()
	return cancel, done
}

func TestNewAppliesDefaults(t *testing.T) {
	s := New(config.ListenerConfig{})
	assert.Equal(t, defaultBufferSize, s.config.BufferSize)
	assert.Equal(t, defaultBatchSize, s.config.BatchSize)
	assert.Equal(t, defaultReadTimeout, s.config.ReadTimeout)
	assert.Equal(t, Name, s.Name())
	assert.Nil(t, s.LocalAddr())
}

func TestCaptureReceivesDatagrams(t *testing.T) {
	s := startSource(t)
	client := dial(t, s)

	out := make(chan core.Datagram, 8)
	cancel, done := run(s, out)
	defer cancel()

	payloads := [][]byte{[]byte("motion"), []byte("lap"), make([]byte, 1464)}
	for _, p := range payloads {
		_, err := client.Write(p)
		require.NoError(t, err)
	}

	want := netip.MustParseAddrPort(client.LocalAddr().String())
	for _, p := range payloads {
		select {
		case dg := <-out:
			assert.Equal(t, p, dg.Data)
			assert.Equal(t, len(p), dg.Size)
			assert.Equal(t, want, dg.Source)
			assert.WithinDuration(t, time.Now(), dg.Timestamp, 5*time.Second)
		case <-time.After(5 * time.Second):
			t.Fatal("timed out waiting for datagram")
		}
	}

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("capture did not stop")
	}
	assert.Equal(t, uint64(3), s.Stats().Received)
	assert.Nil(t, s.LocalAddr())
}

func TestCaptureCopiesPayload(t *testing.T) {
	s := startSource(t)
	client := dial(t, s)

	out := make(chan core.Datagram, 8)
	cancel, _ := run(s, out)
	defer cancel()

	_, err := client.Write([]byte("aaaa"))
	require.NoError(t, err)
	first := <-out
	_, err = client.Write([]byte("bbbb"))
	require.NoError(t, err)
	<-out

	assert.Equal(t, []byte("aaaa"), first.Data)
}

func TestCaptureDropsWhenOutputFull(t *testing.T) {
	s := startSource(t)
	client := dial(t, s)

	out := make(chan core.Datagram) // nobody reads
	cancel, done := run(s, out)

	for i := 0; i < 3; i++ {
		_, err := client.Write([]byte{byte(i)})
		require.NoError(t, err)
	}

	assert.Eventually(t, func() bool {
		return s.Stats().Dropped == 3
	}, 5*time.Second, 10*time.Millisecond)

	cancel()
	assert.NoError(t, <-done)
}

func TestCaptureStoppedSocket(t *testing.T) {
	s := startSource(t)

	out := make(chan core.Datagram, 1)
	_, done := run(s, out)

	require.NoError(t, s.Stop(context.Background()))
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("capture did not stop")
	}
}

func TestCaptureNotStarted(t *testing.T) {
	s := New(config.ListenerConfig{Address: "127.0.0.1"})
	err := s.Capture(context.Background(), make(chan core.Datagram))
	assert.ErrorContains(t, err, "not started")
	assert.NoError(t, s.Stop(context.Background()))
}

func TestStartErrors(t *testing.T) {
	s := New(config.ListenerConfig{Address: "127.0.0.1", Port: 70000})
	assert.Error(t, s.Start(context.Background()))

	bound := startSource(t)
	port := bound.LocalAddr().(*net.UDPAddr).Port
	clash := New(config.ListenerConfig{Address: "127.0.0.1", Port: port})
	assert.ErrorContains(t, clash.Start(context.Background()), "udp: listen")
}

func TestCaptureRateLimitsSender(t *testing.T) {
	s := New(config.ListenerConfig{
		Address:     "127.0.0.1",
		BatchSize:   4,
		ReadTimeout: 20 * time.Millisecond,
		RateLimit:   config.RateLimitConfig{MaxPerSender: 2, Window: time.Hour},
	})
	require.NoError(t, s.Start(context.Background()))
	t.Cleanup(func() { _ = s.Stop(context.Background()) })
	client := dial(t, s)

	out := make(chan core.Datagram, 8)
	cancel, done := run(s, out)

	for i := 0; i < 5; i++ {
		_, err := client.Write([]byte{byte(i)})
		require.NoError(t, err)
	}

	assert.Eventually(t, func() bool {
		return s.Stats().Received == 5
	}, 5*time.Second, 10*time.Millisecond)

	cancel()
	assert.NoError(t, <-done)
	assert.Equal(t, uint64(3), s.Stats().Dropped)
	assert.Len(t, out, 2)
	assert.Equal(t, uint64(3), s.limiter.limited())
}
