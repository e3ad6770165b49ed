package pcap

import (
	"context"
	"net"
	"net/netip"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/gopacket"
	"github.com/google/gopacket/layers"
	"github.com/google/gopacket/pcapgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"firestige.xyz/pitwall/internal/core"
)

var epoch = time.Date(2020, 7, 5, 13, 10, 0, 0, time.UTC)

type frame struct {
	src      string
	dst      string
	sport    uint16
	dport    uint16
	payload  []byte
	at       time.Duration
	fragment bool // IPv4 more-fragments flag
}

func (f frame) serialize(t *testing.T) []byte {
	t.Helper()
	src, dst := net.ParseIP(f.src), net.ParseIP(f.dst)
	eth := &layers.Ethernet{
		SrcMAC: net.HardwareAddr{0x02, 0, 0, 0, 0, 1},
		DstMAC: net.HardwareAddr{0x02, 0, 0, 0, 0, 2},
	}
	udp := &layers.UDP{SrcPort: layers.UDPPort(f.sport), DstPort: layers.UDPPort(f.dport)}

	var network gopacket.SerializableLayer
	if v4 := src.To4(); v4 != nil {
		eth.EthernetType = layers.EthernetTypeIPv4
		ip := &layers.IPv4{Version: 4, TTL: 64, Protocol: layers.IPProtocolUDP, SrcIP: v4, DstIP: dst.To4()}
		if f.fragment {
			ip.Flags = layers.IPv4MoreFragments
		}
		require.NoError(t, udp.SetNetworkLayerForChecksum(ip))
		network = ip
	} else {
		eth.EthernetType = layers.EthernetTypeIPv6
		ip := &layers.IPv6{Version: 6, HopLimit: 64, NextHeader: layers.IPProtocolUDP, SrcIP: src, DstIP: dst}
		require.NoError(t, udp.SetNetworkLayerForChecksum(ip))
		network = ip
	}

	buf := gopacket.NewSerializeBuffer()
	opts := gopacket.SerializeOptions{FixLengths: true, ComputeChecksums: true}
	require.NoError(t, gopacket.SerializeLayers(buf, opts, eth, network, udp, gopacket.Payload(f.payload)))
	return buf.Bytes()
}

func writePcap(t *testing.T, frames ...frame) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "session.pcap")
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()

	w := pcapgo.NewWriter(f)
	require.NoError(t, w.WriteFileHeader(65536, layers.LinkTypeEthernet))
	for _, fr := range frames {
		data := fr.serialize(t)
		ci := gopacket.CaptureInfo{Timestamp: epoch.Add(fr.at), CaptureLength: len(data), Length: len(data)}
		require.NoError(t, w.WritePacket(ci, data))
	}
	return path
}

func writePcapng(t *testing.T, frames ...frame) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "session.pcapng")
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()

	w, err := pcapgo.NewNgWriter(f, layers.LinkTypeEthernet)
	require.NoError(t, err)
	for _, fr := range frames {
		data := fr.serialize(t)
		ci := gopacket.CaptureInfo{Timestamp: epoch.Add(fr.at), CaptureLength: len(data), Length: len(data)}
		require.NoError(t, w.WritePacket(ci, data))
	}
	require.NoError(t, w.Flush())
	return path
}

func capture(t *testing.T, s *Source) []core.Datagram {
	t.Helper()
	out := make(chan core.Datagram, 16)
	require.NoError(t, s.Capture(context.Background(), out))
	close(out)
	var got []core.Datagram
	for dg := range out {
		got = append(got, dg)
	}
	return got
}

var sessionFrames = []frame{
	{src: "192.168.1.20", dst: "192.168.1.10", sport: 50000, dport: 20777, payload: []byte("first")},
	{src: "192.168.1.20", dst: "192.168.1.10", sport: 50000, dport: 9999, payload: []byte("other"), at: 10 * time.Millisecond},
	{src: "fd00::20", dst: "fd00::10", sport: 50001, dport: 20777, payload: []byte("second"), at: time.Second},
}

func TestCaptureFiltersByPort(t *testing.T) {
	s, err := New(Config{File: writePcap(t, sessionFrames...), Port: 20777})
	require.NoError(t, err)

	got := capture(t, s)
	require.Len(t, got, 2)

	assert.Equal(t, []byte("first"), got[0].Data)
	assert.Equal(t, 5, got[0].Size)
	assert.Equal(t, netip.MustParseAddrPort("192.168.1.20:50000"), got[0].Source)
	assert.True(t, epoch.Equal(got[0].Timestamp))

	assert.Equal(t, []byte("second"), got[1].Data)
	assert.Equal(t, netip.MustParseAddrPort("[fd00::20]:50001"), got[1].Source)
	assert.True(t, epoch.Add(time.Second).Equal(got[1].Timestamp))

	stats := s.Stats()
	assert.Equal(t, uint64(2), stats.Received)
	assert.Equal(t, uint64(1), stats.Skipped)
	assert.Zero(t, stats.Dropped)
}

func TestCaptureAnyPort(t *testing.T) {
	s, err := New(Config{File: writePcap(t, sessionFrames...)})
	require.NoError(t, err)

	got := capture(t, s)
	require.Len(t, got, 3)
	assert.Equal(t, []byte("other"), got[1].Data)
}

func TestCapturePcapng(t *testing.T) {
	s, err := New(Config{File: writePcapng(t, sessionFrames...), Port: 20777})
	require.NoError(t, err)

	got := capture(t, s)
	require.Len(t, got, 2)
	assert.Equal(t, []byte("first"), got[0].Data)
	assert.Equal(t, []byte("second"), got[1].Data)
}

func TestCaptureRealtime(t *testing.T) {
	s, err := New(Config{File: writePcap(t, sessionFrames...), Port: 20777, Realtime: true})
	require.NoError(t, err)

	var waits []time.Duration
	s.sleep = func(ctx context.Context, d time.Duration) error {
		waits = append(waits, d)
		return nil
	}

	got := capture(t, s)
	require.Len(t, got, 2)
	require.Len(t, waits, 2)
	assert.LessOrEqual(t, waits[0], time.Duration(0))
	assert.InDelta(t, float64(time.Second), float64(waits[1]), float64(500*time.Millisecond))
}

func TestCaptureCancelled(t *testing.T) {
	s, err := New(Config{File: writePcap(t, sessionFrames...)})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	out := make(chan core.Datagram, 16)
	require.NoError(t, s.Capture(ctx, out))
	assert.Empty(t, out)
}

func TestCaptureBlockedOutputHonoursCancel(t *testing.T) {
	s, err := New(Config{File: writePcap(t, sessionFrames...)})
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	out := make(chan core.Datagram) // never read
	require.NoError(t, s.Capture(ctx, out))
	assert.Zero(t, s.Stats().Received)
}

func TestCaptureErrors(t *testing.T) {
	_, err := New(Config{})
	assert.Error(t, err)

	s, err := New(Config{File: filepath.Join(t.TempDir(), "missing.pcap")})
	require.NoError(t, err)
	assert.ErrorContains(t, s.Capture(context.Background(), make(chan core.Datagram, 1)), "failed to open capture file")

	garbage := filepath.Join(t.TempDir(), "garbage.pcap")
	require.NoError(t, os.WriteFile(garbage, []byte("not a capture file at all"), 0o600))
	s, err = New(Config{File: garbage})
	require.NoError(t, err)
	assert.ErrorContains(t, s.Capture(context.Background(), make(chan core.Datagram, 1)), "failed to read capture file")
}

func TestSleepContext(t *testing.T) {
	assert.NoError(t, sleepContext(context.Background(), 0))
	assert.NoError(t, sleepContext(context.Background(), time.Millisecond))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, sleepContext(ctx, time.Hour), context.Canceled)
}

func TestExtractSkipsFragments(t *testing.T) {
	ci := gopacket.CaptureInfo{Timestamp: epoch}
	whole := frame{src: "192.168.1.20", dst: "192.168.1.10", sport: 50000, dport: 20777, payload: []byte("lap")}

	dg, ok := extract(whole.serialize(t), ci, layers.LinkTypeEthernet, 20777)
	require.True(t, ok)
	assert.Equal(t, []byte("lap"), dg.Data)
	assert.Equal(t, 3, dg.Size)
	assert.Equal(t, netip.MustParseAddrPort("192.168.1.20:50000"), dg.Source)

	frag := whole
	frag.fragment = true
	_, ok = extract(frag.serialize(t), ci, layers.LinkTypeEthernet, 20777)
	assert.False(t, ok)
}
