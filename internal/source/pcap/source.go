// Package pcap replays telemetry datagrams from a capture file.
//
// Both classic pcap and pcapng files are read with gopacket's pure Go
// readers, so no libpcap is needed at build or run time.
package pcap

import (
	"bufio"
	"context"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"net/netip"
	"os"
	"sync/atomic"
	"time"

	"github.com/google/gopacket"
	"github.com/google/gopacket/layers"
	"github.com/google/gopacket/pcapgo"

	"firestige.xyz/pitwall/internal/core"
	"firestige.xyz/pitwall/internal/log"
	"firestige.xyz/pitwall/internal/metrics"
	"firestige.xyz/pitwall/internal/source"
)

const Name = "pcap"

// pcapng section header block type.
const ngMagic = 0x0A0D0D0A

// Config represents replay configuration.
type Config struct {
	File     string
	Port     uint16 // destination port to keep, 0 keeps every UDP payload
	Realtime bool   // sleep for the recorded inter-packet gaps
}

// packetReader is satisfied by both pcapgo.Reader and pcapgo.NgReader.
type packetReader interface {
	ReadPacketData() ([]byte, gopacket.CaptureInfo, error)
	LinkType() layers.LinkType
}

// Source reads UDP payloads out of a capture file.
type Source struct {
	config Config
	sleep  func(ctx context.Context, d time.Duration) error

	received atomic.Uint64
	skipped  atomic.Uint64
}

var _ source.Source = (*Source)(nil)

// New creates a replay source. The file is opened by Capture.
func New(cfg Config) (*Source, error) {
	if cfg.File == "" {
		return nil, fmt.Errorf("pcap: file is required")
	}
	return &Source{config: cfg, sleep: sleepContext}, nil
}

// Name returns the source name.
func (s *Source) Name() string {
	return Name
}

// Stats returns replay statistics. Replay never drops.
func (s *Source) Stats() source.Stats {
	return source.Stats{
		Received: s.received.Load(),
		Skipped:  s.skipped.Load(),
	}
}

// Capture replays the file once and returns nil at end of file.
func (s *Source) Capture(ctx context.Context, output chan<- core.Datagram) error {
	f, err := os.Open(s.config.File)
	if err != nil {
		return fmt.Errorf("failed to open capture file %s: %w", s.config.File, err)
	}
	defer f.Close()

	r, err := openReader(bufio.NewReader(f))
	if err != nil {
		return fmt.Errorf("failed to read capture file %s: %w", s.config.File, err)
	}

	logger := log.GetLogger().WithFields(map[string]interface{}{
		"file":      s.config.File,
		"link_type": r.LinkType().String(),
		"port":      s.config.Port,
	})
	logger.Info("pcap replay started")

	var first time.Time
	start := time.Now()
	for {
		if ctx.Err() != nil {
			logger.Info("pcap replay stopped")
			return nil
		}

		data, ci, err := r.ReadPacketData()
		if errors.Is(err, io.EOF) {
			logger.WithField("received", s.received.Load()).Info("pcap replay finished")
			return nil
		}
		if err != nil {
			return fmt.Errorf("failed to read packet: %w", err)
		}

		dg, ok := extract(data, ci, r.LinkType(), s.config.Port)
		if !ok {
			s.skipped.Add(1)
			continue
		}

		if s.config.Realtime {
			if first.IsZero() {
				first = ci.Timestamp
			}
			wait := ci.Timestamp.Sub(first) - time.Since(start)
			if err := s.sleep(ctx, wait); err != nil {
				logger.Info("pcap replay stopped")
				return nil
			}
		}

		select {
		case output <- dg:
			s.received.Add(1)
			metrics.DatagramsReceivedTotal.WithLabelValues(metrics.SourcePcap).Inc()
		case <-ctx.Done():
			logger.Info("pcap replay stopped")
			return nil
		}
	}
}

// openReader picks the pcapng or classic reader from the leading magic.
func openReader(br *bufio.Reader) (packetReader, error) {
	magic, err := br.Peek(4)
	if err != nil {
		return nil, err
	}
	if binary.LittleEndian.Uint32(magic) == ngMagic {
		return pcapgo.NewNgReader(br, pcapgo.DefaultNgReaderOptions)
	}
	return pcapgo.NewReader(br)
}

// extract returns the UDP payload of one captured frame as a datagram.
func extract(data []byte, ci gopacket.CaptureInfo, link layers.LinkType, port uint16) (core.Datagram, bool) {
	pkt := gopacket.NewPacket(data, link, gopacket.DecodeOptions{Lazy: true, NoCopy: true})
	if ip, ok := pkt.Layer(layers.LayerTypeIPv4).(*layers.IPv4); ok {
		// Fragments are not reassembled.
		if ip.Flags&layers.IPv4MoreFragments != 0 || ip.FragOffset != 0 {
			return core.Datagram{}, false
		}
	}
	udp, ok := pkt.Layer(layers.LayerTypeUDP).(*layers.UDP)
	if !ok {
		return core.Datagram{}, false
	}
	if port != 0 && uint16(udp.DstPort) != port {
		return core.Datagram{}, false
	}

	payload := make([]byte, len(udp.Payload))
	copy(payload, udp.Payload)

	// The declared length comes from the UDP header, so a snap-truncated
	// frame is still judged against its original size.
	size := len(payload)
	if udp.Length >= 8 {
		size = int(udp.Length) - 8
	}

	return core.Datagram{
		Data:      payload,
		Size:      size,
		Timestamp: ci.Timestamp,
		Source:    sourceAddr(pkt, uint16(udp.SrcPort)),
	}, true
}

func sourceAddr(pkt gopacket.Packet, port uint16) netip.AddrPort {
	var raw []byte
	switch ip := pkt.NetworkLayer().(type) {
	case *layers.IPv4:
		raw = ip.SrcIP
	case *layers.IPv6:
		raw = ip.SrcIP
	default:
		return netip.AddrPort{}
	}
	addr, ok := netip.AddrFromSlice(raw)
	if !ok {
		return netip.AddrPort{}
	}
	return netip.AddrPortFrom(addr.Unmap(), port)
}

func sleepContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
