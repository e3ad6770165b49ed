// Package decoder implements F1 2020 UDP telemetry decoding.
//
// Every datagram starts with a 24-byte header whose packet id selects one
// of ten fixed layouts. Decoding is synchronous and stateless; a call
// returns either one complete packet or one error, never both.
package decoder

import (
	"fmt"

	"firestige.xyz/pitwall/internal/core"
)

// Decoder decodes raw datagrams into typed packets.
type Decoder interface {
	Decode(dg core.Datagram) (Packet, error)
}

// Packet is implemented by the ten packet record types only.
type Packet interface {
	Kind() PacketKind
	PacketHeader() Header
	packet()
}

type f12020 struct{}

// New returns the F1 2020 decoder. It holds no state and is safe for
// concurrent use.
func New() Decoder {
	return f12020{}
}

func (f12020) Decode(dg core.Datagram) (Packet, error) {
	return Decode(dg.Data, dg.Size)
}

// Decode decodes one datagram. size is the declared datagram length used
// for size validation; bytes are never read past len(buf).
func Decode(buf []byte, size int) (Packet, error) {
	if size < HeaderSize {
		return nil, &core.SizeError{Kind: "header", Declared: size, Expected: HeaderSize}
	}

	c := NewCursor(buf)
	format, ok := c.peekU16()
	if !ok {
		return nil, fmt.Errorf("%w: need 2 bytes at offset 0, have %d", core.ErrUnexpectedEndOfBuffer, len(buf))
	}
	if format != SupportedFormat {
		return nil, fmt.Errorf("%w: %d", core.ErrUnsupportedProtocolVersion, format)
	}

	header, err := DecodeHeader(c, size)
	if err != nil {
		return nil, err
	}

	kind, err := parsePacketKind(header.PacketID)
	if err != nil {
		return nil, err
	}
	if err := kind.CheckSize(size); err != nil {
		return nil, err
	}

	var pkt Packet
	switch kind {
	case KindMotion:
		pkt, err = decodeMotion(c, header)
	case KindSession:
		pkt, err = decodeSession(c, header)
	case KindLap:
		pkt, err = decodeLap(c, header)
	case KindEvent:
		pkt, err = decodeEvent(c, header)
	case KindParticipants:
		pkt, err = decodeParticipants(c, header)
	case KindCarSetups:
		pkt, err = decodeCarSetups(c, header)
	case KindCarTelemetry:
		pkt, err = decodeCarTelemetry(c, header)
	case KindCarStatus:
		pkt, err = decodeCarStatus(c, header)
	case KindFinalClassification:
		pkt, err = decodeFinalClassification(c, header)
	case KindLobbyInfo:
		pkt, err = decodeLobbyInfo(c, header)
	}
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", kind, err)
	}
	return pkt, nil
}
