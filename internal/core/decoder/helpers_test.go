package decoder

import (
	"encoding/binary"
	"math"
)

// wire builds little-endian datagrams for tests.
type wire struct {
	b []byte
}

func (w *wire) u8(v uint8) *wire   { w.b = append(w.b, v); return w }
func (w *wire) i8(v int8) *wire    { return w.u8(uint8(v)) }
func (w *wire) u16(v uint16) *wire { w.b = binary.LittleEndian.AppendUint16(w.b, v); return w }
func (w *wire) i16(v int16) *wire  { return w.u16(uint16(v)) }
func (w *wire) u32(v uint32) *wire { w.b = binary.LittleEndian.AppendUint32(w.b, v); return w }
func (w *wire) u64(v uint64) *wire { w.b = binary.LittleEndian.AppendUint64(w.b, v); return w }
func (w *wire) f32(v float32) *wire {
	return w.u32(math.Float32bits(v))
}
func (w *wire) f64(v float64) *wire {
	w.b = binary.LittleEndian.AppendUint64(w.b, math.Float64bits(v))
	return w
}
func (w *wire) str(s string) *wire { w.b = append(w.b, s...); return w }
func (w *wire) zeros(n int) *wire  { w.b = append(w.b, make([]byte, n)...); return w }

// name writes s into a fixed 48-byte slot, NUL padded.
func (w *wire) name(s string) *wire {
	slot := make([]byte, nameLen)
	copy(slot, s)
	w.b = append(w.b, slot...)
	return w
}

// padTo zero-fills up to n bytes total.
func (w *wire) padTo(n int) []byte {
	if len(w.b) < n {
		w.zeros(n - len(w.b))
	}
	return w.b
}

const testSessionUID = 0x0123456789abcdef

// header starts a datagram of the given kind with a fixed, recognisable header.
func header(kind PacketKind) *wire {
	w := &wire{}
	return w.u16(SupportedFormat).
		u8(1).           // major
		u8(18).          // minor
		u8(1).           // packet version
		u8(uint8(kind)). // packet id
		u64(testSessionUID).
		f32(12.5).
		u32(4242).
		u8(0).
		u8(255)
}

// emptyPacket returns a zero payload of the kind's expected size. A zero
// payload is valid for every kind except events.
func emptyPacket(kind PacketKind) []byte {
	size, _ := kind.ExpectedSize()
	return header(kind).padTo(size)
}
