package decoder

import (
	"encoding/binary"
	"fmt"
	"math"

	"firestige.xyz/pitwall/internal/core"
)

// Cursor reads little-endian primitives sequentially from a byte slice.
// Reads never go past len(buf), whatever the declared datagram size says.
type Cursor struct {
	buf []byte
	pos int
}

// NewCursor returns a cursor positioned at the start of buf.
func NewCursor(buf []byte) *Cursor {
	return &Cursor{buf: buf}
}

// Pos returns the number of bytes consumed so far.
func (c *Cursor) Pos() int { return c.pos }

// Remaining returns the number of unread bytes.
func (c *Cursor) Remaining() int { return len(c.buf) - c.pos }

// take consumes n bytes and returns them without copying.
func (c *Cursor) take(n int) ([]byte, error) {
	if n < 0 || c.Remaining() < n {
		return nil, fmt.Errorf("%w: need %d bytes at offset %d, have %d",
			core.ErrUnexpectedEndOfBuffer, n, c.pos, c.Remaining())
	}
	b := c.buf[c.pos : c.pos+n]
	c.pos += n
	return b, nil
}

// Skip advances the cursor by n bytes.
func (c *Cursor) Skip(n int) error {
	_, err := c.take(n)
	return err
}

// Bytes returns the next n bytes. The slice aliases the underlying buffer.
func (c *Cursor) Bytes(n int) ([]byte, error) {
	return c.take(n)
}

func (c *Cursor) U8() (uint8, error) {
	b, err := c.take(1)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

func (c *Cursor) I8() (int8, error) {
	v, err := c.U8()
	return int8(v), err
}

func (c *Cursor) U16() (uint16, error) {
	b, err := c.take(2)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint16(b), nil
}

func (c *Cursor) I16() (int16, error) {
	v, err := c.U16()
	return int16(v), err
}

func (c *Cursor) U32() (uint32, error) {
	b, err := c.take(4)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(b), nil
}

func (c *Cursor) I32() (int32, error) {
	v, err := c.U32()
	return int32(v), err
}

func (c *Cursor) U64() (uint64, error) {
	b, err := c.take(8)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint64(b), nil
}

func (c *Cursor) F32() (float32, error) {
	v, err := c.U32()
	return math.Float32frombits(v), err
}

func (c *Cursor) F64() (float64, error) {
	v, err := c.U64()
	return math.Float64frombits(v), err
}

// Bool reads a u8 flag. Only the value 1 is true.
func (c *Cursor) Bool() (bool, error) {
	v, err := c.U8()
	return v == 1, err
}

// peekU16 reads a u16 at the current position without advancing.
func (c *Cursor) peekU16() (uint16, bool) {
	if c.Remaining() < 2 {
		return 0, false
	}
	return binary.LittleEndian.Uint16(c.buf[c.pos:]), true
}

// reader accumulates the first error across a run of reads so record
// decoders can read a flat field list and check once. After a failure
// every read returns the zero value.
type reader struct {
	c   *Cursor
	err error
}

func (r *reader) u8() uint8 {
	if r.err != nil {
		return 0
	}
	v, err := r.c.U8()
	r.err = err
	return v
}

func (r *reader) i8() int8 {
	if r.err != nil {
		return 0
	}
	v, err := r.c.I8()
	r.err = err
	return v
}

func (r *reader) u16() uint16 {
	if r.err != nil {
		return 0
	}
	v, err := r.c.U16()
	r.err = err
	return v
}

func (r *reader) i16() int16 {
	if r.err != nil {
		return 0
	}
	v, err := r.c.I16()
	r.err = err
	return v
}

func (r *reader) u32() uint32 {
	if r.err != nil {
		return 0
	}
	v, err := r.c.U32()
	r.err = err
	return v
}

func (r *reader) u64() uint64 {
	if r.err != nil {
		return 0
	}
	v, err := r.c.U64()
	r.err = err
	return v
}

func (r *reader) f32() float32 {
	if r.err != nil {
		return 0
	}
	v, err := r.c.F32()
	r.err = err
	return v
}

func (r *reader) f64() float64 {
	if r.err != nil {
		return 0
	}
	v, err := r.c.F64()
	r.err = err
	return v
}

func (r *reader) flag() bool {
	return r.u8() == 1
}

func (r *reader) seconds() Seconds           { return Seconds(r.f32()) }
func (r *reader) seconds64() Seconds64       { return Seconds64(r.f64()) }
func (r *reader) wholeSeconds() WholeSeconds { return WholeSeconds(r.u8()) }
func (r *reader) millis() Milliseconds       { return Milliseconds(r.u16()) }

// name reads a fixed 48-byte NUL-terminated string slot.
func (r *reader) name() string {
	if r.err != nil {
		return ""
	}
	b, err := r.c.Bytes(nameLen)
	if err != nil {
		r.err = err
		return ""
	}
	for i, ch := range b {
		if ch == 0 {
			return string(b[:i])
		}
	}
	return string(b)
}

// enum reads a code with read and maps it with parse. A code outside the
// table fails the whole record with an EnumError naming field.
func enum[C uint8 | int8, T any](r *reader, field string, read func() C, parse func(C) (T, bool)) T {
	var zero T
	code := read()
	if r.err != nil {
		return zero
	}
	v, ok := parse(code)
	if !ok {
		r.err = &core.EnumError{Field: field, Code: int(code)}
		return zero
	}
	return v
}

func wheelsF32(r *reader) Wheels[float32] {
	return Wheels[float32]{RearLeft: r.f32(), RearRight: r.f32(), FrontLeft: r.f32(), FrontRight: r.f32()}
}

func wheelsU8(r *reader) Wheels[uint8] {
	return Wheels[uint8]{RearLeft: r.u8(), RearRight: r.u8(), FrontLeft: r.u8(), FrontRight: r.u8()}
}

func wheelsU16(r *reader) Wheels[uint16] {
	return Wheels[uint16]{RearLeft: r.u16(), RearRight: r.u16(), FrontLeft: r.u16(), FrontRight: r.u16()}
}
