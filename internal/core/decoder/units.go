package decoder

import (
	"math"
	"time"
)

// The protocol encodes time in two incompatible ways. Each unit gets its
// own type so the wire value is kept bit-for-bit and a field can never be
// converted with the wrong scale.

// Seconds is a time value sent as float32 seconds.
type Seconds float32

// Seconds64 is a time value sent as float64 seconds.
type Seconds64 float64

// WholeSeconds is a time value sent as an unsigned byte of seconds.
type WholeSeconds uint8

// Milliseconds is a time value sent as uint16 milliseconds.
type Milliseconds uint16

func (s Seconds) Duration() time.Duration      { return floatSeconds(float64(s)) }
func (s Seconds64) Duration() time.Duration    { return floatSeconds(float64(s)) }
func (s WholeSeconds) Duration() time.Duration { return time.Duration(s) * time.Second }
func (m Milliseconds) Duration() time.Duration { return time.Duration(m) * time.Millisecond }

// floatSeconds converts to the nearest nanosecond, mapping NaN to zero and
// saturating out-of-range values.
func floatSeconds(s float64) time.Duration {
	ns := math.Round(s * float64(time.Second))
	switch {
	case math.IsNaN(ns):
		return 0
	case ns >= math.MaxInt64:
		return time.Duration(math.MaxInt64)
	case ns <= math.MinInt64:
		return time.Duration(math.MinInt64)
	}
	return time.Duration(ns)
}

// Wheels holds one value per wheel, in wire order.
type Wheels[T any] struct {
	RearLeft   T `json:"rear_left" yaml:"rear_left"`
	RearRight  T `json:"rear_right" yaml:"rear_right"`
	FrontLeft  T `json:"front_left" yaml:"front_left"`
	FrontRight T `json:"front_right" yaml:"front_right"`
}

// Vector3 is a float triple in world or local space.
type Vector3 struct {
	X float32 `json:"x" yaml:"x"`
	Y float32 `json:"y" yaml:"y"`
	Z float32 `json:"z" yaml:"z"`
}

// NormVector3 is a direction vector normalised to the int16 range.
type NormVector3 struct {
	X int16 `json:"x" yaml:"x"`
	Y int16 `json:"y" yaml:"y"`
	Z int16 `json:"z" yaml:"z"`
}

// Float converts the fixed-point components to unit floats.
func (v NormVector3) Float() Vector3 {
	const scale = 32767.0
	return Vector3{X: float32(v.X) / scale, Y: float32(v.Y) / scale, Z: float32(v.Z) / scale}
}

func vector3(r *reader) Vector3 {
	return Vector3{X: r.f32(), Y: r.f32(), Z: r.f32()}
}

func normVector3(r *reader) NormVector3 {
	return NormVector3{X: r.i16(), Y: r.i16(), Z: r.i16()}
}
