// Package core defines sentinel errors.
package core

import (
	"errors"
	"fmt"
)

// Sentinel errors. Decoding failures always wrap exactly one of the
// decode sentinels so callers can classify them with errors.Is.
var (
	// Decoding errors
	ErrUnexpectedEndOfBuffer      = errors.New("pitwall: unexpected end of buffer")
	ErrInvalidSize                = errors.New("pitwall: invalid packet size")
	ErrUnsupportedProtocolVersion = errors.New("pitwall: unsupported protocol version")
	ErrUnknownPacketKind          = errors.New("pitwall: unknown packet kind")
	ErrUnknownEventCode           = errors.New("pitwall: unknown event code")
	ErrInvalidEnumValue           = errors.New("pitwall: invalid enum value")

	// Pipeline errors
	ErrPipelineStopped = errors.New("pitwall: pipeline stopped")

	// Sink errors
	ErrSinkNotFound   = errors.New("pitwall: sink not found")
	ErrSinkInitFailed = errors.New("pitwall: sink init failed")

	// Configuration errors
	ErrConfigInvalid = errors.New("pitwall: invalid configuration")
)

// SizeError reports a datagram whose declared length does not satisfy
// the size policy of the packet kind (or of the header itself).
type SizeError struct {
	Kind     string
	Declared int
	Expected int
	Exact    bool // false means Expected is a minimum
}

func (e *SizeError) Error() string {
	if e.Exact {
		return fmt.Sprintf("%s: %s expects exactly %d bytes, got %d", ErrInvalidSize, e.Kind, e.Expected, e.Declared)
	}
	return fmt.Sprintf("%s: %s expects at least %d bytes, got %d", ErrInvalidSize, e.Kind, e.Expected, e.Declared)
}

func (e *SizeError) Unwrap() error { return ErrInvalidSize }

// EnumError reports a coded field whose value is outside its domain.
type EnumError struct {
	Field string
	Code  int
}

func (e *EnumError) Error() string {
	return fmt.Sprintf("%s: %s=%d", ErrInvalidEnumValue, e.Field, e.Code)
}

func (e *EnumError) Unwrap() error { return ErrInvalidEnumValue }

// Reason maps an error to a short, stable label for metrics and logs.
func Reason(err error) string {
	switch {
	case err == nil:
		return "none"
	case errors.Is(err, ErrUnexpectedEndOfBuffer):
		return "unexpected_eob"
	case errors.Is(err, ErrInvalidSize):
		return "invalid_size"
	case errors.Is(err, ErrUnsupportedProtocolVersion):
		return "unsupported_version"
	case errors.Is(err, ErrUnknownPacketKind):
		return "unknown_kind"
	case errors.Is(err, ErrUnknownEventCode):
		return "unknown_event"
	case errors.Is(err, ErrInvalidEnumValue):
		return "invalid_enum"
	default:
		return "other"
	}
}
