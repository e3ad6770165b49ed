// Package core defines core data structures with zero external dependencies.
package core

import (
	"net/netip"
	"time"
)

// Datagram is one UDP payload as received from the game or a capture file.
type Datagram struct {
	Data      []byte         // Payload bytes, owned by the datagram
	Size      int            // Declared datagram length
	Timestamp time.Time      // Receive or capture timestamp
	Source    netip.AddrPort // Sender, zero value when unknown
}

// Record is the decoded form of a datagram handed to sinks.
type Record struct {
	Timestamp  time.Time      `json:"timestamp" yaml:"timestamp"`
	Source     netip.AddrPort `json:"source" yaml:"source"`
	Kind       string         `json:"kind" yaml:"kind"`
	SessionUID uint64         `json:"session_uid" yaml:"session_uid"`
	FrameID    uint32         `json:"frame_id" yaml:"frame_id"`
	Packet     any            `json:"packet" yaml:"packet"` // Concrete type determined by Kind
}
