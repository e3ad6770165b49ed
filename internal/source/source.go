// Package source defines the datagram source interface.
package source

import (
	"context"

	"firestige.xyz/pitwall/internal/core"
)

// Source produces raw telemetry datagrams.
type Source interface {
	Name() string
	// Capture blocks, sending datagrams to output until ctx is cancelled
	// or the source is exhausted. A nil return means a clean end.
	Capture(ctx context.Context, output chan<- core.Datagram) error
	Stats() Stats
}

// Stats represents source statistics.
type Stats struct {
	Received uint64
	Dropped  uint64
	Skipped  uint64 // frames that carried no matching UDP payload
}
