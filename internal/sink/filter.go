package sink

import (
	"fmt"
	"strings"

	"firestige.xyz/pitwall/internal/core/decoder"
)

// KindFilter is implemented by sinks that only want some packet kinds.
// The pipeline skips a sink whose Accepts returns false.
type KindFilter interface {
	Accepts(kind string) bool
}

// filtered restricts a sink to a set of packet kinds.
type filtered struct {
	Sink
	kinds map[string]bool
}

func (f *filtered) Accepts(kind string) bool {
	return f.kinds[kind]
}

// WithKinds wraps s so that only the named packet kinds reach it. An empty
// list returns s unchanged.
func WithKinds(s Sink, kinds []string) (Sink, error) {
	if len(kinds) == 0 {
		return s, nil
	}

	known := make(map[string]bool)
	for _, k := range decoder.Kinds() {
		known[k.String()] = true
	}

	set := make(map[string]bool, len(kinds))
	for _, k := range kinds {
		k = strings.TrimSpace(k)
		if !known[k] {
			return nil, fmt.Errorf("unknown packet kind %q", k)
		}
		set[k] = true
	}
	return &filtered{Sink: s, kinds: set}, nil
}
