// Package sink defines record outputs and their registry.
package sink

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/go-viper/mapstructure/v2"

	"firestige.xyz/pitwall/internal/config"
	"firestige.xyz/pitwall/internal/core"
)

// Sink delivers decoded records to an external system.
type Sink interface {
	Name() string
	Init(cfg map[string]any) error
	Start(ctx context.Context) error
	Stop(ctx context.Context) error
	Report(ctx context.Context, rec *core.Record) error
	Flush(ctx context.Context) error
}

// Factory creates an uninitialized sink carrying the given instance name.
type Factory func(name string) Sink

var (
	mu        sync.RWMutex
	factories = make(map[string]Factory)
)

// Register makes a sink type available to Build. It panics on duplicates.
func Register(typ string, f Factory) {
	mu.Lock()
	defer mu.Unlock()
	if _, exists := factories[typ]; exists {
		panic(fmt.Sprintf("sink: type %q already registered", typ))
	}
	factories[typ] = f
}

// Types lists registered sink types in sorted order.
func Types() []string {
	mu.RLock()
	defer mu.RUnlock()
	types := make([]string, 0, len(factories))
	for t := range factories {
		types = append(types, t)
	}
	sort.Strings(types)
	return types
}

// New creates a sink of the given type without initializing it.
func New(typ, name string) (Sink, error) {
	mu.RLock()
	f, ok := factories[typ]
	mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %s", core.ErrSinkNotFound, typ)
	}
	if name == "" {
		name = typ
	}
	return f(name), nil
}

// Build creates and initializes one sink per entry.
func Build(cfgs []config.SinkConfig) ([]Sink, error) {
	sinks := make([]Sink, 0, len(cfgs))
	for _, c := range cfgs {
		s, err := New(c.Type, c.Name)
		if err != nil {
			return nil, err
		}
		if err := s.Init(c.Options); err != nil {
			return nil, fmt.Errorf("%w: %s: %v", core.ErrSinkInitFailed, s.Name(), err)
		}
		fs, err := WithKinds(s, c.Kinds)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v", core.ErrSinkInitFailed, s.Name(), err)
		}
		sinks = append(sinks, fs)
	}
	return sinks, nil
}

// DecodeOptions decodes raw sink options into out. Durations may be given
// as strings ("250ms") and string lists as comma separated values.
// Unknown keys are rejected.
func DecodeOptions(opts map[string]any, out any) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
		WeaklyTypedInput: true,
		ErrorUnused:      true,
		Result:           out,
	})
	if err != nil {
		return err
	}
	return dec.Decode(opts)
}
