package pipeline

import (
	"firestige.xyz/pitwall/internal/config"
	"firestige.xyz/pitwall/internal/core/decoder"
	"firestige.xyz/pitwall/internal/sink"
	"firestige.xyz/pitwall/internal/source"
)

// Builder provides a fluent interface for building pipelines.
type Builder struct {
	config Config
}

// NewBuilder creates a new pipeline builder.
func NewBuilder() *Builder {
	return &Builder{
		config: Config{
			Workers:         1,
			ChannelCapacity: defaultChannelCapacity,
		},
	}
}

// WithSource sets the datagram source.
func (b *Builder) WithSource(s source.Source) *Builder {
	b.config.Source = s
	return b
}

// WithDecoder sets the packet decoder.
func (b *Builder) WithDecoder(d decoder.Decoder) *Builder {
	b.config.Decoder = d
	return b
}

// WithSinks sets the sinks every record is reported to.
func (b *Builder) WithSinks(sinks ...sink.Sink) *Builder {
	b.config.Sinks = sinks
	return b
}

// WithWorkers sets the number of decode goroutines.
func (b *Builder) WithWorkers(n int) *Builder {
	b.config.Workers = n
	return b
}

// WithChannelCapacity sets the datagram channel buffer size.
func (b *Builder) WithChannelCapacity(n int) *Builder {
	b.config.ChannelCapacity = n
	return b
}

// WithConfig applies the pipeline section of the global configuration.
func (b *Builder) WithConfig(cfg config.PipelineConfig) *Builder {
	return b.WithWorkers(cfg.Workers).WithChannelCapacity(cfg.ChannelCapacity)
}

// Build creates the pipeline.
func (b *Builder) Build() *Pipeline {
	return New(b.config)
}
