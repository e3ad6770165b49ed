// Package metrics implements Prometheus metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// DatagramsReceivedTotal counts datagrams handed to the pipeline by source
	DatagramsReceivedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pitwall_datagrams_received_total",
			Help: "Total number of telemetry datagrams received",
		},
		[]string{"source"},
	)

	// DatagramsDroppedTotal counts datagrams discarded before decoding
	DatagramsDroppedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pitwall_datagrams_dropped_total",
			Help: "Total number of datagrams dropped before decoding",
		},
		[]string{"source", "stage"},
	)

	// PacketsDecodedTotal counts successfully decoded packets by kind
	PacketsDecodedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pitwall_packets_decoded_total",
			Help: "Total number of packets decoded",
		},
		[]string{"kind"},
	)

	// DecodeErrorsTotal counts rejected datagrams by error class
	DecodeErrorsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pitwall_decode_errors_total",
			Help: "Total number of datagrams that failed to decode",
		},
		[]string{"reason"},
	)

	// DecodeDurationSeconds measures time spent decoding one datagram
	DecodeDurationSeconds = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "pitwall_decode_duration_seconds",
			Help:    "Time spent decoding a single datagram in seconds",
			Buckets: prometheus.ExponentialBuckets(0.0000005, 2, 16), // 500ns to ~16ms
		},
	)

	// RecordsReportedTotal counts records accepted by each sink
	RecordsReportedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pitwall_records_reported_total",
			Help: "Total number of records delivered to sinks",
		},
		[]string{"sink"},
	)

	// SinkErrorsTotal counts sink report failures
	SinkErrorsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pitwall_sink_errors_total",
			Help: "Total number of sink report errors",
		},
		[]string{"sink"},
	)

	// PipelineQueueLength tracks datagrams waiting for a decode worker
	PipelineQueueLength = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "pitwall_pipeline_queue_length",
			Help: "Current number of datagrams queued for decoding",
		},
		[]string{"source"},
	)
)

// Source label values.
const (
	SourceUDP  = "udp"
	SourcePcap = "pcap"
)
