package nats

import (
	"context"
	"encoding/json"
	"errors"
	"net/netip"
	"testing"
	"time"

	"github.com/nats-io/nats.go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"firestige.xyz/pitwall/internal/core"
	"firestige.xyz/pitwall/internal/core/decoder"
)

type mockPublisher struct {
	mock.Mock
}

func (m *mockPublisher) PublishMsg(msg *nats.Msg) error {
	return m.Called(msg).Error(0)
}

func (m *mockPublisher) FlushWithContext(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *mockPublisher) Drain() error {
	return m.Called().Error(0)
}

func started(t *testing.T, opts map[string]any, pub *mockPublisher) *Sink {
	t.Helper()
	s := New(Type)
	require.NoError(t, s.Init(opts))
	s.dial = func(Config) (publisher, error) { return pub, nil }
	require.NoError(t, s.Start(context.Background()))
	return s
}

func statusRecord() *core.Record {
	return &core.Record{
		Timestamp:  time.Date(2020, 7, 5, 13, 10, 0, 0, time.UTC),
		Source:     netip.MustParseAddrPort("192.168.1.20:20777"),
		Kind:       "car_status",
		SessionUID: 99,
		FrameID:    12,
		Packet:     &decoder.CarStatusPacket{Header: decoder.Header{PacketFormat: 2020, PacketID: 7}},
	}
}

func TestInit(t *testing.T) {
	s := New(Type)
	require.NoError(t, s.Init(nil))
	assert.Equal(t, Config{
		URL:           nats.DefaultURL,
		SubjectPrefix: defaultSubjectPrefix,
		ClientName:    defaultClientName,
		ReconnectWait: defaultReconnectWait,
		MaxReconnects: defaultMaxReconnects,
	}, s.config)

	require.NoError(t, s.Init(map[string]any{
		"url":            "nats://broker:4222",
		"subject_prefix": "f1.rig1",
		"reconnect_wait": "500ms",
		"max_reconnects": -1,
	}))
	assert.Equal(t, "nats://broker:4222", s.config.URL)
	assert.Equal(t, 500*time.Millisecond, s.config.ReconnectWait)
	assert.Equal(t, -1, s.config.MaxReconnects)
	assert.Equal(t, "f1.rig1.lap", s.Subject("lap"))

	assert.Error(t, New(Type).Init(map[string]any{"subject_prefix": ""}))
	assert.Error(t, New(Type).Init(map[string]any{"stream": "telemetry"}))
}

func TestReport(t *testing.T) {
	pub := &mockPublisher{}
	var sent *nats.Msg
	pub.On("PublishMsg", mock.Anything).Run(func(args mock.Arguments) {
		sent = args.Get(0).(*nats.Msg)
	}).Return(nil).Once()
	pub.On("FlushWithContext", mock.Anything).Return(nil).Once()
	pub.On("Drain").Return(nil).Once()

	s := started(t, nil, pub)
	require.NoError(t, s.Report(context.Background(), statusRecord()))
	require.NoError(t, s.Flush(context.Background()))
	require.NoError(t, s.Stop(context.Background()))
	pub.AssertExpectations(t)

	require.NotNil(t, sent)
	assert.Equal(t, "pitwall.car_status", sent.Subject)
	assert.Equal(t, "car_status", sent.Header.Get(core.LabelKind))
	assert.Equal(t, "99", sent.Header.Get(core.LabelSessionUID))
	assert.Equal(t, "12", sent.Header.Get(core.LabelFrameID))
	assert.Equal(t, "192.168.1.20:20777", sent.Header.Get(core.LabelSource))

	var body map[string]any
	require.NoError(t, json.Unmarshal(sent.Data, &body))
	assert.Equal(t, "car_status", body["kind"])
	assert.Equal(t, uint64(1), s.reportedCount.Load())
}

func TestReportErrors(t *testing.T) {
	pub := &mockPublisher{}
	pub.On("PublishMsg", mock.Anything).Return(nats.ErrConnectionClosed)

	s := started(t, nil, pub)
	err := s.Report(context.Background(), statusRecord())
	assert.ErrorIs(t, err, nats.ErrConnectionClosed)
	assert.Error(t, s.Report(context.Background(), nil))
	assert.Equal(t, uint64(1), s.errorCount.Load())
}

func TestNotStarted(t *testing.T) {
	s := New(Type)
	require.NoError(t, s.Init(nil))

	assert.ErrorContains(t, s.Report(context.Background(), statusRecord()), "not started")
	assert.NoError(t, s.Flush(context.Background()))
	assert.NoError(t, s.Stop(context.Background()))
}

func TestStartDialError(t *testing.T) {
	s := New(Type)
	require.NoError(t, s.Init(nil))
	s.dial = func(Config) (publisher, error) { return nil, errors.New("no servers available") }
	assert.ErrorContains(t, s.Start(context.Background()), "no servers available")
}

func TestConnectRefused(t *testing.T) {
	_, err := connect(Config{URL: "nats://127.0.0.1:1", ClientName: "test", ReconnectWait: time.Millisecond})
	assert.Error(t, err)
}

func TestDrainError(t *testing.T) {
	pub := &mockPublisher{}
	pub.On("Drain").Return(errors.New("drain timeout"))

	s := started(t, nil, pub)
	assert.ErrorContains(t, s.Stop(context.Background()), "drain timeout")
}
