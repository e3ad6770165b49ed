package decoder

import (
	"fmt"

	"firestige.xyz/pitwall/internal/core"
)

// Event codes, sent as four raw ASCII bytes.
const (
	EventSessionStarted = "SSTA"
	EventSessionEnded   = "SEND"
	EventFastestLap     = "FTLP"
	EventRetirement     = "RTMT"
	EventDRSEnabled     = "DRSE"
	EventDRSDisabled    = "DRSD"
	EventTeamMateInPits = "TMPT"
	EventChequeredFlag  = "CHQF"
	EventRaceWinner     = "RCWN"
	EventPenaltyIssued  = "PENA"
	EventSpeedTrap      = "SPTP"
)

// Event is one of the eleven event payloads. Code returns the wire code.
type Event interface {
	Code() string
}

type (
	SessionStarted struct{}
	SessionEnded   struct{}
	DRSEnabled     struct{}
	DRSDisabled    struct{}
	ChequeredFlag  struct{}
)

// FastestLap is sent when a car sets the fastest lap of the session.
type FastestLap struct {
	VehicleIdx uint8   `json:"vehicle_idx" yaml:"vehicle_idx"`
	LapTime    Seconds `json:"lap_time" yaml:"lap_time"`
}

// Retirement is sent when a car retires.
type Retirement struct {
	VehicleIdx uint8 `json:"vehicle_idx" yaml:"vehicle_idx"`
}

// TeamMateInPits is sent when the player's team mate enters the pits.
type TeamMateInPits struct {
	VehicleIdx uint8 `json:"vehicle_idx" yaml:"vehicle_idx"`
}

// RaceWinner is sent when the race winner is known.
type RaceWinner struct {
	VehicleIdx uint8 `json:"vehicle_idx" yaml:"vehicle_idx"`
}

// Penalty is sent when a penalty is issued.
type Penalty struct {
	PenaltyType      PenaltyType      `json:"penalty_type" yaml:"penalty_type"`
	InfringementType InfringementType `json:"infringement_type" yaml:"infringement_type"`
	VehicleIdx       uint8            `json:"vehicle_idx" yaml:"vehicle_idx"`
	OtherVehicleIdx  uint8            `json:"other_vehicle_idx" yaml:"other_vehicle_idx"`
	Time             WholeSeconds     `json:"time" yaml:"time"`
	LapNum           uint8            `json:"lap_num" yaml:"lap_num"`
	PlacesGained     uint8            `json:"places_gained" yaml:"places_gained"`
}

// SpeedTrap is sent when a car sets the fastest speed trap so far.
type SpeedTrap struct {
	VehicleIdx uint8   `json:"vehicle_idx" yaml:"vehicle_idx"`
	Speed      float32 `json:"speed" yaml:"speed"` // km/h
}

func (SessionStarted) Code() string { return EventSessionStarted }
func (SessionEnded) Code() string   { return EventSessionEnded }
func (FastestLap) Code() string     { return EventFastestLap }
func (Retirement) Code() string     { return EventRetirement }
func (DRSEnabled) Code() string     { return EventDRSEnabled }
func (DRSDisabled) Code() string    { return EventDRSDisabled }
func (TeamMateInPits) Code() string { return EventTeamMateInPits }
func (ChequeredFlag) Code() string  { return EventChequeredFlag }
func (RaceWinner) Code() string     { return EventRaceWinner }
func (Penalty) Code() string        { return EventPenaltyIssued }
func (SpeedTrap) Code() string      { return EventSpeedTrap }

// EventPacket carries one session event. Code is the raw four-byte code.
type EventPacket struct {
	Header Header `json:"header" yaml:"header"`
	Code   string `json:"code" yaml:"code"`
	Event  Event  `json:"event" yaml:"event"`
}

func (*EventPacket) Kind() PacketKind       { return KindEvent }
func (p *EventPacket) PacketHeader() Header { return p.Header }
func (*EventPacket) packet()                {}

func decodeEvent(c *Cursor, h Header) (*EventPacket, error) {
	raw, err := c.Bytes(4)
	if err != nil {
		return nil, err
	}
	code := string(raw)

	r := &reader{c: c}
	var ev Event
	switch code {
	case EventSessionStarted:
		ev = SessionStarted{}
	case EventSessionEnded:
		ev = SessionEnded{}
	case EventDRSEnabled:
		ev = DRSEnabled{}
	case EventDRSDisabled:
		ev = DRSDisabled{}
	case EventChequeredFlag:
		ev = ChequeredFlag{}
	case EventFastestLap:
		ev = FastestLap{VehicleIdx: r.u8(), LapTime: r.seconds()}
	case EventRetirement:
		ev = Retirement{VehicleIdx: r.u8()}
	case EventTeamMateInPits:
		ev = TeamMateInPits{VehicleIdx: r.u8()}
	case EventRaceWinner:
		ev = RaceWinner{VehicleIdx: r.u8()}
	case EventPenaltyIssued:
		ev = Penalty{
			PenaltyType:      enum(r, "penalty_type", r.u8, parsePenaltyType),
			InfringementType: enum(r, "infringement_type", r.u8, parseInfringementType),
			VehicleIdx:       r.u8(),
			OtherVehicleIdx:  r.u8(),
			Time:             r.wholeSeconds(),
			LapNum:           r.u8(),
			PlacesGained:     r.u8(),
		}
	case EventSpeedTrap:
		ev = SpeedTrap{VehicleIdx: r.u8(), Speed: r.f32()}
	default:
		return nil, fmt.Errorf("%w: %q", core.ErrUnknownEventCode, code)
	}
	if r.err != nil {
		return nil, r.err
	}
	return &EventPacket{Header: h, Code: code, Event: ev}, nil
}
