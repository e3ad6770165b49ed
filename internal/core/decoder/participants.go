package decoder

// ParticipantData identifies the driver and team of one car.
type ParticipantData struct {
	AIControlled  bool             `json:"ai_controlled" yaml:"ai_controlled"`
	Driver        Driver           `json:"driver" yaml:"driver"`
	Team          Team             `json:"team" yaml:"team"`
	RaceNumber    uint8            `json:"race_number" yaml:"race_number"`
	Nationality   Nationality      `json:"nationality" yaml:"nationality"`
	Name          string           `json:"name" yaml:"name"`
	YourTelemetry TelemetrySetting `json:"your_telemetry" yaml:"your_telemetry"`
}

// ParticipantsPacket lists the participants of the session.
type ParticipantsPacket struct {
	Header        Header                     `json:"header" yaml:"header"`
	NumActiveCars uint8                      `json:"num_active_cars" yaml:"num_active_cars"`
	Participants  [TotalCars]ParticipantData `json:"participants" yaml:"participants"`
}

func (*ParticipantsPacket) Kind() PacketKind       { return KindParticipants }
func (p *ParticipantsPacket) PacketHeader() Header { return p.Header }
func (*ParticipantsPacket) packet()                {}

func decodeParticipants(c *Cursor, h Header) (*ParticipantsPacket, error) {
	r := &reader{c: c}
	p := &ParticipantsPacket{Header: h, NumActiveCars: r.u8()}
	// All slots are on the wire regardless of NumActiveCars.
	for i := range p.Participants {
		p.Participants[i] = ParticipantData{
			AIControlled:  r.flag(),
			Driver:        enum(r, "driver_id", r.u8, parseDriver),
			Team:          enum(r, "team_id", r.u8, parseTeam),
			RaceNumber:    r.u8(),
			Nationality:   enum(r, "nationality", r.u8, parseNationality),
			Name:          r.name(),
			YourTelemetry: enum(r, "your_telemetry", r.u8, parseTelemetrySetting),
		}
	}
	if r.err != nil {
		return nil, r.err
	}
	return p, nil
}
