package decoder

const maxTyreStints = 8

// FinalClassificationData is the result of one car at the end of a session.
type FinalClassificationData struct {
	Position         uint8                             `json:"position" yaml:"position"`
	NumLaps          uint8                             `json:"num_laps" yaml:"num_laps"`
	GridPosition     uint8                             `json:"grid_position" yaml:"grid_position"`
	Points           uint8                             `json:"points" yaml:"points"`
	NumPitStops      uint8                             `json:"num_pit_stops" yaml:"num_pit_stops"`
	ResultStatus     ResultStatus                      `json:"result_status" yaml:"result_status"`
	BestLapTime      Seconds                           `json:"best_lap_time" yaml:"best_lap_time"`
	TotalRaceTime    Seconds64                         `json:"total_race_time" yaml:"total_race_time"` // without penalties
	PenaltiesTime    WholeSeconds                      `json:"penalties_time" yaml:"penalties_time"`
	NumPenalties     uint8                             `json:"num_penalties" yaml:"num_penalties"`
	NumTyreStints    uint8                             `json:"num_tyre_stints" yaml:"num_tyre_stints"`
	TyreStintsActual [maxTyreStints]ActualTyreCompound `json:"tyre_stints_actual" yaml:"tyre_stints_actual"`
	TyreStintsVisual [maxTyreStints]VisualTyreCompound `json:"tyre_stints_visual" yaml:"tyre_stints_visual"`
}

// FinalClassificationPacket is sent once when a session ends.
type FinalClassificationPacket struct {
	Header         Header                             `json:"header" yaml:"header"`
	NumCars        uint8                              `json:"num_cars" yaml:"num_cars"`
	Classification [TotalCars]FinalClassificationData `json:"classification" yaml:"classification"`
}

func (*FinalClassificationPacket) Kind() PacketKind       { return KindFinalClassification }
func (p *FinalClassificationPacket) PacketHeader() Header { return p.Header }
func (*FinalClassificationPacket) packet()                {}

func decodeFinalClassification(c *Cursor, h Header) (*FinalClassificationPacket, error) {
	r := &reader{c: c}
	p := &FinalClassificationPacket{Header: h, NumCars: r.u8()}
	for i := range p.Classification {
		d := &p.Classification[i]
		d.Position = r.u8()
		d.NumLaps = r.u8()
		d.GridPosition = r.u8()
		d.Points = r.u8()
		d.NumPitStops = r.u8()
		d.ResultStatus = enum(r, "result_status", r.u8, parseResultStatus)
		d.BestLapTime = r.seconds()
		d.TotalRaceTime = r.seconds64()
		d.PenaltiesTime = r.wholeSeconds()
		d.NumPenalties = r.u8()
		d.NumTyreStints = r.u8()
		// Every stint slot is sent, used or not.
		for j := range d.TyreStintsActual {
			d.TyreStintsActual[j] = enum(r, "tyre_stints_actual", r.u8, parseActualTyreCompound)
		}
		for j := range d.TyreStintsVisual {
			d.TyreStintsVisual[j] = enum(r, "tyre_stints_visual", r.u8, parseVisualTyreCompound)
		}
	}
	if r.err != nil {
		return nil, r.err
	}
	return p, nil
}
