package decoder

// LapData is the timing state of one car. Lap and delta times are float
// seconds; sector times are integer milliseconds.
type LapData struct {
	LastLapTime              Seconds      `json:"last_lap_time" yaml:"last_lap_time"`
	CurrentLapTime           Seconds      `json:"current_lap_time" yaml:"current_lap_time"`
	Sector1Time              Milliseconds `json:"sector1_time" yaml:"sector1_time"`
	Sector2Time              Milliseconds `json:"sector2_time" yaml:"sector2_time"`
	BestLapTime              Seconds      `json:"best_lap_time" yaml:"best_lap_time"`
	BestLapNum               uint8        `json:"best_lap_num" yaml:"best_lap_num"`
	BestLapSector1Time       Milliseconds `json:"best_lap_sector1_time" yaml:"best_lap_sector1_time"`
	BestLapSector2Time       Milliseconds `json:"best_lap_sector2_time" yaml:"best_lap_sector2_time"`
	BestLapSector3Time       Milliseconds `json:"best_lap_sector3_time" yaml:"best_lap_sector3_time"`
	BestOverallSector1Time   Milliseconds `json:"best_overall_sector1_time" yaml:"best_overall_sector1_time"`
	BestOverallSector1LapNum uint8        `json:"best_overall_sector1_lap_num" yaml:"best_overall_sector1_lap_num"`
	BestOverallSector2Time   Milliseconds `json:"best_overall_sector2_time" yaml:"best_overall_sector2_time"`
	BestOverallSector2LapNum uint8        `json:"best_overall_sector2_lap_num" yaml:"best_overall_sector2_lap_num"`
	BestOverallSector3Time   Milliseconds `json:"best_overall_sector3_time" yaml:"best_overall_sector3_time"`
	BestOverallSector3LapNum uint8        `json:"best_overall_sector3_lap_num" yaml:"best_overall_sector3_lap_num"`
	LapDistance              float32      `json:"lap_distance" yaml:"lap_distance"`     // metres, negative before the line
	TotalDistance            float32      `json:"total_distance" yaml:"total_distance"` // metres
	SafetyCarDelta           Seconds      `json:"safety_car_delta" yaml:"safety_car_delta"`
	CarPosition              uint8        `json:"car_position" yaml:"car_position"`
	CurrentLapNum            uint8        `json:"current_lap_num" yaml:"current_lap_num"`
	PitStatus                PitStatus    `json:"pit_status" yaml:"pit_status"`
	Sector                   uint8        `json:"sector" yaml:"sector"` // 0 = sector1
	CurrentLapInvalid        bool         `json:"current_lap_invalid" yaml:"current_lap_invalid"`
	Penalties                WholeSeconds `json:"penalties" yaml:"penalties"`
	GridPosition             uint8        `json:"grid_position" yaml:"grid_position"`
	DriverStatus             DriverStatus `json:"driver_status" yaml:"driver_status"`
	ResultStatus             ResultStatus `json:"result_status" yaml:"result_status"`
}

// LapPacket carries lap timing for every car.
type LapPacket struct {
	Header  Header             `json:"header" yaml:"header"`
	LapData [TotalCars]LapData `json:"lap_data" yaml:"lap_data"`
}

func (*LapPacket) Kind() PacketKind       { return KindLap }
func (p *LapPacket) PacketHeader() Header { return p.Header }
func (*LapPacket) packet()                {}

func decodeLap(c *Cursor, h Header) (*LapPacket, error) {
	r := &reader{c: c}
	p := &LapPacket{Header: h}
	for i := range p.LapData {
		p.LapData[i] = LapData{
			LastLapTime:              r.seconds(),
			CurrentLapTime:           r.seconds(),
			Sector1Time:              r.millis(),
			Sector2Time:              r.millis(),
			BestLapTime:              r.seconds(),
			BestLapNum:               r.u8(),
			BestLapSector1Time:       r.millis(),
			BestLapSector2Time:       r.millis(),
			BestLapSector3Time:       r.millis(),
			BestOverallSector1Time:   r.millis(),
			BestOverallSector1LapNum: r.u8(),
			BestOverallSector2Time:   r.millis(),
			BestOverallSector2LapNum: r.u8(),
			BestOverallSector3Time:   r.millis(),
			BestOverallSector3LapNum: r.u8(),
			LapDistance:              r.f32(),
			TotalDistance:            r.f32(),
			SafetyCarDelta:           r.seconds(),
			CarPosition:              r.u8(),
			CurrentLapNum:            r.u8(),
			PitStatus:                enum(r, "pit_status", r.u8, parsePitStatus),
			Sector:                   r.u8(),
			CurrentLapInvalid:        r.flag(),
			Penalties:                r.wholeSeconds(),
			GridPosition:             r.u8(),
			DriverStatus:             enum(r, "driver_status", r.u8, parseDriverStatus),
			ResultStatus:             enum(r, "result_status", r.u8, parseResultStatus),
		}
	}
	if r.err != nil {
		return nil, r.err
	}
	return p, nil
}
