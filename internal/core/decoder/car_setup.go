package decoder

// TyrePressure is a per-axle pair, in PSI.
type TyrePressure struct {
	Left  float32 `json:"left" yaml:"left"`
	Right float32 `json:"right" yaml:"right"`
}

// CarSetupData is the setup of one car. Values are hidden for other cars in online sessions.
type CarSetupData struct {
	FrontWing             uint8        `json:"front_wing" yaml:"front_wing"`
	RearWing              uint8        `json:"rear_wing" yaml:"rear_wing"`
	OnThrottle            uint8        `json:"on_throttle" yaml:"on_throttle"`   // percent
	OffThrottle           uint8        `json:"off_throttle" yaml:"off_throttle"` // percent
	FrontCamber           float32      `json:"front_camber" yaml:"front_camber"`
	RearCamber            float32      `json:"rear_camber" yaml:"rear_camber"`
	FrontToe              float32      `json:"front_toe" yaml:"front_toe"`
	RearToe               float32      `json:"rear_toe" yaml:"rear_toe"`
	FrontSuspension       uint8        `json:"front_suspension" yaml:"front_suspension"`
	RearSuspension        uint8        `json:"rear_suspension" yaml:"rear_suspension"`
	FrontAntiRollBar      uint8        `json:"front_anti_roll_bar" yaml:"front_anti_roll_bar"`
	RearAntiRollBar       uint8        `json:"rear_anti_roll_bar" yaml:"rear_anti_roll_bar"`
	FrontSuspensionHeight uint8        `json:"front_suspension_height" yaml:"front_suspension_height"`
	RearSuspensionHeight  uint8        `json:"rear_suspension_height" yaml:"rear_suspension_height"`
	BrakePressure         uint8        `json:"brake_pressure" yaml:"brake_pressure"` // percent
	BrakeBias             uint8        `json:"brake_bias" yaml:"brake_bias"`         // percent
	RearTyrePressure      TyrePressure `json:"rear_tyre_pressure" yaml:"rear_tyre_pressure"`
	FrontTyrePressure     TyrePressure `json:"front_tyre_pressure" yaml:"front_tyre_pressure"`
	Ballast               uint8        `json:"ballast" yaml:"ballast"`
	FuelLoad              float32      `json:"fuel_load" yaml:"fuel_load"` // kg
}

// CarSetupsPacket carries the setup of every car.
type CarSetupsPacket struct {
	Header    Header                  `json:"header" yaml:"header"`
	CarSetups [TotalCars]CarSetupData `json:"car_setups" yaml:"car_setups"`
}

func (*CarSetupsPacket) Kind() PacketKind       { return KindCarSetups }
func (p *CarSetupsPacket) PacketHeader() Header { return p.Header }
func (*CarSetupsPacket) packet()                {}

func tyrePressure(r *reader) TyrePressure {
	return TyrePressure{Left: r.f32(), Right: r.f32()}
}

func decodeCarSetups(c *Cursor, h Header) (*CarSetupsPacket, error) {
	r := &reader{c: c}
	p := &CarSetupsPacket{Header: h}
	for i := range p.CarSetups {
		p.CarSetups[i] = CarSetupData{
			FrontWing:             r.u8(),
			RearWing:              r.u8(),
			OnThrottle:            r.u8(),
			OffThrottle:           r.u8(),
			FrontCamber:           r.f32(),
			RearCamber:            r.f32(),
			FrontToe:              r.f32(),
			RearToe:               r.f32(),
			FrontSuspension:       r.u8(),
			RearSuspension:        r.u8(),
			FrontAntiRollBar:      r.u8(),
			RearAntiRollBar:       r.u8(),
			FrontSuspensionHeight: r.u8(),
			RearSuspensionHeight:  r.u8(),
			BrakePressure:         r.u8(),
			BrakeBias:             r.u8(),
			RearTyrePressure:      tyrePressure(r),
			FrontTyrePressure:     tyrePressure(r),
			Ballast:               r.u8(),
			FuelLoad:              r.f32(),
		}
	}
	if r.err != nil {
		return nil, r.err
	}
	return p, nil
}
