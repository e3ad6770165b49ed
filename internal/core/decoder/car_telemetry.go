package decoder

// CarTelemetryData is the driver inputs and sensor readings of one car.
type CarTelemetryData struct {
	Speed                   uint16              `json:"speed" yaml:"speed"` // km/h
	Throttle                float32             `json:"throttle" yaml:"throttle"`
	Steer                   float32             `json:"steer" yaml:"steer"`
	Brake                   float32             `json:"brake" yaml:"brake"`
	Clutch                  uint8               `json:"clutch" yaml:"clutch"`
	Gear                    int8                `json:"gear" yaml:"gear"` // -1 reverse, 0 neutral
	EngineRPM               uint16              `json:"engine_rpm" yaml:"engine_rpm"`
	DRS                     bool                `json:"drs" yaml:"drs"`
	RevLightsPercent        uint8               `json:"rev_lights_percent" yaml:"rev_lights_percent"`
	BrakesTemperature       Wheels[uint16]      `json:"brakes_temperature" yaml:"brakes_temperature"`
	TyresSurfaceTemperature Wheels[uint8]       `json:"tyres_surface_temperature" yaml:"tyres_surface_temperature"`
	TyresInnerTemperature   Wheels[uint8]       `json:"tyres_inner_temperature" yaml:"tyres_inner_temperature"`
	EngineTemperature       uint16              `json:"engine_temperature" yaml:"engine_temperature"`
	TyresPressure           Wheels[float32]     `json:"tyres_pressure" yaml:"tyres_pressure"`
	SurfaceType             Wheels[SurfaceType] `json:"surface_type" yaml:"surface_type"`
}

// CarTelemetryPacket carries telemetry for every car plus the HUD state of the player.
type CarTelemetryPacket struct {
	Header                       Header                      `json:"header" yaml:"header"`
	CarTelemetry                 [TotalCars]CarTelemetryData `json:"car_telemetry" yaml:"car_telemetry"`
	ButtonStatus                 uint32                      `json:"button_status" yaml:"button_status"`
	MFDPanelIndex                MFDPanel                    `json:"mfd_panel_index" yaml:"mfd_panel_index"`
	MFDPanelIndexSecondaryPlayer MFDPanel                    `json:"mfd_panel_index_secondary_player" yaml:"mfd_panel_index_secondary_player"`
	SuggestedGear                int8                        `json:"suggested_gear" yaml:"suggested_gear"` // 0 when no suggestion
}

func (*CarTelemetryPacket) Kind() PacketKind       { return KindCarTelemetry }
func (p *CarTelemetryPacket) PacketHeader() Header { return p.Header }
func (*CarTelemetryPacket) packet()                {}

func surfaceTypes(r *reader) Wheels[SurfaceType] {
	read := func() SurfaceType { return enum(r, "surface_type", r.u8, parseSurfaceType) }
	return Wheels[SurfaceType]{RearLeft: read(), RearRight: read(), FrontLeft: read(), FrontRight: read()}
}

func decodeCarTelemetry(c *Cursor, h Header) (*CarTelemetryPacket, error) {
	r := &reader{c: c}
	p := &CarTelemetryPacket{Header: h}
	for i := range p.CarTelemetry {
		p.CarTelemetry[i] = CarTelemetryData{
			Speed:                   r.u16(),
			Throttle:                r.f32(),
			Steer:                   r.f32(),
			Brake:                   r.f32(),
			Clutch:                  r.u8(),
			Gear:                    r.i8(),
			EngineRPM:               r.u16(),
			DRS:                     r.flag(),
			RevLightsPercent:        r.u8(),
			BrakesTemperature:       wheelsU16(r),
			TyresSurfaceTemperature: wheelsU8(r),
			TyresInnerTemperature:   wheelsU8(r),
			EngineTemperature:       r.u16(),
			TyresPressure:           wheelsF32(r),
			SurfaceType:             surfaceTypes(r),
		}
	}
	p.ButtonStatus = r.u32()
	p.MFDPanelIndex = enum(r, "mfd_panel_index", r.u8, parseMFDPanel)
	p.MFDPanelIndexSecondaryPlayer = enum(r, "mfd_panel_index_secondary_player", r.u8, parseMFDPanel)
	p.SuggestedGear = r.i8()
	if r.err != nil {
		return nil, r.err
	}
	return p, nil
}
