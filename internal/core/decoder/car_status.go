package decoder

// CarStatusData is the state of one car's systems: fuel, tyres, damage and ERS.
type CarStatusData struct {
	TractionControl         TractionControl    `json:"traction_control" yaml:"traction_control"`
	AntiLockBrakes          AntiLockBrakes     `json:"anti_lock_brakes" yaml:"anti_lock_brakes"`
	FuelMix                 FuelMix            `json:"fuel_mix" yaml:"fuel_mix"`
	FrontBrakeBias          uint8              `json:"front_brake_bias" yaml:"front_brake_bias"`
	PitLimiterStatus        bool               `json:"pit_limiter_status" yaml:"pit_limiter_status"`
	FuelInTank              float32            `json:"fuel_in_tank" yaml:"fuel_in_tank"`
	FuelCapacity            float32            `json:"fuel_capacity" yaml:"fuel_capacity"`
	FuelRemainingLaps       float32            `json:"fuel_remaining_laps" yaml:"fuel_remaining_laps"`
	MaxRPM                  uint16             `json:"max_rpm" yaml:"max_rpm"`
	IdleRPM                 uint16             `json:"idle_rpm" yaml:"idle_rpm"`
	MaxGears                uint8              `json:"max_gears" yaml:"max_gears"`
	DRSAllowed              DRSAllowed         `json:"drs_allowed" yaml:"drs_allowed"`
	DRSActivationDistance   uint16             `json:"drs_activation_distance" yaml:"drs_activation_distance"` // metres, 0 when unavailable
	TyresWear               Wheels[uint8]      `json:"tyres_wear" yaml:"tyres_wear"`                           // percent
	ActualTyreCompound      ActualTyreCompound `json:"actual_tyre_compound" yaml:"actual_tyre_compound"`
	VisualTyreCompound      VisualTyreCompound `json:"visual_tyre_compound" yaml:"visual_tyre_compound"`
	TyresAgeLaps            uint8              `json:"tyres_age_laps" yaml:"tyres_age_laps"`
	TyresDamage             Wheels[uint8]      `json:"tyres_damage" yaml:"tyres_damage"` // percent
	FrontLeftWingDamage     uint8              `json:"front_left_wing_damage" yaml:"front_left_wing_damage"`
	FrontRightWingDamage    uint8              `json:"front_right_wing_damage" yaml:"front_right_wing_damage"`
	RearWingDamage          uint8              `json:"rear_wing_damage" yaml:"rear_wing_damage"`
	DRSFault                bool               `json:"drs_fault" yaml:"drs_fault"`
	EngineDamage            uint8              `json:"engine_damage" yaml:"engine_damage"`
	GearBoxDamage           uint8              `json:"gear_box_damage" yaml:"gear_box_damage"`
	VehicleFIAFlags         ZoneFlag           `json:"vehicle_fia_flags" yaml:"vehicle_fia_flags"`
	ERSStoreEnergy          float32            `json:"ers_store_energy" yaml:"ers_store_energy"` // joules
	ERSDeployMode           ERSDeployMode      `json:"ers_deploy_mode" yaml:"ers_deploy_mode"`
	ERSHarvestedThisLapMGUK float32            `json:"ers_harvested_this_lap_mguk" yaml:"ers_harvested_this_lap_mguk"`
	ERSHarvestedThisLapMGUH float32            `json:"ers_harvested_this_lap_mguh" yaml:"ers_harvested_this_lap_mguh"`
	ERSDeployedThisLap      float32            `json:"ers_deployed_this_lap" yaml:"ers_deployed_this_lap"`
}

// CarStatusPacket carries the status of every car.
type CarStatusPacket struct {
	Header    Header                   `json:"header" yaml:"header"`
	CarStatus [TotalCars]CarStatusData `json:"car_status" yaml:"car_status"`
}

func (*CarStatusPacket) Kind() PacketKind       { return KindCarStatus }
func (p *CarStatusPacket) PacketHeader() Header { return p.Header }
func (*CarStatusPacket) packet()                {}

func decodeCarStatus(c *Cursor, h Header) (*CarStatusPacket, error) {
	r := &reader{c: c}
	p := &CarStatusPacket{Header: h}
	for i := range p.CarStatus {
		p.CarStatus[i] = CarStatusData{
			TractionControl:         enum(r, "traction_control", r.u8, parseTractionControl),
			AntiLockBrakes:          enum(r, "anti_lock_brakes", r.u8, parseAntiLockBrakes),
			FuelMix:                 enum(r, "fuel_mix", r.u8, parseFuelMix),
			FrontBrakeBias:          r.u8(),
			PitLimiterStatus:        r.flag(),
			FuelInTank:              r.f32(),
			FuelCapacity:            r.f32(),
			FuelRemainingLaps:       r.f32(),
			MaxRPM:                  r.u16(),
			IdleRPM:                 r.u16(),
			MaxGears:                r.u8(),
			DRSAllowed:              enum(r, "drs_allowed", r.i8, parseDRSAllowed),
			DRSActivationDistance:   r.u16(),
			TyresWear:               wheelsU8(r),
			ActualTyreCompound:      enum(r, "actual_tyre_compound", r.u8, parseActualTyreCompound),
			VisualTyreCompound:      enum(r, "visual_tyre_compound", r.u8, parseVisualTyreCompound),
			TyresAgeLaps:            r.u8(),
			TyresDamage:             wheelsU8(r),
			FrontLeftWingDamage:     r.u8(),
			FrontRightWingDamage:    r.u8(),
			RearWingDamage:          r.u8(),
			DRSFault:                r.flag(),
			EngineDamage:            r.u8(),
			GearBoxDamage:           r.u8(),
			VehicleFIAFlags:         enum(r, "vehicle_fia_flags", r.i8, parseZoneFlag),
			ERSStoreEnergy:          r.f32(),
			ERSDeployMode:           enum(r, "ers_deploy_mode", r.u8, parseERSDeployMode),
			ERSHarvestedThisLapMGUK: r.f32(),
			ERSHarvestedThisLapMGUH: r.f32(),
			ERSDeployedThisLap:      r.f32(),
		}
	}
	if r.err != nil {
		return nil, r.err
	}
	return p, nil
}
