package decoder

// CarMotion is the world-space motion of one car.
type CarMotion struct {
	WorldPosition      Vector3     `json:"world_position" yaml:"world_position"`
	WorldVelocity      Vector3     `json:"world_velocity" yaml:"world_velocity"`
	WorldForwardDir    NormVector3 `json:"world_forward_dir" yaml:"world_forward_dir"`
	WorldRightDir      NormVector3 `json:"world_right_dir" yaml:"world_right_dir"`
	GForceLateral      float32     `json:"g_force_lateral" yaml:"g_force_lateral"`
	GForceLongitudinal float32     `json:"g_force_longitudinal" yaml:"g_force_longitudinal"`
	GForceVertical     float32     `json:"g_force_vertical" yaml:"g_force_vertical"`
	Yaw                float32     `json:"yaw" yaml:"yaw"`
	Pitch              float32     `json:"pitch" yaml:"pitch"`
	Roll               float32     `json:"roll" yaml:"roll"`
}

// MotionPacket carries motion for every car plus extra physics for the
// player car.
type MotionPacket struct {
	Header                 Header               `json:"header" yaml:"header"`
	CarMotion              [TotalCars]CarMotion `json:"car_motion" yaml:"car_motion"`
	SuspensionPosition     Wheels[float32]      `json:"suspension_position" yaml:"suspension_position"`
	SuspensionVelocity     Wheels[float32]      `json:"suspension_velocity" yaml:"suspension_velocity"`
	SuspensionAcceleration Wheels[float32]      `json:"suspension_acceleration" yaml:"suspension_acceleration"`
	WheelSpeed             Wheels[float32]      `json:"wheel_speed" yaml:"wheel_speed"`
	WheelSlip              Wheels[float32]      `json:"wheel_slip" yaml:"wheel_slip"`
	LocalVelocity          Vector3              `json:"local_velocity" yaml:"local_velocity"`
	AngularVelocity        Vector3              `json:"angular_velocity" yaml:"angular_velocity"`
	AngularAcceleration    Vector3              `json:"angular_acceleration" yaml:"angular_acceleration"`
	FrontWheelsAngle       float32              `json:"front_wheels_angle" yaml:"front_wheels_angle"` // radians
}

func (*MotionPacket) Kind() PacketKind       { return KindMotion }
func (p *MotionPacket) PacketHeader() Header { return p.Header }
func (*MotionPacket) packet()                {}

func decodeMotion(c *Cursor, h Header) (*MotionPacket, error) {
	r := &reader{c: c}
	p := &MotionPacket{Header: h}
	for i := range p.CarMotion {
		p.CarMotion[i] = CarMotion{
			WorldPosition:      vector3(r),
			WorldVelocity:      vector3(r),
			WorldForwardDir:    normVector3(r),
			WorldRightDir:      normVector3(r),
			GForceLateral:      r.f32(),
			GForceLongitudinal: r.f32(),
			GForceVertical:     r.f32(),
			Yaw:                r.f32(),
			Pitch:              r.f32(),
			Roll:               r.f32(),
		}
	}
	p.SuspensionPosition = wheelsF32(r)
	p.SuspensionVelocity = wheelsF32(r)
	p.SuspensionAcceleration = wheelsF32(r)
	p.WheelSpeed = wheelsF32(r)
	p.WheelSlip = wheelsF32(r)
	p.LocalVelocity = vector3(r)
	p.AngularVelocity = vector3(r)
	p.AngularAcceleration = vector3(r)
	p.FrontWheelsAngle = r.f32()
	if r.err != nil {
		return nil, r.err
	}
	return p, nil
}
