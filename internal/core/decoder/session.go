package decoder

import "firestige.xyz/pitwall/internal/core"

const (
	maxMarshalZones        = 21
	weatherForecastSamples = 20
)

// MarshalZone is one marshal sector and its flag.
type MarshalZone struct {
	ZoneStart float32  `json:"zone_start" yaml:"zone_start"` // fraction (0..1) of the lap
	ZoneFlag  ZoneFlag `json:"zone_flag" yaml:"zone_flag"`
}

// WeatherForecastSample is one forecast entry for a session.
type WeatherForecastSample struct {
	SessionType      SessionType `json:"session_type" yaml:"session_type"`
	TimeOffset       uint8       `json:"time_offset" yaml:"time_offset"` // minutes
	Weather          Weather     `json:"weather" yaml:"weather"`
	TrackTemperature int8        `json:"track_temperature" yaml:"track_temperature"`
	AirTemperature   int8        `json:"air_temperature" yaml:"air_temperature"`
}

// SessionPacket describes the session: track, weather, rules and forecast.
type SessionPacket struct {
	Header                    Header                                        `json:"header" yaml:"header"`
	Weather                   Weather                                       `json:"weather" yaml:"weather"`
	TrackTemperature          int8                                          `json:"track_temperature" yaml:"track_temperature"`
	AirTemperature            int8                                          `json:"air_temperature" yaml:"air_temperature"`
	TotalLaps                 uint8                                         `json:"total_laps" yaml:"total_laps"`
	TrackLength               uint16                                        `json:"track_length" yaml:"track_length"` // metres
	SessionType               SessionType                                   `json:"session_type" yaml:"session_type"`
	Track                     Track                                         `json:"track" yaml:"track"`
	Formula                   Formula                                       `json:"formula" yaml:"formula"`
	SessionTimeLeft           uint16                                        `json:"session_time_left" yaml:"session_time_left"` // seconds
	SessionDuration           uint16                                        `json:"session_duration" yaml:"session_duration"`   // seconds
	PitSpeedLimit             uint8                                         `json:"pit_speed_limit" yaml:"pit_speed_limit"`     // km/h
	GamePaused                uint8                                         `json:"game_paused" yaml:"game_paused"`
	IsSpectating              uint8                                         `json:"is_spectating" yaml:"is_spectating"`
	SpectatorCarIndex         uint8                                         `json:"spectator_car_index" yaml:"spectator_car_index"`
	SLIProNativeSupport       uint8                                         `json:"sli_pro_native_support" yaml:"sli_pro_native_support"`
	MarshalZones              []MarshalZone                                 `json:"marshal_zones" yaml:"marshal_zones"`
	SafetyCarStatus           SafetyCarStatus                               `json:"safety_car_status" yaml:"safety_car_status"`
	NetworkGame               NetworkGame                                   `json:"network_game" yaml:"network_game"`
	NumWeatherForecastSamples uint8                                         `json:"num_weather_forecast_samples" yaml:"num_weather_forecast_samples"`
	WeatherForecastSamples    [weatherForecastSamples]WeatherForecastSample `json:"weather_forecast_samples" yaml:"weather_forecast_samples"`
}

func (*SessionPacket) Kind() PacketKind       { return KindSession }
func (p *SessionPacket) PacketHeader() Header { return p.Header }
func (*SessionPacket) packet()                {}

func decodeSession(c *Cursor, h Header) (*SessionPacket, error) {
	r := &reader{c: c}
	p := &SessionPacket{
		Header:              h,
		Weather:             enum(r, "weather", r.u8, parseWeather),
		TrackTemperature:    r.i8(),
		AirTemperature:      r.i8(),
		TotalLaps:           r.u8(),
		TrackLength:         r.u16(),
		SessionType:         enum(r, "session_type", r.u8, parseSessionType),
		Track:               enum(r, "track_id", r.i8, parseTrack),
		Formula:             enum(r, "formula", r.u8, parseFormula),
		SessionTimeLeft:     r.u16(),
		SessionDuration:     r.u16(),
		PitSpeedLimit:       r.u8(),
		GamePaused:          r.u8(),
		IsSpectating:        r.u8(),
		SpectatorCarIndex:   r.u8(),
		SLIProNativeSupport: r.u8(),
	}

	// Only the declared zones are read; the count bounds the slice.
	n := r.u8()
	if r.err == nil && n > maxMarshalZones {
		return nil, &core.EnumError{Field: "num_marshal_zones", Code: int(n)}
	}
	p.MarshalZones = make([]MarshalZone, 0, n)
	for i := 0; i < int(n) && r.err == nil; i++ {
		p.MarshalZones = append(p.MarshalZones, MarshalZone{
			ZoneStart: r.f32(),
			ZoneFlag:  enum(r, "zone_flag", r.i8, parseZoneFlag),
		})
	}

	p.SafetyCarStatus = enum(r, "safety_car_status", r.u8, parseSafetyCarStatus)
	p.NetworkGame = enum(r, "network_game", r.u8, parseNetworkGame)
	p.NumWeatherForecastSamples = r.u8()
	for i := range p.WeatherForecastSamples {
		p.WeatherForecastSamples[i] = WeatherForecastSample{
			SessionType:      enum(r, "forecast_session_type", r.u8, parseSessionType),
			TimeOffset:       r.u8(),
			Weather:          enum(r, "forecast_weather", r.u8, parseWeather),
			TrackTemperature: r.i8(),
			AirTemperature:   r.i8(),
		}
	}
	if r.err != nil {
		return nil, r.err
	}
	return p, nil
}
