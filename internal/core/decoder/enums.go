package decoder

import "fmt"

// Code tables for the small, dense enumerations. Each parse function is
// total over its declared domain and reports false for anything else.

func enumName(names []string, i int, typ string) string {
	if i >= 0 && i < len(names) {
		return names[i]
	}
	return fmt.Sprintf("%s(%d)", typ, i)
}

// signedName looks up a code whose domain starts at -1.
func signedName(names []string, code int, typ string) string {
	if code >= -1 && code+1 < len(names) {
		return names[code+1]
	}
	return fmt.Sprintf("%s(%d)", typ, code)
}

// ─── Session ───

// Weather is the current or forecast weather.
type Weather uint8

const (
	WeatherClear Weather = iota
	WeatherLightCloud
	WeatherOvercast
	WeatherLightRain
	WeatherHeavyRain
	WeatherStorm
)

var weatherNames = []string{"clear", "light_cloud", "overcast", "light_rain", "heavy_rain", "storm"}

func parseWeather(c uint8) (Weather, bool) { return Weather(c), int(c) < len(weatherNames) }

func (w Weather) String() string               { return enumName(weatherNames, int(w), "weather") }
func (w Weather) MarshalText() ([]byte, error) { return []byte(w.String()), nil }

// SessionType identifies practice, qualifying and race sessions.
type SessionType uint8

const (
	SessionUnknown SessionType = iota
	SessionP1
	SessionP2
	SessionP3
	SessionShortP
	SessionQ1
	SessionQ2
	SessionQ3
	SessionShortQ
	SessionOSQ
	SessionR
	SessionR2
	SessionTimeTrial
)

var sessionTypeNames = []string{"unknown", "p1", "p2", "p3", "short_p", "q1", "q2", "q3", "short_q", "osq", "r", "r2", "time_trial"}

func parseSessionType(c uint8) (SessionType, bool) {
	return SessionType(c), int(c) < len(sessionTypeNames)
}

func (s SessionType) String() string               { return enumName(sessionTypeNames, int(s), "session_type") }
func (s SessionType) MarshalText() ([]byte, error) { return []byte(s.String()), nil }

// Formula is the car class of the session.
type Formula uint8

const (
	FormulaF1Modern Formula = iota
	FormulaF1Classic
	FormulaF2
	FormulaF1Generic
)

var formulaNames = []string{"f1_modern", "f1_classic", "f2", "f1_generic"}

func parseFormula(c uint8) (Formula, bool) { return Formula(c), int(c) < len(formulaNames) }

func (f Formula) String() string               { return enumName(formulaNames, int(f), "formula") }
func (f Formula) MarshalText() ([]byte, error) { return []byte(f.String()), nil }

// ZoneFlag is the flag shown in a marshal zone or to a car. -1 is unknown.
type ZoneFlag int8

const (
	ZoneFlagUnknown ZoneFlag = iota - 1
	ZoneFlagNone
	ZoneFlagGreen
	ZoneFlagBlue
	ZoneFlagYellow
	ZoneFlagRed
)

var zoneFlagNames = []string{"unknown", "none", "green", "blue", "yellow", "red"}

func parseZoneFlag(c int8) (ZoneFlag, bool) {
	return ZoneFlag(c), c >= -1 && int(c)+1 < len(zoneFlagNames)
}

func (z ZoneFlag) String() string               { return signedName(zoneFlagNames, int(z), "zone_flag") }
func (z ZoneFlag) MarshalText() ([]byte, error) { return []byte(z.String()), nil }

// SafetyCarStatus is the safety car deployment state.
type SafetyCarStatus uint8

const (
	SafetyCarNone SafetyCarStatus = iota
	SafetyCarFull
	SafetyCarVirtual
)

var safetyCarNames = []string{"none", "full", "virtual"}

func parseSafetyCarStatus(c uint8) (SafetyCarStatus, bool) {
	return SafetyCarStatus(c), int(c) < len(safetyCarNames)
}

func (s SafetyCarStatus) String() string               { return enumName(safetyCarNames, int(s), "safety_car") }
func (s SafetyCarStatus) MarshalText() ([]byte, error) { return []byte(s.String()), nil }

// NetworkGame tells offline and online sessions apart.
type NetworkGame uint8

const (
	NetworkGameOffline NetworkGame = iota
	NetworkGameOnline
)

var networkGameNames = []string{"offline", "online"}

func parseNetworkGame(c uint8) (NetworkGame, bool) { return NetworkGame(c), int(c) < len(networkGameNames) }

func (n NetworkGame) String() string               { return enumName(networkGameNames, int(n), "network_game") }
func (n NetworkGame) MarshalText() ([]byte, error) { return []byte(n.String()), nil }

// ─── Lap ───

// PitStatus is where a car is relative to the pit lane.
type PitStatus uint8

const (
	PitStatusNone PitStatus = iota
	PitStatusPitting
	PitStatusInPitArea
)

var pitStatusNames = []string{"none", "pitting", "in_pit_area"}

func parsePitStatus(c uint8) (PitStatus, bool) { return PitStatus(c), int(c) < len(pitStatusNames) }

func (p PitStatus) String() string               { return enumName(pitStatusNames, int(p), "pit_status") }
func (p PitStatus) MarshalText() ([]byte, error) { return []byte(p.String()), nil }

// DriverStatus is what the car is doing on its current lap.
type DriverStatus uint8

const (
	DriverStatusInGarage DriverStatus = iota
	DriverStatusFlyingLap
	DriverStatusInLap
	DriverStatusOutLap
	DriverStatusOnTrack
)

var driverStatusNames = []string{"in_garage", "flying_lap", "in_lap", "out_lap", "on_track"}

func parseDriverStatus(c uint8) (DriverStatus, bool) {
	return DriverStatus(c), int(c) < len(driverStatusNames)
}

func (d DriverStatus) String() string               { return enumName(driverStatusNames, int(d), "driver_status") }
func (d DriverStatus) MarshalText() ([]byte, error) { return []byte(d.String()), nil }

// ResultStatus is the classification state of a car.
type ResultStatus uint8

const (
	ResultInvalid ResultStatus = iota
	ResultInactive
	ResultActive
	ResultFinished
	ResultDisqualified
	ResultNotClassified
	ResultRetired
)

var resultStatusNames = []string{"invalid", "inactive", "active", "finished", "disqualified", "not_classified", "retired"}

func parseResultStatus(c uint8) (ResultStatus, bool) {
	return ResultStatus(c), int(c) < len(resultStatusNames)
}

func (s ResultStatus) String() string               { return enumName(resultStatusNames, int(s), "result_status") }
func (s ResultStatus) MarshalText() ([]byte, error) { return []byte(s.String()), nil }

// ─── Participants / Lobby ───

// TelemetrySetting is a player's UDP telemetry privacy setting.
type TelemetrySetting uint8

const (
	TelemetryRestricted TelemetrySetting = iota
	TelemetryPublic
)

var telemetrySettingNames = []string{"restricted", "public"}

func parseTelemetrySetting(c uint8) (TelemetrySetting, bool) {
	return TelemetrySetting(c), int(c) < len(telemetrySettingNames)
}

func (t TelemetrySetting) String() string {
	return enumName(telemetrySettingNames, int(t), "telemetry_setting")
}
func (t TelemetrySetting) MarshalText() ([]byte, error) { return []byte(t.String()), nil }

// ReadyStatus is a lobby player's readiness.
type ReadyStatus uint8

const (
	ReadyStatusNotReady ReadyStatus = iota
	ReadyStatusReady
	ReadyStatusSpectating
)

var readyStatusNames = []string{"not_ready", "ready", "spectating"}

func parseReadyStatus(c uint8) (ReadyStatus, bool) { return ReadyStatus(c), int(c) < len(readyStatusNames) }

func (s ReadyStatus) String() string               { return enumName(readyStatusNames, int(s), "ready_status") }
func (s ReadyStatus) MarshalText() ([]byte, error) { return []byte(s.String()), nil }

// ─── Car telemetry ───

// SurfaceType is the surface under one wheel.
type SurfaceType uint8

const (
	SurfaceTarmac SurfaceType = iota
	SurfaceRumbleStrip
	SurfaceConcrete
	SurfaceRock
	SurfaceGravel
	SurfaceMud
	SurfaceSand
	SurfaceGrass
	SurfaceWater
	SurfaceCobblestone
	SurfaceMetal
	SurfaceRidged
	SurfaceUnknown
)

var surfaceTypeNames = []string{
	"tarmac", "rumble_strip", "concrete", "rock", "gravel", "mud", "sand",
	"grass", "water", "cobblestone", "metal", "ridged", "unknown",
}

func parseSurfaceType(c uint8) (SurfaceType, bool) { return SurfaceType(c), int(c) < len(surfaceTypeNames) }

func (s SurfaceType) String() string               { return enumName(surfaceTypeNames, int(s), "surface_type") }
func (s SurfaceType) MarshalText() ([]byte, error) { return []byte(s.String()), nil }

// MFDPanel is the multi-function display page; 255 means closed.
type MFDPanel uint8

const (
	MFDCarSetup MFDPanel = iota
	MFDPits
	MFDDamage
	MFDEngine
	MFDTemperatures
	MFDClosed MFDPanel = 255
)

var mfdPanelNames = []string{"car_setup", "pits", "damage", "engine", "temperatures"}

func parseMFDPanel(c uint8) (MFDPanel, bool) {
	return MFDPanel(c), c == uint8(MFDClosed) || int(c) < len(mfdPanelNames)
}

func (m MFDPanel) String() string {
	if m == MFDClosed {
		return "closed"
	}
	return enumName(mfdPanelNames, int(m), "mfd_panel")
}
func (m MFDPanel) MarshalText() ([]byte, error) { return []byte(m.String()), nil }

// ─── Car status ───

// TractionControl is the traction control assist level.
type TractionControl uint8

const (
	TractionControlOff TractionControl = iota
	TractionControlLow
	TractionControlHigh
)

var tractionControlNames = []string{"off", "low", "high"}

func parseTractionControl(c uint8) (TractionControl, bool) {
	return TractionControl(c), int(c) < len(tractionControlNames)
}

func (t TractionControl) String() string {
	return enumName(tractionControlNames, int(t), "traction_control")
}
func (t TractionControl) MarshalText() ([]byte, error) { return []byte(t.String()), nil }

// AntiLockBrakes is the ABS assist setting.
type AntiLockBrakes uint8

const (
	AntiLockBrakesOff AntiLockBrakes = iota
	AntiLockBrakesOn
)

var antiLockBrakesNames = []string{"off", "on"}

func parseAntiLockBrakes(c uint8) (AntiLockBrakes, bool) {
	return AntiLockBrakes(c), int(c) < len(antiLockBrakesNames)
}

func (a AntiLockBrakes) String() string               { return enumName(antiLockBrakesNames, int(a), "abs") }
func (a AntiLockBrakes) MarshalText() ([]byte, error) { return []byte(a.String()), nil }

// FuelMix is the engine fuel mix setting.
type FuelMix uint8

const (
	FuelMixLean FuelMix = iota
	FuelMixStandard
	FuelMixRich
	FuelMixMax
)

var fuelMixNames = []string{"lean", "standard", "rich", "max"}

func parseFuelMix(c uint8) (FuelMix, bool) { return FuelMix(c), int(c) < len(fuelMixNames) }

func (f FuelMix) String() string               { return enumName(fuelMixNames, int(f), "fuel_mix") }
func (f FuelMix) MarshalText() ([]byte, error) { return []byte(f.String()), nil }

// DRSAllowed is sent signed; -1 means the game does not know yet.
type DRSAllowed int8

const (
	DRSUnknown DRSAllowed = iota - 1
	DRSNotAllowed
	DRSAllowedNow
)

var drsAllowedNames = []string{"unknown", "not_allowed", "allowed"}

func parseDRSAllowed(c int8) (DRSAllowed, bool) {
	return DRSAllowed(c), c >= -1 && int(c)+1 < len(drsAllowedNames)
}

func (d DRSAllowed) String() string               { return signedName(drsAllowedNames, int(d), "drs_allowed") }
func (d DRSAllowed) MarshalText() ([]byte, error) { return []byte(d.String()), nil }

// ERSDeployMode is the energy deployment mode.
type ERSDeployMode uint8

const (
	ERSDeployNone ERSDeployMode = iota
	ERSDeployMedium
	ERSDeployOvertake
	ERSDeployHotlap
)

var ersDeployModeNames = []string{"none", "medium", "overtake", "hotlap"}

func parseERSDeployMode(c uint8) (ERSDeployMode, bool) {
	return ERSDeployMode(c), int(c) < len(ersDeployModeNames)
}

func (e ERSDeployMode) String() string               { return enumName(ersDeployModeNames, int(e), "ers_deploy_mode") }
func (e ERSDeployMode) MarshalText() ([]byte, error) { return []byte(e.String()), nil }
