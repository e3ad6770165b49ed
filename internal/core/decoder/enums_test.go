package decoder

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnumNames(t *testing.T) {
	tests := []struct {
		value interface{ String() string }
		want  string
	}{
		{WeatherHeavyRain, "heavy_rain"},
		{SessionOSQ, "osq"},
		{SessionTimeTrial, "time_trial"},
		{FormulaF2, "f2"},
		{ZoneFlagUnknown, "unknown"},
		{ZoneFlagYellow, "yellow"},
		{SafetyCarFull, "full"},
		{PitStatusInPitArea, "in_pit_area"},
		{DriverStatusOutLap, "out_lap"},
		{ResultNotClassified, "not_classified"},
		{TelemetryPublic, "public"},
		{ReadyStatusSpectating, "spectating"},
		{SurfaceCobblestone, "cobblestone"},
		{MFDTemperatures, "temperatures"},
		{MFDClosed, "closed"},
		{TractionControlLow, "low"},
		{FuelMixMax, "max"},
		{DRSUnknown, "unknown"},
		{DRSAllowedNow, "allowed"},
		{ERSDeployOvertake, "overtake"},
		{TrackUnknown, "unknown"},
		{TrackZandvoort, "zandvoort"},
		{ActualTyreF2SuperSoft, "f2_super_soft"},
		{VisualTyreHard, "hard"},
		{PenaltyBlackFlagTimer, "black_flag_timer"},
		{InfringementPitLaneSpeeding, "pit_lane_speeding"},
		{TeamMyTeam, "my_team"},
		{DriverPlayer, "player"},
		{NationalityInvalid, "invalid"},
		{KindFinalClassification, "final_classification"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.value.String())
		})
	}
}

func TestEnumNameFallback(t *testing.T) {
	assert.Equal(t, "weather(9)", Weather(9).String())
	assert.Equal(t, "zone_flag(6)", ZoneFlag(6).String())
	assert.Equal(t, "team(52)", Team(52).String())
	assert.Equal(t, "kind(12)", PacketKind(12).String())
}

func TestParseEnumDomains(t *testing.T) {
	_, ok := parseSessionType(9)
	assert.True(t, ok)
	_, ok = parseSessionType(13)
	assert.False(t, ok)

	_, ok = parseZoneFlag(-2)
	assert.False(t, ok)
	_, ok = parseDRSAllowed(2)
	assert.False(t, ok)
	_, ok = parseMFDPanel(5)
	assert.False(t, ok)
	_, ok = parseMFDPanel(254)
	assert.False(t, ok)

	d, ok := parseDriver(255)
	assert.True(t, ok)
	assert.Equal(t, DriverPlayer, d)
	_, ok = parseDriver(3)
	assert.False(t, ok, "driver 3 is not in the roster")

	n, ok := parseNationality(255)
	assert.True(t, ok)
	assert.Equal(t, NationalityInvalid, n)
	_, ok = parseNationality(89)
	assert.False(t, ok)

	_, ok = parseTeam(52)
	assert.False(t, ok)
	_, ok = parseInfringementType(52)
	assert.False(t, ok)
	_, ok = parsePenaltyType(17)
	assert.True(t, ok)
}

func TestPacketKindTable(t *testing.T) {
	kinds := Kinds()
	require.Len(t, kinds, 10)
	for i, k := range kinds {
		assert.Equal(t, PacketKind(i), k)
	}

	size, exact := KindSession.ExpectedSize()
	assert.Equal(t, 251, size)
	assert.True(t, exact)

	size, exact = KindParticipants.ExpectedSize()
	assert.Equal(t, 1213, size)
	assert.False(t, exact)

	assert.NoError(t, KindLap.CheckSize(1190))
	assert.NoError(t, KindLap.CheckSize(1500))
	assert.Error(t, KindLap.CheckSize(1189))
	assert.NoError(t, KindEvent.CheckSize(35))
	assert.Error(t, KindEvent.CheckSize(40))
}

func TestEnumsMarshalAsNames(t *testing.T) {
	out, err := json.Marshal(struct {
		Weather Weather             `json:"weather"`
		Tyres   Wheels[SurfaceType] `json:"tyres"`
		Kind    PacketKind          `json:"kind"`
	}{
		Weather: WeatherOvercast,
		Tyres:   Wheels[SurfaceType]{RearLeft: SurfaceGrass},
		Kind:    KindCarStatus,
	})
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"weather": "overcast",
		"tyres": {"rear_left": "grass", "rear_right": "tarmac", "front_left": "tarmac", "front_right": "tarmac"},
		"kind": "car_status"
	}`, string(out))
}
