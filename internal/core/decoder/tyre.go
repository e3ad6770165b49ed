package decoder

import "fmt"

// ActualTyreCompound is the simulated compound. Codes 0 and 255 both
// decode to ActualTyreUnknown.
type ActualTyreCompound uint8

const (
	ActualTyreUnknown     ActualTyreCompound = 0
	ActualTyreInter       ActualTyreCompound = 7
	ActualTyreWet         ActualTyreCompound = 8
	ActualTyreClassicDry  ActualTyreCompound = 9
	ActualTyreClassicWet  ActualTyreCompound = 10
	ActualTyreF2SuperSoft ActualTyreCompound = 11
	ActualTyreF2Soft      ActualTyreCompound = 12
	ActualTyreF2Medium    ActualTyreCompound = 13
	ActualTyreF2Hard      ActualTyreCompound = 14
	ActualTyreF2Wet       ActualTyreCompound = 15
	ActualTyreC5          ActualTyreCompound = 16
	ActualTyreC4          ActualTyreCompound = 17
	ActualTyreC3          ActualTyreCompound = 18
	ActualTyreC2          ActualTyreCompound = 19
	ActualTyreC1          ActualTyreCompound = 20
)

var actualTyreNames = map[ActualTyreCompound]string{
	ActualTyreUnknown:     "unknown",
	ActualTyreInter:       "inter",
	ActualTyreWet:         "wet",
	ActualTyreClassicDry:  "classic_dry",
	ActualTyreClassicWet:  "classic_wet",
	ActualTyreF2SuperSoft: "f2_super_soft",
	ActualTyreF2Soft:      "f2_soft",
	ActualTyreF2Medium:    "f2_medium",
	ActualTyreF2Hard:      "f2_hard",
	ActualTyreF2Wet:       "f2_wet",
	ActualTyreC5:          "c5",
	ActualTyreC4:          "c4",
	ActualTyreC3:          "c3",
	ActualTyreC2:          "c2",
	ActualTyreC1:          "c1",
}

func parseActualTyreCompound(c uint8) (ActualTyreCompound, bool) {
	if c == 255 {
		return ActualTyreUnknown, true
	}
	_, ok := actualTyreNames[ActualTyreCompound(c)]
	return ActualTyreCompound(c), ok
}

func (t ActualTyreCompound) String() string {
	if name, ok := actualTyreNames[t]; ok {
		return name
	}
	return fmt.Sprintf("actual_tyre_compound(%d)", uint8(t))
}
func (t ActualTyreCompound) MarshalText() ([]byte, error) { return []byte(t.String()), nil }

// VisualTyreCompound is the compound shown to the player. Codes 0 and
// 255 both decode to VisualTyreUnknown.
type VisualTyreCompound uint8

const (
	VisualTyreUnknown     VisualTyreCompound = 0
	VisualTyreInter       VisualTyreCompound = 7
	VisualTyreWet         VisualTyreCompound = 8
	VisualTyreClassicDry  VisualTyreCompound = 9
	VisualTyreClassicWet  VisualTyreCompound = 10
	VisualTyreF2SuperSoft VisualTyreCompound = 11
	VisualTyreF2Soft      VisualTyreCompound = 12
	VisualTyreF2Medium    VisualTyreCompound = 13
	VisualTyreF2Hard      VisualTyreCompound = 14
	VisualTyreF2Wet       VisualTyreCompound = 15
	VisualTyreSoft        VisualTyreCompound = 16
	VisualTyreMedium      VisualTyreCompound = 17
	VisualTyreHard        VisualTyreCompound = 18
)

var visualTyreNames = map[VisualTyreCompound]string{
	VisualTyreUnknown:     "unknown",
	VisualTyreInter:       "inter",
	VisualTyreWet:         "wet",
	VisualTyreClassicDry:  "classic_dry",
	VisualTyreClassicWet:  "classic_wet",
	VisualTyreF2SuperSoft: "f2_super_soft",
	VisualTyreF2Soft:      "f2_soft",
	VisualTyreF2Medium:    "f2_medium",
	VisualTyreF2Hard:      "f2_hard",
	VisualTyreF2Wet:       "f2_wet",
	VisualTyreSoft:        "soft",
	VisualTyreMedium:      "medium",
	VisualTyreHard:        "hard",
}

func parseVisualTyreCompound(c uint8) (VisualTyreCompound, bool) {
	if c == 255 {
		return VisualTyreUnknown, true
	}
	_, ok := visualTyreNames[VisualTyreCompound(c)]
	return VisualTyreCompound(c), ok
}

func (t VisualTyreCompound) String() string {
	if name, ok := visualTyreNames[t]; ok {
		return name
	}
	return fmt.Sprintf("visual_tyre_compound(%d)", uint8(t))
}
func (t VisualTyreCompound) MarshalText() ([]byte, error) { return []byte(t.String()), nil }
