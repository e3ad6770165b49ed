package console

import (
	"fmt"
	"strings"

	"firestige.xyz/pitwall/internal/core"
	"firestige.xyz/pitwall/internal/core/decoder"
)

const timeLayout = "2006-01-02T15:04:05.000Z07:00"

// Summary renders a record as a single line. Packets that concern the
// player car add a few headline values for that car.
func Summary(rec *core.Record) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %s session=%d frame=%d",
		rec.Timestamp.UTC().Format(timeLayout), rec.Kind, rec.SessionUID, rec.FrameID)
	if rec.Source.IsValid() {
		fmt.Fprintf(&b, " source=%s", rec.Source)
	}

	switch p := rec.Packet.(type) {
	case *decoder.EventPacket:
		fmt.Fprintf(&b, " code=%s", p.Code)
	case *decoder.LapPacket:
		if i := p.Header.PlayerCarIndex; int(i) < decoder.TotalCars {
			l := p.LapData[i]
			fmt.Fprintf(&b, " lap=%d position=%d last=%s", l.CurrentLapNum, l.CarPosition, l.LastLapTime.Duration())
		}
	case *decoder.CarTelemetryPacket:
		if i := p.Header.PlayerCarIndex; int(i) < decoder.TotalCars {
			c := p.CarTelemetry[i]
			fmt.Fprintf(&b, " speed=%d gear=%d rpm=%d", c.Speed, c.Gear, c.EngineRPM)
		}
	case *decoder.SessionPacket:
		fmt.Fprintf(&b, " track=%s type=%s weather=%s", p.Track, p.SessionType, p.Weather)
	case *decoder.ParticipantsPacket:
		fmt.Fprintf(&b, " active=%d", p.NumActiveCars)
	case *decoder.FinalClassificationPacket:
		fmt.Fprintf(&b, " cars=%d", p.NumCars)
	case *decoder.LobbyInfoPacket:
		fmt.Fprintf(&b, " players=%d", p.NumPlayers)
	}
	return b.String()
}
