package decoder

import (
	"fmt"

	"firestige.xyz/pitwall/internal/core"
)

// PacketKind identifies the payload layout that follows the header.
type PacketKind uint8

const (
	KindMotion PacketKind = iota
	KindSession
	KindLap
	KindEvent
	KindParticipants
	KindCarSetups
	KindCarTelemetry
	KindCarStatus
	KindFinalClassification
	KindLobbyInfo
)

// sizePolicy is the declared-length rule for one packet kind. Some kinds
// must match exactly, others only need a minimum; both are kept as-is.
type sizePolicy struct {
	name  string
	size  int
	exact bool
}

var kindTable = [...]sizePolicy{
	KindMotion:              {name: "motion", size: 1464},
	KindSession:             {name: "session", size: 251, exact: true},
	KindLap:                 {name: "lap", size: 1190},
	KindEvent:               {name: "event", size: 35, exact: true},
	KindParticipants:        {name: "participants", size: 1213},
	KindCarSetups:           {name: "car_setups", size: 1102, exact: true},
	KindCarTelemetry:        {name: "car_telemetry", size: 1307, exact: true},
	KindCarStatus:           {name: "car_status", size: 1344, exact: true},
	KindFinalClassification: {name: "final_classification", size: 839, exact: true},
	KindLobbyInfo:           {name: "lobby_info", size: 1169, exact: true},
}

// Kinds lists every packet kind in id order.
func Kinds() []PacketKind {
	kinds := make([]PacketKind, len(kindTable))
	for i := range kindTable {
		kinds[i] = PacketKind(i)
	}
	return kinds
}

func parsePacketKind(id uint8) (PacketKind, error) {
	if int(id) >= len(kindTable) {
		return 0, fmt.Errorf("%w: id=%d", core.ErrUnknownPacketKind, id)
	}
	return PacketKind(id), nil
}

func (k PacketKind) String() string {
	if int(k) < len(kindTable) {
		return kindTable[k].name
	}
	return fmt.Sprintf("kind(%d)", uint8(k))
}

func (k PacketKind) MarshalText() ([]byte, error) { return []byte(k.String()), nil }

// ExpectedSize returns the size rule of the kind, or zero for an unknown
// kind.
func (k PacketKind) ExpectedSize() (size int, exact bool) {
	if int(k) >= len(kindTable) {
		return 0, false
	}
	p := kindTable[k]
	return p.size, p.exact
}

// CheckSize validates a declared datagram length against the kind's policy.
func (k PacketKind) CheckSize(declared int) error {
	if int(k) >= len(kindTable) {
		return fmt.Errorf("%w: id=%d", core.ErrUnknownPacketKind, uint8(k))
	}
	p := kindTable[k]
	if (p.exact && declared != p.size) || (!p.exact && declared < p.size) {
		return &core.SizeError{Kind: p.name, Declared: declared, Expected: p.size, Exact: p.exact}
	}
	return nil
}
