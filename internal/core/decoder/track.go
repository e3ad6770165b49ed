package decoder

// Track is the circuit id; it is sent signed and -1 means unknown.
type Track int8

const (
	TrackUnknown Track = iota - 1
	TrackMelbourne
	TrackPaulRicard
	TrackShanghai
	TrackSakhir
	TrackCatalunya
	TrackMonaco
	TrackMontreal
	TrackSilverstone
	TrackHockenheim
	TrackHungaroring
	TrackSpa
	TrackMonza
	TrackSingapore
	TrackSuzuka
	TrackAbuDhabi
	TrackTexas
	TrackBrazil
	TrackAustria
	TrackSochi
	TrackMexico
	TrackBaku
	TrackSakhirShort
	TrackSilverstoneShort
	TrackTexasShort
	TrackSuzukaShort
	TrackHanoi
	TrackZandvoort
)

// trackNames is indexed by code+1.
var trackNames = []string{
	"unknown",
	"melbourne", "paul_ricard", "shanghai", "sakhir", "catalunya", "monaco",
	"montreal", "silverstone", "hockenheim", "hungaroring", "spa", "monza",
	"singapore", "suzuka", "abu_dhabi", "texas", "brazil", "austria", "sochi",
	"mexico", "baku", "sakhir_short", "silverstone_short", "texas_short",
	"suzuka_short", "hanoi", "zandvoort",
}

func parseTrack(c int8) (Track, bool) {
	return Track(c), c >= -1 && int(c)+1 < len(trackNames)
}

func (t Track) String() string               { return signedName(trackNames, int(t), "track") }
func (t Track) MarshalText() ([]byte, error) { return []byte(t.String()), nil }
